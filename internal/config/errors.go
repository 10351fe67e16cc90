package config

// Error reports an invalid configuration value. Configuration errors
// are fatal at startup.
type Error struct {
	// Key is the setting involved, when known.
	Key string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Key == "" {
		return "configuration error: " + e.Message
	}
	return "configuration error: " + e.Key + ": " + e.Message
}
