// Package validate converts and checks raw calculator input.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Error reports invalid user input.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Number coerces raw input to a float64. It fails when the input does
// not parse, is NaN, or exceeds maxAbs in magnitude. A maxAbs of zero
// or below means unbounded.
func Number(raw string, maxAbs float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &Error{Message: fmt.Sprintf("invalid number: %s", raw)}
	}
	if err := Value(v, maxAbs); err != nil {
		return 0, err
	}
	return v, nil
}

// Value checks an already-numeric operand against the same rules.
func Value(v float64, maxAbs float64) error {
	if math.IsNaN(v) {
		return &Error{Message: fmt.Sprintf("invalid number: %v", v)}
	}
	if maxAbs > 0 && math.Abs(v) > maxAbs {
		return &Error{Message: fmt.Sprintf("number %v exceeds maximum allowed value of %v", v, maxAbs)}
	}
	return nil
}

// Operation checks that name is one of the known operations.
func Operation(name string, known []string) error {
	for _, k := range known {
		if name == k {
			return nil
		}
	}
	return &Error{Message: fmt.Sprintf("unknown operation: %s. Available operations: %s",
		name, strings.Join(known, ", "))}
}
