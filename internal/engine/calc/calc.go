// Package calc defines the calculation record shared across the engine,
// the history store, the observer bus, and the persistence layer.
package calc

import (
	"fmt"
	"time"
)

// Calculation is an immutable record of one completed calculation.
// It is created once by the engine and shared by value everywhere else.
type Calculation struct {
	Operation string
	Operand1  float64
	Operand2  float64
	Result    float64
	Timestamp time.Time
}

// New creates a calculation stamped with the current time.
func New(operation string, operand1, operand2, result float64) Calculation {
	return Calculation{
		Operation: operation,
		Operand1:  operand1,
		Operand2:  operand2,
		Result:    result,
		Timestamp: time.Now(),
	}
}

// Equal reports field-level equality. Timestamps compare by instant,
// so records survive monotonic-clock stripping and serialization.
func (c Calculation) Equal(other Calculation) bool {
	return c.Operation == other.Operation &&
		c.Operand1 == other.Operand1 &&
		c.Operand2 == other.Operand2 &&
		c.Result == other.Result &&
		c.Timestamp.Equal(other.Timestamp)
}

// String renders the record for history display.
func (c Calculation) String() string {
	return fmt.Sprintf("%v %s %v = %v [%s]",
		c.Operand1, c.Operation, c.Operand2, c.Result,
		c.Timestamp.Format("2006-01-02 15:04:05"))
}
