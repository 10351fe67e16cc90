// Package event provides the synchronous observer fabric that reacts to
// each completed calculation.
package event

import (
	"log/slog"

	"github.com/dshills/reckon/internal/engine/calc"
)

// Observer receives every completed calculation.
type Observer interface {
	OnCalculation(c calc.Calculation)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(c calc.Calculation)

// OnCalculation implements Observer.
func (f ObserverFunc) OnCalculation(c calc.Calculation) {
	f(c)
}

// Bus fans calculations out to observers synchronously, in registration
// order, on the calling goroutine. It is owned by one engine instance
// and is not safe for concurrent use on its own.
type Bus struct {
	logger    *slog.Logger
	observers []Observer
}

// NewBus creates a bus that reports observer panics to logger.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bus{logger: logger}
}

// Register appends an observer. Observers are never deduplicated;
// registering twice delivers twice.
func (b *Bus) Register(o Observer) {
	if o == nil {
		return
	}
	b.observers = append(b.observers, o)
}

// Len returns the number of registered observers.
func (b *Bus) Len() int {
	return len(b.observers)
}

// Notify delivers the calculation to every observer in registration
// order. A panicking observer is logged and skipped; delivery to the
// remaining observers continues.
func (b *Bus) Notify(c calc.Calculation) {
	for _, o := range b.observers {
		b.dispatch(o, c)
	}
}

func (b *Bus) dispatch(o Observer, c calc.Calculation) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("observer panic", "panic", r, "operation", c.Operation)
		}
	}()
	o.OnCalculation(c)
}
