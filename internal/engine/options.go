package engine

import (
	"log/slog"

	"github.com/dshills/reckon/internal/engine/operation"
	"github.com/dshills/reckon/internal/event"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets the logger used by the engine and its observers.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRegistry replaces the built-in operation registry.
func WithRegistry(r *operation.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithObserver registers an additional observer after the standard
// logging and auto-save observers.
func WithObserver(o event.Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.extraObservers = append(e.extraObservers, o)
		}
	}
}
