// Package operation maps operation names to binary arithmetic functions.
//
// A Registry is seeded with the built-in operation set and supports
// runtime registration of new operations, overriding or extending the
// built-ins. Registration is the registry's only mutable state.
package operation

import (
	"fmt"
	"strings"
	"sync"
)

// Func is a binary arithmetic function over two real numbers.
type Func func(a, b float64) (float64, error)

// Error describes an operation that could not be resolved or computed.
type Error struct {
	// Op is the operation name, when known.
	Op string
	// Message describes the failure.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Registry resolves operation names to functions.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
	order []string
}

// NewRegistry creates a registry seeded with the built-in operations.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	for _, b := range builtins() {
		r.Register(b.name, b.fn)
	}
	return r
}

// Register adds or overrides an operation.
// Registrations after startup should be append-only in concurrent use.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; !exists {
		r.order = append(r.order, name)
	}
	r.funcs[name] = fn
}

// Lookup resolves an operation by name.
// Unknown names fail with an error listing every registered operation.
func (r *Registry) Lookup(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[name]
	if !ok {
		return nil, &Error{
			Op: name,
			Message: fmt.Sprintf("unknown operation: %s. Available operations: %s",
				name, strings.Join(r.order, ", ")),
		}
	}
	return fn, nil
}

// Execute resolves and runs an operation.
func (r *Registry) Execute(name string, a, b float64) (float64, error) {
	fn, err := r.Lookup(name)
	if err != nil {
		return 0, err
	}
	return fn(a, b)
}

// Names returns the registered operation names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
