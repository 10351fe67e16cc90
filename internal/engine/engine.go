package engine

import (
	"log/slog"
	"math"
	"path/filepath"
	"sync"

	"github.com/dshills/reckon/internal/config"
	"github.com/dshills/reckon/internal/engine/calc"
	"github.com/dshills/reckon/internal/engine/history"
	"github.com/dshills/reckon/internal/engine/operation"
	"github.com/dshills/reckon/internal/event"
	"github.com/dshills/reckon/internal/logging"
	"github.com/dshills/reckon/internal/persist"
	"github.com/dshills/reckon/internal/validate"
)

// HistoryFileName is the default history file under the history dir.
const HistoryFileName = "calculator_history.csv"

// Engine ties validation, computation, history, snapshots, and
// notification together. Create one with New.
type Engine struct {
	mu sync.Mutex

	cfg      config.Config
	logger   *slog.Logger
	registry *operation.Registry
	store    *history.Store
	stacks   *history.Stacks
	bus      *event.Bus

	extraObservers []event.Observer
}

// New creates an engine from cfg. It saves the initial empty snapshot
// (the undo floor) and registers the logging observer plus, when
// auto-save is enabled, the auto-save observer.
func New(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		logger:   logging.Discard(),
		registry: operation.NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.store = history.NewStore(cfg.MaxHistorySize)
	e.stacks = history.NewStacks()
	e.bus = event.NewBus(e.logger)

	e.stacks.Save(e.store.Snapshot())

	e.bus.Register(event.NewLogObserver(e.logger))
	if cfg.AutoSave {
		e.bus.Register(event.NewAutoSaveObserver(
			e.store, e.defaultHistoryPath(), cfg.DefaultEncoding, e.logger))
	}
	for _, o := range e.extraObservers {
		e.bus.Register(o)
	}

	e.logger.Info("calculator initialized",
		"max_history_size", e.store.MaxSize(),
		"precision", cfg.Precision,
		"auto_save", cfg.AutoSave,
	)
	return e
}

// Perform validates both raw operands, executes the named operation,
// rounds the result to the configured precision, records it, snapshots
// the new state, and notifies observers. Validation or operation
// failures abort before any mutation.
func (e *Engine) Perform(op, operand1, operand2 string) (float64, error) {
	a, err := validate.Number(operand1, e.cfg.MaxInputValue)
	if err != nil {
		return 0, err
	}
	b, err := validate.Number(operand2, e.cfg.MaxInputValue)
	if err != nil {
		return 0, err
	}
	return e.perform(op, a, b)
}

// PerformValues is Perform for operands that are already numeric.
func (e *Engine) PerformValues(op string, a, b float64) (float64, error) {
	if err := validate.Value(a, e.cfg.MaxInputValue); err != nil {
		return 0, err
	}
	if err := validate.Value(b, e.cfg.MaxInputValue); err != nil {
		return 0, err
	}
	return e.perform(op, a, b)
}

func (e *Engine) perform(op string, a, b float64) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	raw, err := e.registry.Execute(op, a, b)
	if err != nil {
		return 0, err
	}

	result := roundTo(raw, e.cfg.Precision)
	c := calc.New(op, a, b, result)

	e.store.Add(c)
	e.stacks.Save(e.store.Snapshot())
	e.bus.Notify(c)

	return result, nil
}

// Undo replaces the history with the previous snapshot.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, err := e.stacks.Undo()
	if err != nil {
		return err
	}
	e.store.Restore(snap)
	e.logger.Info("undo performed")
	return nil
}

// Redo replaces the history with the most recently undone snapshot.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, err := e.stacks.Redo()
	if err != nil {
		return err
	}
	e.store.Restore(snap)
	e.logger.Info("redo performed")
	return nil
}

// Clear empties the history and resets both snapshot stacks.
// Clearing is not undoable: no snapshot of the cleared state is saved.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.Clear()
	e.stacks.Clear()
	e.logger.Info("history cleared")
}

// History returns a copy of the current history for display.
func (e *Engine) History() []calc.Calculation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.All()
}

// CanUndo reports whether an undo is available.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stacks.CanUndo()
}

// CanRedo reports whether a redo is available.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stacks.CanRedo()
}

// Save writes the history to path, or to the default history file when
// path is empty. It returns the path written.
func (e *Engine) Save(path string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if path == "" {
		path = e.defaultHistoryPath()
	}
	if err := persist.Save(e.store.All(), path, e.cfg.DefaultEncoding); err != nil {
		return "", err
	}
	e.logger.Info("history saved", "path", path)
	return path, nil
}

// Load replaces the history with the contents of path (default history
// file when empty), trimmed to capacity. Loading does not snapshot; the
// undo stacks are left as they were.
func (e *Engine) Load(path string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if path == "" {
		path = e.defaultHistoryPath()
	}
	entries, err := persist.Load(path, e.cfg.DefaultEncoding)
	if err != nil {
		return "", err
	}
	e.store.SetAll(entries)
	e.logger.Info("history loaded", "path", path, "entries", e.store.Len())
	return path, nil
}

// Operations returns the registered operation names in registration
// order.
func (e *Engine) Operations() []string {
	return e.registry.Names()
}

// RegisterOperation adds or overrides an operation at runtime.
func (e *Engine) RegisterOperation(name string, fn operation.Func) {
	e.registry.Register(name, fn)
}

func (e *Engine) defaultHistoryPath() string {
	return filepath.Join(e.cfg.HistoryDir, HistoryFileName)
}

// roundTo rounds half away from zero to prec decimal places.
func roundTo(v float64, prec int) float64 {
	scale := math.Pow(10, float64(prec))
	return math.Round(v*scale) / scale
}
