package event

import (
	"log/slog"

	"github.com/dshills/reckon/internal/engine/calc"
	"github.com/dshills/reckon/internal/persist"
)

// HistorySource provides the current history contents for persistence.
type HistorySource interface {
	All() []calc.Calculation
}

// LogObserver writes an info record for every calculation.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates a logging observer.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// OnCalculation implements Observer.
func (o *LogObserver) OnCalculation(c calc.Calculation) {
	o.logger.Info("calculation performed",
		"operation", c.Operation,
		"operand1", c.Operand1,
		"operand2", c.Operand2,
		"result", c.Result,
	)
}

// AutoSaveObserver persists the full history after every calculation.
// I/O failures are caught and logged here; they never propagate to the
// engine.
type AutoSaveObserver struct {
	source   HistorySource
	path     string
	encoding string
	logger   *slog.Logger
}

// NewAutoSaveObserver creates an observer that writes source's contents
// to path on every calculation.
func NewAutoSaveObserver(source HistorySource, path, encoding string, logger *slog.Logger) *AutoSaveObserver {
	return &AutoSaveObserver{
		source:   source,
		path:     path,
		encoding: encoding,
		logger:   logger,
	}
}

// OnCalculation implements Observer.
func (o *AutoSaveObserver) OnCalculation(calc.Calculation) {
	if err := persist.Save(o.source.All(), o.path, o.encoding); err != nil {
		o.logger.Error("failed to auto-save history", "path", o.path, "error", err)
	}
}
