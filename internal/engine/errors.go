package engine

import "github.com/dshills/reckon/internal/engine/history"

// Errors returned by engine operations.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrEmptyHistory indicates an operation requiring history entries
	// found none.
	ErrEmptyHistory = history.ErrEmpty
)
