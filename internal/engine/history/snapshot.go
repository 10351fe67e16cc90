package history

import (
	"errors"

	"github.com/dshills/reckon/internal/engine/calc"
)

// Common errors for snapshot operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Snapshot is an immutable point-in-time copy of the history.
// The zero value is an empty snapshot.
type Snapshot struct {
	entries []calc.Calculation
}

// Entries returns an independent copy of the snapshot's calculations.
func (s Snapshot) Entries() []calc.Calculation {
	out := make([]calc.Calculation, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of calculations in the snapshot.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// Stacks manages undo/redo state as two stacks of snapshots.
// The top of the undo stack represents the current state.
// It is not safe for concurrent use; the engine serializes access.
type Stacks struct {
	undo []Snapshot
	redo []Snapshot
}

// NewStacks creates empty undo/redo stacks.
func NewStacks() *Stacks {
	return &Stacks{}
}

// Save pushes a snapshot onto the undo stack and clears the redo stack.
func (st *Stacks) Save(snap Snapshot) {
	st.undo = append(st.undo, snap)
	st.redo = nil
}

// Undo moves the current snapshot to the redo stack and returns the new
// top of the undo stack, or an empty snapshot if none remains.
func (st *Stacks) Undo() (Snapshot, error) {
	if len(st.undo) == 0 {
		return Snapshot{}, ErrNothingToUndo
	}

	current := st.undo[len(st.undo)-1]
	st.undo = st.undo[:len(st.undo)-1]
	st.redo = append(st.redo, current)

	if len(st.undo) == 0 {
		return Snapshot{}, nil
	}
	return st.undo[len(st.undo)-1], nil
}

// Redo moves the top of the redo stack back onto the undo stack and
// returns it.
func (st *Stacks) Redo() (Snapshot, error) {
	if len(st.redo) == 0 {
		return Snapshot{}, ErrNothingToRedo
	}

	snap := st.redo[len(st.redo)-1]
	st.redo = st.redo[:len(st.redo)-1]
	st.undo = append(st.undo, snap)
	return snap, nil
}

// CanUndo returns true if undo is available.
func (st *Stacks) CanUndo() bool {
	return len(st.undo) > 0
}

// CanRedo returns true if redo is available.
func (st *Stacks) CanRedo() bool {
	return len(st.redo) > 0
}

// UndoCount returns the number of snapshots on the undo stack.
func (st *Stacks) UndoCount() int {
	return len(st.undo)
}

// RedoCount returns the number of snapshots on the redo stack.
func (st *Stacks) RedoCount() int {
	return len(st.redo)
}

// Clear empties both stacks.
func (st *Stacks) Clear() {
	st.undo = nil
	st.redo = nil
}
