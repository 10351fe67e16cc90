// Package history provides the bounded calculation store and the
// snapshot-based undo/redo mechanism.
//
// # Store
//
// Store keeps completed calculations in insertion order, dropping the
// oldest entries whenever an append or replacement would exceed its
// capacity. Accessors hand out copies only; the internal slice is never
// exposed by reference.
//
// # Snapshots
//
// A Snapshot is an independent, immutable copy of the store taken at a
// point in time. Stacks manages two stacks of snapshots:
//
//	stacks.Save(store.Snapshot()) // push, clears redo
//	snap, err := stacks.Undo()    // pop current, expose previous
//	snap, err := stacks.Redo()    // move back forward
//
// The top of the undo stack is the current state. Stacks stores full
// copies rather than deltas, trading memory for simplicity; the bounded
// store size keeps that affordable.
package history
