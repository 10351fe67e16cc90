// Package engine orchestrates the calculator core: it validates
// operands, executes operations from the registry, records results in
// the bounded history, snapshots state for undo/redo, and notifies
// observers.
//
// An Engine owns its history store, snapshot stacks, and observer bus
// exclusively. One mutex guards the full perform/undo/redo/clear
// sequence, since the snapshot-stack invariants are not individually
// atomic.
//
//	cfg := config.Default()
//	eng := engine.New(cfg, engine.WithLogger(logger))
//
//	result, err := eng.Perform("add", "5", "3") // 8
//	err = eng.Undo()
//	err = eng.Redo()
//
// Validation and operation failures abort before any mutation; a failed
// Perform leaves history, snapshots, and observers untouched.
package engine
