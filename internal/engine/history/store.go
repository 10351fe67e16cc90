package history

import (
	"errors"

	"github.com/dshills/reckon/internal/engine/calc"
)

// DefaultMaxSize is the store capacity used when none is configured.
const DefaultMaxSize = 100

// ErrEmpty is returned by accessors that require at least one entry.
var ErrEmpty = errors.New("history is empty")

// Store is a bounded, ordered sequence of completed calculations.
// It is not safe for concurrent use; the engine serializes access.
type Store struct {
	entries []calc.Calculation
	maxSize int
}

// NewStore creates a store holding at most maxSize entries.
func NewStore(maxSize int) *Store {
	if maxSize < 1 {
		maxSize = DefaultMaxSize
	}
	return &Store{maxSize: maxSize}
}

// Add appends a calculation, dropping the oldest entries if the store
// would exceed its capacity.
func (s *Store) Add(c calc.Calculation) {
	s.entries = append(s.entries, c)
	s.trim()
}

// All returns an independent copy of the entries in insertion order.
func (s *Store) All() []calc.Calculation {
	out := make([]calc.Calculation, len(s.entries))
	copy(out, s.entries)
	return out
}

// SetAll replaces the contents with a copy of entries, re-applying the
// capacity invariant.
func (s *Store) SetAll(entries []calc.Calculation) {
	s.entries = make([]calc.Calculation, len(entries))
	copy(s.entries, entries)
	s.trim()
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.entries = nil
}

// Last returns the most recent calculation.
func (s *Store) Last() (calc.Calculation, error) {
	if len(s.entries) == 0 {
		return calc.Calculation{}, ErrEmpty
	}
	return s.entries[len(s.entries)-1], nil
}

// RemoveLast removes the most recent calculation.
func (s *Store) RemoveLast() error {
	if len(s.entries) == 0 {
		return ErrEmpty
	}
	s.entries = s.entries[:len(s.entries)-1]
	return nil
}

// Len returns the number of stored calculations.
func (s *Store) Len() int {
	return len(s.entries)
}

// MaxSize returns the store capacity.
func (s *Store) MaxSize() int {
	return s.maxSize
}

// Snapshot returns an immutable copy of the current contents.
func (s *Store) Snapshot() Snapshot {
	entries := make([]calc.Calculation, len(s.entries))
	copy(entries, s.entries)
	return Snapshot{entries: entries}
}

// Restore replaces the contents with the snapshot's entries,
// re-applying the capacity invariant.
func (s *Store) Restore(snap Snapshot) {
	s.SetAll(snap.entries)
}

func (s *Store) trim() {
	if len(s.entries) > s.maxSize {
		excess := len(s.entries) - s.maxSize
		s.entries = s.entries[excess:]
	}
}
