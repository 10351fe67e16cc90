package history

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dshills/reckon/internal/engine/calc"
)

// For all sequences of N adds with capacity k, the store holds exactly
// min(N,k) entries equal to the most recent k inputs, in order.
func TestStoreBoundProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("store keeps the newest min(N,k) entries in order", prop.ForAll(
		func(n, k int) bool {
			s := NewStore(k)
			for i := 0; i < n; i++ {
				s.Add(testCalc(i))
			}

			wantLen := n
			if wantLen > k {
				wantLen = k
			}
			all := s.All()
			if len(all) != wantLen {
				return false
			}
			for i, c := range all {
				if !c.Equal(testCalc(n - wantLen + i)) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 300),
		gen.IntRange(1, 50),
	))

	properties.Property("capacity invariant holds through SetAll", prop.ForAll(
		func(n, k int) bool {
			entries := make([]calc.Calculation, n)
			for i := range entries {
				entries[i] = testCalc(i)
			}
			s := NewStore(k)
			s.SetAll(entries)
			return s.Len() <= k
		},
		gen.IntRange(0, 300),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}

// Any sequence of saves followed by an undo exposes the previous
// snapshot, and a redo brings the undone snapshot back.
func TestStacksRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("undo then redo restores the newest snapshot", prop.ForAll(
		func(saves int) bool {
			st := NewStacks()
			for i := 1; i <= saves; i++ {
				entries := make([]calc.Calculation, i)
				for j := range entries {
					entries[j] = testCalc(j)
				}
				st.Save(Snapshot{entries: entries})
			}

			prev, err := st.Undo()
			if err != nil {
				return false
			}
			if prev.Len() != saves-1 {
				return false
			}

			redone, err := st.Redo()
			if err != nil {
				return false
			}
			return redone.Len() == saves && !st.CanRedo()
		},
		gen.IntRange(1, 30),
	))

	properties.TestingRun(t)
}
