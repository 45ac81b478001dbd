package pqueue

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// checkInvariants asserts heap order over live slots and the item↔slot bijection.
func checkInvariants[T comparable, P interface{ ~int | ~float64 }](t *testing.T, q *Queue[T, P]) {
	t.Helper()
	require.Equal(t, len(q.slots), len(q.index), "index size drifted:\n%s", spew.Sdump(q.slots, q.index))
	for i, s := range q.slots {
		require.True(t, s.live, "tombstone left at slot %d:\n%s", i, spew.Sdump(q.slots))
		pos, ok := q.index[s.entry.Item]
		require.True(t, ok, "item %v at slot %d missing from index", s.entry.Item, i)
		require.Equal(t, i, pos, "index for %v points to %d, slot is %d", s.entry.Item, pos, i)
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(q.slots) {
				require.LessOrEqual(t, s.entry.Priority, q.slots[c].entry.Priority,
					"heap order broken between %d and %d:\n%s", i, c, spew.Sdump(q.slots))
			}
		}
	}
}

func TestNew_HeapifiesSeed(t *testing.T) {
	q, err := New(
		Entry[string, int]{5, "E"},
		Entry[string, int]{1, "A"},
		Entry[string, int]{4, "D"},
		Entry[string, int]{2, "B"},
		Entry[string, int]{3, "C"},
	)
	require.NoError(t, err)
	checkInvariants(t, q)
	require.Equal(t, "A", q.slots[0].entry.Item)
}

func TestPlace_EvictsAndTombstones(t *testing.T) {
	q, err := New(Entry[string, int]{1, "A"}, Entry[string, int]{2, "B"})
	require.NoError(t, err)

	// Move B over A: A must leave the index, B's old slot becomes a tombstone.
	q.place(0, q.slots[1].entry)
	require.False(t, q.Contains("A"))
	require.Equal(t, 0, q.index["B"])
	require.False(t, q.slots[1].live)
	require.True(t, q.slots[0].live)
}

func TestRandomOperations_KeepInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q, err := New[int, int]()
	require.NoError(t, err)
	model := make(map[int]int)

	for step := 0; step < 5000; step++ {
		switch op := r.Intn(3); {
		case op == 0 || len(model) == 0:
			item := r.Intn(400)
			prio := r.Intn(1000)
			err := q.Insert(item, prio)
			if _, dup := model[item]; dup {
				require.ErrorIs(t, err, ErrDuplicateItem)
			} else {
				require.NoError(t, err)
				model[item] = prio
			}
		case op == 1:
			e, err := q.PopMin()
			require.NoError(t, err)
			for _, p := range model {
				require.LessOrEqual(t, e.Priority, p)
			}
			require.Equal(t, model[e.Item], e.Priority)
			delete(model, e.Item)
		default:
			for item, p := range model {
				np := p - 1 - r.Intn(50)
				require.NoError(t, q.DecreaseKey(item, np))
				model[item] = np
				break
			}
		}
		checkInvariants(t, q)
	}
}
