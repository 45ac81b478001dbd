// Package pqueue provides an indexed binary min-heap: a priority queue that
// also knows, for every item it holds, the slot that item currently occupies.
//
// What
//
//   - Insert, PopMin and DecreaseKey in O(log n); FindMin, Contains and
//     Priority in O(1).
//   - Items are unique within a queue. Priorities are any ordered type
//     (integers, floats, strings).
//   - The queue can be seeded with an initial set of entries, which is
//     heapified bottom-up in O(n).
//
// Why
//
//	Dijkstra-style relaxation needs to lower the priority of an item that is
//	already queued. A plain container/heap forces either a linear search for
//	the item or "lazy" duplicate pushes. Keeping an item→slot index turns the
//	decrease into a direct O(log n) sift toward the root.
//
// Invariants
//
//   - Heap order: for every slot k with children 2k+1 and 2k+2,
//     priority(k) ≤ priority(child).
//   - Index bijection: for every live item X, slots[index[X]] holds X.
//     Every slot write goes through a single primitive that evicts the
//     previous occupant's index entry and tombstones the item's old slot.
//
// Usage
//
//	q, err := pqueue.New(
//	    pqueue.Entry[string, int]{Priority: 5, Item: "E"},
//	    pqueue.Entry[string, int]{Priority: 2, Item: "B"},
//	)
//	if err != nil {
//	    // ErrDuplicateItem when the seed repeats an item
//	}
//	_ = q.Insert("A", 1)
//	_ = q.DecreaseKey("E", 0)
//	top, _ := q.PopMin() // {0 E}
//
// Errors
//
//   - ErrEmptyQueue      FindMin/PopMin on an empty queue.
//   - ErrDuplicateItem   Insert (or New) with an item already present.
//   - ErrInvalidDecrease DecreaseKey with a priority that is not strictly smaller.
//   - ErrItemNotFound    DecreaseKey on an absent item.
//
// A Queue is not safe for concurrent use; it is meant to live inside a
// single algorithm call.
package pqueue
