package pqueue

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Queue is an indexed binary min-heap of unique items.
//
// slots holds the heap array; index maps each live item to its slot.
// The zero value is not usable, construct with New.
type Queue[T comparable, P constraints.Ordered] struct {
	slots []slot[T, P]
	index map[T]int
}

// New builds a queue from the given entries.
// The index is filled first, then heap order is restored bottom-up by sinking
// every non-leaf slot in descending index order.
// Returns ErrDuplicateItem if an item appears more than once.
// Complexity: O(n).
func New[T comparable, P constraints.Ordered](entries ...Entry[T, P]) (*Queue[T, P], error) {
	q := &Queue[T, P]{
		slots: make([]slot[T, P], len(entries)),
		index: make(map[T]int, len(entries)),
	}
	for i, e := range entries {
		if _, dup := q.index[e.Item]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateItem, e.Item)
		}
		q.slots[i] = slot[T, P]{entry: e, live: true}
		q.index[e.Item] = i
	}
	for i := len(q.slots)/2 - 1; i >= 0; i-- {
		q.sink(i)
	}

	return q, nil
}

// Len returns the number of entries in the queue.
func (q *Queue[T, P]) Len() int { return len(q.slots) }

// Contains reports whether item is queued. O(1).
func (q *Queue[T, P]) Contains(item T) bool {
	_, ok := q.index[item]
	return ok
}

// Priority returns the current priority of item and whether it is queued.
func (q *Queue[T, P]) Priority(item T) (P, bool) {
	i, ok := q.index[item]
	if !ok {
		var zero P
		return zero, false
	}

	return q.slots[i].entry.Priority, true
}

// FindMin returns the minimum entry without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T, P]) FindMin() (Entry[T, P], error) {
	if len(q.slots) == 0 {
		return Entry[T, P]{}, ErrEmptyQueue
	}

	return q.slots[0].entry, nil
}

// PopMin removes and returns the minimum entry.
//
// The last slot is detached first. If that empties the heap it was the
// minimum. Otherwise it replaces the root and is placed by sink.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(log n).
func (q *Queue[T, P]) PopMin() (Entry[T, P], error) {
	n := len(q.slots)
	if n == 0 {
		return Entry[T, P]{}, ErrEmptyQueue
	}

	last := q.slots[n-1].entry
	q.slots[n-1] = slot[T, P]{}
	q.slots = q.slots[:n-1]
	delete(q.index, last.Item)
	if len(q.slots) == 0 {
		return last, nil
	}

	top := q.slots[0].entry
	delete(q.index, top.Item)
	q.slots[0].live = false
	q.place(0, last)
	q.sink(0)

	return top, nil
}

// Insert adds item with the given priority.
// Returns ErrDuplicateItem if item is already queued.
// Complexity: O(log n).
func (q *Queue[T, P]) Insert(item T, priority P) error {
	if _, ok := q.index[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	q.slots = append(q.slots, slot[T, P]{})
	pos := len(q.slots) - 1
	q.place(pos, Entry[T, P]{Priority: priority, Item: item})
	q.rise(0, pos)

	return nil
}

// DecreaseKey lowers the priority of a queued item.
// The entry is rewritten in place and only ever moves toward the root.
// Returns ErrItemNotFound if item is absent, ErrInvalidDecrease if priority
// is not strictly smaller than the current one.
// Complexity: O(log n).
func (q *Queue[T, P]) DecreaseKey(item T, priority P) error {
	pos, ok := q.index[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	current := q.slots[pos].entry.Priority
	if !(priority < current) {
		return fmt.Errorf("%w: %v from %v to %v", ErrInvalidDecrease, item, current, priority)
	}
	q.place(pos, Entry[T, P]{Priority: priority, Item: item})
	q.rise(0, pos)

	return nil
}

// place writes e into slot i keeping the item↔slot bijection:
//   - a different live item previously in slot i loses its index entry;
//   - the slot e.Item occupied before (if any, and not i) becomes a tombstone.
func (q *Queue[T, P]) place(i int, e Entry[T, P]) {
	if old := q.slots[i]; old.live && old.entry.Item != e.Item {
		if q.index[old.entry.Item] == i {
			delete(q.index, old.entry.Item)
		}
	}
	if prev, ok := q.index[e.Item]; ok && prev != i && prev < len(q.slots) {
		if s := q.slots[prev]; s.live && s.entry.Item == e.Item {
			q.slots[prev].live = false
		}
	}
	q.slots[i] = slot[T, P]{entry: e, live: true}
	q.index[e.Item] = i
}

// rise moves the entry at pos toward start while its parent is larger.
func (q *Queue[T, P]) rise(start, pos int) {
	e := q.slots[pos].entry
	for pos > start {
		parent := (pos - 1) / 2
		p := q.slots[parent].entry
		if !(e.Priority < p.Priority) {
			break
		}
		q.place(pos, p)
		pos = parent
	}
	q.place(pos, e)
}

// sink places the entry at pos in two phases: the smaller child is promoted
// into the hole until a leaf is reached (the right child wins only if it is
// strictly smaller than the left), then the entry rises from that leaf back
// toward pos.
func (q *Queue[T, P]) sink(pos int) {
	n := len(q.slots)
	start := pos
	e := q.slots[pos].entry
	child := 2*pos + 1
	for child < n {
		if right := child + 1; right < n && q.slots[right].entry.Priority < q.slots[child].entry.Priority {
			child = right
		}
		q.place(pos, q.slots[child].entry)
		pos = child
		child = 2*pos + 1
	}
	q.place(pos, e)
	q.rise(start, pos)
}
