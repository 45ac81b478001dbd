package pqueue

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue is returned by FindMin and PopMin when no entries remain.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrDuplicateItem is returned when an item is inserted twice.
	ErrDuplicateItem = errors.New("pqueue: item already in queue")

	// ErrInvalidDecrease is returned when DecreaseKey is given a priority
	// that is not strictly smaller than the current one.
	ErrInvalidDecrease = errors.New("pqueue: new priority is not a decrease")

	// ErrItemNotFound is returned when DecreaseKey refers to an absent item.
	ErrItemNotFound = errors.New("pqueue: item not in queue")
)

// Entry pairs an item with its priority.
type Entry[T comparable, P constraints.Ordered] struct {
	Priority P
	Item     T
}

// String renders the entry as "(priority, item)".
func (e Entry[T, P]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Priority, e.Item)
}

// slot is one position of the heap array. A slot with live == false is a
// tombstone: its former item has moved elsewhere and the slot is about to be
// overwritten.
type slot[T comparable, P constraints.Ordered] struct {
	entry Entry[T, P]
	live  bool
}
