package container

import "iter"

// Queue is a FIFO container backed by a slice. Consumed head slots are
// reclaimed once they make up half of the backing array.
// The zero value is an empty queue ready to use.
type Queue[E any] struct {
	items []E
	head  int
}

// NewQueue creates an empty queue
func NewQueue[E any]() *Queue[E] {
	return &Queue[E]{}
}

// Enqueue appends e to the back of the queue
func (q *Queue[E]) Enqueue(e E) error {
	if isNil(e) {
		return ErrNilElement
	}

	q.items = append(q.items, e)

	return nil
}

// Dequeue removes and returns the front element
func (q *Queue[E]) Dequeue() (E, error) {
	var zero E
	if q.IsEmpty() {
		return zero, ErrEmptyQueue
	}

	e := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head*2 >= cap(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return e, nil
}

// Peek returns the front element without removing it
func (q *Queue[E]) Peek() (E, error) {
	if q.IsEmpty() {
		var zero E
		return zero, ErrEmptyQueue
	}

	return q.items[q.head], nil
}

// IsEmpty reports whether the queue holds no elements
func (q *Queue[E]) IsEmpty() bool {
	return q.head == len(q.items)
}

// Len returns the number of elements
func (q *Queue[E]) Len() int {
	return len(q.items) - q.head
}

// Clear removes all elements
func (q *Queue[E]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}

// All iterates from the front of the queue to the back.
// The queue must not be modified while iterating.
func (q *Queue[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := q.head; i < len(q.items); i++ {
			if !yield(q.items[i]) {
				return
			}
		}
	}
}
