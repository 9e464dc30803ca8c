package container

import (
	"errors"
	"iter"
	"reflect"
)

// Sentinel errors
var (
	ErrNilElement = errors.New("cannot add nil element")
	ErrEmptyStack = errors.New("stack is empty")
	ErrEmptyQueue = errors.New("queue is empty")
)

// Stack is a LIFO container backed by a slice.
// The zero value is an empty stack ready to use.
type Stack[E any] struct {
	items []E
}

// NewStack creates an empty stack
func NewStack[E any]() *Stack[E] {
	return &Stack[E]{}
}

// Push places e on top of the stack
func (s *Stack[E]) Push(e E) error {
	if isNil(e) {
		return ErrNilElement
	}

	s.items = append(s.items, e)

	return nil
}

// Pop removes and returns the top element
func (s *Stack[E]) Pop() (E, error) {
	var zero E
	if len(s.items) == 0 {
		return zero, ErrEmptyStack
	}

	last := len(s.items) - 1
	e := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]

	return e, nil
}

// Peek returns the top element without removing it
func (s *Stack[E]) Peek() (E, error) {
	if len(s.items) == 0 {
		var zero E
		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds no elements
func (s *Stack[E]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of elements
func (s *Stack[E]) Len() int {
	return len(s.items)
}

// Clear removes all elements
func (s *Stack[E]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// All iterates from the top of the stack to the bottom.
// The stack must not be modified while iterating.
func (s *Stack[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// isNil reports whether e is an absent value (nil interface, pointer, map,
// slice, func or chan).
func isNil[E any](e E) bool {
	v := reflect.ValueOf(any(e))
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
