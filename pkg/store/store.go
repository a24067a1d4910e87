package store

import "slices"

// Store is an ordered collection of records of one type.
// Insertion order is preserved and decides which record a predicate
// lookup returns when several match.
type Store[T any] struct {
	items []T
}

// New creates an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{items: make([]T, 0)}
}

// Add appends item. It always succeeds.
func (s *Store[T]) Add(item T) {
	s.items = append(s.items, item)
}

// All returns a copy of the records in insertion order.
// Changing the returned slice does not affect the store.
func (s *Store[T]) All() []T {
	return slices.Clone(s.items)
}

// Len returns the number of records held.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// FindFirst returns the first record, in insertion order, for which match
// reports true. The bool is false when nothing matches.
func (s *Store[T]) FindFirst(match func(T) bool) (T, bool) {
	if i := slices.IndexFunc(s.items, match); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// RemoveFirst deletes the first record for which match reports true and
// reports whether a record was removed.
func (s *Store[T]) RemoveFirst(match func(T) bool) bool {
	i := slices.IndexFunc(s.items, match)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// ReplaceFirst overwrites the first record for which match reports true
// with item, keeping its position. It reports whether a record was replaced.
func (s *Store[T]) ReplaceFirst(match func(T) bool, item T) bool {
	i := slices.IndexFunc(s.items, match)
	if i < 0 {
		return false
	}
	s.items[i] = item
	return true
}

// Reset replaces the whole contents with a copy of items.
func (s *Store[T]) Reset(items []T) {
	s.items = append(make([]T, 0, len(items)), items...)
}
