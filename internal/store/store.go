// Package store holds the process-local entity collections. Each store is an
// insertion-ordered slice guarded by one mutex, so the seed-then-mutate
// sequence for a given entity type is serialized.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound reports that no record with the requested id exists.
var ErrNotFound = errors.New("record not found")

// Record is any entity that can live in a Store.
type Record interface {
	RecordID() string
}

// Store is an insertion-ordered in-memory collection of one entity type.
type Store[T Record] struct {
	mu     sync.RWMutex
	items  []T
	seeded bool
}

// New returns an empty store.
func New[T Record]() *Store[T] {
	return &Store[T]{}
}

// Seed fills the store with the given records exactly once. Later calls are
// no-ops, which keeps startup seeding idempotent.
func (s *Store[T]) Seed(items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded || len(s.items) > 0 {
		return false
	}
	s.items = append(s.items, items...)
	s.seeded = true
	return true
}

// List returns records matching the predicate in insertion order. A nil
// predicate matches everything. The returned slice is a copy.
func (s *Store[T]) List(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if match == nil || match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Get returns the record with the given id or ErrNotFound.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.RecordID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Insert appends a record.
func (s *Store[T]) Insert(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Update locates the record by id, applies fn to it and stores the result.
// The record keeps its position. Returns ErrNotFound if the id is absent;
// any error from fn aborts the update.
func (s *Store[T]) Update(id string, fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.RecordID() == id {
			updated, err := fn(item)
			if err != nil {
				var zero T
				return zero, err
			}
			s.items[i] = updated
			return updated, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Delete removes the record by id and returns it, or ErrNotFound. The rest
// of the store keeps its order.
func (s *Store[T]) Delete(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.RecordID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Len reports the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
