// Package repository exposes typed access to the per-entity stores. All
// implementations share one generic CRUD core; entity-specific behavior
// (derived fields, scoped queries) lives in the per-entity files.
package repository

import (
	"strconv"

	"github.com/spec-kit/helpdesk-service/internal/store"
)

type crudRepository[T store.Record] struct {
	records *store.Store[T]
}

func newCRUDRepository[T store.Record]() crudRepository[T] {
	return crudRepository[T]{records: store.New[T]()}
}

// Seed fills the backing store once; later calls are no-ops.
func (r *crudRepository[T]) Seed(items []T) bool {
	return r.records.Seed(items)
}

// List returns matching records in insertion order. A nil predicate matches
// everything.
func (r *crudRepository[T]) List(match func(T) bool) []T {
	return r.records.List(match)
}

// GetByID returns the record or store.ErrNotFound.
func (r *crudRepository[T]) GetByID(id string) (T, error) {
	return r.records.Get(id)
}

// Create appends the record.
func (r *crudRepository[T]) Create(item T) {
	r.records.Insert(item)
}

// Patch shallow-merges a raw JSON object over the stored record. The record
// id is immutable: a patch carrying "id" is overridden with the original.
func (r *crudRepository[T]) Patch(id string, patch []byte) (T, error) {
	return r.records.Update(id, func(existing T) (T, error) {
		merged, err := store.MergePatch(existing, patch)
		if err != nil {
			return existing, err
		}
		if merged.RecordID() != existing.RecordID() {
			merged, err = store.MergePatch(merged, []byte(`{"id":`+strconv.Quote(existing.RecordID())+`}`))
			if err != nil {
				return existing, err
			}
		}
		return merged, nil
	})
}

// Update applies fn to the stored record.
func (r *crudRepository[T]) Update(id string, fn func(T) (T, error)) (T, error) {
	return r.records.Update(id, fn)
}

// Delete removes and returns the record, or store.ErrNotFound.
func (r *crudRepository[T]) Delete(id string) (T, error) {
	return r.records.Delete(id)
}

// Count reports the number of stored records.
func (r *crudRepository[T]) Count() int {
	return r.records.Len()
}
