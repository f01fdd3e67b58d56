package store

import (
	"errors"
	"testing"
)

type widget struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
	Count int    `json:"count"`
}

func (w widget) RecordID() string { return w.ID }

func TestSeedOnlyOnce(t *testing.T) {
	s := New[widget]()
	if !s.Seed([]widget{{ID: "a"}, {ID: "b"}}) {
		t.Fatalf("first seed should apply")
	}
	if s.Seed([]widget{{ID: "c"}}) {
		t.Fatalf("second seed should be a no-op")
	}
	if got := s.Len(); got != 2 {
		t.Fatalf("expected 2 records after reseed attempt, got %d", got)
	}
}

func TestInsertGetRoundTrip(t *testing.T) {
	s := New[widget]()
	s.Insert(widget{ID: "w1", Name: "anvil", Count: 3})
	got, err := s.Get("w1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "anvil" || got.Count != 3 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := New[widget]()
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := New[widget]()
	for _, id := range []string{"c", "a", "b"} {
		s.Insert(widget{ID: id})
	}
	all := s.List(nil)
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	for i, want := range []string{"c", "a", "b"} {
		if all[i].ID != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, all[i].ID)
		}
	}
}

func TestListPredicate(t *testing.T) {
	s := New[widget]()
	s.Insert(widget{ID: "1", Owner: "alice"})
	s.Insert(widget{ID: "2", Owner: "bob"})
	s.Insert(widget{ID: "3", Owner: "alice"})
	mine := s.List(func(w widget) bool { return w.Owner == "alice" })
	if len(mine) != 2 || mine[0].ID != "1" || mine[1].ID != "3" {
		t.Fatalf("unexpected filtered set: %+v", mine)
	}
}

func TestUpdateInPlace(t *testing.T) {
	s := New[widget]()
	s.Insert(widget{ID: "1", Name: "first"})
	s.Insert(widget{ID: "2", Name: "second"})
	updated, err := s.Update("1", func(w widget) (widget, error) {
		w.Count = 9
		return w, nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Count != 9 || updated.Name != "first" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	all := s.List(nil)
	if all[0].ID != "1" {
		t.Fatalf("update must not move the record, got order %+v", all)
	}
}

func TestUpdateMissing(t *testing.T) {
	s := New[widget]()
	_, err := s.Update("ghost", func(w widget) (widget, error) { return w, nil })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteReturnsRemoved(t *testing.T) {
	s := New[widget]()
	s.Insert(widget{ID: "1"})
	s.Insert(widget{ID: "2"})
	s.Insert(widget{ID: "3"})
	removed, err := s.Delete("2")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed.ID != "2" {
		t.Fatalf("expected removed id 2, got %q", removed.ID)
	}
	if _, err := s.Get("2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted record still present")
	}
	all := s.List(nil)
	if len(all) != 2 || all[0].ID != "1" || all[1].ID != "3" {
		t.Fatalf("unexpected order after delete: %+v", all)
	}
}

func TestDeleteMissingDoesNotMutate(t *testing.T) {
	s := New[widget]()
	s.Insert(widget{ID: "1"})
	if _, err := s.Delete("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("store mutated by failed delete")
	}
}

func TestMergePatchSuppliedFieldsWin(t *testing.T) {
	base := widget{ID: "1", Name: "old", Owner: "alice", Count: 4}
	merged, err := MergePatch(base, []byte(`{"name":"new","count":7}`))
	if err != nil {
		t.Fatalf("MergePatch: %v", err)
	}
	if merged.Name != "new" || merged.Count != 7 {
		t.Fatalf("patched fields not applied: %+v", merged)
	}
	if merged.Owner != "alice" || merged.ID != "1" {
		t.Fatalf("unsupplied fields not retained: %+v", merged)
	}
}

func TestMergePatchExplicitNull(t *testing.T) {
	type holder struct {
		ID  string  `json:"id"`
		Ref *string `json:"ref"`
	}
	ref := "x"
	merged, err := MergePatch(holder{ID: "1", Ref: &ref}, []byte(`{"ref":null}`))
	if err != nil {
		t.Fatalf("MergePatch: %v", err)
	}
	if merged.Ref != nil {
		t.Fatalf("explicit null should clear the field, got %v", *merged.Ref)
	}
}

func TestMergePatchRejectsInvalidJSON(t *testing.T) {
	if _, err := MergePatch(widget{ID: "1"}, []byte(`{`)); err == nil {
		t.Fatalf("expected error for malformed patch")
	}
}
