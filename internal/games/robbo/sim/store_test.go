package sim

import (
	"slices"
	"testing"
)

func TestStoreKeepsCreationOrder(t *testing.T) {
	s := NewStore[int]()
	s.Set(5, 50)
	s.Set(2, 20)
	s.Set(9, 90)
	s.Set(2, 21) // replace keeps a single entry

	if got := s.Entities(); !slices.Equal(got, []Entity{2, 5, 9}) {
		t.Fatalf("Entities() = %v, expected [2 5 9]", got)
	}
	if v, _ := s.Get(2); v != 21 {
		t.Errorf("Get(2) = %d, expected 21", v)
	}

	s.Remove(5)
	s.Remove(42) // missing is a no-op
	if got := s.Entities(); !slices.Equal(got, []Entity{2, 9}) {
		t.Errorf("after Remove, Entities() = %v, expected [2 9]", got)
	}
	if s.Has(5) {
		t.Error("Has(5) should be false after Remove")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", s.Len())
	}
}

func TestStoreEntitiesIsACopy(t *testing.T) {
	s := NewStore[Marker]()
	s.Set(1, Marker{})
	s.Set(2, Marker{})

	list := s.Entities()
	s.Remove(1)
	if len(list) != 2 {
		t.Errorf("snapshot should not change after Remove, got %v", list)
	}
}
