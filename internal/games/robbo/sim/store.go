package sim

import "slices"

// Store is a sparse container for one component type.
// Entities are kept sorted by handle, so iteration follows creation order.
// Stores are not safe for concurrent use; the world is stepped by one goroutine.
type Store[T any] struct {
	components map[Entity]T
	entities   []Entity
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T),
		entities:   make([]Entity, 0, 64),
	}
}

// Set attaches or replaces the component of e.
func (s *Store[T]) Set(e Entity, val T) {
	if _, exists := s.components[e]; !exists {
		i, _ := slices.BinarySearch(s.entities, e)
		s.entities = slices.Insert(s.entities, i, e)
	}
	s.components[e] = val
}

// Get returns the component of e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has reports whether e carries this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove detaches the component from e. Missing entities are ignored.
func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	if i, found := slices.BinarySearch(s.entities, e); found {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

// Entities returns a copy of the entities carrying this component in creation order.
func (s *Store[T]) Entities() []Entity {
	return slices.Clone(s.entities)
}

// Len returns the number of entities carrying this component.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes the component from every entity.
func (s *Store[T]) Clear() {
	clear(s.components)
	s.entities = s.entities[:0]
}
