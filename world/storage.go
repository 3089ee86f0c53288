package world

import (
	"slices"

	"github.com/keelframe/keel/access"
)

// container is the untyped face of one storage: just enough surface for
// structural operations that span every storage.
type container interface {
	removeEntity(id EntityID)
	size() int
}

// store holds the T components of entities.
type store[T any] struct {
	items map[EntityID]T
}

func newStore[T any]() *store[T] {
	return &store[T]{items: make(map[EntityID]T)}
}

func (s *store[T]) removeEntity(id EntityID) { delete(s.items, id) }
func (s *store[T]) size() int                { return len(s.items) }

// ids returns the stored entity IDs in ascending order. Iteration order is
// part of the contract; golden outputs depend on it.
func (s *store[T]) ids() []EntityID {
	out := make([]EntityID, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// unique holds a single world-global value of type T.
type unique[T any] struct {
	value T
	set   bool
}

func (u *unique[T]) removeEntity(EntityID) {}

func (u *unique[T]) size() int {
	if u.set {
		return 1
	}
	return 0
}

func componentCell[T any](w *World) *cell {
	return w.cellFor(access.StorageOf[T](), func() container { return newStore[T]() })
}

func componentStore[T any](w *World) *store[T] {
	return componentCell[T](w).c.(*store[T])
}

// uniqueCell returns the unique storage cell for T. Unlike component
// storages, uniques are only created on explicit insertion; borrowing a
// never-inserted unique fails.
func uniqueCell[T any](w *World, create bool) *cell {
	var mk func() container
	if create {
		mk = func() container { return &unique[T]{} }
	}
	return w.cellFor(access.UniqueOf[T](), mk)
}

func uniqueStore[T any](w *World, create bool) *unique[T] {
	c := uniqueCell[T](w, create)
	if c == nil {
		return nil
	}
	return c.c.(*unique[T])
}
