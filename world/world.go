package world

import (
	"sync"

	"github.com/keelframe/keel/access"
)

// EntityID identifies one entity. IDs are allocated sequentially and never
// reused within a World.
type EntityID uint64

// World is the shared execution context. It owns storages keyed by
// access.StorageID, entity liveness, and the whole-set borrow lock.
type World struct {
	// mu guards the storages map and entity bookkeeping. It is held only
	// for short, non-reentrant critical sections and never while user code
	// runs.
	mu       sync.Mutex
	storages map[access.StorageID]*cell
	nextID   EntityID
	alive    map[EntityID]struct{}

	// allMu arbitrates the entire storage set as one resource. Per-storage
	// borrows hold it shared; AllView and direct operations hold it
	// exclusive.
	allMu sync.RWMutex
}

// cell pairs one storage with its borrow lock.
type cell struct {
	mu sync.RWMutex
	c  container
}

// New creates an empty world.
func New() *World {
	return &World{
		storages: make(map[access.StorageID]*cell),
		alive:    make(map[EntityID]struct{}),
	}
}

// cellFor returns the cell for id, creating it with mk when absent.
// A nil mk means "do not create"; the caller gets nil for a missing storage.
func (w *World) cellFor(id access.StorageID, mk func() container) *cell {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.storages[id]
	if !ok {
		if mk == nil {
			return nil
		}
		c = &cell{c: mk()}
		w.storages[id] = c
	}
	return c
}

// spawn allocates a live entity. Caller must hold allMu exclusively.
func (w *World) spawn() EntityID {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	id := w.nextID
	w.alive[id] = struct{}{}
	return id
}

// despawn removes the entity and its components from every storage.
// Caller must hold allMu exclusively.
func (w *World) despawn(id EntityID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.alive, id)
	for _, c := range w.storages {
		c.c.removeEntity(id)
	}
}

// Alive reports whether the entity exists and has not been deleted.
func (w *World) Alive(id EntityID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.alive[id]
	return ok
}

// NewEntity creates an entity outside any system.
func (w *World) NewEntity() EntityID {
	w.allMu.Lock()
	defer w.allMu.Unlock()
	return w.spawn()
}

// DeleteEntity deletes an entity, outside any system, removing its
// components from every storage.
func (w *World) DeleteEntity(id EntityID) {
	w.allMu.Lock()
	defer w.allMu.Unlock()
	w.despawn(id)
}

// Add sets the T component of an entity, outside any system.
func Add[T any](w *World, id EntityID, value T) {
	w.allMu.Lock()
	defer w.allMu.Unlock()
	componentStore[T](w).items[id] = value
}

// Remove deletes the T component of an entity, outside any system.
func Remove[T any](w *World, id EntityID) {
	w.allMu.Lock()
	defer w.allMu.Unlock()
	delete(componentStore[T](w).items, id)
}

// Get reads the T component of an entity, outside any system.
func Get[T any](w *World, id EntityID) (T, bool) {
	w.allMu.Lock()
	defer w.allMu.Unlock()
	v, ok := componentStore[T](w).items[id]
	return v, ok
}

// Each visits every T component in ascending entity order, outside any
// system. fn must not touch the world.
func Each[T any](w *World, fn func(EntityID, T)) {
	w.allMu.Lock()
	defer w.allMu.Unlock()
	s := componentStore[T](w)
	for _, id := range s.ids() {
		fn(id, s.items[id])
	}
}

// AddUnique inserts or replaces the unique T value, outside any system.
// Uniques must be inserted before any system borrows them.
func AddUnique[T any](w *World, value T) {
	w.allMu.Lock()
	defer w.allMu.Unlock()
	u := uniqueStore[T](w, true)
	u.value, u.set = value, true
}

// GetUnique reads the unique T value, outside any system.
func GetUnique[T any](w *World) (T, bool) {
	w.allMu.Lock()
	defer w.allMu.Unlock()
	u := uniqueStore[T](w, false)
	if u == nil || !u.set {
		var zero T
		return zero, false
	}
	return u.value, true
}
