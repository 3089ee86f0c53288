package world

import (
	"github.com/keelframe/keel/access"
)

// The view types below all follow the same three-step contract consumed by
// the system package: AppendAccess declares storage requirements on the zero
// value, Borrow acquires the view from a World or fails, Release returns it.
// Acquisition is non-blocking; lock order is always whole-set first, then
// the storage cell, and Release unwinds in reverse.

// View grants shared access to the component storage of T for one run.
type View[T any] struct {
	s    *store[T]
	cell *cell
	w    *World
}

// AppendAccess declares shared access to T's component storage.
func (View[T]) AppendAccess(dst *[]access.Info) {
	id := access.StorageOf[T]()
	*dst = append(*dst, access.Info{
		Name:         "View<" + id.TypeName() + ">",
		Storage:      id,
		Mode:         access.Shared,
		Transferable: true,
		Shareable:    true,
	})
}

// Borrow acquires the view, failing on any conflicting live access.
func (View[T]) Borrow(w *World) (View[T], error) {
	id := access.StorageOf[T]()
	if !w.allMu.TryRLock() {
		return View[T]{}, &BorrowError{Storage: access.AllStoragesID().TypeName(), Requested: access.Shared}
	}
	c := componentCell[T](w)
	if !c.mu.TryRLock() {
		w.allMu.RUnlock()
		return View[T]{}, &BorrowError{Storage: id.TypeName(), Requested: access.Shared}
	}
	return View[T]{s: c.c.(*store[T]), cell: c, w: w}, nil
}

func (v View[T]) Release() {
	v.cell.mu.RUnlock()
	v.w.allMu.RUnlock()
}

// Get returns the T component of an entity.
func (v View[T]) Get(id EntityID) (T, bool) {
	t, ok := v.s.items[id]
	return t, ok
}

// Len returns the number of stored components.
func (v View[T]) Len() int { return v.s.size() }

// Each visits components in ascending entity order.
func (v View[T]) Each(fn func(EntityID, T)) {
	for _, id := range v.s.ids() {
		fn(id, v.s.items[id])
	}
}

// ViewMut grants exclusive access to the component storage of T for one run.
type ViewMut[T any] struct {
	s    *store[T]
	cell *cell
	w    *World
}

// AppendAccess declares exclusive access to T's component storage.
func (ViewMut[T]) AppendAccess(dst *[]access.Info) {
	id := access.StorageOf[T]()
	*dst = append(*dst, access.Info{
		Name:         "ViewMut<" + id.TypeName() + ">",
		Storage:      id,
		Mode:         access.Exclusive,
		Transferable: true,
		Shareable:    true,
	})
}

// Borrow acquires the view, failing on any conflicting live access.
func (ViewMut[T]) Borrow(w *World) (ViewMut[T], error) {
	id := access.StorageOf[T]()
	if !w.allMu.TryRLock() {
		return ViewMut[T]{}, &BorrowError{Storage: access.AllStoragesID().TypeName(), Requested: access.Exclusive}
	}
	c := componentCell[T](w)
	if !c.mu.TryLock() {
		w.allMu.RUnlock()
		return ViewMut[T]{}, &BorrowError{Storage: id.TypeName(), Requested: access.Exclusive}
	}
	return ViewMut[T]{s: c.c.(*store[T]), cell: c, w: w}, nil
}

func (v ViewMut[T]) Release() {
	v.cell.mu.Unlock()
	v.w.allMu.RUnlock()
}

// Get returns the T component of an entity.
func (v ViewMut[T]) Get(id EntityID) (T, bool) {
	t, ok := v.s.items[id]
	return t, ok
}

// Set inserts or overwrites the T component of an entity.
func (v ViewMut[T]) Set(id EntityID, value T) {
	v.s.items[id] = value
}

// Delete removes the T component of an entity. The entity itself stays
// alive; deleting entities needs an AllView.
func (v ViewMut[T]) Delete(id EntityID) {
	delete(v.s.items, id)
}

// Len returns the number of stored components.
func (v ViewMut[T]) Len() int { return v.s.size() }

// Each visits components in ascending entity order. Writes through the
// pointer are stored back after fn returns.
func (v ViewMut[T]) Each(fn func(EntityID, *T)) {
	for _, id := range v.s.ids() {
		t := v.s.items[id]
		fn(id, &t)
		v.s.items[id] = t
	}
}

// UniqueView grants shared access to the unique T value.
type UniqueView[T any] struct {
	u    *unique[T]
	cell *cell
	w    *World
}

// AppendAccess declares shared access to T's unique storage.
func (UniqueView[T]) AppendAccess(dst *[]access.Info) {
	id := access.UniqueOf[T]()
	*dst = append(*dst, access.Info{
		Name:         "UniqueView<" + id.TypeName() + ">",
		Storage:      id,
		Mode:         access.Shared,
		Transferable: true,
		Shareable:    true,
	})
}

// Borrow acquires the view. Borrowing a unique that was never inserted
// fails with MissingUniqueError.
func (UniqueView[T]) Borrow(w *World) (UniqueView[T], error) {
	id := access.UniqueOf[T]()
	if !w.allMu.TryRLock() {
		return UniqueView[T]{}, &BorrowError{Storage: access.AllStoragesID().TypeName(), Requested: access.Shared}
	}
	c := uniqueCell[T](w, false)
	if c == nil {
		w.allMu.RUnlock()
		return UniqueView[T]{}, &MissingUniqueError{Storage: id.TypeName()}
	}
	if !c.mu.TryRLock() {
		w.allMu.RUnlock()
		return UniqueView[T]{}, &BorrowError{Storage: id.TypeName(), Requested: access.Shared}
	}
	u := c.c.(*unique[T])
	if !u.set {
		c.mu.RUnlock()
		w.allMu.RUnlock()
		return UniqueView[T]{}, &MissingUniqueError{Storage: id.TypeName()}
	}
	return UniqueView[T]{u: u, cell: c, w: w}, nil
}

func (v UniqueView[T]) Release() {
	v.cell.mu.RUnlock()
	v.w.allMu.RUnlock()
}

// Get returns the unique value.
func (v UniqueView[T]) Get() T { return v.u.value }

// UniqueViewMut grants exclusive access to the unique T value.
type UniqueViewMut[T any] struct {
	u    *unique[T]
	cell *cell
	w    *World
}

// AppendAccess declares exclusive access to T's unique storage.
func (UniqueViewMut[T]) AppendAccess(dst *[]access.Info) {
	id := access.UniqueOf[T]()
	*dst = append(*dst, access.Info{
		Name:         "UniqueViewMut<" + id.TypeName() + ">",
		Storage:      id,
		Mode:         access.Exclusive,
		Transferable: true,
		Shareable:    true,
	})
}

// Borrow acquires the view. Borrowing a unique that was never inserted
// fails with MissingUniqueError.
func (UniqueViewMut[T]) Borrow(w *World) (UniqueViewMut[T], error) {
	id := access.UniqueOf[T]()
	if !w.allMu.TryRLock() {
		return UniqueViewMut[T]{}, &BorrowError{Storage: access.AllStoragesID().TypeName(), Requested: access.Exclusive}
	}
	c := uniqueCell[T](w, false)
	if c == nil {
		w.allMu.RUnlock()
		return UniqueViewMut[T]{}, &MissingUniqueError{Storage: id.TypeName()}
	}
	if !c.mu.TryLock() {
		w.allMu.RUnlock()
		return UniqueViewMut[T]{}, &BorrowError{Storage: id.TypeName(), Requested: access.Exclusive}
	}
	u := c.c.(*unique[T])
	if !u.set {
		c.mu.Unlock()
		w.allMu.RUnlock()
		return UniqueViewMut[T]{}, &MissingUniqueError{Storage: id.TypeName()}
	}
	return UniqueViewMut[T]{u: u, cell: c, w: w}, nil
}

func (v UniqueViewMut[T]) Release() {
	v.cell.mu.Unlock()
	v.w.allMu.RUnlock()
}

// Get returns the unique value.
func (v UniqueViewMut[T]) Get() T { return v.u.value }

// Set replaces the unique value.
func (v UniqueViewMut[T]) Set(value T) { v.u.value = value }

// AllView grants exclusive access to the entire storage set, for structural
// changes no per-storage view can express: creating and deleting entities,
// adding and removing components, inserting uniques.
//
// Its single access record is the reserved entire-storage-set sentinel, so
// registration rejects any system combining an AllView with any other
// parameter.
type AllView struct {
	w *World
}

// AppendAccess declares exclusive access to the whole storage set.
func (AllView) AppendAccess(dst *[]access.Info) {
	*dst = append(*dst, access.AllStoragesSentinel())
}

// Borrow acquires the whole-set lock exclusively, failing if any view is
// live anywhere in the world.
func (AllView) Borrow(w *World) (AllView, error) {
	if !w.allMu.TryLock() {
		return AllView{}, &BorrowError{Storage: access.AllStoragesID().TypeName(), Requested: access.Exclusive}
	}
	return AllView{w: w}, nil
}

func (v AllView) Release() { v.w.allMu.Unlock() }

// NewEntity creates a live entity.
func (v AllView) NewEntity() EntityID { return v.w.spawn() }

// DeleteEntity deletes an entity and its components from every storage.
func (v AllView) DeleteEntity(id EntityID) { v.w.despawn(id) }

// Insert sets the T component of an entity through an AllView.
func Insert[T any](v AllView, id EntityID, value T) {
	componentStore[T](v.w).items[id] = value
}

// RemoveFrom deletes the T component of an entity through an AllView.
func RemoveFrom[T any](v AllView, id EntityID) {
	delete(componentStore[T](v.w).items, id)
}

// InsertUnique inserts or replaces the unique T value through an AllView.
func InsertUnique[T any](v AllView, value T) {
	u := uniqueStore[T](v.w, true)
	u.value, u.set = value, true
}
