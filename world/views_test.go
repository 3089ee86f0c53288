package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelframe/keel/access"
)

func TestView_AppendAccess(t *testing.T) {
	var infos []access.Info
	View[position]{}.AppendAccess(&infos)
	ViewMut[velocity]{}.AppendAccess(&infos)
	UniqueView[tick]{}.AppendAccess(&infos)
	UniqueViewMut[tick]{}.AppendAccess(&infos)
	AllView{}.AppendAccess(&infos)

	require.Len(t, infos, 5)
	assert.Equal(t, access.Info{
		Name:         "View<world.position>",
		Storage:      access.StorageOf[position](),
		Mode:         access.Shared,
		Transferable: true,
		Shareable:    true,
	}, infos[0])
	assert.Equal(t, access.Exclusive, infos[1].Mode)
	assert.Equal(t, access.UniqueOf[tick](), infos[2].Storage)
	assert.Equal(t, access.Exclusive, infos[3].Mode)
	assert.Equal(t, access.AllStoragesSentinel(), infos[4])
}

func TestView_SharedBorrowsCoexist(t *testing.T) {
	w := New()
	e := w.NewEntity()
	Add(w, e, position{X: 1, Y: 2})

	v1, err := View[position]{}.Borrow(w)
	require.NoError(t, err)
	v2, err := View[position]{}.Borrow(w)
	require.NoError(t, err)

	p, ok := v1.Get(e)
	require.True(t, ok)
	assert.Equal(t, position{X: 1, Y: 2}, p)
	assert.Equal(t, 1, v2.Len())

	v2.Release()
	v1.Release()

	// Exclusive works again once the shared borrows are gone.
	vm, err := ViewMut[position]{}.Borrow(w)
	require.NoError(t, err)
	vm.Release()
}

func TestViewMut_ExcludesOtherBorrowsOnSameStorage(t *testing.T) {
	w := New()

	vm, err := ViewMut[position]{}.Borrow(w)
	require.NoError(t, err)

	_, err = View[position]{}.Borrow(w)
	require.Error(t, err)
	assert.True(t, IsBorrowError(err))

	_, err = ViewMut[position]{}.Borrow(w)
	require.Error(t, err)
	assert.True(t, IsBorrowError(err))

	// A different storage is untouched by the conflict.
	vv, err := View[velocity]{}.Borrow(w)
	require.NoError(t, err)
	vv.Release()

	vm.Release()

	v, err := View[position]{}.Borrow(w)
	require.NoError(t, err)
	v.Release()
}

func TestViewMut_EachWritesBack(t *testing.T) {
	w := New()
	e1 := w.NewEntity()
	e2 := w.NewEntity()
	Add(w, e1, position{X: 1})
	Add(w, e2, position{X: 2})

	vm, err := ViewMut[position]{}.Borrow(w)
	require.NoError(t, err)
	vm.Each(func(id EntityID, p *position) {
		p.X *= 10
	})
	vm.Release()

	p1, _ := Get[position](w, e1)
	p2, _ := Get[position](w, e2)
	assert.Equal(t, int64(10), p1.X)
	assert.Equal(t, int64(20), p2.X)
}

func TestUniqueView_MissingUnique(t *testing.T) {
	w := New()

	_, err := UniqueView[tick]{}.Borrow(w)
	require.Error(t, err)
	assert.True(t, IsMissingUnique(err))
	assert.False(t, IsBorrowError(err))

	_, err = UniqueViewMut[tick]{}.Borrow(w)
	require.Error(t, err)
	assert.True(t, IsMissingUnique(err))

	// A failed acquisition must leave no lock behind.
	AddUnique(w, tick{Frame: 1})
	uv, err := UniqueViewMut[tick]{}.Borrow(w)
	require.NoError(t, err)
	uv.Set(tick{Frame: 2})
	uv.Release()

	got, ok := GetUnique[tick](w)
	require.True(t, ok)
	assert.Equal(t, int64(2), got.Frame)
}

func TestAllView_ExcludesEverything(t *testing.T) {
	w := New()

	all, err := AllView{}.Borrow(w)
	require.NoError(t, err)

	_, err = View[position]{}.Borrow(w)
	require.Error(t, err)
	assert.True(t, IsBorrowError(err))

	_, err = AllView{}.Borrow(w)
	require.Error(t, err)
	assert.True(t, IsBorrowError(err))

	all.Release()

	v, err := View[position]{}.Borrow(w)
	require.NoError(t, err)

	// And the other direction: any live view blocks the whole set.
	_, err = AllView{}.Borrow(w)
	require.Error(t, err)
	assert.True(t, IsBorrowError(err))
	v.Release()
}

func TestAllView_StructuralOperations(t *testing.T) {
	w := New()

	all, err := AllView{}.Borrow(w)
	require.NoError(t, err)

	e := all.NewEntity()
	Insert(all, e, position{X: 4})
	Insert(all, e, velocity{DX: 1})
	InsertUnique(all, tick{Frame: 3})
	all.Release()

	assert.True(t, w.Alive(e))
	p, ok := Get[position](w, e)
	require.True(t, ok)
	assert.Equal(t, int64(4), p.X)
	tk, ok := GetUnique[tick](w)
	require.True(t, ok)
	assert.Equal(t, int64(3), tk.Frame)

	all, err = AllView{}.Borrow(w)
	require.NoError(t, err)
	RemoveFrom[velocity](all, e)
	all.DeleteEntity(e)
	all.Release()

	assert.False(t, w.Alive(e))
	_, ok = Get[position](w, e)
	assert.False(t, ok)
}
