package workload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelframe/keel/system"
	"github.com/keelframe/keel/world"
)

type pos struct{ X int64 }
type vel struct{ DX int64 }
type health struct{ HP int64 }

func moveAll(p world.ViewMut[pos], v world.View[vel]) {
	p.Each(func(id world.EntityID, pp *pos) {
		if vv, ok := v.Get(id); ok {
			pp.X += vv.DX
		}
	})
}

func readPositions(p world.View[pos]) {}
func readVelocities(v world.View[vel]) {}
func healAll(h world.ViewMut[health]) {}
func structural(all world.AllView) {}

func TestBuilder_BuildsInDeclarationOrder(t *testing.T) {
	wl, err := New("update").
		Add(system.New2(moveAll)).
		Add(system.New1(healAll)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "update", wl.Name())
	assert.Equal(t, 2, wl.Len())
	names := wl.Systems()
	require.Len(t, names, 2)
	assert.Contains(t, names[0], "moveAll")
	assert.Contains(t, names[1], "healAll")
}

func TestBuilder_FirstErrorSticks(t *testing.T) {
	// The second Add carries an invalid system; the third is valid but must
	// not resurrect the build.
	_, err := New("broken").
		Add(system.New1(readPositions)).
		Add(system.New2(func(a world.ViewMut[pos], b world.ViewMut[pos]) {})).
		Add(system.New1(healAll)).
		Build()
	require.Error(t, err)
	assert.True(t, system.IsMultipleViewsMut(err), "conversion error surfaces through Build")
}

func TestBuilder_AddSystemPassthrough(t *testing.T) {
	d, err := system.New1(readPositions)
	require.NoError(t, err)

	wl, err := New("w").AddSystem(d).Build()
	require.NoError(t, err)
	require.Equal(t, 1, wl.Len())
	assert.Equal(t, d.Name(), wl.Systems()[0])
}

func TestRequirements_MatchDescriptorAccesses(t *testing.T) {
	wl, err := New("update").
		Add(system.New2(moveAll)).
		Add(system.New1(structural)).
		Add(system.New0(func() {})).
		Build()
	require.NoError(t, err)

	reqs := wl.Requirements()
	require.Len(t, reqs, 3)
	assert.Len(t, reqs[0].Accesses, 2)
	assert.Len(t, reqs[1].Accesses, 1)
	assert.Empty(t, reqs[2].Accesses)
	for _, r := range reqs {
		assert.NotZero(t, r.TypeID)
		assert.NotEmpty(t, r.System)
	}
}

func TestPlan_DisjointSystemsShareABatch(t *testing.T) {
	wl, err := New("update").
		Add(system.New2(moveAll)). // pos excl, vel shared
		Add(system.New1(healAll)). // health excl: disjoint from moveAll
		Build()
	require.NoError(t, err)

	p := wl.Plan()
	assert.Equal(t, "update", p.Workload)
	require.Len(t, p.Batches, 1)
	assert.Len(t, p.Batches[0], 2)
}

func TestPlan_ExclusiveConflictSplitsBatches(t *testing.T) {
	wl, err := New("update").
		Add(system.New2(moveAll)).        // pos excl
		Add(system.New1(readPositions)).  // pos shared: conflicts with moveAll
		Add(system.New1(readVelocities)). // vel shared: fine next to moveAll
		Build()
	require.NoError(t, err)

	p := wl.Plan()
	require.Len(t, p.Batches, 2)
	// readVelocities joins the earliest batch it fits in: vel is only
	// borrowed shared on both sides.
	assert.Len(t, p.Batches[0], 2)
	assert.Contains(t, p.Batches[0][1], "readVelocities")
	require.Len(t, p.Batches[1], 1)
	assert.Contains(t, p.Batches[1][0], "readPositions")
}

func TestPlan_AllViewIsAloneInItsBatch(t *testing.T) {
	wl, err := New("update").
		Add(system.New1(structural)).
		Add(system.New1(readPositions)).
		Add(system.New1(readVelocities)).
		Build()
	require.NoError(t, err)

	p := wl.Plan()
	require.Len(t, p.Batches, 2)
	require.Len(t, p.Batches[0], 1)
	assert.Contains(t, p.Batches[0][0], "structural")
	assert.Len(t, p.Batches[1], 2)
}

func TestPlan_ZeroAccessSystemsAlwaysFit(t *testing.T) {
	wl, err := New("update").
		Add(system.New1(structural)).
		Add(system.New0(func() {})).
		Build()
	require.NoError(t, err)

	p := wl.Plan()
	// A zero-access system touches no storages, so even the whole-set
	// system tolerates it.
	require.Len(t, p.Batches, 1)
	assert.Len(t, p.Batches[0], 2)
}

func TestRun_SequentialInDeclarationOrder(t *testing.T) {
	w := world.New()
	e := w.NewEntity()
	world.Add(w, e, pos{X: 0})
	world.Add(w, e, vel{DX: 5})

	var order []string
	wl, err := New("update").
		Add(system.New0(func() { order = append(order, "first") })).
		Add(system.New2(func(p world.ViewMut[pos], v world.View[vel]) {
			order = append(order, "second")
			moveAll(p, v)
		})).
		Add(system.New0(func() { order = append(order, "third") })).
		Build()
	require.NoError(t, err)

	require.NoError(t, wl.Run(w))
	assert.Equal(t, []string{"first", "second", "third"}, order)

	p, _ := world.Get[pos](w, e)
	assert.Equal(t, int64(5), p.X)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	w := world.New()

	boom := errors.New("boom")
	ranAfter := false
	executed := 0
	wl, err := New("update").
		Add(system.New0(func() { executed++ })).
		Add(system.Try0(func() error { return boom })).
		Add(system.New0(func() { ranAfter = true })).
		Build()
	require.NoError(t, err)

	runErr := wl.Run(w)
	require.Error(t, runErr)
	assert.ErrorIs(t, runErr, boom)
	assert.False(t, ranAfter, "systems after the failure must not run")

	// Side effects of systems before the failure stay applied.
	assert.Equal(t, 1, executed)

	var re *system.RunError
	assert.ErrorAs(t, runErr, &re, "the uniform run-failure carrier survives wrapping")
}
