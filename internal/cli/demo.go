package cli

import (
	"github.com/keelframe/keel/system"
	"github.com/keelframe/keel/workload"
	"github.com/keelframe/keel/world"
)

// The demo scene is compiled in: keel has no configuration language, so the
// CLI demonstrates the library on a fixed grid world. One entity is spawned
// per frame up to demoSpawnCap, each with a velocity derived from its spawn
// index, and every frame integrates positions and advances the tick.

const demoSpawnCap = 3

type position struct{ X, Y int64 }
type velocity struct{ DX, DY int64 }
type tick struct{ Frame int64 }

// integrate applies each entity's velocity to its position.
func integrate(p world.ViewMut[position], v world.View[velocity]) {
	p.Each(func(id world.EntityID, pp *position) {
		if vv, ok := v.Get(id); ok {
			pp.X += vv.DX
			pp.Y += vv.DY
		}
	})
}

// advanceTick bumps the frame counter.
func advanceTick(t world.UniqueViewMut[tick]) {
	cur := t.Get()
	cur.Frame++
	t.Set(cur)
}

// newSpawner returns a structural system that creates one entity per run
// until limit entities exist. Entity creation needs the whole storage set,
// so this system cannot (and does not) declare any other view.
func newSpawner(limit int64) func(world.AllView) {
	var spawned int64
	return func(all world.AllView) {
		if spawned >= limit {
			return
		}
		spawned++
		id := all.NewEntity()
		world.Insert(all, id, position{})
		world.Insert(all, id, velocity{DX: spawned, DY: -spawned})
	}
}

// newDemoWorkload builds the demo workload: spawn, integrate, tick.
func newDemoWorkload() (*workload.Workload, error) {
	return workload.New("demo").
		Add(system.New1(newSpawner(demoSpawnCap))).
		Add(system.New2(integrate)).
		Add(system.New1(advanceTick)).
		Build()
}

// newDemoWorld builds a world with the tick unique already inserted;
// uniques must exist before a system borrows them.
func newDemoWorld() *world.World {
	w := world.New()
	world.AddUnique(w, tick{})
	return w
}
