package workload

import (
	"fmt"

	"github.com/keelframe/keel/access"
	"github.com/keelframe/keel/system"
)

// Builder accumulates systems for a named workload. The first error sticks:
// later calls are no-ops and Build reports it. On error nothing is
// registered.
type Builder struct {
	name    string
	systems []*system.Descriptor
	err     error
}

// New starts a workload builder.
func New(name string) *Builder {
	return &Builder{name: name}
}

// Add appends a converted system. It is shaped to wrap conversion calls
// directly:
//
//	wl, err := workload.New("update").
//		Add(system.New2(move)).
//		Add(system.New1(spawn)).
//		Build()
func (b *Builder) Add(d *system.Descriptor, err error) *Builder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = fmt.Errorf("workload %q: add system: %w", b.name, err)
		return b
	}
	b.systems = append(b.systems, d)
	return b
}

// AddSystem appends anything convertible to a system; for an already-built
// descriptor this is the identity passthrough.
func (b *Builder) AddSystem(s system.IntoSystem) *Builder {
	if b.err != nil {
		return b
	}
	return b.Add(s.IntoSystem())
}

// Build returns the immutable workload, or the first error any Add saw.
func (b *Builder) Build() (*Workload, error) {
	if b.err != nil {
		return nil, b.err
	}
	systems := make([]*system.Descriptor, len(b.systems))
	copy(systems, b.systems)
	return &Workload{name: b.name, systems: systems}, nil
}

// Workload is a named, ordered, immutable collection of systems.
type Workload struct {
	name    string
	systems []*system.Descriptor
}

// Name returns the workload name.
func (wl *Workload) Name() string { return wl.name }

// Len returns the number of systems.
func (wl *Workload) Len() int { return len(wl.systems) }

// Systems returns the system names in declaration order.
func (wl *Workload) Systems() []string {
	out := make([]string, len(wl.systems))
	for i, d := range wl.systems {
		out[i] = d.Name()
	}
	return out
}

// Requirement is one system's static access requirements, recomputed
// through its generator rather than read off the instance.
type Requirement struct {
	System   string
	TypeID   system.TypeID
	Accesses []access.Info
}

// Requirements recomputes every system's access list through the
// descriptors' generators. This is the instance-independent path an
// external scheduler uses; by construction it matches Accesses on each
// descriptor.
func (wl *Workload) Requirements() []Requirement {
	out := make([]Requirement, len(wl.systems))
	for i, d := range wl.systems {
		var infos []access.Info
		id := d.Generator()(&infos)
		out[i] = Requirement{System: d.Name(), TypeID: id, Accesses: infos}
	}
	return out
}
