package system

import (
	"github.com/keelframe/keel/access"
	"github.com/keelframe/keel/world"
)

// TypeID is a stable identity token for the callable behind a system.
// Two conversions of the same function yield the same token; distinct
// functions never collide. Tokens are only meaningful within one process.
type TypeID uintptr

// Generator recomputes a system's static access requirements without the
// callable instance: it appends the same records Accesses holds, in the
// same order, and returns the system's TypeID. It captures type information
// only, never the wrapped callable, so a scheduler can query requirements
// by callable identity alone, before or without instantiation.
type Generator func(dst *[]access.Info) TypeID

// Descriptor is one registered unit of work: an executable thunk plus the
// static metadata a scheduler needs to place it. Immutable after
// construction.
type Descriptor struct {
	accesses []access.Info
	run      func(*world.World) error
	id       TypeID
	name     string
	gen      Generator
}

// Accesses returns the ordered access descriptor list. The slice is a copy;
// the descriptor's own list never changes.
func (d *Descriptor) Accesses() []access.Info {
	out := make([]access.Info, len(d.accesses))
	copy(out, d.accesses)
	return out
}

// TypeID returns the identity token of the wrapped callable.
func (d *Descriptor) TypeID() TypeID { return d.id }

// Name returns the human-readable name of the wrapped callable.
func (d *Descriptor) Name() string { return d.name }

// Generator returns the capture-free regenerator for this system's static
// requirements.
func (d *Descriptor) Generator() Generator { return d.gen }

// Run acquires every declared access from w in declaration order, invokes
// the wrapped callable, and releases the views. It returns nil on success
// and a *RunError when an acquisition fails (the callable is then never
// invoked) or when a fallible callable reports failure.
func (d *Descriptor) Run(w *world.World) error { return d.run(w) }

// IntoSystem is the capability of being turned into a descriptor. It exists
// so APIs that accept systems can take already-built descriptors.
type IntoSystem interface {
	IntoSystem() (*Descriptor, error)
}

// IntoSystem returns the descriptor unchanged: converting an already-built
// system is the identity transform.
func (d *Descriptor) IntoSystem() (*Descriptor, error) { return d, nil }

// IntoTrySystem is the fallible counterpart of IntoSystem and is equally a
// no-op on an already-built descriptor.
func (d *Descriptor) IntoTrySystem() (*Descriptor, error) { return d, nil }
