package system

import (
	"reflect"
	"runtime"

	"github.com/keelframe/keel/access"
	"github.com/keelframe/keel/world"
)

// Param is the capability required of every system parameter type.
//
// AppendAccess must be deterministic, callable on the zero value, and
// append the parameter's access descriptor records in a fixed order (zero
// or more records per parameter). Borrow acquires the declared view from
// the execution context or fails without leaving anything held. Release
// returns an acquired view.
//
// The self-referential constraint (A Param[A]) lets conversion call
// AppendAccess and Borrow on a zero value of the parameter type and hand
// the callable a fully-formed view of that same type.
type Param[V any] interface {
	AppendAccess(dst *[]access.Info)
	Borrow(w *world.World) (V, error)
	Release()
}

// callableIdentity derives the registration token and display name from the
// callable's code pointer. Conversions of the same function share a token;
// distinct functions never collide. Closures created at the same call site
// share a token regardless of captures, matching "one token per callable
// type".
func callableIdentity(fn any) (TypeID, string) {
	pc := reflect.ValueOf(fn).Pointer()
	name := "<unknown>"
	if f := runtime.FuncForPC(pc); f != nil {
		name = f.Name()
	}
	return TypeID(pc), name
}

// newDescriptor accumulates the access list, validates it, and assembles
// the descriptor minus its thunk. appendAll captures type information only,
// never the callable instance, so it doubles as the generator body; a nil
// appendAll means the zero-argument case with an empty access list.
func newDescriptor(fn any, appendAll func(*[]access.Info)) (*Descriptor, error) {
	id, name := callableIdentity(fn)

	var infos []access.Info
	if appendAll != nil {
		appendAll(&infos)
	}
	if err := validateAccesses(name, infos); err != nil {
		return nil, err
	}

	return &Descriptor{
		accesses: infos,
		id:       id,
		name:     name,
		gen: func(dst *[]access.Info) TypeID {
			if appendAll != nil {
				appendAll(dst)
			}
			return id
		},
	}, nil
}

// New0 converts a zero-argument callable. The access list is empty and the
// thunk ignores the execution context entirely.
func New0(fn func()) (*Descriptor, error) {
	d, err := newDescriptor(fn, nil)
	if err != nil {
		return nil, err
	}
	d.run = func(*world.World) error {
		fn()
		return nil
	}
	return d, nil
}

// Try0 converts a zero-argument fallible callable. A non-nil error becomes
// the run's failure. Side effects the callable performed before failing are
// not rolled back.
func Try0(fn func() error) (*Descriptor, error) {
	d, err := newDescriptor(fn, nil)
	if err != nil {
		return nil, err
	}
	d.run = func(*world.World) error {
		if err := fn(); err != nil {
			return &RunError{System: d.name, Err: err}
		}
		return nil
	}
	return d, nil
}

// borrowParam acquires one declared view, wrapping acquisition failures in
// the uniform run-failure carrier. The callable is never invoked after a
// failed acquisition; views already held are released by the thunk's defers.
func borrowParam[V Param[V]](w *world.World, name string) (V, error) {
	var zero V
	v, err := zero.Borrow(w)
	if err != nil {
		return v, &RunError{System: name, Err: err}
	}
	return v, nil
}

func appendOne[V Param[V]](dst *[]access.Info) {
	var zero V
	zero.AppendAccess(dst)
}
