package system

import (
	"github.com/keelframe/keel/access"
	"github.com/keelframe/keel/world"
)

// The arity family below is the Go rendering of a per-arity generic
// expansion: one conversion function per parameter count, 1 through 10,
// each with a fallible twin. Every body follows the same shape: declare the
// parameters' accesses through a shared appendN helper (also reused as the
// generator), then build a thunk that borrows each view in declared order,
// bails on the first acquisition failure without invoking the callable, and
// releases in reverse order on the way out.

func append1[A Param[A]](dst *[]access.Info) {
	appendOne[A](dst)
}

func append2[A Param[A], B Param[B]](dst *[]access.Info) {
	appendOne[A](dst)
	appendOne[B](dst)
}

func append3[A Param[A], B Param[B], C Param[C]](dst *[]access.Info) {
	appendOne[A](dst)
	appendOne[B](dst)
	appendOne[C](dst)
}

func append4[A Param[A], B Param[B], C Param[C], D Param[D]](dst *[]access.Info) {
	appendOne[A](dst)
	appendOne[B](dst)
	appendOne[C](dst)
	appendOne[D](dst)
}

func append5[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E]](dst *[]access.Info) {
	appendOne[A](dst)
	appendOne[B](dst)
	appendOne[C](dst)
	appendOne[D](dst)
	appendOne[E](dst)
}

func append6[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F]](dst *[]access.Info) {
	appendOne[A](dst)
	appendOne[B](dst)
	appendOne[C](dst)
	appendOne[D](dst)
	appendOne[E](dst)
	appendOne[F](dst)
}

func append7[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G]](dst *[]access.Info) {
	appendOne[A](dst)
	appendOne[B](dst)
	appendOne[C](dst)
	appendOne[D](dst)
	appendOne[E](dst)
	appendOne[F](dst)
	appendOne[G](dst)
}

func append8[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G], H Param[H]](dst *[]access.Info) {
	appendOne[A](dst)
	appendOne[B](dst)
	appendOne[C](dst)
	appendOne[D](dst)
	appendOne[E](dst)
	appendOne[F](dst)
	appendOne[G](dst)
	appendOne[H](dst)
}

func append9[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G], H Param[H], I Param[I]](dst *[]access.Info) {
	appendOne[A](dst)
	appendOne[B](dst)
	appendOne[C](dst)
	appendOne[D](dst)
	appendOne[E](dst)
	appendOne[F](dst)
	appendOne[G](dst)
	appendOne[H](dst)
	appendOne[I](dst)
}

func append10[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G], H Param[H], I Param[I], J Param[J]](dst *[]access.Info) {
	appendOne[A](dst)
	appendOne[B](dst)
	appendOne[C](dst)
	appendOne[D](dst)
	appendOne[E](dst)
	appendOne[F](dst)
	appendOne[G](dst)
	appendOne[H](dst)
	appendOne[I](dst)
	appendOne[J](dst)
}

// New1 converts a one-argument callable whose parameter declares its own
// storage accesses. Conversion fails if the declared accesses cannot
// coexist within one system.
func New1[A Param[A]](fn func(A)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append1[A])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		fn(p1)
		return nil
	}
	return d, nil
}

// Try1 is the fallible counterpart of New1: a non-nil error from the
// callable becomes the run's failure. Side effects performed before the
// failure are not rolled back.
func Try1[A Param[A]](fn func(A) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append1[A])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		if err := fn(p1); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}

// New2 converts a 2-argument callable; see New1.
func New2[A Param[A], B Param[B]](fn func(A, B)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append2[A, B])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		fn(p1, p2)
		return nil
	}
	return d, nil
}

// Try2 is the fallible counterpart of New2.
func Try2[A Param[A], B Param[B]](fn func(A, B) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append2[A, B])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		if err := fn(p1, p2); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}

// New3 converts a 3-argument callable; see New1.
func New3[A Param[A], B Param[B], C Param[C]](fn func(A, B, C)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append3[A, B, C])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		fn(p1, p2, p3)
		return nil
	}
	return d, nil
}

// Try3 is the fallible counterpart of New3.
func Try3[A Param[A], B Param[B], C Param[C]](fn func(A, B, C) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append3[A, B, C])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		if err := fn(p1, p2, p3); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}

// New4 converts a 4-argument callable; see New1.
func New4[A Param[A], B Param[B], C Param[C], D Param[D]](fn func(A, B, C, D)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append4[A, B, C, D])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		fn(p1, p2, p3, p4)
		return nil
	}
	return d, nil
}

// Try4 is the fallible counterpart of New4.
func Try4[A Param[A], B Param[B], C Param[C], D Param[D]](fn func(A, B, C, D) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append4[A, B, C, D])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		if err := fn(p1, p2, p3, p4); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}

// New5 converts a 5-argument callable; see New1.
func New5[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E]](fn func(A, B, C, D, E)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append5[A, B, C, D, E])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		fn(p1, p2, p3, p4, p5)
		return nil
	}
	return d, nil
}

// Try5 is the fallible counterpart of New5.
func Try5[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E]](fn func(A, B, C, D, E) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append5[A, B, C, D, E])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		if err := fn(p1, p2, p3, p4, p5); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}

// New6 converts a 6-argument callable; see New1.
func New6[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F]](fn func(A, B, C, D, E, F)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append6[A, B, C, D, E, F])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		fn(p1, p2, p3, p4, p5, p6)
		return nil
	}
	return d, nil
}

// Try6 is the fallible counterpart of New6.
func Try6[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F]](fn func(A, B, C, D, E, F) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append6[A, B, C, D, E, F])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		if err := fn(p1, p2, p3, p4, p5, p6); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}

// New7 converts a 7-argument callable; see New1.
func New7[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G]](fn func(A, B, C, D, E, F, G)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append7[A, B, C, D, E, F, G])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		p7, err := borrowParam[G](w, name)
		if err != nil {
			return err
		}
		defer p7.Release()
		fn(p1, p2, p3, p4, p5, p6, p7)
		return nil
	}
	return d, nil
}

// Try7 is the fallible counterpart of New7.
func Try7[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G]](fn func(A, B, C, D, E, F, G) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append7[A, B, C, D, E, F, G])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		p7, err := borrowParam[G](w, name)
		if err != nil {
			return err
		}
		defer p7.Release()
		if err := fn(p1, p2, p3, p4, p5, p6, p7); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}

// New8 converts a 8-argument callable; see New1.
func New8[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G], H Param[H]](fn func(A, B, C, D, E, F, G, H)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append8[A, B, C, D, E, F, G, H])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		p7, err := borrowParam[G](w, name)
		if err != nil {
			return err
		}
		defer p7.Release()
		p8, err := borrowParam[H](w, name)
		if err != nil {
			return err
		}
		defer p8.Release()
		fn(p1, p2, p3, p4, p5, p6, p7, p8)
		return nil
	}
	return d, nil
}

// Try8 is the fallible counterpart of New8.
func Try8[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G], H Param[H]](fn func(A, B, C, D, E, F, G, H) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append8[A, B, C, D, E, F, G, H])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		p7, err := borrowParam[G](w, name)
		if err != nil {
			return err
		}
		defer p7.Release()
		p8, err := borrowParam[H](w, name)
		if err != nil {
			return err
		}
		defer p8.Release()
		if err := fn(p1, p2, p3, p4, p5, p6, p7, p8); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}

// New9 converts a 9-argument callable; see New1.
func New9[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G], H Param[H], I Param[I]](fn func(A, B, C, D, E, F, G, H, I)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append9[A, B, C, D, E, F, G, H, I])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		p7, err := borrowParam[G](w, name)
		if err != nil {
			return err
		}
		defer p7.Release()
		p8, err := borrowParam[H](w, name)
		if err != nil {
			return err
		}
		defer p8.Release()
		p9, err := borrowParam[I](w, name)
		if err != nil {
			return err
		}
		defer p9.Release()
		fn(p1, p2, p3, p4, p5, p6, p7, p8, p9)
		return nil
	}
	return d, nil
}

// Try9 is the fallible counterpart of New9.
func Try9[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G], H Param[H], I Param[I]](fn func(A, B, C, D, E, F, G, H, I) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append9[A, B, C, D, E, F, G, H, I])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		p7, err := borrowParam[G](w, name)
		if err != nil {
			return err
		}
		defer p7.Release()
		p8, err := borrowParam[H](w, name)
		if err != nil {
			return err
		}
		defer p8.Release()
		p9, err := borrowParam[I](w, name)
		if err != nil {
			return err
		}
		defer p9.Release()
		if err := fn(p1, p2, p3, p4, p5, p6, p7, p8, p9); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}

// New10 converts a 10-argument callable; see New1.
func New10[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G], H Param[H], I Param[I], J Param[J]](fn func(A, B, C, D, E, F, G, H, I, J)) (*Descriptor, error) {
	d, err := newDescriptor(fn, append10[A, B, C, D, E, F, G, H, I, J])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		p7, err := borrowParam[G](w, name)
		if err != nil {
			return err
		}
		defer p7.Release()
		p8, err := borrowParam[H](w, name)
		if err != nil {
			return err
		}
		defer p8.Release()
		p9, err := borrowParam[I](w, name)
		if err != nil {
			return err
		}
		defer p9.Release()
		p10, err := borrowParam[J](w, name)
		if err != nil {
			return err
		}
		defer p10.Release()
		fn(p1, p2, p3, p4, p5, p6, p7, p8, p9, p10)
		return nil
	}
	return d, nil
}

// Try10 is the fallible counterpart of New10.
func Try10[A Param[A], B Param[B], C Param[C], D Param[D], E Param[E], F Param[F], G Param[G], H Param[H], I Param[I], J Param[J]](fn func(A, B, C, D, E, F, G, H, I, J) error) (*Descriptor, error) {
	d, err := newDescriptor(fn, append10[A, B, C, D, E, F, G, H, I, J])
	if err != nil {
		return nil, err
	}
	name := d.name
	d.run = func(w *world.World) error {
		p1, err := borrowParam[A](w, name)
		if err != nil {
			return err
		}
		defer p1.Release()
		p2, err := borrowParam[B](w, name)
		if err != nil {
			return err
		}
		defer p2.Release()
		p3, err := borrowParam[C](w, name)
		if err != nil {
			return err
		}
		defer p3.Release()
		p4, err := borrowParam[D](w, name)
		if err != nil {
			return err
		}
		defer p4.Release()
		p5, err := borrowParam[E](w, name)
		if err != nil {
			return err
		}
		defer p5.Release()
		p6, err := borrowParam[F](w, name)
		if err != nil {
			return err
		}
		defer p6.Release()
		p7, err := borrowParam[G](w, name)
		if err != nil {
			return err
		}
		defer p7.Release()
		p8, err := borrowParam[H](w, name)
		if err != nil {
			return err
		}
		defer p8.Release()
		p9, err := borrowParam[I](w, name)
		if err != nil {
			return err
		}
		defer p9.Release()
		p10, err := borrowParam[J](w, name)
		if err != nil {
			return err
		}
		defer p10.Release()
		if err := fn(p1, p2, p3, p4, p5, p6, p7, p8, p9, p10); err != nil {
			return &RunError{System: name, Err: err}
		}
		return nil
	}
	return d, nil
}
