package workload

import (
	"github.com/keelframe/keel/access"
)

// Plan is the static batch grouping of one workload: systems in the same
// batch declare no conflicting accesses and could run side by side.
// Computed purely from access lists; whether batches actually run in
// parallel is the dispatcher's business, not this package's.
type Plan struct {
	Workload string
	Batches  [][]string // system names; declaration order within each batch
}

// Plan groups systems greedily: each system, in declaration order, joins
// the earliest batch it conflicts with nothing in, or opens a new one.
func (wl *Workload) Plan() Plan {
	type batch struct {
		names    []string
		accesses [][]access.Info
	}
	var batches []batch

	for _, d := range wl.systems {
		acc := d.Accesses()
		placed := false
		for i := range batches {
			fits := true
			for _, other := range batches[i].accesses {
				if conflicts(acc, other) {
					fits = false
					break
				}
			}
			if fits {
				batches[i].names = append(batches[i].names, d.Name())
				batches[i].accesses = append(batches[i].accesses, acc)
				placed = true
				break
			}
		}
		if !placed {
			batches = append(batches, batch{
				names:    []string{d.Name()},
				accesses: [][]access.Info{acc},
			})
		}
	}

	p := Plan{Workload: wl.name, Batches: make([][]string, len(batches))}
	for i, b := range batches {
		p.Batches[i] = b.names
	}
	return p
}

// conflicts reports whether two systems' declared accesses could not be
// honored concurrently: same storage with an exclusive on either side, or
// either side touching the entire storage set.
func conflicts(a, b []access.Info) bool {
	for _, ia := range a {
		for _, ib := range b {
			if ia.Storage.IsAll() || ib.Storage.IsAll() {
				return true
			}
			if ia.Storage != ib.Storage {
				continue
			}
			if ia.Mode == access.Exclusive || ib.Mode == access.Exclusive {
				return true
			}
		}
	}
	return false
}
