package system

import "github.com/keelframe/keel/access"

// validateAccesses rejects access lists that could not be honored even in
// isolation. Runs once at conversion time, never per run.
//
// The whole-set check scans the entire accumulator and matches the sentinel
// by whole-record equality. The pairwise check only compares entries across
// the ceil(len/2) partition: conflicts entirely within one half pass.
// Registration accepting such a system and the runtime borrow arbiter
// failing it instead is observable behavior callers depend on; do not
// tighten either pass without an explicit compatibility break.
func validateAccesses(name string, infos []access.Info) error {
	if len(infos) > 1 {
		sentinel := access.AllStoragesSentinel()
		for _, in := range infos {
			if in == sentinel {
				return &InvalidError{Code: CodeAllStorages, System: name}
			}
		}
	}

	mid := len(infos)/2 + len(infos)%2
	for _, a := range infos[:mid] {
		for _, b := range infos[mid:] {
			if a.Storage != b.Storage {
				continue
			}
			switch {
			case a.Mode == access.Exclusive && b.Mode == access.Exclusive:
				return &InvalidError{
					Code:    CodeMultipleViewsMut,
					System:  name,
					Storage: a.Storage.TypeName(),
				}
			case a.Mode == access.Exclusive || b.Mode == access.Exclusive:
				return &InvalidError{
					Code:    CodeMultipleViews,
					System:  name,
					Storage: a.Storage.TypeName(),
				}
			}
		}
	}
	return nil
}
