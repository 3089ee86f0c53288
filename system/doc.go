// Package system converts plain callables into schedulable system
// descriptors and statically validates their declared storage accesses.
//
// CONVERSION FLOW:
//
// A callable enters through New0..New10 (or Try0..Try10 for fallible
// callables). Each parameter type contributes its access descriptor records,
// in declared order, into one accumulator. The validator then rejects
// structurally unsafe combinations before anything is registered. On
// acceptance a Descriptor is assembled: the ordered access list, a thunk
// that acquires every declared view from the execution context and invokes
// the callable, an identity token and display name derived from the
// callable's symbol, and a generator that recomputes the same static
// requirements without the callable instance.
//
// VALIDATION:
//
// Validation happens exactly once, at conversion time, and only looks at
// one system's own access list. It establishes nothing between two
// different systems at run time; that is the borrow arbiter's job (package
// world). Two passes:
//
//  1. Whole-set exclusivity: an access list containing the
//     entire-storage-set sentinel alongside any other entry is rejected
//     with ALL_STORAGES, wherever the extra entry sits.
//  2. Pairwise conflicts: the list is split at mid = ceil(len/2) and only
//     cross-half pairs on the same storage are compared. Conflicts entirely
//     inside one half are NOT detected. This blind spot is long-standing
//     observable behavior and is preserved deliberately; it is pinned by a
//     regression test rather than fixed.
//
// Wrapped callables must be safe to hand to whatever goroutine a scheduler
// picks: no captures tied to one goroutine, no borrowed short-lived state.
// Go's memory model makes this the caller's obligation at the point of
// conversion; nothing is re-checked at run time.
package system
