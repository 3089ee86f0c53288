// Package world implements the shared execution context systems run against.
//
// A World owns every storage (component storages, uniques, entity liveness)
// and arbitrates live borrows at run time. View types in this package are
// the parameter types systems declare; each one knows how to describe its
// own access requirements and how to acquire itself from a World.
//
// ARBITRATION MODEL:
//
// Borrowing is non-blocking. A view acquisition either succeeds immediately
// or fails with a BorrowError; there is no waiting, no queueing and no
// fairness here. Every per-storage borrow also holds the whole-set lock
// shared, so an AllView (exclusive over the entire storage set) excludes
// every other view and vice versa.
//
// The registration-time validator in the system package rejects most
// self-conflicting access lists up front. Whatever it admits (its pairwise
// scan deliberately skips intra-half conflicts) is still caught here when
// the second borrow of the same storage fails.
//
// Direct operations on *World (NewEntity, Add, Get, ...) are for setup and
// inspection outside system execution. They take the whole-set lock
// exclusively and must not be called while a system holds views on the same
// World.
package world
