// Package workload groups converted systems into named, ordered units of
// execution.
//
// A workload is immutable once built. Running it is strictly sequential and
// deterministic: systems execute in declaration order and the run stops at
// the first failure. Plan computes, from access lists alone, which systems
// could run side by side; it is metadata for an external dispatcher, not a
// parallel executor. Each run is stamped with a UUIDv7 token for log
// correlation.
package workload
