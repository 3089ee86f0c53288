// Package access defines the descriptor types for declared storage accesses.
//
// This package contains type definitions only. Every other package in this
// module imports access; access imports nothing from the module. This keeps
// it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Info is a comparable value type; the validator relies on whole-record
//     equality when matching the entire-storage-set sentinel.
//   - StorageID is opaque and equality-comparable. One reserved value,
//     AllStoragesID, means "the entire storage set treated as one resource".
//   - The capability flags on Info (Transferable, Shareable) are carried for
//     downstream scheduling decisions and never interpreted here.
package access
