package access

import (
	"fmt"
	"reflect"
)

// Mode is the declared access mode for one storage.
//
// This is a closed two-value domain. Shared permits concurrent Shared access
// to the same storage; Exclusive permits no concurrent access at all, Shared
// or Exclusive.
type Mode uint8

const (
	Shared Mode = iota
	Exclusive
)

func (m Mode) String() string {
	switch m {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// storageKind distinguishes the three identifier namespaces. Component and
// unique storages of the same Go type must not collide.
type storageKind uint8

const (
	kindComponent storageKind = iota
	kindUnique
	kindAll
)

// StorageID identifies one logical storage. It is opaque and
// equality-comparable; two IDs are equal exactly when they name the same
// storage.
type StorageID struct {
	kind storageKind
	rt   reflect.Type
}

// StorageOf returns the identifier of the component storage holding T.
func StorageOf[T any]() StorageID {
	return StorageID{kind: kindComponent, rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// UniqueOf returns the identifier of the unique (singleton) storage holding T.
// It never equals StorageOf[T].
func UniqueOf[T any]() StorageID {
	return StorageID{kind: kindUnique, rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// AllStoragesID returns the reserved identifier meaning "the entire storage
// set treated as one resource".
func AllStoragesID() StorageID {
	return StorageID{kind: kindAll}
}

// IsAll reports whether id is the reserved entire-storage-set identifier.
func (id StorageID) IsAll() bool { return id.kind == kindAll }

// TypeName returns a human-readable name for the storage, for diagnostics
// and CLI output.
func (id StorageID) TypeName() string {
	switch id.kind {
	case kindAll:
		return "AllStorages"
	case kindUnique:
		return "unique<" + id.rt.String() + ">"
	default:
		return id.rt.String()
	}
}

func (id StorageID) String() string { return id.TypeName() }

// Info is one access descriptor record: a single declared storage
// requirement contributed by a system parameter.
//
// Name may be the reserved empty string (only the entire-storage-set
// sentinel uses it). Transferable and Shareable describe whether the view
// may move to, or be shared between, scheduler threads; this package carries
// them without interpreting them.
//
// Info is comparable. Records are accumulated in parameter order with no
// deduplication.
type Info struct {
	Name         string
	Storage      StorageID
	Mode         Mode
	Transferable bool
	Shareable    bool
}

// AllStoragesSentinel returns the exact record meaning "exclusive access to
// the entire storage set". The registration-time validator matches it by
// whole-record equality, so a record that differs in any field, including
// the capability flags, is not the sentinel.
func AllStoragesSentinel() Info {
	return Info{
		Name:         "",
		Storage:      AllStoragesID(),
		Mode:         Exclusive,
		Transferable: true,
		Shareable:    true,
	}
}
