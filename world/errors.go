package world

import (
	"errors"
	"fmt"

	"github.com/keelframe/keel/access"
)

// BorrowError reports a view acquisition refused because of a conflicting
// live access on the same storage (or on the whole set).
type BorrowError struct {
	Storage   string      // display name of the contended storage
	Requested access.Mode // mode that was being acquired
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("storage %s: %s borrow refused: conflicting live access", e.Storage, e.Requested)
}

// MissingUniqueError reports borrowing a unique value that was never
// inserted into the world.
type MissingUniqueError struct {
	Storage string
}

func (e *MissingUniqueError) Error() string {
	return fmt.Sprintf("storage %s: no value was ever inserted", e.Storage)
}

// IsBorrowError reports whether err is (or wraps) a BorrowError.
func IsBorrowError(err error) bool {
	var be *BorrowError
	return errors.As(err, &be)
}

// IsMissingUnique reports whether err is (or wraps) a MissingUniqueError.
func IsMissingUnique(err error) bool {
	var me *MissingUniqueError
	return errors.As(err, &me)
}
