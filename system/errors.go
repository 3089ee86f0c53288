package system

import (
	"errors"
	"fmt"
)

// InvalidCode categorizes registration-time validation failures.
type InvalidCode string

const (
	// CodeAllStorages: the system borrows the entire storage set
	// exclusively and declares at least one other access.
	CodeAllStorages InvalidCode = "ALL_STORAGES"

	// CodeMultipleViews: the same storage is borrowed both shared and
	// exclusively within one system.
	CodeMultipleViews InvalidCode = "MULTIPLE_VIEWS"

	// CodeMultipleViewsMut: the same storage is borrowed exclusively twice
	// within one system.
	CodeMultipleViewsMut InvalidCode = "MULTIPLE_VIEWS_MUT"
)

// InvalidError reports that a callable's declared accesses cannot coexist
// within one system. Returned synchronously from conversion; nothing is
// registered when it is returned. Fatal to that one registration only.
type InvalidError struct {
	Code    InvalidCode
	System  string // display name of the callable
	Storage string // contended storage, empty for ALL_STORAGES
}

func (e *InvalidError) Error() string {
	if e.Storage != "" {
		return fmt.Sprintf("%s: system %s declares conflicting accesses to %s", e.Code, e.System, e.Storage)
	}
	return fmt.Sprintf("%s: system %s borrows the entire storage set exclusively alongside other accesses", e.Code, e.System)
}

// IsAllStorages reports whether err is a whole-set exclusivity violation.
// Uses errors.As to handle wrapped errors.
func IsAllStorages(err error) bool { return hasCode(err, CodeAllStorages) }

// IsMultipleViews reports whether err is a shared/exclusive conflict.
func IsMultipleViews(err error) bool { return hasCode(err, CodeMultipleViews) }

// IsMultipleViewsMut reports whether err is an exclusive/exclusive conflict.
func IsMultipleViewsMut(err error) bool { return hasCode(err, CodeMultipleViewsMut) }

func hasCode(err error, code InvalidCode) bool {
	var ie *InvalidError
	if errors.As(err, &ie) {
		return ie.Code == code
	}
	return false
}

// RunError is the uniform run-failure carrier: every failed thunk
// invocation surfaces as one of these, wrapping either a view acquisition
// failure or the error a fallible callable returned. A thunk either
// succeeds or yields a RunError, exhaustively; nothing is dropped.
type RunError struct {
	System string
	Err    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("system %s failed: %v", e.System, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }
