package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or folder does not exist at the
	// time of use, including a folder handle whose backing path was removed
	// after the handle was constructed.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a create collides with an existing item
	// under FailIfExists semantics.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrInvalid is returned for invalid arguments, such as an out-of-range
	// collision option or an empty item name. Callers should treat it as a
	// programming error to fix, not to catch and continue.
	// Re-exported from io/fs for convenience.
	ErrInvalid = fs.ErrInvalid

	// ErrPermission is returned when the backend denies access, and when a
	// write is attempted on a read-only stream.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when an operation is performed on a closed stream.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrRootFolder is returned when a delete targets one of the two
	// protected application-data root folders. Root-ness is decided when
	// the handle is constructed and never re-checked, so the error is
	// reported before any backend call is attempted.
	ErrRootFolder = errors.New("cannot delete a root storage folder")
)
