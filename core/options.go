package core

import "fmt"

// CollisionOption specifies what a create operation does when the desired
// name is already taken in the target folder.
type CollisionOption int

const (
	// GenerateUniqueName creates the item under an automatically generated
	// unique name ("name (2)", "name (3)", ...) instead of the desired name.
	GenerateUniqueName CollisionOption = iota
	// ReplaceExisting removes the existing item and creates a new one under
	// the desired name.
	ReplaceExisting
	// FailIfExists fails the create with an error satisfying
	// errors.Is(err, ErrExist).
	FailIfExists
	// OpenIfExists returns a handle to the existing item without modifying it.
	OpenIfExists
)

// String returns a string representation of the CollisionOption.
func (o CollisionOption) String() string {
	switch o {
	case GenerateUniqueName:
		return "generate-unique-name"
	case ReplaceExisting:
		return "replace-existing"
	case FailIfExists:
		return "fail-if-exists"
	case OpenIfExists:
		return "open-if-exists"
	default:
		return "invalid"
	}
}

// Validate returns an error satisfying errors.Is(err, ErrInvalid) if the
// option is not one of the four defined values. Out-of-range options are a
// programming error and are never silently defaulted.
func (o CollisionOption) Validate() error {
	switch o {
	case GenerateUniqueName, ReplaceExisting, FailIfExists, OpenIfExists:
		return nil
	default:
		return fmt.Errorf("%w: collision option %d", ErrInvalid, int(o))
	}
}

// FileAccess specifies the access mode requested when opening a file stream.
type FileAccess int

const (
	// AccessRead opens the file read-only; writes to the stream fail.
	AccessRead FileAccess = iota
	// AccessReadWrite opens the file for reading and writing.
	AccessReadWrite
)

// String returns a string representation of the FileAccess.
func (a FileAccess) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessReadWrite:
		return "read-write"
	default:
		return "invalid"
	}
}

// Validate returns an error satisfying errors.Is(err, ErrInvalid) if the
// access mode is not one of the defined values.
func (a FileAccess) Validate() error {
	switch a {
	case AccessRead, AccessReadWrite:
		return nil
	default:
		return fmt.Errorf("%w: file access %d", ErrInvalid, int(a))
	}
}

// ExistenceResult is the outcome of Folder.CheckExists.
type ExistenceResult int

const (
	// NotFound indicates no item with the given name exists.
	NotFound ExistenceResult = iota
	// FileExists indicates a file with the given name exists.
	FileExists
	// FolderExists indicates a folder with the given name exists.
	FolderExists
)

// String returns a string representation of the ExistenceResult.
func (r ExistenceResult) String() string {
	switch r {
	case NotFound:
		return "not-found"
	case FileExists:
		return "file"
	case FolderExists:
		return "folder"
	default:
		return "invalid"
	}
}
