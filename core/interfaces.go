package core

import (
	"context"
	"io"
)

// BackendType represents the underlying type of storage implementation.
type BackendType int

const (
	// BackendUnknown indicates the backend type is unknown or unspecified.
	BackendUnknown BackendType = iota
	// BackendLocal indicates a local, disk-backed storage backend.
	BackendLocal
	// BackendMemory indicates an in-memory storage backend.
	BackendMemory
	// BackendRemote indicates a remote storage backend (e.g., S3).
	BackendRemote
)

// String returns a string representation of the BackendType.
func (t BackendType) String() string {
	switch t {
	case BackendLocal:
		return "local"
	case BackendMemory:
		return "memory"
	case BackendRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// FileSystem is the entry point into one storage backend.
//
// Every backend exposes two well-known application-data root folders:
// local storage (device-bound data) and roaming storage (data that may be
// synchronized between devices). Root folders are protected: they can never
// be deleted through the Folder contract.
//
// All backend providers MUST implement this interface so that calling code
// is backend-independent.
type FileSystem interface {
	// LocalStorage returns a handle to the local application-data root folder.
	LocalStorage() Folder

	// RoamingStorage returns a handle to the roaming application-data root folder.
	RoamingStorage() Folder

	// FolderFromPath resolves a backend path to a folder handle.
	// Returns an error satisfying errors.Is(err, ErrNotExist) if no folder
	// exists at the path.
	FolderFromPath(ctx context.Context, path string) (Folder, error)

	// FileFromPath resolves a backend path to a file handle.
	// Returns an error satisfying errors.Is(err, ErrNotExist) if no file
	// exists at the path.
	FileFromPath(ctx context.Context, path string) (File, error)

	// Type returns the underlying backend type.
	// This allows callers to introspect whether the storage is backed by a
	// real disk, in-memory storage, or remote storage.
	Type() BackendType
}

// Folder is a handle to a directory-like container within one storage backend.
//
// A handle records the folder's path at construction time; the folder on the
// backing store can disappear independently of the handle's lifetime. Every
// operation therefore re-verifies that the recorded path still exists before
// delegating to the backend, and fails with an error satisfying
// errors.Is(err, ErrNotExist) when it does not.
//
// All operations accept a context because backends may perform device or
// network I/O. Folder handles are safe for concurrent use; the contract adds
// no locking of its own, so the outcome of racing mutations (for example two
// concurrent creates of the same name) is whatever the backend guarantees.
type Folder interface {
	// Name returns the last path segment of the folder.
	Name() string

	// Path returns the folder's path, unique within one FileSystem.
	Path() string

	// CreateFile creates a file with the desired name in this folder.
	// The collision option controls behavior when the name is already taken;
	// see CollisionOption. An out-of-range option fails with ErrInvalid
	// before any backend call is made.
	CreateFile(ctx context.Context, desiredName string, option CollisionOption) (File, error)

	// OpenFile returns a handle to the named file.
	// The file must exist; a backend not-found failure is returned to the
	// caller without further translation.
	OpenFile(ctx context.Context, name string) (File, error)

	// ListFiles returns a snapshot of the files in this folder.
	// Ordering is backend-defined and must be treated as opaque.
	ListFiles(ctx context.Context) ([]File, error)

	// CreateFolder creates a subfolder with the desired name in this folder.
	// The collision option controls behavior when the name is already taken;
	// see CollisionOption. An out-of-range option fails with ErrInvalid
	// before any backend call is made.
	CreateFolder(ctx context.Context, desiredName string, option CollisionOption) (Folder, error)

	// OpenFolder returns a handle to the named subfolder.
	// A backend not-found failure is translated into the uniform
	// directory-not-found error.
	OpenFolder(ctx context.Context, name string) (Folder, error)

	// ListFolders returns a snapshot of the subfolders in this folder.
	// Ordering is backend-defined and must be treated as opaque.
	ListFolders(ctx context.Context) ([]Folder, error)

	// CheckExists reports whether a file or folder with the given name
	// exists in this folder.
	CheckExists(ctx context.Context, name string) (ExistenceResult, error)

	// Delete removes this folder and all of its contents.
	// Deleting one of the two application-data roots always fails with
	// ErrRootFolder, before any backend call is attempted.
	Delete(ctx context.Context) error
}

// File is a handle to a file within one storage backend.
//
// Like Folder, a File handle records a path; the backing file can be removed
// out-of-band, in which case operations fail with an error satisfying
// errors.Is(err, ErrNotExist).
type File interface {
	// Name returns the last path segment of the file.
	Name() string

	// Path returns the file's path, unique within one FileSystem.
	Path() string

	// Open opens the file's contents as a stream.
	// AccessRead streams reject writes; see FileAccess.
	Open(ctx context.Context, access FileAccess) (Stream, error)

	// Delete removes the file from the backend.
	Delete(ctx context.Context) error

	// Rename renames the file within its folder.
	// Fails with ErrExist if the new name is already taken.
	// On success the handle refers to the renamed file.
	Rename(ctx context.Context, newName string) error

	// Move moves the file to a new backend path.
	// Fails with ErrExist if the target path is already taken.
	// On success the handle refers to the moved file.
	Move(ctx context.Context, newPath string) error
}

// Stream is an open view of a file's contents.
// The stream must be closed when no longer needed; for writable streams,
// Close is also the point where backends without in-place writes (e.g. S3)
// persist the contents.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}
