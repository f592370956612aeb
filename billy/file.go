package billy

import (
	"context"
	"io/fs"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/storage/core"
)

// File adapts one billy file path to the core.File contract.
// Like Folder, the handle re-verifies the backing file on every operation.
type File struct {
	storage *FS
	path    string
	name    string
}

func newFile(s *FS, filePath string) *File {
	filePath = normalize(filePath)
	return &File{
		storage: s,
		path:    filePath,
		name:    path.Base(filePath),
	}
}

// Name returns the last path segment of the file.
func (f *File) Name() string {
	return f.name
}

// Path returns the file's path within the backing filesystem.
func (f *File) Path() string {
	return f.path
}

// ensureExists re-verifies the file at the recorded path before an
// operation acts.
func (f *File) ensureExists(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := f.storage.bfs.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fs.PathError{Op: "open", Path: f.path, Err: core.ErrNotExist}
		}
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "open", Path: f.path, Err: core.ErrNotExist}
	}
	return nil
}

// Open opens the file's contents as a stream.
func (f *File) Open(ctx context.Context, access core.FileAccess) (core.Stream, error) {
	if err := access.Validate(); err != nil {
		return nil, err
	}
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	flag := os.O_RDONLY
	if access == core.AccessReadWrite {
		flag = os.O_RDWR
	}
	h, err := f.storage.bfs.OpenFile(f.path, flag, 0o644)
	if err != nil {
		return nil, err
	}
	return &stream{file: h, path: f.path, readonly: access == core.AccessRead}, nil
}

// Delete removes the file from the backing filesystem.
func (f *File) Delete(ctx context.Context) error {
	if err := f.ensureExists(ctx); err != nil {
		return err
	}
	return f.storage.bfs.Remove(f.path)
}

// Rename renames the file within its folder.
// On success the handle refers to the renamed file.
func (f *File) Rename(ctx context.Context, newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}
	return f.relocate(ctx, path.Join(path.Dir(f.path), newName))
}

// Move moves the file to a new path within the backing filesystem.
// On success the handle refers to the moved file.
func (f *File) Move(ctx context.Context, newPath string) error {
	return f.relocate(ctx, normalize(newPath))
}

func (f *File) relocate(ctx context.Context, target string) error {
	if err := f.ensureExists(ctx); err != nil {
		return err
	}
	if _, err := f.storage.bfs.Stat(target); err == nil {
		return &fs.PathError{Op: "rename", Path: target, Err: core.ErrExist}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := f.storage.bfs.Rename(f.path, target); err != nil {
		return err
	}
	f.path = target
	f.name = path.Base(target)
	return nil
}

// stream wraps billy.File to implement core.Stream.
// Read-only streams reject writes before reaching the backend, since not
// every billy backend enforces open flags.
type stream struct {
	file     billy.File
	path     string
	readonly bool
}

// Read delegates directly to the underlying billy.File.
func (s *stream) Read(p []byte) (int, error) {
	return s.file.Read(p)
}

// Write delegates to the underlying billy.File.
// Writes to a read-only stream fail with ErrPermission.
func (s *stream) Write(p []byte) (int, error) {
	if s.readonly {
		return 0, &fs.PathError{Op: "write", Path: s.path, Err: core.ErrPermission}
	}
	return s.file.Write(p)
}

// Seek delegates directly to the underlying billy.File.
func (s *stream) Seek(offset int64, whence int) (int64, error) {
	return s.file.Seek(offset, whence)
}

// Close delegates directly to the underlying billy.File.
func (s *stream) Close() error {
	return s.file.Close()
}

// Compile-time interface checks.
var (
	_ core.File   = (*File)(nil)
	_ core.Stream = (*stream)(nil)
)
