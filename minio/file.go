package minio

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path"

	"github.com/jmgilman/go/storage/core"
	"github.com/jmgilman/go/storage/minio/internal/errs"
	"github.com/minio/minio-go/v7"
)

// File adapts one object key to the core.File contract.
type File struct {
	fs   *FS
	path string // object key
	name string
}

func newFile(s *FS, key string) *File {
	key = normalizeKey(key)
	return &File{
		fs:   s,
		path: key,
		name: path.Base(key),
	}
}

// Name returns the last path segment of the file.
func (f *File) Name() string {
	return f.name
}

// Path returns the file's object key.
func (f *File) Path() string {
	return f.path
}

// ensureExists re-verifies the object before an operation acts.
func (f *File) ensureExists(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := f.fs.client.StatObject(ctx, f.fs.bucket, f.path, minio.StatObjectOptions{}); err != nil {
		return errs.PathError("open", f.path, errs.Translate(err))
	}
	return nil
}

// Open opens the file's contents as a stream.
//
// S3 objects cannot be written in place, so the object is downloaded into
// memory; a writable stream uploads the buffer back on Close. The stream
// holds the Open context for that upload.
func (f *File) Open(ctx context.Context, access core.FileAccess) (core.Stream, error) {
	if err := access.Validate(); err != nil {
		return nil, err
	}
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	obj, err := f.fs.client.GetObject(ctx, f.fs.bucket, f.path, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.PathError("open", f.path, errs.Translate(err))
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errs.PathError("open", f.path, errs.Translate(err))
	}

	return &stream{
		ctx:      ctx,
		fs:       f.fs,
		key:      f.path,
		data:     data,
		readonly: access == core.AccessRead,
	}, nil
}

// Delete removes the object from the bucket.
func (f *File) Delete(ctx context.Context) error {
	if err := f.ensureExists(ctx); err != nil {
		return err
	}
	if err := f.fs.client.RemoveObject(ctx, f.fs.bucket, f.path, minio.RemoveObjectOptions{}); err != nil {
		return errs.PathError("delete", f.path, errs.Translate(err))
	}
	return nil
}

// Rename renames the file within its folder.
// On success the handle refers to the renamed file.
func (f *File) Rename(ctx context.Context, newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}
	return f.relocate(ctx, path.Dir(f.path)+"/"+newName)
}

// Move moves the file to a new object key.
// On success the handle refers to the moved file.
func (f *File) Move(ctx context.Context, newPath string) error {
	return f.relocate(ctx, normalizeKey(newPath))
}

// relocate implements rename and move as copy + delete, which is the only
// option S3 offers. The two steps are not atomic: a failure after the copy
// leaves the object at both keys.
func (f *File) relocate(ctx context.Context, target string) error {
	if err := f.ensureExists(ctx); err != nil {
		return err
	}

	if _, err := f.fs.client.StatObject(ctx, f.fs.bucket, target, minio.StatObjectOptions{}); err == nil {
		return errs.PathError("rename", target, core.ErrExist)
	} else if terr := errs.Translate(err); !errors.Is(terr, fs.ErrNotExist) {
		return errs.PathError("rename", target, terr)
	}

	src := minio.CopySrcOptions{Bucket: f.fs.bucket, Object: f.path}
	dst := minio.CopyDestOptions{Bucket: f.fs.bucket, Object: target}
	if _, err := f.fs.client.CopyObject(ctx, dst, src); err != nil {
		return errs.PathError("rename", f.path, errs.Translate(err))
	}
	if err := f.fs.client.RemoveObject(ctx, f.fs.bucket, f.path, minio.RemoveObjectOptions{}); err != nil {
		return errs.PathError("rename", f.path, errs.Translate(err))
	}

	f.path = target
	f.name = path.Base(target)
	return nil
}

// Compile-time interface check.
var _ core.File = (*File)(nil)
