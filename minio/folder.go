package minio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/jmgilman/go/storage/core"
	"github.com/jmgilman/go/storage/minio/internal/errs"
	"github.com/minio/minio-go/v7"
)

// Folder adapts one key prefix to the core.Folder contract.
// Root-ness is computed once at construction and never re-checked.
type Folder struct {
	fs     *FS
	path   string // key-style path, no trailing slash
	name   string
	isRoot bool
}

func newFolder(s *FS, folderPath string) *Folder {
	folderPath = normalizeKey(folderPath)
	return &Folder{
		fs:     s,
		path:   folderPath,
		name:   path.Base(folderPath),
		isRoot: folderPath == s.local || folderPath == s.roaming,
	}
}

// Name returns the last path segment of the folder.
func (f *Folder) Name() string {
	return f.name
}

// Path returns the folder's key-style path.
func (f *Folder) Path() string {
	return f.path
}

// ensureExists re-verifies the folder before an operation acts.
// A stale handle fails here with the uniform directory-not-found error, not
// with whatever the delegated S3 call would have reported.
func (f *Folder) ensureExists(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	exists, err := f.fs.folderExists(ctx, f.path)
	if err != nil {
		return err
	}
	if !exists {
		return errs.PathError("open", f.path, core.ErrNotExist)
	}
	return nil
}

// fileExists reports whether an object is present at the given key.
func (f *Folder) fileExists(ctx context.Context, key string) (bool, error) {
	_, err := f.fs.client.StatObject(ctx, f.fs.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if terr := errs.Translate(err); !errors.Is(terr, fs.ErrNotExist) {
		return false, terr
	}
	return false, nil
}

// uniqueName probes "name (2)", "name (3)", ... until a free name is found.
func (f *Folder) uniqueName(ctx context.Context, desiredName string, isFile bool) (string, error) {
	base, ext := desiredName, ""
	if isFile {
		ext = path.Ext(desiredName)
		base = strings.TrimSuffix(desiredName, ext)
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		var taken bool
		var err error
		if isFile {
			taken, err = f.fileExists(ctx, f.path+"/"+candidate)
		} else {
			taken, err = f.fs.folderExists(ctx, f.path+"/"+candidate)
		}
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// CreateFile creates a file with the desired name in this folder.
func (f *Folder) CreateFile(ctx context.Context, desiredName string, option core.CollisionOption) (core.File, error) {
	if err := option.Validate(); err != nil {
		return nil, err
	}
	if err := validateName(desiredName); err != nil {
		return nil, err
	}
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	key := f.path + "/" + desiredName
	taken, err := f.fileExists(ctx, key)
	if err != nil {
		return nil, err
	}
	if taken {
		switch option {
		case core.GenerateUniqueName:
			unique, err := f.uniqueName(ctx, desiredName, true)
			if err != nil {
				return nil, err
			}
			key = f.path + "/" + unique
		case core.ReplaceExisting:
			// PutObject below overwrites the existing object.
		case core.FailIfExists:
			return nil, errs.PathError("create", key, core.ErrExist)
		case core.OpenIfExists:
			return newFile(f.fs, key), nil
		}
	}

	if err := f.fs.putObject(ctx, key, nil); err != nil {
		return nil, errs.PathError("create", key, err)
	}
	return newFile(f.fs, key), nil
}

// OpenFile returns a handle to the named file in this folder.
// Raw S3 errors carry no stdlib identity, so the not-found signal is
// translated here as well (unlike hierarchical backends, which pass the
// backend error through).
func (f *Folder) OpenFile(ctx context.Context, name string) (core.File, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	key := f.path + "/" + name
	if _, err := f.fs.client.StatObject(ctx, f.fs.bucket, key, minio.StatObjectOptions{}); err != nil {
		return nil, errs.PathError("open", key, errs.Translate(err))
	}
	return newFile(f.fs, key), nil
}

// ListFiles returns a snapshot of the files in this folder.
func (f *Folder) ListFiles(ctx context.Context) ([]core.File, error) {
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	prefix := f.path + "/"
	files := make([]core.File, 0)
	for object := range f.fs.client.ListObjects(ctx, f.fs.bucket, minio.ListObjectsOptions{
		Prefix: prefix,
	}) {
		if object.Err != nil {
			return nil, errs.PathError("list", f.path, errs.Translate(object.Err))
		}
		// Folder markers and subfolder prefixes end with "/".
		if strings.HasSuffix(object.Key, "/") {
			continue
		}
		files = append(files, newFile(f.fs, object.Key))
	}
	return files, nil
}

// CreateFolder creates a subfolder with the desired name in this folder.
func (f *Folder) CreateFolder(ctx context.Context, desiredName string, option core.CollisionOption) (core.Folder, error) {
	if err := option.Validate(); err != nil {
		return nil, err
	}
	if err := validateName(desiredName); err != nil {
		return nil, err
	}
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	target := f.path + "/" + desiredName
	taken, err := f.fs.folderExists(ctx, target)
	if err != nil {
		return nil, err
	}
	if taken {
		switch option {
		case core.GenerateUniqueName:
			unique, err := f.uniqueName(ctx, desiredName, false)
			if err != nil {
				return nil, err
			}
			target = f.path + "/" + unique
		case core.ReplaceExisting:
			if err := f.fs.removeAll(ctx, target); err != nil {
				return nil, errs.PathError("create", target, err)
			}
		case core.FailIfExists:
			return nil, errs.PathError("create", target, core.ErrExist)
		case core.OpenIfExists:
			return newFolder(f.fs, target), nil
		}
	}

	if err := f.fs.putMarker(ctx, target); err != nil {
		return nil, errs.PathError("create", target, err)
	}
	return newFolder(f.fs, target), nil
}

// OpenFolder returns a handle to the named subfolder.
func (f *Folder) OpenFolder(ctx context.Context, name string) (core.Folder, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	target := f.path + "/" + name
	exists, err := f.fs.folderExists(ctx, target)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.PathError("open", target, core.ErrNotExist)
	}
	return newFolder(f.fs, target), nil
}

// ListFolders returns a snapshot of the subfolders in this folder.
func (f *Folder) ListFolders(ctx context.Context) ([]core.Folder, error) {
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	prefix := f.path + "/"
	folders := make([]core.Folder, 0)
	for object := range f.fs.client.ListObjects(ctx, f.fs.bucket, minio.ListObjectsOptions{
		Prefix: prefix,
	}) {
		if object.Err != nil {
			return nil, errs.PathError("list", f.path, errs.Translate(object.Err))
		}
		// The folder's own marker comes back as the bare prefix.
		if object.Key == prefix {
			continue
		}
		if !strings.HasSuffix(object.Key, "/") {
			continue
		}
		folders = append(folders, newFolder(f.fs, strings.TrimSuffix(object.Key, "/")))
	}
	return folders, nil
}

// CheckExists reports whether an item with the given name exists in this folder.
func (f *Folder) CheckExists(ctx context.Context, name string) (core.ExistenceResult, error) {
	if err := validateName(name); err != nil {
		return core.NotFound, err
	}
	if err := f.ensureExists(ctx); err != nil {
		return core.NotFound, err
	}

	target := f.path + "/" + name
	isFile, err := f.fileExists(ctx, target)
	if err != nil {
		return core.NotFound, err
	}
	if isFile {
		return core.FileExists, nil
	}

	isFolder, err := f.fs.folderExists(ctx, target)
	if err != nil {
		return core.NotFound, err
	}
	if isFolder {
		return core.FolderExists, nil
	}
	return core.NotFound, nil
}

// Delete removes this folder and all of its contents.
func (f *Folder) Delete(ctx context.Context) error {
	if f.isRoot {
		return errs.PathError("delete", f.path, core.ErrRootFolder)
	}
	if err := f.ensureExists(ctx); err != nil {
		return err
	}
	if err := f.fs.removeAll(ctx, f.path); err != nil {
		return errs.PathError("delete", f.path, err)
	}
	return nil
}

// Compile-time interface check.
var _ core.Folder = (*Folder)(nil)
