package billy

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/jmgilman/go/storage/core"
)

// Folder adapts one billy directory to the core.Folder contract.
//
// The handle stores only the directory's path; whether the directory still
// exists is re-checked on every operation, because the backing directory can
// be removed out-of-band after the handle was constructed. Root-ness is
// computed once, at construction, by comparing the path against the storage's
// injected root set, and is never re-checked.
type Folder struct {
	storage *FS
	path    string
	name    string
	isRoot  bool
}

func newFolder(s *FS, folderPath string) *Folder {
	folderPath = normalize(folderPath)
	return &Folder{
		storage: s,
		path:    folderPath,
		name:    path.Base(folderPath),
		isRoot:  folderPath == s.local || folderPath == s.roaming,
	}
}

// Name returns the last path segment of the folder.
func (f *Folder) Name() string {
	return f.name
}

// Path returns the folder's path within the backing filesystem.
func (f *Folder) Path() string {
	return f.path
}

// ensureExists re-verifies the folder at the recorded path before an
// operation acts. A missing or non-directory path aborts the operation with
// a directory-not-found error, regardless of what the delegated call would
// have reported.
func (f *Folder) ensureExists(ctx context.Context) error {
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
	if !info.IsDir() {
		return &fs.PathError{Op: "open", Path: f.path, Err: core.ErrNotExist}
	}
	return nil
}

// exists reports whether any item is present at the given path.
func (f *Folder) exists(itemPath string) (bool, error) {
	_, err := f.storage.bfs.Stat(itemPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// uniqueName probes "name (2)", "name (3)", ... until a free name is found.
// For files the extension is preserved: "report.txt" becomes "report (2).txt".
func (f *Folder) uniqueName(desiredName string, isFile bool) (string, error) {
	base, ext := desiredName, ""
	if isFile {
		ext = path.Ext(desiredName)
		base = strings.TrimSuffix(desiredName, ext)
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		taken, err := f.exists(path.Join(f.path, candidate))
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

	target := path.Join(f.path, desiredName)
	taken, err := f.exists(target)
	if err != nil {
		return nil, err
	}
	if taken {
		switch option {
		case core.GenerateUniqueName:
			unique, err := f.uniqueName(desiredName, true)
			if err != nil {
				return nil, err
			}
			target = path.Join(f.path, unique)
		case core.ReplaceExisting:
			if err := f.storage.bfs.Remove(target); err != nil {
				return nil, err
			}
		case core.FailIfExists:
			return nil, &fs.PathError{Op: "create", Path: target, Err: core.ErrExist}
		case core.OpenIfExists:
			return newFile(f.storage, target), nil
		}
	}

	h, err := f.storage.bfs.Create(target)
	if err != nil {
		return nil, err
	}
	if err := h.Close(); err != nil {
		return nil, err
	}
	return newFile(f.storage, target), nil
}

// OpenFile returns a handle to the named file in this folder.
// The backend's not-found failure is returned to the caller as-is.
func (f *Folder) OpenFile(ctx context.Context, name string) (core.File, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	target := path.Join(f.path, name)
	info, err := f.storage.bfs.Stat(target)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: target, Err: core.ErrNotExist}
	}
	return newFile(f.storage, target), nil
}

// ListFiles returns a snapshot of the files in this folder.
func (f *Folder) ListFiles(ctx context.Context) ([]core.File, error) {
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	infos, err := f.storage.bfs.ReadDir(f.path)
	if err != nil {
		return nil, err
	}
	files := make([]core.File, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		files = append(files, newFile(f.storage, path.Join(f.path, info.Name())))
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

	target := path.Join(f.path, desiredName)
	taken, err := f.exists(target)
	if err != nil {
		return nil, err
	}
	if taken {
		switch option {
		case core.GenerateUniqueName:
			unique, err := f.uniqueName(desiredName, false)
			if err != nil {
				return nil, err
			}
			target = path.Join(f.path, unique)
		case core.ReplaceExisting:
			if err := removeAll(f.storage.bfs, target); err != nil {
				return nil, err
			}
		case core.FailIfExists:
			return nil, &fs.PathError{Op: "create", Path: target, Err: core.ErrExist}
		case core.OpenIfExists:
			return newFolder(f.storage, target), nil
		}
	}

	if err := f.storage.bfs.MkdirAll(target, 0o755); err != nil {
		return nil, err
	}
	return newFolder(f.storage, target), nil
}

// OpenFolder returns a handle to the named subfolder.
// The backend's not-found failure is translated into the uniform
// directory-not-found error.
func (f *Folder) OpenFolder(ctx context.Context, name string) (core.Folder, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	target := path.Join(f.path, name)
	info, err := f.storage.bfs.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &fs.PathError{Op: "open", Path: target, Err: core.ErrNotExist}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: target, Err: core.ErrNotExist}
	}
	return newFolder(f.storage, target), nil
}

// ListFolders returns a snapshot of the subfolders in this folder.
func (f *Folder) ListFolders(ctx context.Context) ([]core.Folder, error) {
	if err := f.ensureExists(ctx); err != nil {
		return nil, err
	}

	infos, err := f.storage.bfs.ReadDir(f.path)
	if err != nil {
		return nil, err
	}
	folders := make([]core.Folder, 0, len(infos))
	for _, info := range infos {
		if !info.IsDir() {
			continue
		}
		folders = append(folders, newFolder(f.storage, path.Join(f.path, info.Name())))
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

	info, err := f.storage.bfs.Stat(path.Join(f.path, name))
	if err != nil {
		if os.IsNotExist(err) {
			return core.NotFound, nil
		}
		return core.NotFound, err
	}
	if info.IsDir() {
		return core.FolderExists, nil
	}
	return core.FileExists, nil
}

// Delete removes this folder and all of its contents.
// Root folders can never be deleted through this interface, regardless of
// whether the backing filesystem would allow it.
func (f *Folder) Delete(ctx context.Context) error {
	if f.isRoot {
		return &fs.PathError{Op: "delete", Path: f.path, Err: core.ErrRootFolder}
	}
	if err := f.ensureExists(ctx); err != nil {
		return err
	}
	return removeAll(f.storage.bfs, f.path)
}

// Compile-time interface check.
var _ core.Folder = (*Folder)(nil)
