package billy

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/storage/core"
)

// Config holds the application-data root folders for a billy-backed storage.
//
// The protected roots are injected here rather than read from process-wide
// state so the adapter can be exercised against any billy.Filesystem,
// including the in-memory one.
type Config struct {
	// LocalRoot is the path of the local application-data root folder.
	LocalRoot string

	// RoamingRoot is the path of the roaming application-data root folder.
	RoamingRoot string
}

// validate checks that both roots are set and distinct.
func (c *Config) validate() error {
	if c.LocalRoot == "" {
		return fmt.Errorf("local root is required")
	}
	if c.RoamingRoot == "" {
		return fmt.Errorf("roaming root is required")
	}
	if normalize(c.LocalRoot) == normalize(c.RoamingRoot) {
		return fmt.Errorf("local and roaming roots must differ")
	}
	return nil
}

// FS implements core.FileSystem over a billy.Filesystem.
// It provides a thin adapter layer while maintaining access to the
// underlying billy.Filesystem for go-git integration.
type FS struct {
	bfs     billy.Filesystem
	local   string
	roaming string
	backend core.BackendType
}

// NewLocal creates a go-billy-backed storage over the local disk.
// Both root folders are created if they do not already exist.
func NewLocal(cfg Config) (*FS, error) {
	return newFS(osfs.New("/"), cfg, core.BackendLocal)
}

// NewMemory creates a go-billy-backed storage over an in-memory filesystem.
// The storage initially contains only the two empty root folders.
func NewMemory(cfg Config) (*FS, error) {
	return newFS(memfs.New(), cfg, core.BackendMemory)
}

// New creates a storage over a caller-provided billy.Filesystem.
// The backend type is reported as the given value.
func New(bfs billy.Filesystem, cfg Config, backend core.BackendType) (*FS, error) {
	return newFS(bfs, cfg, backend)
}

func newFS(bfs billy.Filesystem, cfg Config, backend core.BackendType) (*FS, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	local := normalize(cfg.LocalRoot)
	roaming := normalize(cfg.RoamingRoot)
	for _, root := range []string{local, roaming} {
		if err := bfs.MkdirAll(root, 0o755); err != nil {
			return nil, fmt.Errorf("create root %s: %w", root, err)
		}
	}

	return &FS{
		bfs:     bfs,
		local:   local,
		roaming: roaming,
		backend: backend,
	}, nil
}

// Unwrap returns the underlying billy.Filesystem for go-git integration.
// This allows passing the filesystem to go-git APIs that require billy.Filesystem.
func (s *FS) Unwrap() billy.Filesystem {
	return s.bfs
}

// LocalStorage returns a handle to the local application-data root folder.
func (s *FS) LocalStorage() core.Folder {
	return newFolder(s, s.local)
}

// RoamingStorage returns a handle to the roaming application-data root folder.
func (s *FS) RoamingStorage() core.Folder {
	return newFolder(s, s.roaming)
}

// FolderFromPath resolves a path to a folder handle.
// The path must name an existing directory.
func (s *FS) FolderFromPath(ctx context.Context, path string) (core.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path = normalize(path)
	info, err := s.bfs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &fs.PathError{Op: "open", Path: path, Err: core.ErrNotExist}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: path, Err: core.ErrNotExist}
	}
	return newFolder(s, path), nil
}

// FileFromPath resolves a path to a file handle.
// The path must name an existing file.
func (s *FS) FileFromPath(ctx context.Context, path string) (core.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path = normalize(path)
	info, err := s.bfs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &fs.PathError{Op: "open", Path: path, Err: core.ErrNotExist}
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: path, Err: core.ErrNotExist}
	}
	return newFile(s, path), nil
}

// Type returns the backend type the storage was constructed with.
func (s *FS) Type() core.BackendType {
	return s.backend
}

// normalize converts paths to use forward slashes consistently.
// This is a simplified path normalization since billy handles security.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// validateName rejects names that are empty or span path segments.
// Item names address direct children only.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", core.ErrInvalid)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: name %q must be a single path segment", core.ErrInvalid, name)
	}
	return nil
}

// removeAll removes path and any children it contains.
// Billy doesn't have RemoveAll, implement via recursive removal.
func removeAll(bfs billy.Filesystem, path string) error {
	info, err := bfs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return bfs.Remove(path)
	}

	entries, err := bfs.ReadDir(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		entryPath := normalize(filepath.Join(path, entry.Name()))
		if err := removeAll(bfs, entryPath); err != nil {
			return err
		}
	}

	return bfs.Remove(path)
}

// Compile-time interface check.
var _ core.FileSystem = (*FS)(nil)
