package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jmgilman/go/storage/core"
	"github.com/jmgilman/go/storage/minio/internal/errs"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	defaultLocalRoot   = "local"
	defaultRoamingRoot = "roaming"
)

// FS implements core.FileSystem for MinIO/S3-compatible storage.
//
// Folders are modeled as key prefixes. Each folder carries a zero-byte
// marker object at "<path>/" so that empty folders exist and the stale-handle
// pre-check behaves the same as on hierarchical backends.
type FS struct {
	client  *minio.Client
	bucket  string
	local   string
	roaming string
}

// New creates a MinIO-backed storage.
// The two root folders are created (as marker objects) if missing.
// Returns error if configuration is invalid or connection fails.
func New(ctx context.Context, cfg Config) (*FS, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
	}

	local := cfg.LocalRoot
	if local == "" {
		local = defaultLocalRoot
	}
	roaming := cfg.RoamingRoot
	if roaming == "" {
		roaming = defaultRoamingRoot
	}

	s := &FS{
		client:  client,
		bucket:  cfg.Bucket,
		local:   normalizeKey(local),
		roaming: normalizeKey(roaming),
	}

	for _, root := range []string{s.local, s.roaming} {
		if err := s.putMarker(ctx, root); err != nil {
			return nil, fmt.Errorf("create root %s: %w", root, err)
		}
	}

	return s, nil
}

// LocalStorage returns a handle to the local application-data root folder.
func (s *FS) LocalStorage() core.Folder {
	return newFolder(s, s.local)
}

// RoamingStorage returns a handle to the roaming application-data root folder.
func (s *FS) RoamingStorage() core.Folder {
	return newFolder(s, s.roaming)
}

// FolderFromPath resolves a key-style path to a folder handle.
func (s *FS) FolderFromPath(ctx context.Context, path string) (core.Folder, error) {
	path = normalizeKey(path)
	exists, err := s.folderExists(ctx, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.PathError("open", path, core.ErrNotExist)
	}
	return newFolder(s, path), nil
}

// FileFromPath resolves a key-style path to a file handle.
func (s *FS) FileFromPath(ctx context.Context, path string) (core.File, error) {
	path = normalizeKey(path)
	if _, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{}); err != nil {
		return nil, errs.PathError("open", path, errs.Translate(err))
	}
	return newFile(s, path), nil
}

// Type returns BackendRemote.
func (s *FS) Type() core.BackendType {
	return core.BackendRemote
}

// putObject writes an object with the given contents, overwriting any
// existing object at the key.
func (s *FS) putObject(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	return errs.Translate(err)
}

// putMarker writes the zero-byte "<path>/" object that backs a folder.
func (s *FS) putMarker(ctx context.Context, folderPath string) error {
	_, err := s.client.PutObject(ctx, s.bucket, folderPath+"/",
		bytes.NewReader(nil), 0, minio.PutObjectOptions{})
	return errs.Translate(err)
}

// folderExists reports whether a folder is present at the given path, either
// as a marker object or implicitly through at least one object under its
// prefix.
func (s *FS) folderExists(ctx context.Context, folderPath string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, folderPath+"/", minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if terr := errs.Translate(err); !errors.Is(terr, fs.ErrNotExist) {
		return false, terr
	}

	// No marker; fall back to probing the prefix for any object.
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:  folderPath + "/",
		MaxKeys: 1,
	}) {
		if object.Err != nil {
			return false, errs.Translate(object.Err)
		}
		return true, nil
	}
	return false, nil
}

// removeAll deletes every object under the folder's prefix, including the
// marker, using the batch removal API fed by a lister goroutine.
func (s *FS) removeAll(ctx context.Context, folderPath string) error {
	objectsCh := make(chan minio.ObjectInfo, 100)

	var listErr error
	go func() {
		defer close(objectsCh)
		for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
			Prefix:    folderPath + "/",
			Recursive: true,
		}) {
			if object.Err != nil {
				listErr = object.Err
				return
			}
			objectsCh <- object
		}
	}()

	var errList []error
	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			errList = append(errList, rerr.Err)
		}
	}

	if listErr != nil {
		return errs.Translate(listErr)
	}
	if len(errList) > 0 {
		return errs.Translate(errList[0])
	}
	return nil
}

// normalizeKey converts a path to key form: forward slashes, no leading or
// trailing slash.
func normalizeKey(path string) string {
	return strings.Trim(strings.ReplaceAll(path, "\\", "/"), "/")
}

// validateName rejects names that are empty or span path segments.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", core.ErrInvalid)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: name %q must be a single path segment", core.ErrInvalid, name)
	}
	return nil
}

// Compile-time interface check.
var _ core.FileSystem = (*FS)(nil)
