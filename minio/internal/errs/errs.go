// Package errs provides error handling utilities for the minio storage
// backend.
//
// Status-code matching against the S3 response vocabulary is fragile and
// version-dependent, so it is confined to Translate; the rest of the backend
// works in terms of the uniform io/fs sentinels.
package errs

import (
	"fmt"
	"io/fs"

	"github.com/minio/minio-go/v7"
)

// Translate converts MinIO errors to stdlib fs errors.
// Errors that do not carry a recognized S3 response code are wrapped with
// backend context but otherwise passed through unchanged, preserving the
// original diagnostics.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	errResp := minio.ToErrorResponse(err)

	switch errResp.Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	}

	return fmt.Errorf("minio: %w", err)
}

// PathError wraps an error in a fs.PathError for the given operation and path.
// If the error is nil, returns nil.
func PathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}
