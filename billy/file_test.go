package billy

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jmgilman/go/storage/core"
)

// TestStream_ReadOnlyWrite verifies writes to a read-only stream fail with
// ErrPermission before reaching the backend.
func TestStream_ReadOnlyWrite(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemory(memoryConfig())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}

	file, err := s.LocalStorage().CreateFile(ctx, "ro.txt", core.FailIfExists)
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	stream, err := file.Open(ctx, core.AccessRead)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = stream.Close() }()

	if _, err := stream.Write([]byte("x")); !errors.Is(err, core.ErrPermission) {
		t.Errorf("Write on read-only stream = %v, want errors.Is(err, ErrPermission)", err)
	}
}

// TestFile_OpenInvalidAccess verifies an out-of-range access mode fails with
// ErrInvalid before any backend call.
func TestFile_OpenInvalidAccess(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemory(memoryConfig())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}

	file, err := s.LocalStorage().CreateFile(ctx, "f.txt", core.FailIfExists)
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if _, err := file.Open(ctx, core.FileAccess(7)); !errors.Is(err, core.ErrInvalid) {
		t.Errorf("Open(invalid access) = %v, want errors.Is(err, ErrInvalid)", err)
	}
}

// TestFile_MoveUpdatesHandle verifies a moved handle keeps working at the
// new location.
func TestFile_MoveUpdatesHandle(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemory(memoryConfig())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}
	root := s.LocalStorage()

	dest, err := root.CreateFolder(ctx, "dest", core.FailIfExists)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	file, err := root.CreateFile(ctx, "moving.txt", core.FailIfExists)
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}

	stream, err := file.Open(ctx, core.AccessReadWrite)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := stream.Write([]byte("cargo")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := file.Move(ctx, dest.Path()+"/moving.txt"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if file.Path() != dest.Path()+"/moving.txt" {
		t.Errorf("Path() after move = %q, want %q", file.Path(), dest.Path()+"/moving.txt")
	}

	// The handle stays usable at the new location.
	rs, err := file.Open(ctx, core.AccessRead)
	if err != nil {
		t.Fatalf("Open after move: %v", err)
	}
	defer func() { _ = rs.Close() }()
	data, err := io.ReadAll(rs)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "cargo" {
		t.Errorf("contents after move = %q, want %q", data, "cargo")
	}
}
