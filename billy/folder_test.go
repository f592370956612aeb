package billy

import (
	"context"
	"errors"
	"testing"

	"github.com/jmgilman/go/storage/core"
)

// TestRootFrozenAtConstruction verifies root-ness is decided when the handle
// is built and the delete refusal does not depend on backend state.
func TestRootFrozenAtConstruction(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemory(memoryConfig())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}
	root := s.LocalStorage()

	// Remove the root directory behind the handle's back. The refusal must
	// still win, because the root check runs before the existence pre-check.
	if err := s.Unwrap().Remove("/appdata/local"); err != nil {
		t.Fatalf("billy Remove: %v", err)
	}
	if err := root.Delete(ctx); !errors.Is(err, core.ErrRootFolder) {
		t.Errorf("Delete(root) = %v, want errors.Is(err, ErrRootFolder)", err)
	}
}

// TestFolderFromPath_RootProtected verifies a handle resolved at a root path
// is recognized as a root.
func TestFolderFromPath_RootProtected(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemory(memoryConfig())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}

	root, err := s.FolderFromPath(ctx, "/appdata/roaming")
	if err != nil {
		t.Fatalf("FolderFromPath: %v", err)
	}
	if err := root.Delete(ctx); !errors.Is(err, core.ErrRootFolder) {
		t.Errorf("Delete(resolved root) = %v, want errors.Is(err, ErrRootFolder)", err)
	}
}

// TestUniqueNameFormat verifies the generated-name pattern, including
// extension handling for files.
func TestUniqueNameFormat(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemory(memoryConfig())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}
	root := s.LocalStorage()

	if _, err := root.CreateFile(ctx, "report.txt", core.FailIfExists); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}

	second, err := root.CreateFile(ctx, "report.txt", core.GenerateUniqueName)
	if err != nil {
		t.Fatalf("CreateFile(GenerateUniqueName): %v", err)
	}
	if second.Name() != "report (2).txt" {
		t.Errorf("generated name = %q, want %q", second.Name(), "report (2).txt")
	}

	third, err := root.CreateFile(ctx, "report.txt", core.GenerateUniqueName)
	if err != nil {
		t.Fatalf("CreateFile(GenerateUniqueName): %v", err)
	}
	if third.Name() != "report (3).txt" {
		t.Errorf("generated name = %q, want %q", third.Name(), "report (3).txt")
	}

	if _, err := root.CreateFolder(ctx, "sub", core.FailIfExists); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	folder, err := root.CreateFolder(ctx, "sub", core.GenerateUniqueName)
	if err != nil {
		t.Fatalf("CreateFolder(GenerateUniqueName): %v", err)
	}
	if folder.Name() != "sub (2)" {
		t.Errorf("generated folder name = %q, want %q", folder.Name(), "sub (2)")
	}
}

// TestPreCheckWinsOverDelegatedError verifies the existence pre-check
// reports directory-not-found even when the delegated call would have
// produced a different failure.
func TestPreCheckWinsOverDelegatedError(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemory(memoryConfig())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}
	root := s.LocalStorage()

	stale, err := root.CreateFolder(ctx, "stale", core.FailIfExists)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if _, err := stale.CreateFile(ctx, "present.txt", core.FailIfExists); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if err := stale.Delete(ctx); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Without the pre-check, FailIfExists against the stale path would be a
	// plain create and succeed.
	if _, err := stale.CreateFile(ctx, "present.txt", core.FailIfExists); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("CreateFile on stale folder = %v, want errors.Is(err, ErrNotExist)", err)
	}
}

// TestOpenFilePassThrough verifies OpenFile surfaces the backend's own
// not-found failure rather than a wrapped translation.
func TestOpenFilePassThrough(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemory(memoryConfig())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}

	_, err = s.LocalStorage().OpenFile(ctx, "absent.txt")
	if err == nil {
		t.Fatal("OpenFile(absent.txt) = nil error, want error")
	}
	// Pass-through still matches the uniform sentinel, because billy's
	// not-found wraps os.ErrNotExist.
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("OpenFile(absent.txt) = %v, want errors.Is(err, ErrNotExist)", err)
	}
}

// TestCancelledContext verifies operations observe context cancellation
// before touching the backend.
func TestCancelledContext(t *testing.T) {
	s, err := NewMemory(memoryConfig())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.LocalStorage().ListFiles(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("ListFiles(cancelled ctx) = %v, want context.Canceled", err)
	}
}
