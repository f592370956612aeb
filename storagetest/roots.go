package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/jmgilman/go/storage/core"
)

// TestRoots verifies the two application-data roots and their protection.
func TestRoots(t *testing.T, storage core.FileSystem) {
	ctx := context.Background()

	t.Run("Distinct", func(t *testing.T) {
		local := storage.LocalStorage()
		roaming := storage.RoamingStorage()
		if local == nil || roaming == nil {
			t.Fatal("root folders must not be nil")
		}
		if local.Name() == "" || roaming.Name() == "" {
			t.Error("root folder names must not be empty")
		}
		if local.Path() == roaming.Path() {
			t.Errorf("local and roaming roots share path %q", local.Path())
		}
	})

	t.Run("DeleteLocalForbidden", func(t *testing.T) {
		err := storage.LocalStorage().Delete(ctx)
		if !errors.Is(err, core.ErrRootFolder) {
			t.Errorf("Delete(local root) = %v, want errors.Is(err, ErrRootFolder)", err)
		}
	})

	t.Run("DeleteRoamingForbidden", func(t *testing.T) {
		err := storage.RoamingStorage().Delete(ctx)
		if !errors.Is(err, core.ErrRootFolder) {
			t.Errorf("Delete(roaming root) = %v, want errors.Is(err, ErrRootFolder)", err)
		}
	})

	t.Run("RootUsableAfterDeleteAttempt", func(t *testing.T) {
		root := storage.LocalStorage()
		if err := root.Delete(ctx); !errors.Is(err, core.ErrRootFolder) {
			t.Fatalf("Delete(root) = %v, want errors.Is(err, ErrRootFolder)", err)
		}

		// A refused delete must leave the root fully functional.
		sub, err := root.CreateFolder(ctx, "after-delete", core.OpenIfExists)
		if err != nil {
			t.Fatalf("CreateFolder after refused delete: %v", err)
		}
		if err := sub.Delete(ctx); err != nil {
			t.Errorf("Delete(subfolder): %v", err)
		}
	})

	t.Run("SubfolderOfRootDeletable", func(t *testing.T) {
		// Only the roots themselves are protected; children are not.
		sub, err := storage.RoamingStorage().CreateFolder(ctx, "victim", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder(victim): %v", err)
		}
		if err := sub.Delete(ctx); err != nil {
			t.Errorf("Delete(victim) = %v, want nil", err)
		}
	})
}
