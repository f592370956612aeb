package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/jmgilman/go/storage/core"
)

// TestFolders verifies folder create/open/list/delete semantics, the
// collision options, and the stale-handle pre-check.
func TestFolders(t *testing.T, storage core.FileSystem) {
	ctx := context.Background()
	root := storage.LocalStorage()

	t.Run("CreateAndOpen", func(t *testing.T) {
		created, err := root.CreateFolder(ctx, "docs", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder(docs): %v", err)
		}
		if created.Name() != "docs" {
			t.Errorf("created folder name = %q, want %q", created.Name(), "docs")
		}

		opened, err := root.OpenFolder(ctx, "docs")
		if err != nil {
			t.Fatalf("OpenFolder(docs): %v", err)
		}
		if opened.Path() != created.Path() {
			t.Errorf("opened path = %q, want %q", opened.Path(), created.Path())
		}
	})

	t.Run("OpenMissing", func(t *testing.T) {
		_, err := root.OpenFolder(ctx, "no-such-folder")
		if !errors.Is(err, core.ErrNotExist) {
			t.Errorf("OpenFolder(missing) = %v, want errors.Is(err, ErrNotExist)", err)
		}
	})

	t.Run("ListFolders", func(t *testing.T) {
		parent, err := root.CreateFolder(ctx, "list-folders", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}

		folders, err := parent.ListFolders(ctx)
		if err != nil {
			t.Fatalf("ListFolders(empty): %v", err)
		}
		if len(folders) != 0 {
			t.Errorf("ListFolders(empty) returned %d folders, want 0", len(folders))
		}

		if _, err := parent.CreateFolder(ctx, "a", core.FailIfExists); err != nil {
			t.Fatalf("CreateFolder(a): %v", err)
		}
		if _, err := parent.CreateFolder(ctx, "b", core.FailIfExists); err != nil {
			t.Fatalf("CreateFolder(b): %v", err)
		}

		folders, err = parent.ListFolders(ctx)
		if err != nil {
			t.Fatalf("ListFolders: %v", err)
		}
		names := map[string]bool{}
		for _, f := range folders {
			names[f.Name()] = true
		}
		if len(folders) != 2 || !names["a"] || !names["b"] {
			t.Errorf("ListFolders = %v, want {a, b}", names)
		}
	})

	t.Run("CollisionOptions", func(t *testing.T) {
		parent, err := root.CreateFolder(ctx, "folder-collisions", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		if _, err := parent.CreateFolder(ctx, "sub", core.FailIfExists); err != nil {
			t.Fatalf("CreateFolder(sub): %v", err)
		}

		t.Run("FailIfExists", func(t *testing.T) {
			_, err := parent.CreateFolder(ctx, "sub", core.FailIfExists)
			if !errors.Is(err, core.ErrExist) {
				t.Errorf("CreateFolder(sub, FailIfExists) = %v, want errors.Is(err, ErrExist)", err)
			}
		})

		t.Run("OpenIfExists", func(t *testing.T) {
			sub, err := parent.OpenFolder(ctx, "sub")
			if err != nil {
				t.Fatalf("OpenFolder(sub): %v", err)
			}
			if _, err := sub.CreateFile(ctx, "keep.txt", core.FailIfExists); err != nil {
				t.Fatalf("CreateFile(keep.txt): %v", err)
			}

			reopened, err := parent.CreateFolder(ctx, "sub", core.OpenIfExists)
			if err != nil {
				t.Fatalf("CreateFolder(sub, OpenIfExists): %v", err)
			}
			if reopened.Path() != sub.Path() {
				t.Errorf("OpenIfExists path = %q, want %q", reopened.Path(), sub.Path())
			}
			files, err := reopened.ListFiles(ctx)
			if err != nil {
				t.Fatalf("ListFiles: %v", err)
			}
			if len(files) != 1 {
				t.Errorf("OpenIfExists must preserve contents; got %d files, want 1", len(files))
			}
		})

		t.Run("GenerateUniqueName", func(t *testing.T) {
			first, err := parent.CreateFolder(ctx, "unique", core.GenerateUniqueName)
			if err != nil {
				t.Fatalf("CreateFolder(unique, 1st): %v", err)
			}
			second, err := parent.CreateFolder(ctx, "unique", core.GenerateUniqueName)
			if err != nil {
				t.Fatalf("CreateFolder(unique, 2nd): %v", err)
			}
			if first.Path() == second.Path() {
				t.Errorf("both unique folders share path %q", first.Path())
			}
			if second.Name() == "unique" {
				t.Error("second folder kept the desired name; want a generated one")
			}
			// The first folder must not have been overwritten.
			if _, err := parent.OpenFolder(ctx, first.Name()); err != nil {
				t.Errorf("OpenFolder(%q): %v", first.Name(), err)
			}
		})

		t.Run("ReplaceExisting", func(t *testing.T) {
			sub, err := parent.CreateFolder(ctx, "replace-me", core.FailIfExists)
			if err != nil {
				t.Fatalf("CreateFolder: %v", err)
			}
			if _, err := sub.CreateFile(ctx, "old.txt", core.FailIfExists); err != nil {
				t.Fatalf("CreateFile(old.txt): %v", err)
			}

			replaced, err := parent.CreateFolder(ctx, "replace-me", core.ReplaceExisting)
			if err != nil {
				t.Fatalf("CreateFolder(ReplaceExisting): %v", err)
			}
			files, err := replaced.ListFiles(ctx)
			if err != nil {
				t.Fatalf("ListFiles: %v", err)
			}
			if len(files) != 0 {
				t.Errorf("replaced folder has %d files, want 0", len(files))
			}
		})
	})

	t.Run("InvalidCollisionOption", func(t *testing.T) {
		if _, err := root.CreateFolder(ctx, "whatever", core.CollisionOption(42)); !errors.Is(err, core.ErrInvalid) {
			t.Errorf("CreateFolder(invalid option) = %v, want errors.Is(err, ErrInvalid)", err)
		}
		if _, err := root.CreateFile(ctx, "whatever", core.CollisionOption(-1)); !errors.Is(err, core.ErrInvalid) {
			t.Errorf("CreateFile(invalid option) = %v, want errors.Is(err, ErrInvalid)", err)
		}
	})

	t.Run("InvalidName", func(t *testing.T) {
		for _, name := range []string{"", "a/b", ".", ".."} {
			if _, err := root.CreateFolder(ctx, name, core.FailIfExists); !errors.Is(err, core.ErrInvalid) {
				t.Errorf("CreateFolder(%q) = %v, want errors.Is(err, ErrInvalid)", name, err)
			}
		}
	})

	t.Run("CheckExists", func(t *testing.T) {
		parent, err := root.CreateFolder(ctx, "check-exists", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		if _, err := parent.CreateFile(ctx, "f.txt", core.FailIfExists); err != nil {
			t.Fatalf("CreateFile: %v", err)
		}
		if _, err := parent.CreateFolder(ctx, "d", core.FailIfExists); err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}

		tests := []struct {
			name string
			want core.ExistenceResult
		}{
			{"f.txt", core.FileExists},
			{"d", core.FolderExists},
			{"missing", core.NotFound},
		}
		for _, tt := range tests {
			got, err := parent.CheckExists(ctx, tt.name)
			if err != nil {
				t.Errorf("CheckExists(%q): %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("CheckExists(%q) = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("StaleHandle", func(t *testing.T) {
		stale, err := root.CreateFolder(ctx, "goes-away", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		if _, err := stale.CreateFile(ctx, "data.txt", core.FailIfExists); err != nil {
			t.Fatalf("CreateFile: %v", err)
		}

		// Remove the folder out-of-band, through a second handle.
		other, err := root.OpenFolder(ctx, "goes-away")
		if err != nil {
			t.Fatalf("OpenFolder: %v", err)
		}
		if err := other.Delete(ctx); err != nil {
			t.Fatalf("Delete: %v", err)
		}

		// Every operation on the stale handle must report not-exist.
		ops := []struct {
			name string
			call func() error
		}{
			{"CreateFile", func() error { _, err := stale.CreateFile(ctx, "x", core.OpenIfExists); return err }},
			{"OpenFile", func() error { _, err := stale.OpenFile(ctx, "data.txt"); return err }},
			{"ListFiles", func() error { _, err := stale.ListFiles(ctx); return err }},
			{"CreateFolder", func() error { _, err := stale.CreateFolder(ctx, "x", core.OpenIfExists); return err }},
			{"OpenFolder", func() error { _, err := stale.OpenFolder(ctx, "x"); return err }},
			{"ListFolders", func() error { _, err := stale.ListFolders(ctx); return err }},
			{"CheckExists", func() error { _, err := stale.CheckExists(ctx, "data.txt"); return err }},
			{"Delete", func() error { return stale.Delete(ctx) }},
		}
		for _, op := range ops {
			if err := op.call(); !errors.Is(err, core.ErrNotExist) {
				t.Errorf("%s on stale handle = %v, want errors.Is(err, ErrNotExist)", op.name, err)
			}
		}
	})

	t.Run("InvalidOptionBeatsStaleHandle", func(t *testing.T) {
		stale, err := root.CreateFolder(ctx, "also-goes-away", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		if err := stale.Delete(ctx); err != nil {
			t.Fatalf("Delete: %v", err)
		}

		// Argument validation happens before the existence pre-check, so a
		// bad option is reported even on a stale handle.
		if _, err := stale.CreateFile(ctx, "x", core.CollisionOption(99)); !errors.Is(err, core.ErrInvalid) {
			t.Errorf("CreateFile(stale, invalid option) = %v, want errors.Is(err, ErrInvalid)", err)
		}
	})

	t.Run("DeleteRecursive", func(t *testing.T) {
		parent, err := root.CreateFolder(ctx, "tree", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		child, err := parent.CreateFolder(ctx, "child", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder(child): %v", err)
		}
		if _, err := child.CreateFile(ctx, "leaf.txt", core.FailIfExists); err != nil {
			t.Fatalf("CreateFile(leaf.txt): %v", err)
		}

		if err := parent.Delete(ctx); err != nil {
			t.Fatalf("Delete(tree): %v", err)
		}
		if _, err := root.OpenFolder(ctx, "tree"); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("OpenFolder(tree) after delete = %v, want errors.Is(err, ErrNotExist)", err)
		}
	})
}
