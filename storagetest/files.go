package storagetest

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jmgilman/go/storage/core"
)

// TestFiles verifies file create/open/list/delete semantics, the collision
// options, and stream behavior.
func TestFiles(t *testing.T, storage core.FileSystem) {
	ctx := context.Background()
	root := storage.RoamingStorage()

	// writeString replaces the file's contents with s.
	writeString := func(t *testing.T, file core.File, s string) {
		t.Helper()
		stream, err := file.Open(ctx, core.AccessReadWrite)
		if err != nil {
			t.Fatalf("Open(%s, rw): %v", file.Name(), err)
		}
		if _, err := stream.Write([]byte(s)); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := stream.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	// readString returns the file's contents.
	readString := func(t *testing.T, file core.File) string {
		t.Helper()
		stream, err := file.Open(ctx, core.AccessRead)
		if err != nil {
			t.Fatalf("Open(%s, ro): %v", file.Name(), err)
		}
		defer func() { _ = stream.Close() }()
		data, err := io.ReadAll(stream)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		return string(data)
	}

	t.Run("EmptyThenOne", func(t *testing.T) {
		folder, err := root.CreateFolder(ctx, "empty-then-one", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}

		files, err := folder.ListFiles(ctx)
		if err != nil {
			t.Fatalf("ListFiles(empty): %v", err)
		}
		if len(files) != 0 {
			t.Errorf("ListFiles(empty) returned %d files, want 0", len(files))
		}

		if _, err := folder.CreateFile(ctx, "only.txt", core.FailIfExists); err != nil {
			t.Fatalf("CreateFile(only.txt): %v", err)
		}
		files, err = folder.ListFiles(ctx)
		if err != nil {
			t.Fatalf("ListFiles: %v", err)
		}
		if len(files) != 1 || files[0].Name() != "only.txt" {
			t.Errorf("ListFiles = %v, want exactly [only.txt]", files)
		}
	})

	t.Run("OpenMissing", func(t *testing.T) {
		folder, err := root.CreateFolder(ctx, "open-missing", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		_, err = folder.OpenFile(ctx, "no-such-file.txt")
		if !errors.Is(err, core.ErrNotExist) {
			t.Errorf("OpenFile(missing) = %v, want errors.Is(err, ErrNotExist)", err)
		}
	})

	t.Run("CollisionOptions", func(t *testing.T) {
		folder, err := root.CreateFolder(ctx, "file-collisions", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		existing, err := folder.CreateFile(ctx, "report.txt", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFile(report.txt): %v", err)
		}
		writeString(t, existing, "original")

		t.Run("FailIfExists", func(t *testing.T) {
			_, err := folder.CreateFile(ctx, "report.txt", core.FailIfExists)
			if !errors.Is(err, core.ErrExist) {
				t.Errorf("CreateFile(report.txt, FailIfExists) = %v, want errors.Is(err, ErrExist)", err)
			}
		})

		t.Run("OpenIfExists", func(t *testing.T) {
			opened, err := folder.CreateFile(ctx, "report.txt", core.OpenIfExists)
			if err != nil {
				t.Fatalf("CreateFile(report.txt, OpenIfExists): %v", err)
			}
			if got := readString(t, opened); got != "original" {
				t.Errorf("OpenIfExists contents = %q, want %q", got, "original")
			}
		})

		t.Run("GenerateUniqueName", func(t *testing.T) {
			first, err := folder.CreateFile(ctx, "unique.txt", core.GenerateUniqueName)
			if err != nil {
				t.Fatalf("CreateFile(unique.txt, 1st): %v", err)
			}
			second, err := folder.CreateFile(ctx, "unique.txt", core.GenerateUniqueName)
			if err != nil {
				t.Fatalf("CreateFile(unique.txt, 2nd): %v", err)
			}
			if first.Path() == second.Path() {
				t.Errorf("both unique files share path %q", first.Path())
			}
			if second.Name() == "unique.txt" {
				t.Error("second file kept the desired name; want a generated one")
			}
			if !strings.HasSuffix(second.Name(), ".txt") {
				t.Errorf("generated name %q lost the extension", second.Name())
			}
		})

		t.Run("ReplaceExisting", func(t *testing.T) {
			replaced, err := folder.CreateFile(ctx, "report.txt", core.ReplaceExisting)
			if err != nil {
				t.Fatalf("CreateFile(report.txt, ReplaceExisting): %v", err)
			}
			if got := readString(t, replaced); got != "" {
				t.Errorf("replaced file contents = %q, want empty", got)
			}
		})
	})

	t.Run("StreamRoundTrip", func(t *testing.T) {
		folder, err := root.CreateFolder(ctx, "streams", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		file, err := folder.CreateFile(ctx, "data.txt", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFile: %v", err)
		}

		writeString(t, file, "hello world")
		if got := readString(t, file); got != "hello world" {
			t.Errorf("round-trip contents = %q, want %q", got, "hello world")
		}

		t.Run("Seek", func(t *testing.T) {
			stream, err := file.Open(ctx, core.AccessRead)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer func() { _ = stream.Close() }()

			if _, err := stream.Seek(6, io.SeekStart); err != nil {
				t.Fatalf("Seek(6): %v", err)
			}
			data, err := io.ReadAll(stream)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if string(data) != "world" {
				t.Errorf("read after seek = %q, want %q", data, "world")
			}
		})

		t.Run("ReadOnlyRejectsWrite", func(t *testing.T) {
			stream, err := file.Open(ctx, core.AccessRead)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer func() { _ = stream.Close() }()

			if _, err := stream.Write([]byte("nope")); err == nil {
				t.Error("Write on read-only stream succeeded, want error")
			}
		})
	})

	t.Run("Rename", func(t *testing.T) {
		folder, err := root.CreateFolder(ctx, "rename", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		file, err := folder.CreateFile(ctx, "before.txt", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFile: %v", err)
		}
		writeString(t, file, "payload")

		if err := file.Rename(ctx, "after.txt"); err != nil {
			t.Fatalf("Rename: %v", err)
		}
		if file.Name() != "after.txt" {
			t.Errorf("handle name after rename = %q, want %q", file.Name(), "after.txt")
		}
		if _, err := folder.OpenFile(ctx, "before.txt"); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("OpenFile(before.txt) = %v, want errors.Is(err, ErrNotExist)", err)
		}
		renamed, err := folder.OpenFile(ctx, "after.txt")
		if err != nil {
			t.Fatalf("OpenFile(after.txt): %v", err)
		}
		if got := readString(t, renamed); got != "payload" {
			t.Errorf("contents after rename = %q, want %q", got, "payload")
		}

		t.Run("TargetTaken", func(t *testing.T) {
			if _, err := folder.CreateFile(ctx, "taken.txt", core.FailIfExists); err != nil {
				t.Fatalf("CreateFile(taken.txt): %v", err)
			}
			if err := file.Rename(ctx, "taken.txt"); !errors.Is(err, core.ErrExist) {
				t.Errorf("Rename onto taken name = %v, want errors.Is(err, ErrExist)", err)
			}
		})
	})

	t.Run("Move", func(t *testing.T) {
		folder, err := root.CreateFolder(ctx, "move-src", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		dest, err := root.CreateFolder(ctx, "move-dst", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		file, err := folder.CreateFile(ctx, "wander.txt", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFile: %v", err)
		}
		writeString(t, file, "gone walking")

		if err := file.Move(ctx, dest.Path()+"/wander.txt"); err != nil {
			t.Fatalf("Move: %v", err)
		}
		moved, err := dest.OpenFile(ctx, "wander.txt")
		if err != nil {
			t.Fatalf("OpenFile in destination: %v", err)
		}
		if got := readString(t, moved); got != "gone walking" {
			t.Errorf("contents after move = %q, want %q", got, "gone walking")
		}
		if _, err := folder.OpenFile(ctx, "wander.txt"); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("OpenFile in source = %v, want errors.Is(err, ErrNotExist)", err)
		}
	})

	t.Run("DeleteAndStaleHandle", func(t *testing.T) {
		folder, err := root.CreateFolder(ctx, "file-delete", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		file, err := folder.CreateFile(ctx, "doomed.txt", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFile: %v", err)
		}

		if err := file.Delete(ctx); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := file.Open(ctx, core.AccessRead); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("Open on deleted file = %v, want errors.Is(err, ErrNotExist)", err)
		}
		if err := file.Delete(ctx); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("second Delete = %v, want errors.Is(err, ErrNotExist)", err)
		}
	})

	t.Run("CopyFolderAcrossRoots", func(t *testing.T) {
		src, err := root.CreateFolder(ctx, "copy-src", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		nested, err := src.CreateFolder(ctx, "nested", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder(nested): %v", err)
		}
		file, err := nested.CreateFile(ctx, "deep.txt", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFile: %v", err)
		}
		writeString(t, file, "copied")

		dst, err := storage.LocalStorage().CreateFolder(ctx, "copy-dst", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder(copy-dst): %v", err)
		}
		if err := core.CopyFolder(ctx, src, dst); err != nil {
			t.Fatalf("CopyFolder: %v", err)
		}

		copiedFolder, err := dst.OpenFolder(ctx, "nested")
		if err != nil {
			t.Fatalf("OpenFolder(nested) in destination: %v", err)
		}
		copied, err := copiedFolder.OpenFile(ctx, "deep.txt")
		if err != nil {
			t.Fatalf("OpenFile(deep.txt) in destination: %v", err)
		}
		if got := readString(t, copied); got != "copied" {
			t.Errorf("copied contents = %q, want %q", got, "copied")
		}
	})
}
