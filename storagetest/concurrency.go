package storagetest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jmgilman/go/storage/core"
	"golang.org/x/sync/errgroup"
)

// TestConcurrency verifies that concurrent operations against the same
// folder handle do not interfere with each other. The contract adds no
// locking of its own; these tests only use distinct names, so they must
// succeed on every backend.
func TestConcurrency(t *testing.T, storage core.FileSystem) {
	ctx := context.Background()
	root := storage.LocalStorage()

	t.Run("ParallelCreates", func(t *testing.T) {
		folder, err := root.CreateFolder(ctx, "parallel-creates", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}

		const workers = 8
		eg, egCtx := errgroup.WithContext(ctx)
		for i := 0; i < workers; i++ {
			eg.Go(func() error {
				_, err := folder.CreateFile(egCtx, fmt.Sprintf("worker-%d.txt", i), core.FailIfExists)
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatalf("parallel creates: %v", err)
		}

		files, err := folder.ListFiles(ctx)
		if err != nil {
			t.Fatalf("ListFiles: %v", err)
		}
		if len(files) != workers {
			t.Errorf("ListFiles returned %d files, want %d", len(files), workers)
		}
	})

	t.Run("ParallelReads", func(t *testing.T) {
		folder, err := root.CreateFolder(ctx, "parallel-reads", core.FailIfExists)
		if err != nil {
			t.Fatalf("CreateFolder: %v", err)
		}
		if _, err := folder.CreateFile(ctx, "shared.txt", core.FailIfExists); err != nil {
			t.Fatalf("CreateFile: %v", err)
		}

		eg, egCtx := errgroup.WithContext(ctx)
		for i := 0; i < 8; i++ {
			eg.Go(func() error {
				result, err := folder.CheckExists(egCtx, "shared.txt")
				if err != nil {
					return err
				}
				if result != core.FileExists {
					return errors.New("shared.txt not visible to concurrent reader")
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatalf("parallel reads: %v", err)
		}
	})
}
