package core

import (
	"context"
	"fmt"
	"io"
)

// CopyFolder recursively copies the contents of src into dst, which may
// belong to a different backend. Colliding file names in dst are replaced;
// colliding subfolder names are merged.
//
// Example:
//
//	mem, _ := billy.NewMemory(billy.Config{LocalRoot: "/local", RoamingRoot: "/roaming"})
//	err := core.CopyFolder(ctx, disk.LocalStorage(), mem.LocalStorage())
func CopyFolder(ctx context.Context, src, dst Folder) error {
	files, err := src.ListFiles(ctx)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := CopyFile(ctx, f, dst); err != nil {
			return err
		}
	}

	folders, err := src.ListFolders(ctx)
	if err != nil {
		return err
	}
	for _, sub := range folders {
		dstSub, err := dst.CreateFolder(ctx, sub.Name(), OpenIfExists)
		if err != nil {
			return err
		}
		if err := CopyFolder(ctx, sub, dstSub); err != nil {
			return err
		}
	}
	return nil
}

// CopyFile copies src into dst under the same name, replacing any existing
// file with that name.
func CopyFile(ctx context.Context, src File, dst Folder) error {
	in, err := src.Open(ctx, AccessRead)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	target, err := dst.CreateFile(ctx, src.Name(), ReplaceExisting)
	if err != nil {
		return err
	}
	out, err := target.Open(ctx, AccessReadWrite)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", src.Path(), err)
	}
	return out.Close()
}
