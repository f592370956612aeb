// Package billy provides a go-billy-backed implementation of the
// core.FileSystem storage contract.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// implementations, providing a thin adapter layer that maps billy
// directories and files to the uniform Folder/File handle contract while
// maintaining access to the underlying billy.Filesystem for go-git
// integration.
//
// The two protected application-data roots are injected through Config
// instead of being read from process-wide state, so the adapter can be
// tested without a real platform environment:
//
//	storage, err := billy.NewLocal(billy.Config{
//	    LocalRoot:   "/home/app/.local/share/myapp",
//	    RoamingRoot: "/home/app/.config/myapp",
//	})
//	folder, err := storage.LocalStorage().CreateFolder(ctx, "cache", core.OpenIfExists)
//
// # Memory Filesystem
//
// For testing or temporary storage, use the in-memory variant:
//
//	storage, err := billy.NewMemory(billy.Config{LocalRoot: "/local", RoamingRoot: "/roaming"})
//
// # Thread Safety
//
// FS and Folder handles carry no mutable state, so concurrency safety is
// whatever the backing billy.Filesystem guarantees: osfs is safe for
// concurrent use, memfs is not. Streams are never safe for concurrent use.
package billy
