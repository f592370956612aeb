// Package core provides the foundational interfaces and types for a
// multi-backend application storage abstraction.
//
// This package defines the contracts that storage backends must implement,
// enabling applications to perform basic file I/O without depending on any
// one backend's native storage API. The same code works against a local
// disk, an in-memory store, or remote object storage.
//
// # Design Philosophy
//
// The core package follows these principles:
//
//   - Zero dependencies: Only uses the Go standard library
//   - Handle-based: Operations hang off Folder and File handles rather than
//     free-standing path functions, mirroring how application storage APIs
//     hand out folder objects
//   - Stdlib error vocabulary: Failures satisfy errors.Is against the io/fs
//     sentinels (ErrNotExist, ErrExist, ErrInvalid, ...) regardless of backend
//
// # Contract
//
// FileSystem is the entry point. It exposes two protected application-data
// roots (local and roaming) and resolves arbitrary backend paths:
//
//   - Folder: create/open/list files and subfolders, recursive delete
//   - File: open a Stream, delete, rename, move
//
// Every Folder and File operation re-verifies that the handle's recorded
// path still exists before delegating to the backend, so stale handles fail
// with ErrNotExist instead of a backend-specific surprise.
//
// # Usage Example
//
//	import "github.com/jmgilman/go/storage/core"
//
//	func SaveReport(ctx context.Context, storage core.FileSystem, data []byte) error {
//	    folder, err := storage.LocalStorage().CreateFolder(ctx, "reports", core.OpenIfExists)
//	    if err != nil {
//	        return err
//	    }
//	    file, err := folder.CreateFile(ctx, "latest.txt", core.ReplaceExisting)
//	    if err != nil {
//	        return err
//	    }
//	    s, err := file.Open(ctx, core.AccessReadWrite)
//	    if err != nil {
//	        return err
//	    }
//	    defer s.Close()
//	    _, err = s.Write(data)
//	    return err
//	}
package core
