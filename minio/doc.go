// Package minio implements the core.FileSystem storage contract over
// MinIO/S3-compatible object storage.
//
// # Folder model
//
// S3 has no real directories, so a folder is a key prefix backed by a
// zero-byte marker object at "<path>/". Markers make empty folders exist,
// which keeps the contract uniform with hierarchical backends: a freshly
// created folder lists as empty instead of not existing, and a stale folder
// handle is detectable before an operation delegates.
//
// # Error translation
//
// Raw S3 failures are identified by response codes. All matching against
// those codes is confined to the internal errs package; everything the
// backend returns satisfies errors.Is against the core sentinels or is a
// wrapped pass-through of the original MinIO error.
//
// # Streams
//
// Objects cannot be written in place. File.Open downloads the object into
// memory and a writable stream uploads the buffer back on Close, so streams
// are only suitable for objects that fit comfortably in memory.
//
// Usage:
//
//	storage, err := minio.New(ctx, minio.Config{
//	    Endpoint:  "localhost:9000",
//	    Bucket:    "appdata",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	})
//	folder, err := storage.LocalStorage().CreateFolder(ctx, "cache", core.OpenIfExists)
package minio
