package minio

import (
	"context"
	"fmt"
	"testing"

	"github.com/jmgilman/go/storage/core"
	"github.com/jmgilman/go/storage/storagetest"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupMinIOContainer starts a MinIO container and returns endpoint and cleanup function.
func setupMinIOContainer(t *testing.T) (string, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     "minioadmin",
			"MINIO_ROOT_PASSWORD": "minioadmin",
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
	}

	minioC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start MinIO container")

	endpoint, err := minioC.Endpoint(ctx, "")
	require.NoError(t, err, "failed to get container endpoint")

	cleanup := func() {
		_ = minioC.Terminate(ctx)
	}

	return endpoint, cleanup
}

// setupStorage creates a fresh FS instance against a fresh bucket.
func setupStorage(t *testing.T, endpoint string, bucket string) *FS {
	t.Helper()

	ctx := context.Background()

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err, "failed to create minio client")

	err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	require.NoError(t, err, "failed to create bucket")

	s, err := New(ctx, Config{
		Client: client,
		Bucket: bucket,
	})
	require.NoError(t, err, "failed to create storage")

	return s
}

// TestMinIO_Conformance runs the full conformance suite against a MinIO
// container, each test group on a fresh bucket.
func TestMinIO_Conformance(t *testing.T) {
	endpoint, cleanup := setupMinIOContainer(t)
	defer cleanup()

	bucketNum := 0
	storagetest.TestSuite(t, func() core.FileSystem {
		bucketNum++
		return setupStorage(t, endpoint, fmt.Sprintf("conformance-%d", bucketNum))
	})
}

// TestMinIO_EmptyFolderSurvives verifies the marker-object model: a freshly
// created folder with no contents exists and lists as empty.
func TestMinIO_EmptyFolderSurvives(t *testing.T) {
	endpoint, cleanup := setupMinIOContainer(t)
	defer cleanup()

	ctx := context.Background()
	s := setupStorage(t, endpoint, "markers")

	folder, err := s.LocalStorage().CreateFolder(ctx, "empty", core.FailIfExists)
	require.NoError(t, err)

	reopened, err := s.LocalStorage().OpenFolder(ctx, "empty")
	require.NoError(t, err)
	require.Equal(t, folder.Path(), reopened.Path())

	files, err := reopened.ListFiles(ctx)
	require.NoError(t, err)
	require.Empty(t, files)

	folders, err := reopened.ListFolders(ctx)
	require.NoError(t, err)
	require.Empty(t, folders)
}
