package minio

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/storage/core"
	"github.com/jmgilman/go/storage/minio/internal/errs"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigValidation tests Config.validate() with various scenarios.
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config with credentials",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "test-bucket",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
			wantErr: false,
		},
		{
			name: "valid config with client",
			config: Config{
				Client: &minio.Client{},
				Bucket: "test-bucket",
			},
			wantErr: false,
		},
		{
			name: "missing bucket",
			config: Config{
				Endpoint:  "localhost:9000",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
			wantErr: true,
			errMsg:  "bucket is required",
		},
		{
			name: "missing endpoint without client",
			config: Config{
				Bucket:    "test-bucket",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
			wantErr: true,
			errMsg:  "endpoint is required",
		},
		{
			name: "missing access key without client",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "test-bucket",
				SecretKey: "minioadmin",
			},
			wantErr: true,
			errMsg:  "access key is required",
		},
		{
			name: "equal roots",
			config: Config{
				Client:      &minio.Client{},
				Bucket:      "test-bucket",
				LocalRoot:   "data",
				RoamingRoot: "data/",
			},
			wantErr: true,
			errMsg:  "roots must differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestTranslate tests the S3 status-code translation boundary.
func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"NoSuchKey", minio.ErrorResponse{Code: "NoSuchKey"}, fs.ErrNotExist},
		{"NoSuchBucket", minio.ErrorResponse{Code: "NoSuchBucket"}, fs.ErrNotExist},
		{"AccessDenied", minio.ErrorResponse{Code: "AccessDenied"}, fs.ErrPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errs.Translate(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

// TestTranslate_PassThrough verifies unrecognized errors keep their original
// diagnostics.
func TestTranslate_PassThrough(t *testing.T) {
	original := errors.New("connection reset")
	got := errs.Translate(original)
	require.Error(t, got)
	assert.ErrorIs(t, got, original)
	assert.NotErrorIs(t, got, fs.ErrNotExist)
}

// TestNormalizeKey tests key normalization.
func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"local", "local"},
		{"/local/", "local"},
		{"a/b/c", "a/b/c"},
		{"a\\b", "a/b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeKey(tt.in), "normalizeKey(%q)", tt.in)
	}
}

// TestValidateName tests item name validation.
func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("report.txt"))

	for _, name := range []string{"", ".", "..", "a/b", "a\\b"} {
		err := validateName(name)
		assert.ErrorIs(t, err, core.ErrInvalid, "validateName(%q)", name)
	}
}
