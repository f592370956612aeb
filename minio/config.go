package minio

import (
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Config holds MinIO storage configuration.
type Config struct {
	// Endpoint is the MinIO server URL (e.g., "localhost:9000")
	Endpoint string

	// Bucket is the S3 bucket name
	Bucket string

	// AccessKey is the access key ID for authentication
	AccessKey string

	// SecretKey is the secret access key for authentication
	SecretKey string

	// UseSSL enables HTTPS connections
	UseSSL bool

	// Client is an optional pre-configured MinIO client
	// If provided, Endpoint/AccessKey/SecretKey are ignored
	Client *minio.Client

	// LocalRoot is the key prefix of the local application-data root folder.
	// Default: "local"
	LocalRoot string

	// RoamingRoot is the key prefix of the roaming application-data root folder.
	// Default: "roaming"
	RoamingRoot string
}

// validate checks if the configuration is valid.
// Either Client OR (Endpoint + AccessKey + SecretKey) must be provided,
// and the bucket is always required.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}

	local := c.LocalRoot
	if local == "" {
		local = defaultLocalRoot
	}
	roaming := c.RoamingRoot
	if roaming == "" {
		roaming = defaultRoamingRoot
	}
	if normalizeKey(local) == normalizeKey(roaming) {
		return fmt.Errorf("local and roaming roots must differ")
	}

	if c.Client != nil {
		return nil
	}

	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required when client is not provided")
	}
	if c.AccessKey == "" {
		return fmt.Errorf("access key is required when client is not provided")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required when client is not provided")
	}

	return nil
}
