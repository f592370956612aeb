// Package storagetest provides a conformance test suite for validating
// storage backend implementations against the core.FileSystem contract.
//
// This package contains test functions that can be imported and executed by
// backend packages to verify they correctly implement the uniform folder and
// file contract: the existence pre-check on stale handles, root-folder
// protection, the four collision options, and the error vocabulary.
//
// The suite validates the interface contract, not backend-specific behavior.
// Listing order, for example, is never asserted because the contract leaves
// it backend-defined.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    storagetest.TestSuite(t, func() core.FileSystem {
//	        return mybackend.New()
//	    })
//	}
package storagetest

import (
	"testing"

	"github.com/jmgilman/go/storage/core"
)

// Config configures the test suite for a backend's characteristics.
type Config struct {
	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "TestGroup" (e.g., "Concurrency").
	SkipTests []string
}

// DefaultConfig returns the configuration used by TestSuite.
func DefaultConfig() Config {
	return Config{}
}

// TestSuite runs all conformance tests against a storage backend.
// The newFS function should return a fresh storage for each test group;
// tests create and delete items under both roots, so each invocation should
// start clean.
func TestSuite(t *testing.T, newFS func() core.FileSystem) {
	TestSuiteWithConfig(t, newFS, DefaultConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FileSystem, config Config) {
	shouldSkip := func(testName string) bool {
		for _, skip := range config.SkipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	t.Run("Roots", func(t *testing.T) {
		if shouldSkip("Roots") {
			t.Skip("Skipped by backend configuration")
			return
		}
		TestRoots(t, newFS())
	})

	t.Run("Folders", func(t *testing.T) {
		if shouldSkip("Folders") {
			t.Skip("Skipped by backend configuration")
			return
		}
		TestFolders(t, newFS())
	})

	t.Run("Files", func(t *testing.T) {
		if shouldSkip("Files") {
			t.Skip("Skipped by backend configuration")
			return
		}
		TestFiles(t, newFS())
	})

	t.Run("Concurrency", func(t *testing.T) {
		if shouldSkip("Concurrency") {
			t.Skip("Skipped by backend configuration")
			return
		}
		TestConcurrency(t, newFS())
	})
}
