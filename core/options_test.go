package core_test

import (
	"errors"
	"testing"

	"github.com/jmgilman/go/storage/core"
)

// TestCollisionOption_String verifies CollisionOption.String() returns the
// expected representations.
func TestCollisionOption_String(t *testing.T) {
	tests := []struct {
		name     string
		option   core.CollisionOption
		expected string
	}{
		{
			name:     "GenerateUniqueName",
			option:   core.GenerateUniqueName,
			expected: "generate-unique-name",
		},
		{
			name:     "ReplaceExisting",
			option:   core.ReplaceExisting,
			expected: "replace-existing",
		},
		{
			name:     "FailIfExists",
			option:   core.FailIfExists,
			expected: "fail-if-exists",
		},
		{
			name:     "OpenIfExists",
			option:   core.OpenIfExists,
			expected: "open-if-exists",
		},
		{
			name:     "OutOfRange",
			option:   core.CollisionOption(999),
			expected: "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.option.String()
			if result != tt.expected {
				t.Errorf("CollisionOption(%d).String() = %q, want %q", tt.option, result, tt.expected)
			}
		})
	}
}

// TestCollisionOption_Validate verifies only the four defined values pass.
func TestCollisionOption_Validate(t *testing.T) {
	valid := []core.CollisionOption{
		core.GenerateUniqueName,
		core.ReplaceExisting,
		core.FailIfExists,
		core.OpenIfExists,
	}
	for _, option := range valid {
		if err := option.Validate(); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", option, err)
		}
	}

	invalid := []core.CollisionOption{-1, 4, 999}
	for _, option := range invalid {
		err := option.Validate()
		if err == nil {
			t.Errorf("Validate(%d) = nil, want error", option)
			continue
		}
		if !errors.Is(err, core.ErrInvalid) {
			t.Errorf("Validate(%d) = %v, want errors.Is(err, ErrInvalid)", option, err)
		}
	}
}

// TestFileAccess_Validate verifies access mode validation.
func TestFileAccess_Validate(t *testing.T) {
	if err := core.AccessRead.Validate(); err != nil {
		t.Errorf("Validate(AccessRead) = %v, want nil", err)
	}
	if err := core.AccessReadWrite.Validate(); err != nil {
		t.Errorf("Validate(AccessReadWrite) = %v, want nil", err)
	}

	err := core.FileAccess(42).Validate()
	if !errors.Is(err, core.ErrInvalid) {
		t.Errorf("Validate(42) = %v, want errors.Is(err, ErrInvalid)", err)
	}
}

// TestExistenceResult_String verifies ExistenceResult representations.
func TestExistenceResult_String(t *testing.T) {
	tests := []struct {
		result   core.ExistenceResult
		expected string
	}{
		{core.NotFound, "not-found"},
		{core.FileExists, "file"},
		{core.FolderExists, "folder"},
		{core.ExistenceResult(999), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.result.String(); got != tt.expected {
			t.Errorf("ExistenceResult(%d).String() = %q, want %q", tt.result, got, tt.expected)
		}
	}
}

// TestBackendType_String verifies BackendType representations.
func TestBackendType_String(t *testing.T) {
	tests := []struct {
		backend  core.BackendType
		expected string
	}{
		{core.BackendUnknown, "unknown"},
		{core.BackendLocal, "local"},
		{core.BackendMemory, "memory"},
		{core.BackendRemote, "remote"},
		{core.BackendType(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.backend.String(); got != tt.expected {
			t.Errorf("BackendType(%d).String() = %q, want %q", tt.backend, got, tt.expected)
		}
	}
}

// TestCollisionOption_ZeroValue verifies the zero value is GenerateUniqueName,
// matching the enumeration order of the uniform contract.
func TestCollisionOption_ZeroValue(t *testing.T) {
	var option core.CollisionOption
	if option != core.GenerateUniqueName {
		t.Errorf("zero CollisionOption = %v, want GenerateUniqueName", option)
	}
}
