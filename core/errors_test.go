package core_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/storage/core"
)

// TestReexportedErrorsMatchStdlib verifies re-exported errors match stdlib.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrInvalid", core.ErrInvalid, fs.ErrInvalid},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
		{"ErrClosed", core.ErrClosed, fs.ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.coreErr, tt.stdlibErr) || !errors.Is(tt.stdlibErr, tt.coreErr) {
				t.Errorf("%s does not match stdlib: core=%v, stdlib=%v",
					tt.name, tt.coreErr, tt.stdlibErr)
			}
		})
	}
}

// TestErrRootFolder verifies the root-deletion sentinel is distinct from the
// re-exported stdlib errors and survives wrapping.
func TestErrRootFolder(t *testing.T) {
	if core.ErrRootFolder == nil {
		t.Fatal("ErrRootFolder should not be nil")
	}

	stdlib := []error{core.ErrNotExist, core.ErrExist, core.ErrInvalid, core.ErrPermission}
	for _, err := range stdlib {
		if errors.Is(core.ErrRootFolder, err) {
			t.Errorf("ErrRootFolder should not match %v", err)
		}
	}

	wrapped := &fs.PathError{Op: "delete", Path: "/local", Err: core.ErrRootFolder}
	if !errors.Is(wrapped, core.ErrRootFolder) {
		t.Error("wrapped ErrRootFolder not detected by errors.Is")
	}
}

// TestWrappedSentinelsSurviveFmtErrorf verifies the %w wrapping convention
// used by backends keeps sentinels matchable.
func TestWrappedSentinelsSurviveFmtErrorf(t *testing.T) {
	err := fmt.Errorf("create folder: %w", core.ErrExist)
	if !errors.Is(err, core.ErrExist) {
		t.Errorf("errors.Is(%v, ErrExist) = false, want true", err)
	}

	err = fmt.Errorf("%w: collision option 7", core.ErrInvalid)
	if !errors.Is(err, core.ErrInvalid) {
		t.Errorf("errors.Is(%v, ErrInvalid) = false, want true", err)
	}
}
