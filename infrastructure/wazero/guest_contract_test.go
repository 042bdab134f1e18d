package wazero

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var wasmExportPattern = regexp.MustCompile(`(?m)^//go:wasmexport (\S+)$`)

// guestExports collects every //go:wasmexport name declared under the
// given package directories.
func guestExports(t *testing.T, dirs ...string) map[string]bool {
	t.Helper()

	exports := make(map[string]bool)
	for _, dir := range dirs {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatalf("failed to glob %s: %v", dir, err)
		}
		if len(files) == 0 {
			t.Fatalf("no Go files under %s", dir)
		}
		for _, file := range files {
			src, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}
			for _, match := range wasmExportPattern.FindAllStringSubmatch(string(src), -1) {
				exports[match[1]] = true
			}
		}
	}
	return exports
}

// TestGuestDeclaresDispatchExports pins the adapter's guest re-entry
// contract: every export callGuest targets, and the allocate pair backing
// writeToGuest, must be declared by the SDK's guest side. Renaming either
// half alone breaks live callbacks.
func TestGuestDeclaresDispatchExports(t *testing.T) {
	exports := guestExports(t, "../../guest", "../../internal/abi")

	required := []string{
		guestFlightLoopExport,
		guestCommandExport,
		guestMenuExport,
		guestDrawExport,
		guestMouseExport,
		guestKeyExport,
		guestCursorExport,
		guestWheelExport,
		"simbridge_error_callback",
		"allocate",
		"deallocate",
	}
	for _, name := range required {
		if !exports[name] {
			t.Errorf("guest side does not declare //go:wasmexport %s", name)
		}
	}
}
