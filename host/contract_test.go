package host

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGuestDeclaresLifecycleExports pins the lifecycle contract between
// PluginInstance and the SDK's guest side: every export the instance
// calls must be declared under guest/. Renaming either half alone leaves
// loaded plugins undrivable.
func TestGuestDeclaresLifecycleExports(t *testing.T) {
	pattern := regexp.MustCompile(`(?m)^//go:wasmexport (\S+)$`)

	files, err := filepath.Glob(filepath.Join("..", "guest", "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "guest package should contain Go files")

	exports := make(map[string]bool)
	for _, file := range files {
		src, err := os.ReadFile(file)
		require.NoError(t, err)
		for _, match := range pattern.FindAllStringSubmatch(string(src), -1) {
			exports[match[1]] = true
		}
	}

	for _, name := range []string{
		guestStart,
		guestEnable,
		guestDisable,
		guestStop,
		guestReceiveMessage,
		guestConfigure,
		guestDescribe,
	} {
		assert.True(t, exports[name], "guest side does not declare //go:wasmexport %s", name)
	}
}
