package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wazeroadapter "github.com/simbridge-dev/simbridge-sdk/infrastructure/wazero"
	"github.com/simbridge-dev/simbridge-sdk/simtest"
)

func TestNewExecutor(t *testing.T) {
	ctx := context.Background()

	exec, err := NewExecutor(ctx, simtest.NewHost())
	require.NoError(t, err)
	require.NotNil(t, exec)

	assert.NoError(t, exec.Close(ctx))
}

func TestNewExecutor_WithAdapterOptions(t *testing.T) {
	ctx := context.Background()

	exec, err := NewExecutor(ctx, simtest.NewHost(),
		WithAdapterOptions(wazeroadapter.WithModuleName("custom_host")))
	require.NoError(t, err)
	defer exec.Close(ctx)
}

func TestLoadPlugin_InvalidBinary(t *testing.T) {
	ctx := context.Background()

	exec, err := NewExecutor(ctx, simtest.NewHost())
	require.NoError(t, err)
	defer exec.Close(ctx)

	_, err = exec.LoadPlugin(ctx, []byte("not a wasm module"))
	assert.Error(t, err)
}
