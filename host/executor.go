package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	sdk "github.com/simbridge-dev/simbridge-sdk"
	wazeroadapter "github.com/simbridge-dev/simbridge-sdk/infrastructure/wazero"
)

// Executor owns a wazero runtime with the simulator host's surfaces
// registered, and instantiates plugins into it.
type Executor struct {
	runtime wazero.Runtime
}

// Option configures the executor.
type Option func(*executorConfig)

type executorConfig struct {
	adapterOpts []wazeroadapter.AdapterOption
}

// WithAdapterOptions forwards options to the host function adapter.
func WithAdapterOptions(opts ...wazeroadapter.AdapterOption) Option {
	return func(c *executorConfig) {
		c.adapterOpts = append(c.adapterOpts, opts...)
	}
}

// NewExecutor creates a runtime exposing the given simulator host to the
// plugins loaded later.
func NewExecutor(ctx context.Context, simHost sdk.Host, opts ...Option) (*Executor, error) {
	var cfg executorConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	if err := wazeroadapter.Register(ctx, rt, simHost, cfg.adapterOpts...); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return &Executor{runtime: rt}, nil
}

// Close releases resources held by the executor, including every plugin
// instantiated into it.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// LoadPlugin instantiates a WASM plugin binary.
func (e *Executor) LoadPlugin(ctx context.Context, wasmBytes []byte) (*PluginInstance, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			mod.Close(ctx)
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return &PluginInstance{module: mod}, nil
}
