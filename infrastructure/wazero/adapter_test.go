package wazero

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/simbridge-dev/simbridge-sdk/simtest"
)

func TestDefaultAdapterConfig(t *testing.T) {
	cfg := defaultAdapterConfig()

	if cfg.ModuleName != "simbridge_host" {
		t.Errorf("ModuleName = %q, want %q", cfg.ModuleName, "simbridge_host")
	}
	if cfg.MaxStringLen != DefaultMaxStringLen {
		t.Errorf("MaxStringLen = %d, want %d", cfg.MaxStringLen, DefaultMaxStringLen)
	}
	if cfg.MaxArrayLen != DefaultMaxArrayLen {
		t.Errorf("MaxArrayLen = %d, want %d", cfg.MaxArrayLen, DefaultMaxArrayLen)
	}
}

func TestAdapterOptions(t *testing.T) {
	cfg := defaultAdapterConfig()
	WithModuleName("custom_host")(&cfg)
	WithMaxStringLen(512)(&cfg)
	WithMaxArrayLen(64)(&cfg)

	if cfg.ModuleName != "custom_host" {
		t.Errorf("ModuleName = %q, want %q", cfg.ModuleName, "custom_host")
	}
	if cfg.MaxStringLen != 512 {
		t.Errorf("MaxStringLen = %d, want 512", cfg.MaxStringLen)
	}
	if cfg.MaxArrayLen != 64 {
		t.Errorf("MaxArrayLen = %d, want 64", cfg.MaxArrayLen)
	}
}

func TestPackUnpackPtrLen(t *testing.T) {
	tests := []struct {
		ptr    uint32
		length uint32
	}{
		{0, 0},
		{1, 1},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{0x12345678, 0x9ABCDEF0},
		{100, 50},
	}

	for _, tt := range tests {
		packed := packPtrLen(tt.ptr, tt.length)
		gotPtr, gotLen := unpackPtrLen(packed)

		if gotPtr != tt.ptr {
			t.Errorf("unpackPtrLen(%x): ptr = %x, want %x", packed, gotPtr, tt.ptr)
		}
		if gotLen != tt.length {
			t.Errorf("unpackPtrLen(%x): len = %x, want %x", packed, gotLen, tt.length)
		}
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	runtime := wazero.NewRuntime(ctx)
	defer runtime.Close(ctx)

	if err := Register(ctx, runtime, simtest.NewHost()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
}

func TestRegister_CustomModuleName(t *testing.T) {
	ctx := context.Background()
	runtime := wazero.NewRuntime(ctx)
	defer runtime.Close(ctx)

	err := Register(ctx, runtime, simtest.NewHost(), WithModuleName("sim_host_v2"))
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
}

func TestClampCount(t *testing.T) {
	a := &adapter{cfg: AdapterConfig{MaxArrayLen: 8}}

	if _, ok := a.clampCount(-1); ok {
		t.Error("clampCount(-1) accepted a negative count")
	}
	if _, ok := a.clampCount(9); ok {
		t.Error("clampCount(9) accepted a count above the limit")
	}
	if n, ok := a.clampCount(8); !ok || n != 8 {
		t.Errorf("clampCount(8) = %d, %t; want 8, true", n, ok)
	}
	if n, ok := a.clampCount(0); !ok || n != 0 {
		t.Errorf("clampCount(0) = %d, %t; want 0, true", n, ok)
	}
}
