package wazero

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tetratelabs/wazero/api"
)

func (a *adapter) getMyID(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeI32(a.host.MyID())
}

func (a *adapter) countPlugins(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeI32(a.host.CountPlugins())
}

func (a *adapter) getNthPlugin(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeI32(a.host.NthPlugin(api.DecodeI32(stack[0])))
}

func (a *adapter) findPluginByPath(_ context.Context, mod api.Module, stack []uint64) {
	path, ok := readString(mod, stack[0], a.cfg.MaxStringLen)
	if !ok {
		stack[0] = api.EncodeI32(-1)
		return
	}
	stack[0] = api.EncodeI32(a.host.FindPluginByPath(path))
}

func (a *adapter) findPluginBySignature(_ context.Context, mod api.Module, stack []uint64) {
	signature, ok := readString(mod, stack[0], a.cfg.MaxStringLen)
	if !ok {
		stack[0] = api.EncodeI32(-1)
		return
	}
	stack[0] = api.EncodeI32(a.host.FindPluginBySignature(signature))
}

func (a *adapter) getPluginInfo(ctx context.Context, mod api.Module, stack []uint64) {
	info := a.host.PluginInfo(api.DecodeI32(stack[0]))
	payload, err := json.Marshal(info)
	if err != nil {
		slog.ErrorContext(ctx, "wazero: failed to marshal plugin info", "error", err)
		stack[0] = 0
		return
	}
	stack[0] = writeToGuest(ctx, mod, payload)
}

func (a *adapter) isPluginEnabled(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = boolToRaw(a.host.IsPluginEnabled(api.DecodeI32(stack[0])))
}

func (a *adapter) sendMessage(_ context.Context, _ api.Module, stack []uint64) {
	a.host.SendMessage(
		api.DecodeI32(stack[0]),
		stack[1] != 0,
		api.DecodeI32(stack[2]),
		uintptr(stack[3]),
	)
}

func (a *adapter) debugString(_ context.Context, mod api.Module, stack []uint64) {
	message, ok := readString(mod, stack[0], a.cfg.MaxStringLen)
	if !ok {
		return
	}
	a.host.DebugString(message)
}

func (a *adapter) speakString(_ context.Context, mod api.Module, stack []uint64) {
	message, ok := readString(mod, stack[0], a.cfg.MaxStringLen)
	if !ok {
		return
	}
	a.host.SpeakString(message)
}

// setErrorCallback routes host error reports into the guest's error export.
// The host keeps the callback for its whole life, matching the install-once
// contract on the guest side.
func (a *adapter) setErrorCallback(_ context.Context, mod api.Module, _ []uint64) {
	a.host.SetErrorCallback(func(message string) {
		// Reports fire long after installation; use a fresh context.
		packed := writeToGuest(context.Background(), mod, []byte(message))
		if packed == 0 {
			return
		}
		callGuest(mod, "simbridge_error_callback", packed)
	})
}
