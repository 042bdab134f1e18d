package wazero

import (
	"context"
	"log/slog"

	"github.com/tetratelabs/wazero/api"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// Guest dispatch exports. A plugin compiled against the SDK's guest side
// exports one fixed function per callback kind; every closure the adapter
// hands to the host re-enters the guest through one of these.
const (
	guestFlightLoopExport = "simbridge_flight_loop"
	guestCommandExport    = "simbridge_command_handler"
	guestMenuExport       = "simbridge_menu_handler"
	guestDrawExport       = "simbridge_draw_window"
	guestMouseExport      = "simbridge_mouse_click"
	guestKeyExport        = "simbridge_handle_key"
	guestCursorExport     = "simbridge_handle_cursor"
	guestWheelExport      = "simbridge_mouse_wheel"
)

// callGuest invokes a guest dispatch export. Callbacks fire long after the
// registering call returned, so they run under a fresh context.
func callGuest(mod api.Module, name string, params ...uint64) ([]uint64, bool) {
	fn := mod.ExportedFunction(name)
	if fn == nil {
		slog.Error("wazero: guest module missing export", "export", name)
		return nil, false
	}
	results, err := fn.Call(context.Background(), params...)
	if err != nil {
		slog.Error("wazero: guest callback failed", "export", name, "error", err)
		return nil, false
	}
	return results, true
}

// --- flight loops ---

func (a *adapter) createFlightLoop(_ context.Context, mod api.Module, stack []uint64) {
	phase := api.DecodeI32(stack[0])
	token := entities.Token(stack[1])
	fn := func(sinceCall, sinceLoop float32, counter int32, token entities.Token) float32 {
		results, ok := callGuest(mod, guestFlightLoopExport,
			api.EncodeF32(sinceCall), api.EncodeF32(sinceLoop), api.EncodeI32(counter), uint64(token))
		if !ok {
			return 0
		}
		return api.DecodeF32(results[0])
	}
	stack[0] = uint64(a.host.CreateFlightLoop(phase, fn, token))
}

func (a *adapter) destroyFlightLoop(_ context.Context, _ api.Module, stack []uint64) {
	a.host.DestroyFlightLoop(entities.RawHandle(stack[0]))
}

func (a *adapter) scheduleFlightLoop(_ context.Context, _ api.Module, stack []uint64) {
	a.host.ScheduleFlightLoop(entities.RawHandle(stack[0]), api.DecodeF32(stack[1]), stack[2] != 0)
}

func (a *adapter) elapsedTime(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeF32(a.host.ElapsedTime())
}

func (a *adapter) cycleNumber(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeI32(a.host.CycleNumber())
}

// --- windows ---

func (a *adapter) createWindow(_ context.Context, mod api.Module, stack []uint64) {
	req := ports.CreateWindowRequest{
		Left:    api.DecodeI32(stack[0]),
		Top:     api.DecodeI32(stack[1]),
		Right:   api.DecodeI32(stack[2]),
		Bottom:  api.DecodeI32(stack[3]),
		Visible: stack[4] != 0,
		Token:   entities.Token(stack[5]),
		Callbacks: ports.WindowCallbacks{
			Draw: func(id entities.RawHandle, token entities.Token) {
				callGuest(mod, guestDrawExport, uint64(id), uint64(token))
			},
			MouseClick: func(id entities.RawHandle, x, y, status int32, token entities.Token) int32 {
				results, ok := callGuest(mod, guestMouseExport,
					uint64(id), api.EncodeI32(x), api.EncodeI32(y), api.EncodeI32(status), uint64(token))
				if !ok {
					return entities.Propagate.Raw()
				}
				return api.DecodeI32(results[0])
			},
			Key: func(id entities.RawHandle, key byte, flags int32, virtualKey byte, token entities.Token, losingFocus int32) {
				callGuest(mod, guestKeyExport,
					uint64(id), api.EncodeI32(int32(key)), api.EncodeI32(flags),
					api.EncodeI32(int32(virtualKey)), uint64(token), api.EncodeI32(losingFocus))
			},
			Cursor: func(id entities.RawHandle, x, y int32, token entities.Token) int32 {
				results, ok := callGuest(mod, guestCursorExport,
					uint64(id), api.EncodeI32(x), api.EncodeI32(y), uint64(token))
				if !ok {
					return int32(entities.CursorDefault)
				}
				return api.DecodeI32(results[0])
			},
			Wheel: func(id entities.RawHandle, x, y, wheel, clicks int32, token entities.Token) int32 {
				results, ok := callGuest(mod, guestWheelExport,
					uint64(id), api.EncodeI32(x), api.EncodeI32(y),
					api.EncodeI32(wheel), api.EncodeI32(clicks), uint64(token))
				if !ok {
					return entities.Propagate.Raw()
				}
				return api.DecodeI32(results[0])
			},
		},
	}
	stack[0] = uint64(a.host.CreateWindow(req))
}

func (a *adapter) destroyWindow(_ context.Context, _ api.Module, stack []uint64) {
	a.host.DestroyWindow(entities.RawHandle(stack[0]))
}

func (a *adapter) setWindowVisible(_ context.Context, _ api.Module, stack []uint64) {
	a.host.SetWindowVisible(entities.RawHandle(stack[0]), stack[1] != 0)
}

func (a *adapter) isWindowVisible(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = boolToRaw(a.host.IsWindowVisible(entities.RawHandle(stack[0])))
}

func (a *adapter) setWindowTitle(_ context.Context, mod api.Module, stack []uint64) {
	title, ok := readString(mod, stack[1], a.cfg.MaxStringLen)
	if !ok {
		return
	}
	a.host.SetWindowTitle(entities.RawHandle(stack[0]), title)
}

func (a *adapter) takeKeyboardFocus(_ context.Context, _ api.Module, stack []uint64) {
	a.host.TakeKeyboardFocus(entities.RawHandle(stack[0]))
}

func (a *adapter) hasKeyboardFocus(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = boolToRaw(a.host.HasKeyboardFocus(entities.RawHandle(stack[0])))
}

// --- commands ---

func (a *adapter) findCommand(_ context.Context, mod api.Module, stack []uint64) {
	name, ok := readString(mod, stack[0], a.cfg.MaxStringLen)
	if !ok {
		stack[0] = 0
		return
	}
	stack[0] = uint64(a.host.FindCommand(name))
}

func (a *adapter) createCommand(_ context.Context, mod api.Module, stack []uint64) {
	name, ok := readString(mod, stack[0], a.cfg.MaxStringLen)
	if !ok {
		stack[0] = 0
		return
	}
	description, ok := readString(mod, stack[1], a.cfg.MaxStringLen)
	if !ok {
		stack[0] = 0
		return
	}
	stack[0] = uint64(a.host.CreateCommand(name, description))
}

func (a *adapter) registerCommandHandler(_ context.Context, mod api.Module, stack []uint64) {
	ref := entities.RawHandle(stack[0])
	before := api.DecodeI32(stack[1])
	token := entities.Token(stack[2])

	fn := func(ref entities.RawHandle, phase int32, token entities.Token) int32 {
		results, ok := callGuest(mod, guestCommandExport,
			uint64(ref), api.EncodeI32(phase), uint64(token))
		if !ok {
			return 1 // let the command continue
		}
		return api.DecodeI32(results[0])
	}

	// Hosts match unregistration on the exact registration tuple, so the
	// closure is kept by token for the later unregister call.
	a.mu.Lock()
	a.commandFns[token] = fn
	a.mu.Unlock()
	a.host.RegisterCommandHandler(ref, fn, before, token)
}

func (a *adapter) unregisterCommandHandler(_ context.Context, _ api.Module, stack []uint64) {
	ref := entities.RawHandle(stack[0])
	before := api.DecodeI32(stack[1])
	token := entities.Token(stack[2])

	a.mu.Lock()
	fn, ok := a.commandFns[token]
	delete(a.commandFns, token)
	a.mu.Unlock()
	if !ok {
		slog.Warn("wazero: unregister for unknown command token", "token", uint64(token))
		return
	}
	a.host.UnregisterCommandHandler(ref, fn, before, token)
}

func (a *adapter) commandOnce(_ context.Context, _ api.Module, stack []uint64) {
	a.host.CommandOnce(entities.RawHandle(stack[0]))
}

func (a *adapter) commandBegin(_ context.Context, _ api.Module, stack []uint64) {
	a.host.CommandBegin(entities.RawHandle(stack[0]))
}

func (a *adapter) commandEnd(_ context.Context, _ api.Module, stack []uint64) {
	a.host.CommandEnd(entities.RawHandle(stack[0]))
}

// --- menus ---

func (a *adapter) pluginsMenu(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = uint64(a.host.PluginsMenu())
}

func (a *adapter) createMenu(_ context.Context, mod api.Module, stack []uint64) {
	name, ok := readString(mod, stack[0], a.cfg.MaxStringLen)
	if !ok {
		stack[0] = 0
		return
	}
	parent := entities.RawHandle(stack[1])
	parentItem := api.DecodeI32(stack[2])
	token := entities.Token(stack[3])

	fn := func(menu entities.RawHandle, item int32, token entities.Token) {
		callGuest(mod, guestMenuExport, uint64(menu), api.EncodeI32(item), uint64(token))
	}
	stack[0] = uint64(a.host.CreateMenu(name, parent, parentItem, fn, token))
}

func (a *adapter) destroyMenu(_ context.Context, _ api.Module, stack []uint64) {
	a.host.DestroyMenu(entities.RawHandle(stack[0]))
}

func (a *adapter) appendMenuItem(_ context.Context, mod api.Module, stack []uint64) {
	name, ok := readString(mod, stack[1], a.cfg.MaxStringLen)
	if !ok {
		stack[0] = api.EncodeI32(-1)
		return
	}
	stack[0] = api.EncodeI32(a.host.AppendMenuItem(
		entities.RawHandle(stack[0]), name, api.DecodeI32(stack[2])))
}

func (a *adapter) appendMenuSeparator(_ context.Context, _ api.Module, stack []uint64) {
	a.host.AppendMenuSeparator(entities.RawHandle(stack[0]))
}

func (a *adapter) checkMenuItem(_ context.Context, _ api.Module, stack []uint64) {
	a.host.CheckMenuItem(entities.RawHandle(stack[0]), api.DecodeI32(stack[1]), stack[2] != 0)
}

func (a *adapter) clearAllMenuItems(_ context.Context, _ api.Module, stack []uint64) {
	a.host.ClearAllMenuItems(entities.RawHandle(stack[0]))
}
