//go:build wasip1

package guest

import (
	"encoding/json"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/internal/abi"
	"github.com/simbridge-dev/simbridge-sdk/plugin"
)

// theRunner drives the lifecycle exports. Set once by Run.
var theRunner *plugin.Runner

// Run installs the runner behind the simbridge_plugin_* exports. Call it
// from the plugin's main function; the host drives everything after
// instantiation. Build with:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o plugin.wasm .
func Run(runner *plugin.Runner) {
	theRunner = runner
}

// --- lifecycle exports ---

//go:wasmexport simbridge_plugin_start
func pluginStart() int32 {
	if theRunner == nil {
		return 0
	}
	return theRunner.Start()
}

//go:wasmexport simbridge_plugin_enable
func pluginEnable() int32 {
	if theRunner == nil {
		return 0
	}
	return theRunner.Enable()
}

//go:wasmexport simbridge_plugin_disable
func pluginDisable() {
	if theRunner != nil {
		theRunner.Disable()
	}
}

//go:wasmexport simbridge_plugin_stop
func pluginStop() {
	if theRunner != nil {
		theRunner.Stop()
	}
	abi.ReleaseAll()
}

//go:wasmexport simbridge_plugin_receive_message
func pluginReceiveMessage(sender, code int32, param uint64) {
	if theRunner != nil {
		theRunner.ReceiveMessage(sender, code, uintptr(param))
	}
}

//go:wasmexport simbridge_plugin_configure
func pluginConfigure(packed uint64) int32 {
	if theRunner == nil {
		return 0
	}
	raw := abi.BytesFromPtr(packed)
	abi.Free(packed)
	return theRunner.Configure(raw)
}

//go:wasmexport simbridge_plugin_describe
func pluginDescribe() uint64 {
	if theRunner == nil {
		return 0
	}
	payload, err := json.Marshal(theRunner.Descriptor())
	if err != nil {
		return 0
	}
	return abi.PtrFromBytes(payload)
}

// --- callback dispatch exports ---
//
// The host re-enters the guest through these with the correlation token
// from registration. Unknown tokens fall back the way the native
// trampolines do: deactivate the loop, let commands and events propagate,
// show the default cursor.

//go:wasmexport simbridge_flight_loop
func dispatchFlightLoop(sinceCall, sinceLoop float32, counter int32, token uint64) float32 {
	fn, ok := theBridge.flightLoopFns[entities.Token(token)]
	if !ok {
		return 0
	}
	return fn(sinceCall, sinceLoop, counter, entities.Token(token))
}

//go:wasmexport simbridge_command_handler
func dispatchCommand(ref uint64, phase int32, token uint64) int32 {
	fn, ok := theBridge.commandFns[entities.Token(token)]
	if !ok {
		return 1
	}
	return fn(entities.RawHandle(ref), phase, entities.Token(token))
}

//go:wasmexport simbridge_menu_handler
func dispatchMenu(menu uint64, item int32, token uint64) {
	if fn, ok := theBridge.menuFns[entities.Token(token)]; ok {
		fn(entities.RawHandle(menu), item, entities.Token(token))
	}
}

//go:wasmexport simbridge_draw_window
func dispatchDraw(id, token uint64) {
	if cbs, ok := theBridge.windowCbs[entities.Token(token)]; ok && cbs.Draw != nil {
		cbs.Draw(entities.RawHandle(id), entities.Token(token))
	}
}

//go:wasmexport simbridge_mouse_click
func dispatchMouseClick(id uint64, x, y, status int32, token uint64) int32 {
	cbs, ok := theBridge.windowCbs[entities.Token(token)]
	if !ok || cbs.MouseClick == nil {
		return entities.Propagate.Raw()
	}
	return cbs.MouseClick(entities.RawHandle(id), x, y, status, entities.Token(token))
}

//go:wasmexport simbridge_handle_key
func dispatchKey(id uint64, key, flags, virtualKey int32, token uint64, losingFocus int32) {
	cbs, ok := theBridge.windowCbs[entities.Token(token)]
	if !ok || cbs.Key == nil {
		return
	}
	cbs.Key(entities.RawHandle(id), byte(key), flags, byte(virtualKey),
		entities.Token(token), losingFocus)
}

//go:wasmexport simbridge_handle_cursor
func dispatchCursor(id uint64, x, y int32, token uint64) int32 {
	cbs, ok := theBridge.windowCbs[entities.Token(token)]
	if !ok || cbs.Cursor == nil {
		return int32(entities.CursorDefault)
	}
	return cbs.Cursor(entities.RawHandle(id), x, y, entities.Token(token))
}

//go:wasmexport simbridge_mouse_wheel
func dispatchWheel(id uint64, x, y, wheel, clicks int32, token uint64) int32 {
	cbs, ok := theBridge.windowCbs[entities.Token(token)]
	if !ok || cbs.Wheel == nil {
		return entities.Propagate.Raw()
	}
	return cbs.Wheel(entities.RawHandle(id), x, y, wheel, clicks, entities.Token(token))
}

//go:wasmexport simbridge_error_callback
func dispatchError(packed uint64) {
	message := abi.BytesFromPtr(packed)
	abi.Free(packed)
	if theBridge.errorFn != nil {
		theBridge.errorFn(string(message))
	}
}
