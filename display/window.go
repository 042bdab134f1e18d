// Package display creates host windows and routes their input events to
// typed handlers.
package display

import (
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
	"github.com/simbridge-dev/simbridge-sdk/internal/refcon"
)

var validate = validator.New()

// EventHandler receives a window's draw and input events. Handlers run on
// the host's callback thread; they must not block.
type EventHandler interface {
	// Draw is called every frame the window is visible.
	Draw(w *Window)

	// MouseClick reports one stage of a button gesture. Returning Consume
	// keeps the event from windows underneath.
	MouseClick(w *Window, pos entities.Coord, status entities.MouseStatus) entities.EventState

	// HandleKey reports a keystroke while the window has focus, or focus
	// loss with losingFocus set.
	HandleKey(w *Window, key byte, virtualKey entities.VirtualKey, flags entities.KeyFlags, losingFocus bool)

	// Cursor selects the cursor to show while the pointer is over the
	// window.
	Cursor(w *Window, pos entities.Coord) entities.CursorStatus

	// Wheel reports scroll input over the window. Returning Consume keeps
	// the event from windows underneath.
	Wheel(w *Window, pos entities.Coord, axis entities.WheelAxis, clicks int32) entities.EventState
}

// DefaultBehavior implements every EventHandler method as its host default.
// Embed it to implement only the events a window cares about.
type DefaultBehavior struct{}

func (DefaultBehavior) Draw(*Window) {}

func (DefaultBehavior) MouseClick(*Window, entities.Coord, entities.MouseStatus) entities.EventState {
	return entities.Propagate
}

func (DefaultBehavior) HandleKey(*Window, byte, entities.VirtualKey, entities.KeyFlags, bool) {}

func (DefaultBehavior) Cursor(*Window, entities.Coord) entities.CursorStatus {
	return entities.CursorDefault
}

func (DefaultBehavior) Wheel(*Window, entities.Coord, entities.WheelAxis, int32) entities.EventState {
	return entities.Propagate
}

// windows maps live correlation tokens to window records.
var windows = refcon.NewTable()

type windowRecord struct {
	window  *Window
	handler EventHandler
}

// Options configures a new window.
type Options struct {
	// Geometry is the window's initial bounds in drawing coordinates.
	Geometry entities.Rect
	// Title is the window's initial title. Empty leaves the host default.
	Title string
	// Visible shows the window immediately.
	Visible bool
}

type createParams struct {
	Left   int32 `validate:"ltfield=Right"`
	Right  int32
	Bottom int32 `validate:"ltfield=Top"`
	Top    int32
}

// Window is a live host window. Close destroys it.
type Window struct {
	host  ports.Windowing
	id    entities.WindowID
	token entities.Token
}

// CreateWindow creates a window with the given options and attaches
// handler to its event stream.
func CreateWindow(host ports.Windowing, opts Options, handler EventHandler) (*Window, error) {
	params := createParams{
		Left:   opts.Geometry.Left,
		Right:  opts.Geometry.Right,
		Bottom: opts.Geometry.Bottom,
		Top:    opts.Geometry.Top,
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}
	if strings.ContainsRune(opts.Title, 0) {
		return nil, &errors.NameEncodingError{Field: "window title"}
	}

	rec := &windowRecord{handler: handler}
	token := windows.Put(rec)
	raw := host.CreateWindow(ports.CreateWindowRequest{
		Left:    opts.Geometry.Left,
		Top:     opts.Geometry.Top,
		Right:   opts.Geometry.Right,
		Bottom:  opts.Geometry.Bottom,
		Visible: opts.Visible,
		Callbacks: ports.WindowCallbacks{
			Draw:       dispatchDraw,
			MouseClick: dispatchMouseClick,
			Key:        dispatchKey,
			Cursor:     dispatchCursor,
			Wheel:      dispatchWheel,
		},
		Token: token,
	})
	id, err := entities.WrapWindowID(raw)
	if err != nil {
		windows.Release(token)
		return nil, err
	}

	w := &Window{host: host, id: id, token: token}
	rec.window = w
	if opts.Title != "" {
		host.SetWindowTitle(raw, opts.Title)
	}
	return w, nil
}

// ID returns the wrapped window id.
func (w *Window) ID() entities.WindowID { return w.id }

// SetVisible shows or hides the window.
func (w *Window) SetVisible(visible bool) { w.host.SetWindowVisible(w.id.Raw(), visible) }

// IsVisible reports whether the window is currently shown.
func (w *Window) IsVisible() bool { return w.host.IsWindowVisible(w.id.Raw()) }

// SetTitle sets the window's title text.
func (w *Window) SetTitle(title string) error {
	if strings.ContainsRune(title, 0) {
		return &errors.NameEncodingError{Field: "window title"}
	}
	w.host.SetWindowTitle(w.id.Raw(), title)
	return nil
}

// TakeKeyboardFocus routes keystrokes to this window.
func (w *Window) TakeKeyboardFocus() { w.host.TakeKeyboardFocus(w.id.Raw()) }

// ReleaseKeyboardFocus returns keyboard focus to the host.
func (w *Window) ReleaseKeyboardFocus() { w.host.TakeKeyboardFocus(0) }

// HasKeyboardFocus reports whether this window currently has focus.
func (w *Window) HasKeyboardFocus() bool { return w.host.HasKeyboardFocus(w.id.Raw()) }

// Close destroys the window and releases its token. The first call tears
// down; later calls are no-ops. Calling Close from inside one of the
// window's own event callbacks is legal.
func (w *Window) Close() {
	if w.token == 0 {
		return
	}
	w.host.DestroyWindow(w.id.Raw())
	windows.Release(w.token)
	w.token = 0
}

func lookupWindow(token entities.Token) (*windowRecord, bool) {
	record, ok := windows.Get(token)
	if !ok {
		slog.Warn("window callback with unknown token", "token", uint64(token))
		return nil, false
	}
	return record.(*windowRecord), true
}

// The dispatch functions below are the fixed trampolines shared by every
// window. Each one recovers handler panics so they never unwind into the
// host, and each returns the host's most conservative sentinel on any
// failure. The record must not be touched after handler dispatch.

func dispatchDraw(_ entities.RawHandle, token entities.Token) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("window draw handler panicked", "token", uint64(token), "panic", r)
		}
	}()
	rec, ok := lookupWindow(token)
	if !ok {
		return
	}
	rec.handler.Draw(rec.window)
}

func dispatchMouseClick(_ entities.RawHandle, x, y, status int32, token entities.Token) (out int32) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("window mouse handler panicked", "token", uint64(token), "panic", r)
			out = entities.Propagate.Raw()
		}
	}()
	rec, ok := lookupWindow(token)
	if !ok {
		return entities.Propagate.Raw()
	}
	decoded, err := entities.MouseStatusFromRaw(status)
	if err != nil {
		slog.Error("window mouse event with undecodable status", "error", err)
		return entities.Propagate.Raw()
	}
	return rec.handler.MouseClick(rec.window, entities.Coord{X: x, Y: y}, decoded).Raw()
}

func dispatchKey(_ entities.RawHandle, key byte, flags int32, virtualKey byte, token entities.Token, losingFocus int32) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("window key handler panicked", "token", uint64(token), "panic", r)
		}
	}()
	rec, ok := lookupWindow(token)
	if !ok {
		return
	}
	vk, err := entities.VirtualKeyFromRaw(virtualKey)
	if err != nil {
		slog.Error("window key event with undecodable virtual key", "error", err)
		return
	}
	rec.handler.HandleKey(rec.window, key, vk, entities.KeyFlags(flags), losingFocus != 0)
}

func dispatchCursor(_ entities.RawHandle, x, y int32, token entities.Token) (out int32) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("window cursor handler panicked", "token", uint64(token), "panic", r)
			out = int32(entities.CursorDefault)
		}
	}()
	rec, ok := lookupWindow(token)
	if !ok {
		return int32(entities.CursorDefault)
	}
	return int32(rec.handler.Cursor(rec.window, entities.Coord{X: x, Y: y}))
}

func dispatchWheel(_ entities.RawHandle, x, y, wheel, clicks int32, token entities.Token) (out int32) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("window wheel handler panicked", "token", uint64(token), "panic", r)
			out = entities.Propagate.Raw()
		}
	}()
	rec, ok := lookupWindow(token)
	if !ok {
		return entities.Propagate.Raw()
	}
	axis, err := entities.WheelAxisFromRaw(wheel)
	if err != nil {
		slog.Error("window wheel event with undecodable axis", "error", err)
		return entities.Propagate.Raw()
	}
	return rec.handler.Wheel(rec.window, entities.Coord{X: x, Y: y}, axis, clicks).Raw()
}
