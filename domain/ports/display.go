package ports

import "github.com/simbridge-dev/simbridge-sdk/domain/entities"

// WindowCallbacks is the fixed set of function values handed to the host at
// window creation. The host calls them with the window's raw id and the
// correlation token from registration. All of them may be invoked until the
// window is destroyed.
type WindowCallbacks struct {
	// Draw is called every frame the window is visible.
	Draw func(id entities.RawHandle, token entities.Token)
	// MouseClick reports button gestures; the return is the host's
	// consume/propagate sentinel.
	MouseClick func(id entities.RawHandle, x, y, status int32, token entities.Token) int32
	// Key reports keyboard input while the window has focus.
	Key func(id entities.RawHandle, key byte, flags int32, virtualKey byte, token entities.Token, losingFocus int32)
	// Cursor selects the cursor to show; the return is a raw cursor status.
	Cursor func(id entities.RawHandle, x, y int32, token entities.Token) int32
	// Wheel reports scroll input; the return is the host's
	// consume/propagate sentinel.
	Wheel func(id entities.RawHandle, x, y, wheel, clicks int32, token entities.Token) int32
}

// CreateWindowRequest carries everything the host needs to create a window.
type CreateWindowRequest struct {
	Left, Top, Right, Bottom int32
	Visible                  bool
	Callbacks                WindowCallbacks
	Token                    entities.Token
}

// Windowing is the host's window surface.
type Windowing interface {
	// CreateWindow creates a window and returns its raw id, or 0 on
	// failure.
	CreateWindow(req CreateWindowRequest) entities.RawHandle

	// DestroyWindow destroys a window created by CreateWindow. The host
	// stops invoking the window's callbacks once this returns.
	DestroyWindow(id entities.RawHandle)

	// SetWindowVisible shows or hides the window.
	SetWindowVisible(id entities.RawHandle, visible bool)

	// IsWindowVisible reports whether the window is currently shown.
	IsWindowVisible(id entities.RawHandle) bool

	// SetWindowTitle sets the window's title text.
	SetWindowTitle(id entities.RawHandle, title string)

	// TakeKeyboardFocus routes keystrokes to the window. Passing 0 returns
	// focus to the host.
	TakeKeyboardFocus(id entities.RawHandle)

	// HasKeyboardFocus reports whether the window currently has focus.
	HasKeyboardFocus(id entities.RawHandle) bool
}
