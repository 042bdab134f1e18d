package entities

import "fmt"

// MouseStatus describes the stage of a pointer button gesture.
type MouseStatus int32

// Mouse status values as delivered by the host.
const (
	MouseDown MouseStatus = 1
	MouseDrag MouseStatus = 2
	MouseUp   MouseStatus = 3
)

// MouseStatusFromRaw converts the host's raw mouse status code.
// Unknown codes are rejected so trampolines can log and propagate.
func MouseStatusFromRaw(raw int32) (MouseStatus, error) {
	switch s := MouseStatus(raw); s {
	case MouseDown, MouseDrag, MouseUp:
		return s, nil
	default:
		return 0, fmt.Errorf("unknown mouse status %d", raw)
	}
}

// WheelAxis identifies which scroll wheel produced a wheel event.
type WheelAxis int32

// Wheel axis values as delivered by the host.
const (
	WheelVertical   WheelAxis = 0
	WheelHorizontal WheelAxis = 1
)

// WheelAxisFromRaw converts the host's raw wheel axis code.
// Unknown codes are rejected so trampolines can log and propagate.
func WheelAxisFromRaw(raw int32) (WheelAxis, error) {
	switch a := WheelAxis(raw); a {
	case WheelVertical, WheelHorizontal:
		return a, nil
	default:
		return 0, fmt.Errorf("unknown wheel axis %d", raw)
	}
}

// KeyFlags is the modifier bitmap attached to keyboard events.
type KeyFlags int32

// Key flag bits as delivered by the host.
const (
	KeyShift    KeyFlags = 1
	KeyOption   KeyFlags = 2
	KeyControl  KeyFlags = 4
	KeyDownFlag KeyFlags = 8
	KeyUpFlag   KeyFlags = 16
)

// Has reports whether all bits of flag are set.
func (f KeyFlags) Has(flag KeyFlags) bool { return f&flag == flag }

// EventState tells the host what to do with an input event after the
// handler has seen it.
type EventState int32

const (
	// Propagate passes the event on to the next recipient.
	Propagate EventState = 0
	// Consume stops the event from reaching anyone else.
	Consume EventState = 1
)

// Raw returns the host's sentinel for the event state.
func (s EventState) Raw() int32 { return int32(s) }

// CursorStatus tells the host which cursor to show over a window.
type CursorStatus int32

// Cursor status values accepted by the host.
const (
	CursorDefault CursorStatus = 0
	CursorHidden  CursorStatus = 1
	CursorArrow   CursorStatus = 2
	CursorCustom  CursorStatus = 3
)
