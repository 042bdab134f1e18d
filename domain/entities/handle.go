package entities

import "github.com/simbridge-dev/simbridge-sdk/domain/errors"

// RawHandle is a pointer-sized identifier issued by the host. Zero is the
// host's "no such entity" sentinel for every pointer-like kind.
type RawHandle uintptr

// PluginIDNone is the sentinel the host returns for plugin lookups that
// match nothing. Plugin identifiers are small integers, not pointers.
const PluginIDNone int32 = -1

// DataRef is an opaque handle to a piece of data published by the simulator
// or by another plugin. The host owns the underlying storage; a DataRef is
// only useful when handed back to host calls.
type DataRef struct {
	raw RawHandle
}

// WrapDataRef wraps a raw data ref returned by a host lookup call.
// It fails with InvalidHandleError if the raw value is the null sentinel.
func WrapDataRef(raw RawHandle) (DataRef, error) {
	if raw == 0 {
		return DataRef{}, &errors.InvalidHandleError{Kind: "data ref"}
	}
	return DataRef{raw: raw}, nil
}

// Raw returns the raw identifier for handing back to host calls.
func (d DataRef) Raw() RawHandle { return d.raw }

// WindowID is an opaque handle to a window created through the host.
type WindowID struct {
	raw RawHandle
}

// WrapWindowID wraps a raw window identifier returned by the host.
// It fails with InvalidHandleError if the raw value is the null sentinel.
func WrapWindowID(raw RawHandle) (WindowID, error) {
	if raw == 0 {
		return WindowID{}, &errors.InvalidHandleError{Kind: "window"}
	}
	return WindowID{raw: raw}, nil
}

// Raw returns the raw identifier for handing back to host calls.
func (w WindowID) Raw() RawHandle { return w.raw }

// MenuID is an opaque handle to a menu created through the host.
type MenuID struct {
	raw RawHandle
}

// WrapMenuID wraps a raw menu identifier returned by the host.
// It fails with InvalidHandleError if the raw value is the null sentinel.
func WrapMenuID(raw RawHandle) (MenuID, error) {
	if raw == 0 {
		return MenuID{}, &errors.InvalidHandleError{Kind: "menu"}
	}
	return MenuID{raw: raw}, nil
}

// Raw returns the raw identifier for handing back to host calls.
func (m MenuID) Raw() RawHandle { return m.raw }

// CommandRef is an opaque handle to a named host command.
type CommandRef struct {
	raw RawHandle
}

// WrapCommandRef wraps a raw command reference returned by the host.
// It fails with InvalidHandleError if the raw value is the null sentinel.
func WrapCommandRef(raw RawHandle) (CommandRef, error) {
	if raw == 0 {
		return CommandRef{}, &errors.InvalidHandleError{Kind: "command"}
	}
	return CommandRef{raw: raw}, nil
}

// Raw returns the raw identifier for handing back to host calls.
func (c CommandRef) Raw() RawHandle { return c.raw }

// FlightLoopID is an opaque handle to a scheduled flight loop callback.
type FlightLoopID struct {
	raw RawHandle
}

// WrapFlightLoopID wraps a raw flight loop identifier returned by the host.
// It fails with InvalidHandleError if the raw value is the null sentinel.
func WrapFlightLoopID(raw RawHandle) (FlightLoopID, error) {
	if raw == 0 {
		return FlightLoopID{}, &errors.InvalidHandleError{Kind: "flight loop"}
	}
	return FlightLoopID{raw: raw}, nil
}

// Raw returns the raw identifier for handing back to host calls.
func (f FlightLoopID) Raw() RawHandle { return f.raw }

// PluginID identifies a loaded plugin. Unlike the pointer-like handles it is
// a small integer; PluginIDNone marks a failed lookup.
type PluginID struct {
	id int32
}

// WrapPluginID wraps a raw plugin identifier returned by the host.
// It fails with InvalidHandleError if the raw value is the PluginIDNone
// sentinel or negative.
func WrapPluginID(id int32) (PluginID, error) {
	if id <= PluginIDNone {
		return PluginID{}, &errors.InvalidHandleError{Kind: "plugin"}
	}
	return PluginID{id: id}, nil
}

// Raw returns the raw identifier for handing back to host calls.
func (p PluginID) Raw() int32 { return p.id }
