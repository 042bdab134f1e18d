// Package errors provides domain-specific error types for the SDK.
// All error types support matching via errors.As() and errors.Is().
package errors

import "fmt"

// InvalidHandleError reports that a host lookup or creation call returned
// its "no such entity" sentinel. It is raised at wrap time, never later.
type InvalidHandleError struct {
	Kind string // handle kind, e.g. "data ref", "window"
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("invalid %s handle", e.Kind)
}

// OrphanedHandleError reports that a previously valid handle is no longer
// live per the host's liveness probe, e.g. because the owning plugin was
// unloaded. Raised lazily, at the moment an operation needs liveness.
type OrphanedHandleError struct {
	Kind string
}

func (e *OrphanedHandleError) Error() string {
	return fmt.Sprintf("%s handle is orphaned", e.Kind)
}

// TypeMismatchError reports that the requested logical type is absent from
// the host's type tag bitmap for a handle.
type TypeMismatchError struct {
	Requested string // requested logical type name
	Tags      uint32 // host-reported tag bitmap
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("data ref does not carry type %s (tag bitmap %#x)", e.Requested, e.Tags)
}

// NotWritableError reports a read-only to read-write upgrade attempted on a
// handle the host currently reports as non-writable.
type NotWritableError struct {
	Kind string
}

func (e *NotWritableError) Error() string {
	return fmt.Sprintf("%s is read only", e.Kind)
}

// OutOfBoundsError reports an array window offset at or beyond the
// caller-declared window size. Caught before any host call is made.
type OutOfBoundsError struct {
	Offset int
	Window int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("offset %d out of bounds for window of %d", e.Offset, e.Window)
}

// NameEncodingError reports a plugin-supplied string containing an embedded
// terminator the host ABI cannot represent. Caught before any host call.
type NameEncodingError struct {
	Field string
}

func (e *NameEncodingError) Error() string {
	return fmt.Sprintf("%s contains an embedded NUL", e.Field)
}

// ConfigError reports a missing or mistyped field in a plugin's settings.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %q: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
