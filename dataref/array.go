package dataref

import (
	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// Element is the set of element types a data ref array can carry.
type Element interface {
	int32 | float32 | byte
}

func elementTag[E Element]() entities.DataType {
	var zero E
	switch any(zero).(type) {
	case int32:
		return entities.TypeIntArray
	case float32:
		return entities.TypeFloatArray
	default:
		return entities.TypeData
	}
}

// Array is read-only typed access to an array data ref. The element tag and
// liveness are verified once, when the Array is constructed.
//
// The host ABI has no array length query, so window sizes are a property of
// the call site: ReadAt and WriteAt bound-check their offset against the
// caller-declared window, not against a stored capacity.
type Array[E Element] struct {
	host ports.DataAccess
	ref  entities.DataRef
}

// ForRefArray wraps a data ref in typed read-only array access. It fails
// with OrphanedHandleError if the ref is no longer live, and with
// TypeMismatchError if the host's type tag bitmap does not carry the array
// tag for E.
func ForRefArray[E Element](host ports.DataAccess, ref entities.DataRef) (*Array[E], error) {
	if !host.IsDataRefGood(ref.Raw()) {
		return nil, &errors.OrphanedHandleError{Kind: "data ref"}
	}
	tags := entities.DataTypeID(host.DataRefTypes(ref.Raw()))
	tag := elementTag[E]()
	if !tags.Contains(tag) {
		return nil, &errors.TypeMismatchError{Requested: tag.String(), Tags: uint32(tags)}
	}
	return &Array[E]{host: host, ref: ref}, nil
}

// FindArray looks a data ref up by name and wraps it in typed read-only
// array access in one step.
func FindArray[E Element](host ports.DataAccess, name string) (*Array[E], error) {
	ref, err := Find(host, name)
	if err != nil {
		return nil, err
	}
	return ForRefArray[E](host, ref)
}

// Ref returns the wrapped data ref.
func (a *Array[E]) Ref() entities.DataRef { return a.ref }

// Read copies up to len(dest) elements starting at offset 0 and returns
// the count actually copied, which is less than len(dest) when the
// underlying array is shorter.
func (a *Array[E]) Read(dest []E) int {
	return int(a.readAt(0, dest))
}

func (a *Array[E]) readAt(offset int32, dest []E) int32 {
	switch d := any(dest).(type) {
	case []int32:
		return a.host.ReadIntArray(a.ref.Raw(), offset, d)
	case []float32:
		return a.host.ReadFloatArray(a.ref.Raw(), offset, d)
	case []byte:
		return a.host.ReadByteArray(a.ref.Raw(), offset, d)
	}
	return 0
}

// ReadAt reads a full window-sized prefix of the array and returns the
// element at offset within it. It fails with OutOfBoundsError, before any
// host call, if offset is at or beyond the declared window, and after the
// host call if the underlying array turned out shorter than the window.
func (a *Array[E]) ReadAt(window, offset int) (E, error) {
	var zero E
	if offset >= window || offset < 0 {
		return zero, &errors.OutOfBoundsError{Offset: offset, Window: window}
	}
	buf := make([]E, window)
	if a.Read(buf) != len(buf) {
		return zero, &errors.OutOfBoundsError{Offset: offset, Window: window}
	}
	return buf[offset], nil
}

// Writable upgrades to read-write access. The host's writability predicate
// is probed at the moment of the call; it fails closed with
// NotWritableError.
func (a *Array[E]) Writable() (*WritableArray[E], error) {
	if !a.host.CanWriteDataRef(a.ref.Raw()) {
		return nil, &errors.NotWritableError{Kind: "data ref"}
	}
	return &WritableArray[E]{Array: *a}, nil
}

// WritableArray is read-write typed access to an array data ref, obtained
// only through Array.Writable.
type WritableArray[E Element] struct {
	Array[E]
}

// Write stores len(src) elements starting at offset 0.
func (w *WritableArray[E]) Write(src []E) {
	w.writeAt(0, src)
}

func (w *WritableArray[E]) writeAt(offset int32, src []E) {
	switch s := any(src).(type) {
	case []int32:
		w.host.WriteIntArray(w.ref.Raw(), offset, s)
	case []float32:
		w.host.WriteFloatArray(w.ref.Raw(), offset, s)
	case []byte:
		w.host.WriteByteArray(w.ref.Raw(), offset, s)
	}
}

// WriteAt stores a single element at offset within the caller-declared
// window. It fails with OutOfBoundsError, before any host call, if offset
// is at or beyond the window; otherwise it performs exactly one
// single-element host write at that offset.
func (w *WritableArray[E]) WriteAt(window, offset int, value E) error {
	if offset >= window || offset < 0 {
		return &errors.OutOfBoundsError{Offset: offset, Window: window}
	}
	w.writeAt(int32(offset), []E{value})
	return nil
}
