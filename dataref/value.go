package dataref

import (
	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// Scalar is the set of scalar value types a data ref can carry.
type Scalar interface {
	int32 | float32 | float64
}

func scalarTag[T Scalar]() entities.DataType {
	var zero T
	switch any(zero).(type) {
	case int32:
		return entities.TypeInt
	case float32:
		return entities.TypeFloat
	default:
		return entities.TypeDouble
	}
}

// Value is read-only typed access to a scalar data ref. The type tag and
// liveness are verified once, when the Value is constructed.
type Value[T Scalar] struct {
	host ports.DataAccess
	ref  entities.DataRef
}

// ForRef wraps a data ref in typed read-only access. It fails with
// OrphanedHandleError if the ref is no longer live, and with
// TypeMismatchError if the host's type tag bitmap does not carry T's tag.
func ForRef[T Scalar](host ports.DataAccess, ref entities.DataRef) (*Value[T], error) {
	if !host.IsDataRefGood(ref.Raw()) {
		return nil, &errors.OrphanedHandleError{Kind: "data ref"}
	}
	tags := entities.DataTypeID(host.DataRefTypes(ref.Raw()))
	tag := scalarTag[T]()
	if !tags.Contains(tag) {
		return nil, &errors.TypeMismatchError{Requested: tag.String(), Tags: uint32(tags)}
	}
	return &Value[T]{host: host, ref: ref}, nil
}

// FindValue looks a data ref up by name and wraps it in typed read-only
// access in one step.
func FindValue[T Scalar](host ports.DataAccess, name string) (*Value[T], error) {
	ref, err := Find(host, name)
	if err != nil {
		return nil, err
	}
	return ForRef[T](host, ref)
}

// Ref returns the wrapped data ref.
func (v *Value[T]) Ref() entities.DataRef { return v.ref }

// Read returns the current value. Scalar reads cannot fail at the ABI
// level; a read of a type the ref does not carry would return zero, which
// construction has already ruled out.
func (v *Value[T]) Read() T {
	var value T
	switch p := any(&value).(type) {
	case *int32:
		*p = v.host.GetDataInt(v.ref.Raw())
	case *float32:
		*p = v.host.GetDataFloat(v.ref.Raw())
	case *float64:
		*p = v.host.GetDataDouble(v.ref.Raw())
	}
	return value
}

// Writable upgrades to read-write access. The host's writability predicate
// is probed at the moment of the call; it fails closed with
// NotWritableError. The upgrade is one-way: there is no downgrade, because
// read access is a strict subset of write access.
func (v *Value[T]) Writable() (*WritableValue[T], error) {
	if !v.host.CanWriteDataRef(v.ref.Raw()) {
		return nil, &errors.NotWritableError{Kind: "data ref"}
	}
	return &WritableValue[T]{Value: *v}, nil
}

// WritableValue is read-write typed access to a scalar data ref, obtained
// only through Value.Writable.
type WritableValue[T Scalar] struct {
	Value[T]
}

// Write stores a new value. Writes are infallible at this layer: the host
// silently ignores writes it cannot perform, and this layer does not add a
// synthetic error for a condition the host itself does not report.
func (w *WritableValue[T]) Write(value T) {
	switch v := any(value).(type) {
	case int32:
		w.host.SetDataInt(w.ref.Raw(), v)
	case float32:
		w.host.SetDataFloat(w.ref.Raw(), v)
	case float64:
		w.host.SetDataDouble(w.ref.Raw(), v)
	}
}
