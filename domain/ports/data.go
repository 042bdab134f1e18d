package ports

import "github.com/simbridge-dev/simbridge-sdk/domain/entities"

// RawDataRefInfo is the get-info result before any validation. Strings come
// straight from the host and may be empty.
type RawDataRefInfo struct {
	Name     string
	Types    uint32
	Writable bool
	Owner    int32
}

// DataAccess is the host's data ref surface. Scalar reads and writes are
// infallible at the ABI level: reads of the wrong type return zero and
// writes the host cannot perform are silently ignored. Array reads return
// the number of elements actually copied.
type DataAccess interface {
	// FindDataRef looks a data ref up by name. Returns 0 if no data ref
	// with that name exists.
	FindDataRef(name string) entities.RawHandle

	// CountDataRefs returns the total number of registered data refs.
	CountDataRefs() int32

	// DataRefsByIndex returns raw data refs for the half-open index window
	// [offset, offset+count), clamped to the registered range.
	DataRefsByIndex(offset, count int32) []entities.RawHandle

	// DataRefInfo returns the host's metadata snapshot for a data ref.
	DataRefInfo(ref entities.RawHandle) RawDataRefInfo

	// IsDataRefGood reports whether the data ref is still live. A data ref
	// becomes orphaned when its providing plugin unloads.
	IsDataRefGood(ref entities.RawHandle) bool

	// CanWriteDataRef reports the host's current writability predicate for
	// the data ref. The answer can change over the host's lifetime.
	CanWriteDataRef(ref entities.RawHandle) bool

	// DataRefTypes returns the type tag bitmap for the data ref.
	DataRefTypes(ref entities.RawHandle) uint32

	GetDataInt(ref entities.RawHandle) int32
	SetDataInt(ref entities.RawHandle, value int32)
	GetDataFloat(ref entities.RawHandle) float32
	SetDataFloat(ref entities.RawHandle, value float32)
	GetDataDouble(ref entities.RawHandle) float64
	SetDataDouble(ref entities.RawHandle, value float64)

	// ReadIntArray copies up to len(dest) elements starting at offset and
	// returns the count actually copied.
	ReadIntArray(ref entities.RawHandle, offset int32, dest []int32) int32
	// WriteIntArray writes len(src) elements starting at offset.
	WriteIntArray(ref entities.RawHandle, offset int32, src []int32)

	// ReadFloatArray copies up to len(dest) elements starting at offset and
	// returns the count actually copied.
	ReadFloatArray(ref entities.RawHandle, offset int32, dest []float32) int32
	// WriteFloatArray writes len(src) elements starting at offset.
	WriteFloatArray(ref entities.RawHandle, offset int32, src []float32)

	// ReadByteArray copies up to len(dest) bytes starting at offset and
	// returns the count actually copied.
	ReadByteArray(ref entities.RawHandle, offset int32, dest []byte) int32
	// WriteByteArray writes len(src) bytes starting at offset.
	WriteByteArray(ref entities.RawHandle, offset int32, src []byte)
}
