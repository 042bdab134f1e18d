package entities

// DataType is the logical type of the value behind a data ref.
type DataType uint32

// Data type tag values as defined by the host ABI. A data ref may carry
// several tags at once; see DataTypeID.
const (
	TypeUnknown    DataType = 0
	TypeInt        DataType = 1
	TypeFloat      DataType = 2
	TypeDouble     DataType = 4
	TypeFloatArray DataType = 8
	TypeIntArray   DataType = 16
	TypeData       DataType = 32
)

// String returns the host's name for the data type tag.
func (t DataType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeFloatArray:
		return "float array"
	case TypeIntArray:
		return "int array"
	case TypeData:
		return "byte data"
	default:
		return "unknown"
	}
}

// DataTypeID is the type tag bitmap the host reports for a data ref.
type DataTypeID uint32

// Contains reports whether the bitmap carries the given type tag.
func (id DataTypeID) Contains(t DataType) bool {
	if t == TypeUnknown {
		return id == 0
	}
	return uint32(id)&uint32(t) != 0
}
