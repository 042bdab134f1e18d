package dataref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbridge-dev/simbridge-sdk/dataref"
	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	sdkerrors "github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/simtest"
)

func newArrayHost(t *testing.T) (*simtest.Host, *dataref.Array[float32]) {
	t.Helper()
	host := simtest.NewHost()
	host.AddDataRef("sim/engines/thrust", simtest.DataRefSpec{
		Types:    uint32(entities.TypeFloatArray),
		Floats:   []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8},
		Writable: true,
	})
	arr, err := dataref.FindArray[float32](host, "sim/engines/thrust")
	require.NoError(t, err)
	return host, arr
}

func TestArray_TagChecking(t *testing.T) {
	host := simtest.NewHost()
	host.AddDataRef("sim/floats", simtest.DataRefSpec{
		Types: uint32(entities.TypeFloatArray),
	})

	t.Run("int access to a float array is rejected", func(t *testing.T) {
		before := host.CallCount("ReadIntArray")
		_, err := dataref.FindArray[int32](host, "sim/floats")
		var mismatch *sdkerrors.TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, before, host.CallCount("ReadIntArray"))
	})

	t.Run("scalar float tag does not grant array access", func(t *testing.T) {
		host.AddDataRef("sim/scalar", simtest.DataRefSpec{
			Types: uint32(entities.TypeFloat),
		})
		_, err := dataref.FindArray[float32](host, "sim/scalar")
		var mismatch *sdkerrors.TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
	})
}

func TestArray_Read(t *testing.T) {
	_, arr := newArrayHost(t)

	t.Run("copies min of dest and available", func(t *testing.T) {
		dest := make([]float32, 4)
		n := arr.Read(dest)
		assert.Equal(t, 4, n)
		assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4}, dest)

		wide := make([]float32, 16)
		n = arr.Read(wide)
		assert.Equal(t, 8, n)
	})
}

func TestArray_ReadAt(t *testing.T) {
	host, arr := newArrayHost(t)

	t.Run("offsets inside the window call the host exactly once", func(t *testing.T) {
		for offset := 0; offset < 4; offset++ {
			before := host.CallCount("ReadFloatArray")
			v, err := arr.ReadAt(4, offset)
			require.NoError(t, err)
			assert.Equal(t, host.Spec(arr.Ref().Raw()).Floats[offset], v)
			assert.Equal(t, before+1, host.CallCount("ReadFloatArray"))
		}
	})

	t.Run("offset at the window fails without any host call", func(t *testing.T) {
		before := len(host.Calls)
		_, err := arr.ReadAt(4, 4)
		var oob *sdkerrors.OutOfBoundsError
		require.ErrorAs(t, err, &oob)
		assert.Equal(t, 4, oob.Offset)
		assert.Equal(t, 4, oob.Window)
		assert.Equal(t, before, len(host.Calls))

		_, err = arr.ReadAt(4, 17)
		require.ErrorAs(t, err, &oob)
		assert.Equal(t, before, len(host.Calls))
	})

	t.Run("window larger than the backing array fails after the read", func(t *testing.T) {
		_, err := arr.ReadAt(32, 1)
		var oob *sdkerrors.OutOfBoundsError
		require.ErrorAs(t, err, &oob)
	})
}

func TestWritableArray_WriteAt(t *testing.T) {
	host, arr := newArrayHost(t)
	w, err := arr.Writable()
	require.NoError(t, err)

	t.Run("offsets inside the window perform one single-element write", func(t *testing.T) {
		for offset := 0; offset < 4; offset++ {
			before := host.CallCount("WriteFloatArray")
			require.NoError(t, w.WriteAt(4, offset, float32(offset)+10))
			assert.Equal(t, before+1, host.CallCount("WriteFloatArray"))
			assert.Equal(t, float32(offset)+10, host.Spec(arr.Ref().Raw()).Floats[offset])
		}
	})

	t.Run("offset at the window fails without any host call", func(t *testing.T) {
		before := len(host.Calls)
		err := w.WriteAt(4, 4, 99)
		var oob *sdkerrors.OutOfBoundsError
		require.ErrorAs(t, err, &oob)
		assert.Equal(t, before, len(host.Calls))
	})
}

func TestWritableArray_RoundTrip(t *testing.T) {
	_, arr := newArrayHost(t)
	w, err := arr.Writable()
	require.NoError(t, err)

	require.NoError(t, w.WriteAt(8, 3, 42.0))
	v, err := w.ReadAt(8, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(42.0), v)
}

func TestWritableArray_Write(t *testing.T) {
	host, arr := newArrayHost(t)
	w, err := arr.Writable()
	require.NoError(t, err)

	w.Write([]float32{9, 8, 7})
	assert.Equal(t, []float32{9, 8, 7, 0.4, 0.5, 0.6, 0.7, 0.8}, host.Spec(arr.Ref().Raw()).Floats)
}

func TestArray_Writable_FailsClosed(t *testing.T) {
	host := simtest.NewHost()
	host.AddDataRef("sim/fixed", simtest.DataRefSpec{
		Types: uint32(entities.TypeIntArray),
		Ints:  []int32{1, 2, 3},
	})
	arr, err := dataref.FindArray[int32](host, "sim/fixed")
	require.NoError(t, err)

	_, err = arr.Writable()
	var notWritable *sdkerrors.NotWritableError
	require.ErrorAs(t, err, &notWritable)
}

func TestByteArray(t *testing.T) {
	host := simtest.NewHost()
	host.AddDataRef("sim/tailnum", simtest.DataRefSpec{
		Types:    uint32(entities.TypeData),
		Bytes:    []byte("N172SP\x00\x00"),
		Writable: true,
	})

	arr, err := dataref.FindArray[byte](host, "sim/tailnum")
	require.NoError(t, err)

	dest := make([]byte, 6)
	n := arr.Read(dest)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte("N172SP"), dest)

	w, err := arr.Writable()
	require.NoError(t, err)
	w.Write([]byte("D-ABCD"))
	assert.Equal(t, []byte("D-ABCD\x00\x00"), host.Spec(arr.Ref().Raw()).Bytes)
}
