//go:build wasip1

package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack(t *testing.T) {
	cases := []struct {
		ptr, length uint32
	}{
		{0, 0},
		{0x1000, 16},
		{0xFFFFFFFF, 0xFFFFFFFF},
	}
	for _, tc := range cases {
		ptr, length := Unpack(Pack(tc.ptr, tc.length))
		assert.Equal(t, tc.ptr, ptr)
		assert.Equal(t, tc.length, length)
	}
}

func TestRoundTrip(t *testing.T) {
	payload := []byte("sim/flightmodel/position/latitude")

	packed := PtrFromBytes(payload)
	require.NotZero(t, packed)

	got := BytesFromPtr(packed)
	assert.Equal(t, payload, got)

	Free(packed)
}

func TestFree(t *testing.T) {
	packed := PtrFromBytes([]byte("pinned"))
	require.NotZero(t, packed)

	Free(packed)
	Free(packed) // second free is a no-op
	Free(0)

	pins.Lock()
	defer pins.Unlock()
	assert.Zero(t, pins.total)
}

func TestEmptyPayload(t *testing.T) {
	assert.Zero(t, PtrFromBytes(nil))
	assert.Nil(t, BytesFromPtr(0))
}

func TestDeallocateUntrackedPointer(t *testing.T) {
	deallocate(0xDEAD, 64) // must not panic

	packed := PtrFromBytes([]byte("x"))
	ptr, length := Unpack(packed)
	deallocate(ptr, length)
	deallocate(ptr, length) // double free is a no-op
}

func TestReleaseAll(t *testing.T) {
	PtrFromBytes([]byte("one"))
	PtrFromBytes([]byte("two"))
	ReleaseAll()

	pins.Lock()
	defer pins.Unlock()
	assert.Empty(t, pins.bufs)
	assert.Zero(t, pins.total)
}
