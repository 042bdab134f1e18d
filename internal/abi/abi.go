//go:build wasip1

// Package abi implements the guest side of the simbridge memory protocol.
//
// The host hands variable-length payloads to a plugin by calling the
// guest's exported allocate function and writing into linear memory; the
// guest hands payloads back as a packed i64 carrying pointer and length.
package abi

import (
	"fmt"
	"sync"
	"unsafe"
)

// MaxTotalAllocated caps live host-visible allocations so a misbehaving
// host cannot grow the plugin's linear memory without bound.
const MaxTotalAllocated = 64 * 1024 * 1024

// pins holds every buffer the host may still be reading or writing.
// Keeping the slice reachable stops the Go runtime from collecting or
// moving it while the host holds the raw pointer.
var pins = struct {
	sync.Mutex
	bufs  map[uint32][]byte
	total int
}{bufs: make(map[uint32][]byte)}

//go:wasmexport allocate
func allocate(size uint32) uint32 {
	if size == 0 {
		return 0
	}

	pins.Lock()
	defer pins.Unlock()

	if pins.total+int(size) > MaxTotalAllocated {
		panic(fmt.Sprintf("abi: allocation of %d bytes exceeds cap (%d live)", size, pins.total))
	}

	buf := make([]byte, size)
	ptr := uint32(uintptr(unsafe.Pointer(&buf[0])))
	pins.bufs[ptr] = buf
	pins.total += int(size)
	return ptr
}

//go:wasmexport deallocate
func deallocate(ptr uint32, size uint32) {
	pins.Lock()
	defer pins.Unlock()

	buf, ok := pins.bufs[ptr]
	if !ok {
		return
	}
	delete(pins.bufs, ptr)
	// Account with the pinned length, not the caller's size argument.
	pins.total -= len(buf)
	if pins.total < 0 {
		pins.total = 0
	}
}

// Free unpins the buffer behind a packed value once the host is done
// with it. Untracked values are ignored.
func Free(packed uint64) {
	ptr, length := Unpack(packed)
	if ptr != 0 && length != 0 {
		deallocate(ptr, length)
	}
}

// ReleaseAll unpins every tracked buffer. Called on plugin shutdown.
func ReleaseAll() {
	pins.Lock()
	defer pins.Unlock()
	clear(pins.bufs)
	pins.total = 0
}

// Pack combines a pointer and length into the packed i64 wire value.
func Pack(ptr, length uint32) uint64 {
	return (uint64(ptr) << 32) | uint64(length)
}

// Unpack splits a packed i64 wire value into pointer and length.
func Unpack(packed uint64) (ptr, length uint32) {
	return uint32(packed >> 32), uint32(packed)
}

// PtrFromBytes pins a copy of data in linear memory and returns the
// packed value describing it. The buffer stays pinned until the host
// calls deallocate for it.
func PtrFromBytes(data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}
	ptr := allocate(uint32(len(data)))
	dest := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), len(data))
	copy(dest, data)
	return Pack(ptr, uint32(len(data)))
}

// BytesFromPtr copies a host-written payload out of linear memory.
func BytesFromPtr(packed uint64) []byte {
	ptr, length := Unpack(packed)
	if ptr == 0 || length == 0 {
		return nil
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), length)
	data := make([]byte, length)
	copy(data, src)
	return data
}
