package wazero

import (
	"context"
	"encoding/binary"
	"log/slog"
	"math"

	"github.com/tetratelabs/wazero/api"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
)

// packPtrLen packs a guest pointer and length into a single i64.
// Upper 32 bits: pointer, lower 32 bits: length.
func packPtrLen(ptr, length uint32) uint64 {
	return (uint64(ptr) << 32) | uint64(length)
}

// unpackPtrLen unpacks a guest pointer and length from a packed i64.
func unpackPtrLen(packed uint64) (ptr, length uint32) {
	ptr = uint32(packed >> 32)
	length = uint32(packed & 0xFFFFFFFF)
	return ptr, length
}

// readString reads a guest string passed as a packed ptr+len.
func readString(mod api.Module, packed uint64, maxLen uint32) (string, bool) {
	ptr, length := unpackPtrLen(packed)
	if length == 0 {
		return "", true
	}
	if length > maxLen {
		return "", false
	}
	data, ok := mod.Memory().Read(ptr, length)
	if !ok {
		return "", false
	}
	return string(data), true
}

// writeToGuest places data in memory obtained from the guest's allocate
// export and returns the packed ptr+len, or 0 on failure.
func writeToGuest(ctx context.Context, mod api.Module, data []byte) uint64 {
	allocateFn := mod.ExportedFunction("allocate")
	if allocateFn == nil {
		slog.ErrorContext(ctx, "wazero: guest module missing 'allocate' export")
		return 0
	}
	results, err := allocateFn.Call(ctx, uint64(len(data)))
	if err != nil {
		slog.ErrorContext(ctx, "wazero: guest allocate failed", "error", err)
		return 0
	}
	ptr := uint32(results[0])
	if !mod.Memory().Write(ptr, data) {
		slog.ErrorContext(ctx, "wazero: failed to write payload to guest memory")
		return 0
	}
	return packPtrLen(ptr, uint32(len(data)))
}

// readInt32s reads count little-endian int32 values at ptr.
func readInt32s(mod api.Module, ptr uint32, count int32) ([]int32, bool) {
	if count <= 0 {
		return nil, count == 0
	}
	raw, ok := mod.Memory().Read(ptr, uint32(count)*4)
	if !ok {
		return nil, false
	}
	values := make([]int32, count)
	for i := range values {
		values[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return values, true
}

// writeInt32s writes values as little-endian int32 at ptr.
func writeInt32s(mod api.Module, ptr uint32, values []int32) bool {
	raw := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(v))
	}
	return mod.Memory().Write(ptr, raw)
}

// writeHandles writes raw handles as little-endian u64 at ptr.
func writeHandles(mod api.Module, ptr uint32, refs []entities.RawHandle) bool {
	raw := make([]byte, len(refs)*8)
	for i, ref := range refs {
		binary.LittleEndian.PutUint64(raw[i*8:], uint64(ref))
	}
	return mod.Memory().Write(ptr, raw)
}

// readFloat32s reads count little-endian float32 values at ptr.
func readFloat32s(mod api.Module, ptr uint32, count int32) ([]float32, bool) {
	if count <= 0 {
		return nil, count == 0
	}
	raw, ok := mod.Memory().Read(ptr, uint32(count)*4)
	if !ok {
		return nil, false
	}
	values := make([]float32, count)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return values, true
}

// writeFloat32s writes values as little-endian float32 at ptr.
func writeFloat32s(mod api.Module, ptr uint32, values []float32) bool {
	raw := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	return mod.Memory().Write(ptr, raw)
}
