package wazero

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tetratelabs/wazero/api"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
)

func (a *adapter) findDataRef(_ context.Context, mod api.Module, stack []uint64) {
	name, ok := readString(mod, stack[0], a.cfg.MaxStringLen)
	if !ok {
		stack[0] = 0
		return
	}
	stack[0] = uint64(a.host.FindDataRef(name))
}

func (a *adapter) countDataRefs(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeI32(a.host.CountDataRefs())
}

func (a *adapter) dataRefsByIndex(_ context.Context, mod api.Module, stack []uint64) {
	offset := api.DecodeI32(stack[0])
	count, ok := a.clampCount(api.DecodeI32(stack[1]))
	if !ok {
		stack[0] = api.EncodeI32(0)
		return
	}
	ptr := uint32(api.DecodeI32(stack[2]))
	refs := a.host.DataRefsByIndex(offset, count)
	if len(refs) > 0 && !writeHandles(mod, ptr, refs) {
		refs = nil
	}
	stack[0] = api.EncodeI32(int32(len(refs)))
}

func (a *adapter) dataRefInfo(ctx context.Context, mod api.Module, stack []uint64) {
	info := a.host.DataRefInfo(entities.RawHandle(stack[0]))
	payload, err := json.Marshal(info)
	if err != nil {
		slog.ErrorContext(ctx, "wazero: failed to marshal data ref info", "error", err)
		stack[0] = 0
		return
	}
	stack[0] = writeToGuest(ctx, mod, payload)
}

func (a *adapter) isDataRefGood(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = boolToRaw(a.host.IsDataRefGood(entities.RawHandle(stack[0])))
}

func (a *adapter) canWriteDataRef(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = boolToRaw(a.host.CanWriteDataRef(entities.RawHandle(stack[0])))
}

func (a *adapter) dataRefTypes(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = uint64(a.host.DataRefTypes(entities.RawHandle(stack[0])))
}

func (a *adapter) getDataInt(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeI32(a.host.GetDataInt(entities.RawHandle(stack[0])))
}

func (a *adapter) setDataInt(_ context.Context, _ api.Module, stack []uint64) {
	a.host.SetDataInt(entities.RawHandle(stack[0]), api.DecodeI32(stack[1]))
}

func (a *adapter) getDataFloat(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeF32(a.host.GetDataFloat(entities.RawHandle(stack[0])))
}

func (a *adapter) setDataFloat(_ context.Context, _ api.Module, stack []uint64) {
	a.host.SetDataFloat(entities.RawHandle(stack[0]), api.DecodeF32(stack[1]))
}

func (a *adapter) getDataDouble(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeF64(a.host.GetDataDouble(entities.RawHandle(stack[0])))
}

func (a *adapter) setDataDouble(_ context.Context, _ api.Module, stack []uint64) {
	a.host.SetDataDouble(entities.RawHandle(stack[0]), api.DecodeF64(stack[1]))
}

// clampCount bounds a guest-supplied element count.
func (a *adapter) clampCount(count int32) (int32, bool) {
	if count < 0 || count > a.cfg.MaxArrayLen {
		return 0, false
	}
	return count, true
}

// The array transfers below take (ref, bufPtr, offset, count). The guest's
// count is the number of elements to move starting at offset; the port's
// slice length carries it, so no absolute end index is ever computed.

func (a *adapter) readIntArray(_ context.Context, mod api.Module, stack []uint64) {
	ref := entities.RawHandle(stack[0])
	ptr := uint32(api.DecodeI32(stack[1]))
	offset := api.DecodeI32(stack[2])
	count, ok := a.clampCount(api.DecodeI32(stack[3]))
	if !ok {
		stack[0] = api.EncodeI32(0)
		return
	}
	buf := make([]int32, count)
	n := a.host.ReadIntArray(ref, offset, buf)
	if n > 0 && !writeInt32s(mod, ptr, buf[:n]) {
		n = 0
	}
	stack[0] = api.EncodeI32(n)
}

func (a *adapter) writeIntArray(_ context.Context, mod api.Module, stack []uint64) {
	ref := entities.RawHandle(stack[0])
	ptr := uint32(api.DecodeI32(stack[1]))
	offset := api.DecodeI32(stack[2])
	count, ok := a.clampCount(api.DecodeI32(stack[3]))
	if !ok {
		return
	}
	values, ok := readInt32s(mod, ptr, count)
	if !ok {
		return
	}
	a.host.WriteIntArray(ref, offset, values)
}

func (a *adapter) readFloatArray(_ context.Context, mod api.Module, stack []uint64) {
	ref := entities.RawHandle(stack[0])
	ptr := uint32(api.DecodeI32(stack[1]))
	offset := api.DecodeI32(stack[2])
	count, ok := a.clampCount(api.DecodeI32(stack[3]))
	if !ok {
		stack[0] = api.EncodeI32(0)
		return
	}
	buf := make([]float32, count)
	n := a.host.ReadFloatArray(ref, offset, buf)
	if n > 0 && !writeFloat32s(mod, ptr, buf[:n]) {
		n = 0
	}
	stack[0] = api.EncodeI32(n)
}

func (a *adapter) writeFloatArray(_ context.Context, mod api.Module, stack []uint64) {
	ref := entities.RawHandle(stack[0])
	ptr := uint32(api.DecodeI32(stack[1]))
	offset := api.DecodeI32(stack[2])
	count, ok := a.clampCount(api.DecodeI32(stack[3]))
	if !ok {
		return
	}
	values, ok := readFloat32s(mod, ptr, count)
	if !ok {
		return
	}
	a.host.WriteFloatArray(ref, offset, values)
}

func (a *adapter) readByteArray(_ context.Context, mod api.Module, stack []uint64) {
	ref := entities.RawHandle(stack[0])
	ptr := uint32(api.DecodeI32(stack[1]))
	offset := api.DecodeI32(stack[2])
	count, ok := a.clampCount(api.DecodeI32(stack[3]))
	if !ok {
		stack[0] = api.EncodeI32(0)
		return
	}
	buf := make([]byte, count)
	n := a.host.ReadByteArray(ref, offset, buf)
	if n > 0 && !mod.Memory().Write(ptr, buf[:n]) {
		n = 0
	}
	stack[0] = api.EncodeI32(n)
}

func (a *adapter) writeByteArray(_ context.Context, mod api.Module, stack []uint64) {
	ref := entities.RawHandle(stack[0])
	ptr := uint32(api.DecodeI32(stack[1]))
	offset := api.DecodeI32(stack[2])
	count, ok := a.clampCount(api.DecodeI32(stack[3]))
	if !ok {
		return
	}
	values, ok := mod.Memory().Read(ptr, uint32(count))
	if !ok {
		return
	}
	// Copy out of linear memory before handing to the port; the guest can
	// grow memory and invalidate the view.
	a.host.WriteByteArray(ref, offset, append([]byte(nil), values...))
}
