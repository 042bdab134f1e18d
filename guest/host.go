//go:build wasip1

package guest

import (
	"encoding/binary"
	"encoding/json"
	"math"

	sdk "github.com/simbridge-dev/simbridge-sdk"
	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
	"github.com/simbridge-dev/simbridge-sdk/internal/abi"
)

// bridge implements the domain ports over the simbridge_host imports.
// Callback function values cannot cross the WASM boundary, so the bridge
// keeps them keyed by correlation token; the host re-enters through the
// fixed dispatch exports with the token, and the export bodies resolve it
// here. WASM guests are single threaded, so the maps need no locking.
type bridge struct {
	flightLoopFns map[entities.Token]ports.FlightLoopFunc
	commandFns    map[entities.Token]ports.CommandFunc
	menuFns       map[entities.Token]ports.MenuFunc
	windowCbs     map[entities.Token]ports.WindowCallbacks
	errorFn       ports.ErrorFunc

	// handle → token, so destroy calls can drop the callback record.
	loopTokens   map[entities.RawHandle]entities.Token
	menuTokens   map[entities.RawHandle]entities.Token
	windowTokens map[entities.RawHandle]entities.Token
}

var _ sdk.Host = (*bridge)(nil)

var theBridge = &bridge{
	flightLoopFns: make(map[entities.Token]ports.FlightLoopFunc),
	commandFns:    make(map[entities.Token]ports.CommandFunc),
	menuFns:       make(map[entities.Token]ports.MenuFunc),
	windowCbs:     make(map[entities.Token]ports.WindowCallbacks),
	loopTokens:    make(map[entities.RawHandle]entities.Token),
	menuTokens:    make(map[entities.RawHandle]entities.Token),
	windowTokens:  make(map[entities.RawHandle]entities.Token),
}

// Host returns the simulator surface backed by the simbridge_host module.
func Host() sdk.Host { return theBridge }

// withString pins s for the duration of a host call.
func withString(s string, call func(packed uint64)) {
	packed := abi.PtrFromBytes([]byte(s))
	call(packed)
	abi.Free(packed)
}

// takePayload copies a host-written packed payload out and unpins it.
func takePayload(packed uint64) []byte {
	data := abi.BytesFromPtr(packed)
	abi.Free(packed)
	return data
}

func rawBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// --- data access ---

func (b *bridge) FindDataRef(name string) entities.RawHandle {
	var raw uint64
	withString(name, func(packed uint64) { raw = hostFindDataRef(packed) })
	return entities.RawHandle(raw)
}

func (b *bridge) CountDataRefs() int32 { return hostCountDataRefs() }

func (b *bridge) DataRefsByIndex(offset, count int32) []entities.RawHandle {
	if count <= 0 {
		return nil
	}
	packed := abi.PtrFromBytes(make([]byte, int(count)*8))
	ptr, _ := abi.Unpack(packed)
	n := hostDataRefsByIndex(offset, count, ptr)
	raw := takePayload(packed)
	if n <= 0 {
		return nil
	}
	refs := make([]entities.RawHandle, n)
	for i := range refs {
		refs[i] = entities.RawHandle(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	return refs
}

func (b *bridge) DataRefInfo(ref entities.RawHandle) ports.RawDataRefInfo {
	var info ports.RawDataRefInfo
	payload := takePayload(hostDataRefInfo(uint64(ref)))
	if payload != nil {
		// A decode failure leaves the zero info, which the safe layer
		// already treats as an invalid ref.
		_ = json.Unmarshal(payload, &info)
	}
	return info
}

func (b *bridge) IsDataRefGood(ref entities.RawHandle) bool {
	return hostIsDataRefGood(uint64(ref)) != 0
}

func (b *bridge) CanWriteDataRef(ref entities.RawHandle) bool {
	return hostCanWriteDataRef(uint64(ref)) != 0
}

func (b *bridge) DataRefTypes(ref entities.RawHandle) uint32 {
	return uint32(hostDataRefTypes(uint64(ref)))
}

func (b *bridge) GetDataInt(ref entities.RawHandle) int32 { return hostGetDataInt(uint64(ref)) }

func (b *bridge) SetDataInt(ref entities.RawHandle, value int32) {
	hostSetDataInt(uint64(ref), value)
}

func (b *bridge) GetDataFloat(ref entities.RawHandle) float32 { return hostGetDataFloat(uint64(ref)) }

func (b *bridge) SetDataFloat(ref entities.RawHandle, value float32) {
	hostSetDataFloat(uint64(ref), value)
}

func (b *bridge) GetDataDouble(ref entities.RawHandle) float64 {
	return hostGetDataDouble(uint64(ref))
}

func (b *bridge) SetDataDouble(ref entities.RawHandle, value float64) {
	hostSetDataDouble(uint64(ref), value)
}

func (b *bridge) ReadIntArray(ref entities.RawHandle, offset int32, dest []int32) int32 {
	if len(dest) == 0 {
		return 0
	}
	packed := abi.PtrFromBytes(make([]byte, len(dest)*4))
	ptr, _ := abi.Unpack(packed)
	n := hostReadIntArray(uint64(ref), ptr, offset, int32(len(dest)))
	raw := takePayload(packed)
	for i := int32(0); i < n; i++ {
		dest[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return n
}

func (b *bridge) WriteIntArray(ref entities.RawHandle, offset int32, src []int32) {
	if len(src) == 0 {
		return
	}
	raw := make([]byte, len(src)*4)
	for i, v := range src {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(v))
	}
	packed := abi.PtrFromBytes(raw)
	ptr, _ := abi.Unpack(packed)
	hostWriteIntArray(uint64(ref), ptr, offset, int32(len(src)))
	abi.Free(packed)
}

func (b *bridge) ReadFloatArray(ref entities.RawHandle, offset int32, dest []float32) int32 {
	if len(dest) == 0 {
		return 0
	}
	packed := abi.PtrFromBytes(make([]byte, len(dest)*4))
	ptr, _ := abi.Unpack(packed)
	n := hostReadFloatArray(uint64(ref), ptr, offset, int32(len(dest)))
	raw := takePayload(packed)
	for i := int32(0); i < n; i++ {
		dest[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return n
}

func (b *bridge) WriteFloatArray(ref entities.RawHandle, offset int32, src []float32) {
	if len(src) == 0 {
		return
	}
	raw := make([]byte, len(src)*4)
	for i, v := range src {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	packed := abi.PtrFromBytes(raw)
	ptr, _ := abi.Unpack(packed)
	hostWriteFloatArray(uint64(ref), ptr, offset, int32(len(src)))
	abi.Free(packed)
}

func (b *bridge) ReadByteArray(ref entities.RawHandle, offset int32, dest []byte) int32 {
	if len(dest) == 0 {
		return 0
	}
	packed := abi.PtrFromBytes(make([]byte, len(dest)))
	ptr, _ := abi.Unpack(packed)
	n := hostReadByteArray(uint64(ref), ptr, offset, int32(len(dest)))
	raw := takePayload(packed)
	copy(dest, raw[:n])
	return n
}

func (b *bridge) WriteByteArray(ref entities.RawHandle, offset int32, src []byte) {
	if len(src) == 0 {
		return
	}
	packed := abi.PtrFromBytes(src)
	ptr, _ := abi.Unpack(packed)
	hostWriteByteArray(uint64(ref), ptr, offset, int32(len(src)))
	abi.Free(packed)
}

// --- flight loops ---

func (b *bridge) CreateFlightLoop(phase int32, fn ports.FlightLoopFunc, token entities.Token) entities.RawHandle {
	b.flightLoopFns[token] = fn
	id := entities.RawHandle(hostCreateFlightLoop(phase, uint64(token)))
	if id == 0 {
		delete(b.flightLoopFns, token)
		return 0
	}
	b.loopTokens[id] = token
	return id
}

func (b *bridge) DestroyFlightLoop(id entities.RawHandle) {
	hostDestroyFlightLoop(uint64(id))
	if token, ok := b.loopTokens[id]; ok {
		delete(b.loopTokens, id)
		delete(b.flightLoopFns, token)
	}
}

func (b *bridge) ScheduleFlightLoop(id entities.RawHandle, interval float32, relativeToNow bool) {
	hostScheduleFlightLoop(uint64(id), interval, rawBool(relativeToNow))
}

func (b *bridge) ElapsedTime() float32 { return hostElapsedTime() }

func (b *bridge) CycleNumber() int32 { return hostCycleNumber() }

// --- windows ---

func (b *bridge) CreateWindow(req ports.CreateWindowRequest) entities.RawHandle {
	b.windowCbs[req.Token] = req.Callbacks
	id := entities.RawHandle(hostCreateWindow(
		req.Left, req.Top, req.Right, req.Bottom, rawBool(req.Visible), uint64(req.Token)))
	if id == 0 {
		delete(b.windowCbs, req.Token)
		return 0
	}
	b.windowTokens[id] = req.Token
	return id
}

func (b *bridge) DestroyWindow(id entities.RawHandle) {
	hostDestroyWindow(uint64(id))
	if token, ok := b.windowTokens[id]; ok {
		delete(b.windowTokens, id)
		delete(b.windowCbs, token)
	}
}

func (b *bridge) SetWindowVisible(id entities.RawHandle, visible bool) {
	hostSetWindowVisible(uint64(id), rawBool(visible))
}

func (b *bridge) IsWindowVisible(id entities.RawHandle) bool {
	return hostIsWindowVisible(uint64(id)) != 0
}

func (b *bridge) SetWindowTitle(id entities.RawHandle, title string) {
	withString(title, func(packed uint64) { hostSetWindowTitle(uint64(id), packed) })
}

func (b *bridge) TakeKeyboardFocus(id entities.RawHandle) {
	hostTakeKeyboardFocus(uint64(id))
}

func (b *bridge) HasKeyboardFocus(id entities.RawHandle) bool {
	return hostHasKeyboardFocus(uint64(id)) != 0
}

// --- commands ---

func (b *bridge) FindCommand(name string) entities.RawHandle {
	var raw uint64
	withString(name, func(packed uint64) { raw = hostFindCommand(packed) })
	return entities.RawHandle(raw)
}

func (b *bridge) CreateCommand(name, description string) entities.RawHandle {
	namePacked := abi.PtrFromBytes([]byte(name))
	descPacked := abi.PtrFromBytes([]byte(description))
	raw := hostCreateCommand(namePacked, descPacked)
	abi.Free(namePacked)
	abi.Free(descPacked)
	return entities.RawHandle(raw)
}

func (b *bridge) RegisterCommandHandler(ref entities.RawHandle, fn ports.CommandFunc, before int32, token entities.Token) {
	b.commandFns[token] = fn
	hostRegisterCommandHandler(uint64(ref), before, uint64(token))
}

func (b *bridge) UnregisterCommandHandler(ref entities.RawHandle, _ ports.CommandFunc, before int32, token entities.Token) {
	// The host side matches the registration tuple by token; the adapter
	// holds the host-side closure.
	hostUnregisterCommandHandler(uint64(ref), before, uint64(token))
	delete(b.commandFns, token)
}

func (b *bridge) CommandOnce(ref entities.RawHandle) { hostCommandOnce(uint64(ref)) }

func (b *bridge) CommandBegin(ref entities.RawHandle) { hostCommandBegin(uint64(ref)) }

func (b *bridge) CommandEnd(ref entities.RawHandle) { hostCommandEnd(uint64(ref)) }

// --- menus ---

func (b *bridge) PluginsMenu() entities.RawHandle {
	return entities.RawHandle(hostPluginsMenu())
}

func (b *bridge) CreateMenu(name string, parent entities.RawHandle, parentItem int32, fn ports.MenuFunc, token entities.Token) entities.RawHandle {
	b.menuFns[token] = fn
	var raw uint64
	withString(name, func(packed uint64) {
		raw = hostCreateMenu(packed, uint64(parent), parentItem, uint64(token))
	})
	id := entities.RawHandle(raw)
	if id == 0 {
		delete(b.menuFns, token)
		return 0
	}
	b.menuTokens[id] = token
	return id
}

func (b *bridge) DestroyMenu(id entities.RawHandle) {
	hostDestroyMenu(uint64(id))
	if token, ok := b.menuTokens[id]; ok {
		delete(b.menuTokens, id)
		delete(b.menuFns, token)
	}
}

func (b *bridge) AppendMenuItem(id entities.RawHandle, name string, itemRef int32) int32 {
	var index int32
	withString(name, func(packed uint64) {
		index = hostAppendMenuItem(uint64(id), packed, itemRef)
	})
	return index
}

func (b *bridge) AppendMenuSeparator(id entities.RawHandle) {
	hostAppendMenuSeparator(uint64(id))
}

func (b *bridge) CheckMenuItem(id entities.RawHandle, index int32, checked bool) {
	hostCheckMenuItem(uint64(id), index, rawBool(checked))
}

func (b *bridge) ClearAllMenuItems(id entities.RawHandle) {
	hostClearAllMenuItems(uint64(id))
}

// --- plugin registry ---

func (b *bridge) MyID() int32 { return hostGetMyID() }

func (b *bridge) CountPlugins() int32 { return hostCountPlugins() }

func (b *bridge) NthPlugin(index int32) int32 { return hostGetNthPlugin(index) }

func (b *bridge) FindPluginByPath(path string) int32 {
	var id int32
	withString(path, func(packed uint64) { id = hostFindPluginByPath(packed) })
	return id
}

func (b *bridge) FindPluginBySignature(signature string) int32 {
	var id int32
	withString(signature, func(packed uint64) { id = hostFindPluginBySignature(packed) })
	return id
}

func (b *bridge) PluginInfo(id int32) ports.RawPluginInfo {
	var info ports.RawPluginInfo
	payload := takePayload(hostGetPluginInfo(id))
	if payload != nil {
		_ = json.Unmarshal(payload, &info)
	}
	return info
}

func (b *bridge) IsPluginEnabled(id int32) bool {
	return hostIsPluginEnabled(id) != 0
}

func (b *bridge) SendMessage(target int32, broadcast bool, code int32, param uintptr) {
	hostSendMessage(target, rawBool(broadcast), code, uint64(param))
}

// --- diagnostics ---

func (b *bridge) DebugString(message string) {
	withString(message, func(packed uint64) { hostDebugString(packed) })
}

func (b *bridge) SpeakString(message string) {
	withString(message, func(packed uint64) { hostSpeakString(packed) })
}

func (b *bridge) SetErrorCallback(fn ports.ErrorFunc) {
	b.errorFn = fn
	hostSetErrorCallback()
}
