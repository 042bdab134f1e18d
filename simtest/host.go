package simtest

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// DataRefSpec is the scripted state behind one fake data ref. Scalar fields
// and array backings are read and written by the DataAccess methods
// according to the ref's type tag bitmap.
type DataRefSpec struct {
	Types    uint32
	Writable bool
	Orphaned bool
	Owner    int32

	Int    int32
	Float  float32
	Double float64
	Ints   []int32
	Floats []float32
	Bytes  []byte
}

// FlightLoopReg is a recorded flight loop registration.
type FlightLoopReg struct {
	Phase    int32
	Fn       ports.FlightLoopFunc
	FnPtr    uintptr
	Token    entities.Token
	Interval float32
	Relative bool
}

// CommandReg is a recorded command handler registration tuple.
type CommandReg struct {
	Ref    entities.RawHandle
	FnPtr  uintptr
	Before int32
	Token  entities.Token
}

// MenuSpec is a recorded menu with its items.
type MenuSpec struct {
	Name       string
	Parent     entities.RawHandle
	ParentItem int32
	Fn         ports.MenuFunc
	Token      entities.Token
	Items      []MenuItem
}

// MenuItem is one appended menu entry.
type MenuItem struct {
	Name      string
	ItemRef   int32
	Separator bool
	Checked   bool
}

// SentMessage records one SendMessage call.
type SentMessage struct {
	Target    int32
	Broadcast bool
	Code      int32
	Param     uintptr
}

// Host is a scripted in-memory implementation of every domain port.
// The zero value is not usable; construct with NewHost.
type Host struct {
	// Calls is the ordered trace of raw host calls received, by method
	// name. Tests assert against it to prove a code path did or did not
	// reach the host.
	Calls []string

	dataRefs   map[string]entities.RawHandle
	specs      map[entities.RawHandle]*DataRefSpec
	nextHandle entities.RawHandle

	FlightLoops          map[entities.RawHandle]*FlightLoopReg
	DestroyedFlightLoops []entities.RawHandle

	commands       map[string]entities.RawHandle
	commandFns     []ports.CommandFunc
	CommandRegs    []CommandReg
	CommandUnregs  []CommandReg
	CommandPresses []entities.RawHandle
	commandsHeld   map[entities.RawHandle]int
	CommandBegins  []entities.RawHandle
	CommandEnds    []entities.RawHandle

	Windows          map[entities.RawHandle]ports.CreateWindowRequest
	DestroyedWindows []entities.RawHandle
	windowVisible    map[entities.RawHandle]bool
	windowTitles     map[entities.RawHandle]string
	focused          entities.RawHandle

	Menus          map[entities.RawHandle]*MenuSpec
	DestroyedMenus []entities.RawHandle
	pluginsMenu    entities.RawHandle

	SelfID   int32
	Plugins  map[int32]ports.RawPluginInfo
	Enabled  map[int32]bool
	Messages []SentMessage

	DebugLines []string
	Spoken     []string
	ErrorFn    ports.ErrorFunc

	Elapsed float32
	Cycle   int32
}

var (
	_ ports.DataAccess          = (*Host)(nil)
	_ ports.FlightLoopScheduler = (*Host)(nil)
	_ ports.Commands            = (*Host)(nil)
	_ ports.Windowing           = (*Host)(nil)
	_ ports.Menus               = (*Host)(nil)
	_ ports.PluginRegistry      = (*Host)(nil)
	_ ports.Diagnostics         = (*Host)(nil)
)

// NewHost returns an empty scripted host.
func NewHost() *Host {
	return &Host{
		dataRefs:      make(map[string]entities.RawHandle),
		specs:         make(map[entities.RawHandle]*DataRefSpec),
		nextHandle:    0x1000,
		FlightLoops:   make(map[entities.RawHandle]*FlightLoopReg),
		commands:      make(map[string]entities.RawHandle),
		commandsHeld:  make(map[entities.RawHandle]int),
		Windows:       make(map[entities.RawHandle]ports.CreateWindowRequest),
		windowVisible: make(map[entities.RawHandle]bool),
		windowTitles:  make(map[entities.RawHandle]string),
		Menus:         make(map[entities.RawHandle]*MenuSpec),
		pluginsMenu:   0x10,
		SelfID:        1,
		Plugins:       make(map[int32]ports.RawPluginInfo),
		Enabled:       make(map[int32]bool),
	}
}

func (h *Host) record(name string) {
	h.Calls = append(h.Calls, name)
}

// CallCount returns how many times the named raw call was received.
func (h *Host) CallCount(name string) int {
	n := 0
	for _, c := range h.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (h *Host) mint() entities.RawHandle {
	h.nextHandle++
	return h.nextHandle
}

// AddDataRef scripts a data ref under the given name and returns its raw
// handle.
func (h *Host) AddDataRef(name string, spec DataRefSpec) entities.RawHandle {
	raw := h.mint()
	h.dataRefs[name] = raw
	h.specs[raw] = &spec
	return raw
}

// Spec returns the scripted state behind a raw data ref for mutation from
// tests, e.g. to orphan a ref or revoke writability mid-test.
func (h *Host) Spec(raw entities.RawHandle) *DataRefSpec {
	return h.specs[raw]
}

// FuncPtr returns the code pointer identity of a callback, the value hosts
// use to match registration and unregistration tuples.
func FuncPtr(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// --- ports.DataAccess ---

func (h *Host) FindDataRef(name string) entities.RawHandle {
	h.record("FindDataRef")
	return h.dataRefs[name]
}

func (h *Host) CountDataRefs() int32 {
	h.record("CountDataRefs")
	return int32(len(h.dataRefs))
}

func (h *Host) DataRefsByIndex(offset, count int32) []entities.RawHandle {
	h.record("DataRefsByIndex")
	all := make([]entities.RawHandle, 0, len(h.dataRefs))
	for _, raw := range h.dataRefs {
		all = append(all, raw)
	}
	if offset >= int32(len(all)) {
		return nil
	}
	end := offset + count
	if end > int32(len(all)) {
		end = int32(len(all))
	}
	return all[offset:end]
}

func (h *Host) DataRefInfo(ref entities.RawHandle) ports.RawDataRefInfo {
	h.record("DataRefInfo")
	spec, ok := h.specs[ref]
	if !ok {
		return ports.RawDataRefInfo{}
	}
	name := ""
	for n, raw := range h.dataRefs {
		if raw == ref {
			name = n
			break
		}
	}
	return ports.RawDataRefInfo{
		Name:     name,
		Types:    spec.Types,
		Writable: spec.Writable,
		Owner:    spec.Owner,
	}
}

func (h *Host) IsDataRefGood(ref entities.RawHandle) bool {
	h.record("IsDataRefGood")
	spec, ok := h.specs[ref]
	return ok && !spec.Orphaned
}

func (h *Host) CanWriteDataRef(ref entities.RawHandle) bool {
	h.record("CanWriteDataRef")
	spec, ok := h.specs[ref]
	return ok && spec.Writable
}

func (h *Host) DataRefTypes(ref entities.RawHandle) uint32 {
	h.record("DataRefTypes")
	if spec, ok := h.specs[ref]; ok {
		return spec.Types
	}
	return 0
}

func (h *Host) GetDataInt(ref entities.RawHandle) int32 {
	h.record("GetDataInt")
	if spec, ok := h.specs[ref]; ok {
		return spec.Int
	}
	return 0
}

func (h *Host) SetDataInt(ref entities.RawHandle, value int32) {
	h.record("SetDataInt")
	if spec, ok := h.specs[ref]; ok && spec.Writable {
		spec.Int = value
	}
}

func (h *Host) GetDataFloat(ref entities.RawHandle) float32 {
	h.record("GetDataFloat")
	if spec, ok := h.specs[ref]; ok {
		return spec.Float
	}
	return 0
}

func (h *Host) SetDataFloat(ref entities.RawHandle, value float32) {
	h.record("SetDataFloat")
	if spec, ok := h.specs[ref]; ok && spec.Writable {
		spec.Float = value
	}
}

func (h *Host) GetDataDouble(ref entities.RawHandle) float64 {
	h.record("GetDataDouble")
	if spec, ok := h.specs[ref]; ok {
		return spec.Double
	}
	return 0
}

func (h *Host) SetDataDouble(ref entities.RawHandle, value float64) {
	h.record("SetDataDouble")
	if spec, ok := h.specs[ref]; ok && spec.Writable {
		spec.Double = value
	}
}

func (h *Host) ReadIntArray(ref entities.RawHandle, offset int32, dest []int32) int32 {
	h.record("ReadIntArray")
	if spec, ok := h.specs[ref]; ok {
		return int32(copyWindow(dest, spec.Ints, offset))
	}
	return 0
}

func (h *Host) WriteIntArray(ref entities.RawHandle, offset int32, src []int32) {
	h.record("WriteIntArray")
	if spec, ok := h.specs[ref]; ok && spec.Writable {
		copyWindow(spec.Ints[minInt32(offset, int32(len(spec.Ints))):], src, 0)
	}
}

func (h *Host) ReadFloatArray(ref entities.RawHandle, offset int32, dest []float32) int32 {
	h.record("ReadFloatArray")
	if spec, ok := h.specs[ref]; ok {
		return int32(copyWindow(dest, spec.Floats, offset))
	}
	return 0
}

func (h *Host) WriteFloatArray(ref entities.RawHandle, offset int32, src []float32) {
	h.record("WriteFloatArray")
	if spec, ok := h.specs[ref]; ok && spec.Writable {
		copyWindow(spec.Floats[minInt32(offset, int32(len(spec.Floats))):], src, 0)
	}
}

func (h *Host) ReadByteArray(ref entities.RawHandle, offset int32, dest []byte) int32 {
	h.record("ReadByteArray")
	if spec, ok := h.specs[ref]; ok {
		return int32(copyWindow(dest, spec.Bytes, offset))
	}
	return 0
}

func (h *Host) WriteByteArray(ref entities.RawHandle, offset int32, src []byte) {
	h.record("WriteByteArray")
	if spec, ok := h.specs[ref]; ok && spec.Writable {
		copyWindow(spec.Bytes[minInt32(offset, int32(len(spec.Bytes))):], src, 0)
	}
}

func copyWindow[E any](dest []E, src []E, offset int32) int {
	if offset >= int32(len(src)) {
		return 0
	}
	return copy(dest, src[offset:])
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// --- ports.FlightLoopScheduler ---

func (h *Host) CreateFlightLoop(phase int32, fn ports.FlightLoopFunc, token entities.Token) entities.RawHandle {
	h.record("CreateFlightLoop")
	id := h.mint()
	h.FlightLoops[id] = &FlightLoopReg{
		Phase: phase,
		Fn:    fn,
		FnPtr: FuncPtr(fn),
		Token: token,
	}
	return id
}

func (h *Host) DestroyFlightLoop(id entities.RawHandle) {
	h.record("DestroyFlightLoop")
	delete(h.FlightLoops, id)
	h.DestroyedFlightLoops = append(h.DestroyedFlightLoops, id)
}

func (h *Host) ScheduleFlightLoop(id entities.RawHandle, interval float32, relativeToNow bool) {
	h.record("ScheduleFlightLoop")
	if reg, ok := h.FlightLoops[id]; ok {
		reg.Interval = interval
		reg.Relative = relativeToNow
	}
}

func (h *Host) ElapsedTime() float32 {
	h.record("ElapsedTime")
	return h.Elapsed
}

func (h *Host) CycleNumber() int32 {
	h.record("CycleNumber")
	return h.Cycle
}

// FireFlightLoop drives one firing of a registered flight loop the way the
// host would, passing back the registration token, and returns the
// callback's renegotiated interval.
func (h *Host) FireFlightLoop(id entities.RawHandle, sinceCall, sinceLoop float32, counter int32) float32 {
	reg, ok := h.FlightLoops[id]
	if !ok {
		panic(fmt.Sprintf("simtest: firing unknown flight loop %#x", uintptr(id)))
	}
	return reg.Fn(sinceCall, sinceLoop, counter, reg.Token)
}

// --- ports.Commands ---

// AddCommand scripts a pre-existing host command and returns its raw ref.
func (h *Host) AddCommand(name string) entities.RawHandle {
	ref := h.mint()
	h.commands[name] = ref
	return ref
}

func (h *Host) FindCommand(name string) entities.RawHandle {
	h.record("FindCommand")
	return h.commands[name]
}

func (h *Host) CreateCommand(name, description string) entities.RawHandle {
	h.record("CreateCommand")
	if ref, ok := h.commands[name]; ok {
		return ref
	}
	ref := h.mint()
	h.commands[name] = ref
	return ref
}

func (h *Host) RegisterCommandHandler(ref entities.RawHandle, fn ports.CommandFunc, before int32, token entities.Token) {
	h.record("RegisterCommandHandler")
	h.CommandRegs = append(h.CommandRegs, CommandReg{Ref: ref, FnPtr: FuncPtr(fn), Before: before, Token: token})
	h.commandFns = append(h.commandFns, fn)
}

func (h *Host) UnregisterCommandHandler(ref entities.RawHandle, fn ports.CommandFunc, before int32, token entities.Token) {
	h.record("UnregisterCommandHandler")
	tuple := CommandReg{Ref: ref, FnPtr: FuncPtr(fn), Before: before, Token: token}
	h.CommandUnregs = append(h.CommandUnregs, tuple)
	for i, reg := range h.CommandRegs {
		if reg == tuple {
			h.CommandRegs = append(h.CommandRegs[:i], h.CommandRegs[i+1:]...)
			h.commandFns = append(h.commandFns[:i], h.commandFns[i+1:]...)
			break
		}
	}
}

func (h *Host) CommandOnce(ref entities.RawHandle) {
	h.record("CommandOnce")
	h.CommandPresses = append(h.CommandPresses, ref)
}

func (h *Host) CommandBegin(ref entities.RawHandle) {
	h.record("CommandBegin")
	h.commandsHeld[ref]++
	h.CommandBegins = append(h.CommandBegins, ref)
}

func (h *Host) CommandEnd(ref entities.RawHandle) {
	h.record("CommandEnd")
	h.commandsHeld[ref]--
	h.CommandEnds = append(h.CommandEnds, ref)
}

// FireCommand drives one command phase through every registration attached
// to the command, in registration order, stopping early if a handler
// returns the host's "stop processing" sentinel (zero). It reports whether
// processing ran to completion.
func (h *Host) FireCommand(ref entities.RawHandle, phase int32) bool {
	for i, reg := range h.CommandRegs {
		if reg.Ref != ref {
			continue
		}
		if h.commandFns[i](ref, phase, reg.Token) == 0 {
			return false
		}
	}
	return true
}

// --- ports.Windowing ---

func (h *Host) CreateWindow(req ports.CreateWindowRequest) entities.RawHandle {
	h.record("CreateWindow")
	id := h.mint()
	h.Windows[id] = req
	h.windowVisible[id] = req.Visible
	return id
}

func (h *Host) DestroyWindow(id entities.RawHandle) {
	h.record("DestroyWindow")
	delete(h.Windows, id)
	h.DestroyedWindows = append(h.DestroyedWindows, id)
}

func (h *Host) SetWindowVisible(id entities.RawHandle, visible bool) {
	h.record("SetWindowVisible")
	h.windowVisible[id] = visible
}

func (h *Host) IsWindowVisible(id entities.RawHandle) bool {
	h.record("IsWindowVisible")
	return h.windowVisible[id]
}

func (h *Host) SetWindowTitle(id entities.RawHandle, title string) {
	h.record("SetWindowTitle")
	h.windowTitles[id] = title
}

// WindowTitle returns the last title set for a window.
func (h *Host) WindowTitle(id entities.RawHandle) string {
	return h.windowTitles[id]
}

func (h *Host) TakeKeyboardFocus(id entities.RawHandle) {
	h.record("TakeKeyboardFocus")
	h.focused = id
}

func (h *Host) HasKeyboardFocus(id entities.RawHandle) bool {
	h.record("HasKeyboardFocus")
	return h.focused == id
}

// FireDraw drives a window's draw callback.
func (h *Host) FireDraw(id entities.RawHandle) {
	req := h.Windows[id]
	req.Callbacks.Draw(id, req.Token)
}

// FireMouseClick drives a window's mouse callback and returns the raw
// consume/propagate sentinel.
func (h *Host) FireMouseClick(id entities.RawHandle, x, y, status int32) int32 {
	req := h.Windows[id]
	return req.Callbacks.MouseClick(id, x, y, status, req.Token)
}

// FireKey drives a window's keyboard callback.
func (h *Host) FireKey(id entities.RawHandle, key byte, flags int32, virtualKey byte, losingFocus int32) {
	req := h.Windows[id]
	req.Callbacks.Key(id, key, flags, virtualKey, req.Token, losingFocus)
}

// FireCursor drives a window's cursor callback and returns the raw cursor
// status.
func (h *Host) FireCursor(id entities.RawHandle, x, y int32) int32 {
	req := h.Windows[id]
	return req.Callbacks.Cursor(id, x, y, req.Token)
}

// FireWheel drives a window's wheel callback and returns the raw
// consume/propagate sentinel.
func (h *Host) FireWheel(id entities.RawHandle, x, y, wheel, clicks int32) int32 {
	req := h.Windows[id]
	return req.Callbacks.Wheel(id, x, y, wheel, clicks, req.Token)
}

// --- ports.Menus ---

func (h *Host) PluginsMenu() entities.RawHandle {
	h.record("PluginsMenu")
	return h.pluginsMenu
}

func (h *Host) CreateMenu(name string, parent entities.RawHandle, parentItem int32, fn ports.MenuFunc, token entities.Token) entities.RawHandle {
	h.record("CreateMenu")
	id := h.mint()
	h.Menus[id] = &MenuSpec{Name: name, Parent: parent, ParentItem: parentItem, Fn: fn, Token: token}
	return id
}

func (h *Host) DestroyMenu(id entities.RawHandle) {
	h.record("DestroyMenu")
	delete(h.Menus, id)
	h.DestroyedMenus = append(h.DestroyedMenus, id)
}

func (h *Host) AppendMenuItem(id entities.RawHandle, name string, itemRef int32) int32 {
	h.record("AppendMenuItem")
	menu, ok := h.Menus[id]
	if !ok {
		return -1
	}
	menu.Items = append(menu.Items, MenuItem{Name: name, ItemRef: itemRef})
	return int32(len(menu.Items) - 1)
}

func (h *Host) AppendMenuSeparator(id entities.RawHandle) {
	h.record("AppendMenuSeparator")
	if menu, ok := h.Menus[id]; ok {
		menu.Items = append(menu.Items, MenuItem{Separator: true})
	}
}

func (h *Host) CheckMenuItem(id entities.RawHandle, index int32, checked bool) {
	h.record("CheckMenuItem")
	if menu, ok := h.Menus[id]; ok && index >= 0 && int(index) < len(menu.Items) {
		menu.Items[index].Checked = checked
	}
}

func (h *Host) ClearAllMenuItems(id entities.RawHandle) {
	h.record("ClearAllMenuItems")
	if menu, ok := h.Menus[id]; ok {
		menu.Items = nil
	}
}

// FireMenuSelect drives a menu's selection callback with the given item
// reference value.
func (h *Host) FireMenuSelect(id entities.RawHandle, itemRef int32) {
	menu := h.Menus[id]
	menu.Fn(id, itemRef, menu.Token)
}

// --- ports.PluginRegistry ---

// AddPlugin scripts a loaded plugin under the given id.
func (h *Host) AddPlugin(id int32, info ports.RawPluginInfo, enabled bool) {
	h.Plugins[id] = info
	h.Enabled[id] = enabled
}

func (h *Host) MyID() int32 {
	h.record("MyID")
	return h.SelfID
}

func (h *Host) CountPlugins() int32 {
	h.record("CountPlugins")
	return int32(len(h.Plugins))
}

func (h *Host) NthPlugin(index int32) int32 {
	h.record("NthPlugin")
	ids := make([]int32, 0, len(h.Plugins))
	for id := range h.Plugins {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	if index < 0 || index >= int32(len(ids)) {
		return entities.PluginIDNone
	}
	return ids[index]
}

func (h *Host) FindPluginByPath(path string) int32 {
	h.record("FindPluginByPath")
	for id, info := range h.Plugins {
		if info.FilePath == path {
			return id
		}
	}
	return entities.PluginIDNone
}

func (h *Host) FindPluginBySignature(signature string) int32 {
	h.record("FindPluginBySignature")
	for id, info := range h.Plugins {
		if info.Signature == signature {
			return id
		}
	}
	return entities.PluginIDNone
}

func (h *Host) PluginInfo(id int32) ports.RawPluginInfo {
	h.record("PluginInfo")
	return h.Plugins[id]
}

func (h *Host) IsPluginEnabled(id int32) bool {
	h.record("IsPluginEnabled")
	return h.Enabled[id]
}

func (h *Host) SendMessage(target int32, broadcast bool, code int32, param uintptr) {
	h.record("SendMessage")
	h.Messages = append(h.Messages, SentMessage{Target: target, Broadcast: broadcast, Code: code, Param: param})
}

// --- ports.Diagnostics ---

func (h *Host) DebugString(message string) {
	h.record("DebugString")
	h.DebugLines = append(h.DebugLines, message)
}

func (h *Host) SpeakString(message string) {
	h.record("SpeakString")
	h.Spoken = append(h.Spoken, message)
}

func (h *Host) SetErrorCallback(fn ports.ErrorFunc) {
	h.record("SetErrorCallback")
	h.ErrorFn = fn
}
