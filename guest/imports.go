//go:build wasip1

package guest

// Imports from the simbridge_host module, mirroring the exports built by
// infrastructure/wazero. Strings and payloads travel as packed ptr+len
// i64 values; handles and tokens as i64.

//go:wasmimport simbridge_host find_data_ref
func hostFindDataRef(name uint64) uint64

//go:wasmimport simbridge_host count_data_refs
func hostCountDataRefs() int32

//go:wasmimport simbridge_host data_refs_by_index
func hostDataRefsByIndex(offset, count int32, ptr uint32) int32

//go:wasmimport simbridge_host data_ref_info
func hostDataRefInfo(ref uint64) uint64

//go:wasmimport simbridge_host is_data_ref_good
func hostIsDataRefGood(ref uint64) int32

//go:wasmimport simbridge_host can_write_data_ref
func hostCanWriteDataRef(ref uint64) int32

//go:wasmimport simbridge_host data_ref_types
func hostDataRefTypes(ref uint64) int32

//go:wasmimport simbridge_host get_data_int
func hostGetDataInt(ref uint64) int32

//go:wasmimport simbridge_host set_data_int
func hostSetDataInt(ref uint64, value int32)

//go:wasmimport simbridge_host get_data_float
func hostGetDataFloat(ref uint64) float32

//go:wasmimport simbridge_host set_data_float
func hostSetDataFloat(ref uint64, value float32)

//go:wasmimport simbridge_host get_data_double
func hostGetDataDouble(ref uint64) float64

//go:wasmimport simbridge_host set_data_double
func hostSetDataDouble(ref uint64, value float64)

//go:wasmimport simbridge_host read_int_array
func hostReadIntArray(ref uint64, ptr uint32, offset, count int32) int32

//go:wasmimport simbridge_host write_int_array
func hostWriteIntArray(ref uint64, ptr uint32, offset, count int32)

//go:wasmimport simbridge_host read_float_array
func hostReadFloatArray(ref uint64, ptr uint32, offset, count int32) int32

//go:wasmimport simbridge_host write_float_array
func hostWriteFloatArray(ref uint64, ptr uint32, offset, count int32)

//go:wasmimport simbridge_host read_byte_array
func hostReadByteArray(ref uint64, ptr uint32, offset, count int32) int32

//go:wasmimport simbridge_host write_byte_array
func hostWriteByteArray(ref uint64, ptr uint32, offset, count int32)

//go:wasmimport simbridge_host create_flight_loop
func hostCreateFlightLoop(phase int32, token uint64) uint64

//go:wasmimport simbridge_host destroy_flight_loop
func hostDestroyFlightLoop(id uint64)

//go:wasmimport simbridge_host schedule_flight_loop
func hostScheduleFlightLoop(id uint64, interval float32, relativeToNow int32)

//go:wasmimport simbridge_host elapsed_time
func hostElapsedTime() float32

//go:wasmimport simbridge_host cycle_number
func hostCycleNumber() int32

//go:wasmimport simbridge_host create_window
func hostCreateWindow(left, top, right, bottom, visible int32, token uint64) uint64

//go:wasmimport simbridge_host destroy_window
func hostDestroyWindow(id uint64)

//go:wasmimport simbridge_host set_window_visible
func hostSetWindowVisible(id uint64, visible int32)

//go:wasmimport simbridge_host is_window_visible
func hostIsWindowVisible(id uint64) int32

//go:wasmimport simbridge_host set_window_title
func hostSetWindowTitle(id uint64, title uint64)

//go:wasmimport simbridge_host take_keyboard_focus
func hostTakeKeyboardFocus(id uint64)

//go:wasmimport simbridge_host has_keyboard_focus
func hostHasKeyboardFocus(id uint64) int32

//go:wasmimport simbridge_host find_command
func hostFindCommand(name uint64) uint64

//go:wasmimport simbridge_host create_command
func hostCreateCommand(name, description uint64) uint64

//go:wasmimport simbridge_host register_command_handler
func hostRegisterCommandHandler(ref uint64, before int32, token uint64)

//go:wasmimport simbridge_host unregister_command_handler
func hostUnregisterCommandHandler(ref uint64, before int32, token uint64)

//go:wasmimport simbridge_host command_once
func hostCommandOnce(ref uint64)

//go:wasmimport simbridge_host command_begin
func hostCommandBegin(ref uint64)

//go:wasmimport simbridge_host command_end
func hostCommandEnd(ref uint64)

//go:wasmimport simbridge_host plugins_menu
func hostPluginsMenu() uint64

//go:wasmimport simbridge_host create_menu
func hostCreateMenu(name, parent uint64, parentItem int32, token uint64) uint64

//go:wasmimport simbridge_host destroy_menu
func hostDestroyMenu(id uint64)

//go:wasmimport simbridge_host append_menu_item
func hostAppendMenuItem(id, name uint64, itemRef int32) int32

//go:wasmimport simbridge_host append_menu_separator
func hostAppendMenuSeparator(id uint64)

//go:wasmimport simbridge_host check_menu_item
func hostCheckMenuItem(id uint64, index, checked int32)

//go:wasmimport simbridge_host clear_all_menu_items
func hostClearAllMenuItems(id uint64)

//go:wasmimport simbridge_host get_my_id
func hostGetMyID() int32

//go:wasmimport simbridge_host count_plugins
func hostCountPlugins() int32

//go:wasmimport simbridge_host get_nth_plugin
func hostGetNthPlugin(index int32) int32

//go:wasmimport simbridge_host find_plugin_by_path
func hostFindPluginByPath(path uint64) int32

//go:wasmimport simbridge_host find_plugin_by_signature
func hostFindPluginBySignature(signature uint64) int32

//go:wasmimport simbridge_host get_plugin_info
func hostGetPluginInfo(id int32) uint64

//go:wasmimport simbridge_host is_plugin_enabled
func hostIsPluginEnabled(id int32) int32

//go:wasmimport simbridge_host send_message
func hostSendMessage(target, broadcast, code int32, param uint64)

//go:wasmimport simbridge_host debug_string
func hostDebugString(message uint64)

//go:wasmimport simbridge_host speak_string
func hostSpeakString(message uint64)

//go:wasmimport simbridge_host set_error_callback
func hostSetErrorCallback()
