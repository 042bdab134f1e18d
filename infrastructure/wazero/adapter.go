package wazero

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	sdk "github.com/simbridge-dev/simbridge-sdk"
	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// DefaultMaxStringLen caps guest strings read from linear memory.
const DefaultMaxStringLen = 64 * 1024

// DefaultMaxArrayLen caps guest array transfers, in elements.
const DefaultMaxArrayLen = 1 << 20

// AdapterConfig holds configuration for the wazero adapter.
type AdapterConfig struct {
	// ModuleName is the host module name (default: "simbridge_host").
	ModuleName string

	// MaxStringLen limits guest string reads.
	MaxStringLen uint32

	// MaxArrayLen limits guest array transfers, in elements.
	MaxArrayLen int32
}

// AdapterOption configures the adapter.
type AdapterOption func(*AdapterConfig)

// WithModuleName sets the host module name (default: "simbridge_host").
func WithModuleName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		c.ModuleName = name
	}
}

// WithMaxStringLen sets the maximum guest string length.
func WithMaxStringLen(n uint32) AdapterOption {
	return func(c *AdapterConfig) {
		c.MaxStringLen = n
	}
}

// WithMaxArrayLen sets the maximum guest array transfer, in elements.
func WithMaxArrayLen(n int32) AdapterOption {
	return func(c *AdapterConfig) {
		c.MaxArrayLen = n
	}
}

func defaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		ModuleName:   "simbridge_host",
		MaxStringLen: DefaultMaxStringLen,
		MaxArrayLen:  DefaultMaxArrayLen,
	}
}

// adapter bridges guest calls onto the host's domain ports. It also keeps
// the callback closures it handed to the host, so that unregistration can
// pass the identical function value back.
type adapter struct {
	host sdk.Host
	cfg  AdapterConfig

	mu         sync.Mutex
	commandFns map[entities.Token]ports.CommandFunc
}

// Register instantiates the host module exposing the given host to WASM
// plugins instantiated later in the same runtime.
func Register(ctx context.Context, runtime wazero.Runtime, host sdk.Host, opts ...AdapterOption) error {
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &adapter{
		host:       host,
		cfg:        cfg,
		commandFns: make(map[entities.Token]ports.CommandFunc),
	}

	var (
		i32 = api.ValueTypeI32
		i64 = api.ValueTypeI64
		f32 = api.ValueTypeF32
		f64 = api.ValueTypeF64
	)

	builder := runtime.NewHostModuleBuilder(cfg.ModuleName)
	export := func(name string, fn api.GoModuleFunc, params, results []api.ValueType) {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(fn, params, results).
			Export(name)
	}

	// Data access.
	export("find_data_ref", a.findDataRef, []api.ValueType{i64}, []api.ValueType{i64})
	export("count_data_refs", a.countDataRefs, nil, []api.ValueType{i32})
	export("data_refs_by_index", a.dataRefsByIndex, []api.ValueType{i32, i32, i32}, []api.ValueType{i32})
	export("data_ref_info", a.dataRefInfo, []api.ValueType{i64}, []api.ValueType{i64})
	export("is_data_ref_good", a.isDataRefGood, []api.ValueType{i64}, []api.ValueType{i32})
	export("can_write_data_ref", a.canWriteDataRef, []api.ValueType{i64}, []api.ValueType{i32})
	export("data_ref_types", a.dataRefTypes, []api.ValueType{i64}, []api.ValueType{i32})
	export("get_data_int", a.getDataInt, []api.ValueType{i64}, []api.ValueType{i32})
	export("set_data_int", a.setDataInt, []api.ValueType{i64, i32}, nil)
	export("get_data_float", a.getDataFloat, []api.ValueType{i64}, []api.ValueType{f32})
	export("set_data_float", a.setDataFloat, []api.ValueType{i64, f32}, nil)
	export("get_data_double", a.getDataDouble, []api.ValueType{i64}, []api.ValueType{f64})
	export("set_data_double", a.setDataDouble, []api.ValueType{i64, f64}, nil)
	export("read_int_array", a.readIntArray, []api.ValueType{i64, i32, i32, i32}, []api.ValueType{i32})
	export("write_int_array", a.writeIntArray, []api.ValueType{i64, i32, i32, i32}, nil)
	export("read_float_array", a.readFloatArray, []api.ValueType{i64, i32, i32, i32}, []api.ValueType{i32})
	export("write_float_array", a.writeFloatArray, []api.ValueType{i64, i32, i32, i32}, nil)
	export("read_byte_array", a.readByteArray, []api.ValueType{i64, i32, i32, i32}, []api.ValueType{i32})
	export("write_byte_array", a.writeByteArray, []api.ValueType{i64, i32, i32, i32}, nil)

	// Flight loops.
	export("create_flight_loop", a.createFlightLoop, []api.ValueType{i32, i64}, []api.ValueType{i64})
	export("destroy_flight_loop", a.destroyFlightLoop, []api.ValueType{i64}, nil)
	export("schedule_flight_loop", a.scheduleFlightLoop, []api.ValueType{i64, f32, i32}, nil)
	export("elapsed_time", a.elapsedTime, nil, []api.ValueType{f32})
	export("cycle_number", a.cycleNumber, nil, []api.ValueType{i32})

	// Windows.
	export("create_window", a.createWindow, []api.ValueType{i32, i32, i32, i32, i32, i64}, []api.ValueType{i64})
	export("destroy_window", a.destroyWindow, []api.ValueType{i64}, nil)
	export("set_window_visible", a.setWindowVisible, []api.ValueType{i64, i32}, nil)
	export("is_window_visible", a.isWindowVisible, []api.ValueType{i64}, []api.ValueType{i32})
	export("set_window_title", a.setWindowTitle, []api.ValueType{i64, i64}, nil)
	export("take_keyboard_focus", a.takeKeyboardFocus, []api.ValueType{i64}, nil)
	export("has_keyboard_focus", a.hasKeyboardFocus, []api.ValueType{i64}, []api.ValueType{i32})

	// Commands.
	export("find_command", a.findCommand, []api.ValueType{i64}, []api.ValueType{i64})
	export("create_command", a.createCommand, []api.ValueType{i64, i64}, []api.ValueType{i64})
	export("register_command_handler", a.registerCommandHandler, []api.ValueType{i64, i32, i64}, nil)
	export("unregister_command_handler", a.unregisterCommandHandler, []api.ValueType{i64, i32, i64}, nil)
	export("command_once", a.commandOnce, []api.ValueType{i64}, nil)
	export("command_begin", a.commandBegin, []api.ValueType{i64}, nil)
	export("command_end", a.commandEnd, []api.ValueType{i64}, nil)

	// Menus.
	export("plugins_menu", a.pluginsMenu, nil, []api.ValueType{i64})
	export("create_menu", a.createMenu, []api.ValueType{i64, i64, i32, i64}, []api.ValueType{i64})
	export("destroy_menu", a.destroyMenu, []api.ValueType{i64}, nil)
	export("append_menu_item", a.appendMenuItem, []api.ValueType{i64, i64, i32}, []api.ValueType{i32})
	export("append_menu_separator", a.appendMenuSeparator, []api.ValueType{i64}, nil)
	export("check_menu_item", a.checkMenuItem, []api.ValueType{i64, i32, i32}, nil)
	export("clear_all_menu_items", a.clearAllMenuItems, []api.ValueType{i64}, nil)

	// Plugin registry.
	export("get_my_id", a.getMyID, nil, []api.ValueType{i32})
	export("count_plugins", a.countPlugins, nil, []api.ValueType{i32})
	export("get_nth_plugin", a.getNthPlugin, []api.ValueType{i32}, []api.ValueType{i32})
	export("find_plugin_by_path", a.findPluginByPath, []api.ValueType{i64}, []api.ValueType{i32})
	export("find_plugin_by_signature", a.findPluginBySignature, []api.ValueType{i64}, []api.ValueType{i32})
	export("get_plugin_info", a.getPluginInfo, []api.ValueType{i32}, []api.ValueType{i64})
	export("is_plugin_enabled", a.isPluginEnabled, []api.ValueType{i32}, []api.ValueType{i32})
	export("send_message", a.sendMessage, []api.ValueType{i32, i32, i32, i64}, nil)

	// Diagnostics.
	export("debug_string", a.debugString, []api.ValueType{i64}, nil)
	export("speak_string", a.speakString, []api.ValueType{i64}, nil)
	export("set_error_callback", a.setErrorCallback, nil, nil)

	_, err := builder.Instantiate(ctx)
	return err
}

func boolToRaw(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
