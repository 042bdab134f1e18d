package plugin

import (
	"encoding/json"
	"log/slog"

	"github.com/go-playground/validator/v10"

	sdk "github.com/simbridge-dev/simbridge-sdk"
	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
)

var validate = validator.New()

// Lifecycle is what a plugin implements to be driven by the host. The
// instance is constructed by the Runner's start function; Enable and
// Disable may be called many times over the instance's life, Stop once.
type Lifecycle interface {
	// Enable is called when the plugin should begin doing work. Returning
	// an error tells the host the plugin could not come up.
	Enable() error

	// Disable is called when the plugin should suspend work. The instance
	// stays alive and may be enabled again.
	Disable()

	// Stop is called once before the plugin is unloaded.
	Stop()

	// ReceiveMessage delivers a decoded host or inter-plugin message.
	ReceiveMessage(msg Message)
}

// Configurable is implemented by plugin instances that accept host
// supplied settings. Configure runs after Start and before Enable;
// returning an error tells the host the settings were unusable.
type Configurable interface {
	Configure(cfg sdk.Config) error
}

// Host result codes for the start and enable entry points.
const (
	resultOK  int32 = 1
	resultErr int32 = 0
)

// Runner owns the single plugin instance and adapts the host's raw entry
// points to the Lifecycle interface. Hosts call the entry points from one
// thread, in start / enable / disable / stop order.
type Runner struct {
	descriptor entities.PluginDescriptor
	start      func() (Lifecycle, error)

	instance Lifecycle
}

// NewRunner validates the descriptor and prepares a runner that will
// construct the plugin instance with start on the host's first Start call.
func NewRunner(descriptor entities.PluginDescriptor, start func() (Lifecycle, error)) (*Runner, error) {
	if err := validate.Struct(descriptor); err != nil {
		return nil, err
	}
	return &Runner{descriptor: descriptor, start: start}, nil
}

// Descriptor returns the descriptor the plugin declares to the host.
func (r *Runner) Descriptor() entities.PluginDescriptor { return r.descriptor }

// Start constructs the plugin instance. At most one instance is live at a
// time: while it exists, repeated Starts succeed without constructing
// another, and after a failed construction the next Start retries.
func (r *Runner) Start() (out int32) {
	defer r.contain("start", &out)
	if r.instance != nil {
		return resultOK
	}

	instance, err := r.start()
	if err != nil {
		slog.Error("plugin start failed", "plugin", r.descriptor.Signature, "error", err)
		return resultErr
	}
	r.instance = instance
	return resultOK
}

// Configure delivers host-supplied settings as a JSON object. Instances
// that do not implement Configurable accept any settings silently.
func (r *Runner) Configure(raw []byte) (out int32) {
	defer r.contain("configure", &out)
	if r.instance == nil {
		return resultErr
	}

	cfg := sdk.Config{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &cfg); err != nil {
			slog.Error("plugin settings are not valid JSON",
				"plugin", r.descriptor.Signature, "error", err)
			return resultErr
		}
	}

	configurable, ok := r.instance.(Configurable)
	if !ok {
		return resultOK
	}
	if err := configurable.Configure(cfg); err != nil {
		slog.Error("plugin rejected settings", "plugin", r.descriptor.Signature, "error", err)
		return resultErr
	}
	return resultOK
}

// Enable asks the instance to begin doing work.
func (r *Runner) Enable() (out int32) {
	defer r.contain("enable", &out)
	if r.instance == nil {
		return resultErr
	}
	if err := r.instance.Enable(); err != nil {
		slog.Error("plugin enable failed", "plugin", r.descriptor.Signature, "error", err)
		return resultErr
	}
	return resultOK
}

// Disable asks the instance to suspend work.
func (r *Runner) Disable() {
	var out int32
	defer r.contain("disable", &out)
	if r.instance != nil {
		r.instance.Disable()
	}
}

// Stop shuts the instance down and drops it.
func (r *Runner) Stop() {
	var out int32
	defer r.contain("stop", &out)
	if r.instance != nil {
		r.instance.Stop()
		r.instance = nil
	}
}

// ReceiveMessage decodes a raw message and delivers it to the instance.
func (r *Runner) ReceiveMessage(sender, code int32, param uintptr) {
	var out int32
	defer r.contain("receive message", &out)
	if r.instance != nil {
		r.instance.ReceiveMessage(DecodeMessage(sender, code, param))
	}
}

// contain keeps a panicking plugin from unwinding into the host.
func (r *Runner) contain(entry string, out *int32) {
	if rec := recover(); rec != nil {
		slog.Error("plugin entry point panicked",
			"plugin", r.descriptor.Signature, "entry", entry, "panic", rec)
		*out = resultErr
	}
}
