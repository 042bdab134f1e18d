package host

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
)

// Guest lifecycle exports a plugin binary must provide. The names mirror
// the dispatch exports registered by the simbridge_host module.
const (
	guestStart          = "simbridge_plugin_start"
	guestEnable         = "simbridge_plugin_enable"
	guestDisable        = "simbridge_plugin_disable"
	guestStop           = "simbridge_plugin_stop"
	guestReceiveMessage = "simbridge_plugin_receive_message"
	guestConfigure      = "simbridge_plugin_configure"
	guestDescribe       = "simbridge_plugin_describe"
)

// PluginInstance is a loaded WASM plugin. Its methods drive the guest's
// lifecycle exports; the guest re-enters the simulator through the
// simbridge_host module registered on the executor's runtime.
type PluginInstance struct {
	module api.Module
}

// Describe returns the plugin's self-reported descriptor.
func (p *PluginInstance) Describe(ctx context.Context) (*entities.PluginDescriptor, error) {
	results, err := p.callRaw(ctx, guestDescribe)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%s returned no result", guestDescribe)
	}

	var desc entities.PluginDescriptor
	if err := p.unmarshalPacked(results[0], &desc); err != nil {
		return nil, fmt.Errorf("failed to decode descriptor: %w", err)
	}
	return &desc, nil
}

// Start runs the plugin's startup entry point. A zero result means the
// plugin refused to start.
func (p *PluginInstance) Start(ctx context.Context) error {
	return p.callLifecycle(ctx, guestStart)
}

// Enable activates the plugin. A zero result means the plugin failed to
// enable.
func (p *PluginInstance) Enable(ctx context.Context) error {
	return p.callLifecycle(ctx, guestEnable)
}

// Configure delivers embedder-supplied settings to the plugin as a JSON
// object. Call it between Start and Enable. A zero result means the
// plugin rejected the settings.
func (p *PluginInstance) Configure(ctx context.Context, cfg map[string]interface{}) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	packed, err := p.writeToGuest(ctx, payload)
	if err != nil {
		return err
	}

	fn := p.module.ExportedFunction(guestConfigure)
	if fn == nil {
		return fmt.Errorf("plugin does not export %s", guestConfigure)
	}
	results, err := fn.Call(ctx, packed)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", guestConfigure, err)
	}
	if len(results) == 0 || api.DecodeI32(results[0]) == 0 {
		return fmt.Errorf("plugin rejected settings")
	}
	return nil
}

// Disable deactivates the plugin.
func (p *PluginInstance) Disable(ctx context.Context) error {
	_, err := p.callRaw(ctx, guestDisable)
	return err
}

// Stop shuts the plugin down. The instance may be closed afterwards.
func (p *PluginInstance) Stop(ctx context.Context) error {
	_, err := p.callRaw(ctx, guestStop)
	return err
}

// ReceiveMessage forwards an inter-plugin message to the plugin.
func (p *PluginInstance) ReceiveMessage(ctx context.Context, sender entities.PluginID, code int32, param uint64) error {
	fn := p.module.ExportedFunction(guestReceiveMessage)
	if fn == nil {
		return fmt.Errorf("plugin does not export %s", guestReceiveMessage)
	}
	_, err := fn.Call(ctx,
		api.EncodeI32(sender.Raw()),
		api.EncodeI32(code),
		param,
	)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", guestReceiveMessage, err)
	}
	return nil
}

// Close releases the plugin instance.
func (p *PluginInstance) Close(ctx context.Context) error {
	return p.module.Close(ctx)
}

// callLifecycle invokes an export returning a success flag.
func (p *PluginInstance) callLifecycle(ctx context.Context, name string) error {
	results, err := p.callRaw(ctx, name)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("%s returned no result", name)
	}
	if api.DecodeI32(results[0]) == 0 {
		return fmt.Errorf("plugin reported failure from %s", name)
	}
	return nil
}

// callRaw invokes a guest export by name with no arguments.
func (p *PluginInstance) callRaw(ctx context.Context, name string) ([]uint64, error) {
	fn := p.module.ExportedFunction(name)
	if fn == nil {
		return nil, fmt.Errorf("plugin does not export %s", name)
	}
	results, err := fn.Call(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", name, err)
	}
	return results, nil
}

// writeToGuest places a payload in memory obtained from the guest's
// allocate export and returns the packed ptr+len describing it.
func (p *PluginInstance) writeToGuest(ctx context.Context, data []byte) (uint64, error) {
	allocate := p.module.ExportedFunction("allocate")
	if allocate == nil {
		return 0, fmt.Errorf("plugin does not export allocate")
	}
	results, err := allocate.Call(ctx, uint64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("guest allocate failed: %w", err)
	}
	ptr := uint32(results[0])
	if !p.module.Memory().Write(ptr, data) {
		return 0, fmt.Errorf("failed to write settings to guest memory")
	}
	return (uint64(ptr) << 32) | uint64(len(data)), nil
}

// unmarshalPacked reads a packed ptr+len result from guest memory and
// decodes it as JSON.
func (p *PluginInstance) unmarshalPacked(packed uint64, out interface{}) error {
	if packed == 0 {
		return fmt.Errorf("guest returned empty payload")
	}
	ptr := uint32(packed >> 32)
	length := uint32(packed & 0xFFFFFFFF)
	data, ok := p.module.Memory().Read(ptr, length)
	if !ok {
		return fmt.Errorf("payload out of bounds: ptr=%d len=%d", ptr, length)
	}
	return json.Unmarshal(data, out)
}
