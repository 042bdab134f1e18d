// Package plugin covers plugin identity, discovery, inter-plugin
// messaging, and the lifecycle entry points a host drives.
package plugin

import (
	"strings"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// Plugin is a loaded plugin bound to the host registry it came from.
type Plugin struct {
	host ports.PluginRegistry
	id   entities.PluginID
}

// Self returns the calling plugin itself.
func Self(host ports.PluginRegistry) (Plugin, error) {
	id, err := entities.WrapPluginID(host.MyID())
	if err != nil {
		return Plugin{}, err
	}
	return Plugin{host: host, id: id}, nil
}

// Count returns the number of loaded plugins, enabled or not.
func Count(host ports.PluginRegistry) int {
	return int(host.CountPlugins())
}

// Nth returns the plugin at the given zero-based index. The host reports
// plugins in no particular order.
func Nth(host ports.PluginRegistry, index int) (Plugin, error) {
	id, err := entities.WrapPluginID(host.NthPlugin(int32(index)))
	if err != nil {
		return Plugin{}, err
	}
	return Plugin{host: host, id: id}, nil
}

// FindByPath returns the plugin loaded from the given absolute path.
func FindByPath(host ports.PluginRegistry, path string) (Plugin, error) {
	if strings.ContainsRune(path, 0) {
		return Plugin{}, &errors.NameEncodingError{Field: "plugin path"}
	}
	id, err := entities.WrapPluginID(host.FindPluginByPath(path))
	if err != nil {
		return Plugin{}, err
	}
	return Plugin{host: host, id: id}, nil
}

// FindBySignature returns the plugin with the given signature. Signatures
// are the stable way to locate a plugin this one interoperates with.
func FindBySignature(host ports.PluginRegistry, signature string) (Plugin, error) {
	if strings.ContainsRune(signature, 0) {
		return Plugin{}, &errors.NameEncodingError{Field: "plugin signature"}
	}
	id, err := entities.WrapPluginID(host.FindPluginBySignature(signature))
	if err != nil {
		return Plugin{}, err
	}
	return Plugin{host: host, id: id}, nil
}

// ID returns the wrapped plugin id.
func (p Plugin) ID() entities.PluginID { return p.id }

// Info returns the host's metadata for the plugin.
func (p Plugin) Info() entities.PluginInfo {
	raw := p.host.PluginInfo(p.id.Raw())
	return entities.PluginInfo{
		Name:        raw.Name,
		FilePath:    raw.FilePath,
		Signature:   raw.Signature,
		Description: raw.Description,
	}
}

// IsEnabled reports whether the plugin is currently enabled.
func (p Plugin) IsEnabled() bool {
	return p.host.IsPluginEnabled(p.id.Raw())
}

// SendMessage delivers a message to this plugin alone.
func (p Plugin) SendMessage(code MessageCode, param uintptr) {
	p.host.SendMessage(p.id.Raw(), false, int32(code), param)
}

// Broadcast delivers a message to every loaded plugin.
func Broadcast(host ports.PluginRegistry, code MessageCode, param uintptr) {
	host.SendMessage(entities.PluginIDNone, true, int32(code), param)
}
