package ports

// RawPluginInfo is the get-info result for a plugin before any validation.
type RawPluginInfo struct {
	Name        string
	FilePath    string
	Signature   string
	Description string
}

// PluginRegistry is the host's plugin identity and messaging surface.
// Lookups return entities.PluginIDNone when nothing matches.
type PluginRegistry interface {
	// MyID returns the calling plugin's own id.
	MyID() int32

	// CountPlugins returns the number of loaded plugins, enabled or not.
	CountPlugins() int32

	// NthPlugin returns the id of the plugin at the given zero-based
	// index, in no particular order.
	NthPlugin(index int32) int32

	// FindPluginByPath returns the id of the plugin loaded from the given
	// absolute path.
	FindPluginByPath(path string) int32

	// FindPluginBySignature returns the id of the plugin with the given
	// signature.
	FindPluginBySignature(signature string) int32

	// PluginInfo returns the host's metadata for a plugin.
	PluginInfo(id int32) RawPluginInfo

	// IsPluginEnabled reports whether the plugin is currently enabled.
	IsPluginEnabled(id int32) bool

	// SendMessage delivers (code, param) to the target plugin, or to every
	// plugin when broadcast is true.
	SendMessage(target int32, broadcast bool, code int32, param uintptr)
}
