package entities

// DataRefInfo is the host's metadata snapshot for a data ref, taken by a
// single get-info call. Writable reflects the host's predicate at the
// moment of the probe and can change over the host's lifetime.
type DataRefInfo struct {
	Name     string
	Types    DataTypeID
	Writable bool
	Owner    int32 // owning plugin id, PluginIDNone for the host itself
}

// PluginInfo describes a loaded plugin as reported by the host.
type PluginInfo struct {
	Name        string `json:"name"`
	FilePath    string `json:"file_path"`
	Signature   string `json:"signature"`
	Description string `json:"description"`
}

// PluginDescriptor is what a plugin declares about itself to the host at
// start time. Signatures are reverse-DNS style and should be unique across
// all plugins, as they are how plugins locate each other.
type PluginDescriptor struct {
	Name        string `json:"name" validate:"required,max=255" jsonschema:"title=Plugin name"`
	Signature   string `json:"signature" validate:"required,max=255" jsonschema:"title=Unique reverse-DNS signature"`
	Description string `json:"description" validate:"max=255" jsonschema:"title=Human readable description"`
}
