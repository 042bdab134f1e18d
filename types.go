// Package sdk is the top-level facade of the SimBridge SDK: a typed,
// memory-safe layer for writing flight-simulator plugins against a host
// that exposes its extension surface as a C-style ABI.
package sdk

import (
	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// Host aggregates every surface a simulator host provides. A full host
// implements all of them; tests use the scripted implementation in the
// simtest package.
type Host interface {
	ports.DataAccess
	ports.FlightLoopScheduler
	ports.Windowing
	ports.Commands
	ports.Menus
	ports.PluginRegistry
	ports.Diagnostics
}

// Config holds a plugin's settings, typically decoded from a JSON file
// shipped next to the plugin binary.
type Config map[string]interface{}

// Descriptor is what a plugin declares about itself to the host.
type Descriptor = entities.PluginDescriptor

const (
	// Version of the SDK.
	Version = "0.1.0"
	// ABIVersion is the host ABI generation this SDK speaks.
	ABIVersion = 3
)
