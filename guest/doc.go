// Package guest binds a plugin compiled to wasip1 against the
// simbridge_host module.
//
// It implements every domain port over the host module's imports, so the
// dataref, processing, display, command, menu and plugin packages work
// unchanged inside a WASM guest:
//
//	func main() {
//		runner, err := plugin.NewRunner(descriptor, func() (plugin.Lifecycle, error) {
//			return newMyPlugin(guest.Host()), nil
//		})
//		if err != nil {
//			...
//		}
//		guest.Run(runner)
//	}
//
// The package also carries the guest half of the ABI: the fixed
// simbridge_* dispatch exports the host re-enters through, the
// simbridge_plugin_* lifecycle exports host.PluginInstance drives, and
// the allocate/deallocate exports backing variable-length transfers.
// Everything here is wasip1-only; on other targets the package is empty.
package guest
