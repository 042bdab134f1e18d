// Package wazero exposes a simulator host's surfaces to WASM-compiled
// plugins through the wazero runtime.
//
// Register instantiates a host module (default name "simbridge_host")
// whose exported functions bridge guest calls onto the domain ports.
// Callback registrations flow the other way: the adapter hands the host
// closures that re-enter the guest through its fixed dispatch exports
// (simbridge_flight_loop, simbridge_command_handler, the window event
// exports, simbridge_menu_handler), forwarding the correlation token
// verbatim.
//
// Strings and variable-length payloads cross the boundary as a single
// i64 packing a 32-bit guest pointer and length; host-to-guest payloads
// are placed in memory obtained from the guest's "allocate" export.
package wazero
