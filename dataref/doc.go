// Package dataref provides typed, capability-checked access to host-owned
// data refs.
//
// Access capability is encoded in the type system rather than in runtime
// flags: Value and Array are read-only, WritableValue and WritableArray add
// the write operations, and the only way to obtain a writable wrapper is
// the fallible Writable() upgrade, which probes the host's writability
// predicate at the moment of the call. There is no downgrade; read access
// is a strict subset of write access.
//
// Type tags and liveness are verified once, at construction. Hot-path reads
// and writes are a single host call with no revalidation, matching the cost
// model of the host ABI itself. A wrapper's writability can therefore go
// stale if the host later revokes it; the host silently ignores such writes
// and this layer does not mask that behavior. Callers needing freshness
// must re-probe by upgrading again.
package dataref
