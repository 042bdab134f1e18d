// Package host provides the runtime environment for executing WASM-compiled
// simulator plugins.
//
// It abstracts the underlying WASM engine (wazero), manages plugin lifecycle,
// and bridges plugin calls onto a simulator host's surfaces through the
// simbridge_host module. A simulator embedder creates one Executor per
// simulator session and loads any number of plugins into it.
package host
