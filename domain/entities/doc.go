// Package entities provides core domain entities for the SDK: opaque handle
// wrappers, the data type tag bitmap, correlation tokens, geometry, input
// codes, and the closed set of inter-plugin messages.
//
// Nothing in this package talks to the host. Handles wrap raw identifiers
// issued by host calls; the domain ports accept and return the raw values,
// and every raw value entering the SDK passes through a Wrap* constructor
// before it is retained.
package entities
