// Package simtest provides a scripted in-memory host implementing every
// domain port, for use in plugin unit tests and in the SDK's own test
// suite. The host records every raw call it receives so tests can assert
// exactly which host operations a code path performed, and exposes Fire*
// methods to drive callbacks the way the real host would.
package simtest
