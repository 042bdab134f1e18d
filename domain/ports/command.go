package ports

import "github.com/simbridge-dev/simbridge-sdk/domain/entities"

// CommandFunc is the fixed-signature callback the host invokes for each
// phase of a command gesture. The return is the host's sentinel: zero stops
// further processing of the command, non-zero lets it continue.
type CommandFunc func(ref entities.RawHandle, phase int32, token entities.Token) int32

// Commands is the host's command surface. Unregistering requires the exact
// (ref, fn, before, token) tuple used at registration; hosts match all four.
type Commands interface {
	// FindCommand looks a command up by name. Returns 0 if no command with
	// that name exists.
	FindCommand(name string) entities.RawHandle

	// CreateCommand creates a new command and returns its raw reference,
	// or 0 on failure.
	CreateCommand(name, description string) entities.RawHandle

	// RegisterCommandHandler attaches fn to the command. before selects
	// execution before (1) or after (0) the host's own handling.
	RegisterCommandHandler(ref entities.RawHandle, fn CommandFunc, before int32, token entities.Token)

	// UnregisterCommandHandler removes a previously registered handler.
	UnregisterCommandHandler(ref entities.RawHandle, fn CommandFunc, before int32, token entities.Token)

	// CommandOnce presses and releases the command immediately.
	CommandOnce(ref entities.RawHandle)

	// CommandBegin starts holding the command down. Every CommandBegin
	// must be balanced by a CommandEnd.
	CommandBegin(ref entities.RawHandle)

	// CommandEnd releases a command held down by CommandBegin.
	CommandEnd(ref entities.RawHandle)
}
