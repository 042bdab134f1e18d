// Package command looks up, creates, executes, and handles host commands.
package command

import (
	"log/slog"
	"strings"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
	"github.com/simbridge-dev/simbridge-sdk/internal/refcon"
)

// Command is a named host command bound to the host it came from.
type Command struct {
	host ports.Commands
	ref  entities.CommandRef
}

// Find looks a command up by name. It fails with NameEncodingError before
// any host call if the name embeds a NUL, and with InvalidHandleError if
// the host knows no command by that name.
func Find(host ports.Commands, name string) (Command, error) {
	if strings.ContainsRune(name, 0) {
		return Command{}, &errors.NameEncodingError{Field: "command name"}
	}
	ref, err := entities.WrapCommandRef(host.FindCommand(name))
	if err != nil {
		return Command{}, err
	}
	return Command{host: host, ref: ref}, nil
}

// Create creates a new command under the given name. Creating a command
// that already exists returns the existing one.
func Create(host ports.Commands, name, description string) (Command, error) {
	if strings.ContainsRune(name, 0) {
		return Command{}, &errors.NameEncodingError{Field: "command name"}
	}
	if strings.ContainsRune(description, 0) {
		return Command{}, &errors.NameEncodingError{Field: "command description"}
	}
	ref, err := entities.WrapCommandRef(host.CreateCommand(name, description))
	if err != nil {
		return Command{}, err
	}
	return Command{host: host, ref: ref}, nil
}

// Ref returns the wrapped command reference.
func (c Command) Ref() entities.CommandRef { return c.ref }

// Once presses and releases the command immediately.
func (c Command) Once() { c.host.CommandOnce(c.ref.Raw()) }

// Begin starts holding the command down. Every Begin must be balanced by
// an End.
func (c Command) Begin() { c.host.CommandBegin(c.ref.Raw()) }

// End releases a command held down by Begin.
func (c Command) End() { c.host.CommandEnd(c.ref.Raw()) }

// Handler receives the phases of a command gesture. Each method returns
// whether the command should continue to later handlers and the host's own
// handling (Propagate) or stop here (Consume).
type Handler interface {
	CommandBegin() entities.EventState
	CommandContinue() entities.EventState
	CommandEnd() entities.EventState
}

// handlers maps live correlation tokens to registration records.
var handlers = refcon.NewTable()

type commandRecord struct {
	ref     entities.RawHandle
	handler Handler
}

const (
	rawStopProcessing     int32 = 0
	rawContinueProcessing int32 = 1
)

// dispatchCommand is the one trampoline shared by every command handler
// registration. Registrations on different commands can share it too; only
// the correlation token identifies the registration, so the bound command
// is re-checked against the one the host reports.
func dispatchCommand(ref entities.RawHandle, phase int32, token entities.Token) (out int32) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("command handler panicked", "token", uint64(token), "panic", r)
			out = rawContinueProcessing
		}
	}()

	record, ok := handlers.Get(token)
	if !ok {
		slog.Warn("command callback with unknown token", "token", uint64(token))
		return rawContinueProcessing
	}
	rec := record.(*commandRecord)
	if rec.ref != ref {
		return rawContinueProcessing
	}

	decoded, err := entities.CommandPhaseFromRaw(phase)
	if err != nil {
		slog.Error("command callback with undecodable phase", "error", err)
		return rawContinueProcessing
	}

	// The handler may unregister itself; the record must not be touched
	// after this dispatch.
	var state entities.EventState
	switch decoded {
	case entities.CommandBegin:
		state = rec.handler.CommandBegin()
	case entities.CommandContinue:
		state = rec.handler.CommandContinue()
	case entities.CommandEnd:
		state = rec.handler.CommandEnd()
	}

	if state == entities.Consume {
		return rawStopProcessing
	}
	return rawContinueProcessing
}

// Registration owns one command handler registration. Close unregisters
// exactly once, passing the host the identical (command, trampoline,
// timing, token) tuple used at registration.
type Registration struct {
	host   ports.Commands
	ref    entities.RawHandle
	before entities.CommandExecutionTime
	token  entities.Token
}

// RegisterHandler attaches handler to the command, running at the given
// time relative to the host's own handling.
func RegisterHandler(cmd Command, when entities.CommandExecutionTime, handler Handler) *Registration {
	token := handlers.Put(&commandRecord{ref: cmd.ref.Raw(), handler: handler})
	cmd.host.RegisterCommandHandler(cmd.ref.Raw(), dispatchCommand, when.Raw(), token)
	return &Registration{host: cmd.host, ref: cmd.ref.Raw(), before: when, token: token}
}

// Close unregisters the handler and releases its token. The first call
// tears down; later calls are no-ops. Calling Close from inside the
// handler's own callback is legal.
func (r *Registration) Close() {
	if r.token == 0 {
		return
	}
	r.host.UnregisterCommandHandler(r.ref, dispatchCommand, r.before.Raw(), r.token)
	handlers.Release(r.token)
	r.token = 0
}
