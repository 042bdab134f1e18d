package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/simtest"
)

type scriptedHandler struct {
	begin, cont, end entities.EventState
	phases           []entities.CommandPhase
	onBegin          func()
}

func (s *scriptedHandler) CommandBegin() entities.EventState {
	s.phases = append(s.phases, entities.CommandBegin)
	if s.onBegin != nil {
		s.onBegin()
	}
	return s.begin
}

func (s *scriptedHandler) CommandContinue() entities.EventState {
	s.phases = append(s.phases, entities.CommandContinue)
	return s.cont
}

func (s *scriptedHandler) CommandEnd() entities.EventState {
	s.phases = append(s.phases, entities.CommandEnd)
	return s.end
}

func TestFind(t *testing.T) {
	host := simtest.NewHost()
	raw := host.AddCommand("sim/autopilot/heading_sync")

	cmd, err := Find(host, "sim/autopilot/heading_sync")
	require.NoError(t, err)
	assert.Equal(t, raw, cmd.Ref().Raw())

	_, err = Find(host, "sim/no/such/command")
	var invalid *errors.InvalidHandleError
	require.ErrorAs(t, err, &invalid)
}

func TestFind_EmbeddedNULNeverReachesHost(t *testing.T) {
	host := simtest.NewHost()

	_, err := Find(host, "sim/bad\x00name")
	var encErr *errors.NameEncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Zero(t, host.CallCount("FindCommand"))
}

func TestCreate(t *testing.T) {
	host := simtest.NewHost()

	cmd, err := Create(host, "example/do_thing", "Does the thing")
	require.NoError(t, err)
	assert.NotZero(t, cmd.Ref().Raw())

	_, err = Create(host, "example/other", "bad\x00description")
	var encErr *errors.NameEncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 1, host.CallCount("CreateCommand"))
}

func TestCommand_OnceBeginEnd(t *testing.T) {
	host := simtest.NewHost()
	raw := host.AddCommand("example/hold")
	cmd, err := Find(host, "example/hold")
	require.NoError(t, err)

	cmd.Once()
	cmd.Begin()
	cmd.End()

	assert.Equal(t, []entities.RawHandle{raw}, host.CommandPresses)
	assert.Equal(t, []entities.RawHandle{raw}, host.CommandBegins)
	assert.Equal(t, []entities.RawHandle{raw}, host.CommandEnds)
}

func TestRegisterHandler_Dispatch(t *testing.T) {
	host := simtest.NewHost()
	raw := host.AddCommand("example/toggle")
	cmd, err := Find(host, "example/toggle")
	require.NoError(t, err)

	h := &scriptedHandler{begin: entities.Propagate, cont: entities.Propagate, end: entities.Consume}
	reg := RegisterHandler(cmd, entities.BeforeHost, h)
	defer reg.Close()

	assert.True(t, host.FireCommand(raw, 0))
	assert.True(t, host.FireCommand(raw, 1))
	assert.False(t, host.FireCommand(raw, 2))
	assert.Equal(t, []entities.CommandPhase{
		entities.CommandBegin, entities.CommandContinue, entities.CommandEnd,
	}, h.phases)
}

func TestRegisterHandler_OtherCommandIgnored(t *testing.T) {
	host := simtest.NewHost()
	host.AddCommand("example/mine")
	other := host.AddCommand("example/other")
	cmd, err := Find(host, "example/mine")
	require.NoError(t, err)

	h := &scriptedHandler{}
	reg := RegisterHandler(cmd, entities.AfterHost, h)
	defer reg.Close()

	// Dispatch directly with this registration's token but another
	// command's ref; the handler must not run.
	out := dispatchCommand(other, 0, reg.token)
	assert.Equal(t, rawContinueProcessing, out)
	assert.Empty(t, h.phases)
}

func TestRegistration_CloseExactlyOnce(t *testing.T) {
	host := simtest.NewHost()
	raw := host.AddCommand("example/once")
	cmd, err := Find(host, "example/once")
	require.NoError(t, err)

	reg := RegisterHandler(cmd, entities.BeforeHost, &scriptedHandler{})
	require.Len(t, host.CommandRegs, 1)
	registered := host.CommandRegs[0]

	reg.Close()
	require.Len(t, host.CommandUnregs, 1)
	assert.Equal(t, registered, host.CommandUnregs[0],
		"unregistration must use the identical tuple")
	assert.Equal(t, raw, host.CommandUnregs[0].Ref)
	assert.Empty(t, host.CommandRegs)

	before := len(host.Calls)
	reg.Close()
	assert.Equal(t, before, len(host.Calls), "second close must not reach the host")
}

func TestRegistration_ReentrantClose(t *testing.T) {
	host := simtest.NewHost()
	raw := host.AddCommand("example/self")
	cmd, err := Find(host, "example/self")
	require.NoError(t, err)

	var reg *Registration
	h := &scriptedHandler{begin: entities.Consume}
	h.onBegin = func() { reg.Close() }
	reg = RegisterHandler(cmd, entities.BeforeHost, h)
	tok := reg.token

	assert.False(t, host.FireCommand(raw, 0))
	require.Len(t, host.CommandUnregs, 1)

	// A stale dispatch after the self-close lets the command continue.
	out := dispatchCommand(raw, 1, tok)
	assert.Equal(t, rawContinueProcessing, out)
	assert.Equal(t, []entities.CommandPhase{entities.CommandBegin}, h.phases)
}

func TestDispatchCommand_UndecodablePhase(t *testing.T) {
	host := simtest.NewHost()
	raw := host.AddCommand("example/weird")
	cmd, err := Find(host, "example/weird")
	require.NoError(t, err)

	h := &scriptedHandler{}
	reg := RegisterHandler(cmd, entities.AfterHost, h)
	defer reg.Close()

	out := dispatchCommand(raw, 99, reg.token)
	assert.Equal(t, rawContinueProcessing, out)
	assert.Empty(t, h.phases)
}

type panickingHandler struct{}

func (panickingHandler) CommandBegin() entities.EventState    { panic("boom") }
func (panickingHandler) CommandContinue() entities.EventState { panic("boom") }
func (panickingHandler) CommandEnd() entities.EventState      { panic("boom") }

func TestDispatchCommand_PanicDoesNotEscape(t *testing.T) {
	host := simtest.NewHost()
	raw := host.AddCommand("example/panics")
	cmd, err := Find(host, "example/panics")
	require.NoError(t, err)

	reg := RegisterHandler(cmd, entities.BeforeHost, panickingHandler{})
	defer reg.Close()

	assert.NotPanics(t, func() {
		assert.True(t, host.FireCommand(raw, 0))
	})
}
