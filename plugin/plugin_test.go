package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
	"github.com/simbridge-dev/simbridge-sdk/simtest"
)

func TestSelf(t *testing.T) {
	host := simtest.NewHost()
	host.SelfID = 4

	self, err := Self(host)
	require.NoError(t, err)
	assert.Equal(t, int32(4), self.ID().Raw())
}

func TestEnumeration(t *testing.T) {
	host := simtest.NewHost()
	host.AddPlugin(2, ports.RawPluginInfo{
		Name:      "Fuel Planner",
		FilePath:  "/sim/plugins/fuel.bin",
		Signature: "com.example.fuel",
	}, true)
	host.AddPlugin(5, ports.RawPluginInfo{
		Name:      "Weather Radar",
		FilePath:  "/sim/plugins/wx.bin",
		Signature: "com.example.wx",
	}, false)

	require.Equal(t, 2, Count(host))

	var sigs []string
	for i := 0; i < Count(host); i++ {
		p, err := Nth(host, i)
		require.NoError(t, err)
		sigs = append(sigs, p.Info().Signature)
	}
	assert.Equal(t, []string{"com.example.fuel", "com.example.wx"}, sigs)

	_, err := Nth(host, 2)
	var invalid *errors.InvalidHandleError
	require.ErrorAs(t, err, &invalid)
}

func TestFind(t *testing.T) {
	host := simtest.NewHost()
	host.AddPlugin(3, ports.RawPluginInfo{
		Name:      "Fuel Planner",
		FilePath:  "/sim/plugins/fuel.bin",
		Signature: "com.example.fuel",
	}, true)

	byPath, err := FindByPath(host, "/sim/plugins/fuel.bin")
	require.NoError(t, err)
	assert.Equal(t, int32(3), byPath.ID().Raw())

	bySig, err := FindBySignature(host, "com.example.fuel")
	require.NoError(t, err)
	assert.Equal(t, int32(3), bySig.ID().Raw())
	assert.True(t, bySig.IsEnabled())

	_, err = FindBySignature(host, "com.example.missing")
	var invalid *errors.InvalidHandleError
	require.ErrorAs(t, err, &invalid)

	_, err = FindByPath(host, "bad\x00path")
	var encErr *errors.NameEncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Zero(t, host.CallCount("FindPluginByPath"))
}

func TestSendMessage(t *testing.T) {
	host := simtest.NewHost()
	host.AddPlugin(7, ports.RawPluginInfo{Signature: "com.example.other"}, true)

	target, err := FindBySignature(host, "com.example.other")
	require.NoError(t, err)
	target.SendMessage(MessageCode(400), 0xBEEF)
	Broadcast(host, MessageCode(401), 0)

	require.Len(t, host.Messages, 2)
	assert.Equal(t, simtest.SentMessage{Target: 7, Code: 400, Param: 0xBEEF}, host.Messages[0])
	assert.Equal(t, simtest.SentMessage{
		Target: entities.PluginIDNone, Broadcast: true, Code: 401,
	}, host.Messages[1])
}

func TestDecodeMessage(t *testing.T) {
	for name, tc := range map[string]struct {
		code  int32
		param uintptr
		want  Message
	}{
		"plane crashed":   {101, 0, PlaneCrashed{}},
		"plane loaded":    {102, 2, PlaneLoaded{Aircraft: 2}},
		"airport loaded":  {103, 0, AirportLoaded{}},
		"scenery loaded":  {104, 0, SceneryLoaded{}},
		"count changed":   {105, 0, AirplaneCountChanged{}},
		"plane unloaded":  {106, 1, PlaneUnloaded{Aircraft: 1}},
		"will write":      {107, 0, WillWritePrefs{}},
		"livery loaded":   {108, 3, LiveryLoaded{Aircraft: 3}},
		"entered vr":      {109, 0, EnteredVR{}},
		"exiting vr":      {110, 0, ExitingVR{}},
		"release planes":  {111, 0, ReleasePlanes{}},
		"bank loaded":     {112, 1, FmodBankLoaded{Bank: 1}},
		"bank unloading":  {113, 1, FmodBankUnloading{Bank: 1}},
		"data refs added": {114, 9000, DataRefsAdded{Total: 9000}},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeMessage(0, tc.code, tc.param))
		})
	}
}

func TestDecodeMessage_UnknownCodePreservedExactly(t *testing.T) {
	msg := DecodeMessage(6, 512, 0xDEADBEEF)
	assert.Equal(t, CustomMessage{Sender: 6, Code: 512, Param: 0xDEADBEEF}, msg)
}

func TestInstallErrorCallback(t *testing.T) {
	host := simtest.NewHost()

	var reported []string
	require.NoError(t, InstallErrorCallback(host, func(message string) {
		reported = append(reported, message)
	}))
	host.ErrorFn("bad dataref access")
	assert.Equal(t, []string{"bad dataref access"}, reported)

	err := InstallErrorCallback(host, func(string) {})
	require.ErrorIs(t, err, ErrCallbackInstalled)
	assert.Equal(t, 1, host.CallCount("SetErrorCallback"))
}

func TestSpeak(t *testing.T) {
	host := simtest.NewHost()
	Speak(host, "Fuel imbalance detected")
	assert.Equal(t, []string{"Fuel imbalance detected"}, host.Spoken)
}
