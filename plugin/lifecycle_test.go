package plugin

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdk "github.com/simbridge-dev/simbridge-sdk"
	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
)

type fakePlugin struct {
	events    []string
	enableErr error
	messages  []Message
}

func (p *fakePlugin) Enable() error {
	p.events = append(p.events, "enable")
	return p.enableErr
}

func (p *fakePlugin) Disable() { p.events = append(p.events, "disable") }
func (p *fakePlugin) Stop()    { p.events = append(p.events, "stop") }

func (p *fakePlugin) ReceiveMessage(msg Message) {
	p.messages = append(p.messages, msg)
}

func testDescriptor() entities.PluginDescriptor {
	return entities.PluginDescriptor{
		Name:        "Fuel Planner",
		Signature:   "com.example.fuel",
		Description: "Plans fuel loads",
	}
}

func TestNewRunner_RejectsBadDescriptor(t *testing.T) {
	_, err := NewRunner(entities.PluginDescriptor{Name: "No Signature"}, nil)
	assert.Error(t, err)
}

func TestRunner_Lifecycle(t *testing.T) {
	p := &fakePlugin{}
	runner, err := NewRunner(testDescriptor(), func() (Lifecycle, error) {
		return p, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "com.example.fuel", runner.Descriptor().Signature)

	assert.Equal(t, resultOK, runner.Start())
	assert.Equal(t, resultOK, runner.Enable())
	runner.ReceiveMessage(0, 103, 0)
	runner.Disable()
	runner.Stop()

	assert.Equal(t, []string{"enable", "disable", "stop"}, p.events)
	assert.Equal(t, []Message{AirportLoaded{}}, p.messages)
}

func TestRunner_StartsAtMostOnce(t *testing.T) {
	starts := 0
	runner, err := NewRunner(testDescriptor(), func() (Lifecycle, error) {
		starts++
		return &fakePlugin{}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, resultOK, runner.Start())
	assert.Equal(t, resultOK, runner.Start())
	assert.Equal(t, 1, starts)
}

func TestRunner_StartFailure(t *testing.T) {
	runner, err := NewRunner(testDescriptor(), func() (Lifecycle, error) {
		return nil, stderrors.New("no config file")
	})
	require.NoError(t, err)

	assert.Equal(t, resultErr, runner.Start())
	assert.Equal(t, resultErr, runner.Enable())
	assert.NotPanics(t, func() {
		runner.Disable()
		runner.Stop()
		runner.ReceiveMessage(0, 101, 0)
	})
}

func TestRunner_StartRetriesAfterFailure(t *testing.T) {
	starts := 0
	runner, err := NewRunner(testDescriptor(), func() (Lifecycle, error) {
		starts++
		if starts == 1 {
			return nil, stderrors.New("host not ready")
		}
		return &fakePlugin{}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, resultErr, runner.Start())
	assert.Equal(t, resultOK, runner.Start(), "next start retries construction")
	assert.Equal(t, 2, starts)
	assert.Equal(t, resultOK, runner.Enable())
}

func TestRunner_EnableFailure(t *testing.T) {
	p := &fakePlugin{enableErr: stderrors.New("device missing")}
	runner, err := NewRunner(testDescriptor(), func() (Lifecycle, error) {
		return p, nil
	})
	require.NoError(t, err)

	require.Equal(t, resultOK, runner.Start())
	assert.Equal(t, resultErr, runner.Enable())
}

func TestRunner_StopDropsInstance(t *testing.T) {
	p := &fakePlugin{}
	runner, err := NewRunner(testDescriptor(), func() (Lifecycle, error) {
		return p, nil
	})
	require.NoError(t, err)

	require.Equal(t, resultOK, runner.Start())
	runner.Stop()
	runner.ReceiveMessage(0, 101, 0)
	assert.Empty(t, p.messages, "messages after stop are dropped")
}

type configurablePlugin struct {
	fakePlugin
	cfg    sdk.Config
	cfgErr error
}

func (p *configurablePlugin) Configure(cfg sdk.Config) error {
	p.cfg = cfg
	return p.cfgErr
}

func TestRunner_Configure(t *testing.T) {
	p := &configurablePlugin{}
	runner, err := NewRunner(testDescriptor(), func() (Lifecycle, error) {
		return p, nil
	})
	require.NoError(t, err)

	t.Run("before start", func(t *testing.T) {
		assert.Equal(t, resultErr, runner.Configure([]byte(`{}`)))
	})

	require.Equal(t, resultOK, runner.Start())

	t.Run("delivers settings", func(t *testing.T) {
		require.Equal(t, resultOK, runner.Configure([]byte(`{"reserve_minutes": 45}`)))
		minutes, ok := sdk.GetInt(p.cfg, "reserve_minutes")
		require.True(t, ok)
		assert.Equal(t, 45, minutes)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		assert.Equal(t, resultErr, runner.Configure([]byte(`{broken`)))
	})

	t.Run("rejected settings", func(t *testing.T) {
		p.cfgErr = stderrors.New("reserve too small")
		assert.Equal(t, resultErr, runner.Configure([]byte(`{"reserve_minutes": 1}`)))
	})
}

func TestRunner_ConfigureWithoutConfigurable(t *testing.T) {
	runner, err := NewRunner(testDescriptor(), func() (Lifecycle, error) {
		return &fakePlugin{}, nil
	})
	require.NoError(t, err)

	require.Equal(t, resultOK, runner.Start())
	assert.Equal(t, resultOK, runner.Configure([]byte(`{"anything": true}`)),
		"plugins without settings accept any configuration")
}

type panickyPlugin struct{ fakePlugin }

func (p *panickyPlugin) Enable() error { panic("boom") }

func TestRunner_PanicDoesNotEscape(t *testing.T) {
	runner, err := NewRunner(testDescriptor(), func() (Lifecycle, error) {
		return &panickyPlugin{}, nil
	})
	require.NoError(t, err)

	require.Equal(t, resultOK, runner.Start())
	assert.NotPanics(t, func() {
		assert.Equal(t, resultErr, runner.Enable())
	})
}

func TestDescriptorSchema(t *testing.T) {
	schema, err := DescriptorSchema()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &decoded))

	properties, ok := decoded["properties"].(map[string]interface{})
	require.True(t, ok, "properties should be a map")
	assert.Contains(t, properties, "name")
	assert.Contains(t, properties, "signature")
	assert.Contains(t, properties, "description")
}
