package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/simtest"
)

// The scripted test host must satisfy the full aggregate surface.
var _ Host = (*simtest.Host)(nil)

func TestConfigGetters(t *testing.T) {
	config := Config{
		"name":    "fuel-planner",
		"tanks":   float64(3), // JSON numbers decode as float64
		"ratio":   0.75,
		"enabled": true,
		"units":   []interface{}{"kg", "lb"},
	}

	s, ok := GetString(config, "name")
	require.True(t, ok)
	assert.Equal(t, "fuel-planner", s)

	i, ok := GetInt(config, "tanks")
	require.True(t, ok)
	assert.Equal(t, 3, i)

	f, ok := GetFloat(config, "ratio")
	require.True(t, ok)
	assert.Equal(t, 0.75, f)

	b, ok := GetBool(config, "enabled")
	require.True(t, ok)
	assert.True(t, b)

	units, ok := GetStringSlice(config, "units")
	require.True(t, ok)
	assert.Equal(t, []string{"kg", "lb"}, units)

	_, ok = GetString(config, "missing")
	assert.False(t, ok)
	_, ok = GetInt(config, "name")
	assert.False(t, ok)
	_, ok = GetStringSlice(config, "tanks")
	assert.False(t, ok)
}

func TestConfigDefaults(t *testing.T) {
	config := Config{"name": "wx"}

	assert.Equal(t, "wx", GetStringDefault(config, "name", "fallback"))
	assert.Equal(t, "fallback", GetStringDefault(config, "missing", "fallback"))
	assert.Equal(t, 10, GetIntDefault(config, "missing", 10))
	assert.True(t, GetBoolDefault(config, "missing", true))
}

func TestMustGetters(t *testing.T) {
	config := Config{"name": "wx"}

	s, err := MustGetString(config, "name")
	require.NoError(t, err)
	assert.Equal(t, "wx", s)

	_, err = MustGetInt(config, "missing")
	var cfgErr *errors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "missing", cfgErr.Field)

	_, err = MustGetBool(config, "name")
	require.ErrorAs(t, err, &cfgErr)
}

func TestValidateConfig(t *testing.T) {
	type settings struct {
		Name  string `json:"name" validate:"required"`
		Tanks int    `json:"tanks" validate:"gte=1,lte=9"`
	}

	var ok settings
	require.NoError(t, ValidateConfig(Config{"name": "fuel", "tanks": 3}, &ok))
	assert.Equal(t, "fuel", ok.Name)
	assert.Equal(t, 3, ok.Tanks)

	var missing settings
	assert.Error(t, ValidateConfig(Config{"tanks": 3}, &missing))

	var outOfRange settings
	assert.Error(t, ValidateConfig(Config{"name": "fuel", "tanks": 20}, &outOfRange))

	var badShape settings
	assert.Error(t, ValidateConfig(Config{"name": 7}, &badShape))
}
