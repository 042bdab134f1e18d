package dataref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbridge-dev/simbridge-sdk/dataref"
	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	sdkerrors "github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/simtest"
)

func TestInfo(t *testing.T) {
	host := simtest.NewHost()
	host.AddDataRef("sim/fuel/quantity", simtest.DataRefSpec{
		Types:    uint32(entities.TypeFloat),
		Writable: true,
		Owner:    3,
	})

	ref, err := dataref.Find(host, "sim/fuel/quantity")
	require.NoError(t, err)

	info, err := dataref.Info(host, ref)
	require.NoError(t, err)
	assert.Equal(t, "sim/fuel/quantity", info.Name)
	assert.True(t, info.Types.Contains(entities.TypeFloat))
	assert.True(t, info.Writable)
	assert.Equal(t, int32(3), info.Owner)

	t.Run("orphaned ref yields no info", func(t *testing.T) {
		host.Spec(ref.Raw()).Orphaned = true
		_, err := dataref.Info(host, ref)
		var orphaned *sdkerrors.OrphanedHandleError
		require.ErrorAs(t, err, &orphaned)
	})
}

func TestCountAndByIndex(t *testing.T) {
	host := simtest.NewHost()
	host.AddDataRef("sim/a", simtest.DataRefSpec{Types: uint32(entities.TypeInt)})
	host.AddDataRef("sim/b", simtest.DataRefSpec{Types: uint32(entities.TypeInt)})
	host.AddDataRef("sim/c", simtest.DataRefSpec{Types: uint32(entities.TypeInt)})

	assert.Equal(t, 3, dataref.Count(host))

	refs := dataref.ByIndex(host, 0, 10)
	assert.Len(t, refs, 3)

	assert.Empty(t, dataref.ByIndex(host, 10, 5))
}
