package box_test

import (
	"testing"

	"coldstore/internal/core/domain/model/box"
	"coldstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBox(t *testing.T) {
	t.Run("valid box", func(t *testing.T) {
		b, err := box.NewBox(1, "BOX-20260901-001", "salmon crate", -2.5)
		require.NoError(t, err)
		require.NoError(t, b.Validate())

		assert.Equal(t, 1, b.Position())
		assert.Equal(t, "BOX-20260901-001", b.AutoID())
		assert.Equal(t, "salmon crate", b.Name())
		assert.InDelta(t, -2.5, b.Temperature(), 0.001)
	})

	t.Run("position must be positive", func(t *testing.T) {
		_, err := box.NewBox(0, "BOX-20260901-001", "salmon crate", 3)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("auto id is required", func(t *testing.T) {
		_, err := box.NewBox(1, "", "salmon crate", 3)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := box.NewBox(1, "BOX-20260901-001", "", 3)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var b box.Box
		require.ErrorIs(t, b.Validate(), box.ErrBoxIsNotConstructed)
	})
}

func TestBox_Relocate(t *testing.T) {
	b, err := box.NewBox(2, "BOX-20260901-002", "herring pallet", 4)
	require.NoError(t, err)

	moved, err := b.Relocate(7)
	require.NoError(t, err)

	assert.Equal(t, 7, moved.Position())
	assert.Equal(t, b.AutoID(), moved.AutoID())
	assert.Equal(t, b.Name(), moved.Name())
	assert.InDelta(t, b.Temperature(), moved.Temperature(), 0.001)
	assert.Equal(t, 2, b.Position())
}

func TestBox_Matches(t *testing.T) {
	b, err := box.NewBox(3, "BOX-20260901-003", "cod box", 1)
	require.NoError(t, err)

	assert.True(t, b.Matches("BOX-20260901-003"))
	assert.True(t, b.Matches("cod box"))
	assert.False(t, b.Matches("BOX-20260901-004"))
}

func TestBox_SetTemperature(t *testing.T) {
	b, err := box.NewBox(1, "BOX-20260901-001", "salmon crate", 7)
	require.NoError(t, err)

	b.SetTemperature(2)
	assert.InDelta(t, 2, b.Temperature(), 0.001)
}
