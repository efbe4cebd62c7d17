package guard_test

import (
	"errors"
	"testing"

	"coldstore/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})

	t.Run("zero value fails with supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		myErr := errors.New("command must be created via its constructor")
		err := g.Validate(myErr)
		assert.Equal(t, myErr, err)
	})

	t.Run("zero value fails with default error when nil supplied", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}
