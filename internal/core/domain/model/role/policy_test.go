package role_test

import (
	"testing"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("string round trip", func(t *testing.T) {
		for _, r := range []role.Role{role.Custodian, role.Admin, role.Operator, role.Supervisor} {
			parsed, err := role.RoleFromString(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("unknown role is invalid", func(t *testing.T) {
		require.ErrorIs(t, role.UnknownRole.Validate(), errs.ErrValueIsInvalid)

		_, err := role.RoleFromString("janitor")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPolicy_SupersetVariant(t *testing.T) {
	policy := role.NewPolicy(true, false)

	t.Run("supervisor creates orders and manages alerts", func(t *testing.T) {
		require.NoError(t, policy.Authorize(role.Supervisor, role.OpCreateOrder))
		require.NoError(t, policy.Authorize(role.Supervisor, role.OpResolveAlert))
		require.NoError(t, policy.Authorize(role.Supervisor, role.OpFixTemperature))
	})

	t.Run("only the supervisor creates orders", func(t *testing.T) {
		for _, r := range []role.Role{role.Custodian, role.Admin, role.Operator} {
			require.ErrorIs(t, policy.Authorize(r, role.OpCreateOrder), role.ErrUnauthorized)
		}
	})

	t.Run("only the operator executes orders", func(t *testing.T) {
		require.NoError(t, policy.Authorize(role.Operator, role.OpExecuteOrder))
		for _, r := range []role.Role{role.Custodian, role.Admin, role.Supervisor} {
			require.ErrorIs(t, policy.Authorize(r, role.OpExecuteOrder), role.ErrUnauthorized)
		}
	})

	t.Run("only the custodian registers and dispatches", func(t *testing.T) {
		require.NoError(t, policy.Authorize(role.Custodian, role.OpRegisterInbound))
		require.NoError(t, policy.Authorize(role.Custodian, role.OpDispatch))
		require.ErrorIs(t, policy.Authorize(role.Operator, role.OpDispatch), role.ErrUnauthorized)
	})

	t.Run("everyone views zones", func(t *testing.T) {
		for _, r := range []role.Role{role.Custodian, role.Admin, role.Operator, role.Supervisor} {
			require.NoError(t, policy.Authorize(r, role.OpViewZones))
		}
	})

	t.Run("cancellation is closed by default", func(t *testing.T) {
		require.ErrorIs(t, policy.Authorize(role.Supervisor, role.OpCancelOrder), role.ErrUnauthorized)
	})

	t.Run("review orders enabled", func(t *testing.T) {
		assert.True(t, policy.ReviewOrdersEnabled())
	})

	t.Run("unknown role is always rejected", func(t *testing.T) {
		require.ErrorIs(t, policy.Authorize(role.UnknownRole, role.OpViewZones), role.ErrUnauthorized)
	})
}

func TestPolicy_ThreeRoleVariant(t *testing.T) {
	policy := role.NewPolicy(false, false)

	t.Run("admin takes over order creation and alerts", func(t *testing.T) {
		require.NoError(t, policy.Authorize(role.Admin, role.OpCreateOrder))
		require.NoError(t, policy.Authorize(role.Admin, role.OpResolveAlert))
	})

	t.Run("supervisor role is rejected", func(t *testing.T) {
		require.ErrorIs(t, policy.Authorize(role.Supervisor, role.OpCreateOrder), role.ErrUnauthorized)
	})

	t.Run("review orders disabled", func(t *testing.T) {
		assert.False(t, policy.ReviewOrdersEnabled())
	})
}

func TestPolicy_CancellationEnabled(t *testing.T) {
	policy := role.NewPolicy(true, true)
	require.NoError(t, policy.Authorize(role.Supervisor, role.OpCancelOrder))
	require.ErrorIs(t, policy.Authorize(role.Operator, role.OpCancelOrder), role.ErrUnauthorized)
}
