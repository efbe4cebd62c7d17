package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coldstore/internal/core/application/usecases/queries"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/pkg/errs"
)

func Test_GetZonesQueryHandler_Handle(t *testing.T) {
	policy := role.NewPolicy(true, false)

	t.Run("Success", func(t *testing.T) {
		warehouses := new(MockWarehouseReader)
		warehouses.On("Get", mock.Anything).Return(stockedWarehouse(t), nil)

		handler, err := queries.NewGetZonesQueryHandler(warehouses, policy)
		require.NoError(t, err)

		query, err := queries.NewGetZonesQuery(role.Custodian)
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)

		assert.Equal(t, "BOD-20260901-001", response.WarehouseID)
		assert.Equal(t, "Main cold store", response.WarehouseName)
		require.Len(t, response.Inbound, 1)
		assert.Equal(t, "BOX-20260901-001", response.Inbound[0].AutoID)
		require.Len(t, response.Storage, warehouse.SlotCount)
		assert.Equal(t, "BOX-20260901-002", response.Storage[4].AutoID)
		require.NotNil(t, response.Storage[4].Temperature)
		assert.InDelta(t, -2, *response.Storage[4].Temperature, 0.001)
		assert.Nil(t, response.Storage[0].Temperature)
		assert.Empty(t, response.Outbound)
		warehouses.AssertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		handler, err := queries.NewGetZonesQueryHandler(new(MockWarehouseReader), policy)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), queries.GetZonesQuery{})
		require.ErrorIs(t, err, queries.ErrGetZonesQueryIsNotConstructed)
	})
}

func Test_FindBoxQueryHandler_Handle(t *testing.T) {
	policy := role.NewPolicy(true, false)

	t.Run("FindsBoxInStorage", func(t *testing.T) {
		warehouses := new(MockWarehouseReader)
		warehouses.On("Get", mock.Anything).Return(stockedWarehouse(t), nil)

		handler, err := queries.NewFindBoxQueryHandler(warehouses, policy)
		require.NoError(t, err)

		query, err := queries.NewFindBoxQuery(role.Admin, "Cod")
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)

		assert.True(t, response.Found)
		assert.Equal(t, "storage", response.Zone)
		assert.Equal(t, 5, response.Position)
		assert.Equal(t, "BOX-20260901-002", response.AutoID)
	})

	t.Run("MissIsNotAnError", func(t *testing.T) {
		warehouses := new(MockWarehouseReader)
		warehouses.On("Get", mock.Anything).Return(stockedWarehouse(t), nil)

		handler, err := queries.NewFindBoxQueryHandler(warehouses, policy)
		require.NoError(t, err)

		query, err := queries.NewFindBoxQuery(role.Admin, "Herring")
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.False(t, response.Found)
	})

	t.Run("SearchIsAdminOnly", func(t *testing.T) {
		warehouses := new(MockWarehouseReader)

		handler, err := queries.NewFindBoxQueryHandler(warehouses, policy)
		require.NoError(t, err)

		query, err := queries.NewFindBoxQuery(role.Custodian, "Cod")
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)
		require.ErrorIs(t, err, role.ErrUnauthorized)
		warehouses.AssertNotCalled(t, "Get", mock.Anything)
	})

	t.Run("EmptyTermIsRejected", func(t *testing.T) {
		_, err := queries.NewFindBoxQuery(role.Admin, "   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
