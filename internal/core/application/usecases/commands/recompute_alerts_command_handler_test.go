package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coldstore/internal/core/application/usecases/commands"
	"coldstore/internal/core/domain/model/alert"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/workorder"
	"coldstore/internal/core/domain/services"
)

func TestRecomputeAlertsCommandHandler_Handle_ReplacesBoard(t *testing.T) {
	ctx := t.Context()
	order := toStorageOrder(t, 1, 3)
	order.Reschedule(time.Now().Add(-3 * time.Minute))

	aggregate := warehouseWithInbound(t, "BOX-20260901-001")
	require.NoError(t, aggregate.SetTemperature(kernel.ZoneInbound, 1, 8))

	warehouseRepo := new(MockWarehouseRepository)
	orderRepo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx).Return(aggregate, nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPending", ctx).Return([]*workorder.WorkOrder{order}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	board := &fakeAlertBoard{}
	h := commands.NewRecomputeAlertsCommandHandler(factory, services.NewAlertDeriver(), board, 0)

	cmd, err := commands.NewRecomputeAlertsCommand(time.Now())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	alerts := board.List()
	require.Len(t, alerts, 2)
	require.Equal(t, alert.TemperatureAlertID, alerts[0].ID())
	require.Equal(t, alert.OrderAlertID(order.ID()), alerts[1].ID())
}

func TestRecomputeAlertsCommandHandler_Handle_ExpiresOldOrders(t *testing.T) {
	ctx := t.Context()
	stale := toStorageOrder(t, 1, 3)
	stale.Reschedule(time.Now().Add(-2 * time.Hour))
	fresh := toStorageOrder(t, 2, 4)

	aggregate := warehouseWithInbound(t, "BOX-20260901-001", "BOX-20260901-002")

	warehouseRepo := new(MockWarehouseRepository)
	orderRepo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx).Return(aggregate, nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPending", ctx).Return([]*workorder.WorkOrder{stale, fresh}, nil).Once(),
		orderRepo.On("Remove", ctx, stale.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	board := &fakeAlertBoard{}
	h := commands.NewRecomputeAlertsCommandHandler(factory, services.NewAlertDeriver(), board, time.Hour)

	cmd, err := commands.NewRecomputeAlertsCommand(time.Now())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	for _, a := range board.List() {
		overdueID, ok := a.OverdueOrderID()
		if ok {
			require.False(t, overdueID.IsEqual(stale.ID()), "expired order is not flagged")
		}
	}
	orderRepo.AssertExpectations(t)
}
