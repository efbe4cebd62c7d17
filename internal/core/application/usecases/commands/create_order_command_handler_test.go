package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coldstore/internal/core/application/usecases/commands"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/model/workorder"
	"coldstore/internal/core/domain/services"
)

func newCreateOrderHandler(factory commands.UoWFactory) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		factory,
		role.NewPolicy(true, false),
		services.NewOrderPlacer(services.NewPositionAllocator(), true),
	)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := 3
	cmd, err := commands.NewCreateOrderCommand(role.Supervisor, workorder.TypeToStorage, kernel.ZoneInbound, 1, &target)
	require.NoError(t, err)

	warehouseRepo := new(MockWarehouseRepository)
	orderRepo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx).Return(warehouseWithInbound(t, "BOX-20260901-001"), nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPending", ctx).Return([]*workorder.WorkOrder{}, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*workorder.WorkOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	warehouseRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()
	target := 3
	cmd, err := commands.NewCreateOrderCommand(role.Operator, workorder.TypeToStorage, kernel.ZoneInbound, 1, &target)
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	h := newCreateOrderHandler(factory)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, role.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := newCreateOrderHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateOrderCommandHandler_Handle_NoEligibleSource(t *testing.T) {
	ctx := t.Context()
	target := 3
	cmd, err := commands.NewCreateOrderCommand(role.Supervisor, workorder.TypeToStorage, kernel.ZoneInbound, 7, &target)
	require.NoError(t, err)

	warehouseRepo := new(MockWarehouseRepository)
	orderRepo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx).Return(warehouseWithInbound(t, "BOX-20260901-001"), nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPending", ctx).Return([]*workorder.WorkOrder{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrNoEligibleSource)
	orderRepo.AssertNotCalled(t, "Add")
}
