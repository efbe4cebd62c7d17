package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coldstore/internal/core/application/usecases/commands"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/services"
)

func newRegisterHandler(factory commands.WarehouseUoWFactory, sequences *MockSequenceGenerator) commands.RegisterInboundBoxCommandHandler {
	return commands.NewRegisterInboundBoxCommandHandler(
		factory,
		role.NewPolicy(true, false),
		services.NewPositionAllocator(),
		sequences,
	)
}

func TestRegisterInboundBoxCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterInboundBoxCommand(role.Custodian, "Salmon crate", -4.5)
	require.NoError(t, err)

	aggregate := warehouseWithInbound(t)
	sequences := new(MockSequenceGenerator)
	sequences.On("Next", ctx, kernel.PrefixBox, mock.AnythingOfType("string")).Return(7, nil).Once()

	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx).Return(aggregate, nil).Once(),
		warehouseRepo.On("Save", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWarehouseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newRegisterHandler(factory, sequences)
	require.NoError(t, h.Handle(ctx, cmd))

	inbound := aggregate.Inbound()
	require.Len(t, inbound, 1)
	require.Equal(t, 1, inbound[0].Position())
	require.Regexp(t, `^BOX-\d{8}-007$`, inbound[0].AutoID())
	require.Equal(t, 1, aggregate.Stats().InboundRegistrations())
	sequences.AssertExpectations(t)
}

func TestRegisterInboundBoxCommandHandler_Handle_SequenceFallback(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterInboundBoxCommand(role.Custodian, "Cod crate", -2)
	require.NoError(t, err)

	aggregate := warehouseWithInbound(t)
	sequences := new(MockSequenceGenerator)
	sequences.On("Next", ctx, kernel.PrefixBox, mock.AnythingOfType("string")).
		Return(0, errors.New("sequence unavailable")).Once()

	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx).Return(aggregate, nil).Once(),
		warehouseRepo.On("Save", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWarehouseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newRegisterHandler(factory, sequences)
	require.NoError(t, h.Handle(ctx, cmd))

	inbound := aggregate.Inbound()
	require.Len(t, inbound, 1)
	require.Regexp(t, `^BOX-\d{8}-\d{3}$`, inbound[0].AutoID())
}

func TestRegisterInboundBoxCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterInboundBoxCommand(role.Operator, "Salmon crate", -4.5)
	require.NoError(t, err)

	factory := new(MockWarehouseUoWFactory)
	h := newRegisterHandler(factory, new(MockSequenceGenerator))
	require.ErrorIs(t, h.Handle(ctx, cmd), role.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}
