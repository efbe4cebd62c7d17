package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coldstore/internal/core/application/usecases/commands"
	"coldstore/internal/core/domain/model/alert"
	"coldstore/internal/core/domain/model/box"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/core/domain/model/workorder"
	"coldstore/internal/core/ports"
)

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Get(ctx context.Context) (*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, aggregate *warehouse.Warehouse) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, order *workorder.WorkOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, order *workorder.WorkOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetAllPending(ctx context.Context) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockSequenceGenerator struct{ mock.Mock }

func (m *MockSequenceGenerator) Next(ctx context.Context, prefix, dateKey string) (int, error) {
	args := m.Called(ctx, prefix, dateKey)
	return args.Int(0), args.Error(1)
}

// fakeAlertBoard is a plain in-memory board; board behavior itself is
// covered by the adapter tests.
type fakeAlertBoard struct {
	alerts []alert.Alert
}

func (b *fakeAlertBoard) List() []alert.Alert {
	return append([]alert.Alert(nil), b.alerts...)
}

func (b *fakeAlertBoard) Get(id string) (alert.Alert, bool) {
	for _, a := range b.alerts {
		if a.ID() == id {
			return a, true
		}
	}
	return alert.Alert{}, false
}

func (b *fakeAlertBoard) Replace(alerts []alert.Alert) {
	b.alerts = append([]alert.Alert(nil), alerts...)
}

func (b *fakeAlertBoard) Upsert(a alert.Alert) {
	for i, existing := range b.alerts {
		if existing.ID() == a.ID() {
			b.alerts[i] = a
			return
		}
	}
	b.alerts = append(b.alerts, a)
}

func (b *fakeAlertBoard) Remove(id string) bool {
	for i, existing := range b.alerts {
		if existing.ID() == id {
			b.alerts = append(b.alerts[:i], b.alerts[i+1:]...)
			return true
		}
	}
	return false
}

func warehouseWithInbound(t *testing.T, boxes ...string) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse("BOD-20260901-001", "Main cold store")
	require.NoError(t, err)
	for i, autoID := range boxes {
		b, err := box.NewBox(i+1, autoID, autoID, -4)
		require.NoError(t, err)
		require.NoError(t, w.RegisterInbound(b))
	}
	return w
}
