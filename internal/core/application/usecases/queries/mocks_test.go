package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coldstore/internal/core/domain/model/alert"
	"coldstore/internal/core/domain/model/box"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/core/domain/model/workorder"
)

type MockWarehouseReader struct{ mock.Mock }

func (m *MockWarehouseReader) Get(ctx context.Context) (*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

type MockWorkOrderReader struct{ mock.Mock }

func (m *MockWorkOrderReader) GetAllPending(ctx context.Context) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

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
	for i := range b.alerts {
		if b.alerts[i].ID() == a.ID() {
			b.alerts[i] = a
			return
		}
	}
	b.alerts = append(b.alerts, a)
}

func (b *fakeAlertBoard) Remove(id string) bool {
	for i := range b.alerts {
		if b.alerts[i].ID() == id {
			b.alerts = append(b.alerts[:i], b.alerts[i+1:]...)
			return true
		}
	}
	return false
}

func stockedWarehouse(t *testing.T) *warehouse.Warehouse {
	t.Helper()

	w, err := warehouse.NewWarehouse("BOD-20260901-001", "Main cold store")
	require.NoError(t, err)

	salmon, err := box.NewBox(1, "BOX-20260901-001", "Salmon", -4)
	require.NoError(t, err)
	require.NoError(t, w.RegisterInbound(salmon))

	cod, err := box.NewBox(2, "BOX-20260901-002", "Cod", -2)
	require.NoError(t, err)
	require.NoError(t, w.RegisterInbound(cod))

	require.NoError(t, w.MoveToStorage(kernel.ZoneInbound, 2, 5))

	return w
}
