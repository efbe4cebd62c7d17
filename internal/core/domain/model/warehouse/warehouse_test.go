package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldstore/internal/core/domain/model/box"
	"coldstore/internal/core/domain/model/kernel"
)

func newTestWarehouse(t *testing.T) *Warehouse {
	t.Helper()
	w, err := NewWarehouse("BOD-20260901-001", "Main cold store")
	require.NoError(t, err)
	return w
}

func mustBox(t *testing.T, position int, autoID, name string, temperature float64) *box.Box {
	t.Helper()
	b, err := box.NewBox(position, autoID, name, temperature)
	require.NoError(t, err)
	return b
}

func Test_NewWarehouse(t *testing.T) {
	t.Run("starts with twelve vacant slots and zero counters", func(t *testing.T) {
		w := newTestWarehouse(t)

		slots := w.Slots()
		require.Len(t, slots, SlotCount)
		for i, slot := range slots {
			assert.Equal(t, i+1, slot.Position())
			assert.False(t, slot.IsOccupied())
		}
		assert.Empty(t, w.Inbound())
		assert.Empty(t, w.Outbound())
		assert.Empty(t, w.Dispatched())
		assert.Zero(t, w.Stats().InboundRegistrations())
		assert.Zero(t, w.Stats().OutboundDispatches())
		assert.Zero(t, w.Stats().StorageMoves())
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := NewWarehouse("BOD-20260901-001", "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var w Warehouse
		assert.ErrorIs(t, w.Validate(), ErrWarehouseIsNotConstructed)
	})
}

func Test_Warehouse_RegisterInbound(t *testing.T) {
	t.Run("places the box and counts the registration", func(t *testing.T) {
		w := newTestWarehouse(t)

		err := w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4))
		require.NoError(t, err)

		found, ok := w.FindInbound(1)
		require.True(t, ok)
		assert.Equal(t, "BOX-20260901-001", found.AutoID())
		assert.Equal(t, 1, w.Stats().InboundRegistrations())
	})

	t.Run("rejects an occupied position", func(t *testing.T) {
		w := newTestWarehouse(t)
		require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)))

		err := w.RegisterInbound(mustBox(t, 1, "BOX-20260901-002", "Cod", -2))
		assert.ErrorIs(t, err, ErrPositionOccupied)
		assert.Equal(t, 1, w.Stats().InboundRegistrations())
	})

	t.Run("keeps boxes ordered by position", func(t *testing.T) {
		w := newTestWarehouse(t)
		require.NoError(t, w.RegisterInbound(mustBox(t, 3, "BOX-20260901-003", "Cod", -2)))
		require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)))

		inbound := w.Inbound()
		require.Len(t, inbound, 2)
		assert.Equal(t, 1, inbound[0].Position())
		assert.Equal(t, 3, inbound[1].Position())
	})
}

func Test_Warehouse_MoveToStorage(t *testing.T) {
	t.Run("moves an inbound box into a vacant slot", func(t *testing.T) {
		w := newTestWarehouse(t)
		require.NoError(t, w.RegisterInbound(mustBox(t, 2, "BOX-20260901-001", "Salmon", -4)))

		err := w.MoveToStorage(kernel.ZoneInbound, 2, 5)
		require.NoError(t, err)

		_, ok := w.FindInbound(2)
		assert.False(t, ok)
		slot, err := w.SlotAt(5)
		require.NoError(t, err)
		assert.True(t, slot.IsOccupied())
		assert.Equal(t, "BOX-20260901-001", slot.AutoID())
		require.NotNil(t, slot.Temperature())
		assert.InDelta(t, -4, *slot.Temperature(), 0.001)
		assert.Equal(t, 1, w.Stats().StorageMoves())
	})

	t.Run("relocates between slots", func(t *testing.T) {
		w := newTestWarehouse(t)
		require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)))
		require.NoError(t, w.MoveToStorage(kernel.ZoneInbound, 1, 3))

		err := w.MoveToStorage(kernel.ZoneStorage, 3, 7)
		require.NoError(t, err)

		from, err := w.SlotAt(3)
		require.NoError(t, err)
		assert.False(t, from.IsOccupied())
		to, err := w.SlotAt(7)
		require.NoError(t, err)
		assert.Equal(t, "BOX-20260901-001", to.AutoID())
		assert.Equal(t, 2, w.Stats().StorageMoves())
	})

	t.Run("fails when the source is gone", func(t *testing.T) {
		w := newTestWarehouse(t)

		err := w.MoveToStorage(kernel.ZoneInbound, 2, 5)
		assert.ErrorIs(t, err, ErrNoBoxAtPosition)
	})

	t.Run("fails when the target slot is occupied", func(t *testing.T) {
		w := newTestWarehouse(t)
		require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)))
		require.NoError(t, w.RegisterInbound(mustBox(t, 2, "BOX-20260901-002", "Cod", -2)))
		require.NoError(t, w.MoveToStorage(kernel.ZoneInbound, 1, 5))

		err := w.MoveToStorage(kernel.ZoneInbound, 2, 5)
		assert.ErrorIs(t, err, ErrPositionOccupied)
		_, ok := w.FindInbound(2)
		assert.True(t, ok, "source box stays put on failure")
	})

	t.Run("rejects a target outside the slot range", func(t *testing.T) {
		w := newTestWarehouse(t)
		require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)))

		assert.Error(t, w.MoveToStorage(kernel.ZoneInbound, 1, 0))
		assert.Error(t, w.MoveToStorage(kernel.ZoneInbound, 1, SlotCount+1))
	})
}

func Test_Warehouse_MoveToOutbound(t *testing.T) {
	t.Run("moves a stored box to the outbound zone", func(t *testing.T) {
		w := newTestWarehouse(t)
		require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)))
		require.NoError(t, w.MoveToStorage(kernel.ZoneInbound, 1, 4))

		err := w.MoveToOutbound(kernel.ZoneStorage, 4, 1)
		require.NoError(t, err)

		slot, err := w.SlotAt(4)
		require.NoError(t, err)
		assert.False(t, slot.IsOccupied())
		moved, ok := w.FindOutbound(1)
		require.True(t, ok)
		assert.Equal(t, "BOX-20260901-001", moved.AutoID())
		assert.InDelta(t, -4, moved.Temperature(), 0.001)
		assert.Equal(t, 1, w.Stats().OutboundDispatches())
	})

	t.Run("fails when the outbound position is taken", func(t *testing.T) {
		w := newTestWarehouse(t)
		require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)))
		require.NoError(t, w.RegisterInbound(mustBox(t, 2, "BOX-20260901-002", "Cod", -2)))
		require.NoError(t, w.MoveToOutbound(kernel.ZoneInbound, 1, 1))

		err := w.MoveToOutbound(kernel.ZoneInbound, 2, 1)
		assert.ErrorIs(t, err, ErrPositionOccupied)
	})
}

func Test_Warehouse_Dispatch(t *testing.T) {
	t.Run("archives the outbound box", func(t *testing.T) {
		w := newTestWarehouse(t)
		require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)))
		require.NoError(t, w.MoveToOutbound(kernel.ZoneInbound, 1, 2))

		b, err := w.Dispatch(2)
		require.NoError(t, err)
		assert.Equal(t, "BOX-20260901-001", b.AutoID())
		assert.Empty(t, w.Outbound())
		require.Len(t, w.Dispatched(), 1)
	})

	t.Run("fails when nothing sits at the position", func(t *testing.T) {
		w := newTestWarehouse(t)

		_, err := w.Dispatch(2)
		assert.ErrorIs(t, err, ErrNoBoxAtPosition)
	})
}

func Test_Warehouse_SetTemperature(t *testing.T) {
	w := newTestWarehouse(t)
	require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", 8)))
	require.NoError(t, w.RegisterInbound(mustBox(t, 2, "BOX-20260901-002", "Cod", 7)))
	require.NoError(t, w.MoveToStorage(kernel.ZoneInbound, 2, 6))

	t.Run("updates an inbound box", func(t *testing.T) {
		require.NoError(t, w.SetTemperature(kernel.ZoneInbound, 1, -3))
		b, ok := w.FindInbound(1)
		require.True(t, ok)
		assert.InDelta(t, -3, b.Temperature(), 0.001)
	})

	t.Run("updates a storage slot", func(t *testing.T) {
		require.NoError(t, w.SetTemperature(kernel.ZoneStorage, 6, -2))
		slot, err := w.SlotAt(6)
		require.NoError(t, err)
		require.NotNil(t, slot.Temperature())
		assert.InDelta(t, -2, *slot.Temperature(), 0.001)
	})

	t.Run("fails on an empty location", func(t *testing.T) {
		assert.ErrorIs(t, w.SetTemperature(kernel.ZoneStorage, 1, -2), ErrNoBoxAtPosition)
		assert.ErrorIs(t, w.SetTemperature(kernel.ZoneOutbound, 1, -2), ErrNoBoxAtPosition)
	})
}

func Test_Warehouse_Search(t *testing.T) {
	w := newTestWarehouse(t)
	require.NoError(t, w.RegisterInbound(mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)))
	require.NoError(t, w.RegisterInbound(mustBox(t, 2, "BOX-20260901-002", "Cod", -2)))
	require.NoError(t, w.MoveToStorage(kernel.ZoneInbound, 2, 9))

	t.Run("finds by auto id", func(t *testing.T) {
		hit, ok := w.Search("BOX-20260901-002")
		require.True(t, ok)
		assert.Equal(t, kernel.ZoneStorage, hit.Zone)
		assert.Equal(t, 9, hit.Position)
		assert.Equal(t, "Cod", hit.Name)
	})

	t.Run("finds by name", func(t *testing.T) {
		hit, ok := w.Search("Salmon")
		require.True(t, ok)
		assert.Equal(t, kernel.ZoneInbound, hit.Zone)
		assert.Equal(t, 1, hit.Position)
	})

	t.Run("reports a miss", func(t *testing.T) {
		_, ok := w.Search("nope")
		assert.False(t, ok)
	})
}

func Test_RestoreWarehouse(t *testing.T) {
	temp := -3.5

	makeSlots := func(t *testing.T) []Slot {
		t.Helper()
		slots := make([]Slot, 0, SlotCount)
		for position := 1; position <= SlotCount; position++ {
			slot, err := NewEmptySlot(position)
			require.NoError(t, err)
			slots = append(slots, slot)
		}
		return slots
	}

	t.Run("rebuilds a populated warehouse", func(t *testing.T) {
		slots := makeSlots(t)
		occupied, err := RestoreSlot(3, "BOX-20260831-010", "Trout", &temp)
		require.NoError(t, err)
		slots[2] = occupied

		stats, err := RestoreStats(4, 2, 3)
		require.NoError(t, err)

		w, err := RestoreWarehouse(
			"BOD-20260901-001",
			"Main cold store",
			slots,
			[]*box.Box{mustBox(t, 1, "BOX-20260901-001", "Salmon", -4)},
			[]*box.Box{mustBox(t, 2, "BOX-20260901-002", "Cod", -2)},
			[]*box.Box{mustBox(t, 1, "BOX-20260830-001", "Bass", -1)},
			stats,
		)
		require.NoError(t, err)

		slot, err := w.SlotAt(3)
		require.NoError(t, err)
		assert.Equal(t, "BOX-20260831-010", slot.AutoID())
		assert.Equal(t, 4, w.Stats().InboundRegistrations())
		assert.Equal(t, 2, w.Stats().OutboundDispatches())
		assert.Equal(t, 3, w.Stats().StorageMoves())
		require.Len(t, w.Dispatched(), 1)
	})

	t.Run("rejects a wrong slot count", func(t *testing.T) {
		_, err := RestoreWarehouse("BOD-20260901-001", "Main", makeSlots(t)[:5], nil, nil, nil, Stats{})
		require.Error(t, err)
	})

	t.Run("rejects duplicate positions within a zone", func(t *testing.T) {
		_, err := RestoreWarehouse(
			"BOD-20260901-001",
			"Main",
			makeSlots(t),
			[]*box.Box{
				mustBox(t, 1, "BOX-20260901-001", "Salmon", -4),
				mustBox(t, 1, "BOX-20260901-002", "Cod", -2),
			},
			nil, nil, Stats{},
		)
		require.Error(t, err)
	})
}

func Test_RestoreSlot(t *testing.T) {
	t.Run("vacant slot rejects stray box fields", func(t *testing.T) {
		_, err := RestoreSlot(1, "", "Salmon", nil)
		require.Error(t, err)
	})

	t.Run("occupied slot without temperature", func(t *testing.T) {
		slot, err := RestoreSlot(1, "BOX-20260901-001", "Salmon", nil)
		require.NoError(t, err)
		assert.True(t, slot.IsOccupied())
		assert.Nil(t, slot.Temperature())
	})
}
