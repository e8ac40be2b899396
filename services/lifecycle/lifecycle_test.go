package lifecycle

import (
	"context"
	"testing"
	"time"

	"logitrans-backend/models/cargo"
	"logitrans-backend/models/point"
	"logitrans-backend/models/shipment"
	"logitrans-backend/services/pricing"
	"logitrans-backend/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	mem.AddPoint(point.Point{Name: "Central Warehouse"})
	mem.AddPoint(point.Point{Name: "North Terminal"})

	svc := NewService(mem, pricing.NewService(pricing.DefaultConfig()))
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	step := 0
	svc.clock = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}
	return svc, mem
}

func TestCreateCargoComputesPrice(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateCargo(context.Background(), CreateCargoInput{
		Track:    "TRK-1",
		Type:     cargo.TypeSmall,
		Delivery: cargo.DeliveryStandard,
	})
	require.NoError(t, err)
	assert.True(t, created.Price.Equal(decimal.NewFromInt(100)), "got %s", created.Price)
}

func TestCreateCargoPriceOverride(t *testing.T) {
	svc, _ := newTestService(t)

	override := decimal.NewFromInt(999)
	created, err := svc.CreateCargo(context.Background(), CreateCargoInput{
		Track:    "TRK-1",
		Type:     cargo.TypeSmall,
		Delivery: cargo.DeliveryStandard,
		Price:    &override,
	})
	require.NoError(t, err)
	assert.True(t, created.Price.Equal(override))
}

func TestCreateCargoDuplicateTrack(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in := CreateCargoInput{Track: "TRK-1", Type: cargo.TypeSmall, Delivery: cargo.DeliveryStandard}
	_, err := svc.CreateCargo(ctx, in)
	require.NoError(t, err)

	_, err = svc.CreateCargo(ctx, in)
	assert.ErrorIs(t, err, ErrDuplicateTrack)
}

func TestCreateCargoValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateCargo(context.Background(), CreateCargoInput{
		Track:    "",
		Type:     cargo.TypeSmall,
		Delivery: cargo.DeliveryStandard,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateCargo(context.Background(), CreateCargoInput{
		Track:    "TRK-X",
		Type:     cargo.Type("pallet"),
		Delivery: cargo.DeliveryStandard,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateShipmentUnknownPointPersistsNothing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCargo(ctx, CreateCargoInput{Track: "TRK-1", Type: cargo.TypeSmall, Delivery: cargo.DeliveryStandard})
	require.NoError(t, err)

	_, err = svc.CreateShipment(ctx, CreateShipmentInput{
		CargoTrack: "TRK-1",
		PointName:  "No Such Point",
		Slot:       "A1",
		Status:     shipment.StatusBooked,
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	live, err := svc.store.ListShipmentsByTrack(ctx, "TRK-1")
	require.NoError(t, err)
	assert.Empty(t, live)

	history, err := svc.GetCargoStatus(ctx, "TRK-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCreateShipmentSlotOccupied(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, track := range []string{"TRK-1", "TRK-2"} {
		_, err := svc.CreateCargo(ctx, CreateCargoInput{Track: track, Type: cargo.TypeSmall, Delivery: cargo.DeliveryStandard})
		require.NoError(t, err)
	}

	_, err := svc.CreateShipment(ctx, CreateShipmentInput{
		CargoTrack: "TRK-1", PointName: "Central Warehouse", Slot: "A1", Status: shipment.StatusBooked,
	})
	require.NoError(t, err)

	_, err = svc.CreateShipment(ctx, CreateShipmentInput{
		CargoTrack: "TRK-2", PointName: "Central Warehouse", Slot: "A1", Status: shipment.StatusBooked,
	})
	assert.ErrorIs(t, err, ErrSlotOccupied)

	// Same slot name at a different point is fine.
	_, err = svc.CreateShipment(ctx, CreateShipmentInput{
		CargoTrack: "TRK-2", PointName: "North Terminal", Slot: "A1", Status: shipment.StatusBooked,
	})
	assert.NoError(t, err)
}

func TestCreateCargoWithShipmentRollsBackTogether(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.CreateCargoWithShipment(ctx,
		CreateCargoInput{Track: "TRK-1", Type: cargo.TypeSmall, Delivery: cargo.DeliveryStandard},
		CreateShipmentInput{PointName: "No Such Point", Slot: "A1", Status: shipment.StatusBooked},
	)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The cargo from the failed booking must not survive.
	_, err = svc.GetCargo(ctx, "TRK-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBookedShipmentVisibleAtPoint(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mass := 2.0
	_, err := svc.CreateCargo(ctx, CreateCargoInput{
		Track: "T1", Type: cargo.TypeSmall, Delivery: cargo.DeliveryStandard, Mass: &mass,
	})
	require.NoError(t, err)
	_, err = svc.CreateShipment(ctx, CreateShipmentInput{
		CargoTrack: "T1", PointName: "Central Warehouse", Slot: "S1",
		Status: shipment.StatusBooked, EmployeeFio: "Ivanov",
	})
	require.NoError(t, err)

	atPoint, err := svc.GetShipmentsByPoint(ctx, "Central Warehouse")
	require.NoError(t, err)
	require.Len(t, atPoint, 1)
	assert.Equal(t, "T1", atPoint[0].CargoTrack)
	assert.Equal(t, "S1", atPoint[0].Slot)
	assert.Equal(t, shipment.StatusBooked, atPoint[0].Status)
	assert.Equal(t, "Ivanov", atPoint[0].EmployeeFio)
}

func TestDeliveredShipmentIsArchived(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	_, sh, err := svc.CreateCargoWithShipment(ctx,
		CreateCargoInput{Track: "TRK-1", Type: cargo.TypeMedium, Delivery: cargo.DeliveryExpress},
		CreateShipmentInput{PointName: "Central Warehouse", Slot: "A1", Status: shipment.StatusBooked},
	)
	require.NoError(t, err)
	require.Equal(t, shipment.StatusBooked, sh.Status)

	_, err = svc.UpdateShipment(ctx, UpdateShipmentInput{
		CargoTrack: "TRK-1", PointName: "Central Warehouse", NewSlot: "A1", NewStatus: shipment.StatusInTransit,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateShipment(ctx, UpdateShipmentInput{
		CargoTrack: "TRK-1", PointName: "Central Warehouse", NewSlot: "A1", NewStatus: shipment.StatusDelivered,
	})
	require.NoError(t, err)
	assert.True(t, updated.Status.IsTerminal())

	// The live set is empty and the point view no longer shows the leg.
	live, err := svc.GetShipmentsByPoint(ctx, "Central Warehouse")
	require.NoError(t, err)
	assert.Empty(t, live)

	// The archive holds the leg.
	archived := mem.Archived()
	require.Len(t, archived, 1)
	assert.Equal(t, "TRK-1", archived[0].CargoTrack)
	assert.Equal(t, shipment.StatusDelivered, archived[0].Status)

	// History survives archival: booked, in_transit, delivered in order.
	history, err := svc.GetCargoStatus(ctx, "TRK-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, shipment.StatusBooked, history[0].Status)
	assert.Equal(t, shipment.StatusInTransit, history[1].Status)
	assert.Equal(t, shipment.StatusDelivered, history[2].Status)
	assert.True(t, history[0].Date.Before(history[2].Date))
}

func TestStatusRegressionRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.CreateCargoWithShipment(ctx,
		CreateCargoInput{Track: "TRK-1", Type: cargo.TypeSmall, Delivery: cargo.DeliveryStandard},
		CreateShipmentInput{PointName: "Central Warehouse", Slot: "A1", Status: shipment.StatusBooked},
	)
	require.NoError(t, err)

	_, err = svc.UpdateShipment(ctx, UpdateShipmentInput{
		CargoTrack: "TRK-1", PointName: "Central Warehouse", NewSlot: "A1", NewStatus: shipment.StatusInTransit,
	})
	require.NoError(t, err)

	_, err = svc.UpdateShipment(ctx, UpdateShipmentInput{
		CargoTrack: "TRK-1", PointName: "Central Warehouse", NewSlot: "A1", NewStatus: shipment.StatusBooked,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateShipmentSlotConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, tc := range []struct{ track, slot string }{{"TRK-1", "A1"}, {"TRK-2", "A2"}} {
		_, _, err := svc.CreateCargoWithShipment(ctx,
			CreateCargoInput{Track: tc.track, Type: cargo.TypeSmall, Delivery: cargo.DeliveryStandard},
			CreateShipmentInput{PointName: "Central Warehouse", Slot: tc.slot, Status: shipment.StatusBooked},
		)
		require.NoError(t, err)
	}

	// Moving TRK-2 into TRK-1's slot must fail.
	_, err := svc.UpdateShipment(ctx, UpdateShipmentInput{
		CargoTrack: "TRK-2", PointName: "Central Warehouse", NewSlot: "A1", NewStatus: shipment.StatusBooked,
	})
	assert.ErrorIs(t, err, ErrSlotOccupied)

	// Keeping its own slot while advancing status is fine.
	_, err = svc.UpdateShipment(ctx, UpdateShipmentInput{
		CargoTrack: "TRK-2", PointName: "Central Warehouse", NewSlot: "A2", NewStatus: shipment.StatusInTransit,
	})
	assert.NoError(t, err)
}

func TestDeleteCargoRestrictedWhileShipped(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.CreateCargoWithShipment(ctx,
		CreateCargoInput{Track: "TRK-1", Type: cargo.TypeSmall, Delivery: cargo.DeliveryStandard},
		CreateShipmentInput{PointName: "Central Warehouse", Slot: "A1", Status: shipment.StatusBooked},
	)
	require.NoError(t, err)

	err = svc.DeleteCargo(ctx, "TRK-1")
	assert.ErrorIs(t, err, ErrCargoInUse)

	require.NoError(t, svc.DeleteShipment(ctx, "TRK-1", "Central Warehouse"))
	assert.NoError(t, svc.DeleteCargo(ctx, "TRK-1"))
}

func TestGetCargoStatusUnknownTrack(t *testing.T) {
	svc, _ := newTestService(t)

	history, err := svc.GetCargoStatus(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestArchiveShipmentMovesAllLegs(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.CreateCargoWithShipment(ctx,
		CreateCargoInput{Track: "TRK-1", Type: cargo.TypeSmall, Delivery: cargo.DeliveryStandard},
		CreateShipmentInput{PointName: "Central Warehouse", Slot: "A1", Status: shipment.StatusBooked},
	)
	require.NoError(t, err)
	_, err = svc.CreateShipment(ctx, CreateShipmentInput{
		CargoTrack: "TRK-1", PointName: "North Terminal", Slot: "B1", Status: shipment.StatusInTransit,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ArchiveShipment(ctx, "TRK-1"))

	live, err := svc.store.ListShipmentsByTrack(ctx, "TRK-1")
	require.NoError(t, err)
	assert.Empty(t, live)
	assert.Len(t, mem.Archived(), 2)
}
