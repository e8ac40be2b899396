package store

import (
	"context"
	"errors"

	"logitrans-backend/models/cargo"
	"logitrans-backend/models/point"
	"logitrans-backend/models/shipment"
)

// Storage-level sentinel errors. Callers match these with errors.Is.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Store is the persistence boundary of the cargo/shipment lifecycle. It is
// implemented by Postgres for production and Memory for tests.
type Store interface {
	// Cargo
	CreateCargo(ctx context.Context, c *cargo.Cargo) error
	GetCargo(ctx context.Context, track string) (*cargo.Cargo, error)
	UpdateCargo(ctx context.Context, c *cargo.Cargo) error
	DeleteCargo(ctx context.Context, track string) error

	// Points (read side only; directory CRUD goes through its own controller)
	GetPoint(ctx context.Context, name string) (*point.Point, error)

	// Live shipments
	CreateShipment(ctx context.Context, s *shipment.Shipment) error
	GetShipment(ctx context.Context, cargoTrack, pointName string) (*shipment.Shipment, error)
	UpdateShipment(ctx context.Context, s *shipment.Shipment) error
	DeleteShipment(ctx context.Context, cargoTrack, pointName string) error
	ListShipmentsByPoint(ctx context.Context, pointName string) ([]shipment.Shipment, error)
	ListShipmentsByTrack(ctx context.Context, cargoTrack string) ([]shipment.Shipment, error)
	SlotOccupied(ctx context.Context, pointName, slot, excludeTrack string) (bool, error)

	// Archive and status history
	MoveToArchive(ctx context.Context, cargoTrack string) (int, error)
	AppendStatusEvent(ctx context.Context, ev *shipment.StatusEvent) error
	ListStatusEvents(ctx context.Context, cargoTrack string) ([]shipment.StatusEvent, error)

	// WithinTransaction runs fn against a store bound to a single transaction.
	// Any error from fn rolls the whole unit back.
	WithinTransaction(ctx context.Context, fn func(Store) error) error
}
