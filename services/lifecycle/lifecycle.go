package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logitrans-backend/models/cargo"
	"logitrans-backend/models/shipment"
	"logitrans-backend/services/pricing"
	"logitrans-backend/store"

	"github.com/shopspring/decimal"
)

// Domain errors of the cargo/shipment lifecycle. Controllers map these onto
// HTTP statuses; store.ErrNotFound passes through for missing references.
var (
	ErrDuplicateTrack    = errors.New("cargo track already exists")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrSlotOccupied      = errors.New("slot is already occupied")
	ErrCargoInUse        = errors.New("cargo has live shipments")
)

// Service owns cargo creation, shipment movement, archival and the status
// history. All multi-row writes run inside a single store transaction.
type Service struct {
	store   store.Store
	pricing *pricing.Service
	// clock allows tests to pin "now" for rows created without an explicit
	// timestamp.
	clock func() time.Time
}

func NewService(st store.Store, pr *pricing.Service) *Service {
	return &Service{
		store:   st,
		pricing: pr,
		clock:   time.Now,
	}
}

// CreateCargoInput carries the operator's cargo form. Price nil means
// "compute via pricing"; a non-nil price is an administrative override.
type CreateCargoInput struct {
	Track         string
	Type          cargo.Type
	Delivery      cargo.Delivery
	SenderPhone   string
	ReceiverPhone string
	Price         *decimal.Decimal
	Mass          *float64
	DeclaredValue *decimal.Decimal
	Packaging     bool
	Insurance     bool
	CreatedBy     string
}

func (in CreateCargoInput) validate() error {
	if in.Track == "" {
		return fmt.Errorf("%w: track is required", ErrValidation)
	}
	if !in.Type.IsValid() {
		return fmt.Errorf("%w: unknown cargo type %q", ErrValidation, in.Type)
	}
	if !in.Delivery.IsValid() {
		return fmt.Errorf("%w: unknown delivery tier %q", ErrValidation, in.Delivery)
	}
	if in.Mass != nil && *in.Mass < 0 {
		return fmt.Errorf("%w: mass must be non-negative", ErrValidation)
	}
	if in.DeclaredValue != nil && in.DeclaredValue.IsNegative() {
		return fmt.Errorf("%w: declared value must be non-negative", ErrValidation)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	return nil
}

// CreateCargo persists a new cargo record, computing the price when the
// caller did not supply one.
func (s *Service) CreateCargo(ctx context.Context, in CreateCargoInput) (*cargo.Cargo, error) {
	return s.createCargo(ctx, s.store, in)
}

func (s *Service) createCargo(ctx context.Context, st store.Store, in CreateCargoInput) (*cargo.Cargo, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	price := decimal.Zero
	if in.Price != nil {
		price = *in.Price
	} else {
		quoted, err := s.pricing.Quote(in.Mass, in.Type, in.Delivery, in.Packaging, in.Insurance)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		price = quoted
	}

	c := &cargo.Cargo{
		Track:         in.Track,
		Type:          in.Type,
		Delivery:      in.Delivery,
		SenderPhone:   in.SenderPhone,
		ReceiverPhone: in.ReceiverPhone,
		Price:         price,
		Mass:          in.Mass,
		DeclaredValue: in.DeclaredValue,
		Packaging:     in.Packaging,
		Insurance:     in.Insurance,
		CreatedBy:     in.CreatedBy,
	}
	if err := st.CreateCargo(ctx, c); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateTrack
		}
		return nil, err
	}
	return c, nil
}

// CreateShipmentInput carries the origin (or next) leg of a cargo's journey.
type CreateShipmentInput struct {
	CargoTrack  string
	PointName   string
	Slot        string
	Status      shipment.Status
	EmployeeFio string
	Date        time.Time
}

// CreateShipment books a cargo into a point slot and records the first
// status event of that leg.
func (s *Service) CreateShipment(ctx context.Context, in CreateShipmentInput) (*shipment.Shipment, error) {
	var out *shipment.Shipment
	err := s.store.WithinTransaction(ctx, func(tx store.Store) error {
		var err error
		out, err = s.createShipment(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) createShipment(ctx context.Context, st store.Store, in CreateShipmentInput) (*shipment.Shipment, error) {
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	if in.Slot == "" {
		return nil, fmt.Errorf("%w: slot is required", ErrValidation)
	}
	if _, err := st.GetCargo(ctx, in.CargoTrack); err != nil {
		return nil, err
	}
	if _, err := st.GetPoint(ctx, in.PointName); err != nil {
		return nil, err
	}
	occupied, err := st.SlotOccupied(ctx, in.PointName, in.Slot, "")
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, ErrSlotOccupied
	}

	date := in.Date
	if date.IsZero() {
		date = s.clock()
	}
	sh := &shipment.Shipment{
		CargoTrack:  in.CargoTrack,
		PointName:   in.PointName,
		Slot:        in.Slot,
		Status:      in.Status,
		EmployeeFio: in.EmployeeFio,
		Date:        date,
	}
	if err := st.CreateShipment(ctx, sh); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrSlotOccupied
		}
		return nil, err
	}
	if err := st.AppendStatusEvent(ctx, statusEvent(sh)); err != nil {
		return nil, err
	}
	return sh, nil
}

// CreateCargoWithShipment is the operator flow: cargo plus its origin leg in
// one transaction, so a failure on either side leaves nothing behind. The
// legacy client issued these as two independent calls and could strand a
// cargo without a shipment.
func (s *Service) CreateCargoWithShipment(ctx context.Context, cargoIn CreateCargoInput, shipIn CreateShipmentInput) (*cargo.Cargo, *shipment.Shipment, error) {
	var (
		c  *cargo.Cargo
		sh *shipment.Shipment
	)
	err := s.store.WithinTransaction(ctx, func(tx store.Store) error {
		var err error
		c, err = s.createCargo(ctx, tx, cargoIn)
		if err != nil {
			return err
		}
		shipIn.CargoTrack = cargoIn.Track
		sh, err = s.createShipment(ctx, tx, shipIn)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return c, sh, nil
}

// UpdateShipmentInput mutates the live leg identified by (track, point).
type UpdateShipmentInput struct {
	CargoTrack  string
	PointName   string
	NewSlot     string
	NewStatus   shipment.Status
	EmployeeFio string
	Date        time.Time
}

// UpdateShipment moves a live shipment along its lifecycle. Status order is
// monotonic: booked -> in_transit -> delivered. Reaching the terminal status
// archives every live leg of the track in the same transaction.
func (s *Service) UpdateShipment(ctx context.Context, in UpdateShipmentInput) (*shipment.Shipment, error) {
	if !in.NewStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, in.NewStatus)
	}
	if in.NewSlot == "" {
		return nil, fmt.Errorf("%w: slot is required", ErrValidation)
	}

	var out *shipment.Shipment
	err := s.store.WithinTransaction(ctx, func(tx store.Store) error {
		cur, err := tx.GetShipment(ctx, in.CargoTrack, in.PointName)
		if err != nil {
			return err
		}
		if !cur.Status.CanTransitionTo(in.NewStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur.Status, in.NewStatus)
		}
		if in.NewSlot != cur.Slot {
			occupied, err := tx.SlotOccupied(ctx, in.PointName, in.NewSlot, in.CargoTrack)
			if err != nil {
				return err
			}
			if occupied {
				return ErrSlotOccupied
			}
		}

		date := in.Date
		if date.IsZero() {
			date = s.clock()
		}
		upd := &shipment.Shipment{
			CargoTrack:  in.CargoTrack,
			PointName:   in.PointName,
			Slot:        in.NewSlot,
			Status:      in.NewStatus,
			EmployeeFio: in.EmployeeFio,
			Date:        date,
		}
		if err := tx.UpdateShipment(ctx, upd); err != nil {
			return err
		}
		if err := tx.AppendStatusEvent(ctx, statusEvent(upd)); err != nil {
			return err
		}
		if in.NewStatus.IsTerminal() {
			if _, err := tx.MoveToArchive(ctx, in.CargoTrack); err != nil {
				return err
			}
		}
		out = upd
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ArchiveShipment moves every live leg of a track into the archive. It is
// normally driven by UpdateShipment on the terminal status; the explicit
// operation remains for recovering delivered-but-not-archived rows.
func (s *Service) ArchiveShipment(ctx context.Context, cargoTrack string) error {
	return s.store.WithinTransaction(ctx, func(tx store.Store) error {
		_, err := tx.MoveToArchive(ctx, cargoTrack)
		return err
	})
}

// UpdateCargoInput is the administrative overwrite, price included. Price is
// stored as given; no recomputation happens here.
type UpdateCargoInput struct {
	Track         string
	Type          cargo.Type
	Delivery      cargo.Delivery
	Price         decimal.Decimal
	Mass          *float64
	DeclaredValue *decimal.Decimal
	Packaging     bool
	Insurance     bool
}

func (s *Service) UpdateCargo(ctx context.Context, in UpdateCargoInput) (*cargo.Cargo, error) {
	if !in.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown cargo type %q", ErrValidation, in.Type)
	}
	if !in.Delivery.IsValid() {
		return nil, fmt.Errorf("%w: unknown delivery tier %q", ErrValidation, in.Delivery)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if in.Mass != nil && *in.Mass < 0 {
		return nil, fmt.Errorf("%w: mass must be non-negative", ErrValidation)
	}

	c := &cargo.Cargo{
		Track:         in.Track,
		Type:          in.Type,
		Delivery:      in.Delivery,
		Price:         in.Price,
		Mass:          in.Mass,
		DeclaredValue: in.DeclaredValue,
		Packaging:     in.Packaging,
		Insurance:     in.Insurance,
	}
	if err := s.store.UpdateCargo(ctx, c); err != nil {
		return nil, err
	}
	return s.store.GetCargo(ctx, in.Track)
}

// DeleteCargo hard-deletes a cargo. Deletion is restricted while live
// shipments still reference the track.
func (s *Service) DeleteCargo(ctx context.Context, track string) error {
	live, err := s.store.ListShipmentsByTrack(ctx, track)
	if err != nil {
		return err
	}
	if len(live) > 0 {
		return ErrCargoInUse
	}
	return s.store.DeleteCargo(ctx, track)
}

// DeleteShipment hard-deletes one live leg.
func (s *Service) DeleteShipment(ctx context.Context, cargoTrack, pointName string) error {
	return s.store.DeleteShipment(ctx, cargoTrack, pointName)
}

// GetCargo fetches one cargo by track.
func (s *Service) GetCargo(ctx context.Context, track string) (*cargo.Cargo, error) {
	return s.store.GetCargo(ctx, track)
}

// GetCargoStatus returns the chronological status history of a track. An
// unknown track yields an empty slice, never an error; the tracking screen
// distinguishes "not found" by emptiness.
func (s *Service) GetCargoStatus(ctx context.Context, track string) ([]shipment.StatusEvent, error) {
	events, err := s.store.ListStatusEvents(ctx, track)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []shipment.StatusEvent{}
	}
	return events, nil
}

// GetShipmentsByPoint lists the live (non-archived) shipments at a point.
func (s *Service) GetShipmentsByPoint(ctx context.Context, pointName string) ([]shipment.Shipment, error) {
	out, err := s.store.ListShipmentsByPoint(ctx, pointName)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []shipment.Shipment{}
	}
	return out, nil
}

func statusEvent(sh *shipment.Shipment) *shipment.StatusEvent {
	return &shipment.StatusEvent{
		CargoTrack:  sh.CargoTrack,
		PointName:   sh.PointName,
		Slot:        sh.Slot,
		Status:      sh.Status,
		EmployeeFio: sh.EmployeeFio,
		Date:        sh.Date,
	}
}
