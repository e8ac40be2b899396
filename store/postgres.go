package store

import (
	"context"
	"errors"
	"strings"

	"logitrans-backend/models/cargo"
	"logitrans-backend/models/point"
	"logitrans-backend/models/shipment"

	"gorm.io/gorm"
)

// Postgres implements Store on top of GORM.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

// translateError maps GORM/driver errors onto the store sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		return ErrDuplicate
	}
	return err
}

func (p *Postgres) CreateCargo(ctx context.Context, c *cargo.Cargo) error {
	return translateError(p.db.WithContext(ctx).Create(c).Error)
}

func (p *Postgres) GetCargo(ctx context.Context, track string) (*cargo.Cargo, error) {
	var c cargo.Cargo
	if err := p.db.WithContext(ctx).Where("track = ?", track).First(&c).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (p *Postgres) UpdateCargo(ctx context.Context, c *cargo.Cargo) error {
	res := p.db.WithContext(ctx).Model(&cargo.Cargo{}).Where("track = ?", c.Track).
		Select("type", "delivery", "price", "mass", "declared_value", "packaging", "insurance").
		Updates(c)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteCargo(ctx context.Context, track string) error {
	res := p.db.WithContext(ctx).Where("track = ?", track).Delete(&cargo.Cargo{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) GetPoint(ctx context.Context, name string) (*point.Point, error) {
	var pt point.Point
	if err := p.db.WithContext(ctx).Where("name = ?", name).First(&pt).Error; err != nil {
		return nil, translateError(err)
	}
	return &pt, nil
}

func (p *Postgres) CreateShipment(ctx context.Context, s *shipment.Shipment) error {
	return translateError(p.db.WithContext(ctx).Create(s).Error)
}

func (p *Postgres) GetShipment(ctx context.Context, cargoTrack, pointName string) (*shipment.Shipment, error) {
	var s shipment.Shipment
	err := p.db.WithContext(ctx).
		Where("cargo_track = ? AND point_name = ?", cargoTrack, pointName).
		First(&s).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

func (p *Postgres) UpdateShipment(ctx context.Context, s *shipment.Shipment) error {
	res := p.db.WithContext(ctx).Model(&shipment.Shipment{}).
		Where("cargo_track = ? AND point_name = ?", s.CargoTrack, s.PointName).
		Select("slot", "status", "employee_fio", "date").
		Updates(s)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteShipment(ctx context.Context, cargoTrack, pointName string) error {
	res := p.db.WithContext(ctx).
		Where("cargo_track = ? AND point_name = ?", cargoTrack, pointName).
		Delete(&shipment.Shipment{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListShipmentsByPoint(ctx context.Context, pointName string) ([]shipment.Shipment, error) {
	var out []shipment.Shipment
	err := p.db.WithContext(ctx).
		Where("point_name = ?", pointName).
		Order("date ASC").
		Find(&out).Error
	return out, translateError(err)
}

func (p *Postgres) ListShipmentsByTrack(ctx context.Context, cargoTrack string) ([]shipment.Shipment, error) {
	var out []shipment.Shipment
	err := p.db.WithContext(ctx).
		Where("cargo_track = ?", cargoTrack).
		Order("date ASC").
		Find(&out).Error
	return out, translateError(err)
}

func (p *Postgres) SlotOccupied(ctx context.Context, pointName, slot, excludeTrack string) (bool, error) {
	var count int64
	q := p.db.WithContext(ctx).Model(&shipment.Shipment{}).
		Where("point_name = ? AND slot = ?", pointName, slot)
	if excludeTrack != "" {
		q = q.Where("cargo_track <> ?", excludeTrack)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// MoveToArchive copies every live shipment of a track into shipment_archives
// and removes the live rows. Returns the number of rows moved.
func (p *Postgres) MoveToArchive(ctx context.Context, cargoTrack string) (int, error) {
	var live []shipment.Shipment
	if err := p.db.WithContext(ctx).Where("cargo_track = ?", cargoTrack).Find(&live).Error; err != nil {
		return 0, translateError(err)
	}
	if len(live) == 0 {
		return 0, ErrNotFound
	}

	archived := make([]shipment.Archive, 0, len(live))
	for _, s := range live {
		archived = append(archived, shipment.Archive{
			CargoTrack:  s.CargoTrack,
			PointName:   s.PointName,
			Slot:        s.Slot,
			Status:      s.Status,
			EmployeeFio: s.EmployeeFio,
			Date:        s.Date,
		})
	}
	if err := p.db.WithContext(ctx).Create(&archived).Error; err != nil {
		return 0, translateError(err)
	}
	if err := p.db.WithContext(ctx).Where("cargo_track = ?", cargoTrack).Delete(&shipment.Shipment{}).Error; err != nil {
		return 0, translateError(err)
	}
	return len(archived), nil
}

func (p *Postgres) AppendStatusEvent(ctx context.Context, ev *shipment.StatusEvent) error {
	return translateError(p.db.WithContext(ctx).Create(ev).Error)
}

func (p *Postgres) ListStatusEvents(ctx context.Context, cargoTrack string) ([]shipment.StatusEvent, error) {
	var out []shipment.StatusEvent
	err := p.db.WithContext(ctx).
		Where("cargo_track = ?", cargoTrack).
		Order("date ASC, id ASC").
		Find(&out).Error
	return out, translateError(err)
}

func (p *Postgres) WithinTransaction(ctx context.Context, fn func(Store) error) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Postgres{db: tx})
	})
}
