package shipment

import (
	"time"
)

// Shipment is the live movement record of a cargo at a point. Identity is the
// (cargo_track, point_name) pair; the (point_name, slot) index forbids two
// live shipments from occupying the same slot.
type Shipment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CargoTrack  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_shipments_track_point" json:"cargo_track"`
	PointName   string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_shipments_track_point;uniqueIndex:idx_shipments_point_slot" json:"point_name"`
	Slot        string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_shipments_point_slot" json:"slot"`
	Status      Status    `gorm:"type:varchar(20);not null" json:"status"`
	EmployeeFio string    `gorm:"type:varchar(255)" json:"employee_fio,omitempty"`
	Date        time.Time `gorm:"not null" json:"date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Archive holds terminal shipments moved out of the live set. Rows here feed
// the income reports; no uniqueness is enforced since a track may be archived
// with several historical legs.
type Archive struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CargoTrack  string    `gorm:"type:varchar(64);not null;index" json:"cargo_track"`
	PointName   string    `gorm:"type:varchar(120);not null" json:"point_name"`
	Slot        string    `gorm:"type:varchar(50);not null" json:"slot"`
	Status      Status    `gorm:"type:varchar(20);not null" json:"status"`
	EmployeeFio string    `gorm:"type:varchar(255)" json:"employee_fio,omitempty"`
	Date        time.Time `gorm:"not null" json:"date"`
	ArchivedAt  time.Time `gorm:"autoCreateTime" json:"archived_at"`
}

// TableName sets the table name for the Archive model.
func (Archive) TableName() string {
	return "shipment_archives"
}

// StatusEvent is the append-only status history of a cargo. One row is
// written for every create, update and archival; the tracking screen reads
// these in chronological order.
type StatusEvent struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CargoTrack  string    `gorm:"type:varchar(64);not null;index" json:"cargo_track"`
	PointName   string    `gorm:"type:varchar(120);not null" json:"point_name"`
	Slot        string    `gorm:"type:varchar(50)" json:"slot"`
	Status      Status    `gorm:"type:varchar(20);not null" json:"status"`
	EmployeeFio string    `gorm:"type:varchar(255)" json:"employee_fio,omitempty"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the StatusEvent model.
func (StatusEvent) TableName() string {
	return "shipment_status_events"
}
