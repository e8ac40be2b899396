package employee

import (
	"time"
)

// Employee represents a staff member of the company.
// Fio is display data only; Uuid is the stable identifier. The legacy admin
// screen still addresses employees by fio, so fio carries an index but no
// uniqueness guarantee.
type Employee struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string    `gorm:"type:varchar(36);not null;unique" json:"uuid"`
	Fio          string    `gorm:"type:varchar(255);not null;index" json:"fio"`
	Position     Position  `gorm:"type:varchar(50);not null" json:"position"`
	Phone        string    `gorm:"type:varchar(20);not null;unique" json:"phone"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Position is the closed set of employee roles. Role dispatch happens on this
// enum, never on raw strings from the client.
type Position string

const (
	PositionDirector      Position = "director"
	PositionAdministrator Position = "administrator"
	PositionOperator      Position = "operator"
	PositionWarehouse     Position = "warehouse"
	PositionManager       Position = "manager"
)

func (p Position) String() string {
	return string(p)
}

func (p Position) IsValid() bool {
	switch p {
	case PositionDirector, PositionAdministrator, PositionOperator, PositionWarehouse, PositionManager:
		return true
	default:
		return false
	}
}

// GetAllPositions returns every valid employee position.
func GetAllPositions() []Position {
	return []Position{
		PositionDirector,
		PositionAdministrator,
		PositionOperator,
		PositionWarehouse,
		PositionManager,
	}
}
