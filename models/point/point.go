package point

import (
	"time"
)

// Point is a pickup/warehouse/delivery location. Name is the natural key used
// by shipments; slot capacity is not modeled, occupancy is derived by counting
// live shipments per point.
type Point struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null;unique" json:"name"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
