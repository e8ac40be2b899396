package cargo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cargo is a tracked item. Track is the caller-supplied natural key and must
// be globally unique. Price is computed by the pricing service at creation
// time and may later be overridden administratively without recomputation.
type Cargo struct {
	ID            uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Track         string           `gorm:"type:varchar(64);not null;unique" json:"track"`
	Type          Type             `gorm:"type:varchar(20);not null" json:"type"`
	Delivery      Delivery         `gorm:"type:varchar(20);not null" json:"delivery"`
	SenderPhone   string           `gorm:"type:varchar(20)" json:"sender_phone"`
	ReceiverPhone string           `gorm:"type:varchar(20)" json:"receiver_phone"`
	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	Mass          *float64         `json:"mass,omitempty"`
	DeclaredValue *decimal.Decimal `gorm:"type:decimal(10,2)" json:"declared_value,omitempty"`
	Packaging     bool             `gorm:"default:false" json:"packaging"`
	Insurance     bool             `gorm:"default:false" json:"insurance"`
	CreatedBy     string           `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName pins the plural form; the reporting queries reference it raw.
func (Cargo) TableName() string {
	return "cargoes"
}
