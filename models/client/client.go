package client

import (
	"time"
)

// Client represents a customer account keyed by phone number.
type Client struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Phone        string    `gorm:"type:varchar(20);not null;unique" json:"phone"`
	Fio          string    `gorm:"type:varchar(255);not null" json:"fio"`
	Address      string    `gorm:"type:text" json:"address"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
