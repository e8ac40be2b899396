package seeders

import (
	"log"
	"os"

	"logitrans-backend/models/employee"
	"logitrans-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedDirector creates the bootstrap director account when the employees
// table is empty, so a fresh install has someone who can log in and create
// the rest of the staff. Credentials come from DIRECTOR_PHONE and
// DIRECTOR_PASSWORD; without them the seeder is a no-op.
func SeedDirector(db *gorm.DB) {
	phone := os.Getenv("DIRECTOR_PHONE")
	password := os.Getenv("DIRECTOR_PASSWORD")
	if phone == "" || password == "" {
		log.Printf("⚠️  DIRECTOR_PHONE/DIRECTOR_PASSWORD not set, skipping director seeding")
		return
	}

	var count int64
	if err := db.Model(&employee.Employee{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to count employees: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("❌ Failed to hash director password: %v", err)
		return
	}

	director := employee.Employee{
		Uuid:         uuid.New().String(),
		Fio:          "Director",
		Position:     employee.PositionDirector,
		Phone:        phone,
		PasswordHash: hash,
	}
	if err := db.Create(&director).Error; err != nil {
		log.Printf("❌ Failed to seed director account: %v", err)
		return
	}
	log.Printf("✅ Seeded bootstrap director account.")
}
