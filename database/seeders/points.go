package seeders

import (
	"log"

	"logitrans-backend/models/point"

	"gorm.io/gorm"
)

// SeedPoints inserts the company's pickup and warehouse locations that are
// missing from the points table.
func SeedPoints(db *gorm.DB) {
	log.Printf("🔍 Checking points data integrity...")

	points := []point.Point{
		{Name: "Central Warehouse", Phone: "+7-495-100-10-01", Address: "Moscow, Skladskaya st. 1"},
		{Name: "North Terminal", Phone: "+7-812-200-20-02", Address: "Saint Petersburg, Severnaya st. 14"},
		{Name: "South Hub", Phone: "+7-863-300-30-03", Address: "Rostov-on-Don, Yuzhnaya st. 7"},
		{Name: "East Depot", Phone: "+7-343-400-40-04", Address: "Yekaterinburg, Vostochnaya st. 22"},
		{Name: "West Pickup Office", Phone: "+7-401-500-50-05", Address: "Kaliningrad, Zapadnaya st. 3"},
	}

	var existingNames []string
	if err := db.Model(&point.Point{}).Pluck("name", &existingNames).Error; err != nil {
		log.Printf("❌ Failed to fetch existing point names: %v", err)
		return
	}

	existingNamesMap := make(map[string]bool)
	for _, name := range existingNames {
		existingNamesMap[name] = true
	}

	var missingPoints []point.Point
	for _, p := range points {
		if !existingNamesMap[p.Name] {
			missingPoints = append(missingPoints, p)
		}
	}

	log.Printf("📊 Data integrity check:")
	log.Printf("   Expected points: %d", len(points))
	log.Printf("   Existing points: %d", len(existingNames))
	log.Printf("   Missing points: %d", len(missingPoints))

	if len(missingPoints) == 0 {
		log.Printf("✅ All points are already present. No seeding needed.")
		return
	}

	if err := db.Create(&missingPoints).Error; err != nil {
		log.Printf("❌ Failed to seed points: %v", err)
		return
	}
	log.Printf("✅ Seeded %d missing points.", len(missingPoints))
}
