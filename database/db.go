package database

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"logitrans-backend/logger"
	"logitrans-backend/models/cargo"
	"logitrans-backend/models/client"
	"logitrans-backend/models/employee"
	"logitrans-backend/models/log"
	"logitrans-backend/models/point"
	"logitrans-backend/models/shipment"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = connectWithRetry(dsn, 5)
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := configurePool(DB); err != nil {
		logger.Error("Failed to configure connection pool", err)
		return nil, err
	}

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	return DB, nil
}

// connectWithRetry opens the connection with bounded exponential backoff; the
// database container often comes up a few seconds after the app.
func connectWithRetry(dsn string, attempts int) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	delay := time.Second
	for i := 1; i <= attempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			return db, nil
		}
		logger.Warning(fmt.Sprintf("Database connection attempt %d/%d failed: %v", i, attempts, err))
		if i < attempts {
			time.Sleep(delay)
			delay *= 2
		}
	}
	return nil, err
}

func configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	maxOpen := envInt("DB_MAX_OPEN_CONNS", 25)
	maxIdle := envInt("DB_MAX_IDLE_CONNS", 5)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// autoMigrate runs auto migration for all models in stages
func autoMigrate() error {
	// Stage 1: Reference data without dependencies
	stage1Models := []interface{}{
		&employee.Employee{},
		&client.Client{},
		&point.Point{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: Cargo, referenced by shipments
	if err := DB.AutoMigrate(&cargo.Cargo{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &cargo.Cargo{}, err)
	}

	// Stage 3: Movement records and history
	stage3Models := []interface{}{
		&shipment.Shipment{},
		&shipment.Archive{},
		&shipment.StatusEvent{},
	}

	for _, model := range stage3Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Logging
	if err := DB.AutoMigrate(&log.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &log.Log{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// Cargo indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_cargoes_type ON cargoes(type)").Error; err != nil {
		return fmt.Errorf("failed to create cargo type index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_cargoes_created_at ON cargoes(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create cargo created_at index: %w", err)
	}

	// Shipment indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments(status)").Error; err != nil {
		return fmt.Errorf("failed to create shipment status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_shipments_date ON shipments(date)").Error; err != nil {
		return fmt.Errorf("failed to create shipment date index: %w", err)
	}

	// Archive indexes, the income report filters and groups on date
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_shipment_archives_date ON shipment_archives(date)").Error; err != nil {
		return fmt.Errorf("failed to create archive date index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_shipments_cargo",
			sql: `ALTER TABLE shipments ADD CONSTRAINT fk_shipments_cargo
				  FOREIGN KEY (cargo_track) REFERENCES cargoes(track)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_shipments_point",
			sql: `ALTER TABLE shipments ADD CONSTRAINT fk_shipments_point
				  FOREIGN KEY (point_name) REFERENCES points(name)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				return fmt.Errorf("failed to create constraint %s: %w", constraint.name, err)
			}
			logger.Success("Created foreign key constraint: " + constraint.name)
		}
	}

	return nil
}
