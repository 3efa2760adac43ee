// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/warehouse414/catalog-backend/internal/config"
	"github.com/warehouse414/catalog-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		}
	} else {
		gormConfig = &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Info),
			TranslateError: true,
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.Designer{},
		&models.Maker{},
		&models.Category{},
		&models.Subcategory{},
		&models.Style{},
		&models.Period{},
		&models.Country{},
		&models.Color{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductHold{},
		&models.Offer{},
		&models.PurchaseInquiry{},
		&models.SpecSheetDownload{},
		&models.Setting{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_status_created ON products(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_go_live_date ON products(go_live_date)",

		// Hold indexes
		"CREATE INDEX IF NOT EXISTS idx_product_holds_expires_at ON product_holds(expires_at)",
		"CREATE INDEX IF NOT EXISTS idx_product_holds_created_at ON product_holds(created_at DESC)",

		// Inquiry indexes
		"CREATE INDEX IF NOT EXISTS idx_offers_created_at ON offers(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_purchase_inquiries_created_at ON purchase_inquiries(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_spec_sheet_downloads_created_at ON spec_sheet_downloads(created_at DESC)",

		// Trigram indexes serving the catalog's LOWER(...) LIKE search.
		// pg_trgm may be unavailable on stripped-down instances; the search
		// still works without the indexes, just slower.
		"CREATE EXTENSION IF NOT EXISTS pg_trgm",
		"CREATE INDEX IF NOT EXISTS idx_products_name_trgm ON products USING GIN (LOWER(name) gin_trgm_ops)",
		"CREATE INDEX IF NOT EXISTS idx_products_short_description_trgm ON products USING GIN (LOWER(short_description) gin_trgm_ops)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// SeedInitialData creates default settings rows if they are missing.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	defaultSettings := []models.Setting{
		{Key: models.SettingHoldDurationHours, Value: "48"},
		{Key: models.SettingFeaturedLimit, Value: "8"},
	}

	for _, setting := range defaultSettings {
		var count int64
		db.Model(&models.Setting{}).Where("key = ?", setting.Key).Count(&count)

		if count == 0 {
			if err := db.Create(&setting).Error; err != nil {
				log.Printf("Warning: Failed to create setting %s: %v", setting.Key, err)
			}
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}
