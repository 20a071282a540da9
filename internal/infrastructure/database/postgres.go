package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/thangam/billing-api/internal/config"
	"github.com/thangam/billing-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Translate driver errors so unique-violation checks work via
		// errors.Is(err, gorm.ErrDuplicatedKey) regardless of backend.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Product{},
		&entity.Customer{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.Setting{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultSettings inserts the default store/receipt settings for keys
// that do not exist yet. Existing values are never overwritten.
func SeedDefaultSettings(db *gorm.DB) error {
	defaults := map[string]string{
		entity.SettingStoreName:     "Thangam Stores",
		entity.SettingStoreAddress:  "",
		entity.SettingStorePhone:    "",
		entity.SettingReceiptFooter: "Thank you for shopping!",
		entity.SettingCharsPerLine:  "48",
		entity.SettingLineSpacing:   "Normal",
		entity.SettingPaperSize:     "80mm (48 chars)",
	}

	for key, value := range defaults {
		var existing entity.Setting
		err := db.Where("key = ?", key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to read setting %s: %w", key, err)
		}
		if err := db.Create(&entity.Setting{Key: key, Value: value}).Error; err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}

	return nil
}
