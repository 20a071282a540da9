package repository

import (
	"context"
	"errors"

	"github.com/thangam/billing-api/internal/domain/entity"
	domainRepo "github.com/thangam/billing-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves a setting value; the second return reports whether the key exists.
func (r *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var setting entity.Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

// Set upserts a setting value.
func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entity.Setting{Key: key, Value: value}).Error
}

func (r *settingsRepository) GetAll(ctx context.Context) ([]entity.Setting, error) {
	var settings []entity.Setting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&settings).Error
	return settings, err
}
