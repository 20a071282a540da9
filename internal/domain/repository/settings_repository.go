package repository

import (
	"context"

	"github.com/thangam/billing-api/internal/domain/entity"
)

// SettingsRepository defines the data access interface for the key/value
// settings store.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	GetAll(ctx context.Context) ([]entity.Setting, error)
}
