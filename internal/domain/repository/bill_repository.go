package repository

import (
	"context"
	"time"

	"github.com/thangam/billing-api/internal/domain/entity"
)

// BillRepository defines the data access interface for bills and their items.
// CreateWithItems is the only write path: a bill and its items commit as one
// atomic unit or not at all.
type BillRepository interface {
	CreateWithItems(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uint) (*entity.Bill, error)
	GetByNumber(ctx context.Context, billNumber string) (*entity.Bill, error)
	GetRecent(ctx context.Context, limit int) ([]entity.Bill, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]entity.Bill, error)
	CountInRange(ctx context.Context, start, end time.Time) (int64, error)
}
