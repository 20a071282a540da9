package repository

import (
	"context"

	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/pkg/pagination"
)

// ProductFilterParams defines filtering options for product queries
type ProductFilterParams struct {
	Search     string
	Category   string
	Pagination *pagination.PaginationParams
}

// ProductRepository defines the data access interface for products
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
}
