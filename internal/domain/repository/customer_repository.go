package repository

import (
	"context"

	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/pkg/pagination"
)

// CustomerFilterParams defines filtering options for customer queries
type CustomerFilterParams struct {
	Search     string
	Pagination *pagination.PaginationParams
}

// CustomerRepository defines the data access interface for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uint) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	List(ctx context.Context, params *CustomerFilterParams) ([]entity.Customer, int64, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uint) error
}
