package service

import (
	"context"

	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/domain/repository"
	"github.com/thangam/billing-api/pkg/apperror"
	"github.com/thangam/billing-api/pkg/pagination"
)

// ProductService handles the product catalog.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProduct adds a product to the catalog.
func (s *ProductService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var fieldErrors []apperror.FieldError
	if product.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if product.BaseUnit == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "base_unit", Message: "base unit is required"})
	}
	if product.PricePerUnit < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price_per_unit", Message: "price cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if product.Category == "" {
		product.Category = "General"
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return product, nil
}

// GetProduct returns one product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns a filtered, paginated page of the catalog.
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return pagination.NewPaginatedResult(products, params.Pagination, total), nil
}

// UpdateProduct updates a product's mutable fields. Bills are unaffected
// because line items carry their own name and unit copies.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, updates *entity.Product) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != "" {
		product.Name = updates.Name
	}
	if updates.Code != "" {
		product.Code = updates.Code
	}
	if updates.BaseUnit != "" {
		product.BaseUnit = updates.BaseUnit
	}
	if updates.PricePerUnit > 0 {
		product.PricePerUnit = updates.PricePerUnit
	}
	if updates.Category != "" {
		product.Category = updates.Category
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return apperror.NewPersistenceError(err)
	}
	return nil
}
