package repository

import (
	"context"
	"errors"

	"github.com/thangam/billing-api/internal/domain/entity"
	domainRepo "github.com/thangam/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", like, like)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}
