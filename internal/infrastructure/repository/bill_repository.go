package repository

import (
	"context"
	"errors"
	"time"

	"github.com/thangam/billing-api/internal/domain/entity"
	domainRepo "github.com/thangam/billing-api/internal/domain/repository"
	"github.com/thangam/billing-api/pkg/apperror"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// CreateWithItems persists a bill and all of its items in one transaction.
// Either every row commits or none do; on any failure the transaction is
// rolled back and no partial bill or orphan items remain. A bill-number
// uniqueness violation surfaces as apperror.ErrDuplicateBillNumber so the
// caller can run its bounded retry loop.
func (r *billRepository) CreateWithItems(ctx context.Context, bill *entity.Bill) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Create writes the bill row and cascades to the Items association
		// inside this transaction.
		return tx.Create(bill).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.ErrDuplicateBillNumber
		}
		return err
	}
	return nil
}

func (r *billRepository) GetByID(ctx context.Context, id uint) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) GetByNumber(ctx context.Context, billNumber string) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		First(&bill, "bill_number = ?", billNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// GetRecent returns up to limit bills ordered by descending insertion order.
// Ordering by primary key keeps the result stable under identical timestamps.
func (r *billRepository) GetRecent(ctx context.Context, limit int) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("id DESC").
		Limit(limit).
		Find(&bills).Error
	return bills, err
}

// ListInRange returns bills created within [start, end] in insertion order.
func (r *billRepository) ListInRange(ctx context.Context, start, end time.Time) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("date_time BETWEEN ? AND ?", start, end).
		Order("id ASC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) CountInRange(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Bill{}).
		Where("date_time BETWEEN ? AND ?", start, end).
		Count(&count).Error
	return count, err
}
