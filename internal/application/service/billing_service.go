package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/domain/repository"
	"github.com/thangam/billing-api/pkg/apperror"
	"github.com/thangam/billing-api/pkg/money"
	"github.com/thangam/billing-api/pkg/utils"
)

// maxBillNumberAttempts bounds the regenerate-and-retry loop on bill-number
// collisions. Collisions are a correctness concern, never silently ignored.
const maxBillNumberAttempts = 3

// BillingService owns atomic bill creation, bill-number generation and
// recency queries over persisted bills.
type BillingService struct {
	billRepo     repository.BillRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *BillingService {
	return &BillingService{
		billRepo:     billRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// BillItemInput represents one line item in a bill creation request.
type BillItemInput struct {
	ProductID uint
	Quantity  float64
	Unit      string
	Price     float64
	Total     float64
}

// CreateBillInput represents the bill creation request. Subtotal and grand
// total are pre-computed by the caller and re-validated here.
type CreateBillInput struct {
	BillNumber     string // optional; generated when empty
	CustomerID     *uint
	Subtotal       float64
	TaxPercent     float64
	TaxAmount      float64
	DiscountAmount float64
	GrandTotal     float64
	PaymentMethod  string
	Items          []BillItemInput
}

// CreateBill validates the request, freezes product names/units into the
// line items and persists the bill with all items as one atomic unit. When
// no bill number is supplied one is generated, with a bounded retry on
// collision; an explicitly supplied duplicate fails immediately.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, apperror.NewPersistenceError(err)
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	// Batch fetch all referenced products in one query
	productIDs := make([]uint, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	productMap := make(map[uint]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	items := make([]entity.BillItem, 0, len(input.Items))
	for _, in := range input.Items {
		product, exists := productMap[in.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %d", in.ProductID))
		}
		unit := in.Unit
		if unit == "" {
			unit = product.BaseUnit
		}
		// Name and unit are copied so the bill stays correct if the
		// product is renamed later.
		items = append(items, entity.BillItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
			Unit:        unit,
			Price:       in.Price,
			Total:       money.Round2(in.Total),
		})
	}

	explicit := input.BillNumber != ""
	number := input.BillNumber
	if !explicit {
		number = utils.GenerateBillNumber()
	}

	for attempt := 0; attempt < maxBillNumberAttempts; attempt++ {
		bill := &entity.Bill{
			BillNumber:     number,
			CustomerID:     input.CustomerID,
			DateTime:       time.Now(),
			Subtotal:       money.Round2(input.Subtotal),
			TaxPercent:     input.TaxPercent,
			TaxAmount:      money.Round2(input.TaxAmount),
			DiscountAmount: money.Round2(input.DiscountAmount),
			GrandTotal:     money.Round2(input.GrandTotal),
			PaymentMethod:  input.PaymentMethod,
			Status:         "PAID",
			Items:          cloneItems(items),
		}

		err := s.billRepo.CreateWithItems(ctx, bill)
		if err == nil {
			return bill, nil
		}
		if !errors.Is(err, apperror.ErrDuplicateBillNumber) {
			return nil, apperror.NewPersistenceError(err)
		}
		if explicit {
			return nil, apperror.ErrDuplicateBillNumber
		}
		number = utils.GenerateBillNumber()
	}

	return nil, apperror.ErrDuplicateBillNumber
}

// GetRecent returns up to limit bills, most recent first.
func (s *BillingService) GetRecent(ctx context.Context, limit int) ([]entity.Bill, error) {
	if limit <= 0 {
		return nil, apperror.NewInvalidArgumentError("limit must be a positive integer")
	}
	bills, err := s.billRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return bills, nil
}

// GetBill returns one bill with its customer and items.
func (s *BillingService) GetBill(ctx context.Context, id uint) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// validate enforces the monetary invariants before anything is written:
// non-empty items, positive quantities, non-negative prices, per-line totals
// within tolerance of quantity x price, and the grand-total identity.
func (s *BillingService) validate(input *CreateBillInput) error {
	var fieldErrors []apperror.FieldError

	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "items", Message: "at least one item is required",
		})
	}
	if input.PaymentMethod == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "payment_method", Message: "payment method is required",
		})
	}

	for i, item := range input.Items {
		if item.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("items[%d].quantity", i), Message: "quantity must be greater than zero",
			})
		}
		if item.Price < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("items[%d].price", i), Message: "price cannot be negative",
			})
		}
		if !money.Equal(item.Total, money.Mul(item.Quantity, item.Price)) {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("items[%d].total", i), Message: "total does not match quantity x price",
			})
		}
	}

	expected := money.Sum(input.Subtotal, input.TaxAmount, -input.DiscountAmount)
	if !money.Equal(input.GrandTotal, expected) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "grand_total", Message: "grand total does not equal subtotal + tax - discount",
		})
	}
	if input.GrandTotal < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "grand_total", Message: "grand total cannot be negative",
		})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// cloneItems copies line items so a retried insert never reuses rows mutated
// by a failed attempt.
func cloneItems(items []entity.BillItem) []entity.BillItem {
	out := make([]entity.BillItem, len(items))
	copy(out, items)
	return out
}
