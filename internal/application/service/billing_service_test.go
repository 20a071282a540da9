package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/infrastructure/repository"
	"github.com/thangam/billing-api/pkg/apperror"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with foreign keys
// enforced, mirroring the production schema via auto-migration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Product{},
		&entity.Customer{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.Setting{},
	))
	return db
}

func seedProducts(t *testing.T, db *gorm.DB) []entity.Product {
	t.Helper()
	products := []entity.Product{
		{Name: "Rice", BaseUnit: "kg", PricePerUnit: 60},
		{Name: "Sugar", BaseUnit: "kg", PricePerUnit: 45},
		{Name: "Tea Powder", BaseUnit: "kg", PricePerUnit: 80},
	}
	require.NoError(t, db.Create(&products).Error)
	return products
}

func newBillingService(db *gorm.DB) *BillingService {
	return NewBillingService(
		repository.NewBillRepository(db),
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
	)
}

func validInput(products []entity.Product) *CreateBillInput {
	return &CreateBillInput{
		Subtotal:      205.00,
		GrandTotal:    205.00,
		PaymentMethod: "Cash",
		Items: []BillItemInput{
			{ProductID: products[0].ID, Quantity: 2, Price: 60, Total: 120.00},
			{ProductID: products[1].ID, Quantity: 1, Price: 45, Total: 45.00},
			{ProductID: products[2].ID, Quantity: 0.5, Price: 80, Total: 40.00},
		},
	}
}

func TestCreateBillPersistsBillAndItems(t *testing.T) {
	db := setupTestDB(t)
	products := seedProducts(t, db)
	svc := newBillingService(db)
	ctx := context.Background()

	bill, err := svc.CreateBill(ctx, validInput(products))
	require.NoError(t, err)
	require.NotZero(t, bill.ID)
	assert.Regexp(t, `^BILL-\d{14}-[A-Z0-9]{3}$`, bill.BillNumber)
	assert.Equal(t, "PAID", bill.Status)
	assert.Equal(t, 205.00, bill.GrandTotal)

	var billCount, itemCount int64
	require.NoError(t, db.Model(&entity.Bill{}).Count(&billCount).Error)
	require.NoError(t, db.Model(&entity.BillItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(1), billCount)
	assert.Equal(t, int64(3), itemCount)

	// Names and units are frozen copies from the catalog.
	stored, err := svc.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 3)
	assert.Equal(t, "Rice", stored.Items[0].ProductName)
	assert.Equal(t, "kg", stored.Items[0].Unit)
}

func TestCreateBillRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	products := seedProducts(t, db)
	ctx := context.Background()

	// Bypass the service's product check and force a foreign-key violation on
	// the second item, after the bill row has been staged in the transaction.
	billRepo := repository.NewBillRepository(db)
	err := billRepo.CreateWithItems(ctx, &entity.Bill{
		BillNumber:    "BILL-20250101120000-XXX",
		Subtotal:      165,
		GrandTotal:    165,
		PaymentMethod: "Cash",
		Items: []entity.BillItem{
			{ProductID: products[0].ID, ProductName: "Rice", Quantity: 2, Unit: "kg", Price: 60, Total: 120},
			{ProductID: 9999, ProductName: "Ghost", Quantity: 1, Unit: "kg", Price: 45, Total: 45},
		},
	})
	require.Error(t, err)

	// Nothing survives the rollback: no bill, no orphan items.
	var billCount, itemCount int64
	require.NoError(t, db.Model(&entity.Bill{}).Count(&billCount).Error)
	require.NoError(t, db.Model(&entity.BillItem{}).Count(&itemCount).Error)
	assert.Zero(t, billCount)
	assert.Zero(t, itemCount)
}

func TestCreateBillExplicitDuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	products := seedProducts(t, db)
	svc := newBillingService(db)
	ctx := context.Background()

	first := validInput(products)
	first.BillNumber = "BILL-20250101120000-AAA"
	_, err := svc.CreateBill(ctx, first)
	require.NoError(t, err)

	second := validInput(products)
	second.BillNumber = "BILL-20250101120000-AAA"
	_, err = svc.CreateBill(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrDuplicateBillNumber)

	var billCount int64
	require.NoError(t, db.Model(&entity.Bill{}).Count(&billCount).Error)
	assert.Equal(t, int64(1), billCount)
}

func TestCreateBillValidation(t *testing.T) {
	db := setupTestDB(t)
	products := seedProducts(t, db)
	svc := newBillingService(db)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateBillInput)
		field  string
	}{
		{"no items", func(in *CreateBillInput) { in.Items = nil }, "items"},
		{"no payment method", func(in *CreateBillInput) { in.PaymentMethod = "" }, "payment_method"},
		{"zero quantity", func(in *CreateBillInput) { in.Items[0].Quantity = 0 }, "items[0].quantity"},
		{"negative price", func(in *CreateBillInput) { in.Items[1].Price = -1 }, "items[1].price"},
		{"total mismatch", func(in *CreateBillInput) { in.Items[0].Total = 999 }, "items[0].total"},
		{"grand total mismatch", func(in *CreateBillInput) { in.GrandTotal = 500 }, "grand_total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput(products)
			tt.mutate(input)

			_, err := svc.CreateBill(ctx, input)
			require.Error(t, err)

			appErr := apperror.GetAppError(err)
			assert.Equal(t, 422, appErr.Code)

			found := false
			for _, fe := range appErr.Errors {
				if fe.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected a field error on %s, got %+v", tt.field, appErr.Errors)
		})
	}

	// Validation failures must not write anything.
	var billCount int64
	require.NoError(t, db.Model(&entity.Bill{}).Count(&billCount).Error)
	assert.Zero(t, billCount)
}

func TestCreateBillGrandTotalIdentityWithTaxAndDiscount(t *testing.T) {
	db := setupTestDB(t)
	products := seedProducts(t, db)
	svc := newBillingService(db)

	input := validInput(products)
	input.TaxPercent = 5
	input.TaxAmount = 10.25
	input.DiscountAmount = 5
	input.GrandTotal = 210.25

	bill, err := svc.CreateBill(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 210.25, bill.GrandTotal)
}

func TestCreateBillUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	seedProducts(t, db)
	svc := newBillingService(db)

	input := &CreateBillInput{
		Subtotal:      10,
		GrandTotal:    10,
		PaymentMethod: "Cash",
		Items:         []BillItemInput{{ProductID: 424242, Quantity: 1, Price: 10, Total: 10}},
	}
	_, err := svc.CreateBill(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateBillUnknownCustomer(t *testing.T) {
	db := setupTestDB(t)
	products := seedProducts(t, db)
	svc := newBillingService(db)

	missing := uint(777)
	input := validInput(products)
	input.CustomerID = &missing

	_, err := svc.CreateBill(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetRecentOrderingAndLimit(t *testing.T) {
	db := setupTestDB(t)
	products := seedProducts(t, db)
	svc := newBillingService(db)
	ctx := context.Background()

	var numbers []string
	for i := 0; i < 5; i++ {
		bill, err := svc.CreateBill(ctx, validInput(products))
		require.NoError(t, err)
		numbers = append(numbers, bill.BillNumber)
	}

	recent, err := svc.GetRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, numbers[4], recent[0].BillNumber)
	assert.Equal(t, numbers[3], recent[1].BillNumber)
	assert.Equal(t, numbers[2], recent[2].BillNumber)
}

func TestGetRecentRejectsBadLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := newBillingService(db)

	_, err := svc.GetRecent(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.GetRecent(context.Background(), -5)
	require.Error(t, err)
}

func TestGetBillNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newBillingService(db)

	_, err := svc.GetBill(context.Background(), 12345)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
