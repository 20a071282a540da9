package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/infrastructure/repository"
	"github.com/thangam/billing-api/pkg/apperror"
	"gorm.io/gorm"
)

func insertBillAt(t *testing.T, db *gorm.DB, products []entity.Product, number string, at time.Time, grandTotal float64) {
	t.Helper()
	billRepo := repository.NewBillRepository(db)
	err := billRepo.CreateWithItems(context.Background(), &entity.Bill{
		BillNumber:    number,
		DateTime:      at,
		Subtotal:      grandTotal,
		GrandTotal:    grandTotal,
		PaymentMethod: "Cash",
		Status:        "PAID",
		Items: []entity.BillItem{
			{ProductID: products[0].ID, ProductName: "Rice", Quantity: 1, Unit: "kg", Price: grandTotal, Total: grandTotal},
		},
	})
	require.NoError(t, err)
}

func TestSumInRange(t *testing.T) {
	db := setupTestDB(t)
	products := seedProducts(t, db)
	svc := NewReportService(repository.NewBillRepository(db))

	day := func(d int, hour int) time.Time {
		return time.Date(2025, 3, d, hour, 30, 0, 0, time.Local)
	}
	insertBillAt(t, db, products, "BILL-20250310093000-AAA", day(10, 9), 100.00)
	insertBillAt(t, db, products, "BILL-20250311184500-BBB", day(11, 18), 250.50)
	insertBillAt(t, db, products, "BILL-20250320120000-CCC", day(20, 12), 999.99)

	report, err := svc.SumInRange(context.Background(), "2025-03-10", "2025-03-11")
	require.NoError(t, err)

	require.Len(t, report.Bills, 2)
	// Insertion order, not amount order.
	assert.Equal(t, "BILL-20250310093000-AAA", report.Bills[0].BillNumber)
	assert.Equal(t, "BILL-20250311184500-BBB", report.Bills[1].BillNumber)
	assert.Equal(t, 350.50, report.TotalSales)
	assert.Equal(t, "2025-03-10", report.StartDate)
	assert.Equal(t, "2025-03-11", report.EndDate)
}

func TestSumInRangeEndDateInclusive(t *testing.T) {
	db := setupTestDB(t)
	products := seedProducts(t, db)
	svc := NewReportService(repository.NewBillRepository(db))

	// A sale late in the evening of the end date still counts.
	lateEvening := time.Date(2025, 3, 11, 23, 59, 0, 0, time.Local)
	insertBillAt(t, db, products, "BILL-20250311235900-AAA", lateEvening, 75.00)

	report, err := svc.SumInRange(context.Background(), "2025-03-11", "2025-03-11")
	require.NoError(t, err)
	require.Len(t, report.Bills, 1)
	assert.Equal(t, 75.00, report.TotalSales)
}

func TestSumInRangeEmptyWindow(t *testing.T) {
	db := setupTestDB(t)
	seedProducts(t, db)
	svc := NewReportService(repository.NewBillRepository(db))

	report, err := svc.SumInRange(context.Background(), "2030-01-01", "2030-01-31")
	require.NoError(t, err)
	assert.Empty(t, report.Bills)
	assert.Equal(t, 0.0, report.TotalSales)
}

func TestSumInRangeBadInput(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(repository.NewBillRepository(db))
	ctx := context.Background()

	_, err := svc.SumInRange(ctx, "not-a-date", "2025-03-11")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.SumInRange(ctx, "2025-03-11", "11/03/2025")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// Reversed range is rejected, not silently swapped.
	_, err = svc.SumInRange(ctx, "2025-03-12", "2025-03-11")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
