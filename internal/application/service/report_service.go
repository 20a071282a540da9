package service

import (
	"context"
	"time"

	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/domain/repository"
	"github.com/thangam/billing-api/pkg/apperror"
	"github.com/thangam/billing-api/pkg/money"
)

const reportDateLayout = "2006-01-02"

// ReportService computes read-only sales aggregates. It shares nothing with
// the billing write path beyond the storage handle, and under transactional
// isolation it never observes partially-committed bills.
type ReportService struct {
	billRepo repository.BillRepository
}

// NewReportService creates a new report service
func NewReportService(billRepo repository.BillRepository) *ReportService {
	return &ReportService{billRepo: billRepo}
}

// BillSummary is one report row.
type BillSummary struct {
	ID            uint    `json:"id"`
	BillNumber    string  `json:"bill_number"`
	DateTime      string  `json:"date_time"`
	CustomerName  string  `json:"customer_name"`
	PaymentMethod string  `json:"payment_method"`
	GrandTotal    float64 `json:"grand_total"`
}

// SalesReport is the result of a date-range aggregation.
type SalesReport struct {
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	Bills      []BillSummary `json:"bills"`
	TotalSales float64       `json:"total_sales"`
}

// SumInRange lists the bills created between startDate and endDate
// (inclusive of the entire end day, 00:00:00 through 23:59:59 local time)
// in insertion order, together with the sum of their grand totals. An empty
// window yields an empty list and a total of 0.00.
func (s *ReportService) SumInRange(ctx context.Context, startDate, endDate string) (*SalesReport, error) {
	start, err := time.ParseInLocation(reportDateLayout, startDate, time.Local)
	if err != nil {
		return nil, apperror.NewInvalidArgumentError("start_date must be in YYYY-MM-DD format")
	}
	end, err := time.ParseInLocation(reportDateLayout, endDate, time.Local)
	if err != nil {
		return nil, apperror.NewInvalidArgumentError("end_date must be in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return nil, apperror.NewInvalidArgumentError("end_date cannot be before start_date")
	}

	endOfDay := end.Add(24*time.Hour - time.Second)

	bills, err := s.billRepo.ListInRange(ctx, start, endOfDay)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}

	report := &SalesReport{
		StartDate: startDate,
		EndDate:   endDate,
		Bills:     make([]BillSummary, 0, len(bills)),
	}

	totals := make([]float64, 0, len(bills))
	for _, bill := range bills {
		report.Bills = append(report.Bills, summarize(&bill))
		totals = append(totals, bill.GrandTotal)
	}
	report.TotalSales = money.Sum(totals...)

	return report, nil
}

func summarize(bill *entity.Bill) BillSummary {
	return BillSummary{
		ID:            bill.ID,
		BillNumber:    bill.BillNumber,
		DateTime:      bill.DateTime.Format("2006-01-02 15:04:05"),
		CustomerName:  bill.CustomerDisplayName(),
		PaymentMethod: bill.PaymentMethod,
		GrandTotal:    bill.GrandTotal,
	}
}
