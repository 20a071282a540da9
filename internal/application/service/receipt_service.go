package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/domain/repository"
	"github.com/thangam/billing-api/internal/receipt"
	"github.com/thangam/billing-api/pkg/apperror"
	"github.com/thangam/billing-api/pkg/email"
	"github.com/thangam/billing-api/pkg/printer"
)

// ReceiptService composes receipt documents from persisted bills and drives
// the three output backends: text preview, thermal printer and PDF export.
// All backends consume the same composed Document, so their content can
// never diverge.
type ReceiptService struct {
	billRepo    repository.BillRepository
	settings    *SettingsService
	printer     printer.Printer
	printerType string
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(
	billRepo repository.BillRepository,
	settings *SettingsService,
	p printer.Printer,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		billRepo:    billRepo,
		settings:    settings,
		printer:     p,
		printerType: printerType,
	}
}

// ComposeForBill loads a committed bill and composes its receipt document
// with the current settings snapshot.
func (s *ReceiptService) ComposeForBill(ctx context.Context, billID uint) (*receipt.Document, *entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, nil, apperror.NewPersistenceError(err)
	}
	if bill == nil {
		return nil, nil, apperror.NewNotFoundError("Bill")
	}

	cfg, err := s.settings.ReceiptConfig(ctx)
	if err != nil {
		return nil, nil, apperror.NewPersistenceError(err)
	}

	doc, err := receipt.Compose(bill, bill.Items, cfg)
	if err != nil {
		return nil, nil, err
	}
	return doc, bill, nil
}

// Preview returns the fixed-width text rendering of a bill's receipt.
func (s *ReceiptService) Preview(ctx context.Context, billID uint) (string, error) {
	doc, _, err := s.ComposeForBill(ctx, billID)
	if err != nil {
		return "", err
	}
	return receipt.RenderString(doc), nil
}

// ExportPDF renders a bill's receipt to PDF and returns the conventional
// export filename alongside the bytes.
func (s *ReceiptService) ExportPDF(ctx context.Context, billID uint) (string, []byte, error) {
	doc, bill, err := s.ComposeForBill(ctx, billID)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	if err := receipt.RenderPDF(doc, &buf); err != nil {
		return "", nil, apperror.NewAppError(500, "Failed to render PDF: "+err.Error())
	}

	filename := fmt.Sprintf("Bill_%s.pdf", strings.ReplaceAll(bill.BillNumber, "/", "_"))
	return filename, buf.Bytes(), nil
}

// Print sends a bill's receipt to the configured thermal printer. The
// payload is the text renderer's lines wrapped in ESC/POS transport
// commands; the layout itself is untouched.
func (s *ReceiptService) Print(ctx context.Context, billID uint) error {
	doc, bill, err := s.ComposeForBill(ctx, billID)
	if err != nil {
		return err
	}

	if err := s.printer.Print(EncodeESCPOS(doc)); err != nil {
		log.Printf("Printer error (bill %s): %v", bill.BillNumber, err)
		return apperror.NewAppError(500, "Failed to print receipt: "+err.Error())
	}
	return nil
}

// EmailReceipt mails the text rendering of a bill's receipt.
func (s *ReceiptService) EmailReceipt(ctx context.Context, billID uint, to string) error {
	if to == "" {
		return apperror.NewInvalidArgumentError("recipient email is required")
	}

	doc, bill, err := s.ComposeForBill(ctx, billID)
	if err != nil {
		return err
	}

	smtpCfg, err := s.settings.SMTPConfig(ctx)
	if err != nil {
		return apperror.NewPersistenceError(err)
	}
	mailer := email.NewService(smtpCfg)
	if !mailer.Configured() {
		return apperror.NewInvalidConfigError("SMTP is not configured")
	}

	if err := mailer.SendReceipt(to, bill.BillNumber, receipt.RenderString(doc)); err != nil {
		return apperror.NewAppError(500, err.Error())
	}
	return nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// Status returns printer connection status.
func (s *ReceiptService) Status() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "" && s.printerType != "dummy",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint composes a sample receipt with the current settings and sends it
// to the printer. Returns the rendered text so callers can show it when no
// hardware is attached.
func (s *ReceiptService) TestPrint(ctx context.Context) (string, error) {
	cfg, err := s.settings.ReceiptConfig(ctx)
	if err != nil {
		return "", apperror.NewPersistenceError(err)
	}

	bill := &entity.Bill{
		BillNumber:    "TEST-000",
		DateTime:      time.Now(),
		Subtotal:      20.00,
		GrandTotal:    20.00,
		PaymentMethod: "Cash",
	}
	items := []entity.BillItem{
		{ProductName: "Test Item 1", Quantity: 1, Unit: "pcs", Price: 10.00, Total: 10.00},
		{ProductName: "Test Item 2", Quantity: 2, Unit: "pcs", Price: 5.00, Total: 10.00},
	}

	doc, err := receipt.Compose(bill, items, cfg)
	if err != nil {
		return "", err
	}

	text := receipt.RenderString(doc)
	if err := s.printer.Print(EncodeESCPOS(doc)); err != nil {
		return text, apperror.NewAppError(500, "Test print failed: "+err.Error())
	}
	return text, nil
}

// EncodeESCPOS wraps a composed document's rendered lines in ESC/POS
// commands: init, wider line spacing for Relaxed receipts, bold around
// emphasized rows, then feed and partial cut.
func EncodeESCPOS(doc *receipt.Document) []byte {
	job := printer.NewJob()
	if doc.Spacing == receipt.SpacingRelaxed {
		job.SetLineSpacing(48)
	}

	for _, line := range receipt.RenderLines(doc) {
		if line.Bold {
			job.SetBold(true)
		}
		job.Text(line.Text)
		if line.Bold {
			job.SetBold(false)
		}
	}

	job.FeedLines(3).PartialCut()
	return job.Bytes()
}
