package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/infrastructure/repository"
	"github.com/thangam/billing-api/pkg/apperror"
	"github.com/thangam/billing-api/pkg/printer"
	"gorm.io/gorm"
)

func newReceiptFixture(t *testing.T) (*gorm.DB, *ReceiptService, *printer.DummyPrinter, uint) {
	t.Helper()
	db := setupTestDB(t)
	products := seedProducts(t, db)

	settings := NewSettingsService(repository.NewSettingsRepository(db))
	require.NoError(t, settings.Update(context.Background(), map[string]string{
		entity.SettingStoreName:    "Thangam Stores",
		entity.SettingCharsPerLine: "48",
		entity.SettingLineSpacing:  "Normal",
	}))

	dummy := printer.NewDummyPrinter()
	billRepo := repository.NewBillRepository(db)
	svc := NewReceiptService(billRepo, settings, dummy, "dummy")

	billing := newBillingService(db)
	bill, err := billing.CreateBill(context.Background(), validInput(products))
	require.NoError(t, err)

	return db, svc, dummy, bill.ID
}

func TestPreviewRendersCommittedBill(t *testing.T) {
	_, svc, _, billID := newReceiptFixture(t)

	text, err := svc.Preview(context.Background(), billID)
	require.NoError(t, err)

	assert.Contains(t, text, "Thangam Stores")
	assert.Contains(t, text, "Rice")
	assert.Contains(t, text, "205.00")
	assert.Contains(t, text, "*** THANK YOU ***")

	for _, line := range strings.Split(text, "\n") {
		assert.Len(t, []rune(line), 48)
	}
}

func TestPreviewUnknownBill(t *testing.T) {
	_, svc, _, _ := newReceiptFixture(t)

	_, err := svc.Preview(context.Background(), 99999)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestExportPDFFilenameAndContent(t *testing.T) {
	db, svc, _, billID := newReceiptFixture(t)

	var bill entity.Bill
	require.NoError(t, db.First(&bill, billID).Error)

	filename, pdf, err := svc.ExportPDF(context.Background(), billID)
	require.NoError(t, err)
	assert.Equal(t, "Bill_"+bill.BillNumber+".pdf", filename)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestPrintSendsESCPOSPayload(t *testing.T) {
	_, svc, dummy, billID := newReceiptFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Print(ctx, billID))

	payload := dummy.LastPayload()
	require.NotEmpty(t, payload)
	// Initialize, receipt content, feed and partial cut.
	assert.Equal(t, []byte{0x1B, '@'}, payload[:2])
	assert.Contains(t, string(payload), "Rice")
	assert.Equal(t, []byte{0x0A, 0x0A, 0x0A, 0x1D, 'V', 1}, payload[len(payload)-6:])

	// The printed lines are identical to the preview text.
	preview, err := svc.Preview(ctx, billID)
	require.NoError(t, err)
	for _, line := range strings.Split(preview, "\n") {
		assert.Contains(t, string(payload), line)
	}
}

func TestEmailReceiptRequiresRecipientAndSMTP(t *testing.T) {
	_, svc, _, billID := newReceiptFixture(t)
	ctx := context.Background()

	err := svc.EmailReceipt(ctx, billID, "")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// No SMTP server configured.
	err = svc.EmailReceipt(ctx, billID, "someone@example.com")
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestPrinterStatus(t *testing.T) {
	_, svc, _, _ := newReceiptFixture(t)

	status := svc.Status()
	assert.False(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "dummy", status.Type)
}

func TestTestPrint(t *testing.T) {
	_, svc, dummy, _ := newReceiptFixture(t)

	text, err := svc.TestPrint(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "TEST-000")
	assert.Contains(t, string(dummy.LastPayload()), "Test Item 1")
}

func TestReceiptConfigFallbacks(t *testing.T) {
	db := setupTestDB(t)
	settings := NewSettingsService(repository.NewSettingsRepository(db))
	ctx := context.Background()

	// Empty store: everything comes from defaults.
	cfg, err := settings.ReceiptConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Thangam Stores", cfg.StoreName)
	assert.Equal(t, 48, cfg.CharsPerLine)
	assert.Equal(t, "Thank you for shopping!", cfg.FooterText)

	// A garbage chars_per_line value falls back rather than failing.
	require.NoError(t, settings.Set(ctx, entity.SettingCharsPerLine, "banana"))
	cfg, err = settings.ReceiptConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.CharsPerLine)

	require.NoError(t, settings.Set(ctx, entity.SettingCharsPerLine, "32"))
	require.NoError(t, settings.Set(ctx, entity.SettingLineSpacing, "Compact"))
	cfg, err = settings.ReceiptConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.CharsPerLine)
}
