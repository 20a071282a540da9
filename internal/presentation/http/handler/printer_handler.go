package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/thangam/billing-api/internal/application/service"
	"github.com/thangam/billing-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests
type PrinterHandler struct {
	receiptService *service.ReceiptService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(receiptService *service.ReceiptService) *PrinterHandler {
	return &PrinterHandler{receiptService: receiptService}
}

// GetStatus handles reporting printer connection status
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.receiptService.Status())
}

// TestPrint handles sending a sample receipt to the printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	text, err := h.receiptService.TestPrint(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test receipt printed successfully", gin.H{"preview": text})
}
