package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thangam/billing-api/internal/application/service"
	"github.com/thangam/billing-api/internal/presentation/http/dto/request"
	"github.com/thangam/billing-api/internal/presentation/http/dto/response"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billingService *service.BillingService
	receiptService *service.ReceiptService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService, receiptService *service.ReceiptService) *BillHandler {
	return &BillHandler{
		billingService: billingService,
		receiptService: receiptService,
	}
}

// Create handles creating a bill with its items
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.BillItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.BillItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Price:     item.Price,
			Total:     item.Total,
		}
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		BillNumber:     req.BillNumber,
		CustomerID:     req.CustomerID,
		Subtotal:       req.Subtotal,
		TaxPercent:     req.TaxPercent,
		TaxAmount:      req.TaxAmount,
		DiscountAmount: req.DiscountAmount,
		GrandTotal:     req.GrandTotal,
		PaymentMethod:  req.PaymentMethod,
		Items:          items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// List handles listing recent bills
func (h *BillHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		response.BadRequest(c, "Invalid limit")
		return
	}

	bills, err := h.billingService.GetRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved successfully", bills)
}

// Get handles getting a single bill with its items
func (h *BillHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Receipt handles rendering a bill's receipt as fixed-width text
func (h *BillHandler) Receipt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	text, err := h.receiptService.Preview(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/plain; charset=utf-8", []byte(text))
}

// ReceiptPDF handles exporting a bill's receipt as a PDF download
func (h *BillHandler) ReceiptPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	filename, pdf, err := h.receiptService.ExportPDF(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", pdf)
}

// Print handles sending a bill's receipt to the thermal printer
func (h *BillHandler) Print(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.receiptService.Print(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}

// Email handles mailing a bill's receipt
func (h *BillHandler) Email(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req request.EmailReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.receiptService.EmailReceipt(c.Request.Context(), uint(id), req.To); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt emailed successfully", nil)
}
