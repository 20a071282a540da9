package request

// BillItemRequest is one line item in a bill creation request.
type BillItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

// CreateBillRequest is the bill creation payload. Totals are computed by the
// caller and re-validated server side before anything is written.
type CreateBillRequest struct {
	BillNumber     string            `json:"bill_number"`
	CustomerID     *uint             `json:"customer_id"`
	Subtotal       float64           `json:"subtotal"`
	TaxPercent     float64           `json:"tax_percent"`
	TaxAmount      float64           `json:"tax_amount"`
	DiscountAmount float64           `json:"discount_amount"`
	GrandTotal     float64           `json:"grand_total"`
	PaymentMethod  string            `json:"payment_method"`
	Items          []BillItemRequest `json:"items"`
}

// EmailReceiptRequest carries the recipient for a mailed receipt.
type EmailReceiptRequest struct {
	To string `json:"to" binding:"required,email"`
}
