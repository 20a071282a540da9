package request

// CreateProductRequest is the product creation payload.
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Code         string  `json:"code"`
	BaseUnit     string  `json:"base_unit" binding:"required"`
	PricePerUnit float64 `json:"price_per_unit"`
	Category     string  `json:"category"`
}

// UpdateProductRequest is the product update payload. Zero values leave the
// corresponding field untouched.
type UpdateProductRequest struct {
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	BaseUnit     string  `json:"base_unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	Category     string  `json:"category"`
}
