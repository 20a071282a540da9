package request

// CreateCustomerRequest is the customer creation payload.
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   *string `json:"phone"`
	Address string  `json:"address"`
}

// UpdateCustomerRequest is the customer update payload.
type UpdateCustomerRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Address string  `json:"address"`
}
