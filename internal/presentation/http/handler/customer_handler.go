package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thangam/billing-api/internal/application/service"
	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/domain/repository"
	"github.com/thangam/billing-api/internal/presentation/http/dto/request"
	"github.com/thangam/billing-api/internal/presentation/http/dto/response"
	"github.com/thangam/billing-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers with search and pagination
func (h *CustomerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.CustomerFilterParams{
		Search: c.Query("search"),
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &entity.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Lookup handles finding a customer by phone number
func (h *CustomerHandler) Lookup(c *gin.Context) {
	customer, err := h.customerService.FindByPhone(c.Request.Context(), c.Query("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), uint(id), &entity.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}
