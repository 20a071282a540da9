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

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products with search and pagination
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ProductFilterParams{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &entity.Product{
		Name:         req.Name,
		Code:         req.Code,
		BaseUnit:     req.BaseUnit,
		PricePerUnit: req.PricePerUnit,
		Category:     req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), uint(id), &entity.Product{
		Name:         req.Name,
		Code:         req.Code,
		BaseUnit:     req.BaseUnit,
		PricePerUnit: req.PricePerUnit,
		Category:     req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}
