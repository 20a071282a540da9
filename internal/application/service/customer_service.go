package service

import (
	"context"

	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/domain/repository"
	"github.com/thangam/billing-api/pkg/apperror"
	"github.com/thangam/billing-api/pkg/pagination"
)

// CustomerService handles the customer directory.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomer registers a customer. Phone numbers are optional but unique
// when present.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	if customer.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}
	if customer.Phone != nil && *customer.Phone == "" {
		customer.Phone = nil
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewPersistenceError(err)
	}
	return customer, nil
}

// GetCustomer returns one customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// FindByPhone looks up a customer by exact phone number.
func (s *CustomerService) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	if phone == "" {
		return nil, apperror.NewInvalidArgumentError("phone is required")
	}
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers returns a filtered, paginated page of the directory.
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return pagination.NewPaginatedResult(customers, params.Pagination, total), nil
}

// UpdateCustomer updates a customer's details.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, updates *entity.Customer) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != "" {
		customer.Name = updates.Name
	}
	if updates.Phone != nil && *updates.Phone != "" {
		customer.Phone = updates.Phone
	}
	if updates.Address != "" {
		customer.Address = updates.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewPersistenceError(err)
	}
	return customer, nil
}

// DeleteCustomer removes a customer. Their bills survive with a dangling-free
// null customer reference.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return apperror.NewPersistenceError(err)
	}
	return nil
}
