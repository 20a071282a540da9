package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable  = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}

	// ErrDuplicateBillNumber is returned when a bill number collides with an
	// existing bill and the retry budget is exhausted.
	ErrDuplicateBillNumber = &AppError{Code: http.StatusConflict, Message: "Bill number already exists"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewInvalidArgumentError flags a bad caller-supplied argument (limit, date range).
func NewInvalidArgumentError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewInvalidConfigError flags an unrenderable receipt configuration.
func NewInvalidConfigError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

// NewPersistenceError wraps a storage failure after the transaction has been
// rolled back.
func NewPersistenceError(err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Storage operation failed",
		Err:     err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
