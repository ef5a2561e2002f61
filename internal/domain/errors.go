package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel kinds. Every DomainError wraps exactly one of them so callers can
// branch with errors.Is without knowing the concrete code.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("resource not found")
)

// DomainError represents a business rule violation
type DomainError struct {
	Code    string
	Message string
	Details map[string]string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeResourceNotFound = "RESOURCE_NOT_FOUND"
)

const (
	ResourceProduct = "product"
	ResourceImage   = "image"
)

func NewValidationError(field, reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: reason,
		Details: map[string]string{"field": field},
		Err:     ErrValidation,
	}
}

func NewNotFoundError(resource, id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeResourceNotFound,
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Details: map[string]string{"resource": resource, "id": id},
		Err:     ErrNotFound,
	}
}

func NewProductNotFoundError(id int64) *DomainError {
	return NewNotFoundError(ResourceProduct, strconv.FormatInt(id, 10))
}

func NewImageNotFoundError(id string) *DomainError {
	return NewNotFoundError(ResourceImage, id)
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
