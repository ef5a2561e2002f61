package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/aquapure/internal/domain"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/objectstore"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, ErrRecordNotFound) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput, ErrCodePayloadTooLarge:
			return CategoryClientError
		case ErrCodeInternal:
			return CategoryInfrastructure
		case ErrCodeTimeout:
			return CategoryTransient
		}
	}

	if storageErr, ok := objectstore.IsStorageError(err); ok {
		if storageErr.IsRetryable() {
			return CategoryTransient
		}
		return CategoryPermanent
	}

	if errors.Is(err, ErrStoreFailure) {
		return CategoryInfrastructure
	}

	// Default: Transient (safe fallback)
	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, ErrRecordNotFound):
		return http.StatusNotFound

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	if _, ok := objectstore.IsStorageError(err); ok {
		return http.StatusBadGateway
	}

	// Store failures and everything unrecognised.
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, ErrRecordNotFound) {
		return domain.ErrCodeResourceNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrCodeTimeout
	}

	if _, ok := objectstore.IsStorageError(err); ok {
		return ErrCodeStorage
	}

	if errors.Is(err, ErrStoreFailure) {
		return ErrCodeStoreFailure
	}

	return ErrCodeInternal
}

// ToErrorDetails returns structured details carried by domain errors.
func ToErrorDetails(err error) map[string]string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Details
	}
	return nil
}
