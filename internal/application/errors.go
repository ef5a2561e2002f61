package application

import (
	"errors"
	"fmt"
	"net/http"
)

// Persistence failures. Adapters wrap driver errors with ErrStoreFailure and
// report missing rows with ErrRecordNotFound.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrStoreFailure   = errors.New("store failure")
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	ErrCodeStoreFailure    = "STORE_FAILURE"
	ErrCodeStorage         = "STORAGE_ERROR"
)

func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out",
		HTTPStatus: http.StatusRequestTimeout,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewPayloadTooLargeError(limit int64) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePayloadTooLarge,
		Message:    fmt.Sprintf("upload exceeds the limit of %d bytes", limit),
		HTTPStatus: http.StatusRequestEntityTooLarge,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
