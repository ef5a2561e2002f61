package objectstore

import (
	"errors"
	"fmt"
	"net/http"
)

type StorageError struct {
	Code       string
	Message    string
	StatusCode int
}

type StorageErrorResponse struct {
	Err     string `json:"error"`
	Message string `json:"message"`
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("object storage error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *StorageError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

func IsStorageError(err error) (*StorageError, bool) {
	var storageErr *StorageError
	ok := errors.As(err, &storageErr)
	return storageErr, ok
}
