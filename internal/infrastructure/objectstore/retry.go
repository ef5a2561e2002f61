package objectstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DanielPopoola/aquapure/internal/config"
	"github.com/cenkalti/backoff/v5"
)

var (
	_ Storage = (*HTTPClient)(nil)
	_ Storage = (*RetryStorage)(nil)
)

// RetryStorage retries transient storage failures with exponential backoff.
type RetryStorage struct {
	inner      Storage
	baseDelay  time.Duration
	maxRetries uint64
	logger     *slog.Logger
}

func NewRetryStorage(inner Storage, cfg config.RetryConfig, logger *slog.Logger) *RetryStorage {
	return &RetryStorage{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

func (r *RetryStorage) EnsureBucket(ctx context.Context) error {
	return r.retry(ctx, "ensure_bucket", func(ctx context.Context) error {
		return r.inner.EnsureBucket(ctx)
	})
}

func (r *RetryStorage) PutObject(ctx context.Context, objectName, contentType string, data []byte) error {
	return r.retry(ctx, "put_object", func(ctx context.Context) error {
		return r.inner.PutObject(ctx, objectName, contentType, data)
	})
}

func (r *RetryStorage) DeleteObject(ctx context.Context, objectName string) error {
	return r.retry(ctx, "delete_object", func(ctx context.Context) error {
		return r.inner.DeleteObject(ctx, objectName)
	})
}

// PresignGetURL is computed locally and never retried.
func (r *RetryStorage) PresignGetURL(objectName string, expiry time.Duration) (string, error) {
	return r.inner.PresignGetURL(objectName, expiry)
}

func (r *RetryStorage) retry(ctx context.Context, op string, operation func(ctx context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	if r.baseDelay > 0 {
		bo.InitialInterval = r.baseDelay
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := operation(ctx)
		if err != nil && !isRetryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(r.maxRetries)+1),
		backoff.WithNotify(func(err error, next time.Duration) {
			r.logger.Warn("object storage call failed, retrying",
				"operation", op,
				"retry_in", next,
				"error", err,
			)
		}),
	)
	return err
}

func isRetryable(err error) bool {
	if storageErr, ok := IsStorageError(err); ok {
		return storageErr.IsRetryable()
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	// Network failures and timeouts.
	return true
}
