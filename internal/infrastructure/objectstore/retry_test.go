package objectstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/aquapure/internal/config"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/objectstore"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/objectstore/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRetryStorage(inner objectstore.Storage) *objectstore.RetryStorage {
	return objectstore.NewRetryStorage(inner, config.RetryConfig{
		BaseDelay:  time.Millisecond,
		MaxRetries: 2,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRetryStorage_PutObject_Success(t *testing.T) {
	inner := mocks.NewMockStorage(t)
	storage := newRetryStorage(inner)

	inner.EXPECT().
		PutObject(mock.Anything, "a.png", "image/png", []byte("x")).
		Return(nil).
		Once()

	err := storage.PutObject(context.Background(), "a.png", "image/png", []byte("x"))
	require.NoError(t, err)
}

func TestRetryStorage_PutObject_RetriesOn5xx(t *testing.T) {
	inner := mocks.NewMockStorage(t)
	storage := newRetryStorage(inner)

	inner.EXPECT().
		PutObject(mock.Anything, "a.png", "image/png", mock.Anything).
		Return(&objectstore.StorageError{Code: "internal_error", StatusCode: 503}).
		Twice()
	inner.EXPECT().
		PutObject(mock.Anything, "a.png", "image/png", mock.Anything).
		Return(nil).
		Once()

	err := storage.PutObject(context.Background(), "a.png", "image/png", []byte("x"))
	require.NoError(t, err)
}

func TestRetryStorage_DeleteObject_DoesNotRetry4xx(t *testing.T) {
	inner := mocks.NewMockStorage(t)
	storage := newRetryStorage(inner)

	forbidden := &objectstore.StorageError{Code: "access_denied", StatusCode: 403}
	inner.EXPECT().
		DeleteObject(mock.Anything, "a.png").
		Return(forbidden).
		Once()

	err := storage.DeleteObject(context.Background(), "a.png")

	require.Error(t, err)
	storageErr, ok := objectstore.IsStorageError(err)
	require.True(t, ok)
	assert.Equal(t, 403, storageErr.StatusCode)
}

func TestRetryStorage_GivesUpAfterMaxRetries(t *testing.T) {
	inner := mocks.NewMockStorage(t)
	storage := newRetryStorage(inner)

	netErr := errors.New("connection refused")
	inner.EXPECT().
		EnsureBucket(mock.Anything).
		Return(netErr).
		Times(3)

	err := storage.EnsureBucket(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, netErr)
}

func TestRetryStorage_StopsOnCanceledContext(t *testing.T) {
	inner := mocks.NewMockStorage(t)
	storage := newRetryStorage(inner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner.EXPECT().
		DeleteObject(mock.Anything, "a.png").
		Return(context.Canceled).
		Maybe()

	err := storage.DeleteObject(ctx, "a.png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryStorage_PresignPassesThrough(t *testing.T) {
	inner := mocks.NewMockStorage(t)
	storage := newRetryStorage(inner)

	inner.EXPECT().
		PresignGetURL("a.png", time.Hour).
		Return("https://cdn/a.png", nil).
		Once()

	u, err := storage.PresignGetURL("a.png", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/a.png", u)
}
