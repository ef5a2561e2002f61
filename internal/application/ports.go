package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/aquapure/internal/domain"
)

// ProductRepository is the port for product persistence.
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	// FindByID returns ErrRecordNotFound when no product has the id.
	FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	// Save inserts a product with a zero ID and returns it carrying the
	// store-assigned identifier; otherwise it upserts by ID.
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteByID(ctx context.Context, id domain.ProductID) error
}

// ImageIndex is the port for the searchable image catalog.
type ImageIndex interface {
	Save(ctx context.Context, doc *domain.ImageDocument) error
	FindByID(ctx context.Context, id string) (*domain.ImageDocument, error)
	SearchByTag(ctx context.Context, tag string) ([]*domain.ImageDocument, error)
	SearchByDescription(ctx context.Context, keyword string) ([]*domain.ImageDocument, error)
	SearchByFileName(ctx context.Context, keyword string) ([]*domain.ImageDocument, error)
	DeleteByID(ctx context.Context, id string) error
}

// ObjectStorage is the port for the external blob store.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	PutObject(ctx context.Context, objectName, contentType string, data []byte) error
	DeleteObject(ctx context.Context, objectName string) error
	PresignGetURL(objectName string, expiry time.Duration) (string, error)
}

// PendingDeletion is an object whose removal from storage failed and is
// retried in the background.
type PendingDeletion struct {
	ObjectName    string
	Attempts      int
	NextAttemptAt time.Time
	LastError     string
	CreatedAt     time.Time
}

type PendingDeletionQueue interface {
	Enqueue(ctx context.Context, objectName string, cause error) error
	FindDue(ctx context.Context, limit int) ([]PendingDeletion, error)
	Remove(ctx context.Context, objectName string) error
	Reschedule(ctx context.Context, objectName string, nextAttemptAt time.Time, cause error) error
}

// ReadThroughCache serves values by key, calling load on a miss.
type ReadThroughCache[V any] interface {
	GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error)
	InvalidateAll()
}
