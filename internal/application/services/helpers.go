package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
)

// cacheInvalidator is the part of a read-through cache that write paths need.
type cacheInvalidator interface {
	InvalidateAll()
}

// findExisting validates id and loads the product it names. A missing row
// becomes a product NotFound error; store failures pass through wrapped.
func findExisting(ctx context.Context, repo application.ProductRepository, id int64) (*domain.Product, error) {
	productID, err := domain.NewProductID(id)
	if err != nil {
		return nil, err
	}

	product, err := repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, application.ErrRecordNotFound) {
			return nil, domain.NewProductNotFoundError(id)
		}
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}

	return product, nil
}
