package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
)

const productListCacheKey = "all"

type QueryService struct {
	productRepo application.ProductRepository
	listCache   application.ReadThroughCache[[]*domain.Product]
	logger      *slog.Logger
}

func NewQueryService(
	productRepo application.ProductRepository,
	listCache application.ReadThroughCache[[]*domain.Product],
	logger *slog.Logger,
) *QueryService {
	return &QueryService{
		productRepo: productRepo,
		listCache:   listCache,
		logger:      logger,
	}
}

// ListProducts returns every product, served from the list cache when warm.
func (s *QueryService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	s.logger.Debug("listing products")

	products, err := s.listCache.GetOrLoad(ctx, productListCacheKey, func(ctx context.Context) ([]*domain.Product, error) {
		return s.productRepo.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (s *QueryService) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	s.logger.Debug("fetching product", "product_id", id)
	return findExisting(ctx, s.productRepo, id)
}
