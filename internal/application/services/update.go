package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
)

type UpdateService struct {
	productRepo application.ProductRepository
	listCache   cacheInvalidator
	logger      *slog.Logger
}

func NewUpdateService(
	productRepo application.ProductRepository,
	listCache cacheInvalidator,
	logger *slog.Logger,
) *UpdateService {
	return &UpdateService{
		productRepo: productRepo,
		listCache:   listCache,
		logger:      logger,
	}
}

// UpdateProduct replaces every field of the product named by id with the
// candidate's fields. The candidate's own identifier is ignored.
func (s *UpdateService) UpdateProduct(ctx context.Context, id int64, candidate *domain.Product) (*domain.Product, error) {
	existing, err := findExisting(ctx, s.productRepo, id)
	if err != nil {
		return nil, err
	}

	saved, err := s.productRepo.Save(ctx, candidate.WithID(existing.ID()))
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	s.listCache.InvalidateAll()

	s.logger.Info("product updated", "product_id", id)

	return saved, nil
}

// UpdateProductQuantity changes only the stock level.
func (s *UpdateService) UpdateProductQuantity(ctx context.Context, id int64, newQuantity int) (*domain.Product, error) {
	quantity, err := domain.NewQuantity(newQuantity)
	if err != nil {
		return nil, err
	}

	existing, err := findExisting(ctx, s.productRepo, id)
	if err != nil {
		return nil, err
	}

	saved, err := s.productRepo.Save(ctx, existing.WithQuantity(quantity))
	if err != nil {
		return nil, fmt.Errorf("update quantity of product %d: %w", id, err)
	}

	s.listCache.InvalidateAll()

	s.logger.Info("product quantity updated",
		"product_id", id,
		"old_quantity", existing.Quantity().Value(),
		"new_quantity", quantity.Value(),
	)

	return saved, nil
}
