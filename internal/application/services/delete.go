package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
)

type DeleteService struct {
	productRepo application.ProductRepository
	listCache   cacheInvalidator
	logger      *slog.Logger
}

func NewDeleteService(
	productRepo application.ProductRepository,
	listCache cacheInvalidator,
	logger *slog.Logger,
) *DeleteService {
	return &DeleteService{
		productRepo: productRepo,
		listCache:   listCache,
		logger:      logger,
	}
}

func (s *DeleteService) DeleteProduct(ctx context.Context, id int64) error {
	existing, err := findExisting(ctx, s.productRepo, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.DeleteByID(ctx, existing.ID()); err != nil {
		// Lost a race with another delete.
		if errors.Is(err, application.ErrRecordNotFound) {
			return domain.NewProductNotFoundError(id)
		}
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	s.listCache.InvalidateAll()

	s.logger.Info("product deleted", "product_id", id)

	return nil
}
