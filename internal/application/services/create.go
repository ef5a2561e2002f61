package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
)

type CreateService struct {
	productRepo application.ProductRepository
	listCache   cacheInvalidator
	logger      *slog.Logger
}

func NewCreateService(
	productRepo application.ProductRepository,
	listCache cacheInvalidator,
	logger *slog.Logger,
) *CreateService {
	return &CreateService{
		productRepo: productRepo,
		listCache:   listCache,
		logger:      logger,
	}
}

// CreateProduct persists candidate and returns it carrying the identifier
// assigned by the store. Any identifier on candidate is ignored.
func (s *CreateService) CreateProduct(ctx context.Context, candidate *domain.Product) (*domain.Product, error) {
	saved, err := s.productRepo.Save(ctx, candidate.WithoutID())
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.listCache.InvalidateAll()

	s.logger.Info("product created",
		"product_id", saved.ID().Value(),
		"name", saved.Name().Value(),
	)

	return saved, nil
}
