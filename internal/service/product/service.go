// Package product implements read-only operations over the product library.
package product

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// productRepo defines the product repository interface needed by the service.
type productRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

// Service implements product catalog operations.
type Service struct {
	log      *slog.Logger
	products productRepo
}

// NewService creates a new product service instance.
func NewService(logger *slog.Logger, products productRepo) *Service {
	return &Service{
		log:      logger.With("service", "product"),
		products: products,
	}
}
