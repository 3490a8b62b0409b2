// Package generation implements marketing-copy generation and text
// embeddings on top of the AI router.
package generation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/provider"
	"github.com/campaignkit/campaignkit-backend/internal/router"
)

// campaignRepo defines the campaign repository interface needed by the service.
type campaignRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
}

// objectStore defines the artifact storage interface needed by the service.
type objectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// aiRouter defines the dispatch interface needed by the service.
type aiRouter interface {
	Generate(ctx context.Context, req provider.GenerateRequest) (provider.GenerateResult, router.Outcome, error)
	Embed(ctx context.Context, texts []string) ([][]float64, router.Outcome, error)
}

// Service implements generation operations.
type Service struct {
	log       *slog.Logger
	campaigns campaignRepo
	store     objectStore
	router    aiRouter
}

// NewService creates a new generation service instance.
func NewService(logger *slog.Logger, campaigns campaignRepo, store objectStore, aiRouter aiRouter) *Service {
	return &Service{
		log:       logger.With("service", "generation"),
		campaigns: campaigns,
		store:     store,
		router:    aiRouter,
	}
}
