// Package campaign implements campaign lifecycle operations.
package campaign

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// campaignRepo defines the campaign repository interface needed by the service.
type campaignRepo interface {
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) (domain.Campaign, error)
}

// Service implements campaign operations.
type Service struct {
	log       *slog.Logger
	campaigns campaignRepo
}

// NewService creates a new campaign service instance.
func NewService(logger *slog.Logger, campaigns campaignRepo) *Service {
	return &Service{
		log:       logger.With("service", "campaign"),
		campaigns: campaigns,
	}
}
