// Package compliance implements the admin-facing reporting operations
// computed from the image-edit audit log.
package compliance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// statsRepo defines the aggregate query interface needed by the service.
type statsRepo interface {
	UserEditStatistics(ctx context.Context, userID uuid.UUID) (domain.UserEditStatistics, error)
	CampaignEditHistory(ctx context.Context, campaignID uuid.UUID, recentLimit int) (domain.CampaignEditHistory, error)
	ComplianceSummary(ctx context.Context, from, to time.Time) (domain.ComplianceSummary, error)
}

// Service implements compliance reporting. Every operation is admin-only.
type Service struct {
	log   *slog.Logger
	stats statsRepo
}

// NewService creates a new compliance service instance.
func NewService(logger *slog.Logger, stats statsRepo) *Service {
	return &Service{
		log:   logger.With("service", "compliance"),
		stats: stats,
	}
}
