package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/pkg/ctxutil"
)

const (
	// defaultWindow is used when the caller does not bound the report.
	defaultWindow = 30 * 24 * time.Hour

	defaultRecentEdits = 10
	maxRecentEdits     = 100
)

// Summary builds the platform-wide compliance report for the given window.
// A zero From defaults to 30 days before To; a zero To defaults to now.
func (s *Service) Summary(ctx context.Context, from, to time.Time) (domain.ComplianceSummary, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ComplianceSummary{}, domain.ErrForbidden
	}

	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.Add(-defaultWindow)
	}
	if to.Before(from) {
		return domain.ComplianceSummary{}, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "to", Message: "must not be before from"},
		}}
	}

	summary, err := s.stats.ComplianceSummary(ctx, from, to)
	if err != nil {
		return domain.ComplianceSummary{}, fmt.Errorf("compliance.Summary: %w", err)
	}

	return summary, nil
}

// UserStatistics aggregates one user's edit activity across all time.
func (s *Service) UserStatistics(ctx context.Context, userID uuid.UUID) (domain.UserEditStatistics, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.UserEditStatistics{}, domain.ErrForbidden
	}
	if userID == uuid.Nil {
		return domain.UserEditStatistics{}, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "user_id", Message: "required"},
		}}
	}

	stats, err := s.stats.UserEditStatistics(ctx, userID)
	if err != nil {
		return domain.UserEditStatistics{}, fmt.Errorf("compliance.UserStatistics: %w", err)
	}

	return stats, nil
}

// CampaignHistory aggregates one campaign's edit activity together with its
// most recent edits. recentLimit <= 0 selects the default.
func (s *Service) CampaignHistory(ctx context.Context, campaignID uuid.UUID, recentLimit int) (domain.CampaignEditHistory, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.CampaignEditHistory{}, domain.ErrForbidden
	}
	if campaignID == uuid.Nil {
		return domain.CampaignEditHistory{}, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "campaign_id", Message: "required"},
		}}
	}

	if recentLimit <= 0 {
		recentLimit = defaultRecentEdits
	}
	if recentLimit > maxRecentEdits {
		recentLimit = maxRecentEdits
	}

	history, err := s.stats.CampaignEditHistory(ctx, campaignID, recentLimit)
	if err != nil {
		return domain.CampaignEditHistory{}, fmt.Errorf("compliance.CampaignHistory: %w", err)
	}

	return history, nil
}
