package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/pkg/ctxutil"
)

const (
	maxNameLen  = 200
	maxBriefLen = 4096
)

// CreateInput holds parameters for the Create operation.
type CreateInput struct {
	Name  string
	Brief *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Brief != nil && len(*i.Brief) > maxBriefLen {
		errs = append(errs, domain.FieldError{Field: "brief", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create registers a new campaign owned by the context user. New campaigns
// start in DRAFT; the first successful edit promotes them to ACTIVE.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Campaign, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Campaign{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Campaign{}, err
	}

	now := time.Now()
	created, err := s.campaigns.Create(ctx, domain.Campaign{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		Brief:     input.Brief,
		Status:    domain.CampaignStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign.Create: %w", err)
	}

	s.log.InfoContext(ctx, "campaign created",
		slog.String("campaign_id", created.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return created, nil
}

// ListMine returns the context user's campaigns.
func (s *Service) ListMine(ctx context.Context) ([]domain.Campaign, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	campaigns, err := s.campaigns.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("campaign.ListMine: %w", err)
	}

	return campaigns, nil
}

// Get returns one campaign. Members see their own campaigns only.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Campaign{}, domain.ErrUnauthorized
	}

	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign.Get: %w", err)
	}
	if campaign.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return domain.Campaign{}, domain.ErrForbidden
	}

	return campaign, nil
}

// Archive moves a campaign to ARCHIVED. Owners and admins only.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Campaign{}, domain.ErrUnauthorized
	}

	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign.Archive: %w", err)
	}
	if campaign.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return domain.Campaign{}, domain.ErrForbidden
	}
	if campaign.Status == domain.CampaignStatusArchived {
		return campaign, nil
	}

	archived, err := s.campaigns.UpdateStatus(ctx, id, domain.CampaignStatusArchived)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign.Archive: %w", err)
	}

	return archived, nil
}
