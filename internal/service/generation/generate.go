package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/provider"
	"github.com/campaignkit/campaignkit-backend/internal/storage"
	"github.com/campaignkit/campaignkit-backend/pkg/ctxutil"
)

const (
	maxPromptLen    = 8192
	defaultCopyTone = "friendly and persuasive"
	maxCopyTokens   = 2048
)

// GenerateInput holds parameters for the GenerateCopy operation.
type GenerateInput struct {
	CampaignID uuid.UUID
	Prompt     string

	// Tone steers the system message, e.g. "playful", "formal".
	Tone string

	// MaxTokens caps the completion length. Zero means the service default.
	MaxTokens int
}

// Validate validates the generate input.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.CampaignID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "campaign_id", Message: "required"})
	}
	if i.Prompt == "" {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "required"})
	} else if len(i.Prompt) > maxPromptLen {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "too long"})
	}
	if i.MaxTokens < 0 || i.MaxTokens > maxCopyTokens {
		errs = append(errs, domain.FieldError{Field: "max_tokens", Message: fmt.Sprintf("must be between 0 and %d", maxCopyTokens)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CopyResult is returned by GenerateCopy.
type CopyResult struct {
	Text         string
	ArtifactPath string
	Provider     domain.Provider
	Fallback     bool
	Tokens       int
	CostUSD      float64
	LatencyMs    int64
}

// GenerateCopy produces marketing copy for a campaign and persists the text
// under the campaign's generated_files/ prefix.
func (s *Service) GenerateCopy(ctx context.Context, input GenerateInput) (CopyResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return CopyResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return CopyResult{}, err
	}

	campaign, err := s.campaigns.GetByID(ctx, input.CampaignID)
	if err != nil {
		return CopyResult{}, fmt.Errorf("generation.GenerateCopy get campaign: %w", err)
	}
	if campaign.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return CopyResult{}, domain.ErrForbidden
	}

	tone := input.Tone
	if tone == "" {
		tone = defaultCopyTone
	}
	maxTokens := input.MaxTokens
	if maxTokens == 0 {
		maxTokens = maxCopyTokens
	}

	system := fmt.Sprintf("You are a marketing copywriter. Write %s copy for the campaign %q.", tone, campaign.Name)
	if campaign.Brief != nil && *campaign.Brief != "" {
		system += " Campaign brief: " + *campaign.Brief
	}

	result, outcome, err := s.router.Generate(ctx, provider.GenerateRequest{
		Prompt:    input.Prompt,
		System:    system,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return CopyResult{}, fmt.Errorf("generation.GenerateCopy: %w", err)
	}

	artifactKey := storage.GeneratedKey(campaign.ID, uuid.New(), "text/plain")
	if err := s.store.Put(ctx, artifactKey, []byte(result.Text), "text/plain"); err != nil {
		return CopyResult{}, fmt.Errorf("generation.GenerateCopy store artifact: %w", err)
	}

	s.log.InfoContext(ctx, "copy generated",
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("provider", outcome.Provider.String()),
		slog.Bool("fallback", outcome.Fallback),
		slog.Int("tokens", result.Tokens),
		slog.Float64("cost_usd", outcome.CostUSD),
	)

	return CopyResult{
		Text:         result.Text,
		ArtifactPath: artifactKey,
		Provider:     outcome.Provider,
		Fallback:     outcome.Fallback,
		Tokens:       result.Tokens,
		CostUSD:      outcome.CostUSD,
		LatencyMs:    outcome.LatencyMs,
	}, nil
}
