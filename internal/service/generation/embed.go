package generation

import (
	"context"
	"fmt"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/pkg/ctxutil"
)

const (
	maxEmbedTexts   = 96
	maxEmbedTextLen = 8192
)

// EmbedInput holds parameters for the EmbedTexts operation.
type EmbedInput struct {
	Texts []string
}

// Validate validates the embed input.
func (i EmbedInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Texts) == 0 {
		errs = append(errs, domain.FieldError{Field: "texts", Message: "required"})
	} else if len(i.Texts) > maxEmbedTexts {
		errs = append(errs, domain.FieldError{Field: "texts", Message: fmt.Sprintf("at most %d texts per request", maxEmbedTexts)})
	}
	for idx, text := range i.Texts {
		if text == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("texts[%d]", idx), Message: "must not be empty"})
			break
		}
		if len(text) > maxEmbedTextLen {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("texts[%d]", idx), Message: "too long"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EmbedResult is returned by EmbedTexts. Every vector has the same, fixed
// dimension regardless of the provider that served the call.
type EmbedResult struct {
	Vectors   [][]float64
	Provider  domain.Provider
	Fallback  bool
	CostUSD   float64
	LatencyMs int64
}

// EmbedTexts embeds a batch of texts via the router.
func (s *Service) EmbedTexts(ctx context.Context, input EmbedInput) (EmbedResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return EmbedResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return EmbedResult{}, err
	}

	vectors, outcome, err := s.router.Embed(ctx, input.Texts)
	if err != nil {
		return EmbedResult{}, fmt.Errorf("generation.EmbedTexts: %w", err)
	}

	return EmbedResult{
		Vectors:   vectors,
		Provider:  outcome.Provider,
		Fallback:  outcome.Fallback,
		CostUSD:   outcome.CostUSD,
		LatencyMs: outcome.LatencyMs,
	}, nil
}
