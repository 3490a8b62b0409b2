package edit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/provider"
	"github.com/campaignkit/campaignkit-backend/internal/storage"
	"github.com/campaignkit/campaignkit-backend/pkg/ctxutil"
)

// maxErrorMessageLen bounds provider error text stored on the audit row.
const maxErrorMessageLen = 1024

// EditImage performs an AI image edit for the authenticated user.
//
// The audit row is inserted before the provider call and finalized after it,
// whatever the outcome; cost and latency are recorded for failures too. On
// success the edited image is uploaded under the campaign's edited/ prefix
// and a DRAFT campaign is promoted to ACTIVE in the same transaction as the
// finalization.
func (s *Service) EditImage(ctx context.Context, input EditInput) (domain.ImageEdit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ImageEdit{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.ImageEdit{}, err
	}

	campaign, err := s.campaigns.GetByID(ctx, input.CampaignID)
	if err != nil {
		return domain.ImageEdit{}, fmt.Errorf("edit.EditImage get campaign: %w", err)
	}
	if campaign.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return domain.ImageEdit{}, domain.ErrForbidden
	}

	source, _, err := s.store.Get(ctx, input.SourcePath)
	if err != nil {
		return domain.ImageEdit{}, fmt.Errorf("edit.EditImage fetch source: %w", err)
	}

	var mask []byte
	if input.MaskPath != "" {
		mask, _, err = s.store.Get(ctx, input.MaskPath)
		if err != nil {
			return domain.ImageEdit{}, fmt.Errorf("edit.EditImage fetch mask: %w", err)
		}
	}

	// Append-then-finalize: the row exists before the provider is called, so
	// a crash mid-call still leaves an audit trail.
	now := time.Now()
	pending, err := s.edits.Create(ctx, domain.ImageEdit{
		ID:         uuid.New(),
		UserID:     userID,
		CampaignID: input.CampaignID,
		SourcePath: input.SourcePath,
		Operation:  input.Operation,
		Provider:   s.router.Primary(domain.CapabilityImageEdit),
		Params:     input.Params,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return domain.ImageEdit{}, fmt.Errorf("edit.EditImage create audit row: %w", err)
	}

	result, outcome, callErr := s.router.EditImage(ctx, provider.ImageEditRequest{
		Image:     source,
		Mask:      mask,
		Prompt:    input.Prompt,
		Operation: operationSlug(input.Operation),
		Params:    input.Params,
	})

	editOutcome := domain.EditOutcome{
		Provider:  outcome.Provider,
		Fallback:  outcome.Fallback,
		CostUSD:   outcome.CostUSD,
		LatencyMs: outcome.LatencyMs,
	}

	if callErr != nil {
		msg := callErr.Error()
		if len(msg) > maxErrorMessageLen {
			msg = msg[:maxErrorMessageLen]
		}
		editOutcome.ErrorMessage = &msg
	} else {
		resultKey := storage.EditedKey(input.CampaignID, pending.ID, result.ContentType)
		if err := s.store.Put(ctx, resultKey, result.Image, result.ContentType); err != nil {
			msg := "store result: " + err.Error()
			editOutcome.ErrorMessage = &msg
			callErr = fmt.Errorf("edit.EditImage store result: %w", err)
		} else {
			editOutcome.ResultPath = &resultKey
			editOutcome.Success = true
		}
	}

	var finalized domain.ImageEdit
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		finalized, err = s.edits.UpdateResult(txCtx, pending.ID, editOutcome)
		if err != nil {
			return fmt.Errorf("finalize audit row: %w", err)
		}

		if editOutcome.Success && campaign.Status == domain.CampaignStatusDraft {
			if _, err := s.campaigns.UpdateStatus(txCtx, campaign.ID, domain.CampaignStatusActive); err != nil {
				return fmt.Errorf("activate campaign: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return domain.ImageEdit{}, fmt.Errorf("edit.EditImage: %w", txErr)
	}

	if callErr != nil {
		s.log.WarnContext(ctx, "image edit failed",
			slog.String("edit_id", pending.ID.String()),
			slog.String("provider", outcome.Provider.String()),
			slog.Bool("fallback", outcome.Fallback),
			slog.String("error", callErr.Error()),
		)
		if errors.Is(callErr, domain.ErrProviderUnavailable) {
			return finalized, callErr
		}
		return finalized, fmt.Errorf("edit.EditImage: %w", callErr)
	}

	s.log.InfoContext(ctx, "image edit completed",
		slog.String("edit_id", finalized.ID.String()),
		slog.String("provider", finalized.Provider.String()),
		slog.Bool("fallback", finalized.Fallback),
		slog.Float64("cost_usd", finalized.CostUSD),
		slog.Int64("latency_ms", finalized.LatencyMs),
	)

	return finalized, nil
}

// operationSlug maps the stored operation enum to the vendor-neutral slug
// understood by provider adapters.
func operationSlug(op domain.EditOperation) string {
	return strings.ToLower(string(op))
}
