package edit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/pkg/ctxutil"
)

// GetEdit returns one audit record. Members can only read their own edits;
// admins can read any.
func (s *Service) GetEdit(ctx context.Context, id uuid.UUID) (domain.ImageEdit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ImageEdit{}, domain.ErrUnauthorized
	}

	edit, err := s.edits.GetByID(ctx, id)
	if err != nil {
		return domain.ImageEdit{}, fmt.Errorf("edit.GetEdit: %w", err)
	}

	if edit.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return domain.ImageEdit{}, domain.ErrForbidden
	}

	return edit, nil
}

// ListEdits returns audit records matching the input. Members are always
// scoped to their own history; admins may filter by any user.
func (s *Service) ListEdits(ctx context.Context, input ListInput) ([]domain.ImageEdit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.EditFilter{
		CampaignID: input.CampaignID,
		Operation:  input.Operation,
		Provider:   input.Provider,
		Success:    input.Success,
		From:       input.From,
		To:         input.To,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}

	if ctxutil.IsAdminCtx(ctx) {
		filter.UserID = input.UserID // nil means all users
	} else {
		filter.UserID = &userID
	}

	edits, err := s.edits.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("edit.ListEdits: %w", err)
	}

	return edits, nil
}
