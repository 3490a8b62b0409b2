package edit

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// promptOptional lists operations that work without a prompt.
var promptOptional = map[domain.EditOperation]bool{
	domain.EditOperationRemoveBackground: true,
	domain.EditOperationUpscale:          true,
}

// EditInput holds parameters for the EditImage operation.
type EditInput struct {
	CampaignID uuid.UUID

	// SourcePath is the object key of the uploaded source image. It must
	// live under the campaign's uploads/ prefix.
	SourcePath string

	Operation domain.EditOperation
	Prompt    string

	// Mask is an optional object key for operations that take a mask.
	MaskPath string

	// Params are vendor pass-through parameters stored on the audit row.
	Params map[string]any
}

// Validate validates the edit input.
func (i EditInput) Validate() error {
	var errs []domain.FieldError

	if i.CampaignID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "campaign_id", Message: "required"})
	}

	if !i.Operation.IsValid() {
		errs = append(errs, domain.FieldError{Field: "operation", Message: "unknown operation"})
	}

	if i.SourcePath == "" {
		errs = append(errs, domain.FieldError{Field: "source_path", Message: "required"})
	} else if i.CampaignID != uuid.Nil {
		prefix := fmt.Sprintf("campaigns/%s/", i.CampaignID)
		if !strings.HasPrefix(i.SourcePath, prefix) {
			errs = append(errs, domain.FieldError{Field: "source_path", Message: "must belong to the campaign"})
		}
	}

	if i.Prompt == "" && i.Operation.IsValid() && !promptOptional[i.Operation] {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "required for this operation"})
	}
	if len(i.Prompt) > 4096 {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for the ListEdits operation.
type ListInput struct {
	// UserID is honored for admins only; members always see their own edits.
	UserID     *uuid.UUID
	CampaignID *uuid.UUID
	Operation  *domain.EditOperation
	Provider   *domain.Provider
	Success    *bool
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Operation != nil && !i.Operation.IsValid() {
		errs = append(errs, domain.FieldError{Field: "operation", Message: "unknown operation"})
	}
	if i.Provider != nil && !i.Provider.IsValid() {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "unknown provider"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
