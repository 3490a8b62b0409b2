package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImageEdit is the audit record for a single AI image-editing call.
// A row is inserted before the provider call (Success=false, no result path)
// and finalized afterwards with the outcome; updated_at is refreshed by a
// database trigger on every update.
type ImageEdit struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CampaignID   uuid.UUID
	SourcePath   string
	ResultPath   *string
	Operation    EditOperation
	Provider     Provider
	Params       map[string]any
	Fallback     bool
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EditOutcome carries the result of a finished provider call, used to
// finalize an ImageEdit row.
type EditOutcome struct {
	ResultPath   *string
	Provider     Provider
	Fallback     bool
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage *string
}
