package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign is a marketing campaign owning generated and edited artifacts.
type Campaign struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Brief     *string
	Status    CampaignStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
