package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserEditStatistics aggregates a user's image-edit activity.
type UserEditStatistics struct {
	UserID       uuid.UUID
	TotalEdits   int
	Succeeded    int
	Failed       int
	SuccessRate  float64
	TotalCostUSD float64
	AvgLatencyMs float64
	LastEditAt   *time.Time
}

// CampaignEditHistory aggregates a campaign's image-edit activity together
// with its most recent edits.
type CampaignEditHistory struct {
	CampaignID   uuid.UUID
	TotalEdits   int
	TotalCostUSD float64
	RecentEdits  []ImageEdit
}

// ProviderSpend is the total spend attributed to one provider.
type ProviderSpend struct {
	Provider Provider
	CostUSD  float64
	Calls    int
}

// FlaggedUser is a user whose failure rate exceeded the compliance threshold
// within the reporting window.
type FlaggedUser struct {
	UserID      uuid.UUID
	Email       string
	TotalEdits  int
	Failed      int
	FailureRate float64
}

// ComplianceSummary is the platform-wide report served to the admin dashboard.
type ComplianceSummary struct {
	WindowStart     time.Time
	WindowEnd       time.Time
	TotalEdits      int
	FailedEdits     int
	TotalCostUSD    float64
	SpendByProvider []ProviderSpend
	FlaggedUsers    []FlaggedUser
}
