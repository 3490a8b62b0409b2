package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	defaultFilterLimit = 50
	maxFilterLimit     = 200
)

// EditFilter contains filtering/pagination parameters for image-edit listings.
type EditFilter struct {
	// UserID restricts results to edits made by the given user.
	UserID *uuid.UUID

	// CampaignID restricts results to edits belonging to the given campaign.
	CampaignID *uuid.UUID

	// Operation filters by edit operation type.
	Operation *EditOperation

	// Provider filters by the provider that served the edit.
	Provider *Provider

	// Success filters finished edits by outcome.
	Success *bool

	// From/To bound created_at (inclusive from, exclusive to).
	From *time.Time
	To   *time.Time

	// Limit is the maximum number of records to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of records to skip (offset-based pagination).
	Offset int
}

// Normalize applies defaults and clamps values.
func (f *EditFilter) Normalize() {
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)
}

// ProductFilter contains filtering/pagination parameters for product listings.
type ProductFilter struct {
	// Category restricts results to one category.
	Category *string

	// ActiveOnly hides inactive products.
	ActiveOnly bool

	// Limit is the maximum number of records to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of records to skip.
	Offset int
}

// Normalize applies defaults and clamps values.
func (f *ProductFilter) Normalize() {
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultFilterLimit
	}
	if limit > maxFilterLimit {
		limit = maxFilterLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
