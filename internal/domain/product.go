package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item in the browsable product library.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Category    string
	ImagePath   *string
	PriceCents  int64
	Currency    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryCount is a product category with the number of active products in it.
type CategoryCount struct {
	Category string
	Count    int
}
