package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

const maxSearchQueryLen = 256

// SearchInput holds parameters for the Search operation.
type SearchInput struct {
	Query string
	Limit int
}

// Validate validates the search input.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.Query)
	if q == "" {
		errs = append(errs, domain.FieldError{Field: "q", Message: "required"})
	} else if len(q) > maxSearchQueryLen {
		errs = append(errs, domain.FieldError{Field: "q", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Search finds active products by a case-insensitive substring of their
// name or description.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	products, err := s.products.Search(ctx, strings.TrimSpace(input.Query), input.Limit)
	if err != nil {
		return nil, fmt.Errorf("product.Search: %w", err)
	}

	return products, nil
}
