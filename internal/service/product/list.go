package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/pkg/ctxutil"
)

const maxCategoryLen = 128

// ListInput holds parameters for the List operation.
type ListInput struct {
	Category *string

	// IncludeInactive exposes hidden products. Honored for admins only.
	IncludeInactive bool

	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil {
		if *i.Category == "" {
			errs = append(errs, domain.FieldError{Field: "category", Message: "must not be empty"})
		} else if len(*i.Category) > maxCategoryLen {
			errs = append(errs, domain.FieldError{Field: "category", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns products from the library. Members only ever see active
// products; admins may opt into inactive ones.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ProductFilter{
		Category:   input.Category,
		ActiveOnly: !input.IncludeInactive || !ctxutil.IsAdminCtx(ctx),
		Limit:      input.Limit,
		Offset:     input.Offset,
	}

	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("product.List: %w", err)
	}

	return products, nil
}

// Categories returns the distinct categories of active products with counts.
func (s *Service) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	categories, err := s.products.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("product.Categories: %w", err)
	}

	return categories, nil
}

// Get returns a single product by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product.Get: %w", err)
	}

	if !product.Active && !ctxutil.IsAdminCtx(ctx) {
		return domain.Product{}, domain.ErrNotFound
	}

	return product, nil
}
