package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/service/product"
)

// productService defines the minimal interface needed by ProductHandler.
type productService interface {
	List(ctx context.Context, input product.ListInput) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	Search(ctx context.Context, input product.SearchInput) ([]domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Product, error)
}

// ProductHandler serves the product library endpoints.
type ProductHandler struct {
	svc productService
	log *slog.Logger
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(svc productService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: logger.With("handler", "product")}
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	ImagePath   *string   `json:"imagePath,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type categoryResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// List handles GET /api/products?category=...&limit=...&offset=...
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	input := product.ListInput{
		Limit:           queryInt(r, "limit", 0),
		Offset:          queryInt(r, "offset", 0),
		IncludeInactive: r.URL.Query().Get("include_inactive") == "true",
	}
	if category := r.URL.Query().Get("category"); category != "" {
		input.Category = &category
	}

	products, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// Categories handles GET /api/products/categories/list.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{Category: c.Category, Count: c.Count})
	}

	writeJSON(w, http.StatusOK, out)
}

// Search handles GET /api/products/search/query?q=...&limit=...
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Search(r.Context(), product.SearchInput{
		Query: r.URL.Query().Get("q"),
		Limit: queryInt(r, "limit", 0),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(p))
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		ImagePath:   p.ImagePath,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
