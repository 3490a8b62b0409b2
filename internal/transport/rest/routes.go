package rest

import "net/http"

// Handlers groups every REST handler for route registration.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Products   *ProductHandler
	Edits      *EditHandler
	Generation *GenerationHandler
	Campaigns  *CampaignHandler
	Admin      *AdminHandler
}

// NewMux builds the route table. Method-qualified patterns let the stdlib
// mux answer 405 for wrong verbs.
func NewMux(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/products", h.Products.List)
	mux.HandleFunc("GET /api/products/categories/list", h.Products.Categories)
	mux.HandleFunc("GET /api/products/search/query", h.Products.Search)
	mux.HandleFunc("GET /api/products/{id}", h.Products.Get)

	mux.HandleFunc("POST /api/edits", h.Edits.Create)
	mux.HandleFunc("GET /api/edits", h.Edits.List)
	mux.HandleFunc("GET /api/edits/{id}", h.Edits.Get)

	mux.HandleFunc("POST /api/generate", h.Generation.Generate)
	mux.HandleFunc("POST /api/embeddings", h.Generation.Embeddings)

	mux.HandleFunc("POST /api/campaigns", h.Campaigns.Create)
	mux.HandleFunc("GET /api/campaigns", h.Campaigns.List)
	mux.HandleFunc("GET /api/campaigns/{id}", h.Campaigns.Get)
	mux.HandleFunc("POST /api/campaigns/{id}/archive", h.Campaigns.Archive)

	mux.HandleFunc("GET /api/admin/compliance/summary", h.Admin.ComplianceSummary)
	mux.HandleFunc("GET /api/admin/users", h.Admin.ListUsers)
	mux.HandleFunc("PATCH /api/admin/users/{id}", h.Admin.UpdateUser)
	mux.HandleFunc("GET /api/admin/stats/users/{id}", h.Admin.UserStats)
	mux.HandleFunc("GET /api/admin/campaigns/{id}/history", h.Admin.CampaignHistory)
	mux.HandleFunc("GET /api/admin/router/status", h.Admin.RouterStatus)

	return mux
}
