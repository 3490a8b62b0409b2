package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/router"
	"github.com/campaignkit/campaignkit-backend/pkg/ctxutil"
)

// complianceService defines the reporting interface needed by AdminHandler.
type complianceService interface {
	Summary(ctx context.Context, from, to time.Time) (domain.ComplianceSummary, error)
	UserStatistics(ctx context.Context, userID uuid.UUID) (domain.UserEditStatistics, error)
	CampaignHistory(ctx context.Context, campaignID uuid.UUID, recentLimit int) (domain.CampaignEditHistory, error)
}

// userService defines the user-management interface needed by AdminHandler.
type userService interface {
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role domain.Role) (domain.User, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) (domain.User, error)
}

// routerStatus exposes the dispatch table with live provider health.
type routerStatus interface {
	Status(ctx context.Context) []router.Status
}

// AdminHandler serves the admin dashboard endpoints. The services enforce
// the admin role; handlers only translate HTTP.
type AdminHandler struct {
	compliance complianceService
	users      userService
	router     routerStatus
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(compliance complianceService, users userService, router routerStatus, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		compliance: compliance,
		users:      users,
		router:     router,
		log:        logger.With("handler", "admin"),
	}
}

type complianceSummaryResponse struct {
	WindowStart     time.Time               `json:"windowStart"`
	WindowEnd       time.Time               `json:"windowEnd"`
	TotalEdits      int                     `json:"totalEdits"`
	FailedEdits     int                     `json:"failedEdits"`
	TotalCostUSD    float64                 `json:"totalCostUsd"`
	SpendByProvider []providerSpendResponse `json:"spendByProvider"`
	FlaggedUsers    []flaggedUserResponse   `json:"flaggedUsers"`
}

type providerSpendResponse struct {
	Provider string  `json:"provider"`
	CostUSD  float64 `json:"costUsd"`
	Calls    int     `json:"calls"`
}

type flaggedUserResponse struct {
	UserID      string  `json:"userId"`
	Email       string  `json:"email"`
	TotalEdits  int     `json:"totalEdits"`
	Failed      int     `json:"failed"`
	FailureRate float64 `json:"failureRate"`
}

type userStatsResponse struct {
	UserID       string     `json:"userId"`
	TotalEdits   int        `json:"totalEdits"`
	Succeeded    int        `json:"succeeded"`
	Failed       int        `json:"failed"`
	SuccessRate  float64    `json:"successRate"`
	TotalCostUSD float64    `json:"totalCostUsd"`
	AvgLatencyMs float64    `json:"avgLatencyMs"`
	LastEditAt   *time.Time `json:"lastEditAt,omitempty"`
}

type campaignHistoryResponse struct {
	CampaignID   string         `json:"campaignId"`
	TotalEdits   int            `json:"totalEdits"`
	TotalCostUSD float64        `json:"totalCostUsd"`
	RecentEdits  []editResponse `json:"recentEdits"`
}

type updateUserRequest struct {
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

// ComplianceSummary handles GET /api/admin/compliance/summary?from=...&to=...
func (h *AdminHandler) ComplianceSummary(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time

	if v := r.URL.Query().Get("from"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "from: invalid RFC 3339 timestamp")
			return
		}
		from = ts
	}
	if v := r.URL.Query().Get("to"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "to: invalid RFC 3339 timestamp")
			return
		}
		to = ts
	}

	summary, err := h.compliance.Summary(r.Context(), from, to)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toComplianceSummaryResponse(summary))
}

// UserStats handles GET /api/admin/stats/users/{id}.
func (h *AdminHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	stats, err := h.compliance.UserStatistics(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userStatsResponse{
		UserID:       stats.UserID.String(),
		TotalEdits:   stats.TotalEdits,
		Succeeded:    stats.Succeeded,
		Failed:       stats.Failed,
		SuccessRate:  stats.SuccessRate,
		TotalCostUSD: stats.TotalCostUSD,
		AvgLatencyMs: stats.AvgLatencyMs,
		LastEditAt:   stats.LastEditAt,
	})
}

// CampaignHistory handles GET /api/admin/campaigns/{id}/history?recent=...
func (h *AdminHandler) CampaignHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	history, err := h.compliance.CampaignHistory(r.Context(), id, queryInt(r, "recent", 0))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recent := make([]editResponse, 0, len(history.RecentEdits))
	for _, e := range history.RecentEdits {
		recent = append(recent, toEditResponse(e))
	}

	writeJSON(w, http.StatusOK, campaignHistoryResponse{
		CampaignID:   history.CampaignID.String(),
		TotalEdits:   history.TotalEdits,
		TotalCostUSD: history.TotalCostUSD,
		RecentEdits:  recent,
	})
}

// ListUsers handles GET /api/admin/users?limit=...&offset=...
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{
			ID:     u.ID.String(),
			Email:  u.Email,
			Name:   u.Name,
			Role:   u.Role.String(),
			Active: u.Active,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// UpdateUser handles PATCH /api/admin/users/{id}. Role and active flag may
// be changed independently or together.
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Role == nil && req.Active == nil {
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	var updated domain.User

	if req.Role != nil {
		updated, err = h.users.UpdateRole(r.Context(), id, domain.Role(*req.Role))
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}
	if req.Active != nil {
		updated, err = h.users.SetActive(r.Context(), id, *req.Active)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:     updated.ID.String(),
		Email:  updated.Email,
		Name:   updated.Name,
		Role:   updated.Role.String(),
		Active: updated.Active,
	})
}

// RouterStatus handles GET /api/admin/router/status.
func (h *AdminHandler) RouterStatus(w http.ResponseWriter, r *http.Request) {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	writeJSON(w, http.StatusOK, h.router.Status(r.Context()))
}

func toComplianceSummaryResponse(s domain.ComplianceSummary) complianceSummaryResponse {
	spend := make([]providerSpendResponse, 0, len(s.SpendByProvider))
	for _, p := range s.SpendByProvider {
		spend = append(spend, providerSpendResponse{
			Provider: p.Provider.String(),
			CostUSD:  p.CostUSD,
			Calls:    p.Calls,
		})
	}

	flagged := make([]flaggedUserResponse, 0, len(s.FlaggedUsers))
	for _, f := range s.FlaggedUsers {
		flagged = append(flagged, flaggedUserResponse{
			UserID:      f.UserID.String(),
			Email:       f.Email,
			TotalEdits:  f.TotalEdits,
			Failed:      f.Failed,
			FailureRate: f.FailureRate,
		})
	}

	return complianceSummaryResponse{
		WindowStart:     s.WindowStart,
		WindowEnd:       s.WindowEnd,
		TotalEdits:      s.TotalEdits,
		FailedEdits:     s.FailedEdits,
		TotalCostUSD:    s.TotalCostUSD,
		SpendByProvider: spend,
		FlaggedUsers:    flagged,
	}
}
