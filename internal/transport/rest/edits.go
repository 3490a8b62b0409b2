package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/service/edit"
)

// editService defines the minimal interface needed by EditHandler.
type editService interface {
	EditImage(ctx context.Context, input edit.EditInput) (domain.ImageEdit, error)
	GetEdit(ctx context.Context, id uuid.UUID) (domain.ImageEdit, error)
	ListEdits(ctx context.Context, input edit.ListInput) ([]domain.ImageEdit, error)
}

// EditHandler serves the image-edit endpoints.
type EditHandler struct {
	svc editService
	log *slog.Logger
}

// NewEditHandler creates an EditHandler.
func NewEditHandler(svc editService, logger *slog.Logger) *EditHandler {
	return &EditHandler{svc: svc, log: logger.With("handler", "edit")}
}

type editRequest struct {
	CampaignID string         `json:"campaignId"`
	SourcePath string         `json:"sourcePath"`
	Operation  string         `json:"operation"`
	Prompt     string         `json:"prompt"`
	MaskPath   string         `json:"maskPath"`
	Params     map[string]any `json:"params"`
}

type editResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	CampaignID   string         `json:"campaignId"`
	SourcePath   string         `json:"sourcePath"`
	ResultPath   *string        `json:"resultPath,omitempty"`
	Operation    string         `json:"operation"`
	Provider     string         `json:"provider"`
	Params       map[string]any `json:"params,omitempty"`
	Fallback     bool           `json:"fallback"`
	CostUSD      float64        `json:"costUsd"`
	LatencyMs    int64          `json:"latencyMs"`
	Success      bool           `json:"success"`
	ErrorMessage *string        `json:"errorMessage,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Create handles POST /api/edits.
func (h *EditHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	result, err := h.svc.EditImage(r.Context(), edit.EditInput{
		CampaignID: campaignID,
		SourcePath: req.SourcePath,
		Operation:  domain.EditOperation(strings.ToUpper(req.Operation)),
		Prompt:     req.Prompt,
		MaskPath:   req.MaskPath,
		Params:     req.Params,
	})
	if err != nil {
		// The audit row is finalized even when the provider call failed;
		// the error decides the status, not the payload.
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEditResponse(result))
}

// Get handles GET /api/edits/{id}.
func (h *EditHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid edit id")
		return
	}

	result, err := h.svc.GetEdit(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEditResponse(result))
}

// List handles GET /api/edits with optional filters.
func (h *EditHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	edits, err := h.svc.ListEdits(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]editResponse, 0, len(edits))
	for _, e := range edits {
		out = append(out, toEditResponse(e))
	}

	writeJSON(w, http.StatusOK, out)
}

func parseListInput(r *http.Request) (edit.ListInput, error) {
	q := r.URL.Query()

	input := edit.ListInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}

	if v := q.Get("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return edit.ListInput{}, domain.NewValidationError("user_id", "invalid uuid")
		}
		input.UserID = &id
	}
	if v := q.Get("campaign_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return edit.ListInput{}, domain.NewValidationError("campaign_id", "invalid uuid")
		}
		input.CampaignID = &id
	}
	if v := q.Get("operation"); v != "" {
		op := domain.EditOperation(strings.ToUpper(v))
		input.Operation = &op
	}
	if v := q.Get("provider"); v != "" {
		p := domain.Provider(strings.ToUpper(v))
		input.Provider = &p
	}
	if v := q.Get("success"); v != "" {
		success := v == "true"
		input.Success = &success
	}
	if v := q.Get("from"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return edit.ListInput{}, domain.NewValidationError("from", "invalid RFC 3339 timestamp")
		}
		input.From = &ts
	}
	if v := q.Get("to"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return edit.ListInput{}, domain.NewValidationError("to", "invalid RFC 3339 timestamp")
		}
		input.To = &ts
	}

	return input, nil
}

func toEditResponse(e domain.ImageEdit) editResponse {
	return editResponse{
		ID:           e.ID.String(),
		UserID:       e.UserID.String(),
		CampaignID:   e.CampaignID.String(),
		SourcePath:   e.SourcePath,
		ResultPath:   e.ResultPath,
		Operation:    e.Operation.String(),
		Provider:     e.Provider.String(),
		Params:       e.Params,
		Fallback:     e.Fallback,
		CostUSD:      e.CostUSD,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
