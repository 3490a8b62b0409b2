package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/service/generation"
)

// generationService defines the minimal interface needed by GenerationHandler.
type generationService interface {
	GenerateCopy(ctx context.Context, input generation.GenerateInput) (generation.CopyResult, error)
	EmbedTexts(ctx context.Context, input generation.EmbedInput) (generation.EmbedResult, error)
}

// GenerationHandler serves copy generation and embedding endpoints.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

type generateRequest struct {
	CampaignID string `json:"campaignId"`
	Prompt     string `json:"prompt"`
	Tone       string `json:"tone"`
	MaxTokens  int    `json:"maxTokens"`
}

type generateResponse struct {
	Text         string  `json:"text"`
	ArtifactPath string  `json:"artifactPath"`
	Provider     string  `json:"provider"`
	Fallback     bool    `json:"fallback"`
	Tokens       int     `json:"tokens"`
	CostUSD      float64 `json:"costUsd"`
	LatencyMs    int64   `json:"latencyMs"`
}

type embedRequest struct {
	Texts []string `json:"texts"`
}

type embedResponse struct {
	Vectors   [][]float64 `json:"vectors"`
	Provider  string      `json:"provider"`
	Fallback  bool        `json:"fallback"`
	CostUSD   float64     `json:"costUsd"`
	LatencyMs int64       `json:"latencyMs"`
}

// Generate handles POST /api/generate.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	result, err := h.svc.GenerateCopy(r.Context(), generation.GenerateInput{
		CampaignID: campaignID,
		Prompt:     req.Prompt,
		Tone:       req.Tone,
		MaxTokens:  req.MaxTokens,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Text:         result.Text,
		ArtifactPath: result.ArtifactPath,
		Provider:     result.Provider.String(),
		Fallback:     result.Fallback,
		Tokens:       result.Tokens,
		CostUSD:      result.CostUSD,
		LatencyMs:    result.LatencyMs,
	})
}

// Embeddings handles POST /api/embeddings.
func (h *GenerationHandler) Embeddings(w http.ResponseWriter, r *http.Request) {
	var req embedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.EmbedTexts(r.Context(), generation.EmbedInput{Texts: req.Texts})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, embedResponse{
		Vectors:   result.Vectors,
		Provider:  result.Provider.String(),
		Fallback:  result.Fallback,
		CostUSD:   result.CostUSD,
		LatencyMs: result.LatencyMs,
	})
}
