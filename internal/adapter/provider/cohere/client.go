// Package cohere is the Cohere adapter, used as the embeddings fallback.
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/campaignkit/campaignkit-backend/internal/provider"
)

const (
	providerName = "cohere"

	embedModel = "embed-english-v3.0"
)

// Config holds the client settings. Costs are in USD.
type Config struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RatePerSecond  float64
	RateBurst      int

	EmbedCostPer1K float64
}

// Client calls the Cohere API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// New creates a Client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		log:        logger.With("adapter", providerName),
	}
}

type embedRequest struct {
	Model          string   `json:"model"`
	Texts          []string `json:"texts"`
	InputType      string   `json:"input_type"`
	EmbeddingTypes []string `json:"embedding_types"`
}

type embedResponse struct {
	Embeddings struct {
		Float [][]float64 `json:"float"`
	} `json:"embeddings"`
	Meta struct {
		BilledUnits struct {
			InputTokens int `json:"input_tokens"`
		} `json:"billed_units"`
	} `json:"meta"`
}

// Embed returns one embedding per input text, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) (provider.EmbedResult, error) {
	const op = "embed"

	body, err := json.Marshal(embedRequest{
		Model:          embedModel,
		Texts:          texts,
		InputType:      "search_document",
		EmbeddingTypes: []string{"float"},
	})
	if err != nil {
		return provider.EmbedResult{}, fmt.Errorf("cohere: marshal embed request: %w", err)
	}

	respBody, err := c.do(ctx, op, "/v2/embed", body)
	if err != nil {
		return provider.EmbedResult{}, err
	}

	var resp embedResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return provider.EmbedResult{}, fmt.Errorf("cohere: decode embed response: %w", err)
	}

	tokens := resp.Meta.BilledUnits.InputTokens
	result := provider.EmbedResult{
		Vectors: resp.Embeddings.Float,
		Tokens:  tokens,
		CostUSD: float64(tokens) / 1000 * c.cfg.EmbedCostPer1K,
	}

	c.log.DebugContext(ctx, "cohere embed",
		slog.Int("texts", len(texts)),
		slog.Int("tokens", tokens),
	)

	return result, nil
}

// do executes a POST with rate limiting and a single retry on retryable
// failures.
func (c *Client) do(ctx context.Context, op, path string, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, provider.NewTransportError(providerName, op, err)
	}

	respBody, pErr := c.attempt(ctx, op, path, body)
	if pErr == nil {
		return respBody, nil
	}

	if !pErr.Retryable || ctx.Err() != nil {
		return nil, pErr
	}

	c.log.WarnContext(ctx, "cohere retry",
		slog.String("operation", op),
		slog.String("reason", pErr.Error()),
	)
	time.Sleep(500 * time.Millisecond)

	respBody, pErr = c.attempt(ctx, op, path, body)
	if pErr != nil {
		return nil, pErr
	}
	return respBody, nil
}

type apiError struct {
	Message string `json:"message"`
}

func (c *Client) attempt(ctx context.Context, op, path string, body []byte) ([]byte, *provider.Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, provider.NewTransportError(providerName, op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.NewTransportError(providerName, op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.NewTransportError(providerName, op, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.Unmarshal(respBody, &apiErr)
		return nil, provider.NewStatusError(providerName, op, resp.StatusCode, apiErr.Message)
	}

	return respBody, nil
}
