// Package openai is the OpenAI adapter: embeddings, chat-based copy
// generation, and prompt-driven image edits.
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/campaignkit/campaignkit-backend/internal/provider"
)

const (
	providerName = "openai"

	embedModel    = "text-embedding-3-small"
	generateModel = "gpt-4o-mini"
	imageModel    = "gpt-image-1"
)

// Config holds the client settings. Costs are in USD.
type Config struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RatePerSecond  float64
	RateBurst      int

	EmbedCostPer1K    float64
	GenerateCostPer1K float64
	ImageEditCost     float64
}

// Client calls the OpenAI API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// New creates a Client. The rate limiter smooths bursts across all
// operations of this vendor.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		log:        logger.With("adapter", providerName),
	}
}

// ---------------------------------------------------------------------------
// Embeddings
// ---------------------------------------------------------------------------

type embedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
	} `json:"usage"`
}

// Embed returns one embedding per input text, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) (provider.EmbedResult, error) {
	const op = "embed"

	body, err := json.Marshal(embedRequest{Model: embedModel, Input: texts})
	if err != nil {
		return provider.EmbedResult{}, fmt.Errorf("openai: marshal embed request: %w", err)
	}

	respBody, err := c.doJSON(ctx, op, "/v1/embeddings", body)
	if err != nil {
		return provider.EmbedResult{}, err
	}

	var resp embedResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return provider.EmbedResult{}, fmt.Errorf("openai: decode embed response: %w", err)
	}

	vectors := make([][]float64, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}

	result := provider.EmbedResult{
		Vectors: vectors,
		Tokens:  resp.Usage.PromptTokens,
		CostUSD: float64(resp.Usage.PromptTokens) / 1000 * c.cfg.EmbedCostPer1K,
	}

	c.log.DebugContext(ctx, "openai embed",
		slog.Int("texts", len(texts)),
		slog.Int("tokens", result.Tokens),
	)

	return result, nil
}

// ---------------------------------------------------------------------------
// Generation
// ---------------------------------------------------------------------------

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// Generate produces marketing copy for the prompt.
func (c *Client) Generate(ctx context.Context, req provider.GenerateRequest) (provider.GenerateResult, error) {
	const op = "generate"

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(chatRequest{
		Model:     generateModel,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return provider.GenerateResult{}, fmt.Errorf("openai: marshal chat request: %w", err)
	}

	respBody, err := c.doJSON(ctx, op, "/v1/chat/completions", body)
	if err != nil {
		return provider.GenerateResult{}, err
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return provider.GenerateResult{}, fmt.Errorf("openai: decode chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return provider.GenerateResult{}, fmt.Errorf("openai: chat response has no choices")
	}

	result := provider.GenerateResult{
		Text:    resp.Choices[0].Message.Content,
		Tokens:  resp.Usage.TotalTokens,
		CostUSD: float64(resp.Usage.TotalTokens) / 1000 * c.cfg.GenerateCostPer1K,
	}

	c.log.DebugContext(ctx, "openai generate", slog.Int("tokens", result.Tokens))

	return result, nil
}

// ---------------------------------------------------------------------------
// Image edits
// ---------------------------------------------------------------------------

type imageEditResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// EditImage performs a prompt-driven edit. OpenAI has a single edit endpoint:
// the requested operation is expressed through the prompt, and the mask (if
// any) restricts the edit region.
func (c *Client) EditImage(ctx context.Context, req provider.ImageEditRequest) (provider.ImageEditResult, error) {
	const op = "edit_image"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	imagePart, err := writer.CreateFormFile("image", "image.png")
	if err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("openai: create image part: %w", err)
	}
	if _, err := imagePart.Write(req.Image); err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("openai: write image part: %w", err)
	}

	if len(req.Mask) > 0 {
		maskPart, err := writer.CreateFormFile("mask", "mask.png")
		if err != nil {
			return provider.ImageEditResult{}, fmt.Errorf("openai: create mask part: %w", err)
		}
		if _, err := maskPart.Write(req.Mask); err != nil {
			return provider.ImageEditResult{}, fmt.Errorf("openai: write mask part: %w", err)
		}
	}

	if err := writer.WriteField("model", imageModel); err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("openai: write model field: %w", err)
	}
	if err := writer.WriteField("prompt", req.Prompt); err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("openai: write prompt field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("openai: close multipart: %w", err)
	}

	respBody, err := c.do(ctx, op, "/v1/images/edits", buf.Bytes(), writer.FormDataContentType())
	if err != nil {
		return provider.ImageEditResult{}, err
	}

	var resp imageEditResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("openai: decode image edit response: %w", err)
	}
	if len(resp.Data) == 0 {
		return provider.ImageEditResult{}, fmt.Errorf("openai: image edit response has no data")
	}

	image, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("openai: decode image data: %w", err)
	}

	c.log.DebugContext(ctx, "openai edit image",
		slog.String("operation", req.Operation),
		slog.Int("bytes", len(image)),
	)

	return provider.ImageEditResult{
		Image:       image,
		ContentType: "image/png",
		CostUSD:     c.cfg.ImageEditCost,
	}, nil
}

// ---------------------------------------------------------------------------
// HTTP plumbing
// ---------------------------------------------------------------------------

func (c *Client) doJSON(ctx context.Context, op, path string, body []byte) ([]byte, error) {
	return c.do(ctx, op, path, body, "application/json")
}

// do executes a POST with rate limiting and a single retry on retryable
// failures. The body is replayed from memory on retry.
func (c *Client) do(ctx context.Context, op, path string, body []byte, contentType string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, provider.NewTransportError(providerName, op, err)
	}

	respBody, pErr := c.attempt(ctx, op, path, body, contentType)
	if pErr == nil {
		return respBody, nil
	}

	if !pErr.Retryable || ctx.Err() != nil {
		return nil, pErr
	}

	c.log.WarnContext(ctx, "openai retry",
		slog.String("operation", op),
		slog.String("reason", pErr.Error()),
	)
	time.Sleep(500 * time.Millisecond)

	respBody, pErr = c.attempt(ctx, op, path, body, contentType)
	if pErr != nil {
		return nil, pErr
	}
	return respBody, nil
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) attempt(ctx context.Context, op, path string, body []byte, contentType string) ([]byte, *provider.Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, provider.NewTransportError(providerName, op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", contentType)

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
		return nil, provider.NewStatusError(providerName, op, resp.StatusCode, apiErr.Error.Message)
	}

	return respBody, nil
}
