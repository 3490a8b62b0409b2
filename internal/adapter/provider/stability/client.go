// Package stability is the Stability AI adapter, the primary image editor.
// Each edit operation maps to its own v2beta endpoint and the response body
// is the edited image itself.
package stability

import (
	"bytes"
	"context"
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

const providerName = "stability"

// Config holds the client settings. Costs are in USD.
type Config struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RatePerSecond  float64
	RateBurst      int

	EditCostPerCall float64
}

// Client calls the Stability AI API.
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

// editPath maps an operation slug to its endpoint.
func editPath(operation string) (string, error) {
	switch operation {
	case "inpaint":
		return "/v2beta/stable-image/edit/inpaint", nil
	case "outpaint":
		return "/v2beta/stable-image/edit/outpaint", nil
	case "remove_background":
		return "/v2beta/stable-image/edit/remove-background", nil
	case "search_replace":
		return "/v2beta/stable-image/edit/search-and-replace", nil
	case "upscale":
		return "/v2beta/stable-image/upscale/fast", nil
	default:
		return "", fmt.Errorf("stability: unsupported operation %q", operation)
	}
}

// EditImage performs the requested edit and returns the edited image bytes.
func (c *Client) EditImage(ctx context.Context, req provider.ImageEditRequest) (provider.ImageEditResult, error) {
	const op = "edit_image"

	path, err := editPath(req.Operation)
	if err != nil {
		return provider.ImageEditResult{}, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	imagePart, err := writer.CreateFormFile("image", "image.png")
	if err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("stability: create image part: %w", err)
	}
	if _, err := imagePart.Write(req.Image); err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("stability: write image part: %w", err)
	}

	if len(req.Mask) > 0 {
		maskPart, err := writer.CreateFormFile("mask", "mask.png")
		if err != nil {
			return provider.ImageEditResult{}, fmt.Errorf("stability: create mask part: %w", err)
		}
		if _, err := maskPart.Write(req.Mask); err != nil {
			return provider.ImageEditResult{}, fmt.Errorf("stability: write mask part: %w", err)
		}
	}

	if req.Prompt != "" {
		if err := writer.WriteField("prompt", req.Prompt); err != nil {
			return provider.ImageEditResult{}, fmt.Errorf("stability: write prompt field: %w", err)
		}
	}
	// Extra vendor parameters pass through as plain form fields.
	for key, value := range req.Params {
		if err := writer.WriteField(key, fmt.Sprint(value)); err != nil {
			return provider.ImageEditResult{}, fmt.Errorf("stability: write %s field: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return provider.ImageEditResult{}, fmt.Errorf("stability: close multipart: %w", err)
	}

	image, contentType, err := c.do(ctx, op, path, buf.Bytes(), writer.FormDataContentType())
	if err != nil {
		return provider.ImageEditResult{}, err
	}

	c.log.DebugContext(ctx, "stability edit image",
		slog.String("operation", req.Operation),
		slog.Int("bytes", len(image)),
	)

	return provider.ImageEditResult{
		Image:       image,
		ContentType: contentType,
		CostUSD:     c.cfg.EditCostPerCall,
	}, nil
}

// do executes a POST with rate limiting and a single retry on retryable
// failures. Returns the response body and its content type.
func (c *Client) do(ctx context.Context, op, path string, body []byte, contentType string) ([]byte, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", provider.NewTransportError(providerName, op, err)
	}

	respBody, respType, pErr := c.attempt(ctx, op, path, body, contentType)
	if pErr == nil {
		return respBody, respType, nil
	}

	if !pErr.Retryable || ctx.Err() != nil {
		return nil, "", pErr
	}

	c.log.WarnContext(ctx, "stability retry",
		slog.String("operation", op),
		slog.String("reason", pErr.Error()),
	)
	time.Sleep(500 * time.Millisecond)

	respBody, respType, pErr = c.attempt(ctx, op, path, body, contentType)
	if pErr != nil {
		return nil, "", pErr
	}
	return respBody, respType, nil
}

type apiError struct {
	Errors []string `json:"errors"`
}

func (c *Client) attempt(ctx context.Context, op, path string, body []byte, contentType string) ([]byte, string, *provider.Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, "", provider.NewTransportError(providerName, op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "image/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", provider.NewTransportError(providerName, op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", provider.NewTransportError(providerName, op, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.Unmarshal(respBody, &apiErr)
		message := ""
		if len(apiErr.Errors) > 0 {
			message = apiErr.Errors[0]
		}
		return nil, "", provider.NewStatusError(providerName, op, resp.StatusCode, message)
	}

	return respBody, resp.Header.Get("Content-Type"), nil
}
