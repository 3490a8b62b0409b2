// Package router dispatches AI workloads across providers with
// configuration-driven primary→fallback ordering, per-provider health
// tracking, and fixed-dimension embedding output.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/provider"
)

// Embedder produces embeddings for a batch of texts.
type Embedder interface {
	Embed(ctx context.Context, texts []string) (provider.EmbedResult, error)
}

// Generator produces text completions.
type Generator interface {
	Generate(ctx context.Context, req provider.GenerateRequest) (provider.GenerateResult, error)
}

// ImageEditor performs image edits.
type ImageEditor interface {
	EditImage(ctx context.Context, req provider.ImageEditRequest) (provider.ImageEditResult, error)
}

// Route is the ordered provider pair for one capability. Fallback may be
// empty, in which case only the primary is tried.
type Route struct {
	Primary  domain.Provider
	Fallback domain.Provider
}

// Config holds the dispatch settings.
type Config struct {
	Routes map[domain.Capability]Route

	// EmbeddingDim is the fixed dimension of every returned vector.
	EmbeddingDim int

	// FailureThreshold is the consecutive-failure count that opens a
	// cooldown window.
	FailureThreshold int

	// Cooldown is the length of the window during which a provider is
	// skipped in favor of its fallback.
	Cooldown time.Duration
}

// Clients holds the registered provider adapters per capability.
type Clients struct {
	Embedders    map[domain.Provider]Embedder
	Generators   map[domain.Provider]Generator
	ImageEditors map[domain.Provider]ImageEditor
}

// Outcome describes how a dispatched call was served, for auditing.
type Outcome struct {
	Provider  domain.Provider
	Fallback  bool
	CostUSD   float64
	LatencyMs int64
}

// Router dispatches calls per capability.
type Router struct {
	cfg     Config
	clients Clients
	health  HealthStore
	log     *slog.Logger
	now     func() time.Time
}

// New creates a Router.
func New(cfg Config, clients Clients, health HealthStore, logger *slog.Logger) *Router {
	return &Router{
		cfg:     cfg,
		clients: clients,
		health:  health,
		log:     logger.With("component", "router"),
		now:     time.Now,
	}
}

// ---------------------------------------------------------------------------
// Capability entry points
// ---------------------------------------------------------------------------

// Embed dispatches an embeddings call. Returned vectors are always exactly
// EmbeddingDim long: shorter vendor output is zero-padded, longer output is
// truncated from the tail.
func (r *Router) Embed(ctx context.Context, texts []string) ([][]float64, Outcome, error) {
	var result provider.EmbedResult

	outcome, err := r.dispatch(ctx, domain.CapabilityEmbeddings, func(ctx context.Context, p domain.Provider) (float64, error) {
		client, ok := r.clients.Embedders[p]
		if !ok {
			return 0, fmt.Errorf("router: no embedder registered for %s", p)
		}
		res, err := client.Embed(ctx, texts)
		if err != nil {
			return 0, err
		}
		result = res
		return res.CostUSD, nil
	})
	if err != nil {
		return nil, outcome, err
	}

	return normalizeVectors(result.Vectors, r.cfg.EmbeddingDim), outcome, nil
}

// Generate dispatches a text generation call.
func (r *Router) Generate(ctx context.Context, req provider.GenerateRequest) (provider.GenerateResult, Outcome, error) {
	var result provider.GenerateResult

	outcome, err := r.dispatch(ctx, domain.CapabilityGeneration, func(ctx context.Context, p domain.Provider) (float64, error) {
		client, ok := r.clients.Generators[p]
		if !ok {
			return 0, fmt.Errorf("router: no generator registered for %s", p)
		}
		res, err := client.Generate(ctx, req)
		if err != nil {
			return 0, err
		}
		result = res
		return res.CostUSD, nil
	})

	return result, outcome, err
}

// EditImage dispatches an image editing call.
func (r *Router) EditImage(ctx context.Context, req provider.ImageEditRequest) (provider.ImageEditResult, Outcome, error) {
	var result provider.ImageEditResult

	outcome, err := r.dispatch(ctx, domain.CapabilityImageEdit, func(ctx context.Context, p domain.Provider) (float64, error) {
		client, ok := r.clients.ImageEditors[p]
		if !ok {
			return 0, fmt.Errorf("router: no image editor registered for %s", p)
		}
		res, err := client.EditImage(ctx, req)
		if err != nil {
			return 0, err
		}
		result = res
		return res.CostUSD, nil
	})

	return result, outcome, err
}

// Primary returns the configured primary provider for a capability, or the
// empty provider when no route exists. Callers use it for provisional audit
// rows written before dispatch.
func (r *Router) Primary(capability domain.Capability) domain.Provider {
	return r.cfg.Routes[capability].Primary
}

// Status reports the configured route and current health per capability,
// served on the admin router-status endpoint.
type Status struct {
	Capability domain.Capability `json:"capability"`
	Primary    domain.Provider   `json:"primary"`
	Fallback   domain.Provider   `json:"fallback,omitempty"`

	PrimaryHealthy  bool       `json:"primary_healthy"`
	FallbackHealthy bool       `json:"fallback_healthy,omitempty"`
	PrimaryCooldown *time.Time `json:"primary_cooldown_until,omitempty"`
}

// Status returns the dispatch table with live health per capability.
func (r *Router) Status(ctx context.Context) []Status {
	capabilities := []domain.Capability{
		domain.CapabilityEmbeddings,
		domain.CapabilityGeneration,
		domain.CapabilityImageEdit,
	}

	statuses := make([]Status, 0, len(capabilities))
	for _, capability := range capabilities {
		route, ok := r.cfg.Routes[capability]
		if !ok {
			continue
		}

		s := Status{
			Capability:     capability,
			Primary:        route.Primary,
			Fallback:       route.Fallback,
			PrimaryHealthy: r.healthy(ctx, route.Primary),
		}
		if until, err := r.health.UnhealthyUntil(ctx, route.Primary); err == nil && !until.IsZero() && r.now().Before(until) {
			s.PrimaryCooldown = &until
		}
		if route.Fallback != "" {
			s.FallbackHealthy = r.healthy(ctx, route.Fallback)
		}
		statuses = append(statuses, s)
	}

	return statuses
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

// dispatch runs call against the capability's primary, falling back at most
// once. The fallback is used when the primary is in cooldown or fails with a
// retryable error; non-retryable errors surface immediately.
func (r *Router) dispatch(ctx context.Context, capability domain.Capability, call func(context.Context, domain.Provider) (float64, error)) (Outcome, error) {
	route, ok := r.cfg.Routes[capability]
	if !ok {
		return Outcome{}, fmt.Errorf("router: no route configured for %s", capability)
	}

	started := r.now()

	if r.healthy(ctx, route.Primary) || route.Fallback == "" {
		cost, err := call(ctx, route.Primary)
		if err == nil {
			r.markSuccess(ctx, route.Primary)
			return Outcome{
				Provider:  route.Primary,
				CostUSD:   cost,
				LatencyMs: r.sinceMs(started),
			}, nil
		}

		r.markFailure(ctx, route.Primary)

		if !provider.IsRetryable(err) || route.Fallback == "" {
			return Outcome{
				Provider:  route.Primary,
				LatencyMs: r.sinceMs(started),
			}, r.wrapExhausted(err)
		}

		r.log.WarnContext(ctx, "primary provider failed, dispatching fallback",
			slog.String("capability", capability.String()),
			slog.String("primary", route.Primary.String()),
			slog.String("fallback", route.Fallback.String()),
			slog.String("error", err.Error()),
		)
	} else {
		r.log.InfoContext(ctx, "primary provider in cooldown, dispatching fallback",
			slog.String("capability", capability.String()),
			slog.String("primary", route.Primary.String()),
			slog.String("fallback", route.Fallback.String()),
		)
	}

	cost, err := call(ctx, route.Fallback)
	if err != nil {
		r.markFailure(ctx, route.Fallback)
		return Outcome{
			Provider:  route.Fallback,
			Fallback:  true,
			LatencyMs: r.sinceMs(started),
		}, r.wrapExhausted(err)
	}

	r.markSuccess(ctx, route.Fallback)

	return Outcome{
		Provider:  route.Fallback,
		Fallback:  true,
		CostUSD:   cost,
		LatencyMs: r.sinceMs(started),
	}, nil
}

// wrapExhausted maps retryable provider failures to ErrProviderUnavailable
// so the transport layer can answer 502; other errors pass through.
func (r *Router) wrapExhausted(err error) error {
	if provider.IsRetryable(err) {
		return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	return err
}

// healthy reports whether the provider is outside any cooldown window.
// Health-store failures never block dispatch.
func (r *Router) healthy(ctx context.Context, p domain.Provider) bool {
	until, err := r.health.UnhealthyUntil(ctx, p)
	if err != nil {
		r.log.WarnContext(ctx, "health store read failed",
			slog.String("provider", p.String()),
			slog.String("error", err.Error()),
		)
		return true
	}
	return until.IsZero() || !r.now().Before(until)
}

func (r *Router) markSuccess(ctx context.Context, p domain.Provider) {
	if err := r.health.MarkSuccess(ctx, p); err != nil {
		r.log.WarnContext(ctx, "health store write failed",
			slog.String("provider", p.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (r *Router) markFailure(ctx context.Context, p domain.Provider) {
	failures, err := r.health.MarkFailure(ctx, p)
	if err != nil {
		r.log.WarnContext(ctx, "health store write failed",
			slog.String("provider", p.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	if failures >= r.cfg.FailureThreshold {
		until := r.now().Add(r.cfg.Cooldown)
		if err := r.health.SetUnhealthy(ctx, p, until); err != nil {
			r.log.WarnContext(ctx, "health store write failed",
				slog.String("provider", p.String()),
				slog.String("error", err.Error()),
			)
			return
		}
		r.log.WarnContext(ctx, "provider entered cooldown",
			slog.String("provider", p.String()),
			slog.Int("failures", failures),
			slog.Time("until", until),
		)
	}
}

func (r *Router) sinceMs(started time.Time) int64 {
	return r.now().Sub(started).Milliseconds()
}
