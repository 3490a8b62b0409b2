package config

import (
	"fmt"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Router.validate(); err != nil {
		return fmt.Errorf("router: %w", err)
	}

	return nil
}

func (r *RouterConfig) validate() error {
	if r.EmbeddingDim <= 0 {
		return fmt.Errorf("embedding_dim must be > 0 (got %d)", r.EmbeddingDim)
	}
	if r.FailureThreshold <= 0 {
		return fmt.Errorf("failure_threshold must be > 0 (got %d)", r.FailureThreshold)
	}
	if r.Cooldown <= 0 {
		return fmt.Errorf("cooldown must be > 0 (got %v)", r.Cooldown)
	}

	routes := []struct {
		name     string
		primary  string
		fallback string
	}{
		{"embeddings", r.EmbeddingsPrimary, r.EmbeddingsFallback},
		{"generation", r.GenerationPrimary, r.GenerationFallback},
		{"image_edit", r.ImageEditPrimary, r.ImageEditFallback},
	}

	for _, route := range routes {
		if route.primary == "" {
			return fmt.Errorf("%s: primary provider is required", route.name)
		}
		if !domain.Provider(route.primary).IsValid() {
			return fmt.Errorf("%s: unknown primary provider %q", route.name, route.primary)
		}
		// Fallback is optional.
		if route.fallback != "" && !domain.Provider(route.fallback).IsValid() {
			return fmt.Errorf("%s: unknown fallback provider %q", route.name, route.fallback)
		}
		if route.fallback == route.primary {
			return fmt.Errorf("%s: fallback must differ from primary (%s)", route.name, route.primary)
		}
	}

	return nil
}
