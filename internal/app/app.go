// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"

	postgres "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres"
	campaignrepo "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres/campaign"
	imageeditrepo "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres/imageedit"
	productrepo "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres/product"
	statsrepo "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres/stats"
	tokenrepo "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres/token"
	userrepo "github.com/campaignkit/campaignkit-backend/internal/adapter/postgres/user"
	"github.com/campaignkit/campaignkit-backend/internal/adapter/provider/cohere"
	"github.com/campaignkit/campaignkit-backend/internal/adapter/provider/openai"
	"github.com/campaignkit/campaignkit-backend/internal/adapter/provider/stability"
	redisadapter "github.com/campaignkit/campaignkit-backend/internal/adapter/redis"
	"github.com/campaignkit/campaignkit-backend/internal/auth"
	"github.com/campaignkit/campaignkit-backend/internal/config"
	"github.com/campaignkit/campaignkit-backend/internal/domain"
	"github.com/campaignkit/campaignkit-backend/internal/router"
	authsvc "github.com/campaignkit/campaignkit-backend/internal/service/auth"
	campaignsvc "github.com/campaignkit/campaignkit-backend/internal/service/campaign"
	compliancesvc "github.com/campaignkit/campaignkit-backend/internal/service/compliance"
	editsvc "github.com/campaignkit/campaignkit-backend/internal/service/edit"
	generationsvc "github.com/campaignkit/campaignkit-backend/internal/service/generation"
	productsvc "github.com/campaignkit/campaignkit-backend/internal/service/product"
	usersvc "github.com/campaignkit/campaignkit-backend/internal/service/user"
	"github.com/campaignkit/campaignkit-backend/internal/storage"
	"github.com/campaignkit/campaignkit-backend/internal/transport/middleware"
	"github.com/campaignkit/campaignkit-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires every
// component, and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: database: %w", err)
	}
	defer pool.Close()

	// Provider health lives in Redis when configured, so cooldowns are
	// shared across instances. A single instance runs fine in memory.
	var healthStore router.HealthStore
	if cfg.Redis.Addr != "" {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close() //nolint:errcheck
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("app: redis: %w", err)
		}
		healthStore = redisadapter.NewHealthStore(redisClient)
	} else {
		healthStore = router.NewMemStore()
	}

	openaiClient := openai.New(openai.Config{
		APIKey:            cfg.Providers.OpenAI.APIKey,
		BaseURL:           cfg.Providers.OpenAI.BaseURL,
		RequestTimeout:    cfg.Providers.OpenAI.RequestTimeout,
		RatePerSecond:     cfg.Providers.OpenAI.RatePerSecond,
		RateBurst:         cfg.Providers.OpenAI.RateBurst,
		EmbedCostPer1K:    cfg.Providers.OpenAIEmbedPer1K,
		GenerateCostPer1K: cfg.Providers.OpenAIGenPer1K,
		ImageEditCost:     cfg.Providers.OpenAIImageEditFlat,
	}, logger)

	cohereClient := cohere.New(cohere.Config{
		APIKey:         cfg.Providers.Cohere.APIKey,
		BaseURL:        cfg.Providers.Cohere.BaseURL,
		RequestTimeout: cfg.Providers.Cohere.RequestTimeout,
		RatePerSecond:  cfg.Providers.Cohere.RatePerSecond,
		RateBurst:      cfg.Providers.Cohere.RateBurst,
		EmbedCostPer1K: cfg.Providers.CohereEmbedPer1K,
	}, logger)

	stabilityClient := stability.New(stability.Config{
		APIKey:          cfg.Providers.Stability.APIKey,
		BaseURL:         cfg.Providers.Stability.BaseURL,
		RequestTimeout:  cfg.Providers.Stability.RequestTimeout,
		RatePerSecond:   cfg.Providers.Stability.RatePerSecond,
		RateBurst:       cfg.Providers.Stability.RateBurst,
		EditCostPerCall: cfg.Providers.StabilityEditPerCall,
	}, logger)

	aiRouter := router.New(routerConfig(cfg.Router), router.Clients{
		Embedders: map[domain.Provider]router.Embedder{
			domain.ProviderOpenAI: openaiClient,
			domain.ProviderCohere: cohereClient,
		},
		Generators: map[domain.Provider]router.Generator{
			domain.ProviderOpenAI: openaiClient,
		},
		ImageEditors: map[domain.Provider]router.ImageEditor{
			domain.ProviderStability: stabilityClient,
			domain.ProviderOpenAI:    openaiClient,
		},
	}, healthStore, logger)

	store, err := storage.New(ctx, storage.Config{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		Bucket:          cfg.Storage.Bucket,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		PresignTTL:      cfg.Storage.PresignTTL,
	})
	if err != nil {
		return fmt.Errorf("app: storage: %w", err)
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	campaigns := campaignrepo.New(pool)
	products := productrepo.New(pool)
	edits := imageeditrepo.New(pool)
	stats := statsrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	editService := editsvc.NewService(logger, edits, campaigns, txm, store, aiRouter)
	generationService := generationsvc.NewService(logger, campaigns, store, aiRouter)
	productService := productsvc.NewService(logger, products)
	complianceService := compliancesvc.NewService(logger, stats)
	userService := usersvc.NewService(logger, users)
	campaignService := campaignsvc.NewService(logger, campaigns)

	mux := rest.NewMux(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Auth:       rest.NewAuthHandler(authService, logger),
		Products:   rest.NewProductHandler(productService, logger),
		Edits:      rest.NewEditHandler(editService, logger),
		Generation: rest.NewGenerationHandler(generationService, logger),
		Campaigns:  rest.NewCampaignHandler(campaignService, logger),
		Admin:      rest.NewAdminHandler(complianceService, userService, aiRouter, logger),
	})

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	return nil
}

// routerConfig maps the flat YAML/ENV router section onto the dispatch table.
func routerConfig(cfg config.RouterConfig) router.Config {
	return router.Config{
		Routes: map[domain.Capability]router.Route{
			domain.CapabilityEmbeddings: {
				Primary:  domain.Provider(cfg.EmbeddingsPrimary),
				Fallback: domain.Provider(cfg.EmbeddingsFallback),
			},
			domain.CapabilityGeneration: {
				Primary:  domain.Provider(cfg.GenerationPrimary),
				Fallback: domain.Provider(cfg.GenerationFallback),
			},
			domain.CapabilityImageEdit: {
				Primary:  domain.Provider(cfg.ImageEditPrimary),
				Fallback: domain.Provider(cfg.ImageEditFallback),
			},
		},
		EmbeddingDim:     cfg.EmbeddingDim,
		FailureThreshold: cfg.FailureThreshold,
		Cooldown:         cfg.Cooldown,
	}
}
