package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/cart"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/mealplan"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// purgeInterval is how often expired sessions and idle carts are removed.
const purgeInterval = 15 * time.Minute

// expiringStore is a session store that can drop its expired entries.
type expiringStore interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize session store
	sessions, closeSessions, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	defer closeSessions()

	// Initialize backend repositories
	client := repository.NewClient(&repository.ClientConfig{
		BaseURL: cfg.Backend.Host,
		Timeout: cfg.Backend.Timeout(),
	}, logger)
	userRepo := repository.NewUserRepository(client, logger)
	productRepo := repository.NewProductRepository(client, logger)
	cartRepo := repository.NewCartRepository(client, logger)
	reviewRepo := repository.NewReviewRepository(client, logger)
	followRepo := repository.NewFollowRepository(client, logger)

	carts := cart.NewRegistry(cartRepo, logger)
	go evictIdleCarts(ctx, carts, cfg.Session.TTL())

	// Initialize meal planner with S3 and local fixture fallback
	planner := mealplan.NewPlanner(
		newRecipeAPI(cfg.MealAPI, logger),
		newFixtureLoader(ctx, cfg, logger),
		mealplan.PlannerConfig{
			Offline:      cfg.MealAPI.Offline,
			DefaultImage: cfg.MealAPI.DefaultImage,
			Concurrency:  cfg.MealAPI.Concurrency,
		},
		logger,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions, carts, logger)
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(carts, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)
	followService := service.NewFollowService(followRepo, logger)
	plannerService := service.NewPlannerService(planner, sessions, logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Auth:    handler.NewAuthHandler(authService, logger),
		Product: handler.NewProductHandler(productService, logger),
		Cart:    handler.NewCartHandler(cartService, logger),
		Review:  handler.NewReviewHandler(reviewService, logger),
		Follow:  handler.NewFollowHandler(followService, logger),
		Planner: handler.NewPlannerHandler(plannerService, logger),
	}, sessions, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("backend", client.BaseURL()).
			Str("session_backend", cfg.Session.Backend).
			Bool("meal_offline", cfg.MealAPI.Offline).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newSessionStore builds the configured session store and returns a func
// releasing its connections.
func newSessionStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (session.Store, func(), error) {
	ttl := cfg.Session.TTL()

	switch cfg.Session.Backend {
	case "redis":
		rdb, err := session.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis session store")
		return session.NewRedisStore(rdb, ttl, logger), func() { _ = rdb.Close() }, nil

	case "postgres":
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		store := session.NewPostgresStore(pool, ttl, logger)
		go purgeExpired(ctx, store, logger)
		return store, pool.Close, nil

	default:
		logger.Info().Msg("using in-memory session store")
		store := session.NewMemoryStore(ttl)
		go purgeExpired(ctx, store, logger)
		return store, func() {}, nil
	}
}

func purgeExpired(ctx context.Context, store expiringStore, logger zerolog.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("failed to purge expired sessions")
				continue
			}
			if n > 0 {
				logger.Debug().Int64("purged", n).Msg("expired sessions purged")
			}
		}
	}
}

// evictIdleCarts drops cart managers idle for longer than a session lives, so
// carts of expired sessions do not stay in memory.
func evictIdleCarts(ctx context.Context, carts *cart.Registry, maxIdle time.Duration) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			carts.EvictIdle(maxIdle)
		}
	}
}

// newRecipeAPI returns nil when no API key is configured; the planner then
// serves fixtures with default images.
func newRecipeAPI(cfg config.MealAPIConfig, logger zerolog.Logger) mealplan.Generator {
	if cfg.APIKey == "" {
		logger.Info().Msg("no meal API key configured, recipe images disabled")
		return nil
	}
	return mealplan.NewClient(mealplan.ClientConfig{
		BaseURL: cfg.Host,
		APIKey:  cfg.APIKey,
	}, logger)
}

func newFixtureLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) mealplan.Loader {
	fileLoader := mealplan.NewFileLoader(cfg.MealAPI.FixtureDir, logger)

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for meal plan fixtures (S3 disabled)")
		return mealplan.NewFallbackLoader(nil, fileLoader, "", logger)
	}

	s3Loader, err := mealplan.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return mealplan.NewFallbackLoader(nil, fileLoader, "", logger)
	}
	return mealplan.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
}
