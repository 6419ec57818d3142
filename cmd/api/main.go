package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopkart/internal/config"
	"shopkart/internal/database"
	"shopkart/internal/handler"
	"shopkart/internal/payment"
	"shopkart/internal/repository"
	"shopkart/internal/router"
	"shopkart/internal/seed"
	"shopkart/internal/service"
	"shopkart/internal/validation"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting shopkart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply schema migrations
	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Seed the catalog when configured
	if cfg.Seed.Enabled {
		if err := seedCatalog(ctx, cfg.Seed, productRepo, logger); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, cartRepo, userRepo, logger)
	userService := service.NewUserService(userRepo, logger)
	gateway := payment.NewLocalGateway(cfg.Payment.KeySecret, logger)

	// Initialize HTTP handlers
	validate := validation.New()
	productHandler := handler.NewProductHandler(productService, validate, logger)
	cartHandler := handler.NewCartHandler(cartService, validate, logger)
	orderHandler := handler.NewOrderHandler(orderService, validate, logger)
	authHandler := handler.NewAuthHandler(userService, validate, logger)
	paymentHandler := handler.NewPaymentHandler(gateway, orderService, logger)
	userHandler := handler.NewUserHandler(userService, logger)

	// Initialize router
	mux := router.New(
		productHandler,
		cartHandler,
		orderHandler,
		authHandler,
		paymentHandler,
		userHandler,
		userService,
		cfg.Auth.APIKey,
		logger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
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

// seedCatalog loads the configured seed file and upserts its products.
func seedCatalog(ctx context.Context, cfg config.SeedConfig, productRepo repository.ProductRepository, logger zerolog.Logger) error {
	var (
		loader   seed.Loader
		location string
		err      error
	)

	switch cfg.Source {
	case "s3":
		loader, err = seed.NewS3Loader(ctx, cfg.Bucket, cfg.Region, logger)
		if err != nil {
			return err
		}
		location = cfg.Key
	default:
		loader = seed.NewFileLoader(logger)
		location = cfg.Path
	}

	products, err := loader.Load(ctx, location)
	if err != nil {
		return err
	}

	return seed.NewSeeder(productRepo, logger).Apply(ctx, products)
}
