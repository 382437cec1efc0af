package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/waypoint/backend/config"
	httpDelivery "github.com/waypoint/backend/internal/delivery/http"
	"github.com/waypoint/backend/internal/domain"
	"github.com/waypoint/backend/internal/infrastructure/completion"
	"github.com/waypoint/backend/internal/infrastructure/shopify"
	"github.com/waypoint/backend/internal/usecase"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Failed to read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting Waypoint Backend v1.0.0",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	aiClient, err := completion.NewClient(cfg.AI, logger)
	if err != nil {
		logger.Fatal("Failed to create AI client", zap.Error(err))
	}
	logger.Info("AI provider configured",
		zap.String("model", aiClient.Model()),
		zap.String("base_url", cfg.AI.BaseURL),
	)

	// A nil admin makes the gate reject every request until a shop is configured
	var admin domain.AdminAPI
	if cfg.Shopify.Configured() {
		shopifyClient := shopify.NewClient(cfg.Shopify, logger)
		if cfg.Server.Environment == "development" {
			shopifyClient.SetDebug(true)
		}
		admin = shopifyClient
		logger.Info("Shopify Admin API configured",
			zap.String("shop", cfg.Shopify.ShopDomain),
			zap.String("api_version", cfg.Shopify.APIVersion),
		)
	} else {
		logger.Warn("Shopify shop NOT CONFIGURED - all /api/v1 requests will be rejected")
	}
	gate := shopify.NewStaticSessionGate(admin, cfg.Session.Secret)

	handler := httpDelivery.NewHandler(
		usecase.NewCatalogService(logger),
		usecase.NewClassificationService(aiClient, logger),
		usecase.NewMetafieldService(logger),
		logger,
	)
	router := httpDelivery.SetupRouter(cfg, handler, gate, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// newLogger builds a production logger in production and a development one elsewhere
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	if cfg.Server.Environment == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
