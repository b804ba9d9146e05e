package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "nxtrix/docs"
	"nxtrix/internal/analytics"
	"nxtrix/internal/caching"
	"nxtrix/internal/config"
	"nxtrix/internal/handlers"
	"nxtrix/internal/logger"
	"nxtrix/internal/middleware"
	"nxtrix/internal/repositories"
	"nxtrix/internal/services"
	"nxtrix/pkg/database"
)

const version = "1.0.0"

// @title NXTRIX CRM API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, "nxtrix")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.EnsureSchema(ctx, pool); err != nil {
			zapLogger.Fatal("Failed to apply schema", zap.Error(err))
		}
		zapLogger.Info("Schema is up to date")
	}

	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, zapLogger)

	minioSvc, err := services.NewMinioService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioRegion, cfg.MinioUseSSL)
	if err != nil {
		zapLogger.Fatal("Failed to initialize MinIO service", zap.Error(err))
	}
	if err := minioSvc.EnsureBucketExists(ctx, cfg.MinioExportBucket); err != nil {
		// Exports fail until storage is reachable; everything else keeps working.
		zapLogger.Warn("Export bucket unavailable", zap.String("bucket", cfg.MinioExportBucket), zap.Error(err))
	}

	// Repositories
	profileRepo := repositories.NewProfileRepo(pool)
	sellerLeadRepo := repositories.NewSellerLeadRepo(pool)
	buyerLeadRepo := repositories.NewBuyerLeadRepo(pool)
	founderRepo := repositories.NewFounderCustomerRepo(pool)

	// Services
	authSvc := services.NewAuthService(cfg.SupabaseURL, cfg.SupabaseAnonKey, cacheSvc, zapLogger)
	profileSvc := services.NewProfileService(profileRepo, zapLogger)
	leadSvc := services.NewLeadService(sellerLeadRepo, buyerLeadRepo, zapLogger)
	dashboardSvc := services.NewDashboardService(leadSvc, cacheSvc, analytics.NewSimulatedFeed(), cfg.DashboardCacheTTL, zapLogger)
	exportSvc := services.NewExportService(leadSvc, minioSvc, cfg.MinioExportBucket, zapLogger)
	if cfg.StripeWebhookSecret == "" {
		zapLogger.Warn("STRIPE_WEBHOOK_SECRET not set; all webhook events will be rejected")
	}
	stripeSvc := services.NewStripeService(cfg.StripeAPIBase, cfg.StripeSecretKey, cfg.StripeWebhookSecret, zapLogger)
	billingSvc := services.NewBillingService(stripeSvc, founderRepo, cfg.Prices, cfg.SiteURL, zapLogger)

	jwtMiddleware, stopJWKS, err := middleware.NewJWTMiddleware(middleware.AuthConfig{
		JWTSecret: cfg.SupabaseJWTSecret,
		JWKSURL:   cfg.SupabaseJWKSURL,
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to load JWKS", zap.String("url", cfg.SupabaseJWKSURL), zap.Error(err))
	}
	defer stopJWKS()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(zapLogger)

	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLogger(zapLogger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	handlers.RegisterRoutes(e, &handlers.Handlers{
		Health:    handlers.NewHealthHandlers(pool, cacheSvc, minioSvc, cfg.MinioExportBucket, version),
		Auth:      handlers.NewAuthHandlers(authSvc, profileSvc, leadSvc, cacheSvc, zapLogger),
		Leads:     handlers.NewLeadHandlers(leadSvc),
		Dashboard: handlers.NewDashboardHandlers(dashboardSvc, leadSvc),
		Session:   handlers.NewSessionHandlers(cacheSvc, zapLogger),
		Export:    handlers.NewExportHandlers(exportSvc),
		Billing:   handlers.NewBillingHandlers(billingSvc, stripeSvc, zapLogger),
	}, handlers.RouteOptions{
		JWT:               jwtMiddleware,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		APIVersion:        middleware.DefaultAPIVersion,
	})

	go func() {
		zapLogger.Info("NXTRIX server starting", zap.String("version", version), zap.String("port", cfg.Port))
		if err := e.Start(fmt.Sprintf(":%s", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
