package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"foodbridge-service/internal/config"
	"foodbridge-service/internal/handlers"
	"foodbridge-service/internal/metrics"
	"foodbridge-service/internal/middleware"
	"foodbridge-service/internal/services"
)

func main() {
	// Initialize logger
	logger, level, err := initLogger()
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if parsed, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		level.SetLevel(parsed)
	}

	metrics.Register()

	// Initialize Gemini client and pick a model
	ctx := context.Background()
	foodService, closeProvider := initFoodService(ctx, cfg, logger)
	defer closeProvider()

	switch {
	case !foodService.HasCredential():
		logger.Warn("Starting server without Gemini API key, image analysis will return demo data. Add GEMINI_API_KEY to your .env file to enable it")
	case foodService.Model() == "":
		logger.Warn("Starting server without a valid model, image analysis may fail")
	default:
		logger.Info("Server ready with AI image analysis capabilities", zap.String("model", foodService.Model()))
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, foodService, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Run server in a goroutine
	go func() {
		logger.Info("Starting FoodBridge backend server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	} else {
		logger.Info("Server exited gracefully")
	}
}

// initFoodService creates the Gemini client when a credential is configured.
// The returned func closes the client, if any.
func initFoodService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*services.FoodService, func()) {
	apiKey, ok := cfg.Credential()
	if !ok {
		logger.Warn("GEMINI_API_KEY not set, image analysis will not work")
		return services.NewFoodService(ctx, nil, false, logger), func() {}
	}

	gemini, err := services.NewGeminiService(ctx, apiKey, logger)
	if err != nil {
		logger.Error("Failed to configure Gemini API", zap.Error(err))
		return services.NewFoodService(ctx, nil, true, logger), func() {}
	}
	logger.Info("Gemini API configured successfully")

	closeFn := func() {
		if err := gemini.Close(); err != nil {
			logger.Warn("Failed to close Gemini client", zap.Error(err))
		}
	}
	return services.NewFoodService(ctx, gemini, true, logger), closeFn
}

func setupRouter(cfg *config.Config, foodService *services.FoodService, logger *zap.Logger) *gin.Engine {
	healthHandler := handlers.NewHealthHandler()
	modelHandler := handlers.NewModelHandler(foodService, logger)
	analyzeHandler := handlers.NewAnalyzeHandler(foodService, logger)
	metricsHandler := handlers.NewMetricsHandler()

	loggerMiddleware := middleware.NewLoggerMiddleware(logger)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(logger)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.AllowedOrigins)

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxFileSizeMB << 20

	router.Use(middleware.RequestID())
	router.Use(loggerMiddleware.LogRequests())
	router.Use(recoveryMiddleware.RecoveryWithZap())
	router.Use(corsMiddleware.SetupCORS())

	router.GET("/ping", healthHandler.Ping)
	router.GET("/models", modelHandler.GetModels)
	router.POST("/analyze", analyzeHandler.Analyze)
	router.GET("/metrics", metricsHandler.GetMetrics)

	return router
}

// initLogger initializes the logger with proper configuration
func initLogger() (*zap.Logger, zap.AtomicLevel, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	logger, err := config.Build()
	return logger, config.Level, err
}
