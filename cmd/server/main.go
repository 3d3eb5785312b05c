package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/EugeniaBD/AIWriteCheck/internal/config"
	"github.com/EugeniaBD/AIWriteCheck/internal/domain/services"
	"github.com/EugeniaBD/AIWriteCheck/internal/infrastructure/cache"
	"github.com/EugeniaBD/AIWriteCheck/internal/infrastructure/database"
	"github.com/EugeniaBD/AIWriteCheck/internal/infrastructure/quota"
	"github.com/EugeniaBD/AIWriteCheck/internal/interfaces/http/handlers"
	"github.com/EugeniaBD/AIWriteCheck/internal/interfaces/http/middleware"
	"github.com/EugeniaBD/AIWriteCheck/internal/metrics"
	"github.com/EugeniaBD/AIWriteCheck/internal/scorer"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var redisClient *cache.RedisClient
	var counter services.UsageCounter
	if cfg.Quota.Enforcement == config.EnforcementExact {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		counter = quota.NewRedisCounter(redisClient)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	subRepo := database.NewSubmissionRepository(db)
	usageService := services.NewUsageService(subRepo, logger)
	gate := services.NewSubmissionGate(cfg.Quota.MinTextLength)
	jwtService := services.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.Expiration)*time.Second)
	exporter := services.NewReportExporter()

	analysisService := services.NewAnalysisService(
		subRepo,
		usageService,
		gate,
		buildScorer(cfg),
		counter,
		cfg.Scorer.Timeout,
		collector,
		logger,
	)
	progressService := services.NewProgressService(subRepo)

	analysisHandler := handlers.NewAnalysisHandler(analysisService, exporter)
	progressHandler := handlers.NewProgressHandler(progressService)
	usageHandler := handlers.NewUsageHandler(usageService)

	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	defer rateLimiter.Stop()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Health(); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		if redisClient != nil {
			if err := redisClient.Health(); err != nil {
				status = "unhealthy"
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": "aiwritecheck",
			"time":    time.Now(),
		})
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.JWTAuthMiddleware(jwtService))
	apiGroup.Use(rateLimiter.Middleware())

	apiGroup.POST("/analysis", analysisHandler.Submit)
	apiGroup.GET("/analysis/:id", analysisHandler.Get)
	apiGroup.PUT("/analysis/:id", analysisHandler.Revise)
	apiGroup.GET("/analysis/:id/export", analysisHandler.Export)
	apiGroup.GET("/progress", progressHandler.Get)
	apiGroup.GET("/usage", usageHandler.Get)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	logger.Info("server started", "port", cfg.Server.Port, "quota_enforcement", cfg.Quota.Enforcement)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("server stopped")
}

func buildScorer(cfg *config.Config) scorer.Scorer {
	if cfg.Scorer.Provider == "remote" && cfg.Scorer.Endpoint != "" {
		return scorer.NewRemoteScorer(cfg.Scorer.Endpoint, cfg.Scorer.APIKey, cfg.Scorer.Timeout)
	}
	return scorer.NewPlaceholderScorer(time.Now().UnixNano())
}
