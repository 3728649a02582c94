package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/bank-recommender/internal/cache"
	"github.com/Dan9191/bank-recommender/internal/catalog"
	"github.com/Dan9191/bank-recommender/internal/config"
	"github.com/Dan9191/bank-recommender/internal/database"
	"github.com/Dan9191/bank-recommender/internal/handler"
	"github.com/Dan9191/bank-recommender/internal/insights"
	"github.com/Dan9191/bank-recommender/internal/integrations/ratefeed"
	"github.com/Dan9191/bank-recommender/internal/integrations/textgen"
	"github.com/Dan9191/bank-recommender/internal/repository"
	"github.com/Dan9191/bank-recommender/internal/scheduler"
	"github.com/Dan9191/bank-recommender/internal/service"
	"github.com/Dan9191/bank-recommender/internal/utils/email"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Catalog must cover every product the lookup tables can name
	products := catalog.Default()
	if err := products.Validate(insights.RuleProductIDs()); err != nil {
		logger.Fatalf("Invalid product catalog: %v", err)
	}

	// Initialize database
	db, err := database.Open(database.Postgres, cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db, database.Postgres); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize layers
	repo := repository.NewRepository(db)

	var backing cache.Store = cache.NewSQLStore(repo)
	if cfg.CacheBackend == config.CacheRedis {
		redisStore, err := cache.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisStore.Close()
		backing = redisStore
	}
	insightCache, err := cache.NewLayered(backing, cfg.HotCacheTTL, logger)
	if err != nil {
		logger.Fatalf("Failed to create insight cache: %v", err)
	}
	defer insightCache.Close()

	var rates service.RateSource
	if cfg.RateFeedURL != "" {
		rates = ratefeed.NewClient(cfg.RateFeedURL, cfg.RateFeedMargin, logger)
	}

	var generator service.InsightGenerator
	provider, err := textgen.NewProvider(textgen.Config{
		Provider: cfg.TextGenProvider,
		URL:      cfg.TextGenURL,
		APIKey:   cfg.TextGenAPIKey,
		Model:    cfg.TextGenModel,
		Timeout:  cfg.TextGenTimeout,
	})
	if err != nil {
		logger.Warnf("Text generation disabled: %v", err)
	} else {
		generator = textgen.NewClient(provider, products, logger)
		logger.Infof("Text generation provider: %s", provider.Name())
	}

	recommendations := service.NewRecommendationService(repo, insightCache, products, generator, rates, cfg.RecommendationMode, logger)
	auth := service.NewAuthService(repo, cfg.JWTSecret, cfg.JWTTTL, cfg.AdvisorInviteCode, logger)
	if cfg.AdvisorInviteCode == "" {
		logger.Warn("ADVISOR_INVITE_CODE not set, advisor registration is disabled")
	}
	digest := service.NewDigestService(repo, recommendations, email.NewSender(cfg, logger), logger)
	h := handler.NewHandler(recommendations, auth, digest, products, rates, logger)

	// Background refresh of stale insights
	sched := scheduler.New(logger)
	if generator != nil && cfg.RefreshSchedule != "" {
		job := scheduler.NewInsightRefreshJob(recommendations, 30*time.Minute, logger)
		if err := sched.AddJob(cfg.RefreshSchedule, job); err != nil {
			logger.Fatalf("Invalid REFRESH_SCHEDULE: %v", err)
		}
	}
	sched.Start()
	defer sched.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(h, cfg.JWTSecret, cfg.CORSOrigins, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.TextGenTimeout + 10*time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
