package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/agents"
	"github.com/thinktank-analytics/thinktank-engine/pkg/config"
	"github.com/thinktank-analytics/thinktank-engine/pkg/database"
	"github.com/thinktank-analytics/thinktank-engine/pkg/distincts"
	"github.com/thinktank-analytics/thinktank-engine/pkg/feedback"
	"github.com/thinktank-analytics/thinktank-engine/pkg/handlers"
	"github.com/thinktank-analytics/thinktank-engine/pkg/llm"
	"github.com/thinktank-analytics/thinktank-engine/pkg/logging"
	"github.com/thinktank-analytics/thinktank-engine/pkg/masking"
	"github.com/thinktank-analytics/thinktank-engine/pkg/middleware"
	"github.com/thinktank-analytics/thinktank-engine/pkg/nlp"
	"github.com/thinktank-analytics/thinktank-engine/pkg/products"
	"github.com/thinktank-analytics/thinktank-engine/pkg/results"
	"github.com/thinktank-analytics/thinktank-engine/pkg/services"
	"github.com/thinktank-analytics/thinktank-engine/pkg/sqlgen"
	"github.com/thinktank-analytics/thinktank-engine/pkg/subscriptions"
	"github.com/thinktank-analytics/thinktank-engine/pkg/warehouse"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("database", cfg.Database.Host),
		zap.Bool("redis", cfg.Redis.Enabled()),
		zap.Bool("agent_tracker", cfg.AgentTracker.BaseURL != ""))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Application database for feedback and subscriptions. Optional: without
	// it the engine runs on in-memory stores.
	var feedbackStore feedback.Store
	var subscriptionStore subscriptions.Store
	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Warn("Application database unavailable, using in-memory stores", zap.Error(err))
		feedbackStore = feedback.NewMemoryStore(logger)
		subscriptionStore = subscriptions.NewMemoryStore(logger)
	} else {
		defer db.Close()
		sqlDB := stdlib.OpenDBFromPool(db.Pool)
		if err := database.RunMigrations(sqlDB, cfg.Database.MigrationsPath, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		feedbackStore = feedback.NewPostgresStore(db.Pool, logger)
		subscriptionStore = subscriptions.NewPostgresStore(db.Pool, logger)
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, continuing with local cache only", zap.Error(err))
		redisClient = nil
	}

	// Warehouse connection. Optional: without it every query turn degrades
	// to an explanatory failure reply, but the service still starts.
	warehouseDB, err := database.NewTrinoConnection(ctx, cfg.Warehouse.DSN)
	if err != nil {
		logger.Warn("Warehouse unavailable", zap.Error(err))
		warehouseDB = nil
	} else {
		defer warehouseDB.Close()
	}
	gateway := warehouse.NewGateway(warehouseDB, redisClient, warehouse.Config{
		CacheTTL:     cfg.Warehouse.CacheTTL(),
		QueryTimeout: cfg.Warehouse.QueryTimeout(),
	}, logger)

	llmClient, err := llm.NewClient(&llm.Config{
		Provider: cfg.LLM.Provider,
		Endpoint: cfg.LLM.Endpoint,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	productResolver := products.NewResolver()
	if cfg.Products.AliasOverridesPath != "" {
		overrides, err := products.LoadAliasOverrides(cfg.Products.AliasOverridesPath)
		if err != nil {
			logger.Warn("Failed to load product alias overrides", zap.Error(err))
		} else {
			productResolver = products.NewResolverWithAliases(overrides)
		}
	}

	distinctCache := distincts.New(gateway, distincts.Config{
		TTL:          cfg.Distincts.TTL(),
		Limit:        cfg.Distincts.Limit,
		MaxColumns:   cfg.Distincts.MaxColumns,
		Whitelist:    cfg.Distincts.Whitelist(),
		SnapshotPath: cfg.Distincts.SnapshotPath,
	}, logger)
	distinctCache.RefreshAsync()

	extractor := nlp.NewExtractor(llmClient, productResolver, logger)
	builder := sqlgen.NewBuilder(productResolver, distinctCache.EffectiveColumns, logger)
	masker := masking.NewMasker()
	resultStore := results.NewStore(cfg.Results.TTL(), logger)

	statusClient := agents.NewHTTPStatusClient(cfg.AgentTracker.BaseURL, logger)
	agentService := agents.NewService(statusClient, agents.NewResolver(gateway, logger), logger)

	conversation := services.NewConversationService(
		extractor, builder, gateway, masker,
		resultStore, feedbackStore, agentService,
		services.NewSessions(), logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewChatHandler(conversation, logger).RegisterRoutes(mux)
	handlers.NewFeedbackHandler(feedbackStore, logger).RegisterRoutes(mux)
	handlers.NewResultsHandler(resultStore, logger).RegisterRoutes(mux)
	handlers.NewSubscriptionsHandler(subscriptionStore, resultStore, logger).RegisterRoutes(mux)

	server := &http.Server{
		Addr:    cfg.BindAddr + ":" + cfg.Port,
		Handler: middleware.RequestLogger(logger)(mux),
	}

	go func() {
		logger.Info("Starting thinktank-engine",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
