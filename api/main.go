package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-panel/internal/config"
	"github.com/rogerio-castellano/inventory-panel/internal/db"
	api "github.com/rogerio-castellano/inventory-panel/internal/http"
	"github.com/rogerio-castellano/inventory-panel/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-panel/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-panel/internal/logger"
	"github.com/rogerio-castellano/inventory-panel/internal/redissvc"
	"github.com/rogerio-castellano/inventory-panel/internal/repo"
	"github.com/rogerio-castellano/inventory-panel/internal/views"
)

// @title Inventory Panel API
// @version 1.0
// @description Read-only JSON view and CSV import for the product catalog.
// @host localhost:4000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// no logger yet
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatal("could not open database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		log.Fatal("could not prepare database", zap.Error(err))
	}

	sqlProducts := repo.NewSQLProductRepository(database)
	var products repo.ProductRepository = sqlProducts
	var metrics repo.MetricsRepository = repo.NewSQLMetricsRepository(database)

	if cfg.Redis.Addr != "" {
		cache, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("could not connect to redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		defer cache.Close()

		products = repo.NewInvalidatingProductRepository(products, cache, log)
		metrics = repo.NewCachedMetricsRepository(metrics, cache, log)
		log.Info("dashboard stats cache enabled", zap.Duration("ttl", cfg.Redis.StatsTTL))
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatal("could not load templates", zap.Error(err))
	}

	srv := handlers.NewServer(handlers.Dependencies{
		Products: products,
		Metrics:  metrics,
		Store:    sqlProducts,
		Views:    renderer,
		Logger:   log,
	})

	opts := api.RouterOptions{Logger: log}
	if cfg.RateLimit.RPS > 0 {
		opts.Limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go opts.Limiter.StartVisitorCleanupLoop(ctx)
	}

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: api.NewRouter(srv, opts),
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	log.Info("server running",
		zap.String("url", "http://localhost"+cfg.Server.Addr()),
		zap.String("driver", cfg.Database.Driver),
	)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", zap.Error(err))
	}
	<-shutdownDone
	log.Info("server stopped")
}
