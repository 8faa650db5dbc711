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

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rako024/transcript-archive/internal/clip"
	"github.com/Rako024/transcript-archive/internal/config"
	"github.com/Rako024/transcript-archive/internal/httpapi"
	"github.com/Rako024/transcript-archive/internal/logger"
	"github.com/Rako024/transcript-archive/internal/metrics"
	"github.com/Rako024/transcript-archive/internal/search"
	"github.com/Rako024/transcript-archive/internal/store"
	"github.com/Rako024/transcript-archive/internal/summarizer"
	"github.com/Rako024/transcript-archive/pkg/executor"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "Transcript Archive API")
	log.Info(ctx, "Configuration loaded from %s", cfgPath)

	// Connect to the transcript store
	poolCfg, err := pgxpool.ParseConfig(cfg.Store.DSN())
	if err != nil {
		log.Error(ctx, "Invalid store configuration: %v", err)
		os.Exit(1)
	}
	poolCfg.MaxConns = int32(cfg.Store.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Error(ctx, "Failed to create connection pool: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := pool.Ping(pingCtx); err != nil {
		log.Warn(ctx, "Store not reachable at startup, continuing: %v", err)
	}
	pingCancel()

	// Initialize dependencies
	st := store.New(pool, time.Duration(cfg.Store.QueryTimeout)*time.Second, log)
	sum := summarizer.New(cfg.Summarizer, log)
	se := search.New(st, sum, log)
	ce := clip.New(cfg.Archive, executor.New(), log)
	m := metrics.New()

	handler := httpapi.NewHandler(se, ce, st, m, log)
	router := httpapi.NewRouter(handler, m, log)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Reload summarizer tunables when the config file changes on disk
	go func() {
		if err := config.Watch(ctx, cfgPath, func(c *config.Config) {
			sum.SetTunables(c.Summarizer)
			log.Info(ctx, "Summarizer tunables reloaded: model=%s max_tokens=%d", c.Summarizer.Model, c.Summarizer.MaxTokens)
		}, log); err != nil {
			log.Warn(ctx, "Config watch stopped: %v", err)
		}
	}()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Listening on %s", cfg.Server.Addr())
	log.Info(ctx, "Archive root: %s", cfg.Archive.Root)

	// Wait for shutdown signal or server error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Server shutdown: %v", err)
	}

	log.Info(ctx, "Transcript Archive API stopped")
}
