package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/twitter-backend/internal/adapter/auditlog"
	"github.com/heartmarshall/twitter-backend/internal/adapter/postgres"
	redisadapter "github.com/heartmarshall/twitter-backend/internal/adapter/redis"
	"github.com/heartmarshall/twitter-backend/internal/config"
	"github.com/heartmarshall/twitter-backend/internal/observability"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, opens the audit log, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// Step 1: database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer pool.Close()

	if cfg.Migrations.AutoRun {
		db := stdlib.OpenDBFromPool(pool)
		err = postgres.Migrate(ctx, db, logger)
		_ = db.Close()
		if err != nil {
			return fmt.Errorf("app.Run: migrate: %w", err)
		}
	}

	// Step 2: token denylist.
	redisClient, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer redisClient.Close()

	// Step 3: metrics and audit log.
	metrics := observability.NewMetrics()
	sink, err := auditlog.NewSink(cfg.AuditLog, logger, metrics.SinkMetrics())
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Error("close audit log", slog.String("error", err.Error()))
		}
	}()

	// Step 4: HTTP server.
	handler := NewHandler(logger, cfg, Deps{
		Pool:    pool,
		Redis:   redisClient,
		Audit:   sink,
		Metrics: metrics,
	}, BuildVersion())

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app.Run: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Step 5: graceful shutdown.
	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Run: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
