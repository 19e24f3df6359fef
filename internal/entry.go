// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/reelmd/internal/api"
	"github.com/starford/reelmd/internal/index"
	"github.com/starford/reelmd/internal/logging"
	"github.com/starford/reelmd/internal/scriptservice"
	"github.com/starford/reelmd/internal/sse"
	"github.com/starford/reelmd/internal/storage"
)

// Run starts the application with the given options. It returns when ctx is
// cancelled, a shutdown signal arrives, or the HTTP server fails.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{logOutput: os.Stdout}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger, logCloser := logging.New(app.logOutput, cfg.App.LoggingOptions())
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("scripts_path", cfg.Scripts.Path),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()),
		slog.Bool("auth", cfg.Auth.AuthEnabled()))

	if err := os.MkdirAll(cfg.Scripts.Path, 0o755); err != nil {
		return fmt.Errorf("create scripts dir: %w", err)
	}

	store, err := storage.NewFS(cfg.Scripts.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	stats, err := index.Sync(ctx, db, store, logger)
	if err != nil {
		logger.Warn("initial sync failed", slog.String("error", err.Error()))
	} else {
		logger.Info("initial sync done",
			slog.Int("indexed", stats.Indexed),
			slog.Int("unchanged", stats.Unchanged),
			slog.Int("removed", stats.Removed))
	}

	broker := sse.NewBroker(cfg.Events.Throttle)
	defer broker.Close()

	svc := scriptservice.NewService(store, db)
	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(sigCtx)

	// File watcher: re-index changed scripts and push diagnostics to editors.
	g.Go(func() error {
		return index.Watch(gCtx, db, store, store.Root(), logger, func(kind, path string, e *index.Entry) {
			broker.PublishScriptEvent(scriptEvent(kind, path, e))
		})
	})

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// scriptEvent converts a watcher notification into an SSE payload.
func scriptEvent(kind, path string, e *index.Entry) sse.ScriptEvent {
	ev := sse.ScriptEvent{Kind: kind, Path: path}
	if e != nil {
		ev.SceneCount = e.Row.SceneCount
		ev.Duration = e.Row.Duration
		ev.Errors = e.Row.Errors
		ev.Warnings = e.Row.Warnings
	}
	return ev
}
