package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/gophdraw/internal/room"
	"github.com/iudanet/gophdraw/internal/server"
	"github.com/iudanet/gophdraw/internal/server/config"
	"github.com/iudanet/gophdraw/internal/server/middleware"
	"github.com/iudanet/gophdraw/internal/server/session"
	"github.com/iudanet/gophdraw/internal/server/storage"
	"github.com/iudanet/gophdraw/internal/server/ws"
	"github.com/iudanet/gophdraw/internal/telemetry"
	"github.com/iudanet/gophdraw/pkg/api"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init("gophdraw-server", Version, cfg.JaegerEndpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	store, err := server.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	sessions, err := session.NewService(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return fmt.Errorf("init sessions: %w", err)
	}
	if cfg.SessionSecret == "" {
		logger.Warn("Session secret is not set, resume tokens will not survive restart")
	}

	registry := room.NewRegistry(room.RegistryConfig{
		Room: room.Config{
			Store:        store,
			Tokens:       sessions,
			Logger:       logger,
			SaveDebounce: cfg.SaveDebounce,
		},
		NotFound:          storage.ErrSnapshotNotFound,
		StrokeIdleTimeout: cfg.StrokeIdleTimeout,
		RoomIdleTTL:       cfg.RoomIdleTTL,
	})
	registry.Start(ctx)

	// Комната по умолчанию создается сразу
	if _, err := registry.Get(ctx, api.DefaultRoom); err != nil {
		return fmt.Errorf("create default room: %w", err)
	}

	hub := ws.NewHub(ws.Config{
		Rooms:    registry,
		Sessions: sessions,
		Logger:   logger,
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow, logger)
	defer limiter.Stop()

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: server.NewRouter(server.RouterDeps{
			Logger:    logger,
			Rooms:     registry,
			WS:        hub,
			Conns:     hub,
			Limiter:   limiter,
			StaticDir: cfg.StaticDir,
			Version:   Version,
		}),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", cfg.Addr, "storage", cfg.StorageDriver, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			logger.Error("HTTP server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Hijacked websocket соединения http.Server не закрывает, их закрывает хаб
	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := hub.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("hub shutdown: %w", err))
	}
	if err := registry.Close(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("flush rooms: %w", err))
	}
	if err := store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown tracing: %w", err))
	}

	logger.Info("Server stopped")
	return errors.Join(errs...)
}

func printVersion() {
	fmt.Printf("GophDraw Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
