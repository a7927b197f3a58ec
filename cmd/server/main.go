// Package main is the entry point for the employee directory server.
// It wires the core session, the notification module and the HTTP
// presentation layer together.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rai/employee-directory/internal/platform/config"
	"github.com/rai/employee-directory/internal/platform/eventbus"
	"github.com/rai/employee-directory/internal/platform/httpserver"
	"github.com/rai/employee-directory/modules/directory"
	directoryhttp "github.com/rai/employee-directory/modules/directory/infrastructure/http"
	"github.com/rai/employee-directory/modules/directory/infrastructure/persistence"
	"github.com/rai/employee-directory/modules/directory/infrastructure/remote"
	"github.com/rai/employee-directory/modules/notifications"
)

func main() {
	// Initialize logger
	slogOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	slogJsonHandler := slog.NewJSONHandler(os.Stdout, slogOptions)
	logger := slog.New(slogJsonHandler)
	slog.SetDefault(logger)

	logger.Info("starting employee directory")

	cfg, err := config.Load(getEnv("CONFIG_FILE", "directory.ini"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize event bus (for module-to-module communication)
	eventBus := eventbus.New(logger)

	// Initialize the collection store and remote loader
	store := persistence.NewInMemoryStore()
	loader := remote.NewLoader(remote.Config{
		Endpoint: cfg.Remote.Endpoint,
		Timeout:  cfg.Remote.Timeout,
		Retries:  cfg.Remote.Retries,
	}, logger)

	// Initialize the directory session
	session := directory.NewSession(directory.Config{
		Store:          store,
		Loader:         loader,
		EventPublisher: eventBus,
		PageSize:       cfg.Pagination.PageSize,
		Logger:         logger,
	})

	// Initialize notifications
	toaster := notifications.NewMemoryToaster(32)
	notificationCfg := notifications.Config{
		EventSubscriber: eventBus,
		Toaster:         toaster,
		Logger:          logger,
	}
	_ = notifications.New(notificationCfg)

	// Seed the collection. A failed load is not fatal: the session stays in
	// the failed state and presentation shows the fetch error.
	ctx := context.Background()
	if err := session.Load(ctx); err != nil {
		logger.Error("initial fetch failed", slog.Any("error", err))
	}

	// Build HTTP router
	router := buildRouter(session, toaster)

	// Apply middleware
	handler := httpserver.Middleware(router,
		httpserver.Recovery(logger),
		httpserver.Logging(logger),
		httpserver.CORS([]string{"*"}))

	// Create and start server
	server := httpserver.New(cfg.Server, handler, logger)

	// Graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	logger.Info("server stopped")
}

// buildRouter creates the main HTTP router.
func buildRouter(session *directory.Session, toaster *notifications.MemoryToaster) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	directoryhttp.RegisterRoutes(mux, session, toaster)

	return mux
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
