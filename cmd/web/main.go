// Package main initializes and starts the TextLens web application,
// wiring configuration, logging, the collaborator API client, the session
// store and the view layer.
package main

import (
	"cmp"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"textlens/internal/apiclient"
	"textlens/internal/cache"
	"textlens/internal/config"
	"textlens/internal/logger"
	"textlens/internal/session"
	"textlens/internal/web"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// A .env file is optional; it only feeds the environment lookups below.
	_ = godotenv.Load()

	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	// Typed client for the collaborator.
	client, err := apiclient.New(options.APIBaseURL(), zapLogger, nil)
	if err != nil {
		zapLogger.Fatal("cannot init api client", zap.Error(err))
	}

	// The session store listens for the client's transport outcomes.
	store := session.NewStore(client, zapLogger)
	client.SetStatusListener(store)

	// Cache of recently fetched analyses.
	analyses, err := cache.New()
	if err != nil {
		zapLogger.Fatal("cannot init cache", zap.Error(err))
	}

	// Resolve the signed-in user once at startup.
	startupCtx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
	store.LoadUser(startupCtx)
	cancel()

	// View layer.
	handler, err := web.NewHandler(client, store, analyses, zapLogger)
	if err != nil {
		zapLogger.Fatal("cannot init views", zap.Error(err))
	}
	router := web.NewRouter(handler, zapLogger)

	server := &http.Server{
		Addr:         options.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("starting HTTP server",
			zap.String("addr", options.Address),
			zap.String("api_base", options.APIBaseURL()),
			zap.String("environment", options.Environment),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	zapLogger.Info("shutting down server")

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("shutdown error", zap.Error(err))
	}
}
