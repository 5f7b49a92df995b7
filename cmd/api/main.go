package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/roster/internal/config"
	httpx "github.com/geocoder89/roster/internal/http"
	"github.com/geocoder89/roster/internal/observability"
	"github.com/geocoder89/roster/internal/repo/memory"
)

func main() {
	// Load the config set up
	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	// tracing is opt-in; without an endpoint the otel globals stay no-op
	shutdownTracer := func(context.Context) error { return nil }
	if cfg.TracingEnabled() {
		initCtx, cancel := config.WithTimeout(5 * time.Second)
		shutdown, err := observability.InitTracer(initCtx, cfg)
		cancel()

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}
		shutdownTracer = shutdown
	}

	prom := observability.NewProm()

	// the roster is built once and never mutated afterwards
	users, err := memory.NewSeededUsersRepo(memory.WithObserver(prom))
	if err != nil {
		log.Error("failed to load user seed", "err", err)
		os.Exit(1)
	}
	log.Info("user store loaded", "users", users.Len())

	router := httpx.NewRouter(log, users, prom, cfg)

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env, "cors_origins", cfg.CORSOrigins)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}

		if err := shutdownTracer(ctx); err != nil {
			log.Error("tracer shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
