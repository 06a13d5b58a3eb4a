package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"timeshift/internal/platform/config"
	"timeshift/internal/platform/logger"
	httptransport "timeshift/internal/transport/http"
	"timeshift/pkg/platform/middleware/mockdate"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// The interesting behavior lives in pkg/platform/middleware/mockdate.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing timeshift server",
		"addr", cfg.Addr,
		"mock_date_enabled", cfg.MockDateEnabled,
	)

	var metrics *mockdate.Metrics
	if cfg.MockDateEnabled {
		metrics = mockdate.NewMetrics()
	}

	handler := httptransport.NewHandler(log)
	router := httptransport.NewRouter(handler, log, httptransport.RouterConfig{
		MockDateEnabled: cfg.MockDateEnabled,
		MockDateMetrics: metrics,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
