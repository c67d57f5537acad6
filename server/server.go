package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"contentguard/config"
	"contentguard/routes"
	"contentguard/services"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run serves the web front-end on cfg.Server.Port until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	analyzer := services.NewAnalyzerClient(cfg.Analyzer.URL, cfg.Analyzer.Timeout, services.WithLogger(logger))

	router, err := routes.SetupRouter(cfg, analyzer, logger)
	if err != nil {
		return err
	}

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	logger.Info("server starting",
		zap.String("addr", ln.Addr().String()),
		zap.String("analyzer", analyzer.URL()),
	)
	return Serve(ctx, &http.Server{Handler: router}, ln, logger)
}

// Serve runs srv on ln and shuts it down gracefully once ctx is done.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
