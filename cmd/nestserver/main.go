// Command nestserver runs the nesting HTTP API: POST /nest, GET /, and
// GET /health.
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

	charmlog "github.com/charmbracelet/log"

	"github.com/nestlab/irregularpack/internal/config"
	"github.com/nestlab/irregularpack/internal/netlog"
	"github.com/nestlab/irregularpack/nestapi"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := netlog.New(os.Stderr, charmlog.InfoLevel)
	ctx = netlog.WithLogger(ctx, logger)

	cfgPath := os.Getenv("NEST_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	port := cfg.Server.Port
	if p := os.Getenv("NEST_PORT"); p != "" {
		port = p
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           withLoggerMiddleware(ctx, nestapi.Router()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// withLoggerMiddleware attaches the server's logger to every request's
// context so handlers and nestapi's own middleware can retrieve it via
// netlog.FromContext.
func withLoggerMiddleware(base context.Context, next http.Handler) http.Handler {
	logger := netlog.FromContext(base)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(netlog.WithLogger(r.Context(), logger)))
	})
}
