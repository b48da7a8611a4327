package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"fxswap/internal/config"

	"github.com/sirupsen/logrus"
)

const defaultShutdownTimeout = 10 * time.Second

// Start listens on the configured port and serves handler until ctx is canceled.
func Start(ctx context.Context, cfg config.HTTPServer, handler http.Handler) error {
	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, ln, handler, cfg)
}

// Serve runs the API on ln. On ctx cancellation in-flight requests get
// the configured shutdown timeout to finish.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg config.HTTPServer) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout(),
	}
	logrus.WithField("addr", ln.Addr().String()).Info("✅ Conversion API accepting connections")

	served := make(chan error, 1)
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		served <- err
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout()
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	began := time.Now()
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logrus.WithField("took", time.Since(began)).Info("Conversion API stopped")
	return <-served
}
