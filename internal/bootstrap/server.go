package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airdesk/api"
	"github.com/Domenick1991/airdesk/config"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// Run serves the HTTP API and blocks until ctx is cancelled or the server
// fails.
func Run(ctx context.Context, cfg *config.Config, d api.Desk) error {
	srv := newServer(cfg, d)

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", cfg.HTTP.Address).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServer(cfg *config.Config, d api.Desk) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           api.NewRouter(d),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
