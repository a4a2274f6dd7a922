package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Run serves the handler and blocks until the context is canceled or
// the server fails. Shutdown drains in-flight requests for up to 5s.
func Run(ctx context.Context, address string, handler http.Handler) error {
	srv := &http.Server{
		Addr:    address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
