package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
)

// Handler maps the routes and returns the root handler without serving it.
func (srv *HTTPServer) Handler() (http.Handler, error) {
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	return srv.gin, nil
}

// Run maps the routes, serves HTTP and blocks until SIGINT or SIGTERM, then drains
// in-flight requests for up to shutdownTimeout.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	handler, err := srv.Handler()
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.Run: failed to map handlers: %v", err)
		return err
	}

	httpSrv := &http.Server{
		Addr:    net.JoinHostPort(srv.host, strconv.Itoa(srv.port)),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	srv.logger.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		srv.logger.Infof(ctx, "Received %s, stopping HTTP server...", sig)
	case err, ok := <-errCh:
		if ok {
			srv.logger.Errorf(ctx, "internal.httpserver.Run: HTTP server error: %v", err)
			if srv.discord != nil {
				_ = srv.discord.SendError(ctx, "HTTP server stopped", "The webhook listener exited unexpectedly.", err)
			}
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.Run: graceful shutdown failed: %v", err)
		return err
	}
	srv.logger.Info(ctx, "HTTP server stopped")
	return nil
}
