package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Run maps handlers, serves HTTP, and blocks until a shutdown signal.
// In-flight dispatches get shutdownTimeout to finish.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.Run.mapHandlers: %v", err)
		return err
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.cfg.Port),
		Handler: srv.gin,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.l.Fatalf(ctx, "internal.httpserver.Run.ListenAndServe: %v", err)
		}
	}()
	srv.l.Infof(ctx, "HTTP server started on port %d", srv.cfg.Port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	srv.l.Infof(ctx, "Received signal %v, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.Run.Shutdown: %v", err)
		return err
	}

	srv.l.Info(ctx, "HTTP server stopped")
	return nil
}
