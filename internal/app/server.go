package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start runs the HTTP server in the background and returns a channel that
// closes once a termination signal arrives.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})

	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server exited", "error", err)
			os.Exit(1)
		}
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(sig)

		<-sig

		if a.cancel != nil {
			a.cancel()
		}
		close(done)
		slog.Info("shutdown signal received")
	}()

	return done
}

// Serve runs the HTTP server on a caller-provided listener. Tests use this
// to bind an ephemeral port.
func (a *App) Serve(l net.Listener) <-chan error {
	errc := make(chan error, 1)
	go func() {
		errc <- a.httpServer.Serve(l)
		close(errc)
	}()
	return errc
}

// Stop drains the HTTP server, waits for background goroutines, then closes
// the shared resources in registration order.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "shutdown http server", "error", err)
	}

	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "background goroutines reported errors", "error", err)
	}

	for _, c := range a.closers {
		if err := c.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "close resource", "name", c.name, "error", err)
		}
	}
}
