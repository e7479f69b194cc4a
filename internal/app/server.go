package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the HTTP server and returns a channel that fires once, on a
// termination signal or when the server fails to listen.
func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{}, 1)

	a.goroutine.Go(a.ctx, "http server", func(ctx context.Context) error {
		slog.InfoContext(ctx, "http server listening", "address", a.httpServer.Addr)

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to listen and serve http server", "error", err)
			a.cancel()
			return err
		}

		return nil
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(sigint)

		select {
		case <-sigint:
			slog.Info("termination signal received")
		case <-a.ctx.Done():
		}

		terminateChan <- struct{}{}
		close(terminateChan)
	}()

	return terminateChan
}

// Stop shuts the server down, waits for background goroutines and then runs
// the closers. It returns the error that stopped the server, if any.
func (a *App) Stop(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	if a.cancel != nil {
		a.cancel()
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	runErr := a.goroutine.Wait()
	if runErr != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", runErr)
	}

	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application gracefully shutdown")

	return runErr
}

// ShutdownTimeout is how long main gives Stop to finish.
func (a *App) ShutdownTimeout() time.Duration {
	return durationOr(a.config.GetDuration("server.shutdown_timeout"), 10*time.Second)
}
