package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nfrund/lifeheroes/internal/content"
	"github.com/nfrund/lifeheroes/internal/pubsub"
)

const shutdownTimeout = 10 * time.Second

// Start runs the background workers and the HTTP server until ctx is cancelled
// or an interrupt or terminate signal arrives, then shuts everything down.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.startWorkers(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Addr())
		if err := s.E.Start(s.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case serveErr = <-errCh:
		slog.Error("Server stopped unexpectedly", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Join(serveErr, s.Shutdown(shutdownCtx))
}

// startWorkers runs the websocket bridge, the activity log and, when enabled,
// the content watcher.
func (s *Server) startWorkers(ctx context.Context) error {
	go s.deps.Bridge.Run(ctx)
	if err := s.deps.Bridge.Subscribe(ctx, s.deps.Bus); err != nil {
		return err
	}
	if err := pubsub.LogActivity(ctx, s.deps.Bus, slog.Default()); err != nil {
		return err
	}

	s.deps.Content.OnReload(func(site *content.Site) {
		slog.Info("Content reloaded", "brand", site.Brand.Name)
	})
	if s.deps.Config.GetContentWatch() && s.deps.Config.GetContentFile() != "" {
		if err := s.deps.Content.Watch(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown stops accepting requests, evicts every app so pending round trips
// are cancelled, closes the event bus and flushes traces.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	s.deps.Store.Close()
	if err := s.deps.Bus.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.deps.Telemetry.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	slog.Info("Server shut down")
	return errors.Join(errs...)
}
