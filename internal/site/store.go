package site

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nfrund/lifeheroes/internal/domain"
)

// StoreConfig bounds the in-memory app store.
type StoreConfig struct {
	// TTL is how long an app survives without being touched.
	TTL time.Duration
	// MaxApps caps the number of live apps; the least recently used is evicted first.
	MaxApps int
}

// Store keeps the apps of all visitors in memory. Nothing survives a restart.
type Store struct {
	apps   *expirable.LRU[string, *App]
	ctx    context.Context
	opts   []AppOption
	logger *slog.Logger
}

// NewStore creates a store. Every app it creates is derived from ctx and
// configured with opts.
func NewStore(ctx context.Context, cfg StoreConfig, opts ...AppOption) *Store {
	s := &Store{
		ctx:    ctx,
		opts:   opts,
		logger: slog.Default().With("component", "app_store"),
	}
	// The callback runs under the cache lock; App.Close never calls back into the store.
	s.apps = expirable.NewLRU[string, *App](cfg.MaxApps, func(id string, app *App) {
		s.logger.Debug("App evicted", "app_id", id)
		app.Close()
	}, cfg.TTL)
	return s
}

// Create starts a fresh app on the home page.
func (s *Store) Create() *App {
	app := NewApp(s.ctx, s.opts...)
	if s.apps.Add(app.ID(), app) {
		s.logger.Info("App store full, evicted least recently used app")
	}
	return app
}

// Get returns the app with the given id and renews its TTL.
func (s *Store) Get(id string) (*App, error) {
	if id == "" {
		return nil, domain.ErrNoApp
	}
	app, ok := s.apps.Get(id)
	if !ok {
		return nil, fmt.Errorf("app %s: %w", id, domain.ErrNoApp)
	}
	s.apps.Add(id, app)
	return app, nil
}

// Remove closes and forgets an app. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	s.apps.Remove(id)
}

// Len returns the number of apps held, including expired ones not yet swept.
func (s *Store) Len() int {
	return s.apps.Len()
}

// Close closes every app.
func (s *Store) Close() {
	s.apps.Purge()
}
