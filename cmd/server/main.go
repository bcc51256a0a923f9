package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/lifeheroes/internal/app"
	"github.com/nfrund/lifeheroes/internal/config"
	"github.com/nfrund/lifeheroes/internal/logging"
	"github.com/nfrund/lifeheroes/internal/server"
)

// AppAssets can be set at build time to force an asset loading strategy.
// Example: go build -ldflags "-X 'main.AppAssets=disk'"
var AppAssets string

func main() {
	if AppAssets != "" {
		os.Setenv("APP_ASSETS", AppAssets)
	}

	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := app.Resolve(app.NewInjector(ctx, cfg))
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	s := server.New(deps)
	s.RegisterRoutes()

	if err := s.Start(ctx); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
