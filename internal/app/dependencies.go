// Package app wires the services of the site together.
package app

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"

	"github.com/nfrund/lifeheroes/internal/assets"
	"github.com/nfrund/lifeheroes/internal/config"
	"github.com/nfrund/lifeheroes/internal/content"
	"github.com/nfrund/lifeheroes/internal/forms"
	"github.com/nfrund/lifeheroes/internal/handlers"
	"github.com/nfrund/lifeheroes/internal/pubsub"
	"github.com/nfrund/lifeheroes/internal/rendering"
	"github.com/nfrund/lifeheroes/internal/site"
	"github.com/nfrund/lifeheroes/internal/tracing"
	"github.com/nfrund/lifeheroes/internal/websocket"
)

// Version is reported by the tracer resource and the CLI. Set at build time with
// -ldflags "-X 'github.com/nfrund/lifeheroes/internal/app.Version=v1.2.3'".
var Version = "dev"

// Telemetry is the process tracer and the function flushing its spans.
type Telemetry struct {
	Tracer   trace.Tracer
	shutdown func(context.Context) error
}

// Shutdown flushes pending spans.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

// Dependencies holds the core services the server is built from.
type Dependencies struct {
	Config    config.Provider
	Telemetry *Telemetry
	Bus       *pubsub.WatermillBridge
	Content   *content.Source
	Assets    *assets.Assets
	Store     *site.Store
	Renderer  rendering.Renderer
	Views     *handlers.Views
	Bridge    *websocket.Bridge
}

// NewInjector registers every service lazily. ctx bounds the lifetime of the
// visitor apps created by the store.
func NewInjector(ctx context.Context, cfg config.Provider) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, provideTelemetry(ctx))
	do.Provide(i, provideBus)
	do.Provide(i, provideContent)
	do.Provide(i, provideAssets)
	do.Provide(i, provideStore(ctx))
	do.Provide(i, provideRenderer)
	do.Provide(i, provideViews)
	do.Provide(i, provideBridge)

	return i
}

// Resolve builds the services registered by NewInjector.
func Resolve(i do.Injector) (Dependencies, error) {
	var (
		deps Dependencies
		err  error
	)
	if deps.Config, err = do.Invoke[config.Provider](i); err != nil {
		return deps, err
	}
	if deps.Telemetry, err = do.Invoke[*Telemetry](i); err != nil {
		return deps, err
	}
	if deps.Bus, err = do.Invoke[*pubsub.WatermillBridge](i); err != nil {
		return deps, err
	}
	if deps.Content, err = do.Invoke[*content.Source](i); err != nil {
		return deps, err
	}
	if deps.Assets, err = do.Invoke[*assets.Assets](i); err != nil {
		return deps, err
	}
	if deps.Store, err = do.Invoke[*site.Store](i); err != nil {
		return deps, err
	}
	if deps.Renderer, err = do.Invoke[rendering.Renderer](i); err != nil {
		return deps, err
	}
	if deps.Views, err = do.Invoke[*handlers.Views](i); err != nil {
		return deps, err
	}
	if deps.Bridge, err = do.Invoke[*websocket.Bridge](i); err != nil {
		return deps, err
	}
	return deps, nil
}

func provideTelemetry(ctx context.Context) do.Provider[*Telemetry] {
	return func(i do.Injector) (*Telemetry, error) {
		cfg := do.MustInvoke[config.Provider](i)
		tracer, shutdown, err := tracing.Setup(ctx, tracing.Config{
			Enabled:     cfg.GetTracingEnabled(),
			ServiceName: cfg.GetTracingServiceName(),
			ZipkinURL:   cfg.GetTracingZipkinURL(),
			Version:     Version,
		})
		if err != nil {
			return nil, fmt.Errorf("setting up tracing: %w", err)
		}
		return &Telemetry{Tracer: tracer, shutdown: shutdown}, nil
	}
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	tel, err := do.Invoke[*Telemetry](i)
	if err != nil {
		return nil, err
	}
	return pubsub.NewWatermillBridge(tel.Tracer), nil
}

func provideContent(i do.Injector) (*content.Source, error) {
	cfg := do.MustInvoke[config.Provider](i)
	src, err := content.NewSource(afero.NewOsFs(), cfg.GetContentFile())
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return src, nil
}

func provideAssets(i do.Injector) (*assets.Assets, error) {
	cfg := do.MustInvoke[config.Provider](i)
	a, err := assets.New(cfg.GetAssetsMode(), cfg.GetAssetsDir())
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}
	return a, nil
}

func provideStore(ctx context.Context) do.Provider[*site.Store] {
	return func(i do.Injector) (*site.Store, error) {
		cfg := do.MustInvoke[config.Provider](i)
		tel, err := do.Invoke[*Telemetry](i)
		if err != nil {
			return nil, err
		}
		bus, err := do.Invoke[*pubsub.WatermillBridge](i)
		if err != nil {
			return nil, err
		}
		return site.NewStore(ctx,
			site.StoreConfig{TTL: cfg.GetAppTTL(), MaxApps: cfg.GetMaxVisitors()},
			site.WithPublisher(bus),
			site.WithFormOptions(
				forms.WithDelays(forms.Delays{Submit: cfg.GetSubmitDelay(), Redirect: cfg.GetRedirectDelay()}),
				forms.WithTracer(tel.Tracer),
			),
		), nil
	}
}

func provideRenderer(do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideViews(i do.Injector) (*handlers.Views, error) {
	src, err := do.Invoke[*content.Source](i)
	if err != nil {
		return nil, err
	}
	a, err := do.Invoke[*assets.Assets](i)
	if err != nil {
		return nil, err
	}
	return handlers.NewViews(src, a), nil
}

func provideBridge(i do.Injector) (*websocket.Bridge, error) {
	store, err := do.Invoke[*site.Store](i)
	if err != nil {
		return nil, err
	}
	views, err := do.Invoke[*handlers.Views](i)
	if err != nil {
		return nil, err
	}
	renderer, err := do.Invoke[rendering.Renderer](i)
	if err != nil {
		return nil, err
	}
	return websocket.NewBridge(store, views, renderer), nil
}
