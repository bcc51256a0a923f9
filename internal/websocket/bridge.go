// Package websocket pushes re-rendered app regions to browsers whose app state
// changed outside of a request.
package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/lifeheroes/internal/middleware"
	"github.com/nfrund/lifeheroes/internal/pubsub"
	"github.com/nfrund/lifeheroes/internal/rendering"
	"github.com/nfrund/lifeheroes/internal/site"
)

// AppLookup finds a live app. *site.Store implements it.
type AppLookup interface {
	Get(id string) (*site.App, error)
}

// Fragmenter renders the #app region. *handlers.Views implements it.
type Fragmenter interface {
	Fragment(snap site.Snapshot) g.Node
}

type appMessage struct {
	appID   string
	payload []byte
}

// Bridge keeps the open sockets per app and delivers fragments to them.
type Bridge struct {
	apps     AppLookup
	views    Fragmenter
	renderer rendering.Renderer

	// clients maps an app id to its sockets; a visitor may have several tabs open.
	clients map[string][]*Client
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	push       chan appMessage
	drop       chan string
	done       chan struct{}
}

// NewBridge creates a Bridge. Call Run before accepting connections.
func NewBridge(apps AppLookup, views Fragmenter, renderer rendering.Renderer) *Bridge {
	return &Bridge{
		apps:       apps,
		views:      views,
		renderer:   renderer,
		clients:    make(map[string][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		push:       make(chan appMessage, 64),
		drop:       make(chan string, 16),
		done:       make(chan struct{}),
	}
}

// Run manages client lifecycle and message routing until ctx is done.
func (b *Bridge) Run(ctx context.Context) {
	slog.Info("WebSocket bridge runner started")
	for {
		select {
		case <-ctx.Done():
			close(b.done)
			b.mu.Lock()
			for id, clients := range b.clients {
				for _, c := range clients {
					c.close()
				}
				delete(b.clients, id)
			}
			b.mu.Unlock()
			slog.Info("WebSocket bridge runner stopped")
			return

		case client := <-b.register:
			b.mu.Lock()
			b.clients[client.AppID] = append(b.clients[client.AppID], client)
			b.mu.Unlock()
			slog.Debug("Client registered", "app_id", client.AppID)

		case client := <-b.unregister:
			b.mu.Lock()
			b.removeLocked(client)
			b.mu.Unlock()

		case msg := <-b.push:
			b.mu.RLock()
			for _, client := range b.clients[msg.appID] {
				client.enqueue(msg.payload)
			}
			b.mu.RUnlock()

		case appID := <-b.drop:
			b.mu.Lock()
			for _, client := range b.clients[appID] {
				client.close()
			}
			delete(b.clients, appID)
			b.mu.Unlock()
			slog.Debug("Dropped sockets of evicted app", "app_id", appID)
		}
	}
}

func (b *Bridge) removeLocked(client *Client) {
	clients := b.clients[client.AppID]
	for i, c := range clients {
		if c == client {
			b.clients[client.AppID] = append(clients[:i], clients[i+1:]...)
			client.close()
			slog.Debug("Client unregistered", "app_id", client.AppID)
			break
		}
	}
	if len(b.clients[client.AppID]) == 0 {
		delete(b.clients, client.AppID)
	}
}

// Connections returns the number of open sockets of an app.
func (b *Bridge) Connections(appID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients[appID])
}

// Push renders the app's current region and queues it for its sockets.
func (b *Bridge) Push(ctx context.Context, appID string) error {
	app, err := b.apps.Get(appID)
	if err != nil {
		return err
	}
	payload, err := b.renderer.RenderComponent(ctx, b.views.Fragment(app.Snapshot()))
	if err != nil {
		return err
	}
	select {
	case b.push <- appMessage{appID: appID, payload: payload}:
		return nil
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe listens for app events and pushes every change that happened in the
// background. Sockets of evicted apps are closed.
func (b *Bridge) Subscribe(ctx context.Context, sub pubsub.Subscriber) error {
	return sub.Subscribe(ctx, pubsub.TopicAppEvents, func(ctx context.Context, msg pubsub.Message) error {
		ev, err := pubsub.DecodeAppEvent(msg)
		if err != nil {
			return err
		}
		switch {
		case ev.Type == pubsub.EventAppEvicted:
			select {
			case b.drop <- ev.AppID:
			case <-b.done:
			case <-ctx.Done():
			}
			return nil
		case !ev.Background:
			return nil
		}
		if b.Connections(ev.AppID) == 0 {
			return nil
		}
		return b.Push(ctx, ev.AppID)
	})
}

// Handler upgrades GET /ws for the app loaded by middleware.LoadApp.
func (b *Bridge) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		app := middleware.AppFromContext(c)
		if app == nil {
			return c.String(http.StatusConflict, "no app")
		}

		conn, err := websocket.Accept(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("Failed to upgrade connection to WebSocket", "error", err)
			return err
		}

		client := newClient(app.ID(), conn)
		select {
		case b.register <- client:
		case <-b.done:
			return conn.Close(websocket.StatusGoingAway, "Server shutting down")
		}

		go client.writePump()
		go client.readPump(app.Context(), b)
		return nil
	}
}
