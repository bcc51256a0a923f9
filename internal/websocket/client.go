package websocket

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeWait = 10 * time.Second

// Client is one open socket of an app.
type Client struct {
	AppID string

	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func newClient(appID string, conn *websocket.Conn) *Client {
	return &Client{AppID: appID, conn: conn, send: make(chan []byte, 16)}
}

// enqueue queues a message, dropping it if the client is slow. A later push
// carries the complete region anyway.
func (c *Client) enqueue(msg []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
		slog.Warn("Client send channel full, dropping message", "app_id", c.AppID)
	}
}

// close stops the write pump. It is safe to call more than once.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// readPump discards client messages and reports the disconnect. The browser
// never sends anything; reading is what notices a closed connection.
func (c *Client) readPump(ctx context.Context, b *Bridge) {
	defer func() {
		select {
		case b.unregister <- c:
		case <-b.done:
		}
		c.conn.Close(websocket.StatusNormalClosure, "Client disconnected")
	}()

	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			switch {
			case status == websocket.StatusNormalClosure, status == websocket.StatusGoingAway:
				slog.Debug("WebSocket closed by client", "app_id", c.AppID)
			case errors.Is(err, context.Canceled):
				slog.Debug("WebSocket closed with its app", "app_id", c.AppID)
			default:
				slog.Debug("WebSocket read ended", "app_id", c.AppID, "error", err)
			}
			return
		}
	}
}

// writePump sends queued messages until the client is closed.
func (c *Client) writePump() {
	defer c.conn.Close(websocket.StatusNormalClosure, "Server-side cleanup")

	for message := range c.send {
		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		err := c.conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			slog.Error("WebSocket write error", "app_id", c.AppID, "error", err)
			return
		}
	}
}
