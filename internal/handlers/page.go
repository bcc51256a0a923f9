package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/lifeheroes/internal/middleware"
	"github.com/nfrund/lifeheroes/internal/site"
)

// PageHandler serves the document and the #app fragment.
type PageHandler struct {
	store *site.Store
	views *Views
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(store *site.Store, views *Views) *PageHandler {
	return &PageHandler{store: store, views: views}
}

// HomeGet handles GET /. Every full load starts a fresh app on the home page;
// the app the session pointed to before is closed, cancelling any round trip.
func (h *PageHandler) HomeGet(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	if old := middleware.AppIDFromSession(c); old != "" {
		h.store.Remove(old)
	}
	app := h.store.Create()
	if err := middleware.SaveAppID(c, app.ID()); err != nil {
		return err
	}
	logger.Debug("Started app", "app_id", app.ID())

	return c.Render(http.StatusOK, "", h.views.Document(app.Snapshot()))
}

// AppGet handles GET /app, re-rendering the #app region for polling clients.
func (h *PageHandler) AppGet(c echo.Context) error {
	app := middleware.AppFromContext(c)
	return c.Render(http.StatusOK, "", h.views.Fragment(app.Snapshot()))
}

// Health handles GET /health.
func (h *PageHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
