package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/lifeheroes/internal/domain"
	"github.com/nfrund/lifeheroes/internal/middleware"
	"github.com/nfrund/lifeheroes/web/src/templates/components"
)

// NavigationHandler handles page transitions and the header and hero toggles.
type NavigationHandler struct {
	views *Views
}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler(views *Views) *NavigationHandler {
	return &NavigationHandler{views: views}
}

// NavigatePost handles POST /navigate/:page and answers with the new #app region.
func (h *NavigationHandler) NavigatePost(c echo.Context) error {
	target, err := domain.ParsePageID(c.Param("page"))
	if err != nil {
		return httpError(err)
	}

	app := middleware.AppFromContext(c)
	if err := app.Navigate(target); err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "", h.views.Fragment(app.Snapshot()))
}

// MenuTogglePost handles POST /menu/toggle and answers with the header.
func (h *NavigationHandler) MenuTogglePost(c echo.Context) error {
	app := middleware.AppFromContext(c)
	app.ToggleMenu()
	return c.Render(http.StatusOK, "", components.SiteHeader(h.views.Props(app.Snapshot())))
}

// AudioTogglePost handles POST /audio/toggle and answers with the sound button,
// which carries the preference the hero script applies to the video.
func (h *NavigationHandler) AudioTogglePost(c echo.Context) error {
	app := middleware.AppFromContext(c)
	muted := app.ToggleAudio()
	middleware.FromContext(c.Request().Context()).Debug("Hero audio toggled", "muted", muted)
	return c.Render(http.StatusOK, "", components.SoundToggleResponse(muted))
}
