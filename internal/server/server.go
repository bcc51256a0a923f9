// Package server assembles the echo instance of the site and runs it.
package server

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/lifeheroes/internal/app"
	appmiddleware "github.com/nfrund/lifeheroes/internal/middleware"
)

// Server holds the echo instance and the services it is built from.
type Server struct {
	E    *echo.Echo
	deps app.Dependencies
}

// New creates a Server from resolved dependencies. Call RegisterRoutes before Start.
func New(deps app.Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = deps.Renderer

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// The session only carries the app id; apps themselves live in memory.
	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	setupErrorHandling(e)

	return &Server{E: e, deps: deps}
}

// setupErrorHandling logs unhandled errors with a stack trace before echo's
// default handler writes the response. echo.HTTPError values are expected
// outcomes and pass through quietly.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if _, ok := err.(*echo.HTTPError); !ok {
			logger := appmiddleware.FromContext(c.Request().Context())
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Path(),
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

// Addr is the listen address from the configuration.
func (s *Server) Addr() string {
	return s.deps.Config.GetServerAddr()
}

func logRoutes(e *echo.Echo) {
	for _, r := range e.Routes() {
		slog.Debug("Route registered", "method", r.Method, "path", r.Path)
	}
}
