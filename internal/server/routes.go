package server

import (
	"github.com/nfrund/lifeheroes/internal/handlers"
	"github.com/nfrund/lifeheroes/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	pageHandler := handlers.NewPageHandler(s.deps.Store, s.deps.Views)
	navHandler := handlers.NewNavigationHandler(s.deps.Views)
	formHandler := handlers.NewFormHandler()
	loadApp := middleware.LoadApp(s.deps.Store)
	rateLimiter := middleware.RateLimiter(s.deps.Config.GetSubmitRateLimit())

	s.E.StaticFS("/static", s.deps.Assets.FS())

	s.E.GET("/", pageHandler.HomeGet)
	s.E.GET("/health", pageHandler.Health)

	s.E.GET("/app", pageHandler.AppGet, loadApp)
	s.E.POST("/navigate/:page", navHandler.NavigatePost, loadApp)
	s.E.POST("/menu/toggle", navHandler.MenuTogglePost, loadApp)
	s.E.POST("/audio/toggle", navHandler.AudioTogglePost, loadApp)

	s.E.POST("/form/field", formHandler.FieldPost, loadApp)
	s.E.POST("/form/submit", formHandler.SubmitPost, rateLimiter, loadApp)

	s.E.GET("/ws", s.deps.Bridge.Handler(), loadApp)

	logRoutes(s.E)
}
