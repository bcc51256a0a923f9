package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/lifeheroes/internal/domain"
	"github.com/nfrund/lifeheroes/internal/site"
)

const (
	// SessionName is the cookie holding the visitor's app id.
	SessionName = "heroes-app"

	sessionKeyAppID = "app_id"
	appContextKey   = "app"
)

// SaveAppID binds the app to the visitor's session cookie.
func SaveAppID(c echo.Context, id string) error {
	sess, err := session.Get(SessionName, c)
	if sess == nil {
		return err
	}
	if err != nil {
		// A cookie signed with an old secret still yields a fresh session.
		FromContext(c.Request().Context()).Debug("Discarding unreadable session", "error", err)
	}
	sess.Options.Path = "/"
	sess.Options.HttpOnly = true
	sess.Options.SameSite = http.SameSiteLaxMode
	sess.Options.MaxAge = 0
	sess.Values[sessionKeyAppID] = id
	return sess.Save(c.Request(), c.Response())
}

// AppIDFromSession returns the app id stored in the session, or "".
func AppIDFromSession(c echo.Context) string {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return ""
	}
	id, _ := sess.Values[sessionKeyAppID].(string)
	return id
}

// LoadApp resolves the visitor's app from the session and stores it on the
// echo context. Requests without a live app are answered with 409 Conflict.
func LoadApp(store *site.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app, err := store.Get(AppIDFromSession(c))
			if err != nil {
				if errors.Is(err, domain.ErrNoApp) {
					return echo.NewHTTPError(http.StatusConflict,
						"صفحه منقضی شده است. لطفاً صفحه را دوباره بارگذاری کنید.").SetInternal(err)
				}
				return err
			}
			c.Set(appContextKey, app)
			setLogger(c, FromContext(c.Request().Context()).With("app_id", app.ID()))
			return next(c)
		}
	}
}

// AppFromContext returns the app loaded by LoadApp, or nil.
func AppFromContext(c echo.Context) *site.App {
	app, _ := c.Get(appContextKey).(*site.App)
	return app
}
