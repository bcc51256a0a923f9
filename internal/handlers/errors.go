package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/lifeheroes/internal/domain"
)

// httpError maps domain errors to HTTP errors. The messages are shown to the visitor.
func httpError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownPage):
		return echo.NewHTTPError(http.StatusNotFound, "صفحه پیدا نشد").SetInternal(err)
	case errors.Is(err, domain.ErrNoApp),
		errors.Is(err, domain.ErrNoForm),
		errors.Is(err, domain.ErrFormDiscarded):
		return echo.NewHTTPError(http.StatusConflict, "صفحه منقضی شده است. لطفاً صفحه را دوباره بارگذاری کنید.").SetInternal(err)
	default:
		return err
	}
}
