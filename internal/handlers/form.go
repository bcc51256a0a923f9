package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/lifeheroes/internal/domain"
	"github.com/nfrund/lifeheroes/internal/forms"
	"github.com/nfrund/lifeheroes/internal/middleware"
	"github.com/nfrund/lifeheroes/web/src/templates/components"
	"github.com/nfrund/lifeheroes/web/src/templates/pages"
)

// FormHandler handles edits and submission of the mounted form.
type FormHandler struct{}

// NewFormHandler creates a new FormHandler.
func NewFormHandler() *FormHandler {
	return &FormHandler{}
}

// fieldValue reads one field from the request. Unchecked checkboxes are not sent at all.
func fieldValue(c echo.Context, spec forms.FieldSpec) forms.Value {
	raw := c.FormValue(spec.Name)
	if spec.Type == forms.TypeCheckbox {
		return forms.Checked(raw != "")
	}
	return forms.Text(raw)
}

// FieldPost handles POST /form/field. The request names the field in "field"
// and carries its value under the field's own name. The answer is the field's
// error slot, cleared if the value changed.
func (h *FormHandler) FieldPost(c echo.Context) error {
	app := middleware.AppFromContext(c)
	form, err := app.Form()
	if err != nil {
		return httpError(err)
	}

	name := c.FormValue("field")
	spec, ok := form.Kind().Spec(name)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "فیلد نامعتبر است")
	}
	if err := form.Set(name, fieldValue(c, spec)); err != nil {
		return httpError(err)
	}

	st := form.Snapshot()
	return c.Render(http.StatusOK, "", components.FieldError(name, st.Errors[name]))
}

// SubmitPost handles POST /form/submit. All fields of the request are applied
// before validating, so debounced field updates cannot be lost. Validation
// failures and repeated submits still answer 200 with the panel, so htmx swaps it.
func (h *FormHandler) SubmitPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())
	app := middleware.AppFromContext(c)
	form, err := app.Form()
	if err != nil {
		return httpError(err)
	}

	if st := form.Snapshot(); !st.Submitting && !st.Success {
		for _, spec := range form.Kind().Specs() {
			if err := form.Set(spec.Name, fieldValue(c, spec)); err != nil {
				return httpError(err)
			}
		}
	}

	err = form.Submit()
	switch {
	case err == nil:
		logger.Info("Form submitted", "form", form.Kind())
	case errors.Is(err, domain.ErrValidation):
		logger.Debug("Form has invalid fields", "form", form.Kind())
	case errors.Is(err, domain.ErrSubmitInFlight), errors.Is(err, domain.ErrAlreadySubmitted):
		logger.Debug("Ignoring repeated submit", "form", form.Kind(), "reason", err)
	default:
		return httpError(err)
	}

	return c.Render(http.StatusOK, "", pages.FormPanel(form.Kind(), form.Snapshot()))
}
