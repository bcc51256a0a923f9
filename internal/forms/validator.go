package forms

import (
	"errors"
	"log/slog"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// emailShape is deliberately permissive: something, "@", something, ".", something.
// It is not anchored: "x a@b.co y" passes.
var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// LoginInput is the typed view of the login form used for validation.
type LoginInput struct {
	Email      string `form:"email" validate:"required,emailshape"`
	Password   string `form:"password" validate:"required,min=6"`
	RememberMe bool   `form:"rememberMe"`
}

// SignupInput is the typed view of the signup form used for validation.
type SignupInput struct {
	FullName        string `form:"fullName" validate:"notblank"`
	Email           string `form:"email" validate:"required,emailshape"`
	Phone           string `form:"phone" validate:"required"`
	FieldOfStudy    string `form:"fieldOfStudy" validate:"required,oneof=student engineer doctor teacher entrepreneur other"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
	AcceptTerms     bool   `form:"acceptTerms" validate:"required"`
}

// Validator wraps the go-playground/validator library with the rules and
// messages of the site's forms.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the custom rules registered.
func NewValidator() *Validator {
	v := validator.New()

	// Report fields under their wire names so error maps line up with the form.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

var (
	defaultValidator     *Validator
	defaultValidatorOnce sync.Once
)

// Validate runs the rules of form k against fields using a shared Validator.
func Validate(k Kind, fields Fields) ErrorMap {
	defaultValidatorOnce.Do(func() { defaultValidator = NewValidator() })
	return defaultValidator.Validate(k, fields)
}

// Validate returns the errors of every failing field. The result is computed
// from scratch on each call; an empty map means the form is valid.
func (v *Validator) Validate(k Kind, fields Fields) ErrorMap {
	errs := ErrorMap{}

	input := bind(k, fields)
	if input == nil {
		return errs
	}

	err := v.validate.Struct(input)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable with a non-struct input, which bind never produces.
		slog.Error("Unexpected validation failure", "form", k, "error", err)
		return errs
	}
	for _, fe := range verrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = message(fe.Field(), fe.Tag())
	}
	return errs
}

// bind converts the raw field values into the typed input of form k.
// Free-text values are NFC-normalized so composed and decomposed Persian
// input validate the same way; passwords are left untouched.
func bind(k Kind, f Fields) any {
	switch k {
	case KindLogin:
		return &LoginInput{
			Email:      normalize(f.text(FieldEmail)),
			Password:   f.text(FieldPassword),
			RememberMe: f.checked(FieldRememberMe),
		}
	case KindSignup:
		return &SignupInput{
			FullName:        normalize(f.text(FieldFullName)),
			Email:           normalize(f.text(FieldEmail)),
			Phone:           normalize(f.text(FieldPhone)),
			FieldOfStudy:    f.text(FieldFieldOfStudy),
			Password:        f.text(FieldPassword),
			ConfirmPassword: f.text(FieldConfirmPassword),
			AcceptTerms:     f.checked(FieldAcceptTerms),
		}
	}
	return nil
}

func normalize(s string) string {
	return norm.NFC.String(s)
}
