// Package forms implements the login and signup forms: their field values,
// validation and the simulated submission round trip.
package forms

import (
	"fmt"

	"github.com/nfrund/lifeheroes/internal/domain"
)

// Kind selects which form a state or validation pass refers to.
type Kind string

const (
	KindLogin  Kind = "login"
	KindSignup Kind = "signup"
)

// KindForPage returns the form mounted by page, if any.
func KindForPage(p domain.PageID) (Kind, bool) {
	switch p {
	case domain.PageLogin:
		return KindLogin, true
	case domain.PageSignup:
		return KindSignup, true
	}
	return "", false
}

// FieldType describes how a field is edited and bound.
type FieldType int

const (
	TypeText FieldType = iota
	TypeEmail
	TypeTel
	TypePassword
	TypeSelect
	TypeCheckbox
)

// Field names shared by the wire format, the error map and the views.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldRememberMe      = "rememberMe"
	FieldFullName        = "fullName"
	FieldPhone           = "phone"
	FieldFieldOfStudy    = "fieldOfStudy"
	FieldConfirmPassword = "confirmPassword"
	FieldAcceptTerms     = "acceptTerms"
)

// FieldSpec declares one field of a form.
type FieldSpec struct {
	Name string
	Type FieldType
}

var specs = map[Kind][]FieldSpec{
	KindLogin: {
		{FieldEmail, TypeEmail},
		{FieldPassword, TypePassword},
		{FieldRememberMe, TypeCheckbox},
	},
	KindSignup: {
		{FieldFullName, TypeText},
		{FieldEmail, TypeEmail},
		{FieldPhone, TypeTel},
		{FieldFieldOfStudy, TypeSelect},
		{FieldPassword, TypePassword},
		{FieldConfirmPassword, TypePassword},
		{FieldAcceptTerms, TypeCheckbox},
	},
}

// Specs returns the fields of a form in display order.
func (k Kind) Specs() []FieldSpec {
	return specs[k]
}

// Spec looks up a single field of the form.
func (k Kind) Spec(name string) (FieldSpec, bool) {
	for _, s := range specs[k] {
		if s.Name == name {
			return s, true
		}
	}
	return FieldSpec{}, false
}

// Valid reports whether k is a known form.
func (k Kind) Valid() bool {
	_, ok := specs[k]
	return ok
}

// ParseKind converts a raw form name (e.g. a CLI argument) into a Kind.
func ParseKind(raw string) (Kind, error) {
	k := Kind(raw)
	if !k.Valid() {
		return "", fmt.Errorf("unknown form %q", raw)
	}
	return k, nil
}

// SelectOption is one entry of a select field.
type SelectOption struct {
	Value string
	Label string
}

// FieldsOfStudy are the choices of the signup "field of study / occupation" select.
// The values must stay in sync with the oneof rule on SignupInput.FieldOfStudy.
var FieldsOfStudy = []SelectOption{
	{"student", "دانشجو"},
	{"engineer", "مهندس"},
	{"doctor", "پزشک"},
	{"teacher", "معلم"},
	{"entrepreneur", "کارآفرین"},
	{"other", "سایر"},
}

// Value is the current content of one field: text for inputs and selects,
// Checked for checkboxes.
type Value struct {
	Text    string
	Checked bool
}

// Text builds a text Value.
func Text(s string) Value { return Value{Text: s} }

// Checked builds a checkbox Value.
func Checked(b bool) Value { return Value{Checked: b} }

// Fields maps field names to their current values.
type Fields map[string]Value

func (f Fields) text(name string) string { return f[name].Text }

func (f Fields) checked(name string) bool { return f[name].Checked }

// Clone returns an independent copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// EmptyFields returns the initial (empty) defaults for a form.
func EmptyFields(k Kind) Fields {
	out := make(Fields, len(specs[k]))
	for _, s := range specs[k] {
		out[s.Name] = Value{}
	}
	return out
}

// ErrorMap maps field names to a human-readable message. A field is valid iff absent.
type ErrorMap map[string]string

// Clone returns an independent copy.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
