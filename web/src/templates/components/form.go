package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/lifeheroes/internal/forms"
)

// FieldErrorID is the id of the error slot of a field.
func FieldErrorID(name string) string {
	return "err-" + name
}

// FieldError is the inline error slot of a field. It is always rendered, empty
// when the field is valid, so a field update can swap it in place.
func FieldError(name, msg string) g.Node {
	return P(
		ID(FieldErrorID(name)),
		Class("field-error mt-1"),
		g.If(msg != "", Role("alert")),
		g.Text(msg),
	)
}

// FieldControl describes how one field is presented.
type FieldControl struct {
	Spec        forms.FieldSpec
	Label       string
	Placeholder string
	LTR         bool
}

// Field renders a labelled control bound to the form state. Every change is
// posted to /form/field, which answers with the field's error slot.
func Field(fc FieldControl, st forms.State) g.Node {
	name := fc.Spec.Name
	inputID := "field-" + name
	live := []g.Node{
		hx.Post("/form/field"),
		hx.Vals(`{"field":"` + name + `"}`),
		hx.Target("#" + FieldErrorID(name)),
		hx.Swap("outerHTML"),
		g.If(st.Submitting, Disabled()),
	}
	fieldClass := "w-full px-4 py-3 border-2 rounded-xl focus:outline-none focus:border-red-500"
	if _, bad := st.Errors[name]; bad {
		fieldClass += " border-red-300"
	} else {
		fieldClass += " border-gray-200"
	}

	if fc.Spec.Type == forms.TypeCheckbox {
		return Div(Class("form-field"),
			Label(Class("flex items-center gap-2"),
				Input(
					Type("checkbox"),
					ID(inputID),
					Name(name),
					Value("on"),
					g.If(st.Fields[name].Checked, Checked()),
					hx.Trigger("change"),
					g.Group(live),
				),
				Span(Class("text-sm text-gray-600"), g.Text(fc.Label)),
			),
			FieldError(name, st.Errors[name]),
		)
	}

	var control g.Node
	switch fc.Spec.Type {
	case forms.TypeSelect:
		selected := st.Fields[name].Text
		control = Select(
			ID(inputID),
			Name(name),
			Class(fieldClass),
			hx.Trigger("change"),
			g.Group(live),
			Option(Value(""), g.Text("انتخاب کنید")),
			g.Map(forms.FieldsOfStudy, func(o forms.SelectOption) g.Node {
				return Option(Value(o.Value), g.If(o.Value == selected, Selected()), g.Text(o.Label))
			}),
		)
	default:
		control = Input(
			Type(inputType(fc.Spec.Type)),
			ID(inputID),
			Name(name),
			Class(fieldClass),
			Value(st.Fields[name].Text),
			g.If(fc.Placeholder != "", Placeholder(fc.Placeholder)),
			g.If(fc.LTR, g.Attr("dir", "ltr")),
			hx.Trigger("input changed delay:300ms"),
			g.Group(live),
		)
	}

	return Div(Class("form-field"),
		Label(For(inputID), Class("block text-sm font-medium text-gray-700 mb-2"), g.Text(fc.Label)),
		control,
		FieldError(name, st.Errors[name]),
	)
}

func inputType(t forms.FieldType) string {
	switch t {
	case forms.TypeEmail:
		return "email"
	case forms.TypeTel:
		return "tel"
	case forms.TypePassword:
		return "password"
	default:
		return "text"
	}
}
