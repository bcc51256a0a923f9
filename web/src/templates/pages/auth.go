package pages

import (
	"io"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/lifeheroes/internal/domain"
	"github.com/nfrund/lifeheroes/internal/forms"
	"github.com/nfrund/lifeheroes/web/src/templates/components"
)

// FormPanelID is the id of the region answered by /form/submit.
const FormPanelID = "form-panel"

// PollInterval is how often a form panel waiting on the server refreshes the app
// region when no live-update socket delivered the change.
const PollInterval = "1s"

type authCopy struct {
	heading     string
	subheading  string
	submit      string
	submitting  string
	google      string
	successHead string
	successText string
	switchText  string
	switchLink  string
	switchTo    domain.PageID
	controls    map[string]components.FieldControl
}

var loginCopy = authCopy{
	heading:     "ورود به حساب",
	subheading:  "به خانواده قهرمانان زندگی بپیوندید",
	submit:      "ورود",
	submitting:  "در حال ورود...",
	google:      "ورود با گوگل",
	successHead: "ورود موفق!",
	successText: "در حال انتقال به صفحه اصلی...",
	switchText:  "حساب کاربری ندارید؟",
	switchLink:  "ثبت نام کنید",
	switchTo:    domain.PageSignup,
	controls: map[string]components.FieldControl{
		forms.FieldEmail:      {Label: "ایمیل", Placeholder: "example@email.com", LTR: true},
		forms.FieldPassword:   {Label: "رمز عبور", Placeholder: "رمز عبور خود را وارد کنید"},
		forms.FieldRememberMe: {Label: "مرا به خاطر بسپار"},
	},
}

var signupCopy = authCopy{
	heading:     "ثبت نام",
	subheading:  "عضو خانواده قهرمانان زندگی شوید",
	submit:      "ثبت نام",
	submitting:  "در حال ثبت نام...",
	google:      "ثبت نام با گوگل",
	successHead: "ثبت نام موفق!",
	successText: "در حال انتقال به صفحه اصلی...",
	switchText:  "قبلاً ثبت نام کرده‌اید؟",
	switchLink:  "وارد شوید",
	switchTo:    domain.PageLogin,
	controls: map[string]components.FieldControl{
		forms.FieldFullName:        {Label: "نام و نام خانوادگی", Placeholder: "نام کامل خود را وارد کنید"},
		forms.FieldEmail:           {Label: "ایمیل", Placeholder: "example@email.com", LTR: true},
		forms.FieldPhone:           {Label: "شماره تماس", Placeholder: "09123456789", LTR: true},
		forms.FieldFieldOfStudy:    {Label: "رشته تحصیلی / شغل"},
		forms.FieldPassword:        {Label: "رمز عبور", Placeholder: "رمز عبور قوی انتخاب کنید"},
		forms.FieldConfirmPassword: {Label: "تکرار رمز عبور", Placeholder: "رمز عبور را مجدداً وارد کنید"},
		forms.FieldAcceptTerms:     {Label: "با قوانین و مقررات سایت موافقم و شرایط استفاده از خدمات را می‌پذیرم"},
	},
}

func copyFor(k forms.Kind) authCopy {
	if k == forms.KindSignup {
		return signupCopy
	}
	return loginCopy
}

func (v LoginView) Render(w io.Writer) error {
	return authPage(v.props, forms.KindLogin).Render(w)
}

func (v SignupView) Render(w io.Writer) error {
	return authPage(v.props, forms.KindSignup).Render(w)
}

func authPage(p components.Props, k forms.Kind) g.Node {
	st := forms.State{Kind: k, Fields: forms.EmptyFields(k)}
	if p.App.Form != nil && p.App.Form.Kind == k {
		st = *p.App.Form
	}
	cp := copyFor(k)
	brand := p.Content.Brand

	return Section(
		ID(string(k)),
		Class("min-h-screen flex items-center justify-center py-12 px-4 bg-gradient-to-br from-red-50 to-white"),
		Div(Class("max-w-md w-full"),
			Div(Class("bg-white rounded-3xl shadow-2xl p-8"),
				Div(Class("text-center mb-8"),
					Img(Src(brand.LogoURL), Alt(brand.Name), Class("h-16 w-auto mx-auto mb-4")),
					H2(Class("text-3xl font-bold text-gray-900 mb-2"), g.Text(cp.heading)),
					P(Class("text-gray-600"), g.Text(cp.subheading)),
				),
				FormPanel(k, st),
				Div(Class("mt-6 text-center"),
					P(Class("text-gray-600"),
						g.Text(cp.switchText+" "),
						components.NavButton(cp.switchTo, "text-red-600 hover:text-red-700 font-semibold", g.Text(cp.switchLink)),
					),
				),
				Div(Class("mt-4 text-center"),
					components.NavButton(domain.PageHome, "text-gray-500 hover:text-gray-700 text-sm",
						g.Text("← بازگشت به صفحه اصلی"),
					),
				),
			),
		),
	)
}

// FormPanel renders the form, or its success view once the round trip succeeded.
// While the server is working the panel polls the app region.
func FormPanel(k forms.Kind, st forms.State) g.Node {
	cp := copyFor(k)
	waiting := st.Submitting || st.Success
	return Div(
		ID(FormPanelID),
		Data("submitting", strconv.FormatBool(st.Submitting)),
		Data("success", strconv.FormatBool(st.Success)),
		g.If(waiting, g.Group{
			hx.Get("/app"),
			hx.Trigger("every " + PollInterval),
			hx.Target("#" + AppID),
			hx.Swap("outerHTML"),
		}),
		g.If(st.Success, successView(cp)),
		g.If(!st.Success, authForm(k, cp, st)),
	)
}

func successView(cp authCopy) g.Node {
	return Div(Class("success text-center py-8"),
		Div(Class("text-5xl mb-4 text-green-500"), g.Text("✓")),
		H2(Class("text-2xl font-bold text-gray-900 mb-2"), g.Text(cp.successHead)),
		P(Class("text-gray-600"), g.Text(cp.successText)),
	)
}

func authForm(k forms.Kind, cp authCopy, st forms.State) g.Node {
	var checkboxes, fields []g.Node
	for _, spec := range k.Specs() {
		fc := cp.controls[spec.Name]
		fc.Spec = spec
		if spec.Type == forms.TypeCheckbox {
			checkboxes = append(checkboxes, components.Field(fc, st))
			continue
		}
		fields = append(fields, components.Field(fc, st))
	}

	return Form(
		Class("space-y-6"),
		g.Attr("novalidate"),
		hx.Post("/form/submit"),
		hx.Target("#"+FormPanelID),
		hx.Swap("outerHTML"),
		g.If(st.General != "", Div(
			ID("general-error"),
			Class("bg-red-50 border border-red-200 rounded-xl p-4 text-red-700 text-sm"),
			Role("alert"),
			g.Text(st.General),
		)),
		g.Group(fields),
		Div(Class("flex items-center justify-between"),
			g.Group(checkboxes),
			g.If(k == forms.KindLogin, Button(Type("button"), Class("text-sm text-red-600 hover:text-red-700"), g.Text("فراموشی رمز عبور؟"))),
		),
		Button(
			Type("submit"),
			ID("submit"),
			Class("w-full bg-red-600 text-white py-3 rounded-xl font-semibold hover:bg-red-700 disabled:opacity-50"),
			g.If(st.Submitting, Disabled()),
			g.If(st.Submitting, g.Text(cp.submitting)),
			g.If(!st.Submitting, g.Text(cp.submit)),
		),
		Div(Class("relative text-center"),
			Span(Class("px-2 bg-white text-gray-500"), g.Text("یا")),
		),
		Button(Type("button"), Class("w-full border-2 border-gray-200 py-3 rounded-xl font-semibold hover:bg-gray-50"), g.Text(cp.google)),
	)
}
