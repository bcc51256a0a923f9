package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/lifeheroes/internal/domain"
)

// NavButton requests a transition to target and swaps the whole app region.
func NavButton(target domain.PageID, class string, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		Class(class),
		hx.Post("/navigate/"+target.String()),
		hx.Target("#app"),
		hx.Swap("outerHTML show:window:top"),
		g.Group(children),
	)
}

type navItem struct {
	label  string
	target domain.PageID
}

// The section links all lead home, as the sections only exist there.
var sectionLinks = []navItem{
	{"خانه", domain.PageHome},
	{"درباره ما", domain.PageHome},
	{"رویدادها", domain.PageHome},
	{"نظرات", domain.PageHome},
}

// SiteHeader renders the brand, the desktop navigation and the mobile menu.
func SiteHeader(p Props) g.Node {
	brand := p.Content.Brand
	return Header(
		ID("site-header"),
		Class("relative z-50 backdrop-blur-xl bg-white/90 border-b border-red-100 shadow-lg"),
		Div(Class("container mx-auto px-4 py-4"),
			Div(Class("flex items-center justify-between"),
				Div(Class("flex items-center gap-4"),
					Img(Src(brand.LogoURL), Alt(brand.Name), Class("h-12 w-auto object-contain")),
					Div(
						H1(Class("text-xl font-bold text-red-600"), g.Text(brand.Name)),
						P(Class("text-sm text-gray-600"), g.Text(brand.Tagline)),
					),
				),
				Nav(Class("hidden md:flex items-center gap-8"),
					g.Map(sectionLinks, func(item navItem) g.Node {
						return NavButton(item.target, "text-gray-700 hover:text-red-600 font-medium", g.Text(item.label))
					}),
					authButtons("flex items-center gap-2"),
					contactLink("bg-gray-800 text-white px-6 py-2 rounded-full hover:bg-gray-900 font-medium"),
				),
				Button(
					Type("button"),
					ID("menu-toggle"),
					Class("md:hidden p-2 rounded-lg hover:bg-gray-100"),
					Aria("expanded", boolString(p.App.MenuOpen)),
					hx.Post("/menu/toggle"),
					hx.Target("#site-header"),
					hx.Swap("outerHTML"),
					g.If(p.App.MenuOpen, g.Text("✕")),
					g.If(!p.App.MenuOpen, g.Text("☰")),
				),
			),
			g.If(p.App.MenuOpen, mobileMenu()),
		),
	)
}

func mobileMenu() g.Node {
	return Nav(
		ID("mobile-menu"),
		Class("mobile-menu md:hidden mt-4 py-4 border-t border-gray-200"),
		Div(Class("flex flex-col gap-4"),
			g.Map(sectionLinks, func(item navItem) g.Node {
				return NavButton(item.target, "text-gray-700 hover:text-red-600 font-medium text-right", g.Text(item.label))
			}),
			authButtons("flex flex-col gap-2"),
			contactLink("bg-gray-800 text-white px-6 py-2 rounded-full hover:bg-gray-900 font-medium w-fit"),
		),
	)
}

func authButtons(class string) g.Node {
	return Div(Class(class),
		NavButton(domain.PageLogin,
			"text-gray-700 hover:text-red-600 font-medium px-4 py-2 rounded-full border border-gray-300 hover:border-red-600",
			g.Text("ورود"),
		),
		NavButton(domain.PageSignup,
			"bg-red-600 text-white px-6 py-2 rounded-full hover:bg-red-700 font-medium",
			g.Text("ثبت نام"),
		),
	)
}

func contactLink(class string) g.Node {
	return A(Href("#contact"), Class(class), g.Text("تماس با ما"))
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
