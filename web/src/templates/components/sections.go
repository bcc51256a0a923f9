package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/lifeheroes/internal/content"
)

var icons = map[string]string{
	"users":    "👥",
	"star":     "⭐",
	"arrow":    "➜",
	"message":  "💬",
	"play":     "▶",
	"calendar": "📅",
}

// Icon renders the glyph for a content icon name; unknown names render nothing.
func Icon(name string) g.Node {
	glyph, ok := icons[name]
	if !ok {
		return nil
	}
	return Span(Class("icon"), Aria("hidden", "true"), g.Text(glyph))
}

func sectionTitle(title, highlight string) g.Node {
	return H2(Class("text-4xl font-bold text-center mb-12"),
		g.Text(title+" "),
		Span(Class("text-red-600"), g.Text(highlight)),
	)
}

func About(c content.About) g.Node {
	return Section(ID("about"), Class("py-20 bg-gray-50"),
		Div(Class("container mx-auto px-4"),
			sectionTitle(c.Title, c.Highlight),
			P(Class("text-lg text-gray-700 text-center max-w-3xl mx-auto mb-12"), g.Text(c.Intro)),
			Div(Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Map(c.Cards, func(card content.Card) g.Node {
					return Div(Class("feature-card bg-white rounded-2xl p-8 shadow-lg text-center"),
						Div(Class("text-red-600 text-3xl mb-4"), Icon(card.Icon)),
						H3(Class("text-xl font-bold mb-2"), g.Text(card.Title)),
						P(Class("text-gray-600"), g.Text(card.Text)),
					)
				}),
			),
		),
	)
}

func Events(c content.Events) g.Node {
	placeholders := make([]content.Placeholder, c.Placeholders)
	for i := range placeholders {
		placeholders[i] = c.Placeholder
	}
	return Section(ID("events"), Class("py-20"),
		Div(Class("container mx-auto px-4"),
			sectionTitle(c.Title, c.Highlight),
			Div(Class("grid md:grid-cols-3 gap-8"),
				g.Map(c.Items, func(ev content.Event) g.Node {
					return Div(Class("event-card bg-white rounded-2xl shadow-lg overflow-hidden"),
						g.If(ev.ImageURL != "", Img(Src(ev.ImageURL), Alt(ev.ImageAlt), Class("w-full h-48 object-cover"))),
						Div(Class("p-6"),
							Div(Class("flex items-center justify-between mb-4"),
								Div(
									H3(Class("text-xl font-bold"), g.Text(ev.Title)),
									P(Class("text-red-600"), g.Text(ev.Date)),
								),
								Icon("calendar"),
							),
							P(Class("text-gray-600 mb-4"), g.Text(ev.Description)),
							Button(Type("button"), Class("bg-red-600 text-white px-6 py-2 rounded-full"), g.Text(ev.CTA)),
						),
					)
				}),
				g.Map(placeholders, func(ph content.Placeholder) g.Node {
					return Div(Class("event-placeholder bg-gray-50 rounded-2xl border-2 border-dashed border-gray-300 p-8 text-center"),
						Div(Class("text-5xl mb-4 text-gray-400"), Icon("calendar")),
						H3(Class("text-xl font-bold text-gray-500"), g.Text(ph.Title)),
						P(Class("text-gray-400 mb-4"), g.Text(ph.Text)),
						Button(Type("button"), Disabled(), Class("bg-gray-300 text-gray-500 px-6 py-2 rounded-full"), g.Text(ph.CTA)),
					)
				}),
			),
		),
	)
}

func Roadmap(c content.Roadmap) g.Node {
	return Section(ID("roadmap"), Class("py-20 bg-gray-50"),
		Div(Class("container mx-auto px-4"),
			sectionTitle(c.Title, c.Highlight),
			P(Class("text-lg text-gray-700 text-center max-w-3xl mx-auto mb-12"), g.Text(c.Intro)),
			Div(Class("space-y-12"),
				g.Map(c.Phases, func(ph content.Phase) g.Node {
					return Div(Class("roadmap-phase bg-white rounded-2xl p-8 shadow-lg"),
						Div(Class("flex items-center justify-between mb-4"),
							Div(
								H3(Class("text-2xl font-bold"), g.Text(ph.Title)),
								P(Class("text-red-600"), g.Text(ph.Period)),
							),
							Div(Class("text-2xl"), Icon(ph.Icon)),
						),
						P(Class("text-gray-700 mb-6"), g.Text(ph.Description)),
						Div(Class("grid md:grid-cols-2 gap-6"),
							bulletList(ph.GoalsTitle, ph.Goals),
							bulletList(ph.MetricsTitle, ph.Metrics),
						),
					)
				}),
			),
			g.If(c.Closing != "", P(Class("text-center italic text-gray-600 mt-12"), g.Text(c.Closing))),
		),
	)
}

func bulletList(title string, items []string) g.Node {
	return Div(
		H4(Class("font-bold mb-2"), g.Text(title)),
		Ul(Class("space-y-1 text-gray-600"),
			g.Map(items, func(s string) g.Node { return Li(g.Text("• " + s)) }),
		),
	)
}

func Reviews(c content.Reviews) g.Node {
	return Section(ID("reviews"), Class("py-20"),
		Div(Class("container mx-auto px-4"),
			sectionTitle(c.Title, c.Highlight),
			Div(Class("grid md:grid-cols-3 gap-8"),
				g.Map(c.Cards, func(r content.Review) g.Node {
					return Div(Class("review-card bg-white rounded-2xl p-8 shadow-lg"),
						Div(Class("flex items-center gap-4 mb-4"),
							Icon("message"),
							Div(
								H4(Class("font-bold"), g.Text(r.Title)),
								P(Class("text-sm text-gray-500"), g.Text(r.Status)),
							),
						),
						P(Class("text-gray-600 mb-4"), g.Text(r.Text)),
						Div(Class("stars text-yellow-400"), Aria("label", strings.Repeat("★", r.Stars)), g.Text(strings.Repeat("★", r.Stars))),
					)
				}),
			),
		),
	)
}

func ComingSoon(c content.ComingSoon) g.Node {
	return Section(ID("coming-soon"), Class("py-20 bg-gradient-to-r from-red-600 to-red-800 text-white text-center"),
		Div(Class("container mx-auto px-4"),
			H2(Class("text-4xl font-bold mb-6"),
				Span(Class("text-yellow-300"), g.Text(c.Highlight)),
				g.Text(" "+c.Title),
			),
			P(Class("text-xl max-w-3xl mx-auto"), g.Text(c.Text)),
		),
	)
}

// SiteFooter renders the contact block; its id is the target of the contact links.
func SiteFooter(brand content.Brand, c content.Footer) g.Node {
	return Footer(ID("contact"), Class("bg-gray-900 text-white py-16"),
		Div(Class("container mx-auto px-4"),
			Div(Class("grid md:grid-cols-3 gap-12"),
				Div(
					Div(Class("flex items-center gap-4 mb-4"),
						Img(Src(brand.LogoURL), Alt(brand.Name), Class("h-12 w-auto")),
						Div(
							H3(Class("text-xl font-bold"), g.Text(brand.Name)),
							P(Class("text-gray-400 text-sm"), g.Text(brand.Tagline)),
						),
					),
					P(Class("text-gray-400"), g.Text(c.About)),
				),
				Div(
					H4(Class("text-lg font-bold mb-4"), g.Text(c.LinksTitle)),
					Ul(Class("space-y-2"),
						g.Map(c.Links, func(l content.Link) g.Node {
							return Li(A(Href(l.Href), Class("text-gray-400 hover:text-white"), g.Text(l.Label)))
						}),
					),
				),
				Div(
					H4(Class("text-lg font-bold mb-4"), g.Text(c.ContactTitle)),
					Ul(Class("space-y-3 text-gray-400"),
						g.If(c.Email != "", Li(g.Text("✉ "), Span(g.Text(c.Email)))),
						g.If(c.Phone != "", Li(g.Text("☎ "), Span(g.Attr("dir", "ltr"), g.Text(c.Phone)))),
						g.If(c.Address != "", Li(g.Text("📍 "), Span(g.Text(c.Address)))),
					),
				),
			),
			P(Class("border-t border-gray-800 mt-12 pt-8 text-center text-gray-500"), g.Text(c.Copyright)),
		),
	)
}
