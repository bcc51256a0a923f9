package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/lifeheroes/internal/domain"
)

// Hero renders the background video section and the welcome block below it.
// The video markup only exists on the home page.
func Hero(p Props) g.Node {
	hero := p.Content.Hero
	return g.Group{
		Section(
			ID("home"),
			Class("hero"),
			Video(
				ID("heroVideo"),
				g.Attr("autoplay"),
				g.Attr("loop"),
				g.Attr("muted"),
				g.Attr("playsinline"),
				g.Attr("preload", "metadata"),
				Data("base-volume", strconv.FormatFloat(HeroBaseVolume, 'f', -1, 64)),
				Data("fade-ratio", strconv.FormatFloat(HeroFadeRatio, 'f', -1, 64)),
				Data("muted", boolString(p.App.Muted)),
				g.If(hero.VideoMP4 != "", Source(Src(hero.VideoMP4), Type("video/mp4"))),
				g.If(hero.VideoWebM != "", Source(Src(hero.VideoWebM), Type("video/webm"))),
			),
			Div(Class("hero-overlay")),
			Div(Class("absolute bottom-8 right-8 z-30"), SoundToggle(p.App.Muted)),
			g.If(p.App.Muted, Div(
				ID("unmuteHint"),
				Class("absolute bottom-8 left-8 z-30 bg-black/50 text-white px-4 py-2 rounded-full"),
				Span(Class("text-sm"), g.Text(hero.UnmuteHint)),
			)),
		),
		Section(
			Class("relative z-20 -mt-32 pb-20"),
			Div(Class("container mx-auto px-4 text-center"),
				Div(Class("backdrop-blur-xl bg-white/80 rounded-3xl p-12 shadow-2xl"),
					H1(Class("text-5xl font-bold mb-6"),
						g.Text(hero.Title+" "),
						Span(Class("text-red-600"), g.Text(hero.Highlight)),
					),
					P(Class("text-xl text-gray-700 mb-8"), g.Text(hero.Lead)),
					Div(Class("flex flex-col sm:flex-row gap-4 justify-center"),
						NavButton(domain.PageSignup,
							"bg-red-600 text-white px-8 py-4 rounded-full text-lg font-semibold hover:bg-red-700",
							g.Text(hero.CTA),
						),
						A(Href("#about"),
							Class("border-2 border-red-600 text-red-600 px-8 py-4 rounded-full text-lg font-semibold hover:bg-red-50"),
							g.Text(hero.More),
						),
					),
				),
			),
		),
	}
}

// SoundToggle is the hero mute button. hero.js reads its data-muted attribute
// after every swap; the video's own attribute only holds the first render.
func SoundToggle(muted bool) g.Node {
	label := "🔊"
	if muted {
		label = "🔇"
	}
	return Button(
		ID("soundToggle"),
		Type("button"),
		Class("bg-white/20 backdrop-blur-md text-white p-3 rounded-full hover:bg-white/30 shadow-lg border border-white/30"),
		Data("muted", boolString(muted)),
		hx.Post("/audio/toggle"),
		hx.Swap("outerHTML"),
		Span(Class("text-xl"), g.Text(label)),
	)
}

// SoundToggleResponse answers a toggle: the new button and, once unmuted, an
// out-of-band removal of the unmute hint.
func SoundToggleResponse(muted bool) g.Node {
	return g.Group{
		SoundToggle(muted),
		g.If(!muted, Div(ID("unmuteHint"), g.Attr("hx-swap-oob", "delete"))),
	}
}
