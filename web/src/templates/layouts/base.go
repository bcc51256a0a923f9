// Package layouts wraps page content into a full HTML document.
package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/lifeheroes/internal/view"
	"github.com/nfrund/lifeheroes/web/src/templates/components"
)

const (
	htmxScript   = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSScript = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"
	tailwind     = "https://cdn.tailwindcss.com"
)

// Page renders the document around body. The body opens the live-update socket.
func Page(p components.Props, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := Doctype(
			HTML(
				Lang("fa"),
				g.Attr("dir", "rtl"),
				Head(
					Meta(Charset("utf-8")),
					Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
					TitleEl(g.Text(CalculateTitle(title, p.Content.Brand.Name))),
					Link(Rel("icon"), Href(p.Content.Brand.LogoURL)),
					Link(Rel("stylesheet"), Href(p.AssetURL("site.css"))),
					Script(Src(tailwind)),
					Script(Src(htmxScript)),
					Script(Src(htmxWSScript)),
					Script(Src(p.AssetURL("hero.js")), Defer()),
				),
				Body(
					Class("min-h-screen bg-white text-gray-900 overflow-x-hidden"),
					hx.Ext("ws"),
					g.Attr("ws-connect", "/ws"),
					view.AdaptTemplToGomponentCtx(ctx, body),
				),
			),
		)
		return doc.Render(w)
	})
}
