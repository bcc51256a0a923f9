package handlers

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/nfrund/lifeheroes/internal/content"
	"github.com/nfrund/lifeheroes/internal/site"
	"github.com/nfrund/lifeheroes/internal/view"
	"github.com/nfrund/lifeheroes/web/src/templates/components"
	"github.com/nfrund/lifeheroes/web/src/templates/layouts"
	"github.com/nfrund/lifeheroes/web/src/templates/pages"
)

// ContentProvider returns the copy to render. *content.Source implements it.
type ContentProvider interface {
	Current() *content.Site
}

// AssetResolver maps a static file name to its public URL. *assets.Assets implements it.
type AssetResolver interface {
	Path(name string) string
}

// Views turns app snapshots into components. It is shared by the HTTP handlers
// and the live-update socket so both render the same markup.
type Views struct {
	content ContentProvider
	assets  AssetResolver
}

// NewViews creates Views. assets may be nil.
func NewViews(content ContentProvider, assets AssetResolver) *Views {
	return &Views{content: content, assets: assets}
}

// Props builds the view props for a snapshot.
func (v *Views) Props(snap site.Snapshot) components.Props {
	p := components.Props{App: snap, Content: v.content.Current()}
	if v.assets != nil {
		p.Asset = v.assets.Path
	}
	return p
}

// Fragment renders the #app region.
func (v *Views) Fragment(snap site.Snapshot) g.Node {
	return pages.App(v.Props(snap))
}

// Document renders the full page.
func (v *Views) Document(snap site.Snapshot) templ.Component {
	p := v.Props(snap)
	return layouts.Page(p, pages.DocumentTitle(p), view.AdaptGomponentToTempl(pages.App(p)))
}
