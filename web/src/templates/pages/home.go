package pages

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/nfrund/lifeheroes/web/src/templates/components"
)

func (v HomeView) Render(w io.Writer) error {
	c := v.props.Content
	return g.Group{
		components.Hero(v.props),
		components.About(c.About),
		components.Events(c.Events),
		components.Roadmap(c.Roadmap),
		components.Reviews(c.Reviews),
		components.ComingSoon(c.ComingSoon),
		components.SiteFooter(c.Brand, c.Footer),
	}.Render(w)
}
