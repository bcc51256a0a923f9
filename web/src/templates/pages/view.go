// Package pages renders the #app region for each page.
package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/lifeheroes/internal/domain"
	"github.com/nfrund/lifeheroes/web/src/templates/components"
)

// AppID is the id of the region swapped on navigation.
const AppID = "app"

// View is the content of the current page. Exactly one variant exists per
// PageID and only the variant of the current page is ever rendered.
type View interface {
	g.Node
	Page() domain.PageID
}

type HomeView struct{ props components.Props }

type LoginView struct{ props components.Props }

type SignupView struct{ props components.Props }

func (HomeView) Page() domain.PageID   { return domain.PageHome }
func (LoginView) Page() domain.PageID  { return domain.PageLogin }
func (SignupView) Page() domain.PageID { return domain.PageSignup }

// ViewFor selects the variant for the app's current page.
func ViewFor(p components.Props) View {
	switch p.App.Page {
	case domain.PageLogin:
		return LoginView{p}
	case domain.PageSignup:
		return SignupView{p}
	default:
		return HomeView{p}
	}
}

// App renders the swappable region: the header and the current view.
func App(p components.Props) g.Node {
	v := ViewFor(p)
	return Div(
		ID(AppID),
		Data("page", v.Page().String()),
		components.SiteHeader(p),
		Main(v),
	)
}

// DocumentTitle returns the page part of the document title; empty for home.
func DocumentTitle(p components.Props) string {
	switch p.App.Page {
	case domain.PageLogin:
		return "ورود"
	case domain.PageSignup:
		return "ثبت نام"
	default:
		return ""
	}
}
