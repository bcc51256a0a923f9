package layouts

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/lifeheroes/internal/content"
	"github.com/nfrund/lifeheroes/internal/view"
	"github.com/nfrund/lifeheroes/web/src/templates/components"
)

func TestPage(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)
	p := components.Props{
		Content: c,
		Asset:   func(name string) string { return "/static/" + name + "?v=abc" },
	}

	var buf bytes.Buffer
	body := view.AdaptGomponentToTempl(h.Div(h.ID("app"), g.Text("body")))
	require.NoError(t, Page(p, "ورود", body).Render(context.Background(), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "rtl", doc.Find("html").AttrOr("dir", ""))
	assert.Equal(t, "fa", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, "ورود - قهرمانان زندگی", doc.Find("title").Text())
	assert.Equal(t, "/ws", doc.Find("body").AttrOr("ws-connect", ""))
	assert.Equal(t, 1, doc.Find(`script[src="/static/hero.js?v=abc"]`).Length())
	assert.Equal(t, "body", doc.Find("#app").Text())
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "site", CalculateTitle("", "site"))
	assert.Equal(t, "page - site", CalculateTitle("page", "site"))
}
