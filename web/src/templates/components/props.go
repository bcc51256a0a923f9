// Package components holds the gomponents building blocks of the site.
package components

import (
	"github.com/nfrund/lifeheroes/internal/content"
	"github.com/nfrund/lifeheroes/internal/site"
)

// Hero audio constants, rendered as data attributes for hero.js.
const (
	HeroBaseVolume = 0.7
	// HeroFadeRatio is the share of the viewport height over which the volume fades to zero.
	HeroFadeRatio = 0.5
)

// Props is everything a view needs to render one visitor's app.
type Props struct {
	App     site.Snapshot
	Content *content.Site
	// Asset resolves a static file name to its public URL.
	Asset func(name string) string
}

// AssetURL resolves name with Asset, falling back to the plain static path.
func (p Props) AssetURL(name string) string {
	if p.Asset == nil {
		return "/static/" + name
	}
	return p.Asset(name)
}
