// Package content holds the copy of the site's static sections. The embedded
// site.yaml is the default; an override file may replace any part of it.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultYAML []byte

type Site struct {
	Brand      Brand      `yaml:"brand"`
	Hero       Hero       `yaml:"hero"`
	About      About      `yaml:"about"`
	Events     Events     `yaml:"events"`
	Roadmap    Roadmap    `yaml:"roadmap"`
	Reviews    Reviews    `yaml:"reviews"`
	ComingSoon ComingSoon `yaml:"coming_soon"`
	Footer     Footer     `yaml:"footer"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	LogoURL string `yaml:"logo_url"`
}

type Hero struct {
	VideoMP4   string `yaml:"video_mp4"`
	VideoWebM  string `yaml:"video_webm"`
	UnmuteHint string `yaml:"unmute_hint"`
	Title      string `yaml:"title"`
	Highlight  string `yaml:"highlight"`
	Lead       string `yaml:"lead"`
	CTA        string `yaml:"cta"`
	More       string `yaml:"more"`
}

// Card is a small titled block with an icon name understood by the views.
type Card struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type About struct {
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"`
	Intro     string `yaml:"intro"`
	Cards     []Card `yaml:"cards"`
}

type Event struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	ImageURL    string `yaml:"image_url"`
	ImageAlt    string `yaml:"image_alt"`
	Description string `yaml:"description"`
	CTA         string `yaml:"cta"`
}

type Placeholder struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	CTA   string `yaml:"cta"`
}

type Events struct {
	Title     string  `yaml:"title"`
	Highlight string  `yaml:"highlight"`
	Items     []Event `yaml:"items"`
	// Placeholders is the number of "coming soon" cards shown after the items.
	Placeholders int         `yaml:"placeholders"`
	Placeholder  Placeholder `yaml:"placeholder"`
}

type Phase struct {
	Title        string   `yaml:"title"`
	Period       string   `yaml:"period"`
	Icon         string   `yaml:"icon"`
	Description  string   `yaml:"description"`
	GoalsTitle   string   `yaml:"goals_title"`
	Goals        []string `yaml:"goals"`
	MetricsTitle string   `yaml:"metrics_title"`
	Metrics      []string `yaml:"metrics"`
}

type Roadmap struct {
	Title     string  `yaml:"title"`
	Highlight string  `yaml:"highlight"`
	Intro     string  `yaml:"intro"`
	Phases    []Phase `yaml:"phases"`
	Closing   string  `yaml:"closing"`
}

type Review struct {
	Title  string `yaml:"title"`
	Status string `yaml:"status"`
	Text   string `yaml:"text"`
	Stars  int    `yaml:"stars"`
}

type Reviews struct {
	Title     string   `yaml:"title"`
	Highlight string   `yaml:"highlight"`
	Cards     []Review `yaml:"cards"`
}

type ComingSoon struct {
	Highlight string `yaml:"highlight"`
	Title     string `yaml:"title"`
	Text      string `yaml:"text"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Footer struct {
	About        string `yaml:"about"`
	LinksTitle   string `yaml:"links_title"`
	Links        []Link `yaml:"links"`
	ContactTitle string `yaml:"contact_title"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
	Address      string `yaml:"address"`
	Copyright    string `yaml:"copyright"`
}

// Default returns a fresh copy of the embedded content.
func Default() (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		return nil, fmt.Errorf("parse embedded content: %w", err)
	}
	return &s, nil
}

// Parse decodes data on top of the embedded default, so an override only needs
// the keys it changes. Lists are replaced, not merged.
func Parse(data []byte) (*Site, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports content the views cannot render.
func (s *Site) Validate() error {
	var errs []error
	if s.Brand.Name == "" {
		errs = append(errs, errors.New("brand.name is empty"))
	}
	if s.Hero.VideoMP4 == "" && s.Hero.VideoWebM == "" {
		errs = append(errs, errors.New("hero needs at least one video source"))
	}
	if s.Events.Placeholders < 0 {
		errs = append(errs, errors.New("events.placeholders is negative"))
	}
	for i, r := range s.Reviews.Cards {
		if r.Stars < 0 || r.Stars > 5 {
			errs = append(errs, fmt.Errorf("reviews.cards[%d].stars must be between 0 and 5", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}
