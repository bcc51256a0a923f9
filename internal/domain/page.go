package domain

import "fmt"

// PageID identifies which top-level view of the site is active.
type PageID string

const (
	PageHome   PageID = "home"
	PageLogin  PageID = "login"
	PageSignup PageID = "signup"
)

// Pages lists every valid PageID in navigation order.
var Pages = []PageID{PageHome, PageLogin, PageSignup}

// Valid reports whether p is one of the known pages.
func (p PageID) Valid() bool {
	switch p {
	case PageHome, PageLogin, PageSignup:
		return true
	}
	return false
}

func (p PageID) String() string { return string(p) }

// HasForm reports whether the page mounts a form.
func (p PageID) HasForm() bool {
	return p == PageLogin || p == PageSignup
}

// ParsePageID converts a raw identifier (e.g. a route parameter) into a PageID.
func ParsePageID(raw string) (PageID, error) {
	p := PageID(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, raw)
	}
	return p, nil
}
