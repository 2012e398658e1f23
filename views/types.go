package views

import (
	"time"

	"github.com/harshilpatel/folio/content"
	"github.com/harshilpatel/folio/viewstate"
)

// Site holds site-wide settings. Every handler passes this to templates so
// nothing is hardcoded.
type Site struct {
	Name    string
	URL     string
	HTMXSrc string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string // og:image
	JSONLD      string
}

// Page is everything the portfolio page renders from.
type Page struct {
	Site    Site
	Meta    PageMeta
	Career  content.CareerPath
	Config  content.Configuration
	Contact content.Contact
	State   viewstate.State
	Now     time.Time
	CSRF    string
}

// PageRow is one line of the admin visit table.
type PageRow struct {
	Path  string
	Count int
}

// Dashboard is the admin visit overview.
type Dashboard struct {
	Rows    []PageRow
	Total   int
	Fetched time.Time
	Message string
	CSRF    string
}
