package folio

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/harshilpatel/folio/content"
)

// DefaultHTMXSrc is loaded when FOLIO_HTMX_SRC is unset.
const DefaultHTMXSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `env:"FOLIO_NAME"`        // Site name (default content.Owner)
	URL         string `env:"FOLIO_URL"`         // Canonical URL (default "http://localhost:3000")
	Description string `env:"FOLIO_DESCRIPTION"` // Fallback meta description

	Addr         string `env:"FOLIO_ADDR"`          // Listen address (default ":3000")
	DatabasePath string `env:"FOLIO_DATABASE_PATH"` // Visit stats SQLite path (default "data/visits.db")
	ContentPath  string `env:"FOLIO_CONTENT_PATH"`  // Optional JSON override of the career configurations

	AdminPassword string `env:"FOLIO_ADMIN_PASSWORD"` // Enables the visit dashboard when set
	SessionSecret string `env:"FOLIO_SESSION_SECRET"` // Required: session encryption secret
	SessionDir    string `env:"FOLIO_SESSION_DIR"`    // View state files (default "data/sessions")
	CookieSecure  bool   `env:"FOLIO_COOKIE_SECURE"`  // Set true for HTTPS

	StatsCacheTTL time.Duration `env:"FOLIO_STATS_CACHE_TTL"` // Dashboard cache TTL (default 30s)
	HTMXSrc       string        `env:"FOLIO_HTMX_SRC"`        // htmx script URL (default DefaultHTMXSrc)

	OTelEndpoint string `env:"FOLIO_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"FOLIO_OTEL_ENABLED" envDefault:"true"`
}

// LoadConfig reads a SiteConfig from the environment.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = content.Owner
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/visits.db"
	}
	if c.SessionDir == "" {
		c.SessionDir = "data/sessions"
	}
	if c.StatsCacheTTL == 0 {
		c.StatsCacheTTL = 30 * time.Second
	}
	if c.HTMXSrc == "" {
		c.HTMXSrc = DefaultHTMXSrc
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContent replaces the compiled career configurations.
func WithContent(lib *content.Library) Option {
	return func(a *App) {
		a.Content = lib
	}
}

// WithClock overrides the time source used for toast deadlines.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
