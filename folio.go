// Package folio serves a single-page portfolio built with Go, Echo, and templ.
// One page renders per career path; interactive view state lives in the
// session and is driven by htmx fragments and a small embedded script.
package folio

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/harshilpatel/folio/content"
	"github.com/harshilpatel/folio/ogimage"
	"github.com/harshilpatel/folio/telemetry"
	"github.com/harshilpatel/folio/visits"
)

// App is the central folio application. It wires together the content, the
// visit store, caches, handlers and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *content.Library
	Store   *visits.SQLiteStore
	Stats   *StatsCache
	Cards   *ogimage.Cache

	viewSessions  *sessions.FilesystemStore
	viewMu        sync.Mutex
	visitLogger   *visits.Logger
	loginLimiter  *RateLimiter
	sampleLimiter *RateLimiter
	now           func() time.Time
	customRoutes  []func(*App)
	staticDir     string
	stopTracing   func(context.Context) error
}

// New creates a new folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Content:   content.Default(),
		Cards:     ogimage.NewCache(),
		now:       time.Now,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the store, loads content overrides, and registers middleware and
// routes. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init(ctx context.Context) error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	if a.Config.ContentPath != "" {
		lib, err := content.LoadFile(a.Config.ContentPath)
		if err != nil {
			return fmt.Errorf("folio: load content: %w", err)
		}
		a.Content = lib
	}

	stop, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    a.Config.OTelEndpoint,
		Enabled:     a.Config.OTelEnabled,
		ServiceName: "folio",
	})
	if err != nil {
		return fmt.Errorf("folio: init tracing: %w", err)
	}
	a.stopTracing = stop

	store, err := visits.NewSQLiteStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	a.viewSessions, err = a.newViewStore()
	if err != nil {
		return fmt.Errorf("folio: init view sessions: %w", err)
	}
	if n, err := pruneViewSessions(a.Config.SessionDir, sessionMaxAge*time.Second); err != nil {
		a.Echo.Logger.Warnf("prune view sessions: %v", err)
	} else if n > 0 {
		a.Echo.Logger.Infof("pruned %d expired view sessions", n)
	}
	a.Stats = NewStatsCache(a.Store, a.Config.StatsCacheTTL)
	a.visitLogger = visits.NewLogger(a.Store, a.Config.CookieSecure)

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.sampleLimiter = NewRateLimiter(300, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and starts the server.
func (a *App) Start() error {
	if err := a.Init(context.Background()); err != nil {
		return err
	}
	a.Echo.Logger.Infof("folio listening on %s", a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded driver script and stylesheet are served under /public/ and
	// fall through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/folio.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/folio.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/og/:card", a.handleShareCard)

	// The page itself: only the literal career routes render it.
	for _, r := range content.Routes() {
		e.GET(routePath(r), a.handlePage, a.visitLogger.Middleware)
	}

	// View-state fragments
	e.POST("/view/tab/:tab/", a.handleSelectTab)
	e.POST("/view/portfolio/", a.handleSelectPortfolio)
	e.POST("/view/menu/", a.handleMenu)
	e.POST("/api/view/sample", a.handleSample)

	// Outbound actions
	e.POST("/contact/copy/", a.handleCopyEmail)
	e.GET("/contact/toast/", a.handleToast)
	e.GET("/share/:platform", a.handleShare)

	if a.Config.AdminPassword != "" {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		e.POST("/admin/reset/", a.handleAdminReset)
		e.GET("/admin/api/visits", a.handleAdminVisitsAPI)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.sampleLimiter != nil {
		a.sampleLimiter.Stop()
	}
	if a.stopTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.stopTracing(ctx); err != nil {
			a.Echo.Logger.Warnf("flush traces: %v", err)
		}
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// Shutdown gracefully stops the server and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Echo.Shutdown(ctx); err != nil {
		return err
	}
	return a.Close()
}
