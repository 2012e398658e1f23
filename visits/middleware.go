package visits

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName holds the per-client stats record.
const CookieName = "visitStats"

const cookieMaxAge = 60 * 60 * 24 * 365

// Recorder persists one visit and returns the stats after it.
type Recorder interface {
	Record(ctx context.Context, path string) (Stats, error)
}

// Logger counts page navigations. It never fails the request it wraps.
type Logger struct {
	store        Recorder
	cookieSecure bool
	timeout      time.Duration
}

// NewLogger creates a Logger. store may be nil, in which case only the
// per-client record is kept.
func NewLogger(store Recorder, cookieSecure bool) *Logger {
	return &Logger{
		store:        store,
		cookieSecure: cookieSecure,
		timeout:      2 * time.Second,
	}
}

// Middleware records the visit before calling next. htmx partial requests,
// non-GET requests and bots are not navigations and are skipped.
func (l *Logger) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.Method == http.MethodGet && req.Header.Get("HX-Request") != "true" && !IsBot(req.UserAgent()) {
			l.record(c)
		}
		return next(c)
	}
}

func (l *Logger) record(c echo.Context) {
	path := Key(c.Request().URL.Path)

	client := Stats{}
	if cookie, err := c.Cookie(CookieName); err == nil {
		client = Decode(cookie.Value)
	}
	client.Increment(path)
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    Encode(client),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   l.cookieSecure,
	})
	c.Set(CookieName, client)

	logger := c.Logger()
	logger.Infof("visited %s: client path visits %d, client total %d", path, client[path], client.Total())

	if l.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), l.timeout)
	defer cancel()
	stats, err := l.store.Record(ctx, path)
	if err != nil {
		logger.Warnf("record visit %s: %v", path, err)
		return
	}
	logger.Infof("visited %s: path visits %d, total visits %d", path, stats[path], stats.Total())
}

// ClientStats returns the per-client stats recorded for this request, if any.
func ClientStats(c echo.Context) Stats {
	s, _ := c.Get(CookieName).(Stats)
	return s
}
