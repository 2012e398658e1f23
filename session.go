package folio

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/harshilpatel/folio/viewstate"
)

const (
	viewSessionName  = "folio_view"
	viewStateKey     = "state"
	adminSessionName = "folio_admin"
	adminKey         = "authenticated"
	sessionMaxAge    = 60 * 60 * 12
)

func (a *App) sessionOptions() *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   sessionMaxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
}

// newSessionStore backs the admin session with signed cookies.
func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = a.sessionOptions()
	return store
}

// newViewStore keeps view state on disk. The cookie only carries the session
// ID, so a request sent with an older cookie still reads the current record.
func (a *App) newViewStore() (*sessions.FilesystemStore, error) {
	if err := os.MkdirAll(a.Config.SessionDir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	store := sessions.NewFilesystemStore(a.Config.SessionDir, []byte(a.Config.SessionSecret))
	store.Options = a.sessionOptions()
	return store, nil
}

// pruneViewSessions removes view session files not written within maxAge.
func pruneViewSessions(dir string, maxAge time.Duration) (removed int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "session_") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}

// updateViewState applies fn to the stored view state and saves the result.
// The record is re-read under viewMu, so fn always sees the latest write and
// changes made by other requests survive.
func (a *App) updateViewState(c echo.Context, fn func(*viewstate.State)) (viewstate.State, error) {
	a.viewMu.Lock()
	defer a.viewMu.Unlock()

	// New rather than session.Get: Get caches per request and would not see
	// writes made since the request started.
	sess, err := a.viewSessions.New(c.Request(), viewSessionName)
	st := viewstate.New()
	if err == nil {
		st = decodeViewState(c, sess.Values[viewStateKey])
	}
	fn(&st)

	b, err := json.Marshal(st)
	if err != nil {
		return st, err
	}
	sess.Values[viewStateKey] = string(b)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return st, fmt.Errorf("folio: view session: %w", err)
	}
	return st, nil
}

// decodeViewState returns the stored state, or the mount state when there is
// none or it cannot be decoded.
func decodeViewState(c echo.Context, v interface{}) viewstate.State {
	raw, ok := v.(string)
	if !ok {
		return viewstate.New()
	}
	st := viewstate.New()
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		c.Logger().Warnf("discarding view state: %v", err)
		return viewstate.New()
	}
	return st
}

// isAdmin reports whether the admin session is authenticated.
func isAdmin(c echo.Context) bool {
	sess, err := session.Get(adminSessionName, c)
	if err != nil {
		return false
	}
	auth, ok := sess.Values[adminKey].(bool)
	return ok && auth
}

func setAdmin(c echo.Context, authenticated bool) error {
	sess, err := session.Get(adminSessionName, c)
	if sess == nil {
		return fmt.Errorf("folio: admin session: %w", err)
	}
	if authenticated {
		sess.Values[adminKey] = true
	} else {
		delete(sess.Values, adminKey)
		sess.Options.MaxAge = -1
	}
	return sess.Save(c.Request(), c.Response())
}

// csrfToken returns the token the CSRF middleware stored for this request.
func csrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
