package folio

import (
	"crypto/subtle"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/harshilpatel/folio/views"
	"github.com/harshilpatel/folio/visits"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !isAdmin(c) {
		return Render(c, views.AdminLogin(a.site(), false, csrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdmin(c, true); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	c.Logger().Warnf("failed admin login from %s", ip)
	return RenderStatus(c, http.StatusUnauthorized, views.AdminLogin(a.site(), true, csrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := setAdmin(c, false); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminReset(c echo.Context) error {
	if !isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	path := c.FormValue("path")
	if err := a.Store.Reset(c.Request().Context(), path); err != nil {
		return err
	}
	a.Stats.Invalidate()
	msg := "Reset all counts."
	if path != "" {
		msg = "Reset " + path + "."
	}
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

type visitsResponse struct {
	Total   int                `json:"total"`
	Pages   []visits.PageCount `json:"pages"`
	Fetched string             `json:"fetched"`
}

func (a *App) handleAdminVisitsAPI(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	stats, fetched, err := a.Stats.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visitsResponse{
		Total:   stats.Total(),
		Pages:   stats.Sorted(),
		Fetched: fetched.UTC().Format("2006-01-02T15:04:05Z"),
	})
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	stats, fetched, err := a.Stats.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	d := views.Dashboard{
		Total:   stats.Total(),
		Fetched: fetched,
		Message: msg,
		CSRF:    csrfToken(c),
	}
	for _, pc := range stats.Sorted() {
		d.Rows = append(d.Rows, views.PageRow{Path: pc.Path, Count: pc.Count})
	}
	return Render(c, views.AdminDashboard(a.site(), d))
}
