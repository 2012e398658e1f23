package folio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/harshilpatel/folio/content"
	"github.com/harshilpatel/folio/ogimage"
	"github.com/harshilpatel/folio/share"
	"github.com/harshilpatel/folio/views"
	"github.com/harshilpatel/folio/viewstate"
)

func (a *App) handlePage(c echo.Context) error {
	key, ok := content.ForPath(c.Request().URL.Path)
	if !ok {
		return echo.ErrNotFound
	}
	cfg, ok := a.Content.Get(key)
	if !ok {
		return echo.ErrNotFound
	}

	partial := c.Request().Header.Get("HX-Request") == "true"
	tab, hasTab := viewstate.ParseTab(c.QueryParam("tab"))
	st := a.mutateViewState(c, func(s *viewstate.State) {
		if !partial {
			// A full navigation is a fresh mount.
			*s = viewstate.New()
			s.Mount(viewstate.Sample{})
		}
		if hasTab {
			s.SetActiveTab(tab)
		}
		if c.QueryParam("section") == string(viewstate.SectionProjects) {
			s.SelectPortfolio()
		}
	})

	p := a.page(c, key, cfg, st)
	if partial && c.QueryParam("partial") == "tabs" {
		return Render(c, views.Tabs(p))
	}
	return Render(c, views.Portfolio(p))
}

func (a *App) handleSelectTab(c echo.Context) error {
	tab, ok := viewstate.ParseTab(c.Param("tab"))
	if !ok {
		return echo.ErrNotFound
	}
	key, cfg := a.career(c)
	st := a.mutateViewState(c, func(s *viewstate.State) { s.SetActiveTab(tab) })
	return Render(c, views.Tabs(a.page(c, key, cfg, st)))
}

func (a *App) handleSelectPortfolio(c echo.Context) error {
	key, cfg := a.career(c)
	var target viewstate.Section
	st := a.mutateViewState(c, func(s *viewstate.State) { target = s.SelectPortfolio() })
	p := a.page(c, key, cfg, st)
	c.Response().Header().Set("HX-Trigger", `{"folio:scroll": {"target": "`+string(target)+`"}}`)
	return Render(c, views.Fragments(views.Tabs(p), views.NavSwap(p)))
}

func (a *App) handleMenu(c echo.Context) error {
	key, cfg := a.career(c)
	closeOnly := c.FormValue("close") == "1"
	st := a.mutateViewState(c, func(s *viewstate.State) {
		if closeOnly {
			s.CloseMenu()
		} else {
			s.ToggleMenu()
		}
	})
	return Render(c, views.Nav(a.page(c, key, cfg, st)))
}

func (a *App) handleCopyEmail(c echo.Context) error {
	now := a.now()
	st := a.mutateViewState(c, func(s *viewstate.State) { s.CopyEmail(now) })
	return Render(c, views.Toast(st.Toast, now))
}

func (a *App) handleToast(c echo.Context) error {
	now := a.now()
	st := a.mutateViewState(c, func(s *viewstate.State) { s.ExpireToast(now) })
	return Render(c, views.Toast(st.Toast, now))
}

func (a *App) handleShare(c echo.Context) error {
	key, cfg := a.career(c)
	msg := share.NewMessage(content.Owner, cfg.Title, cfg.About)
	target, ok := share.For(share.Platform(c.Param("platform")), PageURL(a.Config.URL, key), msg)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusFound, target.URL)
}

func (a *App) handleShareCard(c echo.Context) error {
	name, ok := strings.CutSuffix(c.Param("card"), ".png")
	if !ok {
		return echo.ErrNotFound
	}
	key := content.CareerPath(name)
	cfg, ok := a.Content.Get(key)
	if !ok {
		return echo.ErrNotFound
	}
	png, err := a.Cards.Get(string(key), ogimage.Card{
		Eyebrow:  cfg.Eyebrow,
		Name:     cfg.Hero.Name,
		Title:    cfg.Title,
		Subtitle: cfg.Hero.Subtitle,
		URL:      PageURL(a.Config.URL, key),
	})
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// career resolves the career query parameter sent by fragment requests,
// falling back to the default career path.
func (a *App) career(c echo.Context) (content.CareerPath, content.Configuration) {
	key := content.CareerPath(c.QueryParam("career"))
	if cfg, ok := a.Content.Get(key); ok {
		return key, cfg
	}
	cfg, _ := a.Content.Get(content.DefaultCareerPath)
	return content.DefaultCareerPath, cfg
}

// mutateViewState applies fn to the session view state. A session that cannot
// be saved is logged; the fragment still renders from the new state.
func (a *App) mutateViewState(c echo.Context, fn func(*viewstate.State)) viewstate.State {
	st, err := a.updateViewState(c, fn)
	if err != nil {
		c.Logger().Warnf("save view state: %v", err)
	}
	return st
}

func (a *App) site() views.Site {
	return views.Site{
		Name:    a.Config.Name,
		URL:     a.Config.URL,
		HTMXSrc: a.Config.HTMXSrc,
	}
}

func (a *App) page(c echo.Context, key content.CareerPath, cfg content.Configuration, st viewstate.State) views.Page {
	contact := content.ContactInfo()
	description := cfg.Hero.Subtitle
	if description == "" {
		description = a.Config.Description
	}
	return views.Page{
		Site: a.site(),
		Meta: views.PageMeta{
			Title:       content.Owner + " | " + cfg.Title,
			Description: description,
			URL:         PageURL(a.Config.URL, key),
			Image:       SiteRoot(a.Config.URL) + "og/" + string(key) + ".png",
			JSONLD:      PersonJsonLD(a.Config, key, cfg, contact),
		},
		Career:  key,
		Config:  cfg,
		Contact: contact,
		State:   st,
		Now:     a.now(),
		CSRF:    csrfToken(c),
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
