package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harshilpatel/folio/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

func (a *App) handleSitemap(c echo.Context) error {
	base := a.Config.URL
	urls := []sitemapURL{{Loc: SiteRoot(base), Priority: "1.0"}}
	for _, key := range a.Content.Keys() {
		urls = append(urls, sitemapURL{Loc: PageURL(base, key), Priority: "0.8"})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /view/\nDisallow: /api/\n\nSitemap: " + SiteRoot(a.Config.URL) + "sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

// routePath is the registered echo path for a content route.
func routePath(r content.Route) string {
	if r.Path == "/" {
		return "/"
	}
	return r.Path + "/"
}
