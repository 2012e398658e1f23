package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/harshilpatel/folio/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// SiteRoot is the site URL with exactly one trailing slash.
func SiteRoot(base string) string {
	return strings.TrimSuffix(BuildURL(base), "/") + "/"
}

// PageURL is the canonical URL of a career page.
func PageURL(base string, key content.CareerPath) string {
	return BuildURL(base, content.PathFor(key))
}

// PersonJsonLD returns a JSON-LD string for a Schema.org Person describing the
// portfolio owner in the given role.
func PersonJsonLD(cfg SiteConfig, key content.CareerPath, c content.Configuration, contact content.Contact) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     c.Hero.Name,
		"jobTitle": c.Title,
		"url":      PageURL(cfg.URL, key),
		"email":    "mailto:" + contact.Email,
		"sameAs":   []string{contact.LinkedIn, contact.GitHub, contact.Website},
	}
	if len(c.Skills) > 0 {
		data["knowsAbout"] = c.Skills
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
