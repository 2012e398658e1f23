package views

import (
	"strconv"

	"github.com/a-h/templ"
)

// Layout wraps body in the document shell: head metadata, htmx, the driver
// script and stylesheet.
func Layout(site Site, meta PageMeta, csrf string, body templ.Component) templ.Component {
	return component(func(w *htmlWriter) {
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.printf(`<title>%s</title>`, meta.Title)
		if meta.Description != "" {
			w.printf(`<meta name="description" content="%s">`, meta.Description)
		}
		if csrf != "" {
			w.printf(`<meta name="csrf-token" content="%s">`, csrf)
		}
		if meta.URL != "" {
			w.printf(`<link rel="canonical" href="%s">`, meta.URL)
			w.printf(`<meta property="og:url" content="%s">`, meta.URL)
		}
		w.printf(`<meta property="og:type" content="website"><meta property="og:site_name" content="%s">`, site.Name)
		w.printf(`<meta property="og:title" content="%s">`, meta.Title)
		if meta.Description != "" {
			w.printf(`<meta property="og:description" content="%s">`, meta.Description)
		}
		if meta.Image != "" {
			w.printf(`<meta property="og:image" content="%s"><meta name="twitter:card" content="summary_large_image">`, meta.Image)
		}
		if meta.JSONLD != "" {
			// JSON-LD is produced by encoding/json, which escapes <, > and &.
			w.raw(`<script type="application/ld+json">` + meta.JSONLD + `</script>`)
		}
		w.raw(`<link rel="stylesheet" href="/public/folio.css">`)
		if site.HTMXSrc != "" {
			w.printf(`<script src="%s" defer></script>`, site.HTMXSrc)
		}
		w.raw(`<script src="/public/folio.js" defer></script>`)
		w.raw(`</head>`)
		if csrf != "" {
			w.printf(`<body hx-headers='{"X-CSRF-Token": %s}'>`, strconv.Quote(csrf))
		} else {
			w.raw(`<body>`)
		}
		w.render(body)
		w.raw(`</body></html>`)
	})
}
