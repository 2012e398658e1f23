package views

import (
	"time"

	"github.com/a-h/templ"

	"github.com/harshilpatel/folio/viewstate"
)

// Toast renders the notification slot. A visible toast asks htmx to poll
// /contact/toast/ once its deadline passes, which swaps in the empty slot.
func Toast(t viewstate.Toast, now time.Time) templ.Component {
	return component(func(w *htmlWriter) {
		if !t.Show || !now.Before(t.ExpiresAt) {
			w.raw(`<div id="toast" aria-live="polite"></div>`)
			return
		}
		delay := t.ExpiresAt.Sub(now).Milliseconds()
		w.printf(`<div id="toast" aria-live="polite" hx-get="/contact/toast/" hx-trigger="load delay:%dms" hx-swap="outerHTML">`, delay)
		w.printf(`<div class="toast">%s<span>%s</span></div></div>`, iconCheck, t.Message)
	})
}

// BackToTop is the floating scroll-to-top button, shown past the threshold.
func BackToTop(show bool) templ.Component {
	return component(func(w *htmlWriter) {
		hidden := ""
		if !show {
			hidden = " hidden"
		}
		w.raw(`<button id="back-to-top" class="back-to-top" aria-label="Back to top" data-scroll-to="top"` + hidden + `>`)
		w.raw(iconArrowUp + `</button>`)
	})
}

// NotFound is the 404 page.
func NotFound(site Site) templ.Component {
	return Layout(site, PageMeta{Title: "Page not found | " + site.Name}, "", component(func(w *htmlWriter) {
		w.raw(`<main class="error-page"><h1>404</h1><p class="muted">This page does not exist.</p>`)
		w.raw(`<a class="btn primary" href="/">Back to portfolio</a></main>`)
	}))
}

// ServerError is the 500 page.
func ServerError(site Site) templ.Component {
	return Layout(site, PageMeta{Title: "Something went wrong | " + site.Name}, "", component(func(w *htmlWriter) {
		w.raw(`<main class="error-page"><h1>500</h1><p class="muted">Something went wrong. Please try again later.</p>`)
		w.raw(`<a class="btn primary" href="/">Back to portfolio</a></main>`)
	}))
}

const (
	iconCheck     = `<svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M20 6L9 17l-5-5"></path></svg>`
	iconArrowUp   = `<svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M18 15l-6-6-6 6"></path></svg>`
	iconCopy      = `<svg width="18" height="18" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><rect x="9" y="9" width="13" height="13" rx="2" ry="2"></rect><path d="M5 15H4a2 2 0 0 1-2-2V4a2 2 0 0 1 2-2h9a2 2 0 0 1 2 2v1"></path></svg>`
	iconGlobe     = `<svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><circle cx="12" cy="12" r="10"></circle><path d="M2 12h20M12 2a15.3 15.3 0 0 1 4 10 15.3 15.3 0 0 1-4 10 15.3 15.3 0 0 1-4-10 15.3 15.3 0 0 1 4-10z"></path></svg>`
	iconChat      = `<svg width="18" height="18" viewBox="0 0 24 24" fill="currentColor"><path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"></path></svg>`
	iconInstagram = `<svg width="18" height="18" viewBox="0 0 24 24"><rect x="2" y="2" width="20" height="20" rx="5" ry="5" fill="none" stroke="currentColor" stroke-width="2"></rect><circle cx="12" cy="12" r="3" fill="none" stroke="currentColor" stroke-width="2"></circle><circle cx="17.5" cy="6.5" r="1.5" fill="currentColor"></circle></svg>`
	iconLinkedIn  = `<svg width="20" height="20" viewBox="0 0 24 24" fill="currentColor"><path d="M20.447 20.452h-3.554v-5.569c0-1.328-.475-2.236-1.986-2.236-1.081 0-1.722.722-2.004 1.418-.103.249-.129.597-.129.946v5.441h-3.554s.047-8.814 0-9.752h3.554v1.381c.43-.664 1.202-1.609 2.923-1.609 2.136 0 3.74 1.393 3.74 4.385v5.596zM5.337 8.855c-1.144 0-1.915-.762-1.915-1.715 0-.953.77-1.715 1.958-1.715 1.187 0 1.914.762 1.932 1.715 0 .953-.745 1.715-1.975 1.715zm1.946 11.597H3.392V9.1h3.891v11.352z"></path></svg>`
	iconGitHub    = `<svg width="20" height="20" viewBox="0 0 24 24" fill="currentColor"><path d="M12 0c-6.626 0-12 5.373-12 12 0 5.302 3.438 9.8 8.207 11.387.599.111.793-.261.793-.577v-2.234c-3.338.726-4.033-1.416-4.033-1.416-.546-1.387-1.333-1.756-1.333-1.756-1.089-.745.083-.729.083-.729 1.205.084 1.839 1.237 1.839 1.237 1.07 1.834 2.807 1.304 3.492.997.107-.775.418-1.305.762-1.604-2.665-.305-5.467-1.334-5.467-5.931 0-1.311.469-2.381 1.236-3.221-.124-.303-.535-1.524.117-3.176 0 0 1.008-.322 3.301 1.23.957-.266 1.983-.399 3.003-.404 1.02.005 2.047.138 3.006.404 2.291-1.552 3.297-1.23 3.297-1.23.653 1.653.242 2.874.118 3.176.77.84 1.235 1.911 1.235 3.221 0 4.609-2.807 5.624-5.479 5.921.43.372.823 1.102.823 2.222v3.293c0 .319.192.694.801.576 4.765-1.589 8.199-6.086 8.199-11.386 0-6.627-5.373-12-12-12z"></path></svg>`
)
