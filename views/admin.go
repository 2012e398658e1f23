package views

import "github.com/a-h/templ"

// AdminLogin is the password form guarding the visit dashboard.
func AdminLogin(site Site, showError bool, csrf string) templ.Component {
	return Layout(site, PageMeta{Title: "Admin | " + site.Name}, csrf, component(func(w *htmlWriter) {
		w.raw(`<main class="admin"><h1>Admin</h1>`)
		if showError {
			w.raw(`<p class="error">Incorrect password.</p>`)
		}
		w.raw(`<form method="post" action="/admin/login/">`)
		w.printf(`<input type="hidden" name="_csrf" value="%s">`, csrf)
		w.raw(`<label for="password">Password</label><input id="password" type="password" name="password" required autofocus>`)
		w.raw(`<button class="btn primary" type="submit">Sign in</button></form></main>`)
	}))
}

// AdminDashboard lists the durable per-path visit counts.
func AdminDashboard(site Site, d Dashboard) templ.Component {
	return Layout(site, PageMeta{Title: "Visits | " + site.Name}, d.CSRF, component(func(w *htmlWriter) {
		w.raw(`<main class="admin"><header class="admin-header"><h1>Visits</h1>`)
		w.raw(`<form method="post" action="/admin/logout/">`)
		w.printf(`<input type="hidden" name="_csrf" value="%s"><button class="btn ghost" type="submit">Sign out</button></form></header>`, d.CSRF)
		if d.Message != "" {
			w.printf(`<p class="notice">%s</p>`, d.Message)
		}
		w.printf(`<p class="muted">Total visits: <strong>%s</strong></p>`, FormatCount(d.Total))
		if len(d.Rows) == 0 {
			w.raw(`<p class="muted">No visits recorded yet.</p>`)
		} else {
			w.raw(`<table class="visits"><thead><tr><th>Path</th><th>Visits</th><th></th></tr></thead><tbody>`)
			for _, r := range d.Rows {
				w.printf(`<tr><td>%s</td><td>%s</td>`, r.Path, FormatCount(r.Count))
				w.raw(`<td><form method="post" action="/admin/reset/">`)
				w.printf(`<input type="hidden" name="_csrf" value="%s"><input type="hidden" name="path" value="%s">`, d.CSRF, r.Path)
				w.raw(`<button class="btn ghost" type="submit">Reset</button></form></td></tr>`)
			}
			w.raw(`</tbody></table>`)
		}
		if !d.Fetched.IsZero() {
			w.printf(`<p class="muted">As of %s</p>`, d.Fetched.UTC().Format("2006-01-02 15:04:05 MST"))
		}
		w.raw(`</main>`)
	}))
}
