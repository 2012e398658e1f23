package views

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/harshilpatel/folio/content"
	"github.com/harshilpatel/folio/share"
	"github.com/harshilpatel/folio/viewstate"
)

// Portfolio renders the full page for a career path.
func Portfolio(p Page) templ.Component {
	return Layout(p.Site, p.Meta, p.CSRF, PortfolioBody(p))
}

// PortfolioBody is the page without the document shell.
func PortfolioBody(p Page) templ.Component {
	return component(func(w *htmlWriter) {
		w.printf(`<div class="%s" data-career="%s">`, classes("app", when(p.State.Visible, "visible")), string(p.Career))
		w.render(Toast(p.State.Toast, p.Now))
		w.render(BackToTop(p.State.ShowBackToTop))
		w.render(Nav(p))
		w.raw(`<main>`)
		w.render(Hero(p))
		w.printf(`<section class="%s" id="projects">`, sectionClass("section compact", p.State, viewstate.SectionProjects))
		w.render(Tabs(p))
		w.raw(`</section></main>`)
		w.render(Footer(p))
		w.raw(`</div>`)
	})
}

func sectionClass(base string, s viewstate.State, sec viewstate.Section) string {
	return classes(base, "reveal", when(s.Visible, "visible"), when(s.IsRevealed(sec), "revealed"))
}

// Nav is the fixed navigation bar. It is swapped as a unit when the menu
// toggles.
func Nav(p Page) templ.Component {
	return nav(p, false)
}

// NavSwap is Nav marked for an htmx out-of-band swap, sent alongside another
// fragment when the menu closes as a side effect.
func NavSwap(p Page) templ.Component {
	return nav(p, true)
}

func nav(p Page, oob bool) templ.Component {
	return component(func(w *htmlWriter) {
		s := p.State
		oobAttr := ""
		if oob {
			oobAttr = ` hx-swap-oob="outerHTML"`
		}
		w.printf(`<nav id="site-nav" class="%s" style="--scroll-progress: %s%%"`+oobAttr+`>`,
			classes("navbar", when(s.Scrolled, "scrolled")), fmt.Sprintf("%.2f", s.ScrollProgress))
		w.raw(`<div class="nav-container">`)
		w.printf(`<a href="#home" class="nav-logo" data-scroll-to="home"><span class="logo-text">%s</span></a>`, p.Config.FirstName())
		w.printf(`<button class="mobile-menu-toggle" aria-label="Toggle menu" aria-expanded="%t" hx-post="%s" hx-target="#site-nav" hx-swap="outerHTML">`, s.MenuOpen, ViewPath("menu", p.Career))
		for range 3 {
			w.printf(`<span class="%s"></span>`, when(s.MenuOpen, "open"))
		}
		w.raw(`</button>`)
		w.printf(`<div class="%s">`, classes("nav-links", when(s.MenuOpen, "mobile-open")))
		w.printf(`<a href="#home" class="%s" data-scroll-to="home" data-close-menu>Home</a>`, when(s.ActiveSection == viewstate.SectionHome, "active"))
		w.printf(`<a href="?section=projects#projects" class="%s" hx-post="%s" hx-target="#resume-tabs" hx-swap="outerHTML">Portfolio</a>`,
			when(s.ActiveSection == viewstate.SectionProjects, "active"), ViewPath("portfolio", p.Career))
		w.printf(`<a href="#contact" class="%s" data-scroll-to="contact" data-close-menu>Contact</a>`, when(s.ActiveSection == viewstate.SectionContact, "active"))
		w.raw(`</div></div></nav>`)
	})
}

// Hero is the introduction block at the top of the page.
func Hero(p Page) templ.Component {
	return component(func(w *htmlWriter) {
		c := p.Config
		w.printf(`<section class="%s" id="home">`, classes("hero", when(p.State.Visible, "visible")))
		w.raw(`<div class="waves" aria-hidden="true">`)
		for i, d := range wavePaths {
			w.printf(`<svg class="wave wave%d" viewBox="0 0 1200 120" preserveAspectRatio="none"><path d="%s"></path></svg>`, i+1, d)
		}
		w.raw(`</div><div class="hero-content">`)
		w.printf(`<p class="eyebrow">%s</p>`, c.Eyebrow)
		w.printf(`<h1>Hi, I&#39;m <span class="highlight">%s</span></h1>`, c.Hero.Name)
		w.printf(`<p class="hero-subtitle">%s</p>`, c.Hero.Subtitle)
		w.raw(`<div class="hero-actions">`)
		w.printf(`<a href="?section=projects#projects" class="btn primary" hx-post="%s" hx-target="#resume-tabs" hx-swap="outerHTML">%s</a>`, ViewPath("portfolio", p.Career), c.Hero.CTA)
		w.raw(`<a href="#contact" class="btn ghost" data-scroll-to="contact">Contact Me</a>`)
		w.raw(`</div></div>`)
		w.printf(`<div class="hero-card"><ul class="hero-meta"><li><span>Role</span><strong>%s</strong></li></ul></div>`, c.Hero.Meta)
		w.raw(`</section>`)
	})
}

var wavePaths = []string{
	"M0,40 C150,90 350,0 600,40 C850,80 1050,20 1200,40 L1200,120 L0,120 Z",
	"M0,60 C200,10 400,110 600,70 C800,30 1000,90 1200,60 L1200,120 L0,120 Z",
	"M0,80 C180,120 420,40 600,80 C780,120 1020,40 1200,80 L1200,120 L0,120 Z",
}

// Tabs is the tab strip plus the active panel. It is the htmx swap target
// for every tab change.
func Tabs(p Page) templ.Component {
	return component(func(w *htmlWriter) {
		active := p.State.ActiveTab
		w.raw(`<div id="resume-tabs" class="tabs-wrapper">`)
		w.raw(`<div class="tabs" aria-label="Resume sections" role="tablist">`)
		for _, tab := range viewstate.Tabs() {
			on := tab == active
			w.printf(`<button type="button" role="tab" id="tab-%s" data-tab="%s" aria-selected="%t" aria-controls="tab-panel" class="%s" hx-post="%s" hx-target="#resume-tabs" hx-swap="outerHTML">%s</button>`,
				string(tab), string(tab), on, classes("tab", when(on, "active")), TabPath(tab, p.Career), tab.Label())
		}
		w.printf(`<span class="tab-indicator" style="%s"></span>`, p.State.Indicator().Style())
		w.raw(`</div>`)
		w.printf(`<div class="tab-panel" id="tab-panel" role="tabpanel" aria-labelledby="tab-%s">`, string(active))
		w.render(Panel(active, p.Config))
		w.raw(`</div></div>`)
	})
}

// Panel renders the content of one tab.
func Panel(tab viewstate.Tab, c content.Configuration) templ.Component {
	return component(func(w *htmlWriter) {
		w.printf(`<h2>%s</h2>`, tab.Label())
		switch tab {
		case viewstate.TabAbout:
			w.printf(`<p>%s</p>`, c.About)
			if c.Focus != "" {
				w.printf(`<h3>Current Focus</h3><p class="muted">%s</p>`, c.Focus)
			}
		case viewstate.TabSkills:
			w.raw(`<div class="pill-grid">`)
			for _, s := range c.Skills {
				w.printf(`<span class="pill">%s</span>`, s)
			}
			w.raw(`</div>`)
		case viewstate.TabEducation:
			timeline(w, content.Education())
		case viewstate.TabExperience:
			experience(w, c.ExperienceOrFallback())
		case viewstate.TabProjects:
			projects(w, c.ProjectsOrFallback())
		case viewstate.TabResearch:
			timeline(w, content.Research())
		case viewstate.TabCertification:
			timeline(w, content.Certifications())
		}
	})
}

func timeline(w *htmlWriter, entries []content.Entry) {
	w.raw(`<div class="timeline">`)
	for _, e := range entries {
		w.raw(`<article class="timeline-item"><div class="timeline-header"><div>`)
		w.printf(`<h3>%s</h3>`, e.Title)
		if e.Subtitle != "" {
			w.printf(`<p class="muted">%s</p>`, e.Subtitle)
		}
		w.raw(`</div>`)
		if e.Aside != "" {
			w.printf(`<p class="muted">%s</p>`, e.Aside)
		}
		w.raw(`</div>`)
		if e.Description != "" {
			w.printf(`<p>%s</p>`, e.Description)
		}
		bullets(w, e.Points)
		w.raw(`</article>`)
	}
	w.raw(`</div>`)
}

func experience(w *htmlWriter, jobs []content.Experience) {
	w.raw(`<div class="timeline">`)
	for _, job := range jobs {
		w.raw(`<article class="timeline-item"><div class="timeline-header"><div>`)
		w.printf(`<h3>%s</h3><p class="muted">%s</p></div><p class="muted">%s</p></div>`, job.Title, job.Organization, job.Date)
		if job.Description != "" {
			w.printf(`<p>%s</p>`, job.Description)
		}
		bullets(w, job.Highlights)
		w.raw(`</article>`)
	}
	w.raw(`</div>`)
}

func projects(w *htmlWriter, cards []content.Project) {
	w.raw(`<div class="grid">`)
	for i, pr := range cards {
		w.printf(`<article class="card" style="animation-delay: %ss">`, fmt.Sprintf("%.1f", float64(i)*0.1))
		w.printf(`<h3>%s</h3><p class="muted">%s</p><p class="tagline">%s</p>`, pr.Title, pr.Description, pr.Technologies)
		if len(pr.Links) > 0 {
			w.raw(`<div class="card-links">`)
			for _, l := range pr.Links {
				w.printf(`<a href="%s" target="_blank" rel="noreferrer">%s</a>`, templ.URL(l.URL), l.Label)
			}
			w.raw(`</div>`)
		}
		w.raw(`</article>`)
	}
	w.raw(`</div>`)
}

func bullets(w *htmlWriter, items []string) {
	if len(items) == 0 {
		return
	}
	w.raw(`<ul>`)
	for _, it := range items {
		w.printf(`<li>%s</li>`, it)
	}
	w.raw(`</ul>`)
}

// Footer is the contact section with social and share links.
func Footer(p Page) templ.Component {
	return component(func(w *htmlWriter) {
		ct := p.Contact
		w.printf(`<footer class="%s" id="contact">`, sectionClass("footer", p.State, viewstate.SectionContact))
		w.raw(`<div class="footer-content">`)

		w.raw(`<div class="footer-section"><h3>Get in Touch</h3>`)
		w.raw(`<p class="footer-text">Interested in collaborating or discussing opportunities? Let&#39;s connect!</p>`)
		w.printf(`<div class="footer-email-container"><a href="%s" class="footer-email">%s</a>`, templ.URL("mailto:"+ct.Email), ct.Email)
		w.printf(`<button class="copy-email-btn" aria-label="Copy email" title="Copy email to clipboard" data-copy="%s" hx-post="/contact/copy/" hx-target="#toast" hx-swap="outerHTML">%s</button>`, ct.Email, iconCopy)
		w.raw(`</div></div>`)

		w.raw(`<div class="footer-section"><h3>Connect</h3><div class="social-links">`)
		for _, s := range []struct{ title, url, icon string }{
			{"LinkedIn", ct.LinkedIn, iconLinkedIn},
			{"GitHub", ct.GitHub, iconGitHub},
			{"Website", ct.Website, iconGlobe},
		} {
			w.printf(`<a href="%s" target="_blank" rel="noreferrer" title="%s" class="social-icon">`, templ.URL(s.url), s.title)
			w.raw(s.icon + `</a>`)
		}
		w.raw(`</div></div>`)

		w.raw(`<div class="footer-section"><h3>Share</h3><div class="share-buttons">`)
		for _, b := range shareButtons {
			popup := share.PopupFeatures
			if b.platform == share.Instagram {
				popup = ""
			}
			w.printf(`<a href="%s" class="share-btn share-%s" title="%s" aria-label="%s" target="_blank" rel="noopener" data-popup="%s">`,
				SharePath(string(b.platform), p.Career), string(b.platform), b.title, b.title, popup)
			w.raw(b.icon + `</a>`)
		}
		w.raw(`</div></div>`)

		w.raw(`</div><div class="footer-divider"></div>`)
		w.printf(`<div class="footer-bottom"><p class="muted">© %d %s. Built with Go, echo and htmx.</p></div>`, p.Now.Year(), content.Owner)
		w.raw(`</footer>`)
	})
}

var shareButtons = []struct {
	platform share.Platform
	title    string
	icon     string
}{
	{share.LinkedIn, "Share on LinkedIn", iconLinkedIn},
	{share.WhatsApp, "Share on WhatsApp", iconChat},
	{share.SMS, "Share via Text", iconChat},
	{share.Instagram, "Follow on Instagram", iconInstagram},
}
