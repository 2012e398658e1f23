package views

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/harshilpatel/folio/content"
	"github.com/harshilpatel/folio/viewstate"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func testPage(t *testing.T, key content.CareerPath) Page {
	t.Helper()
	cfg, ok := content.Default().Get(key)
	if !ok {
		t.Fatalf("no configuration for %q", key)
	}
	return Page{
		Site:    Site{Name: "Folio", URL: "https://example.com", HTMXSrc: "https://unpkg.com/htmx.org@2.0.4"},
		Meta:    PageMeta{Title: cfg.Title, URL: "https://example.com/se/"},
		Career:  key,
		Config:  cfg,
		Contact: content.ContactInfo(),
		State:   viewstate.New(),
		Now:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		CSRF:    "tok",
	}
}

func TestPortfolioRendersHeroAndDefaultTab(t *testing.T) {
	p := testPage(t, content.SoftwareEngineer)
	html := render(t, Portfolio(p))

	for _, want := range []string{
		"Hi, I&#39;m <span class=\"highlight\">" + p.Config.Hero.Name,
		p.Config.Eyebrow,
		`<span class="logo-text">` + p.Config.FirstName(),
		`id="tab-about" data-tab="about" aria-selected="true"`,
		`<h2>About</h2>`,
		`id="contact"`,
		`© 2026 Harshil Patel`,
		`<meta name="csrf-token" content="tok">`,
		`src="https://unpkg.com/htmx.org@2.0.4"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestTabsExactlyOneSelected(t *testing.T) {
	p := testPage(t, content.ProjectManager)
	for _, tab := range viewstate.Tabs() {
		p.State.SetActiveTab(tab)
		html := render(t, Tabs(p))
		if n := strings.Count(html, `aria-selected="true"`); n != 1 {
			t.Errorf("tab %s: %d selected tabs, want 1", tab, n)
		}
		if !strings.Contains(html, `data-tab="`+string(tab)+`" aria-selected="true"`) {
			t.Errorf("tab %s not marked selected", tab)
		}
		if n := strings.Count(html, `role="tabpanel"`); n != 1 {
			t.Errorf("tab %s: %d panels, want 1", tab, n)
		}
		if !strings.Contains(html, "<h2>"+tab.Label()+"</h2>") {
			t.Errorf("tab %s: panel heading missing", tab)
		}
	}
}

func TestExperienceFallback(t *testing.T) {
	p := testPage(t, content.AIEngineer)
	html := render(t, Panel(viewstate.TabExperience, p.Config))
	if !strings.Contains(html, "Research Intern") {
		t.Error("aie experience should show the fallback internship")
	}
	html = render(t, Panel(viewstate.TabProjects, p.Config))
	if strings.Count(html, `class="card"`) != 3 {
		t.Error("aie projects should show the three fallback cards")
	}
}

func TestConfiguredProjectsRendered(t *testing.T) {
	p := testPage(t, content.SoftwareEngineer)
	html := render(t, Panel(viewstate.TabProjects, p.Config))
	for _, pr := range p.Config.Projects {
		if !strings.Contains(html, templ.EscapeString(pr.Title)) {
			t.Errorf("missing project %q", pr.Title)
		}
	}
}

func TestAboutShowsFocus(t *testing.T) {
	cfg := content.Configuration{About: "About me", Focus: "Shipping things"}
	html := render(t, Panel(viewstate.TabAbout, cfg))
	if !strings.Contains(html, "Current Focus") || !strings.Contains(html, "Shipping things") {
		t.Errorf("focus missing: %s", html)
	}
}

func TestContentIsEscaped(t *testing.T) {
	cfg := content.Configuration{Skills: []string{"<script>alert(1)</script>"}}
	html := render(t, Panel(viewstate.TabSkills, cfg))
	if strings.Contains(html, "<script>") {
		t.Errorf("skill not escaped: %s", html)
	}
}

func TestNavActiveSectionAndMenu(t *testing.T) {
	p := testPage(t, content.SoftwareEngineer)
	p.State.ActiveSection = viewstate.SectionContact
	p.State.ToggleMenu()
	html := render(t, Nav(p))
	if !strings.Contains(html, `href="#contact" class="active"`) {
		t.Error("contact link should be active")
	}
	if !strings.Contains(html, "nav-links mobile-open") {
		t.Error("menu should be open")
	}
	if strings.Count(html, `class="active"`) != 1 {
		t.Error("exactly one nav link should be active")
	}
}

func TestToastLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var s viewstate.State
	s.CopyEmail(now)

	html := render(t, Toast(s.Toast, now.Add(time.Second)))
	if !strings.Contains(html, viewstate.EmailCopiedMessage) {
		t.Error("toast should be visible one second after copying")
	}
	if !strings.Contains(html, `load delay:2000ms`) {
		t.Errorf("toast should poll after the remaining 2s: %s", html)
	}

	html = render(t, Toast(s.Toast, now.Add(viewstate.ToastDuration)))
	if strings.Contains(html, viewstate.EmailCopiedMessage) {
		t.Error("toast should be gone once expired")
	}
}

func TestFooterShareLinks(t *testing.T) {
	p := testPage(t, content.ProjectManager)
	html := render(t, Footer(p))
	if !strings.Contains(html, `href="/share/linkedin?career=pm"`) {
		t.Errorf("linkedin share link missing: %s", html)
	}
	if !strings.Contains(html, "mailto:harshilcpatel9944@gmail.com") {
		t.Error("email link missing")
	}
}

func TestAdminDashboard(t *testing.T) {
	site := Site{Name: "Folio"}
	html := render(t, AdminDashboard(site, Dashboard{
		Rows:  []PageRow{{Path: "/se", Count: 1234}},
		Total: 1234,
		CSRF:  "tok",
	}))
	if !strings.Contains(html, "1,234") {
		t.Errorf("counts should be formatted: %s", html)
	}
	empty := render(t, AdminDashboard(site, Dashboard{}))
	if !strings.Contains(empty, "No visits recorded yet.") {
		t.Error("empty dashboard message missing")
	}
}

func TestErrorPages(t *testing.T) {
	site := Site{Name: "Folio"}
	if html := render(t, NotFound(site)); !strings.Contains(html, "404") {
		t.Error("not found page missing 404")
	}
	if html := render(t, ServerError(site)); !strings.Contains(html, "500") {
		t.Error("server error page missing 500")
	}
}
