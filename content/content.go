// Package content holds the static career-path configurations that drive all
// path-specific text on the portfolio page.
package content

import "strings"

// CareerPath selects which configuration populates the page.
type CareerPath string

const (
	SoftwareEngineer CareerPath = "se"
	ProjectManager   CareerPath = "pm"
	AIEngineer       CareerPath = "aie"
)

// DefaultCareerPath is rendered at the site root.
const DefaultCareerPath = AIEngineer

// Hero is the top-of-page introduction block.
type Hero struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Meta     string `json:"meta"`
	CTA      string `json:"cta"`
}

// Experience is a single timeline entry in the experience tab.
type Experience struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Date         string   `json:"date"`
	Description  string   `json:"description,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// Link is an outbound link attached to a project card.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Project is a card in the projects tab.
type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Links        []Link `json:"links,omitempty"`
}

// Configuration is the static data record for one career path.
// Hero, About and Skills are always present; Experience and Projects are
// optional and fall back to fixed content when empty.
type Configuration struct {
	Title      string       `json:"title"`
	Eyebrow    string       `json:"eyebrow"`
	Hero       Hero         `json:"hero"`
	About      string       `json:"about"`
	Skills     []string     `json:"skills"`
	Focus      string       `json:"focus,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Projects   []Project    `json:"projects,omitempty"`
}

// ExperienceOrFallback returns the configured entries, or FallbackExperience.
func (c Configuration) ExperienceOrFallback() []Experience {
	if len(c.Experience) > 0 {
		return c.Experience
	}
	return FallbackExperience()
}

// ProjectsOrFallback returns the configured projects, or FallbackProjects.
func (c Configuration) ProjectsOrFallback() []Project {
	if len(c.Projects) > 0 {
		return c.Projects
	}
	return FallbackProjects()
}

// FirstName is the logo text shown in the navigation bar.
func (c Configuration) FirstName() string {
	name := strings.TrimSpace(c.Hero.Name)
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}

func (c Configuration) clone() Configuration {
	out := c
	out.Skills = append([]string(nil), c.Skills...)
	if c.Experience != nil {
		out.Experience = make([]Experience, len(c.Experience))
		for i, e := range c.Experience {
			e.Highlights = append([]string(nil), e.Highlights...)
			out.Experience[i] = e
		}
	}
	if c.Projects != nil {
		out.Projects = make([]Project, len(c.Projects))
		for i, p := range c.Projects {
			p.Links = append([]Link(nil), p.Links...)
			out.Projects[i] = p
		}
	}
	return out
}

// Library is an immutable set of configurations keyed by career path.
type Library struct {
	configs map[CareerPath]Configuration
}

// Default returns the compiled-in library.
func Default() *Library {
	return &Library{configs: defaultConfigs()}
}

// Get returns a copy of the configuration for key.
func (l *Library) Get(key CareerPath) (Configuration, bool) {
	cfg, ok := l.configs[key]
	if !ok {
		return Configuration{}, false
	}
	return cfg.clone(), true
}

// Keys returns the career paths in route order.
func (l *Library) Keys() []CareerPath {
	var keys []CareerPath
	for _, k := range []CareerPath{AIEngineer, SoftwareEngineer, ProjectManager} {
		if _, ok := l.configs[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Route pairs a registered URL path with the career path it renders.
type Route struct {
	Path   string
	Career CareerPath
}

// Routes lists the only paths that render the page.
func Routes() []Route {
	return []Route{
		{Path: "/", Career: DefaultCareerPath},
		{Path: "/aie", Career: AIEngineer},
		{Path: "/se", Career: SoftwareEngineer},
		{Path: "/pm", Career: ProjectManager},
	}
}

// ForPath resolves a request path to its career path. A single trailing
// slash is ignored; unregistered paths report false.
func ForPath(path string) (CareerPath, bool) {
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, r := range Routes() {
		if r.Path == path {
			return r.Career, true
		}
	}
	return "", false
}

// PathFor returns the canonical route for a career path.
func PathFor(key CareerPath) string {
	for _, r := range Routes() {
		if r.Career == key && r.Path != "/" {
			return r.Path + "/"
		}
	}
	return "/"
}
