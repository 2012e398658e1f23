// Package viewstate models the interactive state of the portfolio page as an
// explicit, serializable record. Every change goes through a named operation
// so the scroll and section logic can be exercised with synthetic samples.
package viewstate

import "time"

// Tab identifies one of the mutually exclusive panels in the resume section.
type Tab string

const (
	TabAbout         Tab = "about"
	TabSkills        Tab = "skills"
	TabEducation     Tab = "education"
	TabExperience    Tab = "experience"
	TabProjects      Tab = "projects"
	TabResearch      Tab = "research"
	TabCertification Tab = "certification"
)

// Tabs returns every tab in display order.
func Tabs() []Tab {
	return []Tab{TabAbout, TabSkills, TabEducation, TabExperience, TabProjects, TabResearch, TabCertification}
}

// ParseTab reports whether s names a tab.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Label is the button text for the tab.
func (t Tab) Label() string {
	switch t {
	case TabAbout:
		return "About"
	case TabSkills:
		return "Skills"
	case TabEducation:
		return "Education"
	case TabExperience:
		return "Experience"
	case TabProjects:
		return "Projects"
	case TabResearch:
		return "Research"
	case TabCertification:
		return "Certification"
	}
	return string(t)
}

// Section is one of the page-level anchors tracked for nav highlighting.
type Section string

const (
	SectionHome     Section = "home"
	SectionProjects Section = "projects"
	SectionContact  Section = "contact"
)

// Sections returns the page sections in detection priority order.
func Sections() []Section {
	return []Section{SectionHome, SectionProjects, SectionContact}
}

// ParseSection reports whether s names a section.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections() {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

const (
	scrolledThreshold  = 50
	backToTopThreshold = 300
	sectionProbeOffset = 100
	revealThreshold    = 0.1
	revealBottomMargin = 50
)

// HeaderOffset is the height of the fixed navigation bar in pixels.
const HeaderOffset = 80

// ToastDuration is how long the copied toast stays up.
const ToastDuration = 3 * time.Second

// EmailCopiedMessage is the toast text shown after copying the email.
const EmailCopiedMessage = "Email copied to clipboard!"

// Toast is the transient notification shown after copying the email.
type Toast struct {
	Show      bool      `json:"show"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// State is the per-page-view UI state.
type State struct {
	ActiveTab      Tab              `json:"active_tab"`
	ActiveSection  Section          `json:"active_section"`
	ScrollProgress float64          `json:"scroll_progress"`
	Scrolled       bool             `json:"scrolled"`
	Visible        bool             `json:"visible"`
	MenuOpen       bool             `json:"menu_open"`
	ShowBackToTop  bool             `json:"show_back_to_top"`
	Toast          Toast            `json:"toast"`
	Revealed       map[Section]bool `json:"revealed,omitempty"`
	Layout         TabLayout        `json:"layout,omitempty"`
}

// New returns the state a freshly created page view starts with.
func New() State {
	return State{
		ActiveTab:     TabAbout,
		ActiveSection: SectionHome,
	}
}

// Mount marks the page visible and applies the initial sample eagerly so the
// first render already reflects the scroll position.
func (s *State) Mount(initial Sample) {
	s.Visible = true
	s.RecordScroll(initial)
}

// SetActiveTab selects tab. Any tab is reachable from any other.
func (s *State) SetActiveTab(tab Tab) {
	s.ActiveTab = tab
}

// SelectPortfolio is the nav alias that shows the projects tab. It returns the
// section the client should scroll to.
func (s *State) SelectPortfolio() Section {
	s.ActiveTab = TabProjects
	s.MenuOpen = false
	return SectionProjects
}

// ToggleMenu flips the mobile menu.
func (s *State) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// CloseMenu closes the mobile menu, as every nav link does.
func (s *State) CloseMenu() {
	s.MenuOpen = false
}

// CopyEmail shows the copied toast until ToastDuration after now. The
// clipboard write itself is not observed.
func (s *State) CopyEmail(now time.Time) {
	s.Toast = Toast{
		Show:      true,
		Message:   EmailCopiedMessage,
		ExpiresAt: now.Add(ToastDuration),
	}
}

// ExpireToast clears the toast once its deadline has passed.
func (s *State) ExpireToast(now time.Time) {
	if s.Toast.Show && !now.Before(s.Toast.ExpiresAt) {
		s.Toast = Toast{}
	}
}

// ToastAt returns the toast as it should be rendered at now.
func (s State) ToastAt(now time.Time) Toast {
	s.ExpireToast(now)
	return s.Toast
}

// IsRevealed reports whether sec has been revealed.
func (s State) IsRevealed(sec Section) bool {
	return s.Revealed[sec]
}
