package viewstate

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestNewState(t *testing.T) {
	s := New()
	if s.ActiveTab != TabAbout {
		t.Errorf("ActiveTab = %q, want about", s.ActiveTab)
	}
	if s.ActiveSection != SectionHome {
		t.Errorf("ActiveSection = %q, want home", s.ActiveSection)
	}
	if s.Visible || s.MenuOpen || s.Toast.Show {
		t.Errorf("unexpected flags on new state: %+v", s)
	}
}

func TestRecordScrollAtTop(t *testing.T) {
	s := New()
	s.RecordScroll(Sample{ScrollTop: 0, DocumentHeight: 2000, ViewportHeight: 1000})
	if s.ScrollProgress != 0 {
		t.Errorf("ScrollProgress = %v, want 0", s.ScrollProgress)
	}
	if s.Scrolled {
		t.Error("Scrolled should be false")
	}
	if s.ShowBackToTop {
		t.Error("ShowBackToTop should be false")
	}
}

func TestRecordScrollMidPage(t *testing.T) {
	s := New()
	s.RecordScroll(Sample{ScrollTop: 400, DocumentHeight: 1800, ViewportHeight: 800})
	if math.Abs(s.ScrollProgress-40) > 1e-9 {
		t.Errorf("ScrollProgress = %v, want 40", s.ScrollProgress)
	}
	if !s.Scrolled {
		t.Error("Scrolled should be true")
	}
	if !s.ShowBackToTop {
		t.Error("ShowBackToTop should be true")
	}
}

func TestRecordScrollThresholdsAreStrict(t *testing.T) {
	s := New()
	s.RecordScroll(Sample{ScrollTop: 50, DocumentHeight: 2000, ViewportHeight: 1000})
	if s.Scrolled {
		t.Error("Scrolled at exactly 50 should be false")
	}
	s.RecordScroll(Sample{ScrollTop: 300, DocumentHeight: 2000, ViewportHeight: 1000})
	if !s.Scrolled || s.ShowBackToTop {
		t.Errorf("at 300: Scrolled=%v ShowBackToTop=%v", s.Scrolled, s.ShowBackToTop)
	}
}

func TestRecordScrollNonScrollablePage(t *testing.T) {
	s := New()
	s.RecordScroll(Sample{ScrollTop: 0, DocumentHeight: 700, ViewportHeight: 900})
	if s.ScrollProgress != 0 {
		t.Errorf("ScrollProgress = %v, want 0", s.ScrollProgress)
	}
}

func TestRecordScrollClampsProgress(t *testing.T) {
	s := New()
	s.RecordScroll(Sample{ScrollTop: 1500, DocumentHeight: 2000, ViewportHeight: 1000})
	if s.ScrollProgress != 100 {
		t.Errorf("ScrollProgress = %v, want 100", s.ScrollProgress)
	}
}

func TestSectionDetectionPriority(t *testing.T) {
	s := New()
	// Both projects and contact straddle the probe line; projects wins.
	s.RecordScroll(Sample{
		ScrollTop:      900,
		DocumentHeight: 3000,
		ViewportHeight: 1000,
		Sections: map[Section]Rect{
			SectionHome:     {Top: -900, Bottom: -100},
			SectionProjects: {Top: 0, Bottom: 100},
			SectionContact:  {Top: 100, Bottom: 600},
		},
	})
	if s.ActiveSection != SectionProjects {
		t.Errorf("ActiveSection = %q, want projects", s.ActiveSection)
	}
}

func TestSectionDetectionIsSticky(t *testing.T) {
	s := New()
	s.RecordScroll(Sample{Sections: map[Section]Rect{SectionContact: {Top: 50, Bottom: 500}}})
	if s.ActiveSection != SectionContact {
		t.Fatalf("ActiveSection = %q, want contact", s.ActiveSection)
	}
	// Nothing straddles the probe: keep the previous section.
	s.RecordScroll(Sample{Sections: map[Section]Rect{SectionHome: {Top: 200, Bottom: 400}}})
	if s.ActiveSection != SectionContact {
		t.Errorf("ActiveSection = %q, want sticky contact", s.ActiveSection)
	}
	// Missing elements are skipped without error.
	s.RecordScroll(Sample{})
	if s.ActiveSection != SectionContact {
		t.Errorf("ActiveSection = %q after empty sample", s.ActiveSection)
	}
}

func TestMountRunsEagerly(t *testing.T) {
	s := New()
	s.Mount(Sample{ScrollTop: 400, DocumentHeight: 1400, ViewportHeight: 400})
	if !s.Visible {
		t.Error("Visible should be true after mount")
	}
	if !s.ShowBackToTop {
		t.Error("mount should apply the initial sample")
	}
}

func TestSetActiveTabAnyToAny(t *testing.T) {
	s := New()
	for _, from := range Tabs() {
		for _, to := range Tabs() {
			s.SetActiveTab(from)
			s.SetActiveTab(to)
			if s.ActiveTab != to {
				t.Fatalf("%s -> %s: got %s", from, to, s.ActiveTab)
			}
		}
	}
}

func TestSelectPortfolio(t *testing.T) {
	s := New()
	s.ToggleMenu()
	sec := s.SelectPortfolio()
	if sec != SectionProjects {
		t.Errorf("scroll target = %q, want projects", sec)
	}
	if s.ActiveTab != TabProjects {
		t.Errorf("ActiveTab = %q, want projects", s.ActiveTab)
	}
	if s.MenuOpen {
		t.Error("menu should close")
	}
}

func TestToggleMenu(t *testing.T) {
	s := New()
	s.ToggleMenu()
	if !s.MenuOpen {
		t.Fatal("menu should open")
	}
	s.ToggleMenu()
	if s.MenuOpen {
		t.Fatal("menu should close")
	}
}

func TestParseTab(t *testing.T) {
	if len(Tabs()) != 7 {
		t.Fatalf("tabs = %d, want 7", len(Tabs()))
	}
	for _, tab := range Tabs() {
		got, ok := ParseTab(string(tab))
		if !ok || got != tab {
			t.Errorf("ParseTab(%q) = %q, %v", tab, got, ok)
		}
	}
	if _, ok := ParseTab("blog"); ok {
		t.Error("ParseTab(blog) should fail")
	}
}

func TestCopyEmailToast(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := New()
	s.CopyEmail(now)

	toast := s.ToastAt(now)
	if !toast.Show || toast.Message != "Email copied to clipboard!" {
		t.Fatalf("toast = %+v", toast)
	}
	if toast := s.ToastAt(now.Add(2999 * time.Millisecond)); !toast.Show {
		t.Error("toast should still show before the delay")
	}
	if toast := s.ToastAt(now.Add(3 * time.Second)); toast.Show {
		t.Error("toast should be gone after the delay")
	}
	// ToastAt does not mutate; ExpireToast does.
	if !s.Toast.Show {
		t.Error("ToastAt should not clear stored toast")
	}
	s.ExpireToast(now.Add(4 * time.Second))
	if s.Toast.Show || s.Toast.Message != "" {
		t.Errorf("toast after expire = %+v", s.Toast)
	}
}

func TestStateRoundTripsAsJSON(t *testing.T) {
	s := New()
	s.SetActiveTab(TabResearch)
	s.Reveal(800, []Entry{{Target: SectionContact, Rect: Rect{Top: 100, Bottom: 500}}})
	s.SetLayout(TabLayout{TabResearch: {Left: 300, Width: 90}})

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got State
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ActiveTab != TabResearch || !got.IsRevealed(SectionContact) {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.Indicator() != (Indicator{Width: 90, Offset: 300}) {
		t.Errorf("indicator = %+v", got.Indicator())
	}
}
