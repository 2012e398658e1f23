package viewstate

import (
	"math"
	"testing"
)

func TestEntryIntersects(t *testing.T) {
	cases := []struct {
		name string
		rect Rect
		want bool
	}{
		{"fully inside", Rect{Top: 100, Bottom: 300}, true},
		{"below viewport", Rect{Top: 900, Bottom: 1300}, false},
		{"inside bottom margin only", Rect{Top: 760, Bottom: 1000}, false},
		{"exactly ten percent", Rect{Top: 700, Bottom: 1200}, true},
		{"under ten percent", Rect{Top: 720, Bottom: 1500}, false},
		{"scrolled past", Rect{Top: -500, Bottom: -10}, false},
		{"zero height", Rect{Top: 100, Bottom: 100}, false},
	}
	for _, tc := range cases {
		got := Entry{Target: SectionProjects, Rect: tc.rect}.Intersects(800)
		if got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRevealIsOneDirectional(t *testing.T) {
	s := New()
	s.Reveal(800, []Entry{{Target: SectionProjects, Rect: Rect{Top: 200, Bottom: 600}}})
	if !s.IsRevealed(SectionProjects) {
		t.Fatal("projects should be revealed")
	}
	s.Reveal(800, []Entry{{Target: SectionProjects, Rect: Rect{Top: -2000, Bottom: -1000}}})
	if !s.IsRevealed(SectionProjects) {
		t.Error("revealed section was hidden again")
	}
	if s.IsRevealed(SectionContact) {
		t.Error("contact should not be revealed")
	}
}

func TestObserveAppliesScrollAndReveal(t *testing.T) {
	s := New()
	s.Observe(Sample{
		ScrollTop:      600,
		DocumentHeight: 2600,
		ViewportHeight: 600,
		Sections: map[Section]Rect{
			SectionHome:     {Top: -600, Bottom: 0},
			SectionProjects: {Top: 0, Bottom: 900},
			SectionContact:  {Top: 900, Bottom: 1300},
		},
	})
	if s.ActiveSection != SectionProjects {
		t.Errorf("ActiveSection = %q", s.ActiveSection)
	}
	if math.Abs(s.ScrollProgress-30) > 1e-9 {
		t.Errorf("ScrollProgress = %v, want 30", s.ScrollProgress)
	}
	if !s.IsRevealed(SectionProjects) || s.IsRevealed(SectionContact) || s.IsRevealed(SectionHome) {
		t.Errorf("revealed = %v", s.Revealed)
	}
}

func TestScrollTarget(t *testing.T) {
	got, ok := ScrollTarget(500, 1200, true)
	if !ok || got != 1620 {
		t.Errorf("ScrollTarget = %v, %v; want 1620, true", got, ok)
	}
	if _, ok := ScrollTarget(500, 1200, false); ok {
		t.Error("unmounted element should be a no-op")
	}

	sample := Sample{ScrollTop: 100, Sections: map[Section]Rect{SectionContact: {Top: 380, Bottom: 900}}}
	if y, ok := sample.ScrollTo(SectionContact); !ok || y != 400 {
		t.Errorf("ScrollTo(contact) = %v, %v", y, ok)
	}
	if _, ok := sample.ScrollTo(SectionProjects); ok {
		t.Error("ScrollTo(missing) should report false")
	}
}

func TestIndicatorFor(t *testing.T) {
	layout := TabLayout{
		TabAbout:  {Left: 0, Width: 80},
		TabSkills: {Left: 84, Width: 72},
	}
	if got := IndicatorFor(TabSkills, layout); got != (Indicator{Width: 72, Offset: 84}) {
		t.Errorf("IndicatorFor(skills) = %+v", got)
	}
	if got := IndicatorFor(TabResearch, layout); got != (Indicator{}) {
		t.Errorf("IndicatorFor(unmeasured) = %+v", got)
	}
	if got := (Indicator{Width: 72, Offset: 84}).Style(); got != "width: 72px; transform: translateX(84px)" {
		t.Errorf("Style = %q", got)
	}
}

func TestSetLayoutDropsUnknownTabs(t *testing.T) {
	s := New()
	s.SetLayout(TabLayout{"bogus": {Width: 1}, TabAbout: {Width: 80}})
	if _, ok := s.Layout["bogus"]; ok {
		t.Error("unknown tab kept in layout")
	}
	if s.Indicator().Width != 80 {
		t.Errorf("indicator width = %v", s.Indicator().Width)
	}
	s.SetLayout(nil)
	if s.Indicator().Width != 80 {
		t.Error("empty layout should not clear metrics")
	}
}
