package viewstate

import "fmt"

// Metrics is the rendered box of a tab button relative to the tab strip.
type Metrics struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// TabLayout maps each tab to the box the client measured for it.
type TabLayout map[Tab]Metrics

// Indicator is the position of the underline below the active tab.
type Indicator struct {
	Width  float64
	Offset float64
}

// Style renders the indicator as inline CSS.
func (i Indicator) Style() string {
	return fmt.Sprintf("width: %gpx; transform: translateX(%gpx)", i.Width, i.Offset)
}

// IndicatorFor mirrors the active tab's box. Tabs without metrics get the
// zero indicator.
func IndicatorFor(tab Tab, layout TabLayout) Indicator {
	m, ok := layout[tab]
	if !ok {
		return Indicator{}
	}
	return Indicator{Width: m.Width, Offset: m.Left}
}

// SetLayout stores new tab metrics, as reported on mount and on resize.
// Unknown tab keys are dropped.
func (s *State) SetLayout(layout TabLayout) {
	if len(layout) == 0 {
		return
	}
	next := make(TabLayout, len(layout))
	for tab, m := range layout {
		if _, ok := ParseTab(string(tab)); ok {
			next[tab] = m
		}
	}
	s.Layout = next
}

// Indicator returns the indicator for the current tab.
func (s State) Indicator() Indicator {
	return IndicatorFor(s.ActiveTab, s.Layout)
}
