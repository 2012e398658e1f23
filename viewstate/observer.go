package viewstate

// Rect is a bounding box measured relative to the viewport top.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Height is Bottom - Top.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Sample is one scroll observation. Sections missing from the map are
// treated as not mounted.
type Sample struct {
	ScrollTop      float64          `json:"scroll_top"`
	DocumentHeight float64          `json:"document_height"`
	ViewportHeight float64          `json:"viewport_height"`
	Sections       map[Section]Rect `json:"sections,omitempty"`
}

// RecordScroll derives progress, thresholds and the active section from
// sample. The active section is left unchanged when no section straddles the
// probe line.
func (s *State) RecordScroll(sample Sample) {
	s.ScrollProgress = progress(sample)
	s.Scrolled = sample.ScrollTop > scrolledThreshold
	s.ShowBackToTop = sample.ScrollTop > backToTopThreshold
	if sec, ok := detectSection(sample.Sections); ok {
		s.ActiveSection = sec
	}
}

func progress(sample Sample) float64 {
	scrollable := sample.DocumentHeight - sample.ViewportHeight
	if scrollable <= 0 {
		return 0
	}
	p := sample.ScrollTop / scrollable * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

func detectSection(rects map[Section]Rect) (Section, bool) {
	for _, sec := range Sections() {
		r, ok := rects[sec]
		if !ok {
			continue
		}
		if r.Top <= sectionProbeOffset && r.Bottom >= sectionProbeOffset {
			return sec, true
		}
	}
	return "", false
}

// Entry is one intersection observation for a revealable element.
type Entry struct {
	Target Section `json:"target"`
	Rect   Rect    `json:"rect"`
}

// Intersects reports whether at least 10% of the entry is inside a viewport
// of viewportHeight whose bottom edge is pulled in by 50px.
func (e Entry) Intersects(viewportHeight float64) bool {
	h := e.Rect.Height()
	if h <= 0 {
		return false
	}
	bottom := viewportHeight - revealBottomMargin
	visible := min(e.Rect.Bottom, bottom) - max(e.Rect.Top, 0)
	if visible <= 0 {
		return false
	}
	return visible/h >= revealThreshold
}

// Reveal marks intersecting entries as revealed. Revealed sections are never
// hidden again.
func (s *State) Reveal(viewportHeight float64, entries []Entry) {
	for _, e := range entries {
		if !e.Intersects(viewportHeight) {
			continue
		}
		if s.Revealed == nil {
			s.Revealed = make(map[Section]bool)
		}
		s.Revealed[e.Target] = true
	}
}

// Entries converts the section rects of a sample into reveal entries.
func (sample Sample) Entries() []Entry {
	var entries []Entry
	for _, sec := range Sections() {
		if r, ok := sample.Sections[sec]; ok {
			entries = append(entries, Entry{Target: sec, Rect: r})
		}
	}
	return entries
}

// ScrollTarget is the document offset to smooth-scroll to so that an element
// at elementTop (viewport relative) lands below the fixed header. ok is false
// when the element is not mounted.
func ScrollTarget(elementTop, pageYOffset float64, mounted bool) (float64, bool) {
	if !mounted {
		return 0, false
	}
	return elementTop + pageYOffset - HeaderOffset, true
}

// ScrollTo resolves a section in sample to a scroll target.
func (sample Sample) ScrollTo(sec Section) (float64, bool) {
	r, ok := sample.Sections[sec]
	return ScrollTarget(r.Top, sample.ScrollTop, ok)
}

// Observe applies a full viewport sample: scroll tracking followed by reveal
// of every section the sample measured.
func (s *State) Observe(sample Sample) {
	s.RecordScroll(sample)
	s.Reveal(sample.ViewportHeight, sample.Entries())
}
