package folio

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harshilpatel/folio/viewstate"
)

// scrollTop is the pseudo target used by the back-to-top button.
const scrollTop = "top"

type sampleRequest struct {
	Sample viewstate.Sample    `json:"sample"`
	Layout viewstate.TabLayout `json:"layout,omitempty"`
	Target string              `json:"target,omitempty"`
}

type indicatorResponse struct {
	Width  float64 `json:"width"`
	Offset float64 `json:"offset"`
	Style  string  `json:"style"`
}

type sampleResponse struct {
	ScrollProgress float64             `json:"scroll_progress"`
	Scrolled       bool                `json:"scrolled"`
	ShowBackToTop  bool                `json:"show_back_to_top"`
	ActiveSection  viewstate.Section   `json:"active_section"`
	Revealed       []viewstate.Section `json:"revealed"`
	Indicator      indicatorResponse   `json:"indicator"`
	ScrollTo       *float64            `json:"scroll_to,omitempty"`
}

// handleSample applies one viewport observation posted by the driver script
// and answers with the derived state it should reflect.
func (a *App) handleSample(c echo.Context) error {
	if !a.sampleLimiter.Allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many samples"})
	}
	var req sampleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid sample"})
	}

	// Samples only write the fields they derive. The tab, menu and toast come
	// from the stored record, so a sample that overtakes a click keeps it.
	st := a.mutateViewState(c, func(s *viewstate.State) {
		s.Visible = true
		s.SetLayout(req.Layout)
		s.Observe(req.Sample)
	})

	ind := st.Indicator()
	resp := sampleResponse{
		ScrollProgress: st.ScrollProgress,
		Scrolled:       st.Scrolled,
		ShowBackToTop:  st.ShowBackToTop,
		ActiveSection:  st.ActiveSection,
		Revealed:       []viewstate.Section{},
		Indicator:      indicatorResponse{Width: ind.Width, Offset: ind.Offset, Style: ind.Style()},
	}
	for _, sec := range viewstate.Sections() {
		if st.IsRevealed(sec) {
			resp.Revealed = append(resp.Revealed, sec)
		}
	}
	if req.Target == scrollTop {
		zero := 0.0
		resp.ScrollTo = &zero
	} else if sec, ok := viewstate.ParseSection(req.Target); ok {
		if y, ok := req.Sample.ScrollTo(sec); ok {
			resp.ScrollTo = &y
		}
	}
	return c.JSON(http.StatusOK, resp)
}
