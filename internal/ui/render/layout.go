package render

import "github.com/kk-code-lab/beniya/internal/state"

const (
	headerRows = 2

	// Columns kept free between the preview text and the right edge.
	previewSafetyMargin = 2
)

// layoutMetrics describes where each part of the frame goes.
type layoutMetrics struct {
	width         int
	height        int
	contentHeight int
	bodyY         int

	leftWidth int
	listWidth int
	dividerX  int

	previewX     int
	previewWidth int

	footerY int
}

func computeLayout(s *state.AppState) layoutMetrics {
	w, h := s.ScreenWidth, s.ScreenHeight
	left := s.LeftWidth()
	m := layoutMetrics{
		width:         w,
		height:        h,
		contentHeight: s.ContentHeight(),
		bodyY:         headerRows,
		leftWidth:     left,
		listWidth:     max(min(left-1, w/2-1), 0),
		dividerX:      left,
		previewX:      left + 1,
		footerY:       h - 2,
	}
	m.previewWidth = max(min(w-m.previewX-previewSafetyMargin, s.RightWidth()-previewSafetyMargin), 0)
	return m
}

// listWindowStart returns the first entry index shown so the cursor sits in
// the middle of the list once it has scrolled past half a page.
func listWindowStart(cursor, contentHeight int) int {
	return max(cursor-contentHeight/2, 0)
}
