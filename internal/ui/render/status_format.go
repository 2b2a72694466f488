package render

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/state"
	"github.com/kk-code-lab/beniya/internal/textutil"
)

const (
	sizeFieldWidth = 6
	abbreviation   = "..."
	edgeMargin     = 2
)

var sizeUnits = []string{"K", "M", "G", "T", "P", "E"}

// formatSize renders a byte count right-justified in a fixed field. Empty
// files show a blank field.
func formatSize(size int64) string {
	if size <= 0 {
		return strings.Repeat(" ", sizeFieldWidth)
	}
	if size < 1024 {
		return textutil.PadLeftToWidth(fmt.Sprintf("%dB", size), sizeFieldWidth)
	}
	value := float64(size) / 1024
	unit := 0
	// Values that would print as 1000.0 or more overflow the field.
	for value >= 999.95 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return textutil.PadLeftToWidth(fmt.Sprintf("%.1f%s", value, sizeUnits[unit]), sizeFieldWidth)
}

// buildHeaderText returns the title line. When it does not fit, the path is
// shortened from the left and the filter indicator is kept whole.
func buildHeaderText(c i18n.Catalog, s *state.AppState, width int) string {
	filter := ""
	if s.Filter.Engaged() {
		filter = c.Msg(i18n.UIFilter, "query", s.Filter.Query)
	}
	header := c.Msg(i18n.UITitle, "path", s.Dir.Path) + filter
	if textutil.DisplayWidth(header) <= width-edgeMargin {
		return header
	}
	frame := textutil.DisplayWidth(c.Msg(i18n.UITitle, "path", abbreviation)) + textutil.DisplayWidth(filter)
	tail := textutil.TrimLeftToWidth(s.Dir.Path, width-edgeMargin-frame)
	return c.Msg(i18n.UITitle, "path", abbreviation+tail) + filter
}

// buildStatusText returns the base directory banner with the selection
// count, shortened the same way as the header.
func buildStatusText(c i18n.Catalog, s *state.AppState, width int) string {
	count := ""
	if n := len(s.Selection); n > 0 {
		count = c.Msg(i18n.UISelectedCount, "count", n)
	}
	base := s.BaseDir
	text := c.Msg(i18n.UIBaseDirectory, "path", base) + count
	if textutil.DisplayWidth(text) <= width-edgeMargin {
		return text
	}
	frame := textutil.DisplayWidth(c.Msg(i18n.UIBaseDirectory, "path", abbreviation)) + textutil.DisplayWidth(count)
	tail := textutil.TrimLeftToWidth(base, width-edgeMargin-frame)
	return c.Msg(i18n.UIBaseDirectory, "path", abbreviation+tail) + count
}
