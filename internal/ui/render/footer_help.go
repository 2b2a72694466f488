package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/state"
	"github.com/kk-code-lab/beniya/internal/textutil"
)

// buildFooterHelpText picks the footer line: a pending status message wins,
// then the filter hints, then the full key help or its short variant when the
// full one does not fit.
func buildFooterHelpText(c i18n.Catalog, s *state.AppState, width int) string {
	switch {
	case s.StatusMessage != "":
		return s.StatusMessage
	case s.Filter.Editing:
		return c.Msg(i18n.HelpFilter)
	case s.Filter.Engaged():
		return c.Msg(i18n.HelpFiltered)
	}
	if full := c.Msg(i18n.HelpFull); textutil.DisplayWidth(full) <= width {
		return full
	}
	return c.Msg(i18n.HelpShort)
}

func (r *Renderer) footerStyle(s *state.AppState) tcell.Style {
	if s.StatusMessage != "" && s.StatusTone != state.ToneNormal {
		return tcell.StyleDefault.Foreground(r.theme.toneColor(s.StatusTone)).Bold(true)
	}
	return r.theme.headerStyle()
}

func (r *Renderer) drawFooter(s *state.AppState, m layoutMetrics) {
	if m.footerY < m.bodyY {
		return
	}
	text := textutil.SanitizeTerminalText(buildFooterHelpText(r.catalog, s, m.width))
	r.drawText(0, m.footerY, m.width, textutil.PadToWidth(text, m.width), r.footerStyle(s))
	if last := m.height - 1; last > m.footerY {
		r.fill(0, last, m.width, tcell.StyleDefault)
	}
}
