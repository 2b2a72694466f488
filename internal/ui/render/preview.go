package render

import (
	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/beniya/internal/fs"
	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/state"
	"github.com/kk-code-lab/beniya/internal/textutil"
)

const dividerRune = '│'

// PreviewSource supplies file content for the right pane.
type PreviewSource interface {
	Preview(path string) fsutil.Preview
}

// previewLines returns the displayable lines for entry, or nil for
// directories.
func (r *Renderer) previewLines(entry state.FileEntry) []string {
	if entry.IsDir() || r.preview == nil {
		return nil
	}
	p := r.preview.Preview(entry.Path)
	switch p.Kind {
	case fsutil.PreviewText:
		return p.Lines
	case fsutil.PreviewBinary:
		return []string{"(" + r.catalog.Msg(i18n.FileBinary) + ")", r.catalog.Msg(i18n.FileCannotView)}
	case fsutil.PreviewError:
		return []string{r.catalog.Msg(i18n.FileErrorPrefix) + ":", textutil.SanitizeTerminalText(p.Message)}
	default:
		return []string{"(" + r.catalog.Msg(i18n.FileCannotView) + ")"}
	}
}

// drawPreviewPanel draws the divider and the preview of the entry under the
// cursor. Row 0 holds the name, text starts on row 2.
func (r *Renderer) drawPreviewPanel(s *state.AppState, m layoutMetrics) {
	entry, ok := s.CurrentEntry()

	var wrapped []string
	if ok {
		// One column is used by the leading space.
		wrapped = textutil.WrapLines(r.previewLines(entry), m.previewWidth-1)
	}

	style := tcell.StyleDefault
	for i := 0; i < m.contentHeight; i++ {
		y := m.bodyY + i
		if m.dividerX < m.width {
			r.screen.SetContent(m.dividerX, y, dividerRune, nil, style)
		}
		if m.previewX >= m.width {
			continue
		}

		text := ""
		switch {
		case ok && i == 0:
			text = " " + textutil.SanitizeTerminalText(entry.Name) + " "
		case ok && i >= 2 && i-2 < len(wrapped):
			text = " " + wrapped[i-2]
		}
		r.drawText(m.previewX, y, m.previewWidth, textutil.TruncateToWidth(text, m.previewWidth), style)
		r.fill(m.previewX+m.previewWidth, y, m.width-m.previewX-m.previewWidth, style)
	}
}
