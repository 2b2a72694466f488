package render

import (
	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/beniya/internal/fs"
	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/state"
	"github.com/kk-code-lab/beniya/internal/textutil"
)

const (
	selectionMark   = "✓ "
	noSelectionMark = "  "

	// Room reserved in a list row for the mark, icon and size field.
	listRowChrome = 12
)

// Renderer handles all UI rendering
type Renderer struct {
	screen         tcell.Screen
	theme          ColorTheme
	catalog        i18n.Catalog
	preview        PreviewSource
	runeWidthCache [128]int // ASCII cache (0-127), stored as width+1
	runeWidthWide  map[rune]int

	lastWindow *state.FloatingWindow
}

// NewRenderer creates a new renderer. preview may be nil, in which case the
// right pane only shows entry names.
func NewRenderer(screen tcell.Screen, theme ColorTheme, catalog i18n.Catalog, preview PreviewSource) *Renderer {
	return &Renderer{
		screen:        screen,
		theme:         theme,
		catalog:       catalog,
		preview:       preview,
		runeWidthWide: make(map[rune]int),
	}
}

// Render draws the entire UI based on state. Every cell of the frame is
// rewritten, so the screen is only cleared when the caller asks for a full
// redraw.
func (r *Renderer) Render(s *state.AppState) {
	if s.ScreenWidth == 0 || s.ScreenHeight == 0 {
		s.SetScreenSize(r.screen.Size())
	}
	m := computeLayout(s)

	if r.lastWindow != nil {
		r.ClearFloatingWindow(*r.lastWindow)
		r.lastWindow = nil
	}

	r.drawHeader(s, m)
	r.drawStatusLine(s, m)
	r.drawFileList(s, m)
	r.drawPreviewPanel(s, m)
	r.drawFooter(s, m)

	if modal := s.TopModal(); modal != nil {
		win := modal.Window(r.catalog)
		r.DrawFloatingWindow(win)
		r.lastWindow = &win
	}

	r.screen.Show()
}

// drawHeader renders the reverse-video title bar
func (r *Renderer) drawHeader(s *state.AppState, m layoutMetrics) {
	if m.height < 1 {
		return
	}
	text := textutil.SanitizeTerminalText(buildHeaderText(r.catalog, s, m.width))
	r.drawText(0, 0, m.width, textutil.PadToWidth(text, m.width), r.theme.headerStyle())
}

// drawStatusLine renders the base directory banner on the second row
func (r *Renderer) drawStatusLine(s *state.AppState, m layoutMetrics) {
	if m.height < 2 {
		return
	}
	text := textutil.SanitizeTerminalText(buildStatusText(r.catalog, s, m.width))
	r.drawText(0, 1, m.width, textutil.PadToWidth(text, m.width), r.theme.statusStyle())
}

// drawFileList renders the windowed entry list in the left pane.
func (r *Renderer) drawFileList(s *state.AppState, m layoutMetrics) {
	entries := s.ActiveEntries()
	start := listWindowStart(s.Cursor, m.contentHeight)

	for i := 0; i < m.contentHeight; i++ {
		y := m.bodyY + i
		idx := start + i
		if idx >= len(entries) {
			r.fill(0, y, m.leftWidth, tcell.StyleDefault)
			continue
		}

		entry := entries[idx]
		selected := s.IsSelected(entry.Name)
		style := r.entryStyle(entry)
		switch {
		case idx == s.Cursor:
			style = r.theme.cursorStyle()
		case selected:
			style = r.theme.selectedStyle()
		}

		r.drawText(0, y, m.listWidth, formatEntryLine(entry, selected, m.listWidth), style)
		r.fill(m.listWidth, y, m.leftWidth-m.listWidth, tcell.StyleDefault)
	}
}

// formatEntryLine lays out "mark icon name ... size" in exactly width cells.
func formatEntryLine(entry state.FileEntry, selected bool, width int) string {
	if width <= 0 {
		return ""
	}
	mark := noSelectionMark
	if selected {
		mark = selectionMark
	}

	name := textutil.SanitizeTerminalText(entry.Name)
	if maxName := width - listRowChrome; maxName > 0 {
		name = textutil.TruncateToWidth(name, maxName)
	}

	line := mark + entryIcon(entry) + " " + name
	if avail := width - sizeFieldWidth; avail > 0 {
		line = textutil.PadToWidth(line, avail) + formatSize(entry.Size)
	}
	return textutil.PadToWidth(line, width)
}

func entryIcon(entry state.FileEntry) string {
	switch entry.Kind {
	case fsutil.KindDirectory:
		return "📁"
	case fsutil.KindExecutable:
		return "⚡"
	}
	switch entry.Ext() {
	case ".rb":
		return "💎"
	case ".js", ".ts":
		return "📜"
	default:
		return "📄"
	}
}

func (r *Renderer) entryStyle(entry state.FileEntry) tcell.Style {
	color := r.theme.File
	switch entry.Kind {
	case fsutil.KindDirectory:
		color = r.theme.Directory
	case fsutil.KindExecutable:
		color = r.theme.Executable
	default:
		switch entry.Ext() {
		case ".rb":
			color = r.theme.Ruby
		case ".js", ".ts":
			color = r.theme.Script
		}
	}
	return tcell.StyleDefault.Foreground(color)
}
