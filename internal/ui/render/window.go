package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/beniya/internal/state"
	"github.com/kk-code-lab/beniya/internal/textutil"
)

const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTeeLeft     = '├'
	boxTeeRight    = '┤'
)

// windowRect is the screen area a floating window occupies.
type windowRect struct {
	x, y          int
	width, height int
}

// placeWindow centers a window on a w x h screen, shrinking it to fit.
func placeWindow(win state.FloatingWindow, w, h int) windowRect {
	width := min(win.Width, w)
	height := min(win.Height, h)
	return windowRect{
		x:      max((w-width)/2, 0),
		y:      max((h-height)/2, 0),
		width:  width,
		height: height,
	}
}

// DrawFloatingWindow draws win centered on the screen. Only the cells inside
// the window are touched.
func (r *Renderer) DrawFloatingWindow(win state.FloatingWindow) {
	w, h := r.screen.Size()
	rect := placeWindow(win, w, h)
	if rect.width < 2 || rect.height < 2 {
		return
	}

	border := tcell.StyleDefault.Foreground(r.theme.DialogBorder)
	titleStyle := tcell.StyleDefault.Foreground(r.theme.DialogTitle).Bold(true)
	content := tcell.StyleDefault.Foreground(r.theme.toneColor(win.Tone))
	inner := rect.width - 2
	right := rect.x + rect.width - 1
	bottom := rect.y + rect.height - 1

	r.drawHorizontalRule(rect.x, rect.y, rect.width, boxTopLeft, boxTopRight, border)

	row := rect.y + 1
	if win.Title != "" && row+1 < bottom {
		r.screen.SetContent(rect.x, row, boxVertical, nil, border)
		r.drawText(rect.x+1, row, inner, centerText(textutil.SanitizeTerminalText(win.Title), inner), titleStyle)
		r.screen.SetContent(right, row, boxVertical, nil, border)
		r.drawHorizontalRule(rect.x, row+1, rect.width, boxTeeLeft, boxTeeRight, border)
		row += 2
	}

	for i := 0; row < bottom; i, row = i+1, row+1 {
		line := ""
		if i < len(win.Lines) {
			line = textutil.SanitizeTerminalText(win.Lines[i])
		}
		r.screen.SetContent(rect.x, row, boxVertical, nil, border)
		r.drawText(rect.x+1, row, inner, " "+textutil.PadToWidth(line, max(inner-2, 0))+" ", content)
		r.screen.SetContent(right, row, boxVertical, nil, border)
	}

	r.drawHorizontalRule(rect.x, bottom, rect.width, boxBottomLeft, boxBottomRight, border)
	r.screen.Show()
}

// ClearFloatingWindow blanks the area win occupied and leaves the rest of
// the frame alone.
func (r *Renderer) ClearFloatingWindow(win state.FloatingWindow) {
	w, h := r.screen.Size()
	rect := placeWindow(win, w, h)
	for y := rect.y; y < rect.y+rect.height; y++ {
		r.fill(rect.x, y, rect.width, tcell.StyleDefault)
	}
	r.screen.Show()
}

func (r *Renderer) drawHorizontalRule(x, y, width int, left, right rune, style tcell.Style) {
	r.screen.SetContent(x, y, left, nil, style)
	for i := 1; i < width-1; i++ {
		r.screen.SetContent(x+i, y, boxHorizontal, nil, style)
	}
	r.screen.SetContent(x+width-1, y, right, nil, style)
}

func centerText(text string, width int) string {
	text = textutil.TruncateToWidth(text, width)
	pad := (width - textutil.DisplayWidth(text)) / 2
	return textutil.PadToWidth(textutil.PadLeftToWidth(text, textutil.DisplayWidth(text)+pad), width)
}
