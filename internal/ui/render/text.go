package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/beniya/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// cachedRuneWidth reports how many cells the terminal advances for ru.
func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru < 128 {
		width := r.runeWidthCache[ru]
		if width == 0 && ru != 0 {
			actual := max(runewidth.RuneWidth(ru), 0)
			r.runeWidthCache[ru] = actual + 1
			return actual
		}
		return width - 1
	}

	if cached, ok := r.runeWidthWide[ru]; ok {
		return cached
	}
	width := max(runewidth.RuneWidth(ru), 0)
	r.runeWidthWide[ru] = width
	return width
}

// drawText writes text starting at (startX, y) and blank-fills up to width
// cells. Layout uses textutil widths; when the terminal advances fewer cells
// for a rune than the layout reserved, the gap is filled with spaces so
// columns stay where the layout put them.
func (r *Renderer) drawText(startX, y, width int, text string, style tcell.Style) int {
	limit := startX + width
	x := startX
	for _, ru := range text {
		cells := textutil.RuneWidth(ru)
		if x+cells > limit {
			break
		}
		actual := r.cachedRuneWidth(ru)
		if actual <= 0 {
			ru, actual = ' ', 1
		}
		if actual > cells {
			ru, actual = '?', 1
		}
		r.screen.SetContent(x, y, ru, nil, style)
		for i := actual; i < cells; i++ {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
		x += cells
	}
	r.fill(x, y, limit-x, style)
	return limit
}

func (r *Renderer) fill(startX, y, width int, style tcell.Style) {
	for x := startX; x < startX+width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
