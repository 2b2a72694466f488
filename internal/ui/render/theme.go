package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/beniya/internal/config"
	"github.com/kk-code-lab/beniya/internal/state"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Directory     tcell.Color
	File          tcell.Color
	Executable    tcell.Color
	Ruby          tcell.Color
	Script        tcell.Color
	Selected      tcell.Color
	SelectionMark tcell.Color
	Header        tcell.Color
	Status        tcell.Color
	DialogBorder  tcell.Color
	DialogTitle   tcell.Color
	Success       tcell.Color
	Warning       tcell.Color
	Error         tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return NewColorTheme(config.DefaultColors())
}

// NewColorTheme resolves configured color names ("blue", "#ff8800", ...).
// Unknown names fall back to the terminal default color.
func NewColorTheme(colors map[string]string) ColorTheme {
	get := func(role string) tcell.Color {
		return tcell.GetColor(strings.ToLower(strings.TrimSpace(colors[role])))
	}
	return ColorTheme{
		Directory:     get("directory"),
		File:          get("file"),
		Executable:    get("executable"),
		Ruby:          get("ruby"),
		Script:        get("script"),
		Selected:      get("selected"),
		SelectionMark: get("selection_mark"),
		Header:        get("header"),
		Status:        get("status"),
		DialogBorder:  get("dialog_border"),
		DialogTitle:   get("dialog_title"),
		Success:       get("success"),
		Warning:       get("warning"),
		Error:         get("error"),
	}
}

func (t ColorTheme) headerStyle() tcell.Style {
	return tcell.StyleDefault.Reverse(true)
}

func (t ColorTheme) statusStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Status).Foreground(tcell.ColorWhite)
}

func (t ColorTheme) cursorStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Selected).Foreground(tcell.ColorBlack)
}

func (t ColorTheme) selectedStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.SelectionMark).Foreground(tcell.ColorBlack)
}

func (t ColorTheme) toneColor(tone state.Tone) tcell.Color {
	switch tone {
	case state.ToneSuccess:
		return t.Success
	case state.ToneWarning:
		return t.Warning
	case state.ToneError:
		return t.Error
	default:
		return tcell.ColorDefault
	}
}
