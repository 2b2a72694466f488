package state

import (
	"strings"
	"unicode/utf8"

	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/textutil"
)

const (
	minWindowWidth = 30
	maxWindowWidth = 80
)

// FloatingWindow is what the renderer needs to draw a modal: a centered box
// with an optional title and padded content rows.
type FloatingWindow struct {
	Title  string
	Lines  []string
	Width  int
	Height int
	Tone   Tone
}

// Modal is a floating window that owns input until it closes. Modals form a
// stack on AppState; the top one receives every key.
type Modal interface {
	Window(c i18n.Catalog) FloatingWindow
	// HandleKey consumes one key and reports whether the modal is finished.
	// A modal may push follow-up modals before it returns done.
	HandleKey(r *StateReducer, s *AppState, key Key) (done bool)
}

// newWindow sizes a window to fit its title and lines, within the screen.
func newWindow(title string, lines []string, tone Tone) FloatingWindow {
	width := textutil.DisplayWidth(title) + 4
	for _, line := range lines {
		if w := textutil.DisplayWidth(line) + 4; w > width {
			width = w
		}
	}
	width = max(minWindowWidth, min(width, maxWindowWidth))
	height := len(lines) + 2
	if title != "" {
		height += 2
	}
	return FloatingWindow{Title: title, Lines: lines, Width: width, Height: height, Tone: tone}
}

// ===== CONFIRM =====

// ConfirmModal asks a yes/no question. Only y/Y accepts; every other key,
// Enter included, declines.
type ConfirmModal struct {
	Title    string
	Lines    []string
	Tone     Tone
	OnAccept func(r *StateReducer, s *AppState)
}

func (m *ConfirmModal) Window(c i18n.Catalog) FloatingWindow {
	lines := append(append([]string(nil), m.Lines...), "", c.Msg(i18n.UIConfirmHint))
	return newWindow(m.Title, lines, m.Tone)
}

func (m *ConfirmModal) HandleKey(r *StateReducer, s *AppState, key Key) bool {
	switch key {
	case "y", "Y":
		if m.OnAccept != nil {
			m.OnAccept(r, s)
		}
		return true
	case "n", "N", "q", KeyEscape, KeyEnter:
		return true
	}
	return false
}

// ===== MESSAGE =====

// MessageModal shows text until any key is pressed.
type MessageModal struct {
	Title   string
	Lines   []string
	Tone    Tone
	OnClose func(r *StateReducer, s *AppState)
}

func (m *MessageModal) Window(c i18n.Catalog) FloatingWindow {
	lines := append(append([]string(nil), m.Lines...), "", c.Msg(i18n.UIPressAnyKey))
	return newWindow(m.Title, lines, m.Tone)
}

func (m *MessageModal) HandleKey(r *StateReducer, s *AppState, _ Key) bool {
	if m.OnClose != nil {
		m.OnClose(r, s)
	}
	return true
}

// ===== PROMPT =====

// PromptModal reads one line of text. Enter submits, Escape cancels.
type PromptModal struct {
	Title    string
	Lines    []string
	Label    string
	Value    string
	OnSubmit func(r *StateReducer, s *AppState, value string)
}

func (m *PromptModal) Window(_ i18n.Catalog) FloatingWindow {
	lines := append([]string(nil), m.Lines...)
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	return newWindow(m.Title, append(lines, m.Label+m.Value+"_"), ToneNormal)
}

func (m *PromptModal) HandleKey(r *StateReducer, s *AppState, key Key) bool {
	switch {
	case key == KeyEscape:
		return true
	case key == KeyEnter:
		if m.OnSubmit != nil {
			m.OnSubmit(r, s, strings.TrimSpace(m.Value))
		}
		return true
	case key == KeyBackspace:
		m.Value = dropLastRune(m.Value)
	case key.Printable():
		m.Value += string(key)
	}
	return false
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
