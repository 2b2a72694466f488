package state

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/search"
	"github.com/sahilm/fuzzy"
)

const historyMenuRows = 9

// reportSearchFailure turns a tool error into a status message.
func (r *StateReducer) reportSearchFailure(state *AppState, tool string, err error) {
	if errors.Is(err, search.ErrToolUnavailable) {
		r.log.WithField("tool", tool).Info("tool unavailable")
		state.setStatus(ToneWarning, r.msg(i18n.UIToolMissing, "tool", tool))
		return
	}
	r.log.WithError(err).WithField("tool", tool).Warn("search failed")
	state.setStatus(ToneError, r.msg(i18n.SearchFailed, "error", err.Error()))
}

// findFile lets fzf pick a file below the current directory and opens it.
func (r *StateReducer) findFile(state *AppState) bool {
	if r.deps.Search == nil {
		return false
	}
	state.requestFullRedraw()
	path, err := r.deps.Search.FindFile(state.Dir.Path)
	if err != nil {
		r.reportSearchFailure(state, search.ToolFzf, err)
		return false
	}
	if path == "" || r.deps.Opener == nil {
		return false
	}
	if err := r.deps.Opener.Open(path); err != nil {
		r.reportOpenFailure(state, path, err)
		return false
	}
	return true
}

func (r *StateReducer) promptContentSearch(state *AppState) bool {
	if r.deps.Search == nil {
		return false
	}
	state.pushModal(&PromptModal{
		Label: r.msg(i18n.SearchPrompt),
		OnSubmit: func(r *StateReducer, s *AppState, query string) {
			r.contentSearch(s, query)
		},
	})
	return true
}

// contentSearch runs rga for query, lets fzf pick a line and opens the file
// at that line.
func (r *StateReducer) contentSearch(state *AppState, query string) bool {
	if query == "" {
		return false
	}
	state.requestFullRedraw()
	match, count, ok, err := r.deps.Search.ContentSearch(state.Dir.Path, query)
	if err != nil {
		r.reportSearchFailure(state, search.ToolRga, err)
		return false
	}
	if count == 0 {
		state.pushModal(&MessageModal{Lines: []string{r.msg(i18n.SearchNoMatches)}, Tone: ToneWarning})
		return false
	}
	if !ok || r.deps.Opener == nil {
		return false
	}
	if err := r.deps.Opener.OpenAt(match.Path, match.Line); err != nil {
		r.reportOpenFailure(state, match.Path, err)
		return false
	}
	return true
}

func (r *StateReducer) openHistoryMenu(state *AppState) bool {
	if r.deps.Search == nil {
		return false
	}
	entries, err := r.deps.Search.History()
	if err != nil {
		r.reportSearchFailure(state, search.ToolZoxide, err)
		return false
	}
	if len(entries) == 0 {
		state.pushModal(&MessageModal{Title: r.msg(i18n.HistoryTitle), Lines: []string{r.msg(i18n.HistoryEmpty)}})
		return false
	}
	state.pushModal(&HistoryMenuModal{Entries: entries})
	return true
}

// HistoryMenuModal lists directory history. Typing narrows the list with a
// fuzzy match, digits pick a visible row and Enter picks the first.
type HistoryMenuModal struct {
	Entries []search.HistoryEntry
	Query   string
}

type historySource []search.HistoryEntry

func (h historySource) String(i int) string { return h[i].Path }
func (h historySource) Len() int            { return len(h) }

// Visible returns the entries matching the query, best first.
func (m *HistoryMenuModal) Visible() []search.HistoryEntry {
	if m.Query == "" {
		return m.Entries
	}
	matches := fuzzy.FindFrom(m.Query, historySource(m.Entries))
	visible := make([]search.HistoryEntry, len(matches))
	for i, match := range matches {
		visible[i] = m.Entries[match.Index]
	}
	return visible
}

func (m *HistoryMenuModal) Window(c i18n.Catalog) FloatingWindow {
	lines := []string{"> " + m.Query + "_", ""}
	visible := m.Visible()
	for i, e := range visible {
		if i == historyMenuRows {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%.1f)", i+1, e.Path, e.Score))
	}
	lines = append(lines, "", c.Msg(i18n.HistoryHint))
	w := newWindow(c.Msg(i18n.HistoryTitle), lines, ToneNormal)
	w.Width = maxWindowWidth
	return w
}

func (m *HistoryMenuModal) HandleKey(r *StateReducer, s *AppState, key Key) bool {
	switch {
	case key == KeyEscape:
		return true
	case key == KeyEnter:
		return m.pick(r, s, 0)
	case key == KeyBackspace:
		m.Query = dropLastRune(m.Query)
		return false
	}
	if n, ok := bookmarkDigit(key); ok {
		return m.pick(r, s, n-1)
	}
	if key.Printable() {
		m.Query += string(key)
	}
	return false
}

func (m *HistoryMenuModal) pick(r *StateReducer, s *AppState, index int) bool {
	visible := m.Visible()
	if index < 0 || index >= len(visible) || index >= historyMenuRows {
		s.ringBell()
		return false
	}
	r.jumpTo(s, visible[index].Path)
	return true
}
