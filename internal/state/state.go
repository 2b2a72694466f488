package state

import (
	"sort"

	fsutil "github.com/kk-code-lab/beniya/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Tone selects the visual treatment of a status message or floating window.
type Tone int

const (
	ToneNormal Tone = iota
	ToneSuccess
	ToneWarning
	ToneError
)

// FilterState is one incremental filter session. Snapshot is captured when
// the session starts so typing never relists the directory.
type FilterState struct {
	Editing  bool
	Query    string
	Snapshot []FileEntry
	Filtered []FileEntry
}

// Engaged reports whether the filtered view drives the cursor.
func (f FilterState) Engaged() bool {
	return f.Editing || f.Query != ""
}

// AppState is the single source of truth
type AppState struct {
	// Navigation & filesystem
	Dir     DirectoryModel
	BaseDir string

	// Selection & viewport
	Cursor    int
	Selection map[string]struct{}

	// Filtering
	Filter FilterState

	// Floating windows, topmost last
	Modals []Modal

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Status line
	StatusMessage string
	StatusTone    Tone

	Quit bool

	fullRedraw bool
	bell       bool
}

// NewAppState builds the state for a freshly listed directory.
func NewAppState(dir DirectoryModel, baseDir string) *AppState {
	return &AppState{
		Dir:        dir,
		BaseDir:    baseDir,
		Selection:  make(map[string]struct{}),
		fullRedraw: true,
	}
}

// ===== GEOMETRY =====

// SetScreenSize records the terminal size. It is only called at refresh points.
func (s *AppState) SetScreenSize(width, height int) {
	s.ScreenWidth = width
	s.ScreenHeight = height
	s.fullRedraw = true
}

func (s *AppState) LeftWidth() int {
	return s.ScreenWidth / 2
}

func (s *AppState) RightWidth() int {
	return s.ScreenWidth - s.LeftWidth()
}

// ContentHeight is the number of body rows: two header lines and the footer
// margin are reserved.
func (s *AppState) ContentHeight() int {
	if h := s.ScreenHeight - 4; h > 0 {
		return h
	}
	return 0
}

// ===== ENTRIES & CURSOR =====

// ActiveEntries returns the entries currently driving the cursor and the list.
func (s *AppState) ActiveEntries() []FileEntry {
	if s.Filter.Engaged() {
		return s.Filter.Filtered
	}
	return s.Dir.Entries
}

// CurrentEntry returns the entry under the cursor.
func (s *AppState) CurrentEntry() (FileEntry, bool) {
	entries := s.ActiveEntries()
	if s.Cursor < 0 || s.Cursor >= len(entries) {
		return FileEntry{}, false
	}
	return entries[s.Cursor], true
}

func (s *AppState) clampCursor() {
	last := len(s.ActiveEntries()) - 1
	if s.Cursor > last {
		s.Cursor = last
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// ===== SELECTION =====

func (s *AppState) IsSelected(name string) bool {
	_, ok := s.Selection[name]
	return ok
}

func (s *AppState) toggleSelection(name string) {
	if s.Selection == nil {
		s.Selection = make(map[string]struct{})
	}
	if _, ok := s.Selection[name]; ok {
		delete(s.Selection, name)
		return
	}
	s.Selection[name] = struct{}{}
}

func (s *AppState) clearSelection() {
	s.Selection = make(map[string]struct{})
}

// SelectedNames returns the selection in listing order. Names that are no
// longer listed follow in lexical order.
func (s *AppState) SelectedNames() []string {
	names := make([]string, 0, len(s.Selection))
	seen := make(map[string]struct{}, len(s.Selection))
	for _, e := range s.Dir.Entries {
		if s.IsSelected(e.Name) {
			names = append(names, e.Name)
			seen[e.Name] = struct{}{}
		}
	}
	var rest []string
	for name := range s.Selection {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// ===== MODALS =====

// TopModal returns the floating window that currently owns input.
func (s *AppState) TopModal() Modal {
	if len(s.Modals) == 0 {
		return nil
	}
	return s.Modals[len(s.Modals)-1]
}

func (s *AppState) pushModal(m Modal) {
	s.Modals = append(s.Modals, m)
}

func (s *AppState) removeModal(m Modal) {
	for i := len(s.Modals) - 1; i >= 0; i-- {
		if s.Modals[i] == m {
			s.Modals = append(s.Modals[:i], s.Modals[i+1:]...)
			s.fullRedraw = true
			return
		}
	}
}

// ===== STATUS & FLAGS =====

func (s *AppState) setStatus(tone Tone, msg string) {
	s.StatusMessage = msg
	s.StatusTone = tone
}

func (s *AppState) clearStatus() {
	s.StatusMessage = ""
	s.StatusTone = ToneNormal
}

func (s *AppState) requestFullRedraw() {
	s.fullRedraw = true
}

func (s *AppState) ringBell() {
	s.bell = true
}

// TakeFullRedraw reports and resets the pending full-redraw request.
func (s *AppState) TakeFullRedraw() bool {
	v := s.fullRedraw
	s.fullRedraw = false
	return v
}

// TakeBell reports and resets the pending terminal bell.
func (s *AppState) TakeBell() bool {
	v := s.bell
	s.bell = false
	return v
}
