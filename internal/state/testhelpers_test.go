package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/beniya/internal/bookmark"
	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/search"
)

type openCall struct {
	path string
	line int
}

type fakeOpener struct {
	opened   []openCall
	revealed []string
	err      error
}

func (f *fakeOpener) Open(path string) error {
	f.opened = append(f.opened, openCall{path: path})
	return f.err
}

func (f *fakeOpener) OpenAt(path string, line int) error {
	f.opened = append(f.opened, openCall{path: path, line: line})
	return f.err
}

func (f *fakeOpener) Reveal(dir string) error {
	f.revealed = append(f.revealed, dir)
	return f.err
}

type fakeSearch struct {
	found     string
	match     search.Match
	matches   int
	picked    bool
	history   []search.HistoryEntry
	err       error
	queries   []string
	findCalls int
}

func (f *fakeSearch) FindFile(string) (string, error) {
	f.findCalls++
	return f.found, f.err
}

func (f *fakeSearch) ContentSearch(_ string, query string) (search.Match, int, bool, error) {
	f.queries = append(f.queries, query)
	return f.match, f.matches, f.picked, f.err
}

func (f *fakeSearch) History() ([]search.HistoryEntry, error) {
	return f.history, f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

// writeTree creates files (names ending in "/" become directories) under a
// fresh temporary directory.
func writeTree(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		if name[len(name)-1] == '/' {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func newTestReducer(t *testing.T, deps Deps) *StateReducer {
	t.Helper()
	deps.Catalog = i18n.NewCatalog(i18n.English)
	return NewStateReducer(deps)
}

func loadState(t *testing.T, r *StateReducer, dir string) *AppState {
	t.Helper()
	model, err := LoadDirectory(r.deps.List, dir)
	if err != nil {
		t.Fatalf("LoadDirectory(%s): %v", dir, err)
	}
	state := NewAppState(model, "")
	state.SetScreenSize(80, 24)
	return state
}

func entriesNamed(names ...string) []FileEntry {
	entries := make([]FileEntry, len(names))
	for i, name := range names {
		entries[i] = FileEntry{Name: name, Path: "/test/" + name}
	}
	return entries
}

func names(entries []FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func pressKeys(r *StateReducer, s *AppState, keys ...Key) {
	for _, k := range keys {
		r.HandleKey(s, k)
	}
}

func typeText(r *StateReducer, s *AppState, text string) {
	for _, ch := range text {
		r.HandleKey(s, Key(string(ch)))
	}
}

func newBookmarkStore(t *testing.T) *bookmark.Store {
	t.Helper()
	return bookmark.NewStore(filepath.Join(t.TempDir(), "bookmarks.json"))
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
