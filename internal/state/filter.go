package state

import (
	"strings"

	fsutil "github.com/kk-code-lab/beniya/internal/fs"
)

// startFilter resumes editing an existing query, or opens a new session over
// the entries currently shown.
func (r *StateReducer) startFilter(state *AppState) {
	if state.Filter.Query != "" {
		state.Filter.Editing = true
		if state.Filter.Snapshot == nil {
			state.Filter.Snapshot = state.Dir.Entries
		}
		r.applyFilter(state)
		return
	}
	snapshot := append([]FileEntry(nil), state.ActiveEntries()...)
	state.Filter = FilterState{
		Editing:  true,
		Snapshot: snapshot,
		Filtered: append([]FileEntry(nil), snapshot...),
	}
	state.Cursor = 0
}

// applyFilter recomputes Filtered from Snapshot and reclamps the cursor.
func (r *StateReducer) applyFilter(state *AppState) {
	state.Filter.Filtered = FilterEntries(state.Filter.Snapshot, state.Filter.Query)
	state.clampCursor()
}

func (r *StateReducer) clearFilter(state *AppState) {
	state.Filter = FilterState{}
	state.Cursor = 0
}

// FilterEntries keeps the entries whose name contains query, ignoring case and
// Unicode normalization, in their original order.
func FilterEntries(entries []FileEntry, query string) []FileEntry {
	if query == "" {
		return append([]FileEntry(nil), entries...)
	}
	needle := strings.ToLower(fsutil.NormalizeName(query))
	filtered := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(fsutil.NormalizeName(e.Name)), needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
