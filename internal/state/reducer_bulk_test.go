package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	fsutil "github.com/kk-code-lab/beniya/internal/fs"
)

func selectNames(state *AppState, names ...string) {
	for _, name := range names {
		state.toggleSelection(name)
	}
}

func TestDeleteReportsMissingItem(t *testing.T) {
	root := writeTree(t, "one.txt", "two.txt", "three.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)
	selectNames(state, "one.txt", "two.txt", "three.txt")

	if err := os.Remove(filepath.Join(root, "two.txt")); err != nil {
		t.Fatal(err)
	}

	result := reducer.deleteSelected(state, state.SelectedNames())
	reducer.finishBulk(state, bulkDelete, result)

	if result.Success != 2 {
		t.Fatalf("expected 2 successes, got %d", result.Success)
	}
	if len(result.Failures) != 1 || !strings.Contains(result.Failures[0], "two.txt") {
		t.Fatalf("expected one failure naming two.txt, got %v", result.Failures)
	}
	if len(state.Selection) != 0 {
		t.Fatalf("selection should be empty after a bulk delete, got %v", state.Selection)
	}
	if len(state.Dir.Entries) != 0 {
		t.Fatalf("expected the listing to be refreshed, got %v", names(state.Dir.Entries))
	}
	modal, ok := state.TopModal().(*BulkResultModal)
	if !ok {
		t.Fatalf("expected a result dialog, got %T", state.TopModal())
	}
	if modal.Tone != ToneError {
		t.Fatalf("partial failure should use the error tone, got %v", modal.Tone)
	}
}

func TestDeleteConfirmationFlow(t *testing.T) {
	tests := []struct {
		name    string
		answer  Key
		deleted bool
	}{
		{"yes", "y", true},
		{"upper yes", "Y", true},
		{"no", "n", false},
		{"quit", "q", false},
		{"escape", KeyEscape, false},
		{"enter denies", KeyEnter, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, "doomed.txt", "dir/nested.txt")
			reducer := newTestReducer(t, Deps{})
			state := loadState(t, reducer, root)
			selectNames(state, "doomed.txt", "dir")

			if !reducer.HandleKey(state, "x") {
				t.Fatalf("expected delete to open a confirmation")
			}
			if _, ok := state.TopModal().(*ConfirmModal); !ok {
				t.Fatalf("expected confirm dialog, got %T", state.TopModal())
			}
			if !state.TakeBell() {
				t.Fatalf("destructive confirmation should ring the bell")
			}

			reducer.HandleKey(state, tt.answer)

			_, err := os.Stat(filepath.Join(root, "dir"))
			if gone := os.IsNotExist(err); gone != tt.deleted {
				t.Fatalf("deleted=%v, want %v", gone, tt.deleted)
			}
			if tt.deleted {
				if _, ok := state.TopModal().(*BulkResultModal); !ok {
					t.Fatalf("expected result dialog, got %T", state.TopModal())
				}
				reducer.HandleKey(state, "z")
			}
			if state.TopModal() != nil {
				t.Fatalf("expected every dialog closed, got %T", state.TopModal())
			}
			if tt.deleted == (len(state.Selection) != 0) {
				t.Fatalf("selection after answer %q: %v", tt.answer, state.Selection)
			}
		})
	}
}

func TestConfirmIgnoresUnrelatedKeys(t *testing.T) {
	root := writeTree(t, "keep.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)
	selectNames(state, "keep.txt")

	pressKeys(reducer, state, "x", "j", "k", "1")
	if _, ok := state.TopModal().(*ConfirmModal); !ok {
		t.Fatalf("confirmation should stay open on unrelated keys")
	}
	if state.Cursor != 0 {
		t.Fatalf("keys must not leak to the list while a dialog is open")
	}
}

func TestDeleteWithoutSelectionIsNoop(t *testing.T) {
	root := writeTree(t, "keep.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)

	if reducer.HandleKey(state, "x") {
		t.Fatalf("delete without a selection should report no change")
	}
	if state.TopModal() != nil {
		t.Fatalf("no dialog expected")
	}
}

func TestMoveSkipsExistingDestination(t *testing.T) {
	root := writeTree(t, "src/a.txt", "src/b.txt", "src/sub/c.txt", "dest/b.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, filepath.Join(root, "src"))
	state.BaseDir = filepath.Join(root, "dest")
	selectNames(state, "a.txt", "b.txt", "sub")

	pressKeys(reducer, state, "m", "y")

	modal, ok := state.TopModal().(*BulkResultModal)
	if !ok {
		t.Fatalf("expected result dialog, got %T", state.TopModal())
	}
	if modal.Result.Success != 2 || len(modal.Result.Failures) != 1 {
		t.Fatalf("unexpected result %+v", modal.Result)
	}
	if !strings.Contains(modal.Result.Failures[0], "b.txt") {
		t.Fatalf("expected b.txt to be reported, got %v", modal.Result.Failures)
	}
	data, err := os.ReadFile(filepath.Join(root, "dest", "b.txt"))
	if err != nil || string(data) != "dest/b.txt" {
		t.Fatalf("existing destination must not be overwritten, got %q (%v)", data, err)
	}
	if _, err := os.Stat(filepath.Join(root, "dest", "sub", "c.txt")); err != nil {
		t.Fatalf("expected directory moved recursively: %v", err)
	}
	if got := names(state.Dir.Entries); !equalStrings(got, []string{"b.txt"}) {
		t.Fatalf("expected moved items gone from the listing, got %v", got)
	}
	if len(state.Selection) != 0 {
		t.Fatalf("selection should be cleared, got %v", state.Selection)
	}
}

func TestCopyKeepsSources(t *testing.T) {
	root := writeTree(t, "src/a.txt", "dest/")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, filepath.Join(root, "src"))
	state.BaseDir = filepath.Join(root, "dest")
	selectNames(state, "a.txt")

	pressKeys(reducer, state, "p", "y")

	modal, ok := state.TopModal().(*BulkResultModal)
	if !ok || !modal.Result.OK() || modal.Tone != ToneSuccess {
		t.Fatalf("expected a successful result dialog, got %T %+v", state.TopModal(), state.TopModal())
	}
	for _, path := range []string{filepath.Join(root, "src", "a.txt"), filepath.Join(root, "dest", "a.txt")} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
	}
}

func TestTransferWithoutBaseDirectory(t *testing.T) {
	root := writeTree(t, "a.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)
	selectNames(state, "a.txt")

	reducer.HandleKey(state, "m")

	modal, ok := state.TopModal().(*MessageModal)
	if !ok || modal.Lines[0] != "No base directory configured" {
		t.Fatalf("expected a missing base directory message, got %T", state.TopModal())
	}
	if !state.IsSelected("a.txt") {
		t.Fatalf("selection must be kept when nothing happened")
	}
}

type failingRemove struct {
	fsutil.Ops
}

func (failingRemove) Remove(string) error { return nil }

func TestDeleteVerifiesPathIsGone(t *testing.T) {
	root := writeTree(t, "sticky.txt")
	reducer := newTestReducer(t, Deps{Files: failingRemove{}})
	state := loadState(t, reducer, root)

	result := reducer.deleteSelected(state, []string{"sticky.txt"})

	if result.Success != 0 || len(result.Failures) != 1 {
		t.Fatalf("a remove that leaves the file behind must count as failure, got %+v", result)
	}
	if !strings.Contains(result.Failures[0], "still exists") {
		t.Fatalf("unexpected failure message %q", result.Failures[0])
	}
}

func TestDecomposedNamesRoundTrip(t *testing.T) {
	dirName := "\u30ab\u3099dir"
	fileName := "\u30ab\u3099.txt"
	root := writeTree(t, dirName+"/inner.txt", fileName, "other.txt", "dest/")
	reducer := newTestReducer(t, Deps{})

	state := loadState(t, reducer, root)
	for _, e := range state.Dir.Entries {
		if e.Path != filepath.Join(root, e.Name) {
			t.Fatalf("expected %q under %s, got path %q", e.Name, root, e.Path)
		}
	}
	pressKeys(reducer, state, "s", "\u30ac", KeyEnter)
	if got := names(state.ActiveEntries()); !equalStrings(got, []string{fileName, dirName}) &&
		!equalStrings(got, []string{dirName, fileName}) {
		t.Fatalf("expected a composed query to match decomposed names, got %q", got)
	}
	reducer.HandleKey(state, KeyEscape)

	state.Cursor = state.Dir.IndexOf(dirName)
	if !reducer.Reduce(state, EnterDirectoryAction{}) {
		t.Fatalf("expected to enter %q, status %q", dirName, state.StatusMessage)
	}
	if got := names(state.Dir.Entries); !equalStrings(got, []string{"inner.txt"}) {
		t.Fatalf("unexpected entries %v", got)
	}

	state = loadState(t, reducer, root)
	state.BaseDir = filepath.Join(root, "dest")
	selectNames(state, fileName)
	pressKeys(reducer, state, "m", "y")
	if _, err := os.Stat(filepath.Join(root, "dest", fileName)); err != nil {
		t.Fatalf("expected %q moved: %v", fileName, err)
	}

	state = loadState(t, reducer, root)
	selectNames(state, dirName)
	result := reducer.deleteSelected(state, state.SelectedNames())
	if result.Success != 1 || len(result.Failures) != 0 {
		t.Fatalf("expected %q deleted, got %+v", dirName, result)
	}
	if _, err := os.Stat(filepath.Join(root, dirName)); !os.IsNotExist(err) {
		t.Fatalf("expected %q gone, got %v", dirName, err)
	}
}
