package state

import (
	"os"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/beniya/internal/fs"
)

// ===== NAVIGATION TESTS =====

func TestMoveDown(t *testing.T) {
	state := &AppState{Dir: DirectoryModel{Path: "/test", Entries: entriesNamed("file1.txt", "file2.txt", "file3.txt")}}

	reducer := newTestReducer(t, Deps{})
	if !reducer.Reduce(state, MoveDownAction{}) {
		t.Fatalf("expected move down to report a change")
	}
	if state.Cursor != 1 {
		t.Errorf("Expected cursor=1, got %d", state.Cursor)
	}
}

func TestMoveDownAtEnd(t *testing.T) {
	state := &AppState{Dir: DirectoryModel{Path: "/test", Entries: entriesNamed("file1.txt", "file2.txt")}, Cursor: 1}

	reducer := newTestReducer(t, Deps{})
	if reducer.Reduce(state, MoveDownAction{}) {
		t.Errorf("move down at the last entry should not report a change")
	}
	if state.Cursor != 1 {
		t.Errorf("Should stay at 1, got %d", state.Cursor)
	}
}

func TestMoveUpAtStart(t *testing.T) {
	state := &AppState{Dir: DirectoryModel{Path: "/test", Entries: entriesNamed("file1.txt", "file2.txt")}}

	reducer := newTestReducer(t, Deps{})
	reducer.Reduce(state, MoveUpAction{})
	if state.Cursor != 0 {
		t.Errorf("Should stay at 0, got %d", state.Cursor)
	}
}

func TestMoveTopAndBottom(t *testing.T) {
	state := &AppState{Dir: DirectoryModel{Path: "/test", Entries: entriesNamed("a", "b", "c", "d")}, Cursor: 1}
	reducer := newTestReducer(t, Deps{})

	reducer.HandleKey(state, "G")
	if state.Cursor != 3 {
		t.Fatalf("expected cursor at last entry, got %d", state.Cursor)
	}
	reducer.HandleKey(state, "g")
	if state.Cursor != 0 {
		t.Fatalf("expected cursor at first entry, got %d", state.Cursor)
	}
}

func TestCursorOnEmptyDirectory(t *testing.T) {
	state := &AppState{Dir: DirectoryModel{Path: "/test"}}
	reducer := newTestReducer(t, Deps{})

	pressKeys(reducer, state, "j", "G", "k")
	if state.Cursor != 0 {
		t.Fatalf("cursor must stay at 0 in an empty listing, got %d", state.Cursor)
	}
	if _, ok := state.CurrentEntry(); ok {
		t.Fatalf("expected no current entry")
	}
}

func TestEnterDirectoryResetsCursorFilterAndSelection(t *testing.T) {
	root := writeTree(t, "a.txt", "sub/inner.txt", "zz.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)

	state.Cursor = 2
	reducer.HandleKey(state, KeySpace)
	state.Filter = FilterState{Query: "su", Snapshot: state.Dir.Entries, Filtered: FilterEntries(state.Dir.Entries, "su")}
	state.Cursor = 0

	if !reducer.HandleKey(state, "l") {
		t.Fatalf("expected entering sub to succeed")
	}
	if state.Dir.Path != filepath.Join(root, "sub") {
		t.Fatalf("expected path %s, got %s", filepath.Join(root, "sub"), state.Dir.Path)
	}
	if state.Cursor != 0 || state.Filter.Engaged() || len(state.Selection) != 0 {
		t.Fatalf("expected cursor, filter and selection reset, got cursor=%d filter=%+v selection=%v",
			state.Cursor, state.Filter, state.Selection)
	}
	if got := names(state.Dir.Entries); !equalStrings(got, []string{"inner.txt"}) {
		t.Fatalf("unexpected entries %v", got)
	}
}

func TestEnterOnFileIsNoop(t *testing.T) {
	root := writeTree(t, "a.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)

	if reducer.HandleKey(state, KeyEnter) {
		t.Fatalf("enter on a file should not report a change")
	}
	if state.Dir.Path != root {
		t.Fatalf("path changed to %s", state.Dir.Path)
	}
}

func TestNavigateIntoRemovedDirectoryLeavesStateUnchanged(t *testing.T) {
	root := writeTree(t, "gone/", "keep.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)
	before := names(state.Dir.Entries)

	if err := os.Remove(filepath.Join(root, "gone")); err != nil {
		t.Fatal(err)
	}
	state.Cursor = state.Dir.IndexOf("gone")

	if reducer.Reduce(state, EnterDirectoryAction{}) {
		t.Fatalf("expected navigation into a removed directory to fail")
	}
	if state.Dir.Path != root {
		t.Fatalf("expected path to stay %s, got %s", root, state.Dir.Path)
	}
	if got := names(state.Dir.Entries); !equalStrings(got, before) {
		t.Fatalf("expected entries %v unchanged, got %v", before, got)
	}
	if state.StatusMessage == "" || state.StatusTone != ToneError {
		t.Fatalf("expected an error status message, got %q", state.StatusMessage)
	}
}

func TestGoUpMovesToParent(t *testing.T) {
	root := writeTree(t, "sub/file.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, filepath.Join(root, "sub"))

	if !reducer.HandleKey(state, "h") {
		t.Fatalf("expected go up to succeed")
	}
	if state.Dir.Path != root {
		t.Fatalf("expected %s, got %s", root, state.Dir.Path)
	}
}

func TestGoUpAtRootIsNoop(t *testing.T) {
	root := string(filepath.Separator)
	listed := 0
	reducer := newTestReducer(t, Deps{List: func(string) ([]FileEntry, error) {
		listed++
		return nil, nil
	}})
	state := &AppState{Dir: DirectoryModel{Path: root}}

	if reducer.Reduce(state, GoUpAction{}) {
		t.Fatalf("go up at the root should report no change")
	}
	if listed != 0 {
		t.Fatalf("root should not be relisted, listed %d times", listed)
	}
}

func TestJumpToPathRejectsFile(t *testing.T) {
	root := writeTree(t, "file.txt", "dir/")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)

	if reducer.Reduce(state, JumpToPathAction{Path: filepath.Join(root, "file.txt")}) {
		t.Fatalf("jumping to a file must fail")
	}
	if state.Dir.Path != root {
		t.Fatalf("path changed to %s", state.Dir.Path)
	}
	if !reducer.Reduce(state, JumpToPathAction{Path: filepath.Join(root, "dir")}) {
		t.Fatalf("jumping to a directory must succeed")
	}
}

func TestRefreshKeepsSelectionAndReappliesFilter(t *testing.T) {
	root := writeTree(t, "apple.txt", "banana.txt", "cherry.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)

	reducer.HandleKey(state, KeySpace)
	pressKeys(reducer, state, "s", "a", KeyEnter)

	if err := os.WriteFile(filepath.Join(root, "avocado.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !reducer.HandleKey(state, "r") {
		t.Fatalf("refresh should succeed")
	}
	if got := names(state.ActiveEntries()); !equalStrings(got, []string{"apple.txt", "avocado.txt", "banana.txt"}) {
		t.Fatalf("expected filter re-applied to the new listing, got %v", got)
	}
	if !state.IsSelected("apple.txt") {
		t.Fatalf("selection should survive a refresh")
	}
}

func TestResizeUpdatesGeometry(t *testing.T) {
	root := writeTree(t, "a.txt")
	reducer := newTestReducer(t, Deps{})
	state := loadState(t, reducer, root)
	state.TakeFullRedraw()

	reducer.Reduce(state, ResizeAction{Width: 101, Height: 30})
	if state.LeftWidth() != 50 || state.RightWidth() != 51 || state.ContentHeight() != 26 {
		t.Fatalf("unexpected geometry left=%d right=%d content=%d", state.LeftWidth(), state.RightWidth(), state.ContentHeight())
	}
	if !state.TakeFullRedraw() {
		t.Fatalf("resize should request a full redraw")
	}
}

func TestListOrderIsCaseInsensitive(t *testing.T) {
	root := writeTree(t, "beta", "Alpha", "alpha2", "Gamma/")
	model, err := LoadDirectory(fsutil.List, root)
	if err != nil {
		t.Fatal(err)
	}
	if got := names(model.Entries); !equalStrings(got, []string{"Alpha", "alpha2", "beta", "Gamma"}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestQuit(t *testing.T) {
	state := &AppState{}
	reducer := newTestReducer(t, Deps{})

	reducer.HandleKey(state, "x")
	if state.Quit {
		t.Fatalf("only the quit key may exit")
	}
	reducer.HandleKey(state, "q")
	if !state.Quit {
		t.Fatalf("expected quit")
	}
}
