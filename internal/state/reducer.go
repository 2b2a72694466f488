package state

import (
	"errors"
	"path/filepath"

	"github.com/kk-code-lab/beniya/internal/bookmark"
	fsutil "github.com/kk-code-lab/beniya/internal/fs"
	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/logging"
	"github.com/kk-code-lab/beniya/internal/search"
	"github.com/sirupsen/logrus"
)

// FileOps performs filesystem mutations. fs.Ops is the production implementation.
type FileOps interface {
	Exists(path string) bool
	CreateFile(path string) error
	CreateDir(path string) error
	Move(src, dst string) error
	Copy(src, dst string) error
	Remove(path string) error
}

// BookmarkStore is the persistent bookmark list.
type BookmarkStore interface {
	Add(path, name string) error
	Remove(name string) error
	List() []bookmark.Bookmark
	FindByNumber(n int) (bookmark.Bookmark, bool)
	Save() error
}

// Opener hands files and directories to other programs.
type Opener interface {
	Open(path string) error
	OpenAt(path string, line int) error
	Reveal(dir string) error
}

// SearchTools wraps the external finder programs.
type SearchTools interface {
	FindFile(dir string) (string, error)
	ContentSearch(dir, query string) (search.Match, int, bool, error)
	History() ([]search.HistoryEntry, error)
}

// Clipboard receives yanked paths.
type Clipboard interface {
	WriteAll(text string) error
}

// Deps are the collaborators the reducer drives. Nil collaborators disable
// the features that need them.
type Deps struct {
	List      Lister
	Files     FileOps
	Bookmarks BookmarkStore
	Opener    Opener
	Search    SearchTools
	Clipboard Clipboard
	Catalog   i18n.Catalog
	Keymap    *Keymap
	Logger    logrus.FieldLogger
}

// StateReducer interprets keys and actions against an AppState.
type StateReducer struct {
	deps   Deps
	keymap Keymap
	log    logrus.FieldLogger
}

// NewStateReducer creates a new reducer
func NewStateReducer(deps Deps) *StateReducer {
	if deps.List == nil {
		deps.List = fsutil.List
	}
	if deps.Files == nil {
		deps.Files = fsutil.Ops{}
	}
	keymap := DefaultKeymap()
	if deps.Keymap != nil {
		keymap = *deps.Keymap
	}
	var log logrus.FieldLogger = logging.Discard()
	if deps.Logger != nil {
		log = deps.Logger
	}
	return &StateReducer{deps: deps, keymap: keymap, log: log}
}

func (r *StateReducer) msg(key i18n.MessageKey, args ...any) string {
	return r.deps.Catalog.Msg(key, args...)
}

// Keymap returns the active bindings.
func (r *StateReducer) Keymap() Keymap {
	return r.keymap
}

// HandleKey routes one keystroke: the top modal first, then filter editing,
// then the Normal-mode keymap. It reports whether anything changed.
func (r *StateReducer) HandleKey(state *AppState, key Key) bool {
	if m := state.TopModal(); m != nil {
		if m.HandleKey(r, state, key) {
			state.removeModal(m)
		}
		return true
	}

	state.clearStatus()

	if state.Filter.Editing {
		return r.handleFilterKey(state, key)
	}

	action, ok := r.keymap.Lookup(key)
	if !ok {
		return false
	}
	return r.Reduce(state, action)
}

func (r *StateReducer) handleFilterKey(state *AppState, key Key) bool {
	switch {
	case key == KeyEscape:
		return r.Reduce(state, FilterClearAction{})
	case key == KeyEnter:
		return r.Reduce(state, FilterApplyAction{})
	case key == KeyBackspace:
		return r.Reduce(state, FilterBackspaceAction{})
	case key == KeyUp:
		return r.Reduce(state, MoveUpAction{})
	case key == KeyDown:
		return r.Reduce(state, MoveDownAction{})
	case key.Printable():
		return r.Reduce(state, FilterCharAction{Text: string(key)})
	}
	return false
}

// Reduce applies one action. Failures are converted into messages here and
// never escape; the result reports whether the state changed.
func (r *StateReducer) Reduce(state *AppState, action Action) bool {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveDownAction:
		return r.moveCursor(state, state.Cursor+1)

	case MoveUpAction:
		return r.moveCursor(state, state.Cursor-1)

	case MoveTopAction:
		return r.moveCursor(state, 0)

	case MoveBottomAction:
		return r.moveCursor(state, len(state.ActiveEntries())-1)

	case EnterDirectoryAction:
		entry, ok := state.CurrentEntry()
		if !ok || !entry.IsDir() {
			return false
		}
		next, err := state.Dir.NavigateInto(r.deps.List, entry.Name)
		if err != nil {
			r.reportNavigationFailure(state, entry.Path, err)
			return false
		}
		r.changeDirectory(state, next)
		return true

	case GoUpAction:
		next, ok, err := state.Dir.NavigateToParent(r.deps.List)
		if err != nil {
			r.reportNavigationFailure(state, filepath.Dir(state.Dir.Path), err)
			return false
		}
		if !ok {
			return false
		}
		r.changeDirectory(state, next)
		return true

	case JumpToPathAction:
		return r.jumpTo(state, a.Path)

	case JumpToBookmarkAction:
		return r.jumpToBookmark(state, a.Number)

	case RefreshAction:
		return r.refresh(state)

	case ResizeAction:
		state.SetScreenSize(a.Width, a.Height)
		r.refresh(state)
		return true

	// ===== FILTER =====

	case FilterStartAction:
		r.startFilter(state)
		return true

	case FilterCharAction:
		state.Filter.Query += a.Text
		r.applyFilter(state)
		return true

	case FilterBackspaceAction:
		if state.Filter.Query == "" {
			r.clearFilter(state)
			return true
		}
		state.Filter.Query = dropLastRune(state.Filter.Query)
		r.applyFilter(state)
		return true

	case FilterApplyAction:
		state.Filter.Editing = false
		return true

	case FilterClearAction:
		if !state.Filter.Engaged() {
			return false
		}
		r.clearFilter(state)
		return true

	// ===== SELECTION =====

	case ToggleSelectAction:
		entry, ok := state.CurrentEntry()
		if !ok {
			return false
		}
		state.toggleSelection(entry.Name)
		return true

	case BulkMoveAction:
		return r.confirmTransfer(state, bulkMove)

	case BulkCopyAction:
		return r.confirmTransfer(state, bulkCopy)

	case BulkDeleteAction:
		return r.confirmDelete(state)

	// ===== FILES =====

	case OpenFileAction:
		return r.openCurrent(state)

	case RevealDirectoryAction:
		return r.revealCurrent(state)

	case CreateFileAction:
		return r.promptCreate(state, false)

	case CreateDirectoryAction:
		return r.promptCreate(state, true)

	case YankPathAction:
		return r.yankPath(state)

	// ===== SEARCH =====

	case FindFileAction:
		return r.findFile(state)

	case ContentSearchAction:
		return r.promptContentSearch(state)

	case HistoryMenuAction:
		return r.openHistoryMenu(state)

	// ===== VIEW =====

	case BookmarkMenuAction:
		state.pushModal(&BookmarkMenuModal{})
		return true

	case HelpAction:
		state.pushModal(&HelpModal{Keymap: r.keymap})
		return true

	// ===== APPLICATION =====

	case QuitAction:
		state.Quit = true
		return true
	}

	return false
}

func (r *StateReducer) moveCursor(state *AppState, target int) bool {
	before := state.Cursor
	state.Cursor = target
	state.clampCursor()
	return state.Cursor != before
}

// changeDirectory installs a new listing. Cursor, filter and selection are
// reset on every successful directory change.
func (r *StateReducer) changeDirectory(state *AppState, next DirectoryModel) {
	state.Dir = next
	state.Cursor = 0
	state.Filter = FilterState{}
	state.clearSelection()
	r.log.WithField("path", next.Path).Debug("changed directory")
}

func (r *StateReducer) jumpTo(state *AppState, path string) bool {
	next, err := state.Dir.NavigateToPath(r.deps.List, path)
	if err != nil {
		r.reportNavigationFailure(state, path, err)
		return false
	}
	r.changeDirectory(state, next)
	return true
}

// refresh relists the current directory. An engaged filter is re-applied
// against the new listing; the selection is kept by name.
func (r *StateReducer) refresh(state *AppState) bool {
	next, err := state.Dir.Refresh(r.deps.List)
	if err != nil {
		r.reportNavigationFailure(state, state.Dir.Path, err)
		return false
	}
	state.Dir = next
	if state.Filter.Engaged() {
		state.Filter.Snapshot = next.Entries
		r.applyFilter(state)
	} else {
		state.clampCursor()
	}
	state.requestFullRedraw()
	return true
}

func (r *StateReducer) reportNavigationFailure(state *AppState, path string, err error) {
	r.log.WithError(err).WithField("path", path).Warn("navigation failed")
	state.setStatus(ToneError, r.msg(i18n.UINavigateFailed, "path", path, "error", reasonOf(err)))
}

// reasonOf shortens well-known errors to their sentinel text.
func reasonOf(err error) string {
	for _, sentinel := range []error{fsutil.ErrNotFound, fsutil.ErrNotADirectory, fsutil.ErrPermission, fsutil.ErrExists, search.ErrToolUnavailable} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
