package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveDownAction struct{}
type MoveUpAction struct{}
type MoveTopAction struct{}
type MoveBottomAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}
type RefreshAction struct{}
type JumpToPathAction struct {
	Path string
}
type JumpToBookmarkAction struct {
	Number int
}

// ===== FILTER ACTIONS =====

type FilterStartAction struct{}
type FilterCharAction struct {
	Text string
}
type FilterBackspaceAction struct{}
type FilterApplyAction struct{}
type FilterClearAction struct{}

// ===== SELECTION ACTIONS =====

type ToggleSelectAction struct{}
type BulkMoveAction struct{}
type BulkCopyAction struct{}
type BulkDeleteAction struct{}

// ===== FILE ACTIONS =====

type OpenFileAction struct{}
type RevealDirectoryAction struct{}
type CreateFileAction struct{}
type CreateDirectoryAction struct{}
type YankPathAction struct{}

// ===== SEARCH ACTIONS =====

type FindFileAction struct{}
type ContentSearchAction struct{}
type HistoryMenuAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type BookmarkMenuAction struct{}
type HelpAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
