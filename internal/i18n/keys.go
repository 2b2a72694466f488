package i18n

// MessageKey identifies a localized message.
type MessageKey string

const (
	AppTerminated    MessageKey = "app.terminated"
	AppInterrupted   MessageKey = "app.interrupted"
	AppErrorOccurred MessageKey = "app.error_occurred"

	FileBinary       MessageKey = "file.binary_file"
	FileCannotView   MessageKey = "file.cannot_preview"
	FilePreviewError MessageKey = "file.preview_error"
	FileErrorPrefix  MessageKey = "file.error_prefix"

	UITitle          MessageKey = "ui.title"
	UIFilter         MessageKey = "ui.filter_indicator"
	UIBaseDirectory  MessageKey = "ui.base_directory"
	UISelectedCount  MessageKey = "ui.selected_count"
	UIPressAnyKey    MessageKey = "ui.press_any_key"
	UIConfirmHint    MessageKey = "ui.confirm_hint"
	UINavigateFailed MessageKey = "ui.navigate_failed"
	UIToolMissing    MessageKey = "ui.tool_unavailable"
	UIOpenFailed     MessageKey = "ui.open_failed"

	HelpFull     MessageKey = "help.full"
	HelpShort    MessageKey = "help.short"
	HelpFilter   MessageKey = "help.filter"
	HelpFiltered MessageKey = "help.filtered"

	HelpWindowTitle   MessageKey = "help.window_title"
	HelpSectionMove   MessageKey = "help.section_move"
	HelpSectionFiles  MessageKey = "help.section_files"
	HelpSectionSearch MessageKey = "help.section_search"
	HelpSectionOther  MessageKey = "help.section_other"

	SearchPrompt    MessageKey = "search.prompt"
	SearchNoMatches MessageKey = "search.no_matches"
	SearchFailed    MessageKey = "search.failed"

	CreateFilePrompt  MessageKey = "create.file_prompt"
	CreateDirPrompt   MessageKey = "create.dir_prompt"
	CreateInvalidName MessageKey = "create.invalid_name"
	CreateFileExists  MessageKey = "create.file_exists"
	CreateDirExists   MessageKey = "create.dir_exists"
	CreateFileDone    MessageKey = "create.file_created"
	CreateDirDone     MessageKey = "create.dir_created"
	CreateFailed      MessageKey = "create.failed"

	BulkMoveTitle     MessageKey = "bulk.move_title"
	BulkCopyTitle     MessageKey = "bulk.copy_title"
	BulkDeleteTitle   MessageKey = "bulk.delete_title"
	BulkMoveConfirm   MessageKey = "bulk.move_confirm"
	BulkCopyConfirm   MessageKey = "bulk.copy_confirm"
	BulkDeleteConfirm MessageKey = "bulk.delete_confirm"
	BulkDeleteWarning MessageKey = "bulk.delete_warning"
	BulkNoBaseDir     MessageKey = "bulk.no_base_dir"
	BulkDestExists    MessageKey = "bulk.dest_exists"
	BulkNotFound      MessageKey = "bulk.not_found"
	BulkStillExists   MessageKey = "bulk.still_exists"
	BulkMoveSummary   MessageKey = "bulk.move_summary"
	BulkCopySummary   MessageKey = "bulk.copy_summary"
	BulkDeleteSummary MessageKey = "bulk.delete_summary"
	BulkResultTitle   MessageKey = "bulk.result_title"
	BulkAllSucceeded  MessageKey = "bulk.all_succeeded"
	BulkSomeFailed    MessageKey = "bulk.some_failed"

	BookmarkTitle         MessageKey = "bookmark.title"
	BookmarkMenuAdd       MessageKey = "bookmark.menu_add"
	BookmarkMenuList      MessageKey = "bookmark.menu_list"
	BookmarkMenuRemove    MessageKey = "bookmark.menu_remove"
	BookmarkMenuJump      MessageKey = "bookmark.menu_jump"
	BookmarkMenuCancel    MessageKey = "bookmark.menu_cancel"
	BookmarkNamePrompt    MessageKey = "bookmark.name_prompt"
	BookmarkRemovePrompt  MessageKey = "bookmark.remove_prompt"
	BookmarkAdded         MessageKey = "bookmark.added"
	BookmarkRemoved       MessageKey = "bookmark.removed"
	BookmarkEmpty         MessageKey = "bookmark.empty"
	BookmarkEmptyName     MessageKey = "bookmark.empty_name"
	BookmarkDuplicateName MessageKey = "bookmark.duplicate_name"
	BookmarkDuplicatePath MessageKey = "bookmark.duplicate_path"
	BookmarkFull          MessageKey = "bookmark.full"
	BookmarkNotFound      MessageKey = "bookmark.not_found"
	BookmarkMissingPath   MessageKey = "bookmark.missing_path"
	BookmarkSaveFailed    MessageKey = "bookmark.save_failed"

	HistoryTitle MessageKey = "history.title"
	HistoryEmpty MessageKey = "history.empty"
	HistoryHint  MessageKey = "history.hint"

	ClipboardCopied      MessageKey = "clipboard.copied"
	ClipboardUnavailable MessageKey = "clipboard.unavailable"

	HealthTitle          MessageKey = "health.title"
	HealthFzf            MessageKey = "health.fzf"
	HealthRga            MessageKey = "health.rga"
	HealthZoxide         MessageKey = "health.zoxide"
	HealthOpener         MessageKey = "health.file_opener"
	HealthOK             MessageKey = "health.ok"
	HealthToolNotFound   MessageKey = "health.tool_not_found"
	HealthSummary        MessageKey = "health.summary"
	HealthAllPassed      MessageKey = "health.all_passed"
	HealthOptionalMissed MessageKey = "health.optional_missing"
)
