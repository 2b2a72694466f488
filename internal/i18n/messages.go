package i18n

var messages = map[Lang]map[MessageKey]string{
	English: {
		AppTerminated:    "beniya terminated",
		AppInterrupted:   "beniya interrupted",
		AppErrorOccurred: "Error occurred",

		FileBinary:       "Binary file",
		FileCannotView:   "Cannot preview",
		FilePreviewError: "Preview error",
		FileErrorPrefix:  "Error",

		UITitle:          "📁 beniya - %{path}",
		UIFilter:         " [Filter: %{query}]",
		UIBaseDirectory:  "📋 Base directory: %{path}",
		UISelectedCount:  " | Selected: %{count}",
		UIPressAnyKey:    "Press any key to continue...",
		UIConfirmHint:    "[y] Yes  [n] No",
		UINavigateFailed: "Cannot open %{path}: %{error}",
		UIToolMissing:    "%{tool} is not installed",
		UIOpenFailed:     "Cannot open %{path}: %{error}",

		HelpFull:     "j/k:move h:back l:enter o:open s:filter Space:select m/p/x:move/copy/delete b:bookmarks ?:help q:quit",
		HelpShort:    "j/k:move h:back l:enter o:open ?:help q:quit",
		HelpFilter:   "Filter: type to narrow  Enter:keep  Esc:clear  BS:delete",
		HelpFiltered: "Filtered view  s:edit filter  Esc:clear filter",

		HelpWindowTitle:   "Key bindings",
		HelpSectionMove:   "Navigation",
		HelpSectionFiles:  "Files",
		HelpSectionSearch: "Search",
		HelpSectionOther:  "Other",

		SearchPrompt:    "Search text: ",
		SearchNoMatches: "No matches found.",
		SearchFailed:    "Search failed: %{error}",

		CreateFilePrompt:  "File name: ",
		CreateDirPrompt:   "Directory name: ",
		CreateInvalidName: "Invalid name: path separators are not allowed",
		CreateFileExists:  "File already exists",
		CreateDirExists:   "Directory already exists",
		CreateFileDone:    "File created: %{name}",
		CreateDirDone:     "Directory created: %{name}",
		CreateFailed:      "Creation error: %{error}",

		BulkMoveTitle:     "Move",
		BulkCopyTitle:     "Copy",
		BulkDeleteTitle:   "Delete",
		BulkMoveConfirm:   "Move %{count} item(s) to %{dest}?",
		BulkCopyConfirm:   "Copy %{count} item(s) to %{dest}?",
		BulkDeleteConfirm: "Delete %{count} item(s)?",
		BulkDeleteWarning: "This cannot be undone.",
		BulkNoBaseDir:     "No base directory configured",
		BulkDestExists:    "%{name}: already exists at destination",
		BulkNotFound:      "%{name}: not found",
		BulkStillExists:   "%{name}: still exists after delete",
		BulkMoveSummary:   "Moved %{success} of %{total} item(s)",
		BulkCopySummary:   "Copied %{success} of %{total} item(s)",
		BulkDeleteSummary: "Deleted %{success} of %{total} item(s)",
		BulkResultTitle:   "Result",
		BulkAllSucceeded:  "All items processed",
		BulkSomeFailed:    "Some items failed",

		BookmarkTitle:         "Bookmarks",
		BookmarkMenuAdd:       "[a] Add current directory",
		BookmarkMenuList:      "[l] List bookmarks",
		BookmarkMenuRemove:    "[r] Remove bookmark",
		BookmarkMenuJump:      "[1-9] Jump to bookmark",
		BookmarkMenuCancel:    "[Esc] Cancel",
		BookmarkNamePrompt:    "Bookmark name: ",
		BookmarkRemovePrompt:  "Number to remove: ",
		BookmarkAdded:         "Bookmark added: %{name}",
		BookmarkRemoved:       "Bookmark removed: %{name}",
		BookmarkEmpty:         "No bookmarks",
		BookmarkEmptyName:     "Bookmark name cannot be empty",
		BookmarkDuplicateName: "Bookmark name already exists: %{name}",
		BookmarkDuplicatePath: "Directory is already bookmarked: %{path}",
		BookmarkFull:          "Bookmark limit reached (%{max})",
		BookmarkNotFound:      "No bookmark #%{number}",
		BookmarkMissingPath:   "Bookmark target no longer exists: %{path}",
		BookmarkSaveFailed:    "Cannot save bookmarks: %{error}",

		HistoryTitle: "Directory history",
		HistoryEmpty: "No directory history",
		HistoryHint:  "Type to narrow  Enter/1-9:jump  Esc:cancel",

		ClipboardCopied:      "Copied path: %{path}",
		ClipboardUnavailable: "Clipboard unavailable: %{error}",

		HealthTitle:          "beniya Health Check",
		HealthFzf:            "fzf (file search)",
		HealthRga:            "rga (content search)",
		HealthZoxide:         "zoxide (directory history)",
		HealthOpener:         "System file opener",
		HealthOK:             "OK",
		HealthToolNotFound:   "not found",
		HealthSummary:        "Summary:",
		HealthAllPassed:      "All checks passed! beniya is ready to use.",
		HealthOptionalMissed: "Some optional features are unavailable. Basic functionality will work.",

		"action.move_down":        "Move down",
		"action.move_up":          "Move up",
		"action.top":              "Jump to first entry",
		"action.bottom":           "Jump to last entry",
		"action.parent":           "Parent directory",
		"action.enter":            "Enter directory",
		"action.refresh":          "Refresh listing",
		"action.open_file":        "Open file",
		"action.open_explorer":    "Open directory in file manager",
		"action.toggle_select":    "Select / unselect",
		"action.create_file":      "Create file",
		"action.create_directory": "Create directory",
		"action.move":             "Move selection to base directory",
		"action.copy":             "Copy selection to base directory",
		"action.delete":           "Delete selection",
		"action.yank_path":        "Copy path to clipboard",
		"action.filter":           "Filter entries",
		"action.clear_filter":     "Clear filter",
		"action.find_file":        "Find file (fzf)",
		"action.content_search":   "Search file contents (rga)",
		"action.history":          "Directory history (zoxide)",
		"action.bookmarks":        "Bookmark menu",
		"action.help":             "Show this help",
		"action.quit":             "Quit",
	},
	Japanese: {
		AppTerminated:    "beniyaを終了しました",
		AppInterrupted:   "beniyaを中断しました",
		AppErrorOccurred: "エラーが発生しました",

		FileBinary:       "バイナリファイル",
		FileCannotView:   "プレビューできません",
		FilePreviewError: "プレビューエラー",
		FileErrorPrefix:  "エラー",

		UITitle:          "📁 beniya - %{path}",
		UIFilter:         " [フィルタ: %{query}]",
		UIBaseDirectory:  "📋 ベースディレクトリ: %{path}",
		UISelectedCount:  " | 選択中: %{count}個",
		UIPressAnyKey:    "何かキーを押して続行...",
		UIConfirmHint:    "[y] はい  [n] いいえ",
		UINavigateFailed: "%{path} を開けません: %{error}",
		UIToolMissing:    "%{tool} がインストールされていません",
		UIOpenFailed:     "%{path} を開けません: %{error}",

		HelpFull:     "j/k:移動 h:戻る l:入る o:開く s:フィルタ Space:選択 m/p/x:移動/コピー/削除 b:ブックマーク ?:ヘルプ q:終了",
		HelpShort:    "j/k:移動 h:戻る l:入る o:開く ?:ヘルプ q:終了",
		HelpFilter:   "フィルタ: 入力で絞り込み  Enter:確定  Esc:解除  BS:削除",
		HelpFiltered: "フィルタ適用中  s:フィルタ編集  Esc:フィルタ解除",

		HelpWindowTitle:   "キー操作",
		HelpSectionMove:   "移動",
		HelpSectionFiles:  "ファイル",
		HelpSectionSearch: "検索",
		HelpSectionOther:  "その他",

		SearchPrompt:    "検索テキスト: ",
		SearchNoMatches: "マッチするものが見つかりません。",
		SearchFailed:    "検索に失敗しました: %{error}",

		CreateFilePrompt:  "ファイル名: ",
		CreateDirPrompt:   "ディレクトリ名: ",
		CreateInvalidName: "無効な名前です: パス区切り文字は使えません",
		CreateFileExists:  "ファイルは既に存在します",
		CreateDirExists:   "ディレクトリは既に存在します",
		CreateFileDone:    "ファイルを作成しました: %{name}",
		CreateDirDone:     "ディレクトリを作成しました: %{name}",
		CreateFailed:      "作成エラー: %{error}",

		BulkMoveTitle:     "移動",
		BulkCopyTitle:     "コピー",
		BulkDeleteTitle:   "削除",
		BulkMoveConfirm:   "%{count}個の項目を %{dest} に移動しますか？",
		BulkCopyConfirm:   "%{count}個の項目を %{dest} にコピーしますか？",
		BulkDeleteConfirm: "%{count}個の項目を削除しますか？",
		BulkDeleteWarning: "この操作は取り消せません。",
		BulkNoBaseDir:     "ベースディレクトリが設定されていません",
		BulkDestExists:    "%{name}: 移動先に既に存在します",
		BulkNotFound:      "%{name}: 見つかりません",
		BulkStillExists:   "%{name}: 削除後も存在しています",
		BulkMoveSummary:   "%{total}個中%{success}個を移動しました",
		BulkCopySummary:   "%{total}個中%{success}個をコピーしました",
		BulkDeleteSummary: "%{total}個中%{success}個を削除しました",
		BulkResultTitle:   "結果",
		BulkAllSucceeded:  "すべて完了しました",
		BulkSomeFailed:    "一部の項目が失敗しました",

		BookmarkTitle:         "ブックマーク",
		BookmarkMenuAdd:       "[a] 現在のディレクトリを追加",
		BookmarkMenuList:      "[l] 一覧を表示",
		BookmarkMenuRemove:    "[r] ブックマークを削除",
		BookmarkMenuJump:      "[1-9] ブックマークへ移動",
		BookmarkMenuCancel:    "[Esc] キャンセル",
		BookmarkNamePrompt:    "ブックマーク名: ",
		BookmarkRemovePrompt:  "削除する番号: ",
		BookmarkAdded:         "ブックマークを追加しました: %{name}",
		BookmarkRemoved:       "ブックマークを削除しました: %{name}",
		BookmarkEmpty:         "ブックマークがありません",
		BookmarkEmptyName:     "ブックマーク名を入力してください",
		BookmarkDuplicateName: "同じ名前のブックマークがあります: %{name}",
		BookmarkDuplicatePath: "既にブックマークされています: %{path}",
		BookmarkFull:          "ブックマークの上限(%{max})に達しました",
		BookmarkNotFound:      "ブックマーク%{number}番はありません",
		BookmarkMissingPath:   "ブックマーク先が存在しません: %{path}",
		BookmarkSaveFailed:    "ブックマークを保存できません: %{error}",

		HistoryTitle: "ディレクトリ履歴",
		HistoryEmpty: "ディレクトリ履歴がありません",
		HistoryHint:  "入力で絞り込み  Enter/1-9:移動  Esc:キャンセル",

		ClipboardCopied:      "パスをコピーしました: %{path}",
		ClipboardUnavailable: "クリップボードを使用できません: %{error}",

		HealthTitle:          "beniya ヘルスチェック",
		HealthFzf:            "fzf (ファイル検索)",
		HealthRga:            "rga (内容検索)",
		HealthZoxide:         "zoxide (ディレクトリ履歴)",
		HealthOpener:         "システムファイルオープナー",
		HealthOK:             "OK",
		HealthToolNotFound:   "が見つかりません",
		HealthSummary:        "サマリー:",
		HealthAllPassed:      "全てのチェックが完了しました！beniyaは使用可能です。",
		HealthOptionalMissed: "オプション機能が利用できません。基本機能は動作します。",

		"action.move_down":        "下へ移動",
		"action.move_up":          "上へ移動",
		"action.top":              "先頭へ移動",
		"action.bottom":           "末尾へ移動",
		"action.parent":           "親ディレクトリへ",
		"action.enter":            "ディレクトリに入る",
		"action.refresh":          "再読み込み",
		"action.open_file":        "ファイルを開く",
		"action.open_explorer":    "ファイルマネージャで開く",
		"action.toggle_select":    "選択 / 選択解除",
		"action.create_file":      "ファイル作成",
		"action.create_directory": "ディレクトリ作成",
		"action.move":             "選択項目をベースディレクトリへ移動",
		"action.copy":             "選択項目をベースディレクトリへコピー",
		"action.delete":           "選択項目を削除",
		"action.yank_path":        "パスをクリップボードへコピー",
		"action.filter":           "フィルタ",
		"action.clear_filter":     "フィルタ解除",
		"action.find_file":        "ファイル検索 (fzf)",
		"action.content_search":   "内容検索 (rga)",
		"action.history":          "ディレクトリ履歴 (zoxide)",
		"action.bookmarks":        "ブックマークメニュー",
		"action.help":             "このヘルプを表示",
		"action.quit":             "終了",
	},
}
