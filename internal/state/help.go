package state

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/textutil"
)

type helpSection struct {
	title   i18n.MessageKey
	actions []string
}

var helpSections = []helpSection{
	{i18n.HelpSectionMove, []string{"move_down", "move_up", "top", "bottom", "parent", "enter", "refresh"}},
	{i18n.HelpSectionFiles, []string{"open_file", "open_explorer", "toggle_select", "create_file", "create_directory", "move", "copy", "delete", "yank_path"}},
	{i18n.HelpSectionSearch, []string{"filter", "clear_filter", "find_file", "content_search", "history", "bookmarks"}},
	{i18n.HelpSectionOther, []string{"help", "quit"}},
}

// HelpModal lists the active key bindings by section. Any key closes it.
type HelpModal struct {
	Keymap Keymap
}

func (m *HelpModal) Window(c i18n.Catalog) FloatingWindow {
	w := newWindow(c.Msg(i18n.HelpWindowTitle), buildHelpLines(m.Keymap, c), ToneNormal)
	return w
}

func (m *HelpModal) HandleKey(_ *StateReducer, _ *AppState, _ Key) bool {
	return true
}

func buildHelpLines(km Keymap, c i18n.Catalog) []string {
	lines := make([]string, 0, 32)
	for i, section := range helpSections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, c.Msg(section.title))
		for _, name := range section.actions {
			keys := km.KeysFor(name)
			if len(keys) == 0 {
				continue
			}
			lines = append(lines, formatHelpEntry(keys, c.Msg(ActionMessageKey(name))))
		}
		if section.title == i18n.HelpSectionSearch {
			lines = append(lines, formatHelpEntry([]Key{"1-9"}, c.Msg(i18n.BookmarkMenuJump)))
		}
	}
	return lines
}

// ActionMessageKey is the catalog key describing a keymap action.
func ActionMessageKey(name string) i18n.MessageKey {
	return i18n.MessageKey("action." + name)
}

func formatHelpEntry(keys []Key, desc string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.DisplayName()
	}
	label := textutil.SanitizeTerminalText(strings.Join(names, "/"))
	return fmt.Sprintf("  %s %s", textutil.PadToWidth(label, 10), textutil.SanitizeTerminalText(desc))
}
