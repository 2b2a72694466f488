package state

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Key is one decoded keystroke. Printable input is the typed text itself;
// control keys use the named constants below.
type Key string

const (
	KeyEnter     Key = "<enter>"
	KeyEscape    Key = "<esc>"
	KeyBackspace Key = "<backspace>"
	KeyTab       Key = "<tab>"
	KeyUp        Key = "<up>"
	KeyDown      Key = "<down>"
	KeyLeft      Key = "<left>"
	KeyRight     Key = "<right>"
	KeySpace     Key = " "
)

// Printable reports whether k is text that can be typed into a query: a
// single printable ASCII character or any multi-byte character.
func (k Key) Printable() bool {
	if k == "" || strings.HasPrefix(string(k), "<") && len(k) > 1 && strings.HasSuffix(string(k), ">") {
		return false
	}
	r, size := utf8.DecodeRuneInString(string(k))
	if size == len(k) && r < utf8.RuneSelf {
		return r >= 0x20 && r < 0x7f
	}
	return r != utf8.RuneError
}

// ErrUnknownAction is returned for keybinding entries naming no action.
var ErrUnknownAction = errors.New("unknown action")

type actionBinding struct {
	name      string
	keys      []Key
	newAction func() Action
}

var defaultBindings = []actionBinding{
	{"move_down", []Key{"j", KeyDown}, func() Action { return MoveDownAction{} }},
	{"move_up", []Key{"k", KeyUp}, func() Action { return MoveUpAction{} }},
	{"top", []Key{"g"}, func() Action { return MoveTopAction{} }},
	{"bottom", []Key{"G"}, func() Action { return MoveBottomAction{} }},
	{"parent", []Key{"h", KeyLeft}, func() Action { return GoUpAction{} }},
	{"enter", []Key{"l", KeyEnter, KeyRight}, func() Action { return EnterDirectoryAction{} }},
	{"refresh", []Key{"r"}, func() Action { return RefreshAction{} }},
	{"open_file", []Key{"o"}, func() Action { return OpenFileAction{} }},
	{"open_explorer", []Key{"e"}, func() Action { return RevealDirectoryAction{} }},
	{"toggle_select", []Key{KeySpace}, func() Action { return ToggleSelectAction{} }},
	{"filter", []Key{"s"}, func() Action { return FilterStartAction{} }},
	{"clear_filter", []Key{KeyEscape}, func() Action { return FilterClearAction{} }},
	{"find_file", []Key{"/", "f"}, func() Action { return FindFileAction{} }},
	{"content_search", []Key{"F"}, func() Action { return ContentSearchAction{} }},
	{"create_file", []Key{"a"}, func() Action { return CreateFileAction{} }},
	{"create_directory", []Key{"A"}, func() Action { return CreateDirectoryAction{} }},
	{"move", []Key{"m"}, func() Action { return BulkMoveAction{} }},
	{"copy", []Key{"p"}, func() Action { return BulkCopyAction{} }},
	{"delete", []Key{"x"}, func() Action { return BulkDeleteAction{} }},
	{"bookmarks", []Key{"b"}, func() Action { return BookmarkMenuAction{} }},
	{"history", []Key{"z"}, func() Action { return HistoryMenuAction{} }},
	{"yank_path", []Key{"y"}, func() Action { return YankPathAction{} }},
	{"help", []Key{"?"}, func() Action { return HelpAction{} }},
	{"quit", []Key{"q"}, func() Action { return QuitAction{} }},
}

// ActionNames lists every name accepted in the keybinds table.
func ActionNames() []string {
	names := make([]string, len(defaultBindings))
	for i, b := range defaultBindings {
		names[i] = b.name
	}
	return names
}

// Keymap resolves Normal-mode keys to actions. Digits 1-9 always jump to
// bookmarks and are not part of the table.
type Keymap struct {
	actions map[Key]func() Action
	keys    map[string][]Key
}

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	km, _ := NewKeymap(nil)
	return km
}

// NewKeymap applies overrides (action name -> keys) on top of the defaults.
// An overridden action loses its default keys and an override claims its keys
// from whatever action held them.
func NewKeymap(overrides map[string][]string) (Keymap, error) {
	byName := make(map[string]actionBinding, len(defaultBindings))
	for _, b := range defaultBindings {
		byName[b.name] = b
	}

	var unknown []string
	for name := range overrides {
		if _, ok := byName[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Keymap{}, fmt.Errorf("keybinds %s: %w", strings.Join(unknown, ", "), ErrUnknownAction)
	}

	km := Keymap{
		actions: make(map[Key]func() Action),
		keys:    make(map[string][]Key),
	}
	for _, b := range defaultBindings {
		if _, ok := overrides[b.name]; ok {
			continue
		}
		km.bind(b.name, b.keys, b.newAction)
	}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		keys := make([]Key, 0, len(overrides[name]))
		for _, raw := range overrides[name] {
			key, err := ParseKeyName(raw)
			if err != nil {
				return Keymap{}, fmt.Errorf("keybinds %s: %w", name, err)
			}
			keys = append(keys, key)
		}
		km.bind(name, keys, byName[name].newAction)
	}
	return km, nil
}

func (km *Keymap) bind(name string, keys []Key, newAction func() Action) {
	for _, key := range keys {
		if previous, ok := km.owner(key); ok && previous != name {
			km.keys[previous] = removeKey(km.keys[previous], key)
		}
		km.actions[key] = newAction
	}
	km.keys[name] = append(km.keys[name], keys...)
}

func (km *Keymap) owner(key Key) (string, bool) {
	for name, keys := range km.keys {
		for _, k := range keys {
			if k == key {
				return name, true
			}
		}
	}
	return "", false
}

func removeKey(keys []Key, key Key) []Key {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}

// Lookup returns the action bound to key.
func (km Keymap) Lookup(key Key) (Action, bool) {
	if n, ok := bookmarkDigit(key); ok {
		return JumpToBookmarkAction{Number: n}, true
	}
	newAction, ok := km.actions[key]
	if !ok {
		return nil, false
	}
	return newAction(), true
}

// KeysFor returns the keys bound to an action name, for help output.
func (km Keymap) KeysFor(name string) []Key {
	return km.keys[name]
}

// ParseKeyName accepts either a literal character or one of the names
// space, enter, return, esc, escape, backspace, tab, up, down, left, right
// (any case).
func ParseKeyName(name string) (Key, error) {
	switch strings.ToLower(name) {
	case "space":
		return KeySpace, nil
	case "enter", "return":
		return KeyEnter, nil
	case "esc", "escape":
		return KeyEscape, nil
	case "backspace", "bs":
		return KeyBackspace, nil
	case "tab":
		return KeyTab, nil
	case "up":
		return KeyUp, nil
	case "down":
		return KeyDown, nil
	case "left":
		return KeyLeft, nil
	case "right":
		return KeyRight, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return "", fmt.Errorf("invalid key %q", name)
	}
	return Key(name), nil
}

// DisplayName renders a key for help text.
func (k Key) DisplayName() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "BS"
	case KeyTab:
		return "Tab"
	case KeyUp:
		return "↑"
	case KeyDown:
		return "↓"
	case KeyLeft:
		return "←"
	case KeyRight:
		return "→"
	}
	return string(k)
}

func bookmarkDigit(key Key) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '0'), true
}
