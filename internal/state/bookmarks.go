package state

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kk-code-lab/beniya/internal/bookmark"
	"github.com/kk-code-lab/beniya/internal/i18n"
)

// BookmarkMenuModal offers add, list, remove and direct jumps 1-9.
type BookmarkMenuModal struct{}

func (m *BookmarkMenuModal) Window(c i18n.Catalog) FloatingWindow {
	return newWindow(c.Msg(i18n.BookmarkTitle), []string{
		c.Msg(i18n.BookmarkMenuAdd),
		c.Msg(i18n.BookmarkMenuList),
		c.Msg(i18n.BookmarkMenuRemove),
		c.Msg(i18n.BookmarkMenuJump),
		c.Msg(i18n.BookmarkMenuCancel),
	}, ToneNormal)
}

func (m *BookmarkMenuModal) HandleKey(r *StateReducer, s *AppState, key Key) bool {
	switch key {
	case "a":
		s.pushModal(&PromptModal{
			Title: r.msg(i18n.BookmarkTitle),
			Label: r.msg(i18n.BookmarkNamePrompt),
			OnSubmit: func(r *StateReducer, s *AppState, name string) {
				r.addBookmark(s, name)
			},
		})
		return true
	case "l":
		s.pushModal(&MessageModal{Title: r.msg(i18n.BookmarkTitle), Lines: r.bookmarkLines()})
		return true
	case "r":
		if len(r.bookmarks()) == 0 {
			s.pushModal(&MessageModal{Title: r.msg(i18n.BookmarkTitle), Lines: []string{r.msg(i18n.BookmarkEmpty)}})
			return true
		}
		s.pushModal(&PromptModal{
			Title: r.msg(i18n.BookmarkTitle),
			Lines: r.bookmarkLines(),
			Label: r.msg(i18n.BookmarkRemovePrompt),
			OnSubmit: func(r *StateReducer, s *AppState, value string) {
				r.removeBookmark(s, value)
			},
		})
		return true
	case "q", KeyEscape:
		return true
	}
	if n, ok := bookmarkDigit(key); ok {
		r.jumpToBookmark(s, n)
		return true
	}
	return false
}

func (r *StateReducer) bookmarks() []bookmark.Bookmark {
	if r.deps.Bookmarks == nil {
		return nil
	}
	return r.deps.Bookmarks.List()
}

func (r *StateReducer) bookmarkLines() []string {
	items := r.bookmarks()
	if len(items) == 0 {
		return []string{r.msg(i18n.BookmarkEmpty)}
	}
	lines := make([]string, len(items))
	for i, b := range items {
		lines[i] = fmt.Sprintf("%d. %s  %s", i+1, b.Name, b.Path)
	}
	return lines
}

func (r *StateReducer) addBookmark(state *AppState, name string) {
	if r.deps.Bookmarks == nil {
		return
	}
	path := state.Dir.Path
	if err := r.deps.Bookmarks.Add(path, name); err != nil {
		var msg string
		switch {
		case errors.Is(err, bookmark.ErrEmptyName):
			msg = r.msg(i18n.BookmarkEmptyName)
		case errors.Is(err, bookmark.ErrDuplicateName):
			msg = r.msg(i18n.BookmarkDuplicateName, "name", name)
		case errors.Is(err, bookmark.ErrDuplicatePath):
			msg = r.msg(i18n.BookmarkDuplicatePath, "path", path)
		case errors.Is(err, bookmark.ErrFull):
			msg = r.msg(i18n.BookmarkFull, "max", bookmark.MaxBookmarks)
		default:
			msg = err.Error()
		}
		r.log.WithError(err).WithField("name", name).Info("bookmark rejected")
		state.pushModal(&MessageModal{Title: r.msg(i18n.BookmarkTitle), Lines: []string{msg}, Tone: ToneWarning})
		return
	}
	if !r.saveBookmarks(state) {
		// Keep memory in line with the file.
		for _, b := range r.deps.Bookmarks.List() {
			if b.Path == path {
				_ = r.deps.Bookmarks.Remove(b.Name)
			}
		}
		return
	}
	state.setStatus(ToneSuccess, r.msg(i18n.BookmarkAdded, "name", name))
}

func (r *StateReducer) removeBookmark(state *AppState, value string) {
	if r.deps.Bookmarks == nil {
		return
	}
	n, err := strconv.Atoi(value)
	b, ok := r.deps.Bookmarks.FindByNumber(n)
	if err != nil || !ok {
		state.pushModal(&MessageModal{
			Title: r.msg(i18n.BookmarkTitle),
			Lines: []string{r.msg(i18n.BookmarkNotFound, "number", value)},
			Tone:  ToneWarning,
		})
		return
	}
	if err := r.deps.Bookmarks.Remove(b.Name); err != nil {
		state.setStatus(ToneError, err.Error())
		return
	}
	if !r.saveBookmarks(state) {
		_ = r.deps.Bookmarks.Add(b.Path, b.Name)
		return
	}
	state.setStatus(ToneSuccess, r.msg(i18n.BookmarkRemoved, "name", b.Name))
}

func (r *StateReducer) saveBookmarks(state *AppState) bool {
	if err := r.deps.Bookmarks.Save(); err != nil {
		r.log.WithError(err).Warn("cannot save bookmarks")
		state.pushModal(&MessageModal{
			Title: r.msg(i18n.BookmarkTitle),
			Lines: []string{r.msg(i18n.BookmarkSaveFailed, "error", err.Error())},
			Tone:  ToneError,
		})
		return false
	}
	return true
}

// jumpToBookmark navigates to slot n after checking the target still exists.
func (r *StateReducer) jumpToBookmark(state *AppState, n int) bool {
	if r.deps.Bookmarks == nil {
		return false
	}
	b, ok := r.deps.Bookmarks.FindByNumber(n)
	if !ok {
		state.setStatus(ToneWarning, r.msg(i18n.BookmarkNotFound, "number", n))
		return false
	}
	if !r.deps.Files.Exists(b.Path) {
		state.setStatus(ToneWarning, r.msg(i18n.BookmarkMissingPath, "path", b.Path))
		return false
	}
	return r.jumpTo(state, b.Path)
}
