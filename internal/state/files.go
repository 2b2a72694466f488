package state

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/sirupsen/logrus"
)

// ErrInvalidName rejects new entry names that contain a path separator.
var ErrInvalidName = errors.New("invalid name")

// ValidateName checks a name typed for a new file or directory.
func ValidateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}

func (r *StateReducer) openCurrent(state *AppState) bool {
	entry, ok := state.CurrentEntry()
	if !ok || entry.IsDir() || r.deps.Opener == nil {
		return false
	}
	state.requestFullRedraw()
	if err := r.deps.Opener.Open(entry.Path); err != nil {
		r.reportOpenFailure(state, entry.Path, err)
		return false
	}
	return true
}

func (r *StateReducer) revealCurrent(state *AppState) bool {
	if r.deps.Opener == nil {
		return false
	}
	if err := r.deps.Opener.Reveal(state.Dir.Path); err != nil {
		r.reportOpenFailure(state, state.Dir.Path, err)
		return false
	}
	return true
}

func (r *StateReducer) reportOpenFailure(state *AppState, path string, err error) {
	r.log.WithError(err).WithField("path", path).Warn("open failed")
	state.setStatus(ToneError, r.msg(i18n.UIOpenFailed, "path", path, "error", reasonOf(err)))
}

func (r *StateReducer) promptCreate(state *AppState, dir bool) bool {
	label := i18n.CreateFilePrompt
	if dir {
		label = i18n.CreateDirPrompt
	}
	state.pushModal(&PromptModal{
		Label: r.msg(label),
		OnSubmit: func(r *StateReducer, s *AppState, name string) {
			r.createEntry(s, name, dir)
		},
	})
	return true
}

// createEntry makes a file or directory in the current directory and moves
// the cursor onto it.
func (r *StateReducer) createEntry(state *AppState, name string, dir bool) bool {
	if name == "" {
		return false
	}
	fail := func(tone Tone, msg string) bool {
		state.pushModal(&MessageModal{Lines: []string{msg}, Tone: tone})
		return false
	}
	log := r.log.WithFields(logrus.Fields{"name": name, "path": state.Dir.Path})

	if err := ValidateName(name); err != nil {
		log.WithError(err).Info("rejected name")
		return fail(ToneWarning, r.msg(i18n.CreateInvalidName))
	}
	path := filepath.Join(state.Dir.Path, name)
	if r.deps.Files.Exists(path) {
		if dir {
			return fail(ToneWarning, r.msg(i18n.CreateDirExists))
		}
		return fail(ToneWarning, r.msg(i18n.CreateFileExists))
	}

	var err error
	if dir {
		err = r.deps.Files.CreateDir(path)
	} else {
		err = r.deps.Files.CreateFile(path)
	}
	if err != nil {
		log.WithError(err).Warn("create failed")
		return fail(ToneError, r.msg(i18n.CreateFailed, "error", reasonOf(err)))
	}

	r.refresh(state)
	for i, e := range state.ActiveEntries() {
		if e.Name == name {
			state.Cursor = i
			break
		}
	}
	done := i18n.CreateFileDone
	if dir {
		done = i18n.CreateDirDone
	}
	state.setStatus(ToneSuccess, r.msg(done, "name", name))
	return true
}

func (r *StateReducer) yankPath(state *AppState) bool {
	entry, ok := state.CurrentEntry()
	if !ok {
		return false
	}
	if r.deps.Clipboard == nil {
		state.setStatus(ToneWarning, r.msg(i18n.ClipboardUnavailable, "error", "no clipboard"))
		return false
	}
	if err := r.deps.Clipboard.WriteAll(entry.Path); err != nil {
		r.log.WithError(err).Warn("clipboard write failed")
		state.setStatus(ToneError, r.msg(i18n.ClipboardUnavailable, "error", err.Error()))
		return false
	}
	state.setStatus(ToneSuccess, r.msg(i18n.ClipboardCopied, "path", entry.Path))
	return true
}
