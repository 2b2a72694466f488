package app

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/beniya/internal/config"
	"github.com/kk-code-lab/beniya/internal/process"
)

// EditorPlaceholder in the application table stands for the user's editor.
const EditorPlaceholder = "$EDITOR"

const fallbackEditor = "vi"

var errClipboardUnsupported = errors.New("no clipboard utility found")

// systemClipboard writes through atotto/clipboard, which shells out to
// pbcopy, xclip, xsel, wl-copy or the Windows clipboard API.
type systemClipboard struct {
	goos string
}

func newSystemClipboard() systemClipboard {
	return systemClipboard{goos: runtime.GOOS}
}

func (c systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(normalizeClipboardPath(text, c.goos))
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}

// resolveEditor replaces EditorPlaceholder with $VISUAL or $EDITOR.
func resolveEditor(app string, getenv func(string) string) string {
	if strings.TrimSpace(app) != EditorPlaceholder {
		return app
	}
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if editor := strings.TrimSpace(getenv(name)); editor != "" {
			return editor
		}
	}
	return fallbackEditor
}

func resolveApplications(apps []config.Application, getenv func(string) string) []config.Application {
	resolved := make([]config.Application, len(apps))
	for i, app := range apps {
		resolved[i] = config.Application{Match: app.Match, App: resolveEditor(app.App, getenv)}
	}
	return resolved
}

// screenRunner hands the terminal to interactive programs (fzf, vim, ...)
// and takes it back when they exit.
type screenRunner struct {
	screen tcell.Screen
	inner  process.Runner
}

func (r *screenRunner) Run(cmd process.Command) (process.Result, error) {
	if !cmd.Interactive {
		return r.inner.Run(cmd)
	}
	if err := r.screen.Suspend(); err != nil {
		return process.Result{}, fmt.Errorf("suspend screen: %w", err)
	}
	res, err := r.inner.Run(cmd)
	if rerr := r.screen.Resume(); rerr != nil && err == nil {
		err = fmt.Errorf("resume screen: %w", rerr)
	}
	r.screen.Sync()
	return res, err
}
