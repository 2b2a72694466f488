package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/beniya/internal/config"
	"github.com/kk-code-lab/beniya/internal/process"
	"github.com/kk-code-lab/beniya/internal/state"
)

type recordingClipboard struct {
	text string
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

type recordingRunner struct {
	commands []process.Command
}

func (r *recordingRunner) Run(cmd process.Command) (process.Result, error) {
	r.commands = append(r.commands, cmd)
	return process.Result{}, nil
}

func newTestApp(t *testing.T, cfg *config.Config, clip state.Clipboard) (*Application, tcell.SimulationScreen, string) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.BookmarksFile = filepath.Join(t.TempDir(), "bookmarks.json")

	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	scr.SetSize(80, 24)

	app, err := NewApplication(Options{
		Config:    cfg,
		StartPath: dir,
		Screen:    scr,
		Runner:    &recordingRunner{},
		Clipboard: clip,
		LookPath:  func(string) (string, error) { return "", errors.New("not found") },
	})
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app, scr, dir
}

func TestRunAppliesKeysUntilQuit(t *testing.T) {
	app, scr, _ := newTestApp(t, nil, &recordingClipboard{})

	scr.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	app.Run()

	if app.state.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", app.state.Cursor)
	}
	if app.Interrupted() {
		t.Fatalf("quit key must not count as an interruption")
	}
	if got := app.ExitMessage(); got != "beniya terminated" {
		t.Fatalf("unexpected exit message %q", got)
	}
}

func TestRunStopsOnSignal(t *testing.T) {
	app, scr, _ := newTestApp(t, nil, &recordingClipboard{})

	if err := scr.PostEvent(tcell.NewEventInterrupt(os.Interrupt)); err != nil {
		t.Fatal(err)
	}
	app.Run()

	if !app.Interrupted() {
		t.Fatalf("expected the loop to end as interrupted")
	}
	if got := app.ExitMessage(); got != "beniya interrupted" {
		t.Fatalf("unexpected exit message %q", got)
	}
}

func TestYankUsesClipboard(t *testing.T) {
	clip := &recordingClipboard{}
	app, scr, dir := newTestApp(t, nil, clip)

	scr.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	app.Run()

	if clip.text != filepath.Join(app.CurrentPath(), "a.txt") || app.CurrentPath() == "" {
		t.Fatalf("expected %s yanked, got %q", filepath.Join(dir, "a.txt"), clip.text)
	}
}

func TestCustomKeybindsAreApplied(t *testing.T) {
	cfg := &config.Config{Keybinds: map[string][]string{"quit": {"Q"}}}
	app, scr, _ := newTestApp(t, cfg, &recordingClipboard{})

	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'Q', tcell.ModNone)
	app.Run()

	if app.state.Cursor != 1 {
		t.Fatalf("q must no longer quit; expected cursor 1, got %d", app.state.Cursor)
	}
}

func TestNewApplicationRejectsUnknownKeybind(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatal(err)
	}
	defer scr.Fini()

	_, err := NewApplication(Options{
		Config:    &config.Config{Keybinds: map[string][]string{"explode": {"e"}}},
		StartPath: t.TempDir(),
		Screen:    scr,
	})
	if !errors.Is(err, state.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestNewApplicationRejectsMissingStartPath(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatal(err)
	}
	defer scr.Fini()

	_, err := NewApplication(Options{
		Config:    &config.Config{},
		StartPath: filepath.Join(t.TempDir(), "missing"),
		Screen:    scr,
	})
	if err == nil {
		t.Fatalf("expected an error for a missing start directory")
	}
}

func TestScreenRunnerOnlySuspendsForInteractiveCommands(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatal(err)
	}
	defer scr.Fini()
	inner := &recordingRunner{}
	runner := &screenRunner{screen: scr, inner: inner}

	for _, cmd := range []process.Command{
		{Name: "zoxide", Args: []string{"query", "--list"}},
		{Name: "fzf", Interactive: true},
	} {
		if _, err := runner.Run(cmd); err != nil {
			t.Fatalf("Run(%s): %v", cmd, err)
		}
	}
	if len(inner.commands) != 2 || inner.commands[1].Name != "fzf" {
		t.Fatalf("expected both commands forwarded, got %v", inner.commands)
	}
}

func TestResolveEditor(t *testing.T) {
	env := map[string]string{"EDITOR": "nvim"}
	getenv := func(k string) string { return env[k] }

	if got := resolveEditor("code", getenv); got != "code" {
		t.Fatalf("plain applications are kept, got %q", got)
	}
	if got := resolveEditor(EditorPlaceholder, getenv); got != "nvim" {
		t.Fatalf("expected $EDITOR, got %q", got)
	}
	env["VISUAL"] = "code --wait"
	if got := resolveEditor(EditorPlaceholder, getenv); got != "code --wait" {
		t.Fatalf("expected $VISUAL to win, got %q", got)
	}
	if got := resolveEditor(EditorPlaceholder, func(string) string { return "" }); got != fallbackEditor {
		t.Fatalf("expected fallback editor, got %q", got)
	}

	apps := resolveApplications([]config.Application{{Match: "*.go", App: EditorPlaceholder}}, getenv)
	if apps[0].App != "code --wait" || apps[0].Match != "*.go" {
		t.Fatalf("unexpected resolved table %+v", apps)
	}
}

func TestNormalizeClipboardPath(t *testing.T) {
	if got := normalizeClipboardPath("/tmp/a/../b.txt", "linux"); got != "/tmp/b.txt" {
		t.Fatalf("expected cleaned posix path, got %q", got)
	}
	if got := normalizeClipboardPath("C:/Users/me/file.txt", "windows"); got != `C:\Users\me\file.txt` {
		t.Fatalf("expected backslashes on windows, got %q", got)
	}
}
