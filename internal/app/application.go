package app

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/beniya/internal/bookmark"
	"github.com/kk-code-lab/beniya/internal/config"
	fsutil "github.com/kk-code-lab/beniya/internal/fs"
	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/logging"
	"github.com/kk-code-lab/beniya/internal/opener"
	"github.com/kk-code-lab/beniya/internal/process"
	"github.com/kk-code-lab/beniya/internal/search"
	"github.com/kk-code-lab/beniya/internal/state"
	inputui "github.com/kk-code-lab/beniya/internal/ui/input"
	renderui "github.com/kk-code-lab/beniya/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// Options configure NewApplication. Zero values select the real terminal,
// the os/exec runner and a discarding logger.
type Options struct {
	Config    *config.Config
	StartPath string
	Logger    logrus.FieldLogger
	// Screen must already be initialized when set.
	Screen    tcell.Screen
	Runner    process.Runner
	LookPath  process.LookPathFunc
	Clipboard state.Clipboard
	Getenv    func(string) string
}

// Application represents the running app.
type Application struct {
	screen      tcell.Screen
	state       *state.AppState
	reducer     *state.StateReducer
	renderer    *renderui.Renderer
	input       *inputui.InputHandler
	catalog     i18n.Catalog
	log         logrus.FieldLogger
	interrupted bool
}

// NewApplication lists the start directory, wires the collaborators and
// takes over the terminal.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("missing configuration")
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Clipboard == nil {
		opts.Clipboard = newSystemClipboard()
	}

	keymap, err := state.NewKeymap(cfg.Keybinds)
	if err != nil {
		return nil, err
	}

	start := opts.StartPath
	if start == "" {
		if start, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	model, err := state.LoadDirectory(fsutil.List, start)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", start, err)
	}

	bookmarks := bookmark.NewStore(cfg.BookmarksFile)
	if err := bookmarks.Load(); err != nil {
		log.WithError(err).WithField("path", cfg.BookmarksFile).Warn("bookmarks not loaded")
	}

	screen := opts.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
		if err := screen.Init(); err != nil {
			return nil, err
		}
	}

	inner := opts.Runner
	if inner == nil {
		inner = process.ExecRunner{}
	}
	runner := &screenRunner{screen: screen, inner: inner}

	open, err := opener.New(
		resolveApplications(cfg.Applications, opts.Getenv),
		resolveEditor(cfg.DefaultApplication, opts.Getenv),
		runner,
	)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	catalog := i18n.NewCatalog(cfg.Language)
	reducer := state.NewStateReducer(state.Deps{
		List:      fsutil.List,
		Files:     fsutil.Ops{},
		Bookmarks: bookmarks,
		Opener:    open,
		Search:    search.NewTools(runner, opts.LookPath, isDir),
		Clipboard: opts.Clipboard,
		Catalog:   catalog,
		Keymap:    &keymap,
		Logger:    log,
	})

	st := state.NewAppState(model, cfg.BaseDirectory)
	st.SetScreenSize(screen.Size())

	log.WithFields(logrus.Fields{"path": model.Path, "base": cfg.BaseDirectory}).Info("started")

	return &Application{
		screen:   screen,
		state:    st,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen, renderui.NewColorTheme(cfg.Colors), catalog, fsutil.NewPreviewer()),
		input:    inputui.NewInputHandler(reducer, st),
		catalog:  catalog,
		log:      log,
	}, nil
}

// Close restores the terminal.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// Interrupted reports whether the loop ended because of a signal rather
// than the quit key.
func (app *Application) Interrupted() bool {
	return app.interrupted
}

// ExitMessage is the line printed once the terminal has been restored.
func (app *Application) ExitMessage() string {
	if app.interrupted {
		return app.catalog.Msg(i18n.AppInterrupted)
	}
	return app.catalog.Msg(i18n.AppTerminated)
}

// CurrentPath returns the directory shown when the loop ended.
func (app *Application) CurrentPath() string {
	return app.state.Dir.Path
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
