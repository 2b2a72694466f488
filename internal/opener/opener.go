// Package opener hands files and directories to other programs.
package opener

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/kk-code-lab/beniya/internal/config"
	"github.com/kk-code-lab/beniya/internal/process"
	"github.com/skratchdot/open-golang/open"
)

// SystemApp names the platform's default opener in the application table.
const SystemApp = "open"

// Editors that take over the terminal while they run.
var terminalPrograms = map[string]struct{}{
	"vi": {}, "vim": {}, "nvim": {}, "nano": {}, "emacs": {},
	"micro": {}, "hx": {}, "helix": {}, "less": {}, "more": {},
}

var gotoPrograms = map[string]struct{}{
	"code": {}, "code-insiders": {}, "codium": {},
}

var plusLinePrograms = map[string]struct{}{
	"vi": {}, "vim": {}, "nvim": {}, "gvim": {},
}

type rule struct {
	pattern glob.Glob
	app     string
}

// Opener chooses an application per file name and launches it.
type Opener struct {
	rules      []rule
	defaultApp string
	runner     process.Runner
	systemOpen func(string) error
}

// New compiles the application table. Patterns match the lower-cased base
// name of the file.
func New(apps []config.Application, defaultApp string, runner process.Runner) (*Opener, error) {
	o := &Opener{
		defaultApp: defaultApp,
		runner:     runner,
		systemOpen: open.Run,
	}
	if strings.TrimSpace(o.defaultApp) == "" {
		o.defaultApp = SystemApp
	}
	for _, app := range apps {
		g, err := glob.Compile(strings.ToLower(app.Match))
		if err != nil {
			return nil, fmt.Errorf("invalid application pattern %q: %w", app.Match, err)
		}
		o.rules = append(o.rules, rule{pattern: g, app: app.App})
	}
	return o, nil
}

// ApplicationFor returns the configured command for path.
func (o *Opener) ApplicationFor(path string) string {
	name := strings.ToLower(filepath.Base(path))
	for _, r := range o.rules {
		if r.pattern.Match(name) {
			return r.app
		}
	}
	return o.defaultApp
}

// Open launches the application configured for path.
func (o *Opener) Open(path string) error {
	return o.OpenAt(path, 0)
}

// OpenAt launches the application for path, asking it to jump to line when
// it knows how. line < 1 means no particular line.
func (o *Opener) OpenAt(path string, line int) error {
	app := o.ApplicationFor(path)
	if app == SystemApp {
		if err := o.systemOpen(path); err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		return nil
	}

	cmd, err := Command(app, path, line)
	if err != nil {
		return err
	}
	res, err := o.runner.Run(cmd)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("open %s: %s exited with status %d", path, cmd.Name, res.ExitCode)
	}
	return nil
}

// Reveal shows dir in the system file explorer.
func (o *Opener) Reveal(dir string) error {
	if err := o.systemOpen(dir); err != nil {
		return fmt.Errorf("reveal %s: %w", dir, err)
	}
	return nil
}

// Command builds the invocation of app for path. VS Code gets --goto
// path:line, vi-family editors get +line, anything else just the path.
func Command(app, path string, line int) (process.Command, error) {
	args := SplitCommandLine(app)
	if len(args) == 0 {
		return process.Command{}, fmt.Errorf("empty application command")
	}
	program := strings.ToLower(strings.TrimSuffix(filepath.Base(args[0]), ".exe"))

	_, gotoLine := gotoPrograms[program]
	_, plusLine := plusLinePrograms[program]
	switch {
	case line > 0 && gotoLine:
		args = append(args, "--goto", path+":"+strconv.Itoa(line))
	case line > 0 && plusLine:
		args = append(args, "+"+strconv.Itoa(line), path)
	default:
		args = append(args, path)
	}

	_, interactive := terminalPrograms[program]
	return process.Command{Name: args[0], Args: args[1:], Interactive: interactive}, nil
}
