//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/kk-code-lab/beniya/internal/state"
)

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	if err := app.screen.Suspend(); err != nil {
		app.log.WithError(err).Warn("suspend failed")
		return
	}
	// Stop only this process so the launching shell keeps job control.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		app.log.WithError(err).Warn("resume failed")
		return false
	}
	w, h := app.screen.Size()
	return app.reducer.Reduce(app.state, state.ResizeAction{Width: w, Height: h})
}

// SIGCONT arrives after the shell resumes a job stopped with Ctrl+Z.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}
