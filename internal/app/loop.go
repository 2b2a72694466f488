package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/beniya/internal/state"
)

// Run draws a frame, waits for one event, applies it and repeats until the
// quit key or a terminating signal ends the session.
func (app *Application) Run() {
	stop := app.forwardSignals()
	defer stop()

	for !app.state.Quit {
		app.draw()
		ev := app.screen.PollEvent()
		if ev == nil {
			// The screen was finalized underneath us.
			return
		}
		app.handleEvent(ev)
	}
}

func (app *Application) draw() {
	if app.state.TakeFullRedraw() {
		app.screen.Clear()
	}
	app.renderer.Render(app.state)
	if app.state.TakeBell() {
		_ = app.screen.Beep()
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		sig, ok := ev.Data().(os.Signal)
		if !ok {
			return false
		}
		if isContinueSignal(sig) {
			return app.resumeAfterStop()
		}
		app.log.WithField("signal", sig.String()).Info("interrupted")
		app.interrupted = true
		return app.reducer.Reduce(app.state, state.QuitAction{})
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlZ {
			app.suspendToShell()
			return true
		}
		return app.input.ProcessEvent(ev)
	default:
		return app.input.ProcessEvent(ev)
	}
}

// forwardSignals turns process signals into interrupt events so the loop
// sees them through its single blocking read.
func (app *Application) forwardSignals() func() {
	sigCh := make(chan os.Signal, 1)
	sigs := append([]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}, contSignals()...)
	signal.Notify(sigCh, sigs...)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				_ = app.screen.PostEvent(tcell.NewEventInterrupt(sig))
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

func isContinueSignal(sig os.Signal) bool {
	for _, s := range contSignals() {
		if s == sig {
			return true
		}
	}
	return false
}
