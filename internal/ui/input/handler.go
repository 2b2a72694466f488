package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/beniya/internal/state"
)

// InputHandler converts tcell events into keys and actions and applies them
// to the state.
type InputHandler struct {
	reducer *state.StateReducer
	state   *state.AppState
}

// NewInputHandler creates a new input handler
func NewInputHandler(reducer *state.StateReducer, st *state.AppState) *InputHandler {
	return &InputHandler{reducer: reducer, state: st}
}

// ProcessEvent applies one terminal event. It reports whether the state
// changed and the screen needs a new frame.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return ih.reducer.Reduce(ih.state, state.ResizeAction{Width: w, Height: h})
	default:
		return false
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	key, ok := KeyForEvent(ev)
	if !ok {
		return false
	}
	return ih.reducer.HandleKey(ih.state, key)
}

// KeyForEvent names a key press the way keymaps and dialogs expect it.
// Keys with no name (function keys, Ctrl chords including Ctrl+C) are
// reported as not ok.
func KeyForEvent(ev *tcell.EventKey) (state.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "", false
		}
		return state.Key(string(ev.Rune())), true
	case tcell.KeyEnter:
		return state.KeyEnter, true
	case tcell.KeyEscape:
		return state.KeyEscape, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return state.KeyBackspace, true
	case tcell.KeyTab:
		return state.KeyTab, true
	case tcell.KeyUp:
		return state.KeyUp, true
	case tcell.KeyDown:
		return state.KeyDown, true
	case tcell.KeyLeft:
		return state.KeyLeft, true
	case tcell.KeyRight:
		return state.KeyRight, true
	default:
		return "", false
	}
}
