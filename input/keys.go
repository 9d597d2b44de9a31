// Package input maps terminal key events to simulation intents.
// The keyboard stands in for a note device: the home row plays white
// keys, the row above plays black keys. Arrow keys steer, diagonals
// via the corner keys.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/soramame/chordfall/core"
	"github.com/soramame/chordfall/engine"
)

// Action is a driver-level command decoded from a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
)

// noteKeys lays a single octave over the keyboard:
// a s d f g h j -> C D E F G A B, w e t y u -> C# D# F# G# A#.
var noteKeys = map[rune]core.PitchClass{
	'a': 0, 'w': 1, 's': 2, 'e': 3, 'd': 4,
	'f': 5, 't': 6, 'g': 7, 'y': 8, 'h': 9,
	'u': 10, 'j': 11,
}

// dirKeys steers with arrows; diagonals on z x c v.
var dirRunes = map[rune]core.Direction{
	'z': core.DirSW, 'x': core.DirSE, 'c': core.DirNE, 'v': core.DirNW,
	'.': core.DirNone,
}

// Handler feeds decoded intents into the simulation's input buffer.
type Handler struct {
	buf *engine.InputBuffer
}

// NewHandler creates a handler over the game's input buffer.
func NewHandler(buf *engine.InputBuffer) *Handler {
	return &Handler{buf: buf}
}

// HandleKey decodes one key event. Note and movement intents go to
// the buffer; driver commands are returned.
func (h *Handler) HandleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		h.buf.SetDirection(core.DirN)
		return ActionNone
	case tcell.KeyDown:
		h.buf.SetDirection(core.DirS)
		return ActionNone
	case tcell.KeyLeft:
		h.buf.SetDirection(core.DirW)
		return ActionNone
	case tcell.KeyRight:
		h.buf.SetDirection(core.DirE)
		return ActionNone
	}

	r := ev.Rune()
	if r == 'q' {
		return ActionQuit
	}
	if r == 'p' || r == ' ' {
		return ActionTogglePause
	}
	if pc, ok := noteKeys[r]; ok {
		h.buf.PushNote(pc)
		return ActionNone
	}
	if d, ok := dirRunes[r]; ok {
		h.buf.SetDirection(d)
		return ActionNone
	}
	return ActionNone
}
