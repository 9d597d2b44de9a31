package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/soramame/chordfall/core"
	"github.com/soramame/chordfall/engine"
)

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestNoteKeyDecoding(t *testing.T) {
	tests := []struct {
		key  rune
		want core.PitchClass
	}{
		{'a', 0}, {'w', 1}, {'s', 2}, {'d', 4}, {'f', 5},
		{'g', 7}, {'h', 9}, {'j', 11},
	}

	for _, tt := range tests {
		buf := engine.NewInputBuffer()
		h := NewHandler(buf)
		if got := h.HandleKey(keyEvent(tt.key)); got != ActionNone {
			t.Errorf("Expected no driver action for %q, got %v", tt.key, got)
		}
		notes, _ := buf.Drain()
		if len(notes) != 1 || notes[0] != tt.want {
			t.Errorf("Expected pitch %d for key %q, got %v", tt.want, tt.key, notes)
		}
	}
}

func TestDirectionKeys(t *testing.T) {
	buf := engine.NewInputBuffer()
	h := NewHandler(buf)

	h.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if _, dir := buf.Drain(); dir != core.DirN {
		t.Errorf("Expected north from the up arrow, got %v", dir)
	}

	h.HandleKey(keyEvent('c'))
	if _, dir := buf.Drain(); dir != core.DirNE {
		t.Errorf("Expected north-east from c, got %v", dir)
	}

	h.HandleKey(keyEvent('.'))
	if _, dir := buf.Drain(); dir != core.DirNone {
		t.Errorf("Expected stop from dot, got %v", dir)
	}
}

func TestDriverActions(t *testing.T) {
	h := NewHandler(engine.NewInputBuffer())

	if got := h.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); got != ActionQuit {
		t.Errorf("Expected quit from escape, got %v", got)
	}
	if got := h.HandleKey(keyEvent('q')); got != ActionQuit {
		t.Errorf("Expected quit from q, got %v", got)
	}
	if got := h.HandleKey(keyEvent('p')); got != ActionTogglePause {
		t.Errorf("Expected pause toggle from p, got %v", got)
	}
	if got := h.HandleKey(keyEvent('Z')); got != ActionNone {
		t.Errorf("Expected unbound key ignored, got %v", got)
	}
}
