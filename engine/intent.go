package engine

import (
	"sync"

	"github.com/soramame/chordfall/core"
)

// InputBuffer collects intents from the input goroutine between
// ticks. The tick loop drains it exactly once per tick.
type InputBuffer struct {
	mu    sync.Mutex
	notes []core.PitchClass
	dir   core.Direction
}

// NewInputBuffer creates an empty buffer with no movement intent.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{dir: core.DirNone}
}

// PushNote queues a note-on. Invalid pitch classes are dropped here
// so the matcher only ever sees 0..11.
func (b *InputBuffer) PushNote(pc core.PitchClass) {
	if !pc.Valid() {
		return
	}
	b.mu.Lock()
	b.notes = append(b.notes, pc)
	b.mu.Unlock()
}

// SetDirection records the current movement intent. DirNone stops.
func (b *InputBuffer) SetDirection(d core.Direction) {
	b.mu.Lock()
	b.dir = d
	b.mu.Unlock()
}

// Drain returns queued notes and the movement intent, clearing the
// note batch.
func (b *InputBuffer) Drain() ([]core.PitchClass, core.Direction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	notes := b.notes
	b.notes = nil
	return notes, b.dir
}
