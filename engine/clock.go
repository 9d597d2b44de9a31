package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time for the tick driver.
// Simulation state never reads it directly: the driver converts its
// readings into dt and the world accumulates game time from dt alone,
// so pausing is exactly "no ticks happen".
type PausableClock struct {
	mu sync.RWMutex

	realStart time.Time
	isPaused  atomic.Bool

	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a clock anchored at the current instant.
func NewPausableClock() *PausableClock {
	return &PausableClock{realStart: time.Now()}
}

// Elapsed returns game time since creation, excluding paused spans.
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStart.Sub(pc.realStart) - pc.totalPaused
	}
	return time.Since(pc.realStart) - pc.totalPaused
}

// Pause stops game time advancement.
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStart = time.Now()
		pc.mu.Unlock()
	}
}

// Resume continues game time advancement.
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		if !pc.pauseStart.IsZero() {
			pc.totalPaused += time.Since(pc.pauseStart)
			pc.pauseStart = time.Time{}
		}
		pc.mu.Unlock()
	}
}

// IsPaused returns current pause state.
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}
