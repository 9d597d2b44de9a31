package component

import (
	"time"

	"github.com/soramame/chordfall/core"
)

// CodeSlot is one lane of the chord-matching state machine.
//
// Lifecycle: Disabled -> Idle (chord assigned, timer running) ->
// Completing (matched set full, pending resolve) -> Idle (next chord),
// with Idle -> Expired -> Idle (next chord) on timeout.
type CodeSlot struct {
	Lane core.Lane

	// Chord is the active requirement; nil disables the lane.
	Chord *core.Chord
	// Next is the queued replacement shown to the player.
	Next *core.Chord

	// Matched holds indices into Chord.Notes already satisfied.
	Matched map[int]struct{}

	Remaining time.Duration
	Completed bool
	Enabled   bool

	// Cooldown gates magic lanes; while > 0 the lane rejects notes
	// and its timer is held.
	Cooldown time.Duration
}

// Progress returns the matched fraction of the active chord, 0 when
// the lane has no chord.
func (s *CodeSlot) Progress() float64 {
	if s.Chord == nil || len(s.Chord.Notes) == 0 {
		return 0
	}
	return float64(len(s.Matched)) / float64(len(s.Chord.Notes))
}

// TimerFraction returns remaining/full timeout clamped to [0,1].
func (s *CodeSlot) TimerFraction(timeout time.Duration) float64 {
	if timeout <= 0 || s.Remaining <= 0 {
		return 0
	}
	f := float64(s.Remaining) / float64(timeout)
	if f > 1 {
		return 1
	}
	return f
}

// Accepting reports whether the lane can receive note contributions.
func (s *CodeSlot) Accepting() bool {
	return s.Enabled && !s.Completed && s.Cooldown <= 0 && s.Chord != nil
}
