package systems

import (
	"log"
	"time"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/content"
	"github.com/soramame/chordfall/core"
	"github.com/soramame/chordfall/engine"
	"github.com/soramame/chordfall/events"
)

// SlotSystem runs the per-lane chord-matching state machines.
// Per lane: Disabled -> Idle (chord, timer) -> Completing (full match,
// pending resolve) -> Idle (next chord), plus Idle -> Expired -> Idle
// on timeout. Magic lanes add an independent cooldown gate.
type SlotSystem struct {
	provider *content.Provider
	queue    *events.Queue
}

// NewSlotSystem creates the lane matcher.
func NewSlotSystem(provider *content.Provider, queue *events.Queue) *SlotSystem {
	return &SlotSystem{provider: provider, queue: queue}
}

// Priority returns the system's priority (first of the tick).
func (s *SlotSystem) Priority() int {
	return 10
}

// Update advances lane timers and cooldowns by dt.
// A completed lane's timer is held: expiry must never re-trigger once
// the completion is pending resolution.
func (s *SlotSystem) Update(w *engine.World, dt time.Duration) {
	s.syncEnablement(w)

	for lane := core.LaneA; lane < core.LaneCount; lane++ {
		slot := w.Slots[lane]
		if !slot.Enabled {
			continue
		}

		if slot.Cooldown > 0 {
			slot.Cooldown -= dt
			if slot.Cooldown < 0 {
				slot.Cooldown = 0
			}
			// Timer held while cooling: the lane reads as disabled
			// to the player and must not expire underneath them.
			continue
		}

		if slot.Completed {
			continue
		}
		if slot.Chord == nil {
			s.advance(w, slot)
			continue
		}

		slot.Remaining -= dt
		if slot.Remaining <= 0 {
			s.queue.Push(events.GameEvent{
				Type:      events.EventSlotExpired,
				Payload:   &events.SlotExpiredPayload{Lane: lane, Chord: slot.Chord},
				Tick:      w.Frame,
				Timestamp: w.Now,
			})
			s.advance(w, slot)
		}
	}
}

// SubmitNote feeds one pitch class to every accepting lane. Returns
// the lanes completed by this note, in lane order.
// Idempotent: a note that only re-hits already-matched requirements
// changes nothing.
func (s *SlotSystem) SubmitNote(w *engine.World, pc core.PitchClass) []core.Lane {
	var completed []core.Lane
	for lane := core.LaneA; lane < core.LaneCount; lane++ {
		slot := w.Slots[lane]
		if !slot.Accepting() {
			continue
		}

		idx := slot.Chord.Index(pc)
		if idx < 0 {
			continue
		}
		if _, done := slot.Matched[idx]; done {
			continue
		}
		slot.Matched[idx] = struct{}{}

		if len(slot.Matched) == slot.Chord.Size() {
			slot.Completed = true
			completed = append(completed, lane)

			stats := component.Stats{}
			if w.Player != nil {
				stats = w.Player.Stats
			}
			s.queue.Push(events.GameEvent{
				Type: events.EventSlotCompleted,
				Payload: &events.SlotCompletedPayload{
					Lane:  lane,
					Chord: slot.Chord,
					Stats: stats,
				},
				Tick:      w.Frame,
				Timestamp: w.Now,
			})
		}
	}
	return completed
}

// Assign places a chord on a lane, resetting match progress and the
// countdown. Assigning over an unresolved completion is a programming
// error; the slot is left untouched. A disabled lane ignores the call.
// A malformed chord disables the lane until replaced.
func (s *SlotSystem) Assign(w *engine.World, lane core.Lane, chord *core.Chord) error {
	slot := w.Slots[lane]
	if !slot.Enabled {
		return nil
	}
	if slot.Completed {
		log.Printf("lane %s: assign over pending completion: %v", lane, engine.ErrInvalidLaneState)
		return engine.ErrInvalidLaneState
	}

	if chord == nil || len(chord.Notes) == 0 {
		slot.Chord = nil
		slot.Enabled = false
		log.Printf("lane %s: malformed chord, lane disabled", lane)
		return nil
	}

	slot.Chord = chord
	slot.Matched = make(map[int]struct{})
	slot.Remaining = constant.SlotTimeout
	slot.Completed = false
	return nil
}

// Resolve clears a pending completion after the caller has translated
// it into world actions, starts the magic cooldown, and re-arms the
// lane with the queued chord.
func (s *SlotSystem) Resolve(w *engine.World, lane core.Lane) {
	slot := w.Slots[lane]
	if !slot.Completed {
		log.Printf("lane %s: resolve without completion: %v", lane, engine.ErrInvalidLaneState)
		return
	}
	slot.Completed = false

	if lane.Magic() {
		cd := constant.MagicCooldownC
		if lane == core.LaneD {
			cd = constant.MagicCooldownD
		}
		if w.Player != nil {
			cd = time.Duration(float64(cd) * (1 - w.Player.Stats.CooldownReduction))
		}
		if cd < 0 {
			cd = 0
		}
		slot.Cooldown = cd
	}

	s.advance(w, slot)
}

// advance promotes the queued chord and pulls a fresh replacement
// from the content provider.
func (s *SlotSystem) advance(w *engine.World, slot *component.CodeSlot) {
	next := slot.Next
	if next == nil {
		next = s.provider.NextChord(slot.Lane)
	}
	slot.Next = s.provider.NextChord(slot.Lane)

	if next == nil || len(next.Notes) == 0 {
		slot.Chord = nil
		slot.Enabled = false
		log.Printf("lane %s: content provider supplied no chord, lane disabled", slot.Lane)
		return
	}
	slot.Chord = next
	slot.Matched = make(map[int]struct{})
	slot.Remaining = constant.SlotTimeout
	slot.Completed = false
}

// syncEnablement opens lanes the player can actually use: A and B
// always, C and D once the matching magic is unlocked. A lane just
// enabled gets its first chord immediately.
func (s *SlotSystem) syncEnablement(w *engine.World) {
	if w.Player == nil {
		return
	}
	want := [core.LaneCount]bool{
		core.LaneA: true,
		core.LaneB: true,
		core.LaneC: w.Player.Magics.Lightning,
		core.LaneD: w.Player.Magics.Firewall,
	}
	for lane := core.LaneA; lane < core.LaneCount; lane++ {
		slot := w.Slots[lane]
		if want[lane] && !slot.Enabled && slot.Chord == nil {
			slot.Enabled = true
			s.advance(w, slot)
		}
	}
}
