package events

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/core"
)

// SlotCompletedPayload carries the completed lane, its chord, and the
// player stat snapshot taken at completion time.
type SlotCompletedPayload struct {
	Lane  core.Lane
	Chord *core.Chord
	Stats component.Stats
}

// SlotExpiredPayload carries the lane and the chord that timed out.
type SlotExpiredPayload struct {
	Lane  core.Lane
	Chord *core.Chord
}

// NoteSubmittedPayload carries one raw note-on.
type NoteSubmittedPayload struct {
	Pitch core.PitchClass
}

// EnemyKilledPayload identifies the dead enemy and its position.
type EnemyKilledPayload struct {
	ID   core.Entity
	Type component.EnemyType
	Boss bool
	Pos  mgl32.Vec2
}

// PlayerDamagedPayload carries post-mitigation damage.
type PlayerDamagedPayload struct {
	Amount    int
	Remaining int
}

// ItemPickedUpPayload identifies a consumed pickup.
type ItemPickedUpPayload struct {
	Item component.ItemType
}

// WavePayload identifies the wave an outcome belongs to.
type WavePayload struct {
	Number int
	Kills  int
	Quota  int
}

// LevelUpPayload carries the new level.
type LevelUpPayload struct {
	NewLevel int
}

// BonusSelectedPayload records which option was committed and how.
type BonusSelectedPayload struct {
	BonusID string
	Auto    bool // true when committed by timeout or auto-select
}

// GameOverPayload is the terminal session record for the persistence
// collaborator.
type GameOverPayload struct {
	Reason   string
	Wave     int
	Level    int
	Survived time.Duration
}
