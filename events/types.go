package events

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventSlotCompleted signals a lane's chord was fully matched
	// Trigger: SlotSystem on final note | Consumer: Game (attack resolve), audio
	// Payload: *SlotCompletedPayload
	EventSlotCompleted EventType = iota

	// EventSlotExpired signals a lane timer reached zero unmatched
	// Trigger: SlotSystem tick | Consumer: audio, HUD
	// Payload: *SlotExpiredPayload
	EventSlotExpired

	// EventNoteSubmitted signals a raw note-on reached the matcher
	// Trigger: Game input drain | Consumer: audio
	// Payload: *NoteSubmittedPayload
	EventNoteSubmitted

	// EventEnemyKilled signals an enemy death after damage resolution
	// Trigger: CombatSystem death phase | Consumer: WaveSystem already
	// counted the kill; audio/HUD react | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerDamaged signals the player took mitigated damage
	// Trigger: CombatSystem | Consumer: audio, HUD
	// Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventItemPickedUp signals a pickup was consumed
	// Trigger: PickupSystem | Payload: *ItemPickedUpPayload
	EventItemPickedUp

	// EventWaveCompleted signals quota met within the time box
	// Trigger: WaveSystem at tick boundary | Payload: *WavePayload
	EventWaveCompleted

	// EventWaveFailed signals the time box elapsed under quota
	// Trigger: WaveSystem at tick boundary | Payload: *WavePayload
	EventWaveFailed

	// EventLevelUp signals an experience threshold crossing
	// Trigger: ProgressionSystem | Payload: *LevelUpPayload
	EventLevelUp

	// EventBonusSelected signals a level-up option commit
	// Trigger: ProgressionSystem (chord, timeout, or auto-select)
	// Payload: *BonusSelectedPayload
	EventBonusSelected

	// EventGameOver is the terminal signal for the session
	// Trigger: WaveSystem (quota_failed) or CombatSystem (player death)
	// Payload: *GameOverPayload
	EventGameOver
)

// GameEvent is one queued simulation event. Timestamp is game time,
// Tick the simulation tick that produced it.
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64
	Timestamp time.Duration
}
