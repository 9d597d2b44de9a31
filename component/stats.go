package component

import "github.com/soramame/chordfall/core"

// Stats is the mutable stat block shared by player and enemies.
// Player stats grow through level-up bonuses; enemy stats are set at
// spawn from the stage table and wave multiplier.
type Stats struct {
	// AttackLevel scales damage per lane (ranged/melee/magic).
	AttackLevel [core.LaneCount]int

	Speed     float32 // world units per second
	Defense   int
	MaxHealth int
	Health    int
	Luck      int

	// CooldownReduction is the fraction shaved off magic cooldowns.
	CooldownReduction float64
	// AreaScale multiplies attack radii.
	AreaScale float64
	// TimeScale multiplies applied status effect durations.
	TimeScale float64

	MultiHitLevel int
}

// Modifiers are the derived stat multipliers recomputed from active
// status effects once per tick. Never persisted, never incremental.
type Modifiers struct {
	Attack  float64
	Defense float64
	Speed   float64
}

// NeutralModifiers returns the identity modifier set.
func NeutralModifiers() Modifiers {
	return Modifiers{Attack: 1, Defense: 1, Speed: 1}
}
