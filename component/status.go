package component

import "time"

// StatusKind identifies a timed status effect. Conditional skills
// (haisui_no_jin, zekkouchou) are not kinds: they are derived from
// current health every tick, never stored with a timer.
type StatusKind int

const (
	StatusAtkUp StatusKind = iota
	StatusDefUp
	StatusSpeedUp
	StatusSlow
	StatusFire  // damage over time
	StatusRegen // heal over time
)

// String returns the effect name used in logs and the HUD.
func (k StatusKind) String() string {
	switch k {
	case StatusAtkUp:
		return "atk_up"
	case StatusDefUp:
		return "def_up"
	case StatusSpeedUp:
		return "speed_up"
	case StatusSlow:
		return "slow"
	case StatusFire:
		return "fire"
	case StatusRegen:
		return "regen"
	default:
		return "unknown"
	}
}

// StatusEffect is one active timed modifier on an entity.
// At most one instance per (entity, kind): re-application refreshes
// Remaining to the larger duration and Level to the larger level.
type StatusEffect struct {
	Kind      StatusKind
	Remaining time.Duration
	Started   time.Duration // game time at first application
	Level     int
}

// StatusApplication describes an on-hit effect carried by an attack.
type StatusApplication struct {
	Kind     StatusKind
	Duration time.Duration
	Level    int
}
