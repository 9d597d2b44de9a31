package constant

import (
	"math"
	"time"
)

// Lane attack shapes.
const (
	ProjectileSpeed  float32 = 300
	ProjectileRange  float32 = 400
	ProjectileRadius float32 = 12 // hit test distance to enemy center

	MeleeRadius float32 = 80
	MeleeArc            = math.Pi / 2 // centered on facing direction

	LightningRadius float32 = 60
	FireDotInterval         = time.Second

	FirewallRadius   float32 = 100
	FirewallDuration         = 5 * time.Second
)

// Enemy contact and ranged attacks.
const (
	ContactRadius     float32 = 20
	EnemyShotInterval         = 2500 * time.Millisecond
	EnemyShotSpeed    float32 = 160
	EnemyShotLifetime         = 4 * time.Second
	// EnemyShotMinRange keeps ranged enemies from shooting point-blank.
	EnemyShotMinRange float32 = 60
)

// Damage scaling.
const (
	// LaneBaseDamage is multiplied by the lane's attack level.
	LaneBaseDamage = 10

	// MultiHitDamageStep is the bonus fraction per multi-hit level.
	MultiHitDamageStep = 0.25

	// EnemyDefenseFactor converts enemy defense points into a
	// mitigation fraction, capped below full immunity.
	EnemyDefenseFactor   = 0.02
	MaxDefenseMitigation = 0.8
)

// Status effect tuning.
const (
	// HaisuiThreshold is the health fraction at or below which
	// haisui_no_jin activates.
	HaisuiThreshold = 0.15

	HaisuiAttackBonus  = 2.0
	ZekkouchouBonus    = 1.3
	DefUpFactor        = 1.5
	AtkUpFactor        = 1.5
	SpeedUpFactor      = 1.4
	SlowFactor         = 0.5
	FireDamagePerTick  = 2
	RegenHealPerSecond = 2
)

// Knockback applied to non-boss enemies on heavy hits.
const (
	KnockbackSpeed    float32 = 240
	KnockbackDuration         = 250 * time.Millisecond
)
