package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/core"
)

// EnemyType is a closed set; spawn tables may only reference these.
type EnemyType int

const (
	EnemySlime EnemyType = iota
	EnemyBat
	EnemyWolf
	EnemyGolem
	EnemySpecter
	EnemyDragon // boss
	enemyTypeCount
)

// String returns the enemy type name used by content tables.
func (t EnemyType) String() string {
	switch t {
	case EnemySlime:
		return "slime"
	case EnemyBat:
		return "bat"
	case EnemyWolf:
		return "wolf"
	case EnemyGolem:
		return "golem"
	case EnemySpecter:
		return "specter"
	case EnemyDragon:
		return "dragon"
	default:
		return "unknown"
	}
}

// EnemyTypeByName resolves a content table name to a type.
func EnemyTypeByName(name string) (EnemyType, bool) {
	for t := EnemySlime; t < enemyTypeCount; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Enemy is a wave-spawned hostile entity.
type Enemy struct {
	ID   core.Entity
	Pos  mgl32.Vec2
	Dir  core.Direction
	Type EnemyType
	Boss bool

	Stats   Stats
	Effects []StatusEffect
	Mods    Modifiers

	ContactDamage int

	// Knockback velocity overrides pursuit while KnockbackLeft > 0.
	Knockback     mgl32.Vec2
	KnockbackLeft time.Duration

	// FireTick accumulates time toward the next DOT application.
	FireTick time.Duration

	// AttackTimer paces ranged enemy shots.
	AttackTimer time.Duration

	// Dead marks the enemy for end-of-tick removal.
	Dead bool
}
