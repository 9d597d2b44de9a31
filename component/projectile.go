package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/core"
)

// Projectile is a player-owned ranged attack.
type Projectile struct {
	ID     core.Entity
	Pos    mgl32.Vec2
	Vel    mgl32.Vec2
	Damage int

	// RangeLeft is the remaining travel distance in world units.
	RangeLeft float32

	Penetrating bool
	// Hit records enemies already damaged by this projectile.
	// A penetrating shot damages a given enemy at most once.
	Hit map[core.Entity]struct{}

	// Spent marks the projectile for end-of-tick removal.
	Spent bool
}

// EnemyProjectile is a hostile shot aimed at the player.
type EnemyProjectile struct {
	ID       core.Entity
	Pos      mgl32.Vec2
	Vel      mgl32.Vec2
	Damage   int
	Lifetime time.Duration
	Age      time.Duration

	// OnHit is an optional status effect applied to the player.
	OnHit *StatusApplication

	// Spent marks the projectile for end-of-tick removal.
	Spent bool
}
