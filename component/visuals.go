package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/core"
)

// Timed visual events are presentation-only but owned by the world so
// their expiry follows game time and pauses exactly.

// DamageText floats a number above a hit position.
type DamageText struct {
	ID       core.Entity
	Pos      mgl32.Vec2
	Amount   int
	Age      time.Duration
	Duration time.Duration
}

// Shockwave is the visual trace of a melee arc. Damage is applied
// once at spawn; the animation outlives the hit.
type Shockwave struct {
	ID       core.Entity
	Pos      mgl32.Vec2
	Dir      core.Direction
	Radius   float32
	Age      time.Duration
	Duration time.Duration
}

// Lightning marks a lane C strike position.
type Lightning struct {
	ID       core.Entity
	Pos      mgl32.Vec2
	Age      time.Duration
	Duration time.Duration
}
