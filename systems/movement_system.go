package systems

import (
	"time"

	"github.com/soramame/chordfall/core"
	"github.com/soramame/chordfall/engine"
)

// MovementSystem integrates positions: player intent, enemy pursuit
// and knockback, projectile flight. All positions clamp to the map.
type MovementSystem struct{}

// NewMovementSystem creates the movement integrator.
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Priority returns the system's priority (after status modifiers).
func (s *MovementSystem) Priority() int {
	return 30
}

// Update advances every moving entity by dt.
func (s *MovementSystem) Update(w *engine.World, dt time.Duration) {
	step := float32(dt.Seconds())

	if p := w.Player; p != nil {
		if p.Move != core.DirNone {
			p.Facing = p.Move
			speed := p.Stats.Speed * float32(p.Mods.Speed)
			p.Pos = engine.Clamp(p.Pos.Add(p.Move.UnitVec().Mul(speed * step)))
		}
	}

	for _, e := range w.Enemies {
		if e.Dead {
			continue
		}
		if e.KnockbackLeft > 0 {
			e.KnockbackLeft -= dt
			e.Pos = engine.Clamp(e.Pos.Add(e.Knockback.Mul(step)))
			continue
		}
		if w.Player == nil {
			continue
		}
		to := w.Player.Pos.Sub(e.Pos)
		if to.Len() == 0 {
			continue
		}
		e.Dir = core.DirectionFromVec(to)
		speed := e.Stats.Speed * float32(e.Mods.Speed)
		e.Pos = engine.Clamp(e.Pos.Add(to.Normalize().Mul(speed * step)))
	}

	for _, p := range w.Projectiles {
		if p.Spent {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(step))
		p.RangeLeft -= p.Vel.Len() * step
		if p.RangeLeft <= 0 {
			p.Spent = true
		}
	}

	for _, p := range w.EnemyProjectiles {
		if p.Spent {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(step))
		p.Age += dt
		if p.Age >= p.Lifetime {
			p.Spent = true
		}
	}
}
