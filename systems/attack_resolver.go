package systems

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/core"
	"github.com/soramame/chordfall/engine"
)

// AttackResolver translates a completed code slot into world actions:
// lane A spawns a projectile, lane B a melee shockwave, lanes C and D
// the lightning and firewall spells. Not a per-tick system; the game
// invokes it between input drain and the system pass.
type AttackResolver struct{}

// NewAttackResolver creates the resolver.
func NewAttackResolver() *AttackResolver {
	return &AttackResolver{}
}

// Resolve fires the lane's attack using the stat snapshot taken when
// the chord completed.
func (r *AttackResolver) Resolve(w *engine.World, lane core.Lane, stats component.Stats) {
	p := w.Player
	if p == nil {
		return
	}

	switch lane {
	case core.LaneA:
		r.ranged(w, stats)
	case core.LaneB:
		r.melee(w, stats)
	case core.LaneC:
		r.lightning(w, stats)
	case core.LaneD:
		r.firewall(w, stats)
	}
}

// laneDamage is base × lane attack level × active attack modifier ×
// multi-hit bonus. Enemy defense mitigates later, at hit time.
func (r *AttackResolver) laneDamage(w *engine.World, lane core.Lane, stats component.Stats) float64 {
	level := stats.AttackLevel[lane]
	if level < 1 {
		level = 1
	}
	dmg := float64(constant.LaneBaseDamage * level)
	dmg *= w.Player.Mods.Attack
	dmg *= 1 + constant.MultiHitDamageStep*float64(stats.MultiHitLevel)
	return dmg
}

// ranged spawns a lane A shot toward the nearest enemy, or along the
// facing direction when the field is empty.
func (r *AttackResolver) ranged(w *engine.World, stats component.Stats) {
	p := w.Player

	dir := p.Facing.UnitVec()
	if target := w.NearestEnemy(p.Pos); target != nil {
		to := target.Pos.Sub(p.Pos)
		if to.Len() > 0 {
			dir = to.Normalize()
		}
	}
	if dir.Len() == 0 {
		dir = mgl32.Vec2{1, 0}
	}

	proj := &component.Projectile{
		ID:          w.NextID(),
		Pos:         p.Pos,
		Vel:         dir.Mul(constant.ProjectileSpeed),
		Damage:      int(r.laneDamage(w, core.LaneA, stats)),
		RangeLeft:   constant.ProjectileRange,
		Penetrating: p.Skills.Penetration,
	}
	if proj.Penetrating {
		proj.Hit = make(map[core.Entity]struct{})
	}
	w.Projectiles = append(w.Projectiles, proj)
}

// melee damages every enemy inside the facing arc once, immediately,
// and leaves a shockwave visual whose animation outlives the hit.
func (r *AttackResolver) melee(w *engine.World, stats component.Stats) {
	p := w.Player
	radius := constant.MeleeRadius * float32(stats.AreaScale)
	dmg := r.laneDamage(w, core.LaneB, stats)

	facing := p.Facing
	if facing == core.DirNone {
		facing = core.DirE
	}
	forward := facing.UnitVec()
	minDot := float32(math.Cos(constant.MeleeArc / 2))

	for _, e := range w.Enemies {
		if e.Dead || e.Stats.Health <= 0 {
			continue
		}
		to := e.Pos.Sub(p.Pos)
		d := to.Len()
		if d > radius {
			continue
		}
		// Point-blank targets are always inside the arc.
		if d > 0 && to.Normalize().Dot(forward) < minDot {
			continue
		}
		DamageEnemy(w, e, dmg)
		KnockbackEnemy(w, e, p.Pos)
	}

	w.Shockwaves = append(w.Shockwaves, &component.Shockwave{
		ID:       w.NextID(),
		Pos:      p.Pos,
		Dir:      facing,
		Radius:   radius,
		Duration: constant.ShockwaveDuration,
	})
}

// lightning strikes the nearest enemy's position with splash damage.
func (r *AttackResolver) lightning(w *engine.World, stats component.Stats) {
	target := w.NearestEnemy(w.Player.Pos)
	if target == nil {
		return
	}
	center := target.Pos
	radius := constant.LightningRadius * float32(stats.AreaScale)
	dmg := r.laneDamage(w, core.LaneC, stats) * 1.5

	for _, e := range w.Enemies {
		if e.Dead || e.Stats.Health <= 0 {
			continue
		}
		if e.Pos.Sub(center).Len() <= radius {
			DamageEnemy(w, e, dmg)
		}
	}

	w.Lightnings = append(w.Lightnings, &component.Lightning{
		ID:       w.NextID(),
		Pos:      center,
		Duration: constant.LightningDuration,
	})
}

// firewall ignites every enemy around the player with a fire DOT.
func (r *AttackResolver) firewall(w *engine.World, stats component.Stats) {
	p := w.Player
	radius := constant.FirewallRadius * float32(stats.AreaScale)
	level := stats.AttackLevel[core.LaneD]
	if level < 1 {
		level = 1
	}
	dur := time.Duration(float64(constant.FirewallDuration) * stats.TimeScale)

	for _, e := range w.Enemies {
		if e.Dead || e.Stats.Health <= 0 {
			continue
		}
		if e.Pos.Sub(p.Pos).Len() > radius {
			continue
		}
		ApplyStatus(&e.Effects, w.Now, component.StatusApplication{
			Kind:     component.StatusFire,
			Duration: dur,
			Level:    level,
		})
	}

	w.Shockwaves = append(w.Shockwaves, &component.Shockwave{
		ID:       w.NextID(),
		Pos:      p.Pos,
		Dir:      core.DirNone,
		Radius:   radius,
		Duration: constant.ShockwaveDuration,
	})
}
