package systems

import (
	"time"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/engine"
)

// ApplyStatus inserts or refreshes an effect on an effect list.
// At most one instance per kind: re-application keeps the larger of
// the old and new duration and the larger level, never stacks a
// second entry.
func ApplyStatus(effects *[]component.StatusEffect, now time.Duration, app component.StatusApplication) {
	for i := range *effects {
		e := &(*effects)[i]
		if e.Kind != app.Kind {
			continue
		}
		if app.Duration > e.Remaining {
			e.Remaining = app.Duration
		}
		if app.Level > e.Level {
			e.Level = app.Level
		}
		return
	}
	*effects = append(*effects, component.StatusEffect{
		Kind:      app.Kind,
		Remaining: app.Duration,
		Started:   now,
		Level:     max(app.Level, 1),
	})
}

// StatusSystem expires timed effects and recomputes derived stat
// modifiers. Modifiers are rebuilt from scratch every tick so repeated
// multiplication never compounds rounding error.
type StatusSystem struct {
	// regenAcc carries fractional player healing across ticks.
	regenAcc float64
}

// NewStatusSystem creates the status effect engine.
func NewStatusSystem() *StatusSystem {
	return &StatusSystem{}
}

// Priority returns the system's priority (after slot resolution).
func (s *StatusSystem) Priority() int {
	return 20
}

// Update advances every effect timer by dt, removes expired entries,
// and recomputes modifiers for player and enemies.
func (s *StatusSystem) Update(w *engine.World, dt time.Duration) {
	if w.Player != nil {
		p := w.Player
		tickEffects(&p.Effects, dt)
		p.Mods = s.playerModifiers(p)
		s.applyRegen(p, dt)
		if p.HitCooldown > 0 {
			p.HitCooldown -= dt
			if p.HitCooldown < 0 {
				p.HitCooldown = 0
			}
		}
	}

	for _, e := range w.Enemies {
		if e.Dead {
			continue
		}
		tickEffects(&e.Effects, dt)
		e.Mods = enemyModifiers(e)
		s.applyFireDot(w, e, dt)
	}
}

// tickEffects decrements durations and drops entries that reached
// zero, in place.
func tickEffects(effects *[]component.StatusEffect, dt time.Duration) {
	kept := (*effects)[:0]
	for _, e := range *effects {
		e.Remaining -= dt
		if e.Remaining > 0 {
			kept = append(kept, e)
		}
	}
	*effects = kept
}

// playerModifiers derives the player's multiplier set from timed
// effects plus the health-conditional skills. haisui_no_jin and
// zekkouchou are recomputed from current health every tick: no timer
// is ever stored for them.
func (s *StatusSystem) playerModifiers(p *component.Player) component.Modifiers {
	m := component.NeutralModifiers()
	for _, e := range p.Effects {
		switch e.Kind {
		case component.StatusAtkUp:
			m.Attack *= constant.AtkUpFactor
		case component.StatusDefUp:
			m.Defense *= constant.DefUpFactor
		case component.StatusSpeedUp:
			m.Speed *= constant.SpeedUpFactor
		case component.StatusSlow:
			m.Speed *= constant.SlowFactor
		}
	}

	if p.Skills.HaisuiNoJin {
		lowHealth := p.Stats.Health <= int(float64(p.Stats.MaxHealth)*constant.HaisuiThreshold)
		if p.Skills.HaisuiAlways || lowHealth {
			m.Attack *= constant.HaisuiAttackBonus
		}
	}
	if p.Skills.Zekkouchou {
		if p.Skills.ZekkouchouAlways || p.Stats.Health == p.Stats.MaxHealth {
			m.Attack *= constant.ZekkouchouBonus
		}
	}
	return m
}

// enemyModifiers derives an enemy's multiplier set from its effects.
func enemyModifiers(e *component.Enemy) component.Modifiers {
	m := component.NeutralModifiers()
	for _, fx := range e.Effects {
		switch fx.Kind {
		case component.StatusAtkUp:
			m.Attack *= constant.AtkUpFactor
		case component.StatusDefUp:
			m.Defense *= constant.DefUpFactor
		case component.StatusSlow:
			m.Speed *= constant.SlowFactor
		case component.StatusSpeedUp:
			m.Speed *= constant.SpeedUpFactor
		}
	}
	return m
}

// applyRegen heals whole points from an active regen effect,
// carrying the fractional remainder.
func (s *StatusSystem) applyRegen(p *component.Player, dt time.Duration) {
	active := false
	level := 0
	for _, e := range p.Effects {
		if e.Kind == component.StatusRegen {
			active, level = true, e.Level
			break
		}
	}
	if !active {
		s.regenAcc = 0
		return
	}

	s.regenAcc += float64(level) * constant.RegenHealPerSecond * dt.Seconds()
	heal := int(s.regenAcc)
	if heal <= 0 {
		return
	}
	s.regenAcc -= float64(heal)
	p.Stats.Health += heal
	if p.Stats.Health > p.Stats.MaxHealth {
		p.Stats.Health = p.Stats.MaxHealth
	}
}

// applyFireDot ticks the fire damage-over-time on an enemy. Damage
// bypasses defense; death is only marked, removal happens at commit.
func (s *StatusSystem) applyFireDot(w *engine.World, e *component.Enemy, dt time.Duration) {
	level := 0
	for _, fx := range e.Effects {
		if fx.Kind == component.StatusFire {
			level = fx.Level
			break
		}
	}
	if level == 0 {
		e.FireTick = 0
		return
	}

	e.FireTick += dt
	for e.FireTick >= constant.FireDotInterval {
		e.FireTick -= constant.FireDotInterval
		dmg := constant.FireDamagePerTick * level
		e.Stats.Health -= dmg
		w.AddDamageText(e.Pos, dmg)
		if e.Stats.Health <= 0 {
			break
		}
	}
}
