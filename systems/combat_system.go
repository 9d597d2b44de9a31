package systems

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/engine"
	"github.com/soramame/chordfall/events"
)

// CombatSystem resolves damage in a fixed sub-phase order:
// (a) player projectiles vs enemies, (b) enemy projectiles, shots and
// melee contact vs player, (d) death check with drops. Shockwaves
// (sub-phase c) damage at spawn inside the attack resolver, so there
// is nothing periodic to do for them here. Each sub-phase only reads
// state earlier phases settled, so a half-resolved tick can never
// leave partial damage behind.
type CombatSystem struct {
	queue *events.Queue
}

// NewCombatSystem creates the damage resolver.
func NewCombatSystem(queue *events.Queue) *CombatSystem {
	return &CombatSystem{queue: queue}
}

// Priority returns the system's priority (after movement).
func (s *CombatSystem) Priority() int {
	return 40
}

// Update runs one combat resolution pass.
func (s *CombatSystem) Update(w *engine.World, dt time.Duration) {
	s.projectilesVsEnemies(w)
	s.enemiesVsPlayer(w, dt)
	s.deathCheck(w)
}

// projectilesVsEnemies is sub-phase (a). A penetrating projectile
// damages a given enemy id at most once over its whole lifetime.
func (s *CombatSystem) projectilesVsEnemies(w *engine.World) {
	for _, p := range w.Projectiles {
		if p.Spent {
			continue
		}
		for _, e := range w.Enemies {
			if e.Dead || e.Stats.Health <= 0 {
				continue
			}
			if e.Pos.Sub(p.Pos).Len() > constant.ProjectileRadius {
				continue
			}
			if p.Penetrating {
				if _, hit := p.Hit[e.ID]; hit {
					continue
				}
				p.Hit[e.ID] = struct{}{}
				DamageEnemy(w, e, float64(p.Damage))
				continue
			}
			DamageEnemy(w, e, float64(p.Damage))
			p.Spent = true
			break
		}
	}
}

// enemiesVsPlayer is sub-phase (b). Enemies already at zero health
// this tick no longer act: a source that died in (a) cannot land a
// hit or a status effect.
func (s *CombatSystem) enemiesVsPlayer(w *engine.World, dt time.Duration) {
	p := w.Player
	if p == nil || p.Stats.Health <= 0 {
		return
	}

	for _, ep := range w.EnemyProjectiles {
		if ep.Spent {
			continue
		}
		if p.Pos.Sub(ep.Pos).Len() > constant.ProjectileRadius {
			continue
		}
		s.damagePlayer(w, float64(ep.Damage))
		if ep.OnHit != nil {
			app := *ep.OnHit
			app.Duration = time.Duration(float64(app.Duration) * p.Stats.TimeScale)
			ApplyStatus(&p.Effects, w.Now, app)
		}
		ep.Spent = true
	}

	for _, e := range w.Enemies {
		if e.Dead || e.Stats.Health <= 0 {
			continue
		}

		dist := p.Pos.Sub(e.Pos).Len()
		if dist <= constant.ContactRadius && p.HitCooldown <= 0 {
			s.damagePlayer(w, float64(e.ContactDamage)*e.Mods.Attack)
			p.HitCooldown = constant.PlayerHitCooldown
		}

		if !enemyBase[e.Type].Ranged {
			continue
		}
		e.AttackTimer -= dt
		if e.AttackTimer <= 0 && dist >= constant.EnemyShotMinRange {
			e.AttackTimer = constant.EnemyShotInterval
			to := p.Pos.Sub(e.Pos)
			if to.Len() == 0 {
				continue
			}
			w.EnemyProjectiles = append(w.EnemyProjectiles, &component.EnemyProjectile{
				ID:       w.NextID(),
				Pos:      e.Pos,
				Vel:      to.Normalize().Mul(constant.EnemyShotSpeed),
				Damage:   e.ContactDamage,
				Lifetime: constant.EnemyShotLifetime,
				OnHit:    enemyBase[e.Type].OnHit,
			})
		}
	}
}

// deathCheck is sub-phase (d): mark dead enemies, roll drops, count
// the kill for the wave. Removal itself is deferred to the decay
// commit at end of tick.
func (s *CombatSystem) deathCheck(w *engine.World) {
	for _, e := range w.Enemies {
		if e.Dead || e.Stats.Health > 0 {
			continue
		}
		e.Dead = true
		w.Wave.Kills++

		s.dropLoot(w, e)
		s.queue.Push(events.GameEvent{
			Type: events.EventEnemyKilled,
			Payload: &events.EnemyKilledPayload{
				ID:   e.ID,
				Type: e.Type,
				Boss: e.Boss,
				Pos:  e.Pos,
			},
			Tick:      w.Frame,
			Timestamp: w.Now,
		})
	}
}

// dropLoot grants experience (coin or direct with auto-collect) and
// rolls the luck-scaled item chance.
func (s *CombatSystem) dropLoot(w *engine.World, e *component.Enemy) {
	xp := enemyBase[e.Type].Experience
	if w.Player != nil && w.Player.Skills.AutoCollect {
		w.Player.Experience += xp
	} else {
		w.Coins = append(w.Coins, &component.Coin{
			ID:         w.NextID(),
			Pos:        e.Pos,
			Experience: xp,
			Lifetime:   constant.CoinLifetime,
		})
	}

	luck := 0
	if w.Player != nil {
		luck = w.Player.Stats.Luck
	}
	chance := constant.BaseDropChance + float64(luck)*constant.LuckDropStep
	if w.Rng.Float64() >= chance {
		return
	}
	w.Items = append(w.Items, &component.DroppedItem{
		ID:       w.NextID(),
		Pos:      e.Pos,
		Type:     component.ItemType(w.Rng.Intn(int(component.ItemTypeCount))),
		Lifetime: constant.ItemLifetime,
	})
}

// damagePlayer applies defense-mitigated damage and emits the game
// over signal exactly once, on the killing hit.
func (s *CombatSystem) damagePlayer(w *engine.World, raw float64) {
	p := w.Player
	applied := mitigate(raw, p.Stats.Defense, p.Mods.Defense)
	wasAlive := p.Stats.Health > 0
	p.Stats.Health -= applied
	w.AddDamageText(p.Pos, applied)

	s.queue.Push(events.GameEvent{
		Type:      events.EventPlayerDamaged,
		Payload:   &events.PlayerDamagedPayload{Amount: applied, Remaining: p.Stats.Health},
		Tick:      w.Frame,
		Timestamp: w.Now,
	})

	if wasAlive && p.Stats.Health <= 0 {
		s.queue.Push(events.GameEvent{
			Type: events.EventGameOver,
			Payload: &events.GameOverPayload{
				Reason:   "player_dead",
				Wave:     w.Wave.Number,
				Level:    p.Level,
				Survived: w.Now,
			},
			Tick:      w.Frame,
			Timestamp: w.Now,
		})
	}
}

// DamageEnemy applies defense-mitigated damage to an enemy and spawns
// the floating number. Used by both the combat pass and the attack
// resolver. Death is only detected later in the death check.
func DamageEnemy(w *engine.World, e *component.Enemy, raw float64) {
	applied := mitigate(raw, e.Stats.Defense, e.Mods.Defense)
	e.Stats.Health -= applied
	w.AddDamageText(e.Pos, applied)
}

// KnockbackEnemy pushes a non-boss enemy away from a source position.
func KnockbackEnemy(w *engine.World, e *component.Enemy, from mgl32.Vec2) {
	if e.Boss {
		return
	}
	away := e.Pos.Sub(from)
	if away.Len() == 0 {
		return
	}
	e.Knockback = away.Normalize().Mul(constant.KnockbackSpeed)
	e.KnockbackLeft = constant.KnockbackDuration
}

// mitigate converts defense points into a capped damage reduction.
// Any hit that lands deals at least one point.
func mitigate(raw float64, defense int, defMod float64) int {
	reduction := float64(defense) * constant.EnemyDefenseFactor * defMod
	if reduction > constant.MaxDefenseMitigation {
		reduction = constant.MaxDefenseMitigation
	}
	applied := int(math.Round(raw * (1 - reduction)))
	if applied < 1 {
		applied = 1
	}
	return applied
}
