package systems

import (
	"time"

	"github.com/soramame/chordfall/engine"
)

// DecaySystem is the end-of-tick commit: it ages timed entities and
// removes everything earlier phases marked. Running it last keeps
// every other system's view of the tick consistent; nothing
// disappears mid-resolution.
type DecaySystem struct{}

// NewDecaySystem creates the cull/commit stage.
func NewDecaySystem() *DecaySystem {
	return &DecaySystem{}
}

// Priority returns the system's priority (last of the tick).
func (s *DecaySystem) Priority() int {
	return 80
}

// Update ages and culls.
func (s *DecaySystem) Update(w *engine.World, dt time.Duration) {
	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Dead {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.Spent {
			projectiles = append(projectiles, p)
		}
	}
	w.Projectiles = projectiles

	enemyShots := w.EnemyProjectiles[:0]
	for _, p := range w.EnemyProjectiles {
		if !p.Spent {
			enemyShots = append(enemyShots, p)
		}
	}
	w.EnemyProjectiles = enemyShots

	coins := w.Coins[:0]
	for _, c := range w.Coins {
		c.Age += dt
		if !c.Consumed && c.Age < c.Lifetime {
			coins = append(coins, c)
		}
	}
	w.Coins = coins

	items := w.Items[:0]
	for _, it := range w.Items {
		it.Age += dt
		if !it.Consumed && it.Age < it.Lifetime {
			items = append(items, it)
		}
	}
	w.Items = items

	texts := w.DamageTexts[:0]
	for _, d := range w.DamageTexts {
		d.Age += dt
		if d.Age < d.Duration {
			texts = append(texts, d)
		}
	}
	w.DamageTexts = texts

	waves := w.Shockwaves[:0]
	for _, sw := range w.Shockwaves {
		sw.Age += dt
		if sw.Age < sw.Duration {
			waves = append(waves, sw)
		}
	}
	w.Shockwaves = waves

	lightnings := w.Lightnings[:0]
	for _, l := range w.Lightnings {
		l.Age += dt
		if l.Age < l.Duration {
			lightnings = append(lightnings, l)
		}
	}
	w.Lightnings = lightnings
}
