package systems

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/content"
	"github.com/soramame/chordfall/engine"
	"github.com/soramame/chordfall/events"
)

// WaveSystem drives the quota/time-box progression: spawn pacing
// while the wave runs, then exactly one of Completed or Failed.
// The quota check runs before the duration check, so reaching quota
// on the very tick the clock runs out still completes the wave.
type WaveSystem struct {
	provider *content.Provider
	queue    *events.Queue

	enemies []component.EnemyType // spawnable types for current wave
	over    bool                  // terminal failure reached
}

// NewWaveSystem creates the wave controller.
func NewWaveSystem(provider *content.Provider, queue *events.Queue) *WaveSystem {
	return &WaveSystem{provider: provider, queue: queue}
}

// Priority returns the system's priority (after pickups).
func (s *WaveSystem) Priority() int {
	return 60
}

// StartWave loads a stage row into the world's wave state.
func (s *WaveSystem) StartWave(w *engine.World, number int) {
	stage := s.provider.Stage(number)
	s.provider.EnterStage(number)

	w.Wave = component.WaveState{
		Number:         number,
		Quota:          stage.Quota,
		Duration:       stage.Duration,
		SpawnInterval:  stage.SpawnInterval,
		SpawnCount:     stage.SpawnCount,
		StatMultiplier: stage.StatMultiplier,
		SpawnTimer:     stage.SpawnInterval,
	}
	if w.Wave.Quota <= 0 {
		w.Wave.Quota = constant.WaveQuota
	}
	if w.Wave.Duration <= 0 {
		w.Wave.Duration = constant.WaveDuration
	}
	if w.Wave.SpawnInterval <= 0 {
		w.Wave.SpawnInterval = constant.WaveSpawnInterval
		w.Wave.SpawnTimer = constant.WaveSpawnInterval
	}
	if w.Wave.SpawnCount <= 0 {
		w.Wave.SpawnCount = constant.WaveSpawnCount
	}
	if w.Wave.StatMultiplier <= 0 {
		w.Wave.StatMultiplier = 1
	}

	s.enemies = s.enemies[:0]
	for _, name := range stage.Enemies {
		t, ok := component.EnemyTypeByName(name)
		if !ok {
			log.Printf("wave %d: unknown enemy type %q skipped", number, name)
			continue
		}
		s.enemies = append(s.enemies, t)
	}
	if len(s.enemies) == 0 {
		s.enemies = append(s.enemies, component.EnemySlime)
	}
}

// Update advances the wave clock, spawns on schedule, and settles the
// pass/fail outcome at the tick boundary.
func (s *WaveSystem) Update(w *engine.World, dt time.Duration) {
	if s.over {
		return
	}
	wave := &w.Wave
	wave.Elapsed += dt

	wave.SpawnTimer -= dt
	for wave.SpawnTimer <= 0 {
		wave.SpawnTimer += wave.SpawnInterval
		for i := 0; i < wave.SpawnCount; i++ {
			s.spawnEnemy(w)
		}
	}

	// Quota before duration: mutual exclusion of outcomes.
	if wave.Kills >= wave.Quota {
		wave.Completed = true
		s.queue.Push(events.GameEvent{
			Type:      events.EventWaveCompleted,
			Payload:   &events.WavePayload{Number: wave.Number, Kills: wave.Kills, Quota: wave.Quota},
			Tick:      w.Frame,
			Timestamp: w.Now,
		})
		s.StartWave(w, wave.Number+1)
		return
	}

	if wave.Elapsed >= wave.Duration {
		wave.FailReason = "quota_failed"
		s.over = true
		s.queue.Push(events.GameEvent{
			Type:      events.EventWaveFailed,
			Payload:   &events.WavePayload{Number: wave.Number, Kills: wave.Kills, Quota: wave.Quota},
			Tick:      w.Frame,
			Timestamp: w.Now,
		})
		level := 0
		if w.Player != nil {
			level = w.Player.Level
		}
		s.queue.Push(events.GameEvent{
			Type: events.EventGameOver,
			Payload: &events.GameOverPayload{
				Reason:   "quota_failed",
				Wave:     wave.Number,
				Level:    level,
				Survived: w.Now,
			},
			Tick:      w.Frame,
			Timestamp: w.Now,
		})
	}
}

// spawnEnemy places one scaled enemy on a random map edge.
func (s *WaveSystem) spawnEnemy(w *engine.World) {
	t := s.enemies[w.Rng.Intn(len(s.enemies))]
	base, ok := enemyBase[t]
	if !ok {
		log.Printf("spawn: no base stats for %s, skipped", t)
		return
	}

	mult := w.Wave.StatMultiplier
	health := int(float64(base.Health) * mult)
	if health < 1 {
		health = 1
	}

	w.Enemies = append(w.Enemies, &component.Enemy{
		ID:   w.NextID(),
		Pos:  s.edgePosition(w),
		Type: t,
		Boss: base.Boss,
		Stats: component.Stats{
			Speed:     base.Speed,
			Defense:   base.Defense,
			MaxHealth: health,
			Health:    health,
		},
		Mods:          component.NeutralModifiers(),
		ContactDamage: int(float64(base.Contact) * mult),
		AttackTimer:   constant.EnemyShotInterval,
	})
}

// edgePosition picks a uniform point on one of the four map borders.
func (s *WaveSystem) edgePosition(w *engine.World) mgl32.Vec2 {
	switch w.Rng.Intn(4) {
	case 0:
		return mgl32.Vec2{w.Rng.Float32() * constant.MapWidth, 0}
	case 1:
		return mgl32.Vec2{w.Rng.Float32() * constant.MapWidth, constant.MapHeight}
	case 2:
		return mgl32.Vec2{0, w.Rng.Float32() * constant.MapHeight}
	default:
		return mgl32.Vec2{constant.MapWidth, w.Rng.Float32() * constant.MapHeight}
	}
}
