package engine

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/core"
)

// World owns every entity and ephemeral collection in the simulation.
// Single-threaded: only the tick loop mutates it; everything handed
// outward goes through the immutable Snapshot.
type World struct {
	Player *component.Player

	Enemies          []*component.Enemy
	Projectiles      []*component.Projectile
	EnemyProjectiles []*component.EnemyProjectile
	Coins            []*component.Coin
	Items            []*component.DroppedItem

	DamageTexts []*component.DamageText
	Shockwaves  []*component.Shockwave
	Lightnings  []*component.Lightning

	Slots [core.LaneCount]*component.CodeSlot
	Wave  component.WaveState

	// Now is accumulated game time; Frame the tick counter.
	Now   time.Duration
	Frame uint64

	// Rng is the single seeded source for all simulation rolls.
	Rng *rand.Rand

	nextID core.Entity
}

// NewWorld creates an empty world with a seeded rng.
func NewWorld(seed int64) *World {
	w := &World{
		Rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
	}
	for lane := core.LaneA; lane < core.LaneCount; lane++ {
		w.Slots[lane] = &component.CodeSlot{
			Lane:    lane,
			Matched: make(map[int]struct{}),
		}
	}
	return w
}

// NextID reserves a new entity id.
func (w *World) NextID() core.Entity {
	id := w.nextID
	w.nextID++
	return id
}

// Clamp keeps a position inside the map bounds. Out-of-bounds is
// never an error, only a correction.
func Clamp(p mgl32.Vec2) mgl32.Vec2 {
	if p[0] < 0 {
		p[0] = 0
	} else if p[0] > constant.MapWidth {
		p[0] = constant.MapWidth
	}
	if p[1] < 0 {
		p[1] = 0
	} else if p[1] > constant.MapHeight {
		p[1] = constant.MapHeight
	}
	return p
}

// NearestEnemy returns the closest living enemy to a position, or nil.
func (w *World) NearestEnemy(pos mgl32.Vec2) *component.Enemy {
	var best *component.Enemy
	var bestDist float32
	for _, e := range w.Enemies {
		if e.Dead {
			continue
		}
		d := e.Pos.Sub(pos).Len()
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// AddDamageText spawns a floating damage number.
func (w *World) AddDamageText(pos mgl32.Vec2, amount int) {
	w.DamageTexts = append(w.DamageTexts, &component.DamageText{
		ID:       w.NextID(),
		Pos:      pos,
		Amount:   amount,
		Duration: constant.DamageTextDuration,
	})
}
