package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/core"
)

// SlotView is the per-lane display state handed to the renderer.
type SlotView struct {
	Lane         core.Lane
	Current      string
	CurrentNotes []core.PitchClass
	Next         string
	TimerFrac    float64
	ProgressFrac float64
	Enabled      bool
	OnCooldown   bool
	Hinted       bool
}

// BonusOptionView is one level-up choice as shown to the player.
type BonusOptionView struct {
	ID       string
	Name     string
	Chord    string
	Progress float64
}

// SelectionView is the pending level-up option set, nil when none.
type SelectionView struct {
	Options   []BonusOptionView
	TimerFrac float64
	Pending   int
}

// Snapshot is the immutable per-tick world copy consumed by the
// presentation side. Slices hold value copies; nothing aliases live
// simulation state.
type Snapshot struct {
	Session uuid.UUID
	Frame   uint64
	Now     time.Duration

	Player           component.Player
	Enemies          []component.Enemy
	Projectiles      []component.Projectile
	EnemyProjectiles []component.EnemyProjectile
	Coins            []component.Coin
	Items            []component.DroppedItem
	DamageTexts      []component.DamageText
	Shockwaves       []component.Shockwave
	Lightnings       []component.Lightning

	Wave  component.WaveState
	Slots [core.LaneCount]SlotView

	// Selection is attached by the game orchestrator when a level-up
	// choice is pending.
	Selection *SelectionView

	Over       bool
	OverReason string
}

// BuildSnapshot copies the world-owned state into a snapshot.
func BuildSnapshot(w *World, session uuid.UUID) Snapshot {
	snap := Snapshot{
		Session: session,
		Frame:   w.Frame,
		Now:     w.Now,
		Wave:    w.Wave,
	}

	if w.Player != nil {
		p := *w.Player
		p.Effects = append([]component.StatusEffect(nil), w.Player.Effects...)
		p.BonusLevels = nil // progression-internal, not rendered
		snap.Player = p
	}

	snap.Enemies = make([]component.Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		c := *e
		c.Effects = append([]component.StatusEffect(nil), e.Effects...)
		snap.Enemies = append(snap.Enemies, c)
	}

	snap.Projectiles = make([]component.Projectile, 0, len(w.Projectiles))
	for _, p := range w.Projectiles {
		c := *p
		c.Hit = nil // combat-internal
		snap.Projectiles = append(snap.Projectiles, c)
	}

	snap.EnemyProjectiles = make([]component.EnemyProjectile, 0, len(w.EnemyProjectiles))
	for _, p := range w.EnemyProjectiles {
		snap.EnemyProjectiles = append(snap.EnemyProjectiles, *p)
	}

	snap.Coins = make([]component.Coin, 0, len(w.Coins))
	for _, c := range w.Coins {
		snap.Coins = append(snap.Coins, *c)
	}
	snap.Items = make([]component.DroppedItem, 0, len(w.Items))
	for _, i := range w.Items {
		snap.Items = append(snap.Items, *i)
	}
	snap.DamageTexts = make([]component.DamageText, 0, len(w.DamageTexts))
	for _, d := range w.DamageTexts {
		snap.DamageTexts = append(snap.DamageTexts, *d)
	}
	snap.Shockwaves = make([]component.Shockwave, 0, len(w.Shockwaves))
	for _, s := range w.Shockwaves {
		snap.Shockwaves = append(snap.Shockwaves, *s)
	}
	snap.Lightnings = make([]component.Lightning, 0, len(w.Lightnings))
	for _, l := range w.Lightnings {
		snap.Lightnings = append(snap.Lightnings, *l)
	}

	hinted := hintedLane(w)
	for lane := core.LaneA; lane < core.LaneCount; lane++ {
		s := w.Slots[lane]
		v := SlotView{
			Lane:         lane,
			TimerFrac:    s.TimerFraction(constant.SlotTimeout),
			ProgressFrac: s.Progress(),
			Enabled:      s.Enabled,
			OnCooldown:   s.Cooldown > 0,
			Hinted:       lane == hinted,
		}
		if s.Chord != nil {
			v.Current = s.Chord.Name
			v.CurrentNotes = append([]core.PitchClass(nil), s.Chord.Notes...)
		}
		if s.Next != nil {
			v.Next = s.Next.Name
		}
		snap.Slots[lane] = v
	}

	return snap
}

// hintedLane picks the accepting lane with the most progress, lowest
// lane on ties, LaneCount when nothing accepts input.
func hintedLane(w *World) core.Lane {
	best := core.LaneCount
	bestProgress := -1.0
	for lane := core.LaneA; lane < core.LaneCount; lane++ {
		s := w.Slots[lane]
		if !s.Accepting() {
			continue
		}
		if p := s.Progress(); p > bestProgress {
			best, bestProgress = lane, p
		}
	}
	return best
}
