package engine

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/core"
)

func newSnapshotWorld() *World {
	w := NewWorld(1)
	w.Player = &component.Player{
		ID:  w.NextID(),
		Pos: mgl32.Vec2{480, 270},
		Stats: component.Stats{
			MaxHealth: 100, Health: 100,
		},
		Mods: component.NeutralModifiers(),
		Effects: []component.StatusEffect{
			{Kind: component.StatusAtkUp, Remaining: 5 * time.Second, Level: 1},
		},
		BonusLevels: map[string]int{"speed": 2},
	}
	w.Enemies = append(w.Enemies, &component.Enemy{
		ID: w.NextID(), Pos: mgl32.Vec2{100, 100},
		Stats: component.Stats{MaxHealth: 20, Health: 20},
	})
	return w
}

func TestSnapshotDoesNotAliasWorld(t *testing.T) {
	w := newSnapshotWorld()
	snap := BuildSnapshot(w, uuid.New())

	w.Player.Stats.Health = 1
	w.Player.Effects[0].Remaining = 0
	w.Enemies[0].Pos = mgl32.Vec2{0, 0}

	if snap.Player.Stats.Health != 100 {
		t.Errorf("Expected snapshot health unchanged, got %d", snap.Player.Stats.Health)
	}
	if snap.Player.Effects[0].Remaining != 5*time.Second {
		t.Errorf("Expected snapshot effect unchanged, got %v", snap.Player.Effects[0].Remaining)
	}
	if snap.Enemies[0].Pos != (mgl32.Vec2{100, 100}) {
		t.Errorf("Expected snapshot enemy position unchanged, got %v", snap.Enemies[0].Pos)
	}
}

func TestSnapshotHidesInternalState(t *testing.T) {
	w := newSnapshotWorld()
	w.Projectiles = append(w.Projectiles, &component.Projectile{
		ID: w.NextID(), Penetrating: true,
		Hit: map[core.Entity]struct{}{5: {}},
	})

	snap := BuildSnapshot(w, uuid.New())

	if snap.Player.BonusLevels != nil {
		t.Errorf("Expected bonus levels stripped from the snapshot")
	}
	if snap.Projectiles[0].Hit != nil {
		t.Errorf("Expected the hit set stripped from the snapshot")
	}
}

func TestSnapshotSlotViews(t *testing.T) {
	w := newSnapshotWorld()
	slot := w.Slots[core.LaneA]
	slot.Enabled = true
	slot.Chord = &core.Chord{Name: "C", Notes: []core.PitchClass{0, 4, 7}}
	slot.Matched = map[int]struct{}{0: {}}
	slot.Remaining = constant.SlotTimeout / 2

	snap := BuildSnapshot(w, uuid.New())
	v := snap.Slots[core.LaneA]

	if v.Current != "C" {
		t.Errorf("Expected current chord C, got %q", v.Current)
	}
	if v.ProgressFrac < 0.33 || v.ProgressFrac > 0.34 {
		t.Errorf("Expected progress near one third, got %v", v.ProgressFrac)
	}
	if v.TimerFrac != 0.5 {
		t.Errorf("Expected timer fraction 0.5, got %v", v.TimerFrac)
	}
	if !v.Hinted {
		t.Errorf("Expected the only accepting lane to be hinted")
	}
}

func TestHintedLanePrefersProgress(t *testing.T) {
	w := newSnapshotWorld()
	for _, lane := range []core.Lane{core.LaneA, core.LaneB} {
		s := w.Slots[lane]
		s.Enabled = true
		s.Chord = &core.Chord{Name: "C", Notes: []core.PitchClass{0, 4, 7}}
		s.Matched = map[int]struct{}{}
		s.Remaining = constant.SlotTimeout
	}
	w.Slots[core.LaneB].Matched[0] = struct{}{}

	if got := hintedLane(w); got != core.LaneB {
		t.Errorf("Expected lane B hinted (more progress), got %v", got)
	}

	// Equal progress falls back to the lowest lane.
	w.Slots[core.LaneA].Matched[0] = struct{}{}
	if got := hintedLane(w); got != core.LaneA {
		t.Errorf("Expected lane A hinted on tie, got %v", got)
	}
}

func TestHintedLaneNoneAccepting(t *testing.T) {
	w := newSnapshotWorld()
	if got := hintedLane(w); got != core.LaneCount {
		t.Errorf("Expected no hint with all lanes closed, got %v", got)
	}
}

func TestInputBufferDrain(t *testing.T) {
	b := NewInputBuffer()
	b.PushNote(0)
	b.PushNote(7)
	b.PushNote(core.PitchClass(12)) // out of range, dropped
	b.SetDirection(core.DirNE)

	notes, dir := b.Drain()
	if len(notes) != 2 {
		t.Errorf("Expected 2 valid notes, got %d", len(notes))
	}
	if dir != core.DirNE {
		t.Errorf("Expected direction NE, got %v", dir)
	}

	notes, dir = b.Drain()
	if len(notes) != 0 {
		t.Errorf("Expected empty batch after drain, got %d", len(notes))
	}
	if dir != core.DirNE {
		t.Errorf("Expected movement intent to persist across drains, got %v", dir)
	}
}
