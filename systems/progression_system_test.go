package systems

import (
	"testing"
	"time"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/content"
	"github.com/soramame/chordfall/engine"
	"github.com/soramame/chordfall/events"
)

func newProgressionFixture() (*ProgressionSystem, *engine.World, *events.Queue) {
	w := engine.NewWorld(1)
	w.Player = &component.Player{
		ID:          w.NextID(),
		Stats:       component.Stats{MaxHealth: 100, Health: 100, AreaScale: 1, TimeScale: 1},
		Mods:        component.NeutralModifiers(),
		Level:       1,
		BonusLevels: make(map[string]int),
	}
	queue := events.NewQueue()
	return NewProgressionSystem(content.NewProvider(w.Rng), queue), w, queue
}

func TestXPThreshold(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, constant.XPLevelBase},
		{3, constant.XPLevelBase * 3},
		{4, constant.XPLevelBase * 6},
	}
	for _, tt := range tests {
		if got := xpThreshold(tt.level); got != tt.want {
			t.Errorf("Expected threshold %d for level %d, got %d", tt.want, tt.level, got)
		}
	}
}

func TestLevelUpTriggersSelection(t *testing.T) {
	s, w, queue := newProgressionFixture()
	w.Player.Experience = constant.XPLevelBase

	s.Update(w, 33*time.Millisecond)

	if w.Player.Level != 2 {
		t.Errorf("Expected level 2, got %d", w.Player.Level)
	}
	if !s.SelectionActive() {
		t.Errorf("Expected a pending selection")
	}
	if n := len(s.pending.options); n != constant.BonusOptionCount {
		t.Errorf("Expected %d options, got %d", constant.BonusOptionCount, n)
	}

	leveled := false
	for _, evt := range queue.Consume() {
		if evt.Type == events.EventLevelUp {
			leveled = true
			if evt.Payload.(*events.LevelUpPayload).NewLevel != 2 {
				t.Errorf("Expected level 2 in payload")
			}
		}
	}
	if !leveled {
		t.Errorf("Expected a level up event")
	}
}

func TestMultipleLevelsInOneTick(t *testing.T) {
	s, w, _ := newProgressionFixture()
	w.Player.Experience = constant.XPLevelBase * 3 // levels 2 and 3 at once

	s.Update(w, 33*time.Millisecond)

	if w.Player.Level != 3 {
		t.Errorf("Expected level 3, got %d", w.Player.Level)
	}
	// One selection at a time; the second generates after commit.
	if w.Player.PendingLevelUps != 2 {
		t.Errorf("Expected 2 pending level ups, got %d", w.Player.PendingLevelUps)
	}
}

func TestSelectionByChordCompletion(t *testing.T) {
	s, w, queue := newProgressionFixture()
	w.Player.Experience = constant.XPLevelBase
	s.Update(w, 33*time.Millisecond)
	queue.Consume()

	target := s.pending.options[1]
	for _, pc := range target.Chord.Notes {
		s.SubmitNote(w, pc)
	}

	if s.SelectionActive() {
		t.Errorf("Expected selection cleared after completion")
	}
	if w.Player.BonusLevels[target.Def.ID] != 1 {
		t.Errorf("Expected bonus %s committed, got levels %v", target.Def.ID, w.Player.BonusLevels)
	}
	if w.Player.PendingLevelUps != 0 {
		t.Errorf("Expected pending level ups consumed, got %d", w.Player.PendingLevelUps)
	}

	for _, evt := range queue.Consume() {
		if evt.Type == events.EventBonusSelected {
			p := evt.Payload.(*events.BonusSelectedPayload)
			if p.BonusID != target.Def.ID {
				t.Errorf("Expected bonus %s in event, got %s", target.Def.ID, p.BonusID)
			}
			if p.Auto {
				t.Errorf("Expected manual commit, got auto")
			}
		}
	}
}

func TestSelectionTimeoutCommitsFirst(t *testing.T) {
	s, w, queue := newProgressionFixture()
	w.Player.Experience = constant.XPLevelBase
	s.Update(w, 33*time.Millisecond)
	queue.Consume()

	first := s.pending.options[0]
	s.Update(w, constant.BonusSelectTimeout+time.Second)

	if s.SelectionActive() {
		t.Errorf("Expected selection resolved by timeout")
	}
	if w.Player.BonusLevels[first.Def.ID] != 1 {
		t.Errorf("Expected first option %s committed on timeout", first.Def.ID)
	}
	for _, evt := range queue.Consume() {
		if evt.Type == events.EventBonusSelected {
			if !evt.Payload.(*events.BonusSelectedPayload).Auto {
				t.Errorf("Expected timeout commit marked auto")
			}
		}
	}
}

func TestAutoSelectCommitsImmediately(t *testing.T) {
	s, w, _ := newProgressionFixture()
	w.Player.Skills.AutoSelect = true
	w.Player.Experience = constant.XPLevelBase

	s.Update(w, 33*time.Millisecond)

	if s.SelectionActive() {
		t.Errorf("Expected auto select to resolve without waiting")
	}
	if len(w.Player.BonusLevels) != 1 {
		t.Errorf("Expected one bonus committed, got %v", w.Player.BonusLevels)
	}
	if w.Player.PendingLevelUps != 0 {
		t.Errorf("Expected pending level ups consumed, got %d", w.Player.PendingLevelUps)
	}
}

func TestAllCappedSpendsLevelUp(t *testing.T) {
	s, w, _ := newProgressionFixture()
	for _, id := range []string{
		"atk_a", "atk_b", "atk_c", "atk_d", "speed", "defense", "max_health",
		"luck", "cooldown", "area", "time", "multi_hit", "auto_collect",
		"auto_select", "haisui", "haisui_always", "zekkouchou",
		"zekkouchou_always", "penetration", "magic_lightning", "magic_firewall",
	} {
		w.Player.BonusLevels[id] = 99
	}
	w.Player.Experience = constant.XPLevelBase

	s.Update(w, 33*time.Millisecond)

	if s.SelectionActive() {
		t.Errorf("Expected no selection when everything is capped")
	}
	if w.Player.PendingLevelUps != 0 {
		t.Errorf("Expected level up spent with no effect, got %d pending", w.Player.PendingLevelUps)
	}
}

func TestApplyBonusStatRows(t *testing.T) {
	s, w, _ := newProgressionFixture()
	p := w.Player

	s.applyBonus(p, content.BonusDef{ID: "atk_b", Stat: "attack", Lane: "B", Amount: 2})
	if p.Stats.AttackLevel[1] != 2 {
		t.Errorf("Expected lane B attack 2, got %d", p.Stats.AttackLevel[1])
	}

	s.applyBonus(p, content.BonusDef{ID: "max_health", Stat: "max_health", Amount: 20})
	if p.Stats.MaxHealth != 120 || p.Stats.Health != 120 {
		t.Errorf("Expected max health raise to heal, got %d/%d", p.Stats.Health, p.Stats.MaxHealth)
	}

	s.applyBonus(p, content.BonusDef{ID: "cooldown", Stat: "cooldown", Amount: 0.5})
	s.applyBonus(p, content.BonusDef{ID: "cooldown", Stat: "cooldown", Amount: 0.5})
	if p.Stats.CooldownReduction != 0.8 {
		t.Errorf("Expected cooldown reduction capped at 0.8, got %v", p.Stats.CooldownReduction)
	}

	s.applyBonus(p, content.BonusDef{ID: "magic_lightning", Magic: "lightning"})
	if !p.Magics.Lightning {
		t.Errorf("Expected lightning unlocked")
	}
}

func TestApplySkillNames(t *testing.T) {
	p := &component.Player{}
	ApplySkill(p, "haisui_always")
	if !p.Skills.HaisuiNoJin || !p.Skills.HaisuiAlways {
		t.Errorf("Expected haisui_always to imply the base skill")
	}
	ApplySkill(p, "penetration")
	if !p.Skills.Penetration {
		t.Errorf("Expected penetration unlocked")
	}
}
