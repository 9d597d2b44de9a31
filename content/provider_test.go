package content

import (
	"math/rand"
	"testing"
	"time"

	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/core"
)

func newTestProvider() *Provider {
	return NewProvider(rand.New(rand.NewSource(1)))
}

func TestNextChordAvoidsImmediateRepeat(t *testing.T) {
	p := newTestProvider()

	last := p.NextChord(core.LaneA)
	for i := 0; i < 50; i++ {
		c := p.NextChord(core.LaneA)
		if c == last {
			t.Fatalf("Expected no immediate repeat, got %s twice", c.Name)
		}
		last = c
	}
}

func TestNextChordPerLaneHistory(t *testing.T) {
	p := newTestProvider()

	// Another lane drawing the same chord is fine; only same-lane
	// repeats are avoided.
	a := p.NextChord(core.LaneA)
	for i := 0; i < 50; i++ {
		if p.NextChord(core.LaneB) == a {
			return
		}
	}
	t.Errorf("Expected lane B to be free to draw lane A's chord")
}

func TestStageGrowthBeyondTable(t *testing.T) {
	p := newTestProvider()
	lastRow := defaultStages[len(defaultStages)-1]

	s := p.Stage(len(defaultStages) + 1)
	if s.Quota <= lastRow.Quota {
		t.Errorf("Expected quota growth past the table, got %d", s.Quota)
	}
	if s.StatMultiplier <= lastRow.StatMultiplier {
		t.Errorf("Expected stat growth past the table, got %v", s.StatMultiplier)
	}
	if s.SpawnInterval >= lastRow.SpawnInterval {
		t.Errorf("Expected spawn interval shrink, got %v", s.SpawnInterval)
	}

	deep := p.Stage(100)
	if deep.SpawnInterval < 300*time.Millisecond {
		t.Errorf("Expected spawn interval floor, got %v", deep.SpawnInterval)
	}
}

func TestBonusOptionsRespectCaps(t *testing.T) {
	p := newTestProvider()
	taken := map[string]int{}
	for _, b := range p.bonuses {
		if b.ID != "luck" {
			taken[b.ID] = 99
		}
	}

	opts := p.BonusOptions(taken, constant.BonusOptionCount)
	if len(opts) != 1 {
		t.Fatalf("Expected only the uncapped bonus, got %d options", len(opts))
	}
	if opts[0].Def.ID != "luck" {
		t.Errorf("Expected luck, got %s", opts[0].Def.ID)
	}
}

func TestBonusOptionsDistinctChords(t *testing.T) {
	p := newTestProvider()

	for trial := 0; trial < 20; trial++ {
		opts := p.BonusOptions(nil, constant.BonusOptionCount)
		seen := map[string]bool{}
		for _, o := range opts {
			if seen[o.Chord.Name] {
				t.Fatalf("Expected distinct chords within a set, got %s twice", o.Chord.Name)
			}
			seen[o.Chord.Name] = true
		}
	}
}

func TestEnterStageSkipsBadSymbols(t *testing.T) {
	p := newTestProvider()
	p.stages = []StageConfig{{
		Name:   "test",
		Chords: []string{"C", "Ztotal", "G"},
	}}

	p.EnterStage(1)
	if len(p.pool) != 2 {
		t.Errorf("Expected 2 parseable chords in the pool, got %d", len(p.pool))
	}
}

func TestEnterStageKeepsPoolOnEmptyRow(t *testing.T) {
	p := newTestProvider()
	before := len(p.pool)
	p.stages = []StageConfig{{Name: "broken", Chords: []string{"nope"}}}

	p.EnterStage(1)
	if len(p.pool) != before {
		t.Errorf("Expected previous pool kept on a bad row, got %d chords", len(p.pool))
	}
}

func TestCharacterFallback(t *testing.T) {
	p := newTestProvider()
	c := p.Character("no_such_preset")
	if c.Name != p.chars[0].Name {
		t.Errorf("Expected first preset fallback, got %s", c.Name)
	}
}
