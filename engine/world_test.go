package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   mgl32.Vec2
		want mgl32.Vec2
	}{
		{"Inside", mgl32.Vec2{100, 100}, mgl32.Vec2{100, 100}},
		{"Negative", mgl32.Vec2{-10, -10}, mgl32.Vec2{0, 0}},
		{"Past width", mgl32.Vec2{constant.MapWidth + 50, 10}, mgl32.Vec2{constant.MapWidth, 10}},
		{"Past height", mgl32.Vec2{10, constant.MapHeight + 50}, mgl32.Vec2{10, constant.MapHeight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNextIDMonotonic(t *testing.T) {
	w := NewWorld(1)
	a := w.NextID()
	b := w.NextID()
	if a == 0 {
		t.Errorf("Expected ids to start above the invalid zero")
	}
	if b <= a {
		t.Errorf("Expected ids to grow, got %d then %d", a, b)
	}
}

func TestNearestEnemySkipsDead(t *testing.T) {
	w := NewWorld(1)
	dead := &component.Enemy{ID: w.NextID(), Pos: mgl32.Vec2{10, 0}, Dead: true}
	alive := &component.Enemy{ID: w.NextID(), Pos: mgl32.Vec2{100, 0}}
	w.Enemies = append(w.Enemies, dead, alive)

	got := w.NearestEnemy(mgl32.Vec2{0, 0})
	if got != alive {
		t.Errorf("Expected the living enemy, got %v", got)
	}
}

func TestSeededWorldsMatch(t *testing.T) {
	a := NewWorld(42)
	b := NewWorld(42)
	for i := 0; i < 10; i++ {
		if a.Rng.Int63() != b.Rng.Int63() {
			t.Fatalf("Expected identical rng streams for equal seeds")
		}
	}
}
