package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDirectionUnitVec(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec2
	}{
		{DirNone, mgl32.Vec2{0, 0}},
		{DirN, mgl32.Vec2{0, -1}},
		{DirE, mgl32.Vec2{1, 0}},
		{DirSE, mgl32.Vec2{diag, diag}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.UnitVec(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDirectionFromVec(t *testing.T) {
	tests := []struct {
		name string
		v    mgl32.Vec2
		want Direction
	}{
		{"Zero", mgl32.Vec2{0, 0}, DirNone},
		{"East", mgl32.Vec2{10, 0}, DirE},
		{"Up", mgl32.Vec2{0, -3}, DirN},
		{"Down-left", mgl32.Vec2{-5, 5}, DirSW},
		{"Nearly east", mgl32.Vec2{10, 1}, DirE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectionFromVec(tt.v); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestChordIndexAndContains(t *testing.T) {
	c := &Chord{Name: "C", Notes: []PitchClass{0, 4, 7}}

	if !c.Contains(4) {
		t.Errorf("Expected chord to contain E")
	}
	if c.Contains(1) {
		t.Errorf("Expected chord not to contain C#")
	}
	if got := c.Index(7); got != 2 {
		t.Errorf("Expected index 2 for G, got %d", got)
	}
	if got := c.Index(2); got != -1 {
		t.Errorf("Expected -1 for a missing note, got %d", got)
	}
}

func TestPitchClassValid(t *testing.T) {
	if !PitchClass(0).Valid() || !PitchClass(11).Valid() {
		t.Errorf("Expected 0 and 11 to be valid")
	}
	if PitchClass(-1).Valid() || PitchClass(12).Valid() {
		t.Errorf("Expected out-of-range values to be invalid")
	}
}

func TestLaneMagic(t *testing.T) {
	if LaneA.Magic() || LaneB.Magic() {
		t.Errorf("Expected lanes A and B to be direct attacks")
	}
	if !LaneC.Magic() || !LaneD.Magic() {
		t.Errorf("Expected lanes C and D to be magic")
	}
}
