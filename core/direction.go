package core

import "github.com/go-gl/mathgl/mgl32"

// Direction is one of the 8 compass movement directions, or none.
type Direction int

const (
	DirNone Direction = iota
	DirN
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

// diag is 1/sqrt(2), the component of a unit diagonal.
const diag = 0.70710678

// unitVecs is indexed by Direction. World Y grows downward.
var unitVecs = [...]mgl32.Vec2{
	DirNone: {0, 0},
	DirN:    {0, -1},
	DirNE:   {diag, -diag},
	DirE:    {1, 0},
	DirSE:   {diag, diag},
	DirS:    {0, 1},
	DirSW:   {-diag, diag},
	DirW:    {-1, 0},
	DirNW:   {-diag, -diag},
}

// UnitVec returns the unit movement vector for the direction.
// DirNone and out-of-range values return the zero vector.
func (d Direction) UnitVec() mgl32.Vec2 {
	if d < DirNone || d > DirNW {
		return mgl32.Vec2{}
	}
	return unitVecs[d]
}

// DirectionFromVec quantizes a vector to the nearest of the 8 compass
// directions. The zero vector maps to DirNone.
func DirectionFromVec(v mgl32.Vec2) Direction {
	if v[0] == 0 && v[1] == 0 {
		return DirNone
	}
	best := DirN
	bestDot := float32(-2)
	for d := DirN; d <= DirNW; d++ {
		u := unitVecs[d]
		dot := u[0]*v[0] + u[1]*v[1]
		if dot > bestDot {
			best, bestDot = d, dot
		}
	}
	return best
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case DirN:
		return "N"
	case DirNE:
		return "NE"
	case DirE:
		return "E"
	case DirSE:
		return "SE"
	case DirS:
		return "S"
	case DirSW:
		return "SW"
	case DirW:
		return "W"
	case DirNW:
		return "NW"
	default:
		return "none"
	}
}
