package core

// Lane is one of the four independent attack/spell channels.
// A is ranged, B is melee, C and D are magic.
type Lane int

const (
	LaneA Lane = iota
	LaneB
	LaneC
	LaneD
	LaneCount
)

// Magic reports whether the lane fires a spell with an independent
// cooldown rather than a direct attack.
func (l Lane) Magic() bool {
	return l == LaneC || l == LaneD
}

// String returns the lane letter.
func (l Lane) String() string {
	switch l {
	case LaneA:
		return "A"
	case LaneB:
		return "B"
	case LaneC:
		return "C"
	case LaneD:
		return "D"
	default:
		return "?"
	}
}
