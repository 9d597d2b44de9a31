package content

import (
	"fmt"
	"strings"

	"github.com/soramame/chordfall/core"
)

// Chord symbol parsing. Symbols follow the stage table convention:
// a root (C..B with optional # or b) followed by a quality suffix,
// e.g. C, Cm, F#dim, Bbm7b5, Gm/maj7, A7sus4.

var rootOffsets = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// qualityIntervals maps a quality suffix to semitone offsets from the
// root. Suffix matching is case-sensitive: M7 is major seventh, m7 minor.
var qualityIntervals = map[string][]int{
	"":       {0, 4, 7},
	"m":      {0, 3, 7},
	"dim":    {0, 3, 6},
	"aug":    {0, 4, 8},
	"sus4":   {0, 5, 7},
	"M7":     {0, 4, 7, 11},
	"m7":     {0, 3, 7, 10},
	"7":      {0, 4, 7, 10},
	"m7b5":   {0, 3, 6, 10},
	"m/maj7": {0, 3, 7, 11},
	"aug7":   {0, 4, 8, 10},
	"dim7":   {0, 3, 6, 9},
	"7sus4":  {0, 5, 7, 10},
}

// ParseChord converts a chord symbol into its pitch-class set.
func ParseChord(symbol string) (*core.Chord, error) {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return nil, fmt.Errorf("empty chord symbol")
	}

	root, ok := rootOffsets[s[:1]]
	if !ok {
		return nil, fmt.Errorf("chord %q: unknown root %q", symbol, s[:1])
	}
	rest := s[1:]

	if strings.HasPrefix(rest, "#") {
		root++
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "b") {
		// "b" is flat only when what follows is a valid quality,
		// otherwise it belongs to the suffix (none start with b today,
		// but the check keeps parsing exact).
		if _, ok := qualityIntervals[rest[1:]]; ok {
			root--
			rest = rest[1:]
		}
	}

	intervals, ok := qualityIntervals[rest]
	if !ok {
		return nil, fmt.Errorf("chord %q: unknown quality %q", symbol, rest)
	}

	notes := make([]core.PitchClass, len(intervals))
	for i, iv := range intervals {
		notes[i] = core.PitchClass(((root + iv) % 12 + 12) % 12)
	}
	return &core.Chord{Name: s, Notes: notes}, nil
}

// MustChord parses a compiled-in chord symbol and panics on failure.
// Only for default tables; runtime content goes through ParseChord.
func MustChord(symbol string) *core.Chord {
	c, err := ParseChord(symbol)
	if err != nil {
		panic(err)
	}
	return c
}
