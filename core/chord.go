package core

// PitchClass is a note modulo octave, 0 (C) through 11 (B).
type PitchClass int

// Valid reports whether the pitch class is in the 0..11 range.
func (p PitchClass) Valid() bool {
	return p >= 0 && p <= 11
}

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// String returns the sharp spelling of the pitch class.
func (p PitchClass) String() string {
	if !p.Valid() {
		return "?"
	}
	return pitchNames[p]
}

// Chord is a named set of pitch classes that must all be matched
// to complete a lane. Notes are unique and kept in template order.
type Chord struct {
	Name  string
	Notes []PitchClass
}

// Contains reports whether the chord requires the pitch class.
func (c *Chord) Contains(p PitchClass) bool {
	for _, n := range c.Notes {
		if n == p {
			return true
		}
	}
	return false
}

// Index returns the position of the pitch class in the chord,
// or -1 if the chord does not require it.
func (c *Chord) Index(p PitchClass) int {
	for i, n := range c.Notes {
		if n == p {
			return i
		}
	}
	return -1
}

// Size returns the number of required notes.
func (c *Chord) Size() int {
	return len(c.Notes)
}
