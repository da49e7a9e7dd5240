// Package fretting supplies the musical alphabets the engines run over:
// relative fret offsets for chord shapes and the twelve pitch classes.
//
// Both types implement alphabet.Valued. Musical meaning stays here; the
// variation, equivalence and pairing packages only see integer values.
package fretting

import "strconv"

// semitones is the size of the chromatic octave.
const semitones = 12

// RelativeFret is a fret offset from the lowest fretted position of a shape.
type RelativeFret int

// Value implements alphabet.Valued.
func (f RelativeFret) Value() int { return int(f) }

// String renders the offset in base 10.
func (f RelativeFret) String() string { return strconv.Itoa(int(f)) }

// RelativeFrets returns the offsets 0..span, the alphabet of shapes that fit
// within span+1 frets. Returns nil for span < 0.
func RelativeFrets(span int) []RelativeFret {
	if span < 0 {
		return nil
	}
	out := make([]RelativeFret, span+1)
	for i := range out {
		out[i] = RelativeFret(i)
	}

	return out
}

// PitchClass is a note name modulo octave, 0 (C) through 11 (B).
type PitchClass int

// Pitch classes in chromatic order.
const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var pitchClassNames = [semitones]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Value implements alphabet.Valued.
func (p PitchClass) Value() int { return int(p) }

// String returns the sharp spelling, or "PitchClass(n)" when out of range.
func (p PitchClass) String() string {
	if p < C || p > B {
		return "PitchClass(" + strconv.Itoa(int(p)) + ")"
	}
	return pitchClassNames[p]
}

// PitchClasses returns C..B in chromatic order.
func PitchClasses() []PitchClass {
	out := make([]PitchClass, semitones)
	for i := range out {
		out[i] = PitchClass(i)
	}

	return out
}

// IntervalClass is the shortest distance in semitones between two pitch
// classes around the octave: min(|a-b|, 12-|a-b|), in 0..6. It is symmetric.
func IntervalClass(a, b PitchClass) int {
	d := int(a) - int(b)
	d = ((d % semitones) + semitones) % semitones

	return min(d, semitones-d)
}
