// Package pitch maps piano key indexes to note names, accidentals and clefs.
package pitch

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

type (
	// Key identifies one physical piano key. Key 0 is the lowest A of an
	// 88-key piano, so Key 39 is middle C.
	Key int

	// Clef is the staff a key is conventionally read on.
	Clef int

	// Range is an inclusive span of keys.
	Range struct {
		Low  Key
		High Key
	}
)

const (
	Bass Clef = iota
	Treble
)

const (
	// PitchClassCount is the number of keys in one chromatic octave.
	PitchClassCount = 12
	// MiddleReference is middle C. Keys below it belong to the bass clef.
	MiddleReference Key = 39
	// MIDI note number of Key 0 (A0).
	midiA0 = 21
	// Distance from MiddleReference to either end of DefaultRange.
	defaultSpan = 20
)

// DefaultRange is the working range notes are drawn from.
var DefaultRange = Range{
	Low:  MiddleReference - defaultSpan,
	High: MiddleReference + defaultSpan,
}

// Ordered from A so that index == Key mod 12.
var noteNames = [PitchClassCount]struct {
	name         string
	isAccidental bool
}{
	{name: "A", isAccidental: false},
	{name: "A Sharp", isAccidental: true},
	{name: "B", isAccidental: false},
	{name: "C", isAccidental: false},
	{name: "C Sharp", isAccidental: true},
	{name: "D", isAccidental: false},
	{name: "D Sharp", isAccidental: true},
	{name: "E", isAccidental: false},
	{name: "F", isAccidental: false},
	{name: "F Sharp", isAccidental: true},
	{name: "G", isAccidental: false},
	{name: "G Sharp", isAccidental: true},
}

// PitchClass returns k mod 12 in [0, 12), for negative keys too.
func (k Key) PitchClass() int {
	pc := int(k) % PitchClassCount
	if pc < 0 {
		pc += PitchClassCount
	}
	return pc
}

// Name returns the sharp-spelled note name, ex: "C", "F Sharp".
func (k Key) Name() string {
	return noteNames[k.PitchClass()].name
}

// IsAccidental reports whether k is a sharp, ie. a "black" key.
func (k Key) IsAccidental() bool {
	return noteNames[k.PitchClass()].isAccidental
}

func (k Key) SamePitchClass(other Key) bool {
	return k.PitchClass() == other.PitchClass()
}

func (k Key) Clef() Clef {
	if k < MiddleReference {
		return Bass
	}
	return Treble
}

// FlipClef moves k by whole octaves until it lands on the other clef.
// Bass keys move up into the treble clef, treble keys move down into the bass clef.
func (k Key) FlipClef() Key {
	if k < MiddleReference {
		for k < MiddleReference {
			k += PitchClassCount
		}
		return k
	}
	for k >= MiddleReference {
		k -= PitchClassCount
	}
	return k
}

// MIDI returns the MIDI note for k. ok is false when k falls outside the MIDI range.
func (k Key) MIDI() (note midi.Note, ok bool) {
	n := int(k) + midiA0
	if n < 0 || n > 127 {
		return 0, false
	}
	return midi.Note(uint8(n)), true
}

// Label returns the name with its octave in scientific pitch notation, ex: "C Sharp 4".
func (k Key) Label() string {
	note, ok := k.MIDI()
	if !ok {
		return k.Name()
	}
	// gomidi counts octaves from MIDI 0, scientific notation starts one lower.
	return fmt.Sprintf("%s %d", k.Name(), int(note.Octave())-1)
}

func (c Clef) String() string {
	switch c {
	case Bass:
		return "bass"
	case Treble:
		return "treble"
	}
	return fmt.Sprintf("Clef(%d)", int(c))
}

func (r Range) Contains(k Key) bool {
	return k >= r.Low && k <= r.High
}

// Len returns the number of keys in the range.
func (r Range) Len() int {
	if r.High < r.Low {
		return 0
	}
	return int(r.High-r.Low) + 1
}

// Validate checks the range holds a full octave on each side of
// MiddleReference, so a key moved to the other clef by FlipClef stays in it.
func (r Range) Validate() error {
	if r.Low > MiddleReference-PitchClassCount || r.High < MiddleReference+PitchClassCount-1 {
		return fmt.Errorf("range [%d, %d] must cover [%d, %d]", r.Low, r.High,
			MiddleReference-PitchClassCount, MiddleReference+PitchClassCount-1)
	}
	return nil
}
