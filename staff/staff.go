// Package staff places notes on a five-line staff.
package staff

import "github.com/rapidmidiex/notequiz/pitch"

type (
	// Geometry describes where the five printed lines are drawn.
	Geometry struct {
		// TopY is the top line of the staff.
		TopY float64
		// BottomY is the bottom line of the staff.
		BottomY float64
		// LineSpacing is the distance between two adjacent lines.
		LineSpacing float64
	}

	Position struct {
		// Y is the vertical centre of the note head.
		Y               float64
		NeedsLedgerLine bool
	}
)

const (
	// Half steps between middle C and the line Geometry anchors each clef on:
	// middle C sits one ledger line above the bass staff's top line and one
	// below the treble staff's bottom line.
	bassAnchor   = 2
	trebleAnchor = -2
	// Treble notes more than this many steps above middle C take a ledger line.
	trebleLedgerTop = 12
)

// Compute returns the position of key on a staff read in clef. Bass notes on
// a line above the staff take a ledger line. Treble notes on a line take one
// from middle C down and above A5.
func Compute(key pitch.Key, clef pitch.Clef, g Geometry) Position {
	rel := Relative(key, clef)
	half := g.LineSpacing / 2

	if clef == pitch.Bass {
		return Position{
			Y:               g.TopY - half*float64(rel),
			NeedsLedgerLine: rel%2 == 0 && rel > 1,
		}
	}
	return Position{
		Y:               g.BottomY - half*float64(rel),
		NeedsLedgerLine: rel%2 == 0 && (rel-trebleAnchor <= 0 || rel-trebleAnchor > trebleLedgerTop),
	}
}

// Relative returns the number of line/space steps from the clef's anchoring
// line (top line for bass, bottom line for treble) up to key. Sharps share
// the step of the natural below them.
func Relative(key pitch.Key, clef pitch.Clef) int {
	steps := DiatonicSteps(key)
	if clef == pitch.Bass {
		return steps + bassAnchor
	}
	return steps + trebleAnchor
}

// DiatonicSteps counts white-key steps from middle C to key, negative below it.
func DiatonicSteps(key pitch.Key) int {
	d := int(key - pitch.MiddleReference)
	n := accidentalsBetween(key, pitch.MiddleReference)
	if d < 0 {
		return d + n
	}
	return d - n
}

// accidentalsBetween counts the sharps in [min(key, ref), max(key, ref)]. A
// sharp below ref is not counted itself, so it lands on the natural below it
// rather than the one above.
func accidentalsBetween(key, ref pitch.Key) int {
	lo, hi := key, ref
	if lo > hi {
		lo, hi = hi, lo
	}
	n := 0
	for k := lo; k <= hi; k++ {
		if k.IsAccidental() {
			n++
		}
	}
	if key < ref && key.IsAccidental() {
		n--
	}
	return n
}
