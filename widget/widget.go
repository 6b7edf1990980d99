// Package widget draws the quiz as three bands (label, staff and keyboard)
// and turns taps on them into quiz transitions.
package widget

import (
	"github.com/rapidmidiex/notequiz/keyboard"
	"github.com/rapidmidiex/notequiz/pitch"
	"github.com/rapidmidiex/notequiz/quiz"
	"github.com/rapidmidiex/notequiz/render"
	"github.com/rapidmidiex/notequiz/staff"
)

type (
	Band int

	// Event describes what a tap did.
	Event struct {
		Band Band
		// Key is the key tapped in the keyboard band, valid when Outcome is not quiz.NoAnswer.
		Key     pitch.Key
		Outcome quiz.Outcome
	}

	Widget struct {
		quiz   *quiz.State
		keys   keyboard.Layout
		bounds render.Rect
	}
)

const (
	NoBand Band = iota
	LabelBand
	StaffBand
	KeyboardBand
)

const (
	// Bands split the height in sixths: label 1, staff 3, keyboard 2.
	sections      = 6
	labelSections = 1
	staffSections = 3

	// Anchor is the first key of the keyboard strip.
	Anchor = pitch.MiddleReference
)

func New(q *quiz.State) *Widget {
	return &Widget{quiz: q}
}

func (w *Widget) Quiz() *quiz.State { return w.quiz }

// Bands splits bounds into the label, staff and keyboard bands.
func Bands(bounds render.Rect) (label, sheet, keys render.Rect) {
	h := bounds.H / sections
	label = render.Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: h * labelSections}
	sheet = render.Rect{X: bounds.X, Y: label.Bottom(), W: bounds.W, H: h * staffSections}
	keys = render.Rect{X: bounds.X, Y: sheet.Bottom(), W: bounds.W, H: bounds.Bottom() - sheet.Bottom()}
	return label, sheet, keys
}

// Draw paints a frame into bounds. Taps are classified against the bounds
// of the last Draw.
func (w *Widget) Draw(r render.Renderer, bounds render.Rect) {
	w.bounds = bounds
	label, sheet, keys := Bands(bounds)
	if bounds.Empty() {
		// Clears the key regions.
		w.keys.Draw(r, keys, Anchor, w.quiz.Current())
		return
	}

	w.drawLabel(r, label)
	w.drawStaff(r, sheet)
	w.keys.Draw(r, keys, Anchor, w.quiz.Current())
}

// BandAt returns the band containing (x, y).
func (w *Widget) BandAt(x, y float64) Band {
	if w.bounds.Empty() || !w.bounds.Contains(x, y) {
		return NoBand
	}
	label, sheet, _ := Bands(w.bounds)
	switch {
	case label.Contains(x, y):
		return LabelBand
	case sheet.Contains(x, y):
		return StaffBand
	default:
		return KeyboardBand
	}
}

// PointerTapped handles a tap at (x, y): the label band reshuffles, the
// staff band toggles reveal mode and the keyboard band answers.
func (w *Widget) PointerTapped(x, y float64) Event {
	ev := Event{Band: w.BandAt(x, y)}
	switch ev.Band {
	case LabelBand:
		w.quiz.Reshuffle()
	case StaffBand:
		w.quiz.ToggleReveal()
	case KeyboardBand:
		k, ok := w.keys.Resolve(x, y)
		if !ok {
			return ev
		}
		ev.Key = k
		ev.Outcome = w.quiz.Answer(k)
	}
	return ev
}

// Press answers with a key directly, as if its region had been tapped.
func (w *Widget) Press(k pitch.Key) Event {
	return Event{
		Band:    KeyboardBand,
		Key:     k,
		Outcome: w.quiz.Answer(k),
	}
}

func (w *Widget) drawLabel(r render.Renderer, rect render.Rect) {
	r.FillRect(rect, render.Label)
	x, y := rect.Center()
	r.DrawText(w.quiz.Current().Name(), x, y, render.LabelText)
}

// StaffGeometry returns where the five lines go inside the staff band. The
// lines take the middle third, leaving room for ledger notes either side.
func StaffGeometry(sheet render.Rect) staff.Geometry {
	margin := sheet.H / 3
	top := sheet.Y + margin
	bottom := sheet.Bottom() - margin
	return staff.Geometry{
		TopY:        top,
		BottomY:     bottom,
		LineSpacing: (bottom - top) / 4,
	}
}

func (w *Widget) drawStaff(r render.Renderer, rect render.Rect) {
	r.FillRect(rect, render.Paper)

	geo := StaffGeometry(rect)
	ls := geo.LineSpacing
	clef := w.quiz.Current().Clef()

	for i := 0; i < 5; i++ {
		y := geo.TopY + ls*float64(i)
		r.DrawLine(rect.X, y, rect.Right(), y, render.Ink)
	}

	clefRect := render.Rect{X: rect.X, Y: geo.TopY - ls, W: 3 * ls, H: geo.BottomY - geo.TopY + 2*ls}
	if clef == pitch.Bass {
		r.DrawGlyph(clefRect, render.BassClef)
	} else {
		r.DrawGlyph(clefRect, render.TrebleClef)
	}

	x, _ := rect.Center()
	for _, k := range w.quiz.Visible() {
		drawNote(r, x, staff.Compute(k, clef, geo), k.IsAccidental(), ls)
	}
}

func drawNote(r render.Renderer, x float64, pos staff.Position, sharp bool, ls float64) {
	noteW := ls * 1.5
	// Ledger line first so the note head is drawn over it.
	if pos.NeedsLedgerLine {
		half := noteW * 0.75
		r.DrawLine(x-half, pos.Y, x+half, pos.Y, render.Ink)
	}
	r.DrawGlyph(render.Rect{X: x - noteW/2, Y: pos.Y - ls/2, W: noteW, H: ls}, render.QuarterNote)

	if sharp {
		sharpW := noteW * 0.75
		cx := x - noteW
		r.DrawGlyph(render.Rect{X: cx - sharpW/2, Y: pos.Y - sharpW/2, W: sharpW, H: sharpW}, render.Sharp)
	}
}
