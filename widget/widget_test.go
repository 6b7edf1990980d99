package widget_test

import (
	"testing"

	"github.com/rapidmidiex/notequiz/pitch"
	"github.com/rapidmidiex/notequiz/quiz"
	"github.com/rapidmidiex/notequiz/render"
	"github.com/rapidmidiex/notequiz/widget"
	"github.com/stretchr/testify/require"
)

// Bands: label [0, 8), staff [8, 32), keyboard [32, 48). Keys are 10 wide.
var bounds = render.Rect{W: 70, H: 48}

type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

func newWidget(current pitch.Key) (*widget.Widget, *render.Recorder) {
	w := widget.New(quiz.New(fixedRand(5), quiz.WithCurrent(current)))
	rec := &render.Recorder{}
	w.Draw(rec, bounds)
	return w, rec
}

func TestBands(t *testing.T) {
	label, sheet, keys := widget.Bands(bounds)
	require.Equal(t, render.Rect{W: 70, H: 8}, label)
	require.Equal(t, render.Rect{Y: 8, W: 70, H: 24}, sheet)
	require.Equal(t, render.Rect{Y: 32, W: 70, H: 16}, keys)

	w, _ := newWidget(44)
	require.Equal(t, widget.LabelBand, w.BandAt(1, 0))
	require.Equal(t, widget.StaffBand, w.BandAt(1, 8))
	require.Equal(t, widget.KeyboardBand, w.BandAt(1, 47.5))
	require.Equal(t, widget.NoBand, w.BandAt(1, 48))
	require.Equal(t, widget.NoBand, w.BandAt(-1, 10))
}

func TestDraw(t *testing.T) {
	t.Run("single note", func(t *testing.T) {
		_, rec := newWidget(44)

		texts := rec.Filter(render.DRAW_TEXT)
		require.Len(t, texts, 1)
		require.Equal(t, "F", texts[0].Text)

		glyphs := rec.Filter(render.DRAW_GLYPH)
		require.Len(t, glyphs, 2)
		require.Equal(t, render.TrebleClef, glyphs[0].Glyph)
		require.Equal(t, render.QuarterNote, glyphs[1].Glyph)

		// Five staff lines, F4 needs no ledger line.
		require.Len(t, rec.Filter(render.DRAW_LINE), 5)
	})

	t.Run("sharp on the bass clef", func(t *testing.T) {
		_, rec := newWidget(37)

		glyphs := rec.Filter(render.DRAW_GLYPH)
		require.Len(t, glyphs, 3)
		require.Equal(t, render.BassClef, glyphs[0].Glyph)
		require.Equal(t, render.Sharp, glyphs[2].Glyph)

		// A#3 sits on the top line of the bass staff.
		_, y := glyphs[1].Rect.Center()
		require.Equal(t, widget.StaffGeometry(render.Rect{Y: 8, W: 70, H: 24}).TopY, y)
	})

	t.Run("reveal mode draws every octave", func(t *testing.T) {
		w, rec := newWidget(39)
		w.Quiz().ToggleReveal()
		rec.Reset()
		w.Draw(rec, bounds)

		notes := 0
		for _, g := range rec.Filter(render.DRAW_GLYPH) {
			if g.Glyph == render.QuarterNote {
				notes++
			}
		}
		require.Equal(t, 2, notes)

		// Middle C takes a ledger line below the treble staff.
		lines := rec.Filter(render.DRAW_LINE)
		require.Len(t, lines, 6)
		require.Equal(t, 26.0, lines[5].Y1)
	})

	t.Run("empty bounds draw nothing", func(t *testing.T) {
		w, rec := newWidget(44)
		rec.Reset()
		w.Draw(rec, render.Rect{W: 70})
		require.Empty(t, rec.Commands)

		ev := w.PointerTapped(5, 0)
		require.Equal(t, widget.NoBand, ev.Band)
		require.Equal(t, pitch.Key(44), w.Quiz().Current())
	})
}

func TestPointerTapped(t *testing.T) {
	t.Run("label reshuffles", func(t *testing.T) {
		w, _ := newWidget(44)
		ev := w.PointerTapped(30, 4)
		require.Equal(t, widget.LabelBand, ev.Band)
		require.False(t, w.Quiz().Current().SamePitchClass(44))
	})

	t.Run("staff toggles reveal mode", func(t *testing.T) {
		w, _ := newWidget(44)
		ev := w.PointerTapped(30, 20)
		require.Equal(t, widget.StaffBand, ev.Band)
		require.True(t, w.Quiz().RevealAll())
		require.Equal(t, pitch.Key(44), w.Quiz().Current())
	})

	t.Run("keyboard answers", func(t *testing.T) {
		w, _ := newWidget(44)

		ev := w.PointerTapped(35, 45)
		require.Equal(t, widget.Event{Band: widget.KeyboardBand, Key: 44, Outcome: quiz.Correct}, ev)
		require.Equal(t, pitch.Key(32), w.Quiz().Current())

		ev = w.PointerTapped(11, 35)
		require.Equal(t, widget.Event{Band: widget.KeyboardBand, Key: 40, Outcome: quiz.Wrong}, ev)
		require.Equal(t, pitch.Key(28), w.Quiz().Current())
	})

	t.Run("taps outside every key change nothing", func(t *testing.T) {
		w := widget.New(quiz.New(fixedRand(5), quiz.WithCurrent(44)))
		ev := w.PointerTapped(5, 45)
		require.Equal(t, widget.NoBand, ev.Band)
		require.Equal(t, quiz.NoAnswer, ev.Outcome)
		require.Equal(t, pitch.Key(44), w.Quiz().Current())

		w.Draw(&render.Recorder{}, bounds)
		ev = w.PointerTapped(-3, 45)
		require.Equal(t, quiz.NoAnswer, ev.Outcome)
		require.Equal(t, pitch.Key(44), w.Quiz().Current())
	})

	t.Run("press answers without a tap", func(t *testing.T) {
		w, _ := newWidget(44)
		ev := w.Press(46)
		require.Equal(t, quiz.Wrong, ev.Outcome)
		require.Equal(t, pitch.Key(46), w.Quiz().Current())
	})
}
