package keyboard_test

import (
	"testing"

	"github.com/rapidmidiex/notequiz/keyboard"
	"github.com/rapidmidiex/notequiz/pitch"
	"github.com/rapidmidiex/notequiz/render"
	"github.com/stretchr/testify/require"
)

var strip = render.Rect{X: 0, Y: 100, W: 70, H: 40}

func TestDraw(t *testing.T) {
	var (
		l   keyboard.Layout
		rec render.Recorder
	)
	l.Draw(&rec, strip, pitch.MiddleReference, pitch.MiddleReference)

	regions := l.Regions()
	require.Len(t, regions, keyboard.StripLen)

	t.Run("naturals tile left to right before accidentals", func(t *testing.T) {
		wantNaturals := []pitch.Key{39, 41, 43, 44, 46, 48, 50, 51}
		for i, want := range wantNaturals {
			got := regions[i]
			require.Equal(t, want, got.Key)
			require.Equal(t, render.Rect{X: 10 * float64(i), Y: 100, W: 10, H: 40}, got.Bounds)
		}
	})

	t.Run("accidentals sit on the boundaries at half size", func(t *testing.T) {
		wantAccidentals := []struct {
			key      pitch.Key
			boundary float64
		}{
			{40, 10}, {42, 20}, {45, 40}, {47, 50}, {49, 60},
		}
		for i, want := range wantAccidentals {
			got := regions[8+i]
			require.Equal(t, want.key, got.Key)
			require.Equal(t, render.Rect{X: want.boundary - 2.5, Y: 100, W: 5, H: 20}, got.Bounds)
		}
	})

	t.Run("highlights the target pitch class", func(t *testing.T) {
		var highlighted []render.Rect
		for _, c := range rec.Filter(render.FILL_RECT) {
			if c.Color == render.Highlight {
				highlighted = append(highlighted, c.Rect)
			}
		}
		// Both Cs of the strip.
		require.Equal(t, []render.Rect{regions[0].Bounds, regions[7].Bounds}, highlighted)
	})

	t.Run("redraw replaces regions", func(t *testing.T) {
		l.Draw(&rec, render.Rect{W: 140, H: 10}, pitch.MiddleReference, 40)
		again := l.Regions()
		require.Len(t, again, keyboard.StripLen)
		require.Equal(t, 20.0, again[0].Bounds.W)
	})
}

func TestDrawEmptyRect(t *testing.T) {
	var (
		l   keyboard.Layout
		rec render.Recorder
	)
	l.Draw(&rec, strip, pitch.MiddleReference, pitch.MiddleReference)
	rec.Reset()

	l.Draw(&rec, render.Rect{W: 0, H: 40}, pitch.MiddleReference, pitch.MiddleReference)
	require.Empty(t, rec.Commands)
	require.Empty(t, l.Regions())

	_, ok := l.Resolve(5, 110)
	require.False(t, ok)
}

func TestResolve(t *testing.T) {
	var (
		l   keyboard.Layout
		rec render.Recorder
	)
	l.Draw(&rec, strip, pitch.MiddleReference, pitch.MiddleReference)

	tests := []struct {
		name   string
		x, y   float64
		want   pitch.Key
		wantOK bool
	}{
		{"natural", 5, 130, 39, true},
		{"overlap prefers accidental", 11, 105, 40, true},
		{"below accidental falls through to natural", 11, 125, 41, true},
		{"other side of overlap", 9, 105, 40, true},
		{"last accidental", 60, 119.9, 49, true},
		{"left of strip", -1, 110, 0, false},
		{"above strip", 5, 99, 0, false},
		{"below strip", 5, 140, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.Resolve(tt.x, tt.y)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}

	t.Run("every overlap resolves to the accidental", func(t *testing.T) {
		regions := l.Regions()
		for _, acc := range regions {
			if !acc.Key.IsAccidental() {
				continue
			}
			for _, nat := range regions {
				if nat.Key.IsAccidental() {
					continue
				}
				for _, x := range []float64{acc.Bounds.X, acc.Bounds.X + acc.Bounds.W/2, acc.Bounds.Right() - 0.01} {
					y := acc.Bounds.Y + 1
					if nat.Bounds.Contains(x, y) {
						got, ok := l.Resolve(x, y)
						require.True(t, ok)
						require.Equal(t, acc.Key, got)
					}
				}
			}
		}
	})
}

func TestBindings(t *testing.T) {
	got := keyboard.Bindings(pitch.MiddleReference)
	want := keyboard.KeyMap{
		"a": 39, "w": 40, "s": 41, "e": 42, "d": 43, "f": 44, "t": 45,
		"g": 46, "y": 47, "h": 48, "u": 49, "j": 50, "k": 51,
	}
	require.Equal(t, want, got)

	b, ok := keyboard.Binding(pitch.MiddleReference, 45)
	require.True(t, ok)
	require.Equal(t, "t", b)

	_, ok = keyboard.Binding(pitch.MiddleReference, 52)
	require.False(t, ok)
}
