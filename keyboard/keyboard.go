// Package keyboard lays out a strip of piano keys and maps points back to keys.
package keyboard

import (
	"github.com/rapidmidiex/notequiz/pitch"
	"github.com/rapidmidiex/notequiz/render"
)

type (
	// Region is the area a key was drawn in.
	Region struct {
		Bounds render.Rect
		Key    pitch.Key
	}

	// Layout draws the strip and remembers where each key went, in draw
	// order, until the next Draw.
	Layout struct {
		regions []Region
	}

	// KeyMap binds qwerty keys to strip keys.
	KeyMap map[string]pitch.Key
)

const (
	// StripLen is the number of keys drawn: one octave plus the closing key.
	StripLen = pitch.PitchClassCount + 1
	// Naturals across the strip width. An octave starting on a natural
	// holds eight, so the last one falls past the right edge.
	visibleNaturals = 7
)

// qwerty keys ordered to allow for fingering similar to a real piano,
// starting on C with the home row for naturals and the q-row for accidentals.
var qwertyKeys = [StripLen]string{"a", "w", "s", "e", "d", "f", "t", "g", "y", "h", "u", "j", "k"}

// Keys returns the keys of the strip starting at anchor.
func Keys(anchor pitch.Key) []pitch.Key {
	keys := make([]pitch.Key, 0, StripLen)
	for i := 0; i < StripLen; i++ {
		keys = append(keys, anchor+pitch.Key(i))
	}
	return keys
}

// Bindings maps a qwerty key to each key of the strip starting at anchor.
func Bindings(anchor pitch.Key) KeyMap {
	kMap := make(KeyMap, StripLen)
	for i, k := range Keys(anchor) {
		kMap[qwertyKeys[i]] = k
	}
	return kMap
}

// Binding returns the qwerty key bound to k on the strip starting at anchor.
func Binding(anchor, k pitch.Key) (string, bool) {
	i := int(k - anchor)
	if i < 0 || i >= StripLen {
		return "", false
	}
	return qwertyKeys[i], true
}

// Draw paints the strip starting at anchor into rect and rebuilds the
// regions. Keys with target's pitch class are highlighted.
func (l *Layout) Draw(r render.Renderer, rect render.Rect, anchor, target pitch.Key) {
	l.regions = l.regions[:0]
	if rect.Empty() {
		return
	}

	r.FillRect(rect, render.Background)

	keyW := rect.W / visibleNaturals
	keyH := rect.H
	keys := Keys(anchor)

	// Naturals first so accidentals overlay them.
	for i, k := range keys {
		if k.IsAccidental() {
			continue
		}
		col := i - accidentalsBefore(keys, i)
		bounds := render.Rect{X: rect.X + keyW*float64(col), Y: rect.Y, W: keyW, H: keyH}
		fill := render.WhiteKey
		if k.SamePitchClass(target) {
			fill = render.Highlight
		}
		r.FillRect(bounds, fill)
		r.StrokeRect(bounds, render.BlackKey)
		l.regions = append(l.regions, Region{Bounds: bounds, Key: k})
	}

	for i, k := range keys {
		if !k.IsAccidental() {
			continue
		}
		// Centred on the boundary between the naturals either side.
		boundary := rect.X + keyW*float64(i-accidentalsBefore(keys, i))
		bounds := render.Rect{X: boundary - keyW/4, Y: rect.Y, W: keyW / 2, H: keyH / 2}
		fill := render.BlackKey
		if k.SamePitchClass(target) {
			fill = render.Highlight
		}
		r.FillRect(bounds, fill)
		r.StrokeRect(bounds, render.BlackKey)
		l.regions = append(l.regions, Region{Bounds: bounds, Key: k})
	}
}

// Resolve returns the key drawn at (x, y). Later regions win, so an
// accidental is preferred over the natural underneath it.
func (l *Layout) Resolve(x, y float64) (pitch.Key, bool) {
	for i := len(l.regions) - 1; i >= 0; i-- {
		if l.regions[i].Bounds.Contains(x, y) {
			return l.regions[i].Key, true
		}
	}
	return 0, false
}

// Regions returns a copy of the regions from the last Draw.
func (l *Layout) Regions() []Region {
	regions := make([]Region, len(l.regions))
	copy(regions, l.regions)
	return regions
}

func accidentalsBefore(keys []pitch.Key, i int) int {
	n := 0
	for _, k := range keys[:i] {
		if k.IsAccidental() {
			n++
		}
	}
	return n
}
