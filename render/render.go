// Package render defines the drawing surface the quiz widget paints on.
package render

type (
	// Rect is an axis aligned rectangle. It contains points on its top and
	// left edges but not on its bottom and right edges.
	Rect struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		W float64 `json:"w"`
		H float64 `json:"h"`
	}

	Color int
	Glyph int

	// Renderer receives the drawing commands for one frame.
	Renderer interface {
		FillRect(r Rect, c Color)
		StrokeRect(r Rect, c Color)
		DrawLine(x1, y1, x2, y2 float64, c Color)
		// DrawGlyph draws an icon scaled to r, in Ink.
		DrawGlyph(r Rect, g Glyph)
		// DrawText draws a single line of text centred on (x, y).
		DrawText(text string, x, y float64, c Color)
	}
)

const (
	Background Color = iota
	Label
	LabelText
	Paper
	Ink
	WhiteKey
	BlackKey
	Highlight
)

const (
	TrebleClef Glyph = iota + 1
	BassClef
	QuarterNote
	Sharp
)

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (c Color) String() string {
	switch c {
	case Background:
		return "background"
	case Label:
		return "label"
	case LabelText:
		return "labelText"
	case Paper:
		return "paper"
	case Ink:
		return "ink"
	case WhiteKey:
		return "whiteKey"
	case BlackKey:
		return "blackKey"
	case Highlight:
		return "highlight"
	}
	return "unknown"
}

func (g Glyph) String() string {
	switch g {
	case TrebleClef:
		return "trebleClef"
	case BassClef:
		return "bassClef"
	case QuarterNote:
		return "quarterNote"
	case Sharp:
		return "sharp"
	}
	return "unknown"
}
