package render

import (
	"encoding/json"
	"fmt"
)

type (
	Op int

	// Command is one recorded drawing call. Only the fields used by Op are set.
	Command struct {
		Op    Op      `json:"op"`
		Rect  Rect    `json:"rect"`
		X1    float64 `json:"x1,omitempty"`
		Y1    float64 `json:"y1,omitempty"`
		X2    float64 `json:"x2,omitempty"`
		Y2    float64 `json:"y2,omitempty"`
		Color Color   `json:"color"`
		Glyph Glyph   `json:"glyph,omitempty"`
		Text  string  `json:"text,omitempty"`
	}

	// Recorder is a Renderer that keeps every command it receives, in order.
	Recorder struct {
		Commands []Command
	}
)

const (
	FILL_RECT Op = iota
	STROKE_RECT
	DRAW_LINE
	DRAW_GLYPH
	DRAW_TEXT
)

func (rec *Recorder) FillRect(r Rect, c Color) {
	rec.Commands = append(rec.Commands, Command{Op: FILL_RECT, Rect: r, Color: c})
}

func (rec *Recorder) StrokeRect(r Rect, c Color) {
	rec.Commands = append(rec.Commands, Command{Op: STROKE_RECT, Rect: r, Color: c})
}

func (rec *Recorder) DrawLine(x1, y1, x2, y2 float64, c Color) {
	rec.Commands = append(rec.Commands, Command{Op: DRAW_LINE, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (rec *Recorder) DrawGlyph(r Rect, g Glyph) {
	rec.Commands = append(rec.Commands, Command{Op: DRAW_GLYPH, Rect: r, Glyph: g, Color: Ink})
}

func (rec *Recorder) DrawText(text string, x, y float64, c Color) {
	rec.Commands = append(rec.Commands, Command{Op: DRAW_TEXT, X1: x, Y1: y, Text: text, Color: c})
}

// Filter returns the recorded commands with the given op.
func (rec *Recorder) Filter(op Op) []Command {
	cmds := make([]Command, 0)
	for _, c := range rec.Commands {
		if c.Op == op {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

func (rec *Recorder) Reset() {
	rec.Commands = rec.Commands[:0]
}

func (o Op) MarshalJSON() ([]byte, error) {
	switch o {
	case FILL_RECT:
		return []byte(`"fillRect"`), nil
	case STROKE_RECT:
		return []byte(`"strokeRect"`), nil
	case DRAW_LINE:
		return []byte(`"drawLine"`), nil
	case DRAW_GLYPH:
		return []byte(`"drawGlyph"`), nil
	case DRAW_TEXT:
		return []byte(`"drawText"`), nil
	}
	return []byte{}, fmt.Errorf("unknown Op value: %d", o)
}

func (o *Op) UnmarshalJSON(data []byte) error {
	var rawOp string
	err := json.Unmarshal(data, &rawOp)
	if err != nil {
		return err
	}

	switch rawOp {
	case "fillRect":
		*o = FILL_RECT
	case "strokeRect":
		*o = STROKE_RECT
	case "drawLine":
		*o = DRAW_LINE
	case "drawGlyph":
		*o = DRAW_GLYPH
	case "drawText":
		*o = DRAW_TEXT
	default:
		return fmt.Errorf("unknown op: %s", rawOp)
	}
	return nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (g Glyph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var rawColor string
	err := json.Unmarshal(data, &rawColor)
	if err != nil {
		return err
	}

	for v := Background; v <= Highlight; v++ {
		if v.String() == rawColor {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown color: %s", rawColor)
}

func (g *Glyph) UnmarshalJSON(data []byte) error {
	var rawGlyph string
	err := json.Unmarshal(data, &rawGlyph)
	if err != nil {
		return err
	}

	for v := TrebleClef; v <= Sharp; v++ {
		if v.String() == rawGlyph {
			*g = v
			return nil
		}
	}
	return fmt.Errorf("unknown glyph: %s", rawGlyph)
}
