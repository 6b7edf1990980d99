package termui

import (
	"math"
	"strings"

	"github.com/rapidmidiex/notequiz/render"
	"github.com/rapidmidiex/notequiz/styles"
)

type (
	cell struct {
		ch rune
		fg render.Color
		bg render.Color
	}

	// Canvas is a grid of terminal cells implementing render.Renderer. One
	// unit of widget space is one cell; a cell is painted when its centre
	// falls inside a shape.
	Canvas struct {
		width, height int
		cells         []cell
	}
)

// Glyphs are drawn as a single character in the centre of their rect.
var glyphRunes = map[render.Glyph]rune{
	render.TrebleClef:  '&',
	render.BassClef:    '?',
	render.QuarterNote: '●',
	render.Sharp:       '♯',
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width, c.height = width, height
	c.cells = make([]cell, width*height)
	c.Clear()
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: render.Ink, bg: render.Background}
	}
}

// Bounds is the widget space covered by the canvas.
func (c *Canvas) Bounds() render.Rect {
	return render.Rect{W: float64(c.width), H: float64(c.height)}
}

func (c *Canvas) FillRect(r render.Rect, color render.Color) {
	c0, r0, c1, r1 := c.span(r)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c.set(col, row, cell{ch: ' ', fg: color, bg: color})
		}
	}
}

func (c *Canvas) StrokeRect(r render.Rect, color render.Color) {
	c0, r0, c1, r1 := c.span(r)
	if c0 >= c1 || r0 >= r1 {
		return
	}
	for col := c0; col < c1; col++ {
		c.ink(col, r0, '─', color)
		c.ink(col, r1-1, '─', color)
	}
	for row := r0; row < r1; row++ {
		c.ink(c0, row, '│', color)
		c.ink(c1-1, row, '│', color)
	}
	c.ink(c0, r0, '┌', color)
	c.ink(c1-1, r0, '┐', color)
	c.ink(c0, r1-1, '└', color)
	c.ink(c1-1, r1-1, '┘', color)
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, color render.Color) {
	switch {
	case y1 == y2:
		row := int(math.Floor(y1))
		from, to := cellIndex(math.Min(x1, x2)), cellIndex(math.Max(x1, x2))
		for col := from; col < to; col++ {
			c.ink(col, row, '─', color)
		}
	case x1 == x2:
		col := int(math.Floor(x1))
		from, to := cellIndex(math.Min(y1, y2)), cellIndex(math.Max(y1, y2))
		for row := from; row < to; row++ {
			c.ink(col, row, '│', color)
		}
	default:
		steps := int(math.Ceil(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			c.ink(int(math.Floor(x1+(x2-x1)*t)), int(math.Floor(y1+(y2-y1)*t)), '·', color)
		}
	}
}

func (c *Canvas) DrawGlyph(r render.Rect, g render.Glyph) {
	ch, ok := glyphRunes[g]
	if !ok {
		return
	}
	x, y := r.Center()
	c.ink(int(math.Floor(x)), int(math.Floor(y)), ch, render.Ink)
}

func (c *Canvas) DrawText(text string, x, y float64, color render.Color) {
	runes := []rune(text)
	col := int(math.Round(x - float64(len(runes))/2))
	row := int(math.Floor(y))
	for i, ch := range runes {
		c.ink(col+i, row, ch, color)
	}
}

// String renders the canvas with terminal colors.
func (c *Canvas) String() string {
	doc := strings.Builder{}
	for row := 0; row < c.height; row++ {
		line := c.cells[row*c.width : (row+1)*c.width]
		start := 0
		for col := 1; col <= len(line); col++ {
			if col < len(line) && line[col].fg == line[start].fg && line[col].bg == line[start].bg {
				continue
			}
			run := make([]rune, 0, col-start)
			for _, cl := range line[start:col] {
				run = append(run, cl.ch)
			}
			doc.WriteString(styles.Cell(line[start].fg, line[start].bg).Render(string(run)))
			start = col
		}
		if row < c.height-1 {
			doc.WriteString("\n")
		}
	}
	return doc.String()
}

// Plain renders the canvas characters only.
func (c *Canvas) Plain() string {
	doc := strings.Builder{}
	for row := 0; row < c.height; row++ {
		for _, cl := range c.cells[row*c.width : (row+1)*c.width] {
			doc.WriteRune(cl.ch)
		}
		if row < c.height-1 {
			doc.WriteString("\n")
		}
	}
	return doc.String()
}

// span returns the cells whose centres lie inside r, clipped to the canvas.
func (c *Canvas) span(r render.Rect) (c0, r0, c1, r1 int) {
	c0, c1 = clamp(cellIndex(r.X), c.width), clamp(cellIndex(r.Right()), c.width)
	r0, r1 = clamp(cellIndex(r.Y), c.height), clamp(cellIndex(r.Bottom()), c.height)
	return c0, r0, c1, r1
}

// ink draws ch over the existing background of a cell.
func (c *Canvas) ink(col, row int, ch rune, fg render.Color) {
	if !c.inside(col, row) {
		return
	}
	cl := c.cells[row*c.width+col]
	cl.ch, cl.fg = ch, fg
	c.cells[row*c.width+col] = cl
}

func (c *Canvas) set(col, row int, cl cell) {
	if !c.inside(col, row) {
		return
	}
	c.cells[row*c.width+col] = cl
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && col < c.width && row >= 0 && row < c.height
}

// cellIndex returns the first cell whose centre is at or after v.
func cellIndex(v float64) int {
	return int(math.Ceil(v - 0.5))
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// At returns the contents of a cell. Cells outside the canvas are blank.
func (c *Canvas) At(col, row int) (ch rune, fg, bg render.Color) {
	if !c.inside(col, row) {
		return ' ', render.Ink, render.Background
	}
	cl := c.cells[row*c.width+col]
	return cl.ch, cl.fg, cl.bg
}
