package render

import (
	"math"
	"strings"

	"honnef.co/go/koch"
)

// Each braille cell holds 2×4 dots.
const (
	brailleDotsX = 2
	brailleDotsY = 4
	brailleBase  = 0x2800
)

// brailleBits maps a dot position within a cell to its bit in the code
// point, indexed by [x][y].
var brailleBits = [brailleDotsX][brailleDotsY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Braille is a monochrome-per-cell [Drawable] for text terminals. Every
// character cell is a braille pattern of 2×4 dots; a cell takes the color of
// the last segment that touched it.
type Braille struct {
	cols, rows int
	mask       []uint8
	color      []koch.Color
	transform  koch.Affine
}

// NewBraille returns an empty canvas of cols×rows character cells, which is
// 2·cols × 4·rows dots.
func NewBraille(cols, rows int) *Braille {
	cols, rows = max(cols, 1), max(rows, 1)
	return &Braille{
		cols:      cols,
		rows:      rows,
		mask:      make([]uint8, cols*rows),
		color:     make([]koch.Color, cols*rows),
		transform: koch.Identity,
	}
}

// Bounds returns the dot grid as a rectangle, for use with [koch.Fit].
func (b *Braille) Bounds() koch.Rect {
	return koch.Rect{X1: float64(b.cols*brailleDotsX - 1), Y1: float64(b.rows*brailleDotsY - 1)}
}

// SetTransform sets the transform from curve space into dot space.
func (b *Braille) SetTransform(aff koch.Affine) { b.transform = aff }

// Clear removes all dots.
func (b *Braille) Clear() {
	clear(b.mask)
	clear(b.color)
}

func (b *Braille) set(x, y int, c koch.Color) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/brailleDotsX, y/brailleDotsY
	if cx >= b.cols || cy >= b.rows {
		return
	}
	i := cy*b.cols + cx
	b.mask[i] |= brailleBits[x%brailleDotsX][y%brailleDotsY]
	b.color[i] = c
}

// line draws between two dots with Bresenham's algorithm.
func (b *Braille) line(x0, y0, x1, y1 int, c koch.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// dot converts a point in dot space to integer coordinates, clamped so that
// far-away points do not overflow.
func dot(p koch.Point) (int, int) {
	const limit = 1 << 20
	p = p.Round()
	return int(math.Max(-limit, math.Min(limit, p.X))), int(math.Max(-limit, math.Min(limit, p.Y)))
}

// DrawSegments draws segs with the current transform.
func (b *Braille) DrawSegments(segs []koch.Segment) error {
	if err := validateSegments(segs); err != nil {
		return err
	}
	for _, s := range segs {
		s = s.Transform(b.transform)
		x0, y0 := dot(s.P0)
		x1, y1 := dot(s.P1)
		b.line(x0, y0, x1, y1, s.Color)
	}
	return nil
}

// DrawPolyline draws the path through pts in color c.
func (b *Braille) DrawPolyline(pts []koch.Point, c koch.Color) error {
	if err := validatePoints(pts); err != nil {
		return err
	}
	return b.DrawSegments(polylineSegments(pts, c))
}

// Render clears the canvas and draws cv fitted into it.
func (b *Braille) Render(cv *koch.Curve) error {
	b.Clear()
	b.transform = koch.Fit(cv.BoundingBox(), b.Bounds())
	return b.DrawSegments(cv.Segments())
}

// String returns the rows joined by newlines, without colors. Empty cells
// are spaces.
func (b *Braille) String() string {
	return b.Colorize(nil)
}

// Colorize is like [Braille.String], but passes every non-empty cell through
// paint together with its color. A nil paint leaves cells unchanged.
func (b *Braille) Colorize(paint func(cell string, c koch.Color) string) string {
	var sb strings.Builder
	for y := range b.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.cols {
			i := y*b.cols + x
			if b.mask[i] == 0 {
				sb.WriteByte(' ')
				continue
			}
			cell := string(rune(brailleBase + int(b.mask[i])))
			if paint != nil {
				cell = paint(cell, b.color[i])
			}
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
