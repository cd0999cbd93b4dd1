package koch

import "math"

// Subdivide applies one step of the Koch construction to s. The segment is
// split into thirds and the middle third is replaced by the two other sides
// of an equilateral triangle. The result is, in order,
//
//	P0 → A, A → T, T → B, B → P1
//
// where A and B are the points at one and two thirds of s and T is the apex
// computed by [Apex]. All four segments keep the color of s.
//
// A zero-length segment yields four zero-length segments at the same point.
// NaN and infinite coordinates propagate into the result; use
// [Segment.Validate] to reject them beforehand.
func Subdivide(s Segment) [4]Segment {
	d := s.P1.Sub(s.P0).Div(3)
	a := s.P0.Translate(d)
	b := s.P0.Translate(d.Mul(2))
	t := apex(a, d)
	return [4]Segment{
		{P0: s.P0, P1: a, Color: s.Color},
		{P0: a, P1: t, Color: s.Color},
		{P0: t, P1: b, Color: s.Color},
		{P0: b, P1: s.P1, Color: s.Color},
	}
}

// Apex returns the third corner of the equilateral triangle erected on the
// span from p1 to p2. In a y-down space, the apex lies to the left of the
// direction of travel, so a horizontal span going right gets an apex above
// it.
func Apex(p1, p2 Point) Point {
	return apex(p1, p2.Sub(p1))
}

// apex computes the corner for the span starting at p with delta d. The
// direction is atan2 of the half delta, rotated by −60°.
func apex(p Point, d Vec2) Point {
	l := d.Hypot()
	th := math.Atan2(d.Y/2, d.X/2) - math.Pi/3
	return Point{
		X: p.X + l*math.Cos(th),
		Y: p.Y + l*math.Sin(th),
	}
}

// Advance applies [Subdivide] to every segment of segs, in order, and returns
// the concatenated result, which is four times as long. segs is not modified.
func Advance(segs []Segment) []Segment {
	out := make([]Segment, 0, 4*len(segs))
	for _, s := range segs {
		children := Subdivide(s)
		out = append(out, children[:]...)
	}
	return out
}

// Generate returns seed refined level times. For level ≤ 0 it returns a copy
// of seed.
func Generate(seed []Segment, level int) []Segment {
	out := append([]Segment(nil), seed...)
	for range level {
		out = Advance(out)
	}
	return out
}
