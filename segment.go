package koch

import (
	"fmt"
	"iter"
)

// Segment is a directed line segment with a stroke color. Segments are
// values; refinement produces new segments rather than modifying existing
// ones.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
	// The color the segment is stroked with.
	Color Color
}

// Line returns an opaque black segment from p0 to p1.
func Line(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1, Color: Black}
}

// WithColor returns a copy of s stroked with c.
func (s Segment) WithColor(c Color) Segment {
	s.Color = c
	return s
}

func (s Segment) String() string {
	return fmt.Sprintf("%s→%s %s", s.P0, s.P1, s.Color)
}

// Vector returns P1−P0.
func (s Segment) Vector() Vec2 {
	return s.P1.Sub(s.P0)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Vector().Hypot()
}

// Eval returns the point at t ∈ [0, 1] along the segment.
func (s Segment) Eval(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

func (s Segment) Start() Point { return s.P0 }
func (s Segment) End() Point   { return s.P1 }

// Reverse returns the segment with its direction flipped. Reversing a segment
// before subdividing it flips the side the Koch bump grows on.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0, Color: s.Color}
}

func (s Segment) Translate(v Vec2) Segment {
	return Segment{
		P0:    s.P0.Translate(v),
		P1:    s.P1.Translate(v),
		Color: s.Color,
	}
}

func (s Segment) Transform(aff Affine) Segment {
	return Segment{
		P0:    s.P0.Transform(aff),
		P1:    s.P1.Transform(aff),
		Color: s.Color,
	}
}

// BoundingBox returns the smallest rectangle containing both end points.
func (s Segment) BoundingBox() Rect {
	return NewRectFromPoints(s.P0, s.P1)
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}

// Validate returns an error wrapping [ErrInvalidGeometry] if any coordinate of
// s is NaN or infinite. Zero-length segments are valid.
func (s Segment) Validate() error {
	if s.IsNaN() || s.IsInf() {
		return fmt.Errorf("segment %s: %w", s, ErrInvalidGeometry)
	}
	return nil
}

// PathElements returns the segment as a move followed by a line.
func (s Segment) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(s.P0)) &&
			yield(LineTo(s.P1))
	}
}
