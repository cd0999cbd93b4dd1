// Package render draws Koch curves.
//
// [Canvas] rasterizes segments into an image with github.com/gogpu/gg, as
// round-capped strokes of fixed width in each segment's color. [Braille]
// draws them into a grid of Unicode braille characters for terminals. Both
// implement [Drawable].
package render

import (
	"fmt"

	"honnef.co/go/koch"
)

// Drawable is a sink for strokes.
type Drawable interface {
	// DrawSegments strokes every segment in order, each in its own color.
	DrawSegments(segs []koch.Segment) error
	// DrawPolyline strokes the open path through pts in a single color.
	DrawPolyline(pts []koch.Point, c koch.Color) error
}

var (
	_ Drawable = (*Canvas)(nil)
	_ Drawable = (*Braille)(nil)
)

// DefaultInstructions is the help text drawn by [Canvas.Render] when no
// other instructions were configured.
var DefaultInstructions = []string{
	"Space: advance one level",
	"R: reset to the seed",
}

func validateSegments(segs []koch.Segment) error {
	for i, s := range segs {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("render: segment %d: %w", i, err)
		}
	}
	return nil
}

func validatePoints(pts []koch.Point) error {
	for i, p := range pts {
		if !p.IsFinite() {
			return fmt.Errorf("render: point %d %s: %w", i, p, koch.ErrInvalidGeometry)
		}
	}
	return nil
}

// polylineSegments turns a polyline into chained segments of one color.
func polylineSegments(pts []koch.Point, c koch.Color) []koch.Segment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]koch.Segment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		segs = append(segs, koch.Segment{P0: pts[i-1], P1: pts[i], Color: c})
	}
	return segs
}

// status describes the curve for the status line.
func status(c *koch.Curve) string {
	return fmt.Sprintf("level %d, %d segments", c.Level(), c.Len())
}
