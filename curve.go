package koch

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"
)

// Seed returns the default seed: an equilateral triangle with side 300 and
// its base on y = 400, traversed so that the exterior lies to the left of
// every edge in y-down space. Its sides are red, green and blue.
func Seed() []Segment {
	bottomLeft := Pt(150, 400)
	top := Pt(300, 400-150*math.Sqrt(3))
	bottomRight := Pt(450, 400)
	return []Segment{
		{P0: bottomLeft, P1: top, Color: RGB(255, 0, 0)},
		{P0: top, P1: bottomRight, Color: RGB(0, 255, 0)},
		{P0: bottomRight, P1: bottomLeft, Color: RGB(0, 0, 255)},
	}
}

// Option configures a [Curve].
type Option func(*options)

type options struct {
	seed   []Segment
	logger *slog.Logger
}

// WithSeed replaces the default seed. The segments are copied.
func WithSeed(segs ...Segment) Option {
	return func(o *options) {
		o.seed = append([]Segment{}, segs...)
	}
}

// WithLogger sets the logger for a single curve. Without it, the curve uses
// the package-wide logger at the time of construction.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Curve is an ordered sequence of segments at some refinement level. Level 0
// is the seed. Every refinement replaces the whole sequence; the previous
// slice is never written to.
//
// A Curve is not safe for concurrent use.
type Curve struct {
	seed   []Segment
	segs   []Segment
	level  int
	logger *slog.Logger
}

// New returns a curve at level 0.
//
// Every seed segment must pass [Segment.Validate].
func New(opts ...Option) (*Curve, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == nil {
		o.seed = Seed()
	}
	if len(o.seed) == 0 {
		return nil, ErrEmptySeed
	}
	for i, s := range o.seed {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	c := &Curve{
		seed:   o.seed,
		logger: o.logger,
	}
	c.Reset()
	return c, nil
}

// Advance refines the curve by one level. The number of segments quadruples.
func (c *Curve) Advance() {
	c.segs = Advance(c.segs)
	c.level++
	c.logger.Debug("advanced curve", "level", c.level, "segments", len(c.segs))
}

// AdvanceN calls [Curve.Advance] n times.
func (c *Curve) AdvanceN(n int) {
	for range n {
		c.Advance()
	}
}

// Reset discards all refinement and restores the seed.
func (c *Curve) Reset() {
	c.segs = slices.Clone(c.seed)
	c.level = 0
	c.logger.Debug("reset curve", "segments", len(c.segs))
}

// Level returns the number of refinements since the last reset.
func (c *Curve) Level() int { return c.level }

// Len returns the number of segments.
func (c *Curve) Len() int { return len(c.segs) }

// Segments returns a copy of the current segments.
func (c *Curve) Segments() []Segment {
	return slices.Clone(c.segs)
}

// All iterates over the current segments and their indices.
func (c *Curve) All() iter.Seq2[int, Segment] {
	return slices.All(c.segs)
}

// Points returns the curve as a polyline: the start of the first segment
// followed by the end of every segment. Colors are dropped. For curves whose
// segments do not chain, see [Curve.PathElements].
func (c *Curve) Points() []Point {
	if len(c.segs) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(c.segs)+1)
	pts = append(pts, c.segs[0].P0)
	for _, s := range c.segs {
		pts = append(pts, s.P1)
	}
	return pts
}

// PathElements returns the curve as path elements. A new subpath is started
// whenever a segment does not begin where the previous one ended, and a
// subpath that returns to its starting point is closed.
func (c *Curve) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var start, cur Point
		for i, s := range c.segs {
			if i == 0 || s.P0 != cur {
				if i != 0 && cur == start {
					if !yield(ClosePath()) {
						return
					}
				}
				if !yield(MoveTo(s.P0)) {
					return
				}
				start = s.P0
			}
			if !yield(LineTo(s.P1)) {
				return
			}
			cur = s.P1
		}
		if len(c.segs) > 0 && cur == start {
			yield(ClosePath())
		}
	}
}

// BoundingBox returns the smallest rectangle containing every segment. It
// returns the zero Rect for a curve without segments.
func (c *Curve) BoundingBox() Rect {
	if len(c.segs) == 0 {
		return Rect{}
	}
	r := c.segs[0].BoundingBox()
	for _, s := range c.segs[1:] {
		r = r.UnionPoint(s.P0).UnionPoint(s.P1)
	}
	return r
}

// Length returns the sum of the segment lengths. Each refinement multiplies
// it by 4/3.
func (c *Curve) Length() float64 {
	var l float64
	for _, s := range c.segs {
		l += s.Length()
	}
	return l
}
