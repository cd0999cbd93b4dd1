// Package koch generates Koch curves and snowflakes.
//
// A curve is an ordered sequence of colored line [Segment] values. One
// refinement step, [Subdivide], replaces a segment with four segments a third
// of its length: the outer thirds are kept and the middle third is replaced
// by the two other sides of an equilateral triangle. [Advance] applies the
// step to a whole sequence, and [Curve] tracks the current level of a seed
// shape and lets a host advance and reset it.
//
// # Coordinates and orientation
//
// Points use a y-down coordinate system, as raster images do. The apex of
// every triangle lies to the left of the direction of travel. For the segment
// from (0, 0) to (300, 0), the apex is at approximately (150, −86.6), above
// the segment on screen. The default [Seed] is a triangle traversed so that
// its exterior is on the left of every edge, so every bump grows outward and
// refinement produces the snowflake.
//
// # Growth
//
// Each refinement quadruples the number of segments: a seed of k segments
// has k·4ⁿ segments at level n. The package imposes no limit on n; hosts
// should.
//
// # Invalid input
//
// The construction is total over finite coordinates. NaN and infinite
// coordinates are not rejected by [Subdivide]; they propagate into its
// output. [New] validates its seed and renderers validate what they draw,
// returning errors that wrap [ErrInvalidGeometry].
//
// # Rendering
//
// Drawing is done by the render subpackage. This package only provides
// geometry and color, plus [Fit] and [Affine] to map a curve into a viewport.
package koch
