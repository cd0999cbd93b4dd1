package koch

import "math"

// Fit returns the transform that scales src uniformly to the largest size
// that fits into dst and centers it there. Aspect ratio is preserved.
//
// If src has zero width or height, the other dimension decides the scale.
// If both are zero, the transform only moves src's center onto dst's center.
func Fit(src, dst Rect) Affine {
	src, dst = src.Abs(), dst.Abs()
	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	var s float64
	switch {
	case src.Width() == 0 && src.Height() == 0:
		s = 1
	case src.Width() == 0:
		s = sy
	case src.Height() == 0:
		s = sx
	default:
		s = math.Min(sx, sy)
	}
	c := src.Center()
	return Translate(Vec2(c).Negate()).
		ThenScale(s, s).
		ThenTranslate(Vec2(dst.Center()))
}
