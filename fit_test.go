package koch

import (
	"testing"
)

func TestFit(t *testing.T) {
	const epsilon = 1e-9
	tests := []struct {
		name     string
		src, dst Rect
		in, out  []Point
	}{
		{
			name: "wide source",
			src:  Rect{0, 0, 200, 100},
			dst:  Rect{0, 0, 100, 100},
			in:   []Point{Pt(0, 0), Pt(200, 100), Pt(100, 50)},
			out:  []Point{Pt(0, 25), Pt(100, 75), Pt(50, 50)},
		},
		{
			name: "tall source",
			src:  Rect{10, 10, 20, 30},
			dst:  Rect{0, 0, 100, 100},
			in:   []Point{Pt(10, 10), Pt(20, 30)},
			out:  []Point{Pt(25, 0), Pt(75, 100)},
		},
		{
			name: "horizontal line",
			src:  Rect{0, 5, 10, 5},
			dst:  Rect{0, 0, 100, 50},
			in:   []Point{Pt(0, 5), Pt(10, 5)},
			out:  []Point{Pt(0, 25), Pt(100, 25)},
		},
		{
			name: "single point",
			src:  Rect{3, 3, 3, 3},
			dst:  Rect{0, 0, 10, 20},
			in:   []Point{Pt(3, 3), Pt(4, 3)},
			out:  []Point{Pt(5, 10), Pt(6, 10)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aff := Fit(tt.src, tt.dst)
			for i, p := range tt.in {
				assertNear(t, p.Transform(aff), tt.out[i], epsilon)
			}
		})
	}
}

func TestFitKeepsSnowflakeInside(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	c.AdvanceN(3)
	dst := Rect{20, 20, 580, 380}
	aff := Fit(c.BoundingBox(), dst)
	for _, s := range c.Segments() {
		for _, p := range []Point{s.P0.Transform(aff), s.P1.Transform(aff)} {
			if p.X < dst.X0-1e-9 || p.X > dst.X1+1e-9 || p.Y < dst.Y0-1e-9 || p.Y > dst.Y1+1e-9 {
				t.Fatalf("%s lies outside %v", p, dst)
			}
		}
	}
}
