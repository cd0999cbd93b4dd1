package koch

import (
	"math"
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 0), Pt(0, 5))
	diff(t, Rect{0, 0, 10, 5}, r)
	if r.Width() != 10 || r.Height() != 5 {
		t.Errorf("got size %gx%g, want 10x5", r.Width(), r.Height())
	}
	diff(t, Pt(5, 2.5), r.Center())
	diff(t, Pt(0, 0), r.Origin())
}

func TestRectUnion(t *testing.T) {
	r := NewRectFromPoints(Pt(0, 0), Pt(1, 1))
	diff(t, Rect{-2, 0, 1, 3}, r.UnionPoint(Pt(-2, 3)))
	diff(t, Rect{0, -1, 4, 1}, r.Union(Rect{2, -1, 4, 0}))

	// A zero-area start still grows to include every point.
	p := Rect{X0: 5, Y0: 5, X1: 5, Y1: 5}
	if !p.IsEmpty() {
		t.Error("point rectangle is not empty")
	}
	p = p.UnionPoint(Pt(7, 6))
	diff(t, Rect{5, 5, 7, 6}, p)
}

func TestRectInflate(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	diff(t, Rect{-1, -2, 11, 12}, r.Inflate(1, 2))
	diff(t, Rect{1, 1, 9, 9}, r.Inflate(-1, -1))
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if !r.Contains(Pt(0, 0)) || !r.Contains(Pt(9.9, 5)) {
		t.Error("rectangle does not contain inner points")
	}
	if r.Contains(Pt(10, 5)) || r.Contains(Pt(-1, 5)) {
		t.Error("rectangle contains outer points")
	}
	if !(Rect{0, math.NaN(), 1, 1}).IsNaN() {
		t.Error("NaN rectangle not detected")
	}
}
