package render

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"honnef.co/go/koch"
)

func TestBrailleLines(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		segs       []koch.Segment
		want       string
	}{
		{
			name: "horizontal",
			cols: 2, rows: 1,
			segs: []koch.Segment{koch.Line(koch.Pt(0, 0), koch.Pt(3, 0))},
			want: "⠉⠉",
		},
		{
			name: "vertical",
			cols: 1, rows: 2,
			segs: []koch.Segment{koch.Line(koch.Pt(0, 0), koch.Pt(0, 7))},
			want: "⡇\n⡇",
		},
		{
			name: "diagonal",
			cols: 2, rows: 1,
			segs: []koch.Segment{koch.Line(koch.Pt(0, 0), koch.Pt(3, 3))},
			want: "⠑⢄",
		},
		{
			name: "clipped",
			cols: 1, rows: 1,
			segs: []koch.Segment{koch.Line(koch.Pt(-5, 0), koch.Pt(5, 0))},
			want: "⠉",
		},
		{
			name: "empty",
			cols: 3, rows: 1,
			want: "   ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBraille(tt.cols, tt.rows)
			if err := b.DrawSegments(tt.segs); err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, b.String())
		})
	}
}

func TestBrailleColorize(t *testing.T) {
	b := NewBraille(2, 1)
	red := koch.RGB(255, 0, 0)
	if err := b.DrawPolyline([]koch.Point{koch.Pt(0, 0), koch.Pt(1, 0)}, red); err != nil {
		t.Fatal(err)
	}
	var seen []koch.Color
	got := b.Colorize(func(cell string, c koch.Color) string {
		seen = append(seen, c)
		return "[" + cell + "]"
	})
	diff(t, "[⠉] ", got)
	diff(t, []koch.Color{red}, seen)
}

func TestBrailleRender(t *testing.T) {
	b := NewBraille(40, 20)
	if err := b.Render(newCurve(t, 3)); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d rows, want 20", len(lines))
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != 40 {
			t.Errorf("row %d has %d cells, want 40", i, n)
		}
	}
	if strings.TrimSpace(strings.ReplaceAll(out, "\n", "")) == "" {
		t.Error("nothing was drawn")
	}

	b.Clear()
	if strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", "")) != "" {
		t.Error("Clear left dots behind")
	}
}

func TestBrailleRejectsNonFinite(t *testing.T) {
	b := NewBraille(2, 2)
	err := b.DrawSegments([]koch.Segment{koch.Line(koch.Pt(math.NaN(), 0), koch.Pt(1, 1))})
	if !errors.Is(err, koch.ErrInvalidGeometry) {
		t.Errorf("got %v, want ErrInvalidGeometry", err)
	}
}
