package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/koch"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func newCurve(t *testing.T, level int) *koch.Curve {
	t.Helper()
	c, err := koch.New()
	if err != nil {
		t.Fatal(err)
	}
	c.AdvanceN(level)
	return c
}
