package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustNew(t testing.TB, dim, grade, vertices int) *Curve {
	t.Helper()
	c, err := New(dim, grade, vertices)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustAppend(t testing.TB, c *Curve, coords ...float64) int {
	t.Helper()
	n, err := c.AppendPoint(coords...)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

var equateErrors = cmpopts.EquateErrors()
