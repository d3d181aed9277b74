package bezier

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// randomCurves returns n curves of degrees 0 through maxDegree, cycling,
// randomized inside bounds with a fixed seed.
func randomCurves(t *testing.T, n, maxDegree int, bounds Rect) []*Curve {
	t.Helper()
	rng := rand.New(rand.NewPCG(1, 2))
	out := make([]*Curve, n)
	for i := range out {
		c, err := New(i % (maxDegree + 1))
		if err != nil {
			t.Fatal(err)
		}
		if err := c.Randomize(bounds, rng); err != nil {
			t.Fatal(err)
		}
		out[i] = c
	}
	return out
}

func mustCurve(t *testing.T, pts ...Point) *Curve {
	t.Helper()
	c, err := NewFromPoints(pts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
