package bezier

import (
	"errors"
	"math"
	"testing"
)

func TestSceneUpdateT(t *testing.T) {
	var got []Construction
	s, err := NewScene(DefaultParams(), func(c Construction) {
		got = append(got, c)
	})
	if err != nil {
		t.Fatal(err)
	}
	quad := mustCurve(t, Pt(0, 0), Pt(0, 10), Pt(10, 10))
	point := mustCurve(t, Pt(3, 4))
	s.Add(quad, point)

	if err := s.UpdateT(0.5); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d draw calls, want 2", len(got))
	}
	if got[0].Index != 0 || got[0].Curve != quad || got[1].Index != 1 || got[1].Curve != point {
		t.Errorf("curves were drawn out of order")
	}
	diff(t, [][]Point{
		{Pt(0, 0), Pt(0, 10), Pt(10, 10)},
		{Pt(0, 5), Pt(5, 10)},
		{Pt(2.5, 7.5)},
	}, got[0].Levels)
	diff(t, Pt(2.5, 7.5), got[0].Point)
	diff(t, Pt(3, 4), got[1].Point)
	if got[0].T != 0.5 {
		t.Errorf("got t = %g, want 0.5", got[0].T)
	}
	if p := got[0].Polyline; p[0] != quad.Start() || p[len(p)-1] != quad.End() {
		t.Errorf("polyline %v doesn't span the curve", p)
	}

	got = nil
	if err := s.UpdateT(1); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(10, 10), got[0].Point)
}

func TestSceneInvalidParams(t *testing.T) {
	if _, err := NewScene(Params{T: 0, Flatness: 0}, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}

	calls := 0
	s, err := NewScene(DefaultParams(), func(Construction) { calls++ })
	if err != nil {
		t.Fatal(err)
	}
	s.Add(mustCurve(t, Pt(0, 0), Pt(1, 1)))
	if err := s.UpdateT(math.NaN()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}
	if err := s.SetFlatness(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}
	if calls != 0 {
		t.Errorf("got %d draw calls after invalid updates, want 0", calls)
	}
	diff(t, DefaultParams(), s.Params())
}

func TestSceneSetFlatness(t *testing.T) {
	var polys [][]Point
	s, err := NewScene(DefaultParams(), func(c Construction) {
		polys = append(polys, c.Polyline)
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Add(mustCurve(t, Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)))
	if err := s.SetFlatness(10); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFlatness(0.01); err != nil {
		t.Fatal(err)
	}
	if len(polys) != 2 || len(polys[1]) <= len(polys[0]) {
		t.Errorf("finer flatness didn't produce a finer polyline")
	}
	if f := s.Params().Flatness; f != 0.01 {
		t.Errorf("got flatness %g, want 0.01", f)
	}
}

func TestSceneCurvesCopy(t *testing.T) {
	s, err := NewScene(DefaultParams(), nil)
	if err != nil {
		t.Fatal(err)
	}
	c := mustCurve(t, Pt(0, 0))
	s.Add(c)
	curves := s.Curves()
	curves[0] = nil
	if s.Curves()[0] != c {
		t.Error("modifying the returned slice modified the scene")
	}
	if err := s.Redraw(); err != nil {
		t.Errorf("redrawing without a draw function: %s", err)
	}
}
