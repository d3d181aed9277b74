package bezier

import (
	"fmt"
	"iter"
	"math"
)

// Lerp returns the affine combination (1−t)·p0 + t·p1.
//
// Unlike the p0 + t·(p1−p0) formulation, this is exact at both ends: for
// finite inputs, Lerp(p0, p1, 0) == p0 and Lerp(p0, p1, 1) == p1. t isn't
// clamped; values outside of [0, 1] extrapolate along the line.
func Lerp(p0, p1 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*p0.X + t*p1.X,
		Y: mt*p0.Y + t*p1.Y,
	}
}

// Reduce performs a single pass of De Casteljau's algorithm, returning
// len(pts)−1 points, where point i is the interpolation between pts[i] and
// pts[i+1] at t. Inputs with fewer than two points are returned as a copy.
//
// pts is not modified.
func Reduce(pts []Point, t float64) []Point {
	if len(pts) < 2 {
		return append([]Point(nil), pts...)
	}
	out := make([]Point, len(pts)-1)
	reduceInto(out, pts, t)
	return out
}

// reduceInto writes one reduction pass of src into dst, which must have
// len(src)-1 elements. dst and src may share their backing array as long as
// dst starts at the same element as src.
func reduceInto(dst, src []Point, t float64) {
	mt := 1 - t
	for i := range dst {
		a, b := src[i], src[i+1]
		dst[i] = Point{
			X: mt*a.X + t*b.X,
			Y: mt*a.Y + t*b.Y,
		}
	}
}

// Level returns level k of the De Casteljau pyramid of pts at t, that is, the
// len(pts)−k points that remain after k reduction passes. Level 0 is a copy of
// pts.
//
// Level panics if k is negative or not less than len(pts).
func Level(pts []Point, k int, t float64) []Point {
	if k < 0 || k >= len(pts) {
		panic(fmt.Sprintf("level %d out of range for %d points", k, len(pts)))
	}
	out := append([]Point(nil), pts...)
	// Each pass shrinks the live prefix of out by one point, so it can be
	// reduced in place.
	for n := len(out); n > len(pts)-k; n-- {
		reduceInto(out[:n-1], out[:n], t)
	}
	return out[:len(pts)-k]
}

// Pyramid returns all levels of the De Casteljau pyramid of pts at t. The
// result has len(pts) levels; level k has len(pts)−k points and the last
// level holds the single point on the curve.
//
// The levels don't share memory with pts or with each other.
func Pyramid(pts []Point, t float64) [][]Point {
	out := make([][]Point, 0, len(pts))
	for _, level := range Levels(pts, t) {
		out = append(out, level)
	}
	return out
}

// Levels returns an iterator over the levels of the De Casteljau pyramid of
// pts at t, starting with level 0. Each yielded slice is freshly allocated and
// may be retained by the caller.
//
// Levels computes each level only when it is requested, so stopping early
// avoids the remaining work.
func Levels(pts []Point, t float64) iter.Seq2[int, []Point] {
	return func(yield func(int, []Point) bool) {
		if len(pts) == 0 {
			return
		}
		level := append([]Point(nil), pts...)
		for k := 0; ; k++ {
			if !yield(k, level) {
				return
			}
			if len(level) == 1 {
				return
			}
			next := make([]Point, len(level)-1)
			reduceInto(next, level, t)
			level = next
		}
	}
}

// Eval evaluates the Bézier curve with control points pts at t, using De
// Casteljau's algorithm. A single control point is returned as is,
// regardless of t.
//
// Eval panics if pts is empty.
func Eval(pts []Point, t float64) Point {
	switch len(pts) {
	case 0:
		panic("Eval called with no control points")
	case 1:
		return pts[0]
	}
	scratch := append([]Point(nil), pts...)
	for n := len(scratch); n > 1; n-- {
		reduceInto(scratch[:n-1], scratch[:n], t)
	}
	return scratch[0]
}

// EvalBernstein evaluates the Bézier curve with control points pts at t using
// its explicit Bernstein polynomial form,
//
//	B(t) = Σ C(n, i) (1−t)^(n−i) t^i Pᵢ
//
// This is less numerically robust than [Eval] for high degrees, but it is
// independent of the De Casteljau recursion, which makes it useful for
// cross-checking.
//
// EvalBernstein panics if pts is empty.
func EvalBernstein(pts []Point, t float64) Point {
	if len(pts) == 0 {
		panic("EvalBernstein called with no control points")
	}
	n := len(pts) - 1
	mt := 1 - t
	var x, y float64
	binom := 1.0
	for i, p := range pts {
		b := binom * math.Pow(mt, float64(n-i)) * math.Pow(t, float64(i))
		x += b * p.X
		y += b * p.Y
		// C(n, i+1) = C(n, i) · (n−i) / (i+1)
		binom = binom * float64(n-i) / float64(i+1)
	}
	return Point{X: x, Y: y}
}

// subdivide splits the curve with control points pts at t into two curves of
// the same degree. The left curve consists of the first point of every pyramid
// level, the right curve of the last point of every level, in reverse.
func subdivide(pts []Point, t float64) (left, right []Point) {
	n := len(pts)
	left = make([]Point, n)
	right = make([]Point, n)
	for k, level := range Levels(pts, t) {
		left[k] = level[0]
		right[n-1-k] = level[len(level)-1]
	}
	return left, right
}
