package bezier

// MaxFlattenDepth is the maximum number of times [Curve.Flatten] halves a
// piece of the curve. A curve is thus never flattened to more than
// 2^MaxFlattenDepth lines.
const MaxFlattenDepth = 16

// Flatten approximates the curve with a polyline whose distance from the
// curve is at most tolerance. The returned points start with [Curve.Start]
// and end with [Curve.End].
//
// The curve is recursively subdivided at its midpoint using De Casteljau's
// algorithm until every piece is flat, meaning that all of its control points
// lie within tolerance of the line between its endpoints. By the convex hull
// property, so does the piece itself. Pieces that are still not flat at
// [MaxFlattenDepth] are accepted as they are and a warning is logged.
//
// Curves of degree 0 and 1 are returned as their control points. tolerance
// must be positive and finite.
func (c *Curve) Flatten(tolerance float64) ([]Point, error) {
	if err := validateFlatness(tolerance); err != nil {
		return nil, err
	}
	if c.Degree() <= 1 {
		return c.ControlPoints(), nil
	}

	out := []Point{c.Start()}
	var capped int
	var flatten func(pts []Point, depth int)
	flatten = func(pts []Point, depth int) {
		if !isFlat(pts, tolerance) {
			if depth < MaxFlattenDepth {
				left, right := subdivide(pts, 0.5)
				flatten(left, depth+1)
				flatten(right, depth+1)
				return
			}
			capped++
		}
		out = append(out, pts[len(pts)-1])
	}
	flatten(c.points, 0)

	if capped > 0 {
		Logger().Warn("flattening reached maximum depth",
			"degree", c.Degree(),
			"tolerance", tolerance,
			"pieces", capped)
	}
	return out, nil
}

// isFlat reports whether all interior control points lie within tolerance of
// the segment between the first and the last control point.
func isFlat(pts []Point, tolerance float64) bool {
	a, b := pts[0], pts[len(pts)-1]
	tol2 := tolerance * tolerance
	for _, p := range pts[1 : len(pts)-1] {
		if segmentDistanceSquared(p, a, b) > tol2 {
			return false
		}
	}
	return true
}

// segmentDistanceSquared returns the squared distance between p and the
// closest point on the segment from a to b.
func segmentDistanceSquared(p, a, b Point) float64 {
	d := b.Sub(a)
	dotp := d.Dot(p.Sub(a))
	dSquared := d.Hypot2()
	switch {
	case dotp <= 0:
		return p.DistanceSquared(a)
	case dotp >= dSquared:
		return p.DistanceSquared(b)
	default:
		return p.DistanceSquared(a.Translate(d.Mul(dotp / dSquared)))
	}
}
