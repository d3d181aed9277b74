package bezier

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Curve is a Bézier curve of fixed degree with mutable control points.
//
// A curve of degree n has n+1 control points. The first and last control
// points are the curve's endpoints; the ones in between shape the curve
// without it passing through them.
//
// The zero value is not usable; construct curves with [New] or
// [NewFromPoints]. Curves aren't safe for concurrent use when one of the
// goroutines is mutating the curve.
type Curve struct {
	// points has exactly degree+1 elements and is never resized.
	points []Point
}

// Rand is a source of uniformly distributed numbers in the half-open interval
// [0, 1). *rand.Rand from math/rand/v2 implements it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// New returns a curve of the given degree with all control points at the
// origin. A degree of 0 describes a single point.
func New(degree int) (*Curve, error) {
	if degree < 0 {
		return nil, fmt.Errorf("degree %d: %w", degree, ErrInvalidDegree)
	}
	return &Curve{points: make([]Point, degree+1)}, nil
}

// NewFromPoints returns a curve of degree len(pts)−1 with the given control
// points. pts is copied.
func NewFromPoints(pts ...Point) (*Curve, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("no control points: %w", ErrInvalidDegree)
	}
	for i, p := range pts {
		if !p.IsFinite() {
			return nil, fmt.Errorf("control point %d is %s: %w", i, p, ErrNonFinite)
		}
	}
	return &Curve{points: append([]Point(nil), pts...)}, nil
}

// Degree returns the curve's degree, which is one less than the number of
// control points.
func (c *Curve) Degree() int {
	return len(c.points) - 1
}

func (c *Curve) checkIndex(i int) error {
	if i < 0 || i > c.Degree() {
		return fmt.Errorf("index %d for curve of degree %d: %w", i, c.Degree(), ErrIndexOutOfRange)
	}
	return nil
}

// SetControlPoint replaces the control point at index i. The curve is left
// unchanged if an error is returned.
func (c *Curve) SetControlPoint(i int, p Point) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	if !p.IsFinite() {
		return fmt.Errorf("control point %d set to %s: %w", i, p, ErrNonFinite)
	}
	c.points[i] = p
	return nil
}

// ControlPoint returns the control point at index i.
func (c *Curve) ControlPoint(i int) (Point, error) {
	if err := c.checkIndex(i); err != nil {
		return Point{}, err
	}
	return c.points[i], nil
}

// ControlPoints returns a copy of all control points, in index order. Later
// changes to the curve don't affect the returned slice, and vice versa.
func (c *Curve) ControlPoints() []Point {
	return append([]Point(nil), c.points...)
}

// Start returns the curve's first control point, which is also the curve's
// value at t = 0.
func (c *Curve) Start() Point {
	return c.points[0]
}

// End returns the curve's last control point, which is also the curve's value
// at t = 1.
func (c *Curve) End() Point {
	return c.points[len(c.points)-1]
}

// Randomize replaces every control point with a point sampled uniformly from
// bounds, drawing numbers from rng. If rng is nil, the top-level generator of
// math/rand/v2 is used.
//
// Non-finite bounds return an error and leave the curve unchanged.
func (c *Curve) Randomize(bounds Rect, rng Rand) error {
	if bounds.IsInf() || bounds.IsNaN() {
		return fmt.Errorf("bounds %s: %w", bounds, ErrNonFinite)
	}
	if rng == nil {
		rng = globalRand{}
	}
	x0, x1 := bounds.MinX(), bounds.MaxX()
	y0, y1 := bounds.MinY(), bounds.MaxY()
	sample := func(lo, hi float64) float64 {
		// lo + u·(hi−lo) can overflow when hi−lo does. The clamp absorbs
		// rounding.
		u := rng.Float64()
		return min(max((1-u)*lo+u*hi, lo), hi)
	}
	pts := make([]Point, len(c.points))
	for i := range pts {
		pts[i] = Point{X: sample(x0, x1), Y: sample(y0, y1)}
	}
	copy(c.points, pts)
	Logger().Debug("randomized control points", "degree", c.Degree(), "bounds", bounds.String())
	return nil
}

// ControlPointsForDegree returns the points of the De Casteljau construction
// of the curve at t that form a curve of the requested degree. That is level
// Degree()−degree of the pyramid computed by [Pyramid].
//
// Requesting the curve's own degree returns the same points as
// [Curve.ControlPoints], ignoring t. Requesting degree 0 returns the single
// point on the curve at t. Sweeping degree from Degree() down to 0 at a fixed t
// reveals the construction one level at a time.
func (c *Curve) ControlPointsForDegree(degree int, t float64) ([]Point, error) {
	if degree < 0 || degree > c.Degree() {
		return nil, fmt.Errorf("requested degree %d for curve of degree %d: %w", degree, c.Degree(), ErrInvalidDegree)
	}
	if degree == c.Degree() {
		return c.ControlPoints(), nil
	}
	return Level(c.points, c.Degree()-degree, t), nil
}

// Eval returns the point on the curve at t. For t outside of [0, 1] the curve
// is extrapolated.
func (c *Curve) Eval(t float64) Point {
	return Eval(c.points, t)
}

// Pyramid returns every level of the curve's De Casteljau construction at t.
// See [Pyramid].
func (c *Curve) Pyramid(t float64) [][]Point {
	return Pyramid(c.points, t)
}

// ControlBox returns the smallest rectangle enclosing all control points. By
// the convex hull property, it also encloses the curve for t ∈ [0, 1].
func (c *Curve) ControlBox() Rect {
	r := NewRectFromPoints(c.points[0], c.points[0])
	for _, p := range c.points[1:] {
		r = r.UnionPoint(p)
	}
	return r
}

func (c *Curve) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Curve(degree %d:", c.Degree())
	for _, p := range c.points {
		sb.WriteByte(' ')
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
