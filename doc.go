// Package bezier implements Bézier curves of arbitrary degree and De
// Casteljau's algorithm for evaluating them, including access to every
// intermediate step of the algorithm for visualizing or animating it.
//
// # Curves
//
// A [Curve] has a degree that is fixed when it is created and n+1 control
// points that may be changed freely, either one at a time with
// [Curve.SetControlPoint] or all at once with [Curve.Randomize]. Accessors
// always return copies, so a slice obtained from [Curve.ControlPoints] is a
// snapshot that later mutations don't affect.
//
// Randomization takes its random numbers from a caller-provided [Rand], such
// as a *rand.Rand from math/rand/v2 seeded with a fixed value, which makes
// results reproducible.
//
// # De Casteljau's algorithm
//
// De Casteljau's algorithm evaluates a curve at a parameter t by repeatedly
// replacing the sequence of control points P₀…Pₙ with the n points obtained
// by linearly interpolating each pair of neighbours,
//
//	Pᵢ' = (1−t)·Pᵢ + t·Pᵢ₊₁
//
// until a single point, the curve's value at t, remains. The sequences form a
// triangle that we call the pyramid: level 0 holds the control points and
// level n holds the point on the curve. [Reduce] performs one step, [Level]
// computes one level, and [Pyramid] and [Levels] compute all of them.
// [Curve.ControlPointsForDegree] exposes the same levels indexed by the degree
// of the curve they describe.
//
// t is conventionally in [0, 1], but it is never clamped. Values outside of
// that range extrapolate the curve.
//
// # Flattening
//
// [Curve.Flatten] approximates a curve with a polyline within a given
// tolerance, which is the flatness of [Params]. A [Scene] combines a set of
// curves with parameters and redraws them through a callback whenever the
// parameters change.
//
// # Errors
//
// Methods that can fail return errors wrapping one of [ErrIndexOutOfRange],
// [ErrInvalidDegree], [ErrNonFinite] or [ErrInvalidParameter], and they leave
// their receiver unchanged when they do. The free functions operating on
// point slices panic when given input they are documented not to accept.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bezier
