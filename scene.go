package bezier

import "fmt"

// Construction is the state of a curve's De Casteljau construction at one
// parameter, as handed to a [DrawFunc].
type Construction struct {
	// Index is the curve's position in the scene.
	Index int
	Curve *Curve
	T     float64
	// Levels are the levels of the pyramid at T, starting with the control
	// points.
	Levels [][]Point
	// Point is the point on the curve at T, which is also the only point of
	// the last level.
	Point Point
	// Polyline is the curve flattened with the scene's flatness.
	Polyline []Point
}

// DrawFunc draws a single curve's construction.
type DrawFunc func(Construction)

// Scene is an ordered collection of curves that are drawn together at a
// shared parameter.
//
// Scene calls its DrawFunc synchronously, once per curve, whenever the
// parameters change. It is meant to be driven by a single goroutine, such as
// a UI event loop, and isn't safe for concurrent use.
type Scene struct {
	curves []*Curve
	params Params
	draw   DrawFunc
}

// NewScene returns an empty scene. draw may be nil, in which case redrawing
// only validates parameters.
func NewScene(params Params, draw DrawFunc) (*Scene, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Scene{params: params, draw: draw}, nil
}

// Add appends curves to the scene. Adding does not redraw.
func (s *Scene) Add(curves ...*Curve) {
	s.curves = append(s.curves, curves...)
}

// Curves returns the scene's curves in drawing order. The slice is a copy; the
// curves are not.
func (s *Scene) Curves() []*Curve {
	return append([]*Curve(nil), s.curves...)
}

// Params returns the scene's current parameters.
func (s *Scene) Params() Params {
	return s.params
}

// UpdateT sets the parameter and redraws all curves. An invalid t leaves the
// scene unchanged.
func (s *Scene) UpdateT(t float64) error {
	return s.update(s.params.WithT(t))
}

// SetFlatness sets the flatness used for polylines and redraws all curves.
// An invalid flatness leaves the scene unchanged.
func (s *Scene) SetFlatness(f float64) error {
	return s.update(s.params.WithFlatness(f))
}

// Redraw draws all curves with the current parameters.
func (s *Scene) Redraw() error {
	Logger().Debug("redrawing scene", "curves", len(s.curves), "t", s.params.T)
	if s.draw == nil {
		return nil
	}
	for i, c := range s.curves {
		cons, err := construct(c, s.params)
		if err != nil {
			return fmt.Errorf("curve %d: %w", i, err)
		}
		cons.Index = i
		s.draw(cons)
	}
	return nil
}

func (s *Scene) update(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.params = p
	return s.Redraw()
}

func construct(c *Curve, p Params) (Construction, error) {
	levels := c.Pyramid(p.T)
	poly, err := c.Flatten(p.Flatness)
	if err != nil {
		return Construction{}, err
	}
	return Construction{
		Curve:    c,
		T:        p.T,
		Levels:   levels,
		Point:    levels[len(levels)-1][0],
		Polyline: poly,
	}, nil
}
