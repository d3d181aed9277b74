package bezier

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// DefaultFlatness is the flatness used by [DefaultParams]. It matches the
// default of common 2D drawing APIs and is suitable for drawing in device
// pixels.
const DefaultFlatness = 0.6

// Params holds the values that drive the display of a curve's construction.
type Params struct {
	// T is the curve parameter at which the construction is shown. It is
	// conventionally in [0, 1] but any finite value is allowed.
	T float64 `yaml:"t"`
	// Flatness is the maximum distance between a curve and the polyline
	// approximating it. See [Curve.Flatten].
	Flatness float64 `yaml:"flatness"`
}

// DefaultParams returns the parameters at the middle of the curve with
// [DefaultFlatness].
func DefaultParams() Params {
	return Params{
		T:        0.5,
		Flatness: DefaultFlatness,
	}
}

// Validate reports whether T is finite and Flatness is finite and positive.
func (p Params) Validate() error {
	if math.IsNaN(p.T) || math.IsInf(p.T, 0) {
		return fmt.Errorf("t = %g: %w", p.T, ErrInvalidParameter)
	}
	if err := validateFlatness(p.Flatness); err != nil {
		return err
	}
	return nil
}

// WithT returns a copy of p with T replaced.
func (p Params) WithT(t float64) Params {
	p.T = t
	return p
}

// WithFlatness returns a copy of p with Flatness replaced.
func (p Params) WithFlatness(f float64) Params {
	p.Flatness = f
	return p
}

func validateFlatness(f float64) error {
	if !(f > 0) || math.IsInf(f, 0) {
		return fmt.Errorf("flatness = %g: %w", f, ErrInvalidParameter)
	}
	return nil
}

// LoadParams decodes YAML-encoded parameters from r. Fields missing from the
// document keep the values of [DefaultParams]. An empty document yields the
// defaults.
//
//	t: 0.25
//	flatness: 0.1
func LoadParams(r io.Reader) (Params, error) {
	p := DefaultParams()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("decoding parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
