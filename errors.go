package bezier

import "errors"

var (
	// ErrIndexOutOfRange is returned when a control point index is negative or
	// exceeds the curve's degree.
	ErrIndexOutOfRange = errors.New("control point index out of range")
	// ErrInvalidDegree is returned when constructing a curve with a negative
	// degree, or when requesting a pyramid level for a degree that the curve
	// doesn't have.
	ErrInvalidDegree = errors.New("invalid degree")
	// ErrNonFinite is returned when a coordinate would become NaN or infinite.
	ErrNonFinite = errors.New("non-finite coordinate")
	// ErrInvalidParameter is returned for parameters (t, flatness) that are
	// outside of their domain.
	ErrInvalidParameter = errors.New("invalid parameter")
)
