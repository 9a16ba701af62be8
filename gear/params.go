package gear

import (
	"errors"
	"fmt"
	"math"

	"deedles.dev/xgear/geom"
)

// ErrInvalidParameter is matched by every error returned from
// parameter validation.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError describes a single parameter that failed validation.
type ParamError struct {
	Field      string
	Constraint string
	Value      any
}

func (err *ParamError) Error() string {
	return fmt.Sprintf("%v: %v = %v, must satisfy %v", ErrInvalidParameter, err.Field, err.Value, err.Constraint)
}

func (err *ParamError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// Params describes the teeth of a gear. Widths are arc lengths along
// the gear's middle circle in abstract linear units.
type Params struct {
	// Teeth is the number of teeth around the gear.
	Teeth int

	// ToothWidth is the arc length consumed by one full tooth cycle:
	// an inner land, a rising slope, an outer land, and a falling
	// slope.
	ToothWidth float64

	// SlopeWidth is the portion of ToothWidth consumed by each of the
	// two slopes of a tooth.
	SlopeWidth float64

	// HalfDepth is the radial distance from the middle circle out to
	// the tooth tips and in to the tooth roots. A zero HalfDepth
	// produces a flat ring.
	HalfDepth float64
}

// DefaultParams returns the parameters used when a caller does not
// override them.
func DefaultParams() Params {
	return Params{
		Teeth:      32,
		ToothWidth: 4,
		SlopeWidth: 1,
		HalfDepth:  1,
	}
}

// Validate returns a *ParamError naming the first field of p that
// can not produce a well-formed outline, or nil if there is none.
func (p Params) Validate() error {
	if p.Teeth < 1 {
		return &ParamError{Field: "Teeth", Constraint: ">= 1", Value: p.Teeth}
	}
	if p.Teeth > math.MaxInt/PointsPerTooth {
		return &ParamError{Field: "Teeth", Constraint: fmt.Sprintf("<= %v", math.MaxInt/PointsPerTooth), Value: p.Teeth}
	}
	if !finite(p.ToothWidth) || p.ToothWidth <= 0 {
		return &ParamError{Field: "ToothWidth", Constraint: "> 0", Value: p.ToothWidth}
	}
	if !finite(p.SlopeWidth) || p.SlopeWidth < 0 {
		return &ParamError{Field: "SlopeWidth", Constraint: ">= 0", Value: p.SlopeWidth}
	}
	if 2*p.SlopeWidth > p.ToothWidth {
		return &ParamError{Field: "SlopeWidth", Constraint: "2*SlopeWidth <= ToothWidth", Value: p.SlopeWidth}
	}
	if !finite(p.HalfDepth) {
		return &ParamError{Field: "HalfDepth", Constraint: "finite", Value: p.HalfDepth}
	}

	d := p.Dims()
	if !finite(d.Circumference) {
		return &ParamError{Field: "ToothWidth", Constraint: "ToothWidth*Teeth finite", Value: p.ToothWidth}
	}
	if !finite(d.OuterRadius) || !finite(d.InnerRadius) {
		return &ParamError{Field: "HalfDepth", Constraint: "radii finite", Value: p.HalfDepth}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Dims holds the values derived from a set of Params. Angles are in
// radians.
type Dims struct {
	Circumference float64
	MiddleRadius  float64
	OuterRadius   float64
	InnerRadius   float64

	// ToothAngle is the angular width of one full tooth cycle. It is
	// always Tau divided by the number of teeth, up to rounding.
	ToothAngle float64
	SlopeAngle float64
	LandAngle  float64

	// LandWidth is the arc length of each land along the middle
	// circle. It does not take part in outline generation.
	LandWidth float64
}

// Dims calculates the dimensions derived from p. The result is only
// meaningful if p is valid.
func (p Params) Dims() Dims {
	circumference := p.ToothWidth * float64(p.Teeth)
	middle := circumference / geom.Tau
	tooth := (p.ToothWidth / circumference) * geom.Tau
	slope := (p.SlopeWidth / p.ToothWidth) * tooth

	return Dims{
		Circumference: circumference,
		MiddleRadius:  middle,
		OuterRadius:   middle + p.HalfDepth,
		InnerRadius:   middle - p.HalfDepth,
		ToothAngle:    tooth,
		SlopeAngle:    slope,
		LandAngle:     (tooth - 2*slope) / 2,
		LandWidth:     (p.ToothWidth - 2*p.SlopeWidth) / 2,
	}
}
