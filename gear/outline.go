// Package gear generates the outlines of gears with trapezoidal teeth.
//
// An outline is a closed polygon with four vertices per tooth, all of
// which lie on one of two concentric circles centered on the origin.
// The first vertex is not repeated at the end, so anything drawing
// the outline must close the path itself.
package gear

import (
	"iter"

	"deedles.dev/xgear/geom"
	"deedles.dev/xiter"
)

// PointsPerTooth is the number of outline vertices emitted for each
// tooth.
const PointsPerTooth = 4

// Outline validates p and returns the vertices of the gear outline
// that it describes in counterclockwise order. The returned slice
// always has exactly PointsPerTooth*p.Teeth elements. If p is invalid,
// the returned error matches ErrInvalidParameter and no points are
// returned.
func Outline(p Params) ([]geom.Point[float64], error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	points := make([]geom.Point[float64], PointsPerTooth*p.Teeth)
	for i, pt := range xiter.Enumerate(Points(p)) {
		points[i] = pt
	}
	return points, nil
}

// Points yields the vertices of the outline described by p, tooth by
// tooth. For each tooth it yields, in order, the end of the inner
// land, the end of the rising slope, the end of the outer land, and
// the end of the falling slope.
//
// Unlike Outline, Points does not validate p. Invalid parameters
// produce degenerate or self-intersecting outlines, or nothing at all
// if p.Teeth is not positive.
func Points(p Params) iter.Seq[geom.Point[float64]] {
	return func(yield func(geom.Point[float64]) bool) {
		d := p.Dims()
		for s := range geom.Sectors(p.Teeth, d.ToothAngle) {
			if !yield(geom.Polar(s.At(d.LandAngle), d.InnerRadius)) {
				return
			}
			if !yield(geom.Polar(s.At(d.LandAngle)+d.SlopeAngle, d.OuterRadius)) {
				return
			}
			if !yield(geom.Polar(s.At(2*d.LandAngle)+d.SlopeAngle, d.OuterRadius)) {
				return
			}
			if !yield(geom.Polar(s.At(2*d.LandAngle)+2*d.SlopeAngle, d.InnerRadius)) {
				return
			}
		}
	}
}
