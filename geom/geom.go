// Package geom provides utilities for working with polar and planar
// geometry.
//
// It is patterned after image.Point, but is generic over its
// coordinate type and adds the polar conversions needed to lay shapes
// out around a circle.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	Float | constraints.Integer
}

// Float is a constraint for the types that angular functions can
// handle.
type Float interface {
	constraints.Float
}

// Tau is the number of radians in one full revolution.
const Tau = 2 * math.Pi
