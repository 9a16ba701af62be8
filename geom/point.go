package geom

import "math"

// Point is an X, Y coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Polar returns the point at the given angle, in radians
// counterclockwise from the positive X axis, and distance from the
// origin.
func Polar[T Float](angle, radius T) Point[T] {
	a := float64(angle)
	r := float64(radius)
	return Point[T]{
		X: T(math.Cos(a) * r),
		Y: T(math.Sin(a) * r),
	}
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both coordinates of p by k.
func (p Point[T]) Mul(k T) Point[T] {
	return Point[T]{X: p.X * k, Y: p.Y * k}
}

// Len returns the distance of p from the origin.
func (p Point[T]) Len() float64 {
	x, y := float64(p.X), float64(p.Y)
	return math.Hypot(x, y)
}

// Angle returns the angle of p in radians, normalized to [0, Tau).
func (p Point[T]) Angle() float64 {
	a := math.Atan2(float64(p.Y), float64(p.X))
	if a < 0 {
		a += Tau
	}
	return a
}

// Near reports whether p and q are within tol of each other along
// both axes.
func (p Point[T]) Near(q Point[T], tol float64) bool {
	return math.Abs(float64(p.X)-float64(q.X)) <= tol &&
		math.Abs(float64(p.Y)-float64(q.Y)) <= tol
}
