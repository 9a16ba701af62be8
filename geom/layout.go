package geom

import "iter"

// Sector is an angular slice of a circle, starting at Start radians
// and extending counterclockwise by Sweep radians.
type Sector[T Float] struct {
	Start, Sweep T
}

// At returns the angle that lies offset radians into s.
func (s Sector[T]) At(offset T) T {
	return s.Start + offset
}

// Sectors yields numsectors successive sectors of the given sweep,
// the first of which starts at angle zero. If sweep is Tau divided by
// numsectors, the result is an even division of one full revolution.
// In other words,
//
//	for s := range geom.Sectors(4, geom.Tau/4) {
//		...
//	}
//
// will iterate over the four quadrants in counterclockwise order.
//
// The start of sector i is computed as i*sweep rather than by
// accumulation so that rounding error does not build up around the
// circle.
func Sectors[T Float](numsectors int, sweep T) iter.Seq[Sector[T]] {
	return func(yield func(Sector[T]) bool) {
		for i := range numsectors {
			s := Sector[T]{Start: T(i) * sweep, Sweep: sweep}
			if !yield(s) {
				return
			}
		}
	}
}
