package geom

import "math"

// Vec is an immutable 2D vector. Operations return new values; nothing
// mutates in place.
type Vec struct {
	X, Y float64
}

func (a Vec) Add(b Vec) Vec       { return Vec{a.X + b.X, a.Y + b.Y} }
func (a Vec) Sub(b Vec) Vec       { return Vec{a.X - b.X, a.Y - b.Y} }
func (a Vec) Scale(k float64) Vec { return Vec{k * a.X, k * a.Y} }
func (a Vec) Norm() float64       { return math.Hypot(a.X, a.Y) }

func (a Vec) IsValid() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}
