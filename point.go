package draft

import (
	"fmt"
	"math"
)

// Point is a position in the plane.
//
// A point whose coordinates are NaN is invalid. Invalid points signal that a
// query has no geometric answer; because NaN propagates through arithmetic,
// any computation involving an invalid point yields an invalid result.
type Point struct {
	X float64
	Y float64
}

// Invalid is the canonical invalid point.
var Invalid = Point{X: math.NaN(), Y: math.NaN()}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar returns the point at distance r from the origin, in direction th.
func Polar(r, th float64) Point {
	sin, cos := math.Sincos(th)
	return Point{X: r * cos, Y: r * sin}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	if !pt.IsValid() {
		return "(invalid)"
	}
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// IsValid reports whether neither coordinate is NaN.
func (pt Point) IsValid() bool {
	return !pt.IsNaN()
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return pt.Lerp(o, 0.5)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// AngleTo returns the angle of the direction from pt to o.
func (pt Point) AngleTo(o Point) float64 {
	return o.Sub(pt).Angle()
}

// RotateAbout rotates pt by th radians about center.
func (pt Point) RotateAbout(center Point, th float64) Point {
	return center.Translate(pt.Sub(center).Rotate(th))
}

// ScaleAbout scales pt about center, using independent factors for x and y.
func (pt Point) ScaleAbout(center Point, factor Vec2) Point {
	d := pt.Sub(center)
	return Point{
		X: center.X + d.X*factor.X,
		Y: center.Y + d.Y*factor.Y,
	}
}

// Mirror reflects pt across the line through axis0 and axis1.
//
// The result is invalid if the two axis points coincide.
func (pt Point) Mirror(axis0, axis1 Point) Point {
	if axis0 == axis1 {
		return Invalid
	}
	return pt.Transform(Reflect(axis0, axis1))
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
