package draft

import (
	"math"
)

// Circle is a full circle. Radius is a non-negative magnitude.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns the circle with the given center and radius. It reports
// false if the radius is not larger than tol or the center is invalid.
func NewCircle(center Point, radius float64, tol float64) (Circle, bool) {
	if math.Abs(radius) <= tol || !center.IsValid() {
		return Circle{}, false
	}
	return Circle{Center: center, Radius: math.Abs(radius)}, true
}

// NewCircleFrom2P returns the circle that has p0 and p1 as opposite points.
func NewCircleFrom2P(p0, p1 Point, tol float64) (Circle, bool) {
	return NewCircle(p0.Midpoint(p1), 0.5*p0.Distance(p1), tol)
}

// NewCircleFrom3P returns the circle through three points. It reports false if
// the points are collinear.
func NewCircleFrom3P(p0, p1, p2 Point, tol float64) (Circle, bool) {
	va := p1.Sub(p0)
	vb := p2.Sub(p0)
	ra2 := 0.5 * va.Hypot2()
	rb2 := 0.5 * vb.Hypot2()
	cross := va.Cross(vb)
	if math.Abs(cross) < tol*tol {
		return Circle{}, false
	}
	c := Vec2{
		X: (ra2*vb.Y - rb2*va.Y) / cross,
		Y: (rb2*va.X - ra2*vb.X) / cross,
	}
	return NewCircle(p0.Translate(c), c.Hypot(), tol)
}

// NewCircleInscribed returns a circle tangent to the three lines through the
// given segments. Of the four such circles, the one in the region of coord is
// chosen, which is the incircle if coord is inside the triangle.
func NewCircleInscribed(coord Point, lines [3]Segment, tol float64) (Circle, bool) {
	tri := lines
	vp0, ok := IntersectLines(tri[0], tri[1], tol)
	if !ok {
		// The first two sides are parallel; pair the first with the third.
		tri[1], tri[2] = tri[2], tri[1]
		vp0, ok = IntersectLines(tri[0], tri[1], tol)
		if !ok {
			return Circle{}, false
		}
	}
	vp1, ok := IntersectLines(tri[2], tri[1], tol)
	if !ok {
		return Circle{}, false
	}
	dvp := vp1.Sub(vp0)
	a := dvp.Hypot2()
	if a < tol*tol {
		// All three lines share one point.
		return Circle{}, false
	}
	vp := coord.Sub(vp0)
	vp = vp.Sub(dvp.Mul(dvp.Dot(vp) / a))
	base := dvp.Angle()

	vl := tri[0].P1.Sub(tri[0].P0)
	th := 0.5 * (vl.Angle() + base)
	if vp.Dot(vl) < 0 {
		th += 0.5 * math.Pi
	}
	bisector0 := Segment{vp0, vp0.Translate(VecFromAngle(th))}

	vl = tri[2].P1.Sub(tri[2].P0)
	th = 0.5 * (vl.Angle() + base + math.Pi)
	if vp.Dot(vl) < 0 {
		th += 0.5 * math.Pi
	}
	bisector1 := Segment{vp1, vp1.Translate(VecFromAngle(th))}

	center, ok := IntersectLines(bisector0, bisector1, tol)
	if !ok {
		return Circle{}, false
	}
	return NewCircle(center, tri[1].DistanceToLine(center, tol), tol)
}

func (Circle) Kind() Kind { return CircleKind }

func (c Circle) CenterPoint() Point { return c.Center }

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) BoundingBox() Rect {
	return NewRectFromCenter(c.Center, c.Radius)
}

// DistanceToPoint implements Entity. The distance to the center counts as well,
// so that points near the center of a circle are close to it.
func (c Circle) DistanceToPoint(pt Point, tol float64) float64 {
	toCenter := c.Center.Distance(pt)
	return min(math.Abs(toCenter-c.Radius), toCenter)
}

// NearestPointOnEntity implements Entity. Every point of a circle is equally
// near to its center, so the center itself has no projection.
func (c Circle) NearestPointOnEntity(pt Point, onEntity bool, tol float64) Point {
	vp := pt.Sub(c.Center)
	d := vp.Hypot()
	if d < tol {
		return Invalid
	}
	return c.Center.Translate(vp.Mul(c.Radius / d))
}

// NearestEndpoint implements Entity. Circles have no endpoints.
func (c Circle) NearestEndpoint(pt Point) (Point, float64) {
	return Invalid, MaxDistance
}

// TangentPoint implements Conic.
func (c Circle) TangentPoint(ext Point, tol float64) Solutions {
	return circleTangentPoints(c.Center, c.Radius, ext, tol)
}

func circleTangentPoints(center Point, r float64, ext Point, tol float64) Solutions {
	r2 := r * r
	if r2 < tol*tol {
		return nil
	}
	vp := ext.Sub(center)
	c2 := vp.Hypot2()
	if c2 < r2-2*r*tol {
		// Inside the circle.
		return nil
	}
	if c2 > r2+2*r*tol {
		// The tangent points are symmetric about the line from the center to
		// ext. Their foot on that line is at r²/c from the center, and they
		// are r·sqrt(c²−r²)/c away from it.
		off := vp.Perp().Mul(r * math.Sqrt(c2-r2) / c2)
		foot := center.Translate(vp.Mul(r2 / c2))
		if off.Hypot2() > tol*tol {
			return Solutions{foot.Translate(off), foot.Translate(off.Negate())}
		}
	}
	return Solutions{ext}
}

// TangentDirection implements Conic.
func (c Circle) TangentDirection(pt Point) Vec2 {
	return pt.Sub(c.Center).Perp()
}

// NearestOrthTan implements Conic.
func (c Circle) NearestOrthTan(pt Point, normal Segment) Point {
	return circleOrthTan(c.Center, c.Radius, pt, normal)
}

func circleOrthTan(center Point, r float64, pt Point, normal Segment) Point {
	if !pt.IsValid() {
		return Invalid
	}
	dir := VecFromAngle(normal.Angle())
	if pt.Sub(center).Dot(dir) >= 0 {
		return center.Translate(dir.Mul(r))
	}
	return center.Translate(dir.Mul(-r))
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Rotate(center Point, th float64) Circle {
	c.Center = c.Center.RotateAbout(center, th)
	return c
}

// Scale scales the circle about center. Uniform factors (equal in magnitude
// within tol) produce a circle; otherwise the result is an [Ellipse].
//
// A factor with a component that is zero relative to the other would
// collapse the circle onto a line, and leaves it unchanged.
func (c Circle) Scale(center Point, factor Vec2, tol float64) Entity {
	if singularScale(factor, tol) {
		return c
	}
	fx, fy := math.Abs(factor.X), math.Abs(factor.Y)
	if math.Abs(fx-fy) <= tol*max(fx, fy) {
		return Circle{
			Center: c.Center.ScaleAbout(center, factor),
			Radius: c.Radius * fx,
		}
	}
	return ellipseFromMap(
		c.Center.ScaleAbout(center, factor),
		Scale(factor.X*c.Radius, factor.Y*c.Radius),
	)
}

func (c Circle) Mirror(axis0, axis1 Point) Circle {
	c.Center = c.Center.Mirror(axis0, axis1)
	return c
}
