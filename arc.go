package draft

import (
	"math"
)

// Arc is a circular arc. It runs counter-clockwise from StartAngle to
// EndAngle, or clockwise if Reversed is set. Angles are in radians.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Reversed   bool
}

// NewArc returns an arc. It reports false if the radius is not larger than
// tol.
func NewArc(center Point, radius, start, end float64, reversed bool, tol float64) (Arc, bool) {
	if math.Abs(radius) <= tol || !center.IsValid() {
		return Arc{}, false
	}
	return Arc{
		Center:     center,
		Radius:     math.Abs(radius),
		StartAngle: CorrectAngle(start),
		EndAngle:   CorrectAngle(end),
		Reversed:   reversed,
	}, true
}

// NewArcFrom3P returns the arc that starts at p0, passes through p1 and ends
// at p2. It reports false if the points are collinear.
func NewArcFrom3P(p0, p1, p2 Point, tol float64) (Arc, bool) {
	c, ok := NewCircleFrom3P(p0, p1, p2, tol)
	if !ok {
		return Arc{}, false
	}
	reversed := p1.Sub(p0).Cross(p2.Sub(p0)) < 0
	return NewArc(c.Center, c.Radius, c.Center.AngleTo(p0), c.Center.AngleTo(p2), reversed, tol)
}

func (Arc) Kind() Kind { return ArcKind }

func (a Arc) CenterPoint() Point { return a.Center }

// AngleLength returns the angle swept by the arc, in (0, 2π]. Arcs whose
// start and end angles coincide are full turns.
func (a Arc) AngleLength() float64 {
	var sweep float64
	if a.Reversed {
		sweep = AngleDifference(a.EndAngle, a.StartAngle)
	} else {
		sweep = AngleDifference(a.StartAngle, a.EndAngle)
	}
	if sweep < AngleTolerance {
		return 2 * math.Pi
	}
	return sweep
}

func (a Arc) Length() float64 {
	return a.Radius * a.AngleLength()
}

func (a Arc) StartPoint() Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle).Mul(a.Radius))
}

func (a Arc) EndPoint() Point {
	return a.Center.Translate(VecFromAngle(a.EndAngle).Mul(a.Radius))
}

// MiddlePoint returns the point halfway along the arc.
func (a Arc) MiddlePoint() Point {
	half := 0.5 * a.AngleLength()
	if a.Reversed {
		half = -half
	}
	return a.Center.Translate(VecFromAngle(a.StartAngle + half).Mul(a.Radius))
}

// IsAngleInRange reports whether the direction th, seen from the center, hits
// the arc.
func (a Arc) IsAngleInRange(th float64) bool {
	return IsAngleBetween(th, a.StartAngle, a.EndAngle, a.Reversed)
}

func (a Arc) BoundingBox() Rect {
	box := NewRectFromPoints(a.StartPoint(), a.EndPoint())
	for i := range 4 {
		th := float64(i) * 0.5 * math.Pi
		if a.IsAngleInRange(th) {
			box = box.UnionPoint(a.Center.Translate(VecFromAngle(th).Mul(a.Radius)))
		}
	}
	return box
}

// NearestPointOnEntity implements Entity.
func (a Arc) NearestPointOnEntity(pt Point, onEntity bool, tol float64) Point {
	vp := pt.Sub(a.Center)
	d := vp.Hypot()
	if d < tol {
		return Invalid
	}
	if onEntity && !a.IsAngleInRange(vp.Angle()) {
		ep, _ := a.NearestEndpoint(pt)
		return ep
	}
	return a.Center.Translate(vp.Mul(a.Radius / d))
}

// DistanceToPoint implements Entity.
func (a Arc) DistanceToPoint(pt Point, tol float64) float64 {
	np := a.NearestPointOnEntity(pt, true, tol)
	if !np.IsValid() {
		return a.Radius
	}
	return pt.Distance(np)
}

// NearestEndpoint implements Entity.
func (a Arc) NearestEndpoint(pt Point) (Point, float64) {
	p0 := a.StartPoint()
	p1 := a.EndPoint()
	d0 := p0.DistanceSquared(pt)
	d1 := p1.DistanceSquared(pt)
	if d1 < d0 {
		return p1, math.Sqrt(d1)
	}
	return p0, math.Sqrt(d0)
}

// TangentPoint implements Conic.
func (a Arc) TangentPoint(ext Point, tol float64) Solutions {
	return circleTangentPoints(a.Center, a.Radius, ext, tol)
}

// TangentDirection implements Conic. The direction follows the arc's sense of
// travel.
func (a Arc) TangentDirection(pt Point) Vec2 {
	d := pt.Sub(a.Center).Perp()
	if a.Reversed {
		return d.Negate()
	}
	return d
}

// NearestOrthTan implements Conic.
func (a Arc) NearestOrthTan(pt Point, normal Segment) Point {
	return circleOrthTan(a.Center, a.Radius, pt, normal)
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

func (a Arc) Rotate(center Point, th float64) Arc {
	a.Center = a.Center.RotateAbout(center, th)
	a.StartAngle = CorrectAngle(a.StartAngle + th)
	a.EndAngle = CorrectAngle(a.EndAngle + th)
	return a
}

// Scale scales the arc about center. The endpoints are scaled with it. Factors
// of unequal magnitude turn the arc into an elliptic arc, see [Circle.Scale].
// Singular factors leave the arc unchanged.
func (a Arc) Scale(center Point, factor Vec2, tol float64) Entity {
	if singularScale(factor, tol) {
		return a
	}
	start := a.StartPoint().ScaleAbout(center, factor)
	end := a.EndPoint().ScaleAbout(center, factor)
	reversed := a.Reversed != (factor.X*factor.Y < 0)
	cen := a.Center.ScaleAbout(center, factor)

	fx, fy := math.Abs(factor.X), math.Abs(factor.Y)
	if math.Abs(fx-fy) <= tol*max(fx, fy) {
		return Arc{
			Center:     cen,
			Radius:     a.Radius * fx,
			StartAngle: CorrectAngle(cen.AngleTo(start)),
			EndAngle:   CorrectAngle(cen.AngleTo(end)),
			Reversed:   reversed,
		}
	}
	e := ellipseFromMap(cen, Scale(factor.X*a.Radius, factor.Y*a.Radius))
	return e.withEndpoints(start, end, reversed)
}

// Mirror reflects the arc across the line through axis0 and axis1. The
// mirrored arc runs in the opposite sense.
func (a Arc) Mirror(axis0, axis1 Point) Arc {
	ref := Reflect(axis0, axis1)
	start := a.StartPoint().Transform(ref)
	end := a.EndPoint().Transform(ref)
	a.Center = a.Center.Transform(ref)
	a.StartAngle = CorrectAngle(a.Center.AngleTo(start))
	a.EndAngle = CorrectAngle(a.Center.AngleTo(end))
	a.Reversed = !a.Reversed
	return a
}
