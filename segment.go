package draft

import "math"

// Segment represents a line segment. Zero-length segments are legal, but
// several queries treat them specially.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

func (Segment) Kind() Kind { return SegmentKind }

// Length returns the length of the segment.
func (l Segment) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Angle returns the direction of the segment, from P0 towards P1.
func (l Segment) Angle() float64 {
	return l.P0.AngleTo(l.P1)
}

func (l Segment) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Segment) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// NearestEndpoint implements Entity.
func (l Segment) NearestEndpoint(pt Point) (Point, float64) {
	d0 := l.P0.DistanceSquared(pt)
	d1 := l.P1.DistanceSquared(pt)
	if d1 < d0 {
		return l.P1, math.Sqrt(d1)
	}
	return l.P0, math.Sqrt(d0)
}

// NearestPointOnEntity implements Entity. It returns [Invalid] for segments
// shorter than tol, which have no direction to project onto.
func (l Segment) NearestPointOnEntity(pt Point, onEntity bool, tol float64) Point {
	d := l.P1.Sub(l.P0)
	a := d.Hypot2()
	if a < tol*tol {
		return Invalid
	}
	t := pt.Sub(l.P0).Dot(d) / a
	if onEntity && (t < 0 || t > 1) {
		ep, _ := l.NearestEndpoint(pt)
		return ep
	}
	return l.P0.Translate(d.Mul(t))
}

// DistanceToPoint implements Entity. Degenerate segments measure the
// distance to their midpoint.
func (l Segment) DistanceToPoint(pt Point, tol float64) float64 {
	np := l.NearestPointOnEntity(pt, true, tol)
	if !np.IsValid() {
		return pt.Distance(l.Midpoint())
	}
	return pt.Distance(np)
}

// DistanceToLine returns the distance from pt to the infinite line through
// the segment.
func (l Segment) DistanceToLine(pt Point, tol float64) float64 {
	np := l.NearestPointOnEntity(pt, false, tol)
	if !np.IsValid() {
		return pt.Distance(l.Midpoint())
	}
	return pt.Distance(np)
}

// NearestMiddle returns the one of middlePoints equidistant interior points
// of the segment that is closest to pt, and its distance. Degenerate
// segments return their midpoint.
func (l Segment) NearestMiddle(pt Point, middlePoints int, tol float64) (Point, float64) {
	d := l.P1.Sub(l.P0)
	length := d.Hypot()
	if length <= tol || middlePoints < 1 {
		mp := l.Midpoint()
		return mp, mp.Distance(pt)
	}
	np := l.NearestPointOnEntity(pt, true, tol)
	counts := middlePoints + 1
	i := int(np.Distance(l.P0)/length*float64(counts) + 0.5)
	// Endpoints are not middle points.
	i = min(max(i, 1), counts-1)
	mp := l.P0.Translate(d.Mul(float64(i) / float64(counts)))
	return mp, mp.Distance(pt)
}

// NearestDist returns the point at distance dist along the segment, measured
// from whichever endpoint is closer to pt.
func (l Segment) NearestDist(dist float64, pt Point) Point {
	dv := Vec2(Polar(dist, l.Angle()))
	if pt.DistanceSquared(l.P0) < pt.DistanceSquared(l.P1) {
		return l.P0.Translate(dv)
	}
	return l.P1.Translate(dv.Negate())
}

// IntersectLines computes the point where the infinite lines through l and o
// cross. It reports false for parallel lines and for degenerate segments.
func IntersectLines(l, o Segment, tol float64) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if math.Abs(pcd) <= tol*ab.Hypot()*cd.Hypot() || pcd == 0 {
		return Invalid, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Segment) Translate(v Vec2) Segment {
	return Segment{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Segment) Rotate(center Point, th float64) Segment {
	return Segment{
		P0: l.P0.RotateAbout(center, th),
		P1: l.P1.RotateAbout(center, th),
	}
}

func (l Segment) Scale(center Point, factor Vec2) Segment {
	return Segment{
		P0: l.P0.ScaleAbout(center, factor),
		P1: l.P1.ScaleAbout(center, factor),
	}
}

func (l Segment) Mirror(axis0, axis1 Point) Segment {
	return l.Transform(Reflect(axis0, axis1))
}

func (l Segment) Transform(aff Affine) Segment {
	return Segment{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}
