package draft

import (
	"math"
)

// Ellipse is a full ellipse or an elliptic arc.
//
// The ellipse is parameterized as
//
//	Center + MajorP·cos(t) + MajorP.Perp()·Ratio·sin(t)
//
// and StartAngle and EndAngle are values of t, not polar angles around the
// center. Use [Ellipse.EllipseAngle] to convert a point to its parameter. A
// full ellipse has StartAngle == EndAngle, conventionally both 0.
type Ellipse struct {
	Center Point
	// The endpoint of the major axis, relative to Center. Its length is the
	// major radius.
	MajorP Vec2
	// Minor radius divided by major radius, in (0, 1].
	Ratio      float64
	StartAngle float64
	EndAngle   float64
	// Reversed arcs run clockwise from StartAngle to EndAngle.
	Reversed bool
}

// NewEllipse returns an ellipse, normalizing it so that Ratio ≤ 1. A ratio
// larger than one swaps the roles of the axes. It reports false if either
// radius is not larger than tol.
func NewEllipse(center Point, majorP Vec2, ratio, start, end float64, reversed bool, tol float64) (Ellipse, bool) {
	ratio = math.Abs(ratio)
	major := majorP.Hypot()
	if major <= tol || major*ratio <= tol || !center.IsValid() {
		return Ellipse{}, false
	}
	e := Ellipse{
		Center:     center,
		MajorP:     majorP,
		Ratio:      ratio,
		StartAngle: start,
		EndAngle:   end,
		Reversed:   reversed,
	}
	if ratio > 1 {
		full := e.IsFull()
		e.MajorP = majorP.Perp().Mul(ratio)
		e.Ratio = 1 / ratio
		if full {
			e.StartAngle, e.EndAngle = 0, 0
		} else {
			e.StartAngle = CorrectAngle(start - 0.5*math.Pi)
			e.EndAngle = CorrectAngle(end - 0.5*math.Pi)
		}
	}
	return e, true
}

// NewEllipseFromQuadratic returns the full ellipse a x² + b xy + c y² = 1, in
// coordinates relative to center. It reports false if the quadratic form does
// not describe an ellipse.
func NewEllipseFromQuadratic(center Point, a, b, c float64, tol float64) (Ellipse, bool) {
	mean := 0.5 * (a + c)
	dev := math.Hypot(0.5*(a-c), 0.5*b)
	// Eigenvalues of the form's matrix. The smaller one belongs to the major
	// axis.
	lmin := mean - dev
	lmax := mean + dev
	if lmin <= tol*max(1, lmax) {
		return Ellipse{}, false
	}
	th := 0.5*math.Atan2(b, a-c) + 0.5*math.Pi
	major := 1 / math.Sqrt(lmin)
	minor := 1 / math.Sqrt(lmax)
	return NewEllipse(center, Vec2(Polar(major, th)), minor/major, 0, 0, false, tol)
}

// NewEllipseFromCenter3P returns the full ellipse with the given center that
// passes through three points. It reports false if no such ellipse exists.
func NewEllipseFromCenter3P(center Point, pts [3]Point, tol float64) (Ellipse, bool) {
	// Each point gives one row of a x² + b xy + c y² = 1.
	var m [3][3]float64
	for i, pt := range pts {
		v := pt.Sub(center)
		m[i] = [3]float64{v.X * v.X, v.X * v.Y, v.Y * v.Y}
	}
	det := det3(m)
	scale := 0.0
	for _, row := range m {
		for _, x := range row {
			scale = max(scale, math.Abs(x))
		}
	}
	if math.Abs(det) <= tol*scale*scale*scale || det == 0 {
		return Ellipse{}, false
	}
	var sol [3]float64
	for col := range 3 {
		mc := m
		for row := range 3 {
			mc[row][col] = 1
		}
		sol[col] = det3(mc) / det
	}
	return NewEllipseFromQuadratic(center, sol[0], sol[1], sol[2], tol)
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// singularScale reports whether scaling by factor maps the plane onto a line
// or a point.
func singularScale(factor Vec2, tol float64) bool {
	fx, fy := math.Abs(factor.X), math.Abs(factor.Y)
	return min(fx, fy) <= tol*max(fx, fy)
}

// ellipseFromMap returns the full ellipse that is the image of the unit
// circle under the linear map lin, centered on center. lin must not be
// singular.
func ellipseFromMap(center Point, lin Affine) Ellipse {
	radii, th := lin.svd()
	return Ellipse{
		Center: center,
		MajorP: Vec2(Polar(radii.X, th)),
		Ratio:  radii.Y / radii.X,
	}
}

func (Ellipse) Kind() Kind { return EllipseKind }

func (e Ellipse) CenterPoint() Point { return e.Center }

// IsFull reports whether e is a full ellipse rather than an arc.
func (e Ellipse) IsFull() bool {
	d := AngleDifference(e.StartAngle, e.EndAngle)
	return d < AngleTolerance || d > 2*math.Pi-AngleTolerance
}

func (e Ellipse) MajorRadius() float64 {
	return e.MajorP.Hypot()
}

func (e Ellipse) MinorRadius() float64 {
	return e.MajorP.Hypot() * e.Ratio
}

// Angle returns the direction of the major axis.
func (e Ellipse) Angle() float64 {
	return e.MajorP.Angle()
}

// Foci returns the two focal points of the ellipse.
func (e Ellipse) Foci() (Point, Point) {
	a := e.MajorRadius()
	b := e.MinorRadius()
	f := e.MajorP.Normalize().Mul(math.Sqrt(max(0, a*a-b*b)))
	return e.Center.Translate(f), e.Center.Translate(f.Negate())
}

// AngleLength returns the parametric sweep of the arc, in (0, 2π]. Full
// ellipses have a sweep of 2π.
func (e Ellipse) AngleLength() float64 {
	if e.IsFull() {
		return 2 * math.Pi
	}
	if e.Reversed {
		return AngleDifference(e.EndAngle, e.StartAngle)
	}
	return AngleDifference(e.StartAngle, e.EndAngle)
}

// IsAngleInRange reports whether the parameter t lies on the arc.
func (e Ellipse) IsAngleInRange(t float64) bool {
	if e.IsFull() {
		return true
	}
	return IsAngleBetween(t, e.StartAngle, e.EndAngle, e.Reversed)
}

// PointAt returns the point with parameter t.
func (e Ellipse) PointAt(t float64) Point {
	sin, cos := math.Sincos(t)
	return e.Center.
		Translate(e.MajorP.Mul(cos)).
		Translate(e.MajorP.Perp().Mul(e.Ratio * sin))
}

// EllipseAngle returns the parameter of pt, which is assumed to lie on the
// ellipse. Points off the ellipse map to the parameter of the ray from the
// center after the ellipse has been stretched to a circle.
func (e Ellipse) EllipseAngle(pt Point) float64 {
	v := pt.Sub(e.Center).Rotate(-e.Angle())
	return CorrectAngle(math.Atan2(v.Y/e.Ratio, v.X))
}

func (e Ellipse) StartPoint() Point { return e.PointAt(e.StartAngle) }

func (e Ellipse) EndPoint() Point { return e.PointAt(e.EndAngle) }

// frame maps the unit circle onto the ellipse.
func (e Ellipse) frame() Affine {
	return Translate(Vec2(e.Center)).
		Mul(Rotate(e.Angle())).
		Mul(Scale(e.MajorRadius(), e.MinorRadius()))
}

// BoundingBox implements Entity.
func (e Ellipse) BoundingBox() Rect {
	a := e.MajorRadius()
	b := e.MinorRadius()
	sin, cos := math.Sincos(e.Angle())
	if e.IsFull() {
		// See https://www.iquilezles.org/www/articles/ellipses/ellipses.htm.
		rangeX := math.Hypot(a*cos, b*sin)
		rangeY := math.Hypot(a*sin, b*cos)
		return Rect{
			X0: e.Center.X - rangeX,
			Y0: e.Center.Y - rangeY,
			X1: e.Center.X + rangeX,
			Y1: e.Center.Y + rangeY,
		}
	}
	box := NewRectFromPoints(e.StartPoint(), e.EndPoint())
	// Parameters of the horizontal and vertical extremes of the full ellipse.
	tx := math.Atan2(-b*sin, a*cos)
	ty := math.Atan2(b*cos, a*sin)
	for _, t := range [4]float64{tx, tx + math.Pi, ty, ty + math.Pi} {
		if e.IsAngleInRange(CorrectAngle(t)) {
			box = box.UnionPoint(e.PointAt(t))
		}
	}
	return box
}

// NearestPointOnEntity implements Entity.
//
// In the ellipse's own frame, with the point at (px, py), the parameter of a
// nearest point satisfies s·(a px − k c) = b py c, where c = cos t, s = sin t
// and k = a² − b². Squaring and substituting s² = 1 − c² gives a quartic in
// c. Both signs of s are tried for every root.
func (e Ellipse) NearestPointOnEntity(pt Point, onEntity bool, tol float64) Point {
	a := e.MajorRadius()
	b := e.MinorRadius()
	v := pt.Sub(e.Center).Rotate(-e.Angle())
	k := a*a - b*b
	m := a * v.X
	n := b * v.Y
	roots, nroots := SolveQuartic(m*m, -2*m*k, k*k-m*m-n*n, 2*m*k, -k*k, tol)

	restricted := onEntity && !e.IsFull()
	best := Invalid
	bestDist := math.Inf(1)
	try := func(t float64) {
		if restricted && !e.IsAngleInRange(CorrectAngle(t)) {
			return
		}
		cand := e.PointAt(t)
		if d := cand.DistanceSquared(pt); d < bestDist {
			best, bestDist = cand, d
		}
	}
	for _, c := range roots[:nroots] {
		if math.Abs(c) > 1+1e-6 {
			continue
		}
		c = min(max(c, -1), 1)
		s := math.Sqrt(1 - c*c)
		try(math.Atan2(s, c))
		try(math.Atan2(-s, c))
	}
	if restricted {
		try(e.StartAngle)
		try(e.EndAngle)
	}
	return best
}

// DistanceToPoint implements Entity.
func (e Ellipse) DistanceToPoint(pt Point, tol float64) float64 {
	np := e.NearestPointOnEntity(pt, true, tol)
	if !np.IsValid() {
		// Only the center of a circular ellipse has no nearest point.
		return e.MinorRadius()
	}
	return pt.Distance(np)
}

// NearestEndpoint implements Entity. Full ellipses have no endpoints.
func (e Ellipse) NearestEndpoint(pt Point) (Point, float64) {
	if e.IsFull() {
		return Invalid, MaxDistance
	}
	p0 := e.StartPoint()
	p1 := e.EndPoint()
	d0 := p0.DistanceSquared(pt)
	d1 := p1.DistanceSquared(pt)
	if d1 < d0 {
		return p1, math.Sqrt(d1)
	}
	return p0, math.Sqrt(d0)
}

// TangentPoint implements Conic. The problem is mapped onto the unit circle,
// where tangency is preserved.
func (e Ellipse) TangentPoint(ext Point, tol float64) Solutions {
	if e.MinorRadius() <= tol {
		return nil
	}
	aff := e.frame()
	inv := aff.Invert()
	sols := circleTangentPoints(Point{}, 1, ext.Transform(inv), tol)
	for i, pt := range sols {
		sols[i] = pt.Transform(aff)
	}
	return sols
}

// TangentDirection implements Conic.
func (e Ellipse) TangentDirection(pt Point) Vec2 {
	sin, cos := math.Sincos(e.EllipseAngle(pt))
	return e.MajorP.Mul(-sin).Add(e.MajorP.Perp().Mul(e.Ratio * cos))
}

// NearestOrthTan implements Conic. It returns the point of the ellipse that
// lies farthest in the direction of normal, or in the opposite direction,
// whichever is on the side of pt.
func (e Ellipse) NearestOrthTan(pt Point, normal Segment) Point {
	if !pt.IsValid() {
		return Invalid
	}
	dir := VecFromAngle(normal.Angle())
	if pt.Sub(e.Center).Dot(dir) < 0 {
		dir = dir.Negate()
	}
	a := e.MajorRadius()
	b := e.MinorRadius()
	local := dir.Rotate(-e.Angle())
	sup := Vec2{a * a * local.X, b * b * local.Y}
	sup = sup.Div(math.Hypot(a*local.X, b*local.Y))
	return e.Center.Translate(sup.Rotate(e.Angle()))
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	e.Center = e.Center.Translate(v)
	return e
}

func (e Ellipse) Rotate(center Point, th float64) Ellipse {
	e.Center = e.Center.RotateAbout(center, th)
	e.MajorP = e.MajorP.Rotate(th)
	return e
}

// Scale scales the ellipse about center. Arcs keep their endpoints, so their
// parameters are recomputed, and a scale that flips orientation reverses
// the arc. Singular factors leave the ellipse unchanged, see
// [Circle.Scale].
func (e Ellipse) Scale(center Point, factor Vec2, tol float64) Ellipse {
	if singularScale(factor, tol) {
		return e
	}
	lin := Scale(factor.X, factor.Y).Mul(e.frame())
	out := ellipseFromMap(e.Center.ScaleAbout(center, factor), lin)
	if e.IsFull() {
		return out
	}
	return out.withEndpoints(
		e.StartPoint().ScaleAbout(center, factor),
		e.EndPoint().ScaleAbout(center, factor),
		e.Reversed != (factor.X*factor.Y < 0),
	)
}

func (e Ellipse) withEndpoints(start, end Point, reversed bool) Ellipse {
	e.StartAngle = e.EllipseAngle(start)
	e.EndAngle = e.EllipseAngle(end)
	e.Reversed = reversed
	return e
}

// Mirror reflects the ellipse across the line through axis0 and axis1.
// Reflection reverses the direction of the parameterization.
func (e Ellipse) Mirror(axis0, axis1 Point) Ellipse {
	ref := Reflect(axis0, axis1)
	tip := e.Center.Translate(e.MajorP).Transform(ref)
	e.Center = e.Center.Transform(ref)
	e.MajorP = tip.Sub(e.Center)
	if !e.IsFull() {
		e.StartAngle = CorrectAngle(-e.StartAngle)
		e.EndAngle = CorrectAngle(-e.EndAngle)
	}
	e.Reversed = !e.Reversed
	return e
}
