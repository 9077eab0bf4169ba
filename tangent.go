package draft

import (
	"math"
)

// Tangent1 returns the line from point to the tangent point on c that is
// closest to coord. If point lies on c, the line instead runs from point
// along the tangent direction there. It reports false if no line through
// point is tangent to c.
func Tangent1(coord, point Point, c Conic, tol float64) (Segment, bool) {
	if !coord.IsValid() || !point.IsValid() {
		return Segment{}, false
	}
	tp, _, _ := c.TangentPoint(point, tol).Closest(coord)
	if !tp.IsValid() {
		return Segment{}, false
	}
	if tp.DistanceSquared(point) > tol*tol {
		return Segment{point, tp}, true
	}
	dir := c.TangentDirection(point)
	if dir.Hypot2() <= tol*tol {
		return Segment{}, false
	}
	return Segment{point, point.Translate(dir)}, true
}

// Tangent2 returns the common tangent of c1 and c2 that passes closest to
// coord. The segment runs between the two tangent points. It reports false if
// the conics have no common tangent.
func Tangent2(coord Point, c1, c2 Conic, tol float64) (Segment, bool) {
	if !coord.IsValid() {
		return Segment{}, false
	}
	var (
		best     Segment
		bestDist = math.Inf(1)
		found    bool
	)
	for _, l := range CommonTangents(c1, c2, tol) {
		np := l.NearestPointOnEntity(coord, false, tol)
		if !np.IsValid() {
			continue
		}
		if d := np.Distance(coord); d < bestDist {
			best, bestDist, found = l, d, true
		}
	}
	return best, found
}

// CommonTangents returns all lines tangent to both c1 and c2, as segments
// from the tangent point on c1 to the tangent point on c2. Arcs count as their
// full circles and elliptic arcs as their full ellipses.
func CommonTangents(c1, c2 Conic, tol float64) []Segment {
	e1, ok1 := c1.(Ellipse)
	e2, ok2 := c2.(Ellipse)
	if !ok1 && !ok2 {
		center1, r1 := circleParams(c1)
		center2, r2 := circleParams(c2)
		return circleCommonTangents(center1, r1, center2, r2, tol)
	}
	if !ok1 {
		e1 = circleAsEllipse(c1)
	}
	if !ok2 {
		e2 = circleAsEllipse(c2)
	}
	return ellipseCommonTangents(e1, e2, tol)
}

func circleParams(c Conic) (Point, float64) {
	switch c := c.(type) {
	case Circle:
		return c.Center, c.Radius
	case Arc:
		return c.Center, c.Radius
	default:
		panic("unreachable")
	}
}

func circleAsEllipse(c Conic) Ellipse {
	center, r := circleParams(c)
	return Ellipse{
		Center: center,
		MajorP: Vec2{r, 0},
		Ratio:  1,
	}
}

// circleCommonTangents returns the outer and inner common tangents of two
// circles. Outer tangents touch both circles at the same normal direction;
// inner tangents touch them at opposite ones.
func circleCommonTangents(c1 Point, r1 float64, c2 Point, r2 float64, tol float64) []Segment {
	dist := c1.Distance(c2)
	if dist <= tol*max(1, r1, r2) {
		// Concentric circles have no common tangents.
		return nil
	}
	angle1 := c1.AngleTo(c2)
	var out []Segment
	if dist > math.Abs(r2-r1) {
		off := math.Asin((r2-r1)/dist) + 0.5*math.Pi
		for _, th := range [2]float64{angle1 + off, angle1 - off} {
			out = append(out, Segment{
				P0: c1.Translate(Vec2(Polar(r1, th))),
				P1: c2.Translate(Vec2(Polar(r2, th))),
			})
		}
	}
	if dist > r1+r2 {
		off := math.Asin((r1+r2)/dist) + 0.5*math.Pi
		for _, th := range [2]float64{angle1 + off, angle1 - off} {
			out = append(out, Segment{
				P0: c1.Translate(Vec2(Polar(-r1, th))),
				P1: c2.Translate(Vec2(Polar(r2, th))),
			})
		}
	}
	return out
}

// ellipseCommonTangents finds the common tangents of two ellipses.
//
// The plane is transformed so that e1 becomes the unit circle and e2 the
// ellipse c + L w, |w| = 1. The tangent of the unit circle with the unit
// normal n is the line n·X = 1, and it touches the second ellipse iff
//
//	g(φ) = (1 − n·c)² − nᵀ S n = 0,  n = (cos φ, sin φ),  S = L Lᵀ.
//
// With t = tan((φ − φ0)/2), g times (1 + t²)² is a quartic in t. The normal
// at t = ∞ is φ0 + π, which is placed where |g| is largest, so that no
// tangent is lost at infinity. The roots are polished with Newton's method
// on g, and candidates that do not converge are dropped.
func ellipseCommonTangents(e1, e2 Ellipse, tol float64) []Segment {
	if e1.MinorRadius() <= tol || e2.MinorRadius() <= tol {
		return nil
	}
	frame := e1.frame()
	norm := frame.Invert()
	lin := norm.Mul(e2.frame())
	c := Vec2(e2.Center.Transform(norm))
	sxx := lin.N0*lin.N0 + lin.N2*lin.N2
	sxy := lin.N0*lin.N1 + lin.N2*lin.N3
	syy := lin.N1*lin.N1 + lin.N3*lin.N3
	mulS := func(v Vec2) Vec2 {
		return Vec2{sxx*v.X + sxy*v.Y, sxy*v.X + syy*v.Y}
	}

	// g returns g(φ), its derivative, and the sum of the magnitudes of both
	// terms, which is the scale of g near φ.
	g := func(phi float64) (v, dv, scale float64) {
		n := VecFromAngle(phi)
		sn := mulS(n)
		w := 1 - n.Dot(c)
		q := n.Dot(sn)
		m := n.Perp()
		return w*w - q, -2 * (w*m.Dot(c) + m.Dot(sn)), w*w + q
	}

	var far, best float64
	for i := range 16 {
		phi := float64(i) * math.Pi / 8
		if v, _, scale := g(phi); math.Abs(v)/scale > best {
			far, best = phi, math.Abs(v)/scale
		}
	}
	if best <= tol {
		// g vanishes everywhere, so the ellipses coincide.
		return nil
	}

	phi0 := far - math.Pi
	sin, cos := math.Sincos(phi0)
	cx := cos*c.X + sin*c.Y
	cy := -sin*c.X + cos*c.Y
	rxx := cos*cos*sxx + 2*cos*sin*sxy + sin*sin*syy
	rxy := (cos*cos-sin*sin)*sxy + cos*sin*(syy-sxx)
	ryy := sin*sin*sxx - 2*cos*sin*sxy + cos*cos*syy
	// 1 − n·c times (1 + t²) is f0 + f1 t + f2 t².
	f0, f1, f2 := 1-cx, -2*cy, 1+cx
	ts, nt := SolveQuartic(
		f0*f0-rxx,
		2*f0*f1-4*rxy,
		f1*f1+2*f0*f2+2*rxx-4*ryy,
		2*f1*f2+4*rxy,
		f2*f2-rxx,
		tol,
	)

	// The normals are points on the unit circle, so this is an absolute
	// tolerance. Double roots are only accurate to about the square root of
	// the working precision.
	dedup := math.Sqrt(tol)

	var normals Solutions
	for _, t := range ts[:nt] {
		phi := phi0 + 2*math.Atan(t)
		v, dv, scale := g(phi)
		for range 8 {
			if v == 0 || dv == 0 {
				break
			}
			next := phi - v/dv
			nv, ndv, nscale := g(next)
			if math.Abs(nv) >= math.Abs(v) {
				break
			}
			phi, v, dv, scale = next, nv, ndv, nscale
		}
		if math.Abs(v) > dedup*scale {
			continue
		}
		normals = normals.AppendUnique(Point(VecFromAngle(phi)), dedup)
	}

	out := make([]Segment, 0, len(normals))
	for _, n := range normals {
		nv := Vec2(n)
		// The point of the second ellipse where the line n·X = 1 touches it.
		sn := mulS(nv)
		sup := sn.Div(math.Sqrt(nv.Dot(sn)))
		if 1-nv.Dot(c) < 0 {
			sup = sup.Negate()
		}
		out = append(out, Segment{
			P0: n.Transform(frame),
			P1: Point(c.Add(sup)).Transform(frame),
		})
	}
	return out
}

// Bisector returns n rays of the given length that divide the angle between
// l1 and l2. The rays start at the intersection of the two lines. The angle
// that is divided is the one between the projections of coord1 onto l1 and
// of coord2 onto l2, measured the short way around. It returns nil if the
// lines are parallel.
func Bisector(coord1, coord2 Point, length float64, n int, l1, l2 Segment, tol float64) []Segment {
	if n < 1 || !coord1.IsValid() || !coord2.IsValid() {
		return nil
	}
	inters, ok := IntersectLines(l1, l2, tol)
	if !ok {
		return nil
	}
	p1 := l1.NearestPointOnEntity(coord1, false, tol)
	p2 := l2.NearestPointOnEntity(coord2, false, tol)
	angle1 := inters.AngleTo(p1)
	angle2 := inters.AngleTo(p2)
	step := SignedAngleDifference(angle1, angle2) / float64(n+1)

	out := make([]Segment, 0, n)
	for k := 1; k <= n; k++ {
		th := angle1 + step*float64(k)
		out = append(out, Segment{
			P0: inters,
			P1: inters.Translate(Vec2(Polar(length, th))),
		})
	}
	return out
}

// LineOrthTan returns a line that is tangent to c and orthogonal to normal.
// Of the two candidate tangent points, the one on the side of coord is used.
// The line runs from the projection of the tangent point onto normal to the
// tangent point. It reports false if normal has no direction.
func LineOrthTan(coord Point, normal Segment, c Conic, tol float64) (Segment, bool) {
	if !coord.IsValid() {
		return Segment{}, false
	}
	dir := normal.P1.Sub(normal.P0)
	a := dir.Hypot2()
	if a < tol*tol {
		return Segment{}, false
	}
	t0 := c.NearestOrthTan(coord, normal)
	if !t0.IsValid() {
		return Segment{}, false
	}
	vp := normal.P0.Translate(dir.Mul(dir.Dot(t0.Sub(normal.P0)) / a))
	if vp.DistanceSquared(t0) <= tol*tol {
		// The tangent point lies on normal; step away from it.
		vp = vp.Translate(dir.Perp())
	}
	return Segment{vp, t0}, true
}
