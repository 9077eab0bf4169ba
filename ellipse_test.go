package draft

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestEllipseBasics(t *testing.T) {
	const epsilon = 1e-12
	e := Ellipse{Center: Pt(1, 1), MajorP: Vec(2, 0), Ratio: 0.5}

	if !e.IsFull() {
		t.Error("expected a full ellipse")
	}
	assertClose(t, e.MajorRadius(), 2, epsilon)
	assertClose(t, e.MinorRadius(), 1, epsilon)
	assertNear(t, e.PointAt(0), Pt(3, 1), epsilon)
	assertNear(t, e.PointAt(math.Pi/2), Pt(1, 2), epsilon)
	assertClose(t, e.EllipseAngle(Pt(1, 2)), math.Pi/2, epsilon)
	assertClose(t, e.EllipseAngle(e.PointAt(4)), 4, epsilon)

	f0, f1 := e.Foci()
	assertNear(t, f0, Pt(1+math.Sqrt(3), 1), epsilon)
	assertNear(t, f1, Pt(1-math.Sqrt(3), 1), epsilon)

	diff(t, Rect{-1, 0, 3, 2}, e.BoundingBox(), approx)

	p, d := e.NearestEndpoint(Pt(0, 0))
	if p.IsValid() || d != MaxDistance {
		t.Errorf("got (%s, %v), expected no endpoint", p, d)
	}
}

func TestNewEllipse(t *testing.T) {
	e, ok := NewEllipse(Pt(0, 0), Vec(1, 0), 2, 0, math.Pi/2, false, tol)
	if !ok {
		t.Fatal("expected an ellipse")
	}
	// The axes are swapped so that the ratio stays below one.
	assertClose(t, e.Ratio, 0.5, 1e-12)
	assertClose(t, e.MajorRadius(), 2, 1e-12)
	// The arc keeps its endpoints.
	assertNear(t, e.StartPoint(), Pt(1, 0), 1e-12)
	assertNear(t, e.EndPoint(), Pt(0, 2), 1e-12)

	if _, ok := NewEllipse(Pt(0, 0), Vec(1, 0), 0, 0, 0, false, tol); ok {
		t.Error("zero ratio should not define an ellipse")
	}
	if _, ok := NewEllipse(Pt(0, 0), Vec(0, 0), 1, 0, 0, false, tol); ok {
		t.Error("zero radius should not define an ellipse")
	}
}

func TestEllipseFromQuadratic(t *testing.T) {
	// x²/4 + y² = 1
	e, ok := NewEllipseFromQuadratic(Pt(0, 0), 0.25, 0, 1, tol)
	if !ok {
		t.Fatal("expected an ellipse")
	}
	assertClose(t, e.MajorRadius(), 2, 1e-12)
	assertClose(t, e.MinorRadius(), 1, 1e-12)
	assertClose(t, math.Abs(math.Cos(e.Angle())), 1, 1e-12)

	// A hyperbola is not an ellipse.
	if _, ok := NewEllipseFromQuadratic(Pt(0, 0), 1, 0, -1, tol); ok {
		t.Error("expected no ellipse")
	}

	e, ok = NewEllipseFromCenter3P(Pt(1, 1), [3]Point{
		Pt(3, 1),
		Pt(1, 2),
		Pt(1+math.Sqrt2, 1+math.Sqrt2/2),
	}, tol)
	if !ok {
		t.Fatal("expected an ellipse")
	}
	assertClose(t, e.MajorRadius(), 2, 1e-9)
	assertClose(t, e.MinorRadius(), 1, 1e-9)
	diff(t, Pt(1, 1), e.Center)
}

func TestEllipseNearestPoint(t *testing.T) {
	e := Ellipse{Center: Pt(0, 0), MajorP: Vec(2, 0), Ratio: 0.5}

	assertNear(t, e.NearestPointOnEntity(Pt(5, 0), true, tol), Pt(2, 0), 1e-6)
	assertNear(t, e.NearestPointOnEntity(Pt(0, 3), true, tol), Pt(0, 1), 1e-9)
	assertClose(t, e.DistanceToPoint(Pt(5, 0), tol), 3, 1e-9)

	// Compare with a dense sampling of the ellipse, for points inside and
	// outside of it.
	sampled := func(e Ellipse, pt Point) float64 {
		best := math.Inf(1)
		for i := range 20000 {
			best = min(best, e.PointAt(2*math.Pi*float64(i)/20000).Distance(pt))
		}
		return best
	}
	rotated := Ellipse{Center: Pt(1, -2), MajorP: Vec(3, 1), Ratio: 0.4}
	for _, e := range []Ellipse{e, rotated} {
		for _, pt := range []Point{Pt(3, 2), Pt(0.5, 0.3), Pt(1, 0), Pt(-1.5, -0.2), Pt(2, 1), Pt(-4, 7)} {
			np := e.NearestPointOnEntity(pt, true, tol)
			if !np.IsValid() {
				t.Errorf("no nearest point for %s", pt)
				continue
			}
			got := np.Distance(pt)
			want := sampled(e, pt)
			if got > want+1e-6 {
				t.Errorf("nearest point %s of %s has distance %v, but a sample has %v", np, pt, got, want)
			}
		}
	}
}

// scanDistance finds the distance from pt to e by sampling the parameter
// and refining every local minimum of the samples with a ternary search.
func scanDistance(e Ellipse, pt Point) float64 {
	const steps = 2000
	const h = 2 * math.Pi / steps
	dist := func(t float64) float64 { return e.PointAt(t).Distance(pt) }
	var samples [steps]float64
	for i := range samples {
		samples[i] = dist(float64(i) * h)
	}
	best := math.Inf(1)
	for i, d := range samples {
		if d > samples[(i+steps-1)%steps] || d > samples[(i+1)%steps] {
			continue
		}
		lo, hi := float64(i-1)*h, float64(i+1)*h
		for range 100 {
			m1 := lo + (hi-lo)/3
			m2 := hi - (hi-lo)/3
			if dist(m1) < dist(m2) {
				hi = m2
			} else {
				lo = m1
			}
		}
		best = min(best, dist(0.5*(lo+hi)))
	}
	return best
}

func TestEllipseNearestPointScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := range 2000 {
		ratio := 0.05 + 0.95*rng.Float64()
		if i%2 == 0 {
			// Nearly circular ellipses used to lose all roots of the quartic.
			ratio = 0.98 + 0.0199*rng.Float64()
		}
		e := Ellipse{
			Center: Pt(4*rng.Float64()-2, 4*rng.Float64()-2),
			MajorP: Vec2(Polar(0.5+4.5*rng.Float64(), 2*math.Pi*rng.Float64())),
			Ratio:  ratio,
		}
		pt := Pt(20*rng.Float64()-10, 20*rng.Float64()-10)

		np := e.NearestPointOnEntity(pt, false, tol)
		if !np.IsValid() {
			t.Fatalf("%d: no nearest point on %v for %s", i, e, pt)
		}
		want := scanDistance(e, pt)
		if got := np.Distance(pt); math.Abs(got-want) > 1e-7 {
			t.Errorf("%d: distance from %s to %v is %v, scan found %v", i, pt, e, got, want)
		}
		assertClose(t, e.DistanceToPoint(pt, tol), want, 1e-7)
	}
}

func TestEllipseArcNearestPoint(t *testing.T) {
	// The upper half of the ellipse.
	e := Ellipse{Center: Pt(0, 0), MajorP: Vec(2, 0), Ratio: 0.5, EndAngle: math.Pi}
	if e.IsFull() {
		t.Fatal("expected an arc")
	}
	assertNear(t, e.NearestPointOnEntity(Pt(0, -3), true, tol), Pt(2, 0), 1e-9)
	assertNear(t, e.NearestPointOnEntity(Pt(0, -3), false, tol), Pt(0, -1), 1e-9)

	p, _ := e.NearestEndpoint(Pt(-3, 0))
	assertNear(t, p, Pt(-2, 0), 1e-12)
	assertClose(t, e.AngleLength(), math.Pi, 1e-12)
	diff(t, Rect{-2, 0, 2, 1}, e.BoundingBox(), approx)
}

func TestEllipseTangentPoint(t *testing.T) {
	e := Ellipse{Center: Pt(0, 0), MajorP: Vec(2, 0), Ratio: 0.5}
	ext := Pt(4, 0)
	sols := e.TangentPoint(ext, tol)
	if len(sols) != 2 {
		t.Fatalf("got %d tangent points, expected 2", len(sols))
	}
	for _, p := range sols {
		assertClose(t, e.DistanceToPoint(p, tol), 0, 1e-9)
		dir := e.TangentDirection(p)
		if c := dir.Normalize().Cross(p.Sub(ext).Normalize()); math.Abs(c) > 1e-9 {
			t.Errorf("line from %s to %s is not tangent", ext, p)
		}
	}
	assertNear(t, sols[0], Pt(1, math.Sqrt(3)/2), 1e-9)

	if sols := e.TangentPoint(Pt(1, 0), tol); len(sols) != 0 {
		t.Errorf("got %v for a point inside the ellipse, expected nothing", sols)
	}
}

func TestEllipseNearestOrthTan(t *testing.T) {
	e := Ellipse{Center: Pt(0, 0), MajorP: Vec(2, 0), Ratio: 0.5}
	assertNear(t, e.NearestOrthTan(Pt(1, 1), Segment{Pt(0, 0), Pt(1, 0)}), Pt(2, 0), 1e-12)
	assertNear(t, e.NearestOrthTan(Pt(1, 1), Segment{Pt(0, 0), Pt(0, 1)}), Pt(0, 1), 1e-12)
	assertNear(t, e.NearestOrthTan(Pt(1, -1), Segment{Pt(0, 0), Pt(0, 1)}), Pt(0, -1), 1e-12)

	// The tangent at the result is orthogonal to the reference line.
	normal := Segment{Pt(0, 0), Pt(1, 1)}
	p := e.NearestOrthTan(Pt(3, 3), normal)
	if d := e.TangentDirection(p).Dot(normal.P1.Sub(normal.P0)); math.Abs(d) > 1e-9 {
		t.Errorf("tangent at %s is not orthogonal to %v", p, normal)
	}
}

func TestEllipseTransforms(t *testing.T) {
	const epsilon = 1e-12
	e := Ellipse{Center: Pt(1, 0), MajorP: Vec(2, 0), Ratio: 0.5, EndAngle: math.Pi / 2}

	r := e.Rotate(Pt(0, 0), math.Pi/2)
	assertNear(t, r.Center, Pt(0, 1), epsilon)
	assertNear(t, r.StartPoint(), Pt(0, 3), epsilon)
	assertNear(t, r.EndPoint(), Pt(-1, 1), epsilon)

	m := e.Mirror(Pt(0, 0), Pt(1, 0))
	if !m.Reversed {
		t.Error("mirrored ellipse should be reversed")
	}
	assertNear(t, m.StartPoint(), Pt(3, 0), epsilon)
	assertNear(t, m.EndPoint(), Pt(1, -1), epsilon)

	// Stretching the minor axis turns the ellipse into a circle.
	s := e.Scale(Pt(1, 0), Vec(1, 2), tol)
	assertClose(t, s.MajorRadius(), 2, 1e-9)
	assertClose(t, s.MinorRadius(), 2, 1e-9)
	assertNear(t, s.StartPoint(), Pt(3, 0), 1e-9)
	assertNear(t, s.EndPoint(), Pt(1, 2), 1e-9)

	s = e.Scale(Pt(0, 0), Vec(1, -1), tol)
	if !s.Reversed {
		t.Error("ellipse scaled by a negative factor should be reversed")
	}
	assertNear(t, s.EndPoint(), Pt(1, -1), 1e-9)

	for _, f := range []Vec2{Vec(0, 2), Vec(-1, 0), Vec(0, 0)} {
		diff(t, e, e.Scale(Pt(2, 2), f, tol))
		diff(t, Entity(e), ScaleEntity(e, Pt(2, 2), f, tol))
	}
}
