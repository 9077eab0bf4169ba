package draft

import (
	"math"
)

// ParallelLine returns number segments parallel to l, at distances
// distance, 2·distance, and so on. Each one is placed on whichever side of l
// is closer to coord.
func ParallelLine(coord Point, distance float64, number int, l Segment, tol float64) []Segment {
	if !coord.IsValid() || number < 1 {
		return nil
	}
	th := l.Angle() + 0.5*math.Pi
	out := make([]Segment, 0, number)
	for num := 1; num <= number; num++ {
		off := Vec2(Polar(distance*float64(num), th))
		l1 := l.Translate(off)
		l2 := l.Translate(off.Negate())
		if l1.DistanceToPoint(coord, tol) < l2.DistanceToPoint(coord, tol) {
			out = append(out, l1)
		} else {
			out = append(out, l2)
		}
	}
	return out
}

// parallelRadii returns the radii of concentric offsets of a circle of radius
// r. The offsets grow outwards, or inwards if coord is inside the circle.
// Steps that would shrink the radius to zero or below are skipped.
func parallelRadii(coord, center Point, r, distance float64, number int, tol float64) []float64 {
	if !coord.IsValid() || number < 1 {
		return nil
	}
	if center.Distance(coord) < r {
		distance = -distance
	}
	var out []float64
	for num := 1; num <= number; num++ {
		nr := r + distance*float64(num)
		if nr <= tol {
			continue
		}
		out = append(out, nr)
	}
	return out
}

// ParallelArc returns up to number arcs concentric with a, with the same
// angular range. See [ParallelCircle] for how the radii are chosen.
func ParallelArc(coord Point, distance float64, number int, a Arc, tol float64) []Arc {
	var out []Arc
	for _, r := range parallelRadii(coord, a.Center, a.Radius, distance, number, tol) {
		p := a
		p.Radius = r
		out = append(out, p)
	}
	return out
}

// ParallelCircle returns up to number circles concentric with c. Their radii
// grow by distance per step if coord is outside of c and shrink otherwise.
// Steps that would produce a non-positive radius produce no circle.
func ParallelCircle(coord Point, distance float64, number int, c Circle, tol float64) []Circle {
	var out []Circle
	for _, r := range parallelRadii(coord, c.Center, c.Radius, distance, number, tol) {
		out = append(out, Circle{Center: c.Center, Radius: r})
	}
	return out
}

// Parallel dispatches to [ParallelLine], [ParallelArc] or [ParallelCircle].
// Ellipses have no parallels and yield nil.
func Parallel(coord Point, distance float64, number int, e Entity, tol float64) []Entity {
	switch e := e.(type) {
	case Segment:
		return toEntities(ParallelLine(coord, distance, number, e, tol))
	case Arc:
		return toEntities(ParallelArc(coord, distance, number, e, tol))
	case Circle:
		return toEntities(ParallelCircle(coord, distance, number, e, tol))
	default:
		return nil
	}
}

// ParallelThrough is like [Parallel], but takes the distance from coord to e.
// For segments, the distance to the infinite line is used, so that the first
// parallel passes through coord.
func ParallelThrough(coord Point, number int, e Entity, tol float64) []Entity {
	if !coord.IsValid() {
		return nil
	}
	var dist float64
	if l, ok := e.(Segment); ok {
		dist = l.DistanceToLine(coord, tol)
	} else {
		dist = e.DistanceToPoint(coord, tol)
	}
	if dist >= MaxDistance {
		return nil
	}
	return Parallel(coord, dist, number, e, tol)
}

func toEntities[E Entity](s []E) []Entity {
	if len(s) == 0 {
		return nil
	}
	out := make([]Entity, len(s))
	for i, e := range s {
		out[i] = e
	}
	return out
}

// LineRelAngle returns a segment of the given length centered on coord. Its
// direction is angle, relative to a base angle that depends on e: the
// direction of a segment, the tangent of an arc at coord, or the direction
// from a circle's center to coord. Ellipses are not supported.
func LineRelAngle(coord Point, e Entity, angle, length float64) (Segment, bool) {
	if !coord.IsValid() {
		return Segment{}, false
	}
	var base float64
	switch e := e.(type) {
	case Segment:
		base = e.Angle()
	case Arc:
		base = e.Center.AngleTo(coord) + 0.5*math.Pi
	case Circle:
		base = e.Center.AngleTo(coord)
	default:
		return Segment{}, false
	}
	half := Vec2(Polar(0.5*length, base+angle))
	return Segment{
		P0: coord.Translate(half.Negate()),
		P1: coord.Translate(half),
	}, true
}

// Polygon returns the edges of the regular polygon with number corners,
// centered on center and with one corner at corner.
func Polygon(center, corner Point, number int) []Segment {
	if !center.IsValid() || !corner.IsValid() || number < 3 {
		return nil
	}
	out := make([]Segment, 0, number)
	step := 2 * math.Pi / float64(number)
	c2 := corner
	for n := 1; n <= number; n++ {
		c1 := c2
		if n == number {
			c2 = corner
		} else {
			c2 = corner.RotateAbout(center, step*float64(n))
		}
		out = append(out, Segment{c1, c2})
	}
	return out
}

// Polygon2 returns the edges of the regular polygon with number corners that
// has an edge from corner1 to corner2. The polygon lies to the left of that
// edge.
func Polygon2(corner1, corner2 Point, number int) []Segment {
	if !corner1.IsValid() || !corner2.IsValid() || number < 3 {
		return nil
	}
	out := make([]Segment, 0, number)
	length := corner1.Distance(corner2)
	ang1 := corner1.AngleTo(corner2)
	ang := ang1
	c2 := corner1
	for n := 1; n <= number; n++ {
		c1 := c2
		c2 = c1.Translate(Vec2(Polar(length, ang)))
		out = append(out, Segment{c1, c2})
		// Recomputed from ang1 each step so that errors do not accumulate.
		ang = ang1 + 2*math.Pi*float64(n)/float64(number)
	}
	return out
}
