package draft

import (
	"fmt"
	"math"
)

// Kind identifies the concrete type of an [Entity].
type Kind uint8

const (
	SegmentKind Kind = iota + 1
	CircleKind
	ArcKind
	EllipseKind
)

func (k Kind) String() string {
	switch k {
	case SegmentKind:
		return "segment"
	case CircleKind:
		return "circle"
	case ArcKind:
		return "arc"
	case EllipseKind:
		return "ellipse"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Entity is one of the curve primitives: [Segment], [Circle], [Arc] or
// [Ellipse]. The set is closed; other packages cannot implement Entity.
//
// Queries that decide whether some quantity counts as zero take a tolerance
// argument, see [DefaultTolerance].
type Entity interface {
	Kind() Kind

	// BoundingBox returns the smallest rectangle that encloses the entity.
	BoundingBox() Rect

	// DistanceToPoint returns the distance from pt to the entity.
	DistanceToPoint(pt Point, tol float64) float64

	// NearestPointOnEntity projects pt onto the entity's underlying curve. If
	// onEntity is true and the projection falls outside of the entity, the
	// nearest endpoint is returned instead. The result is invalid if no
	// meaningful projection exists.
	NearestPointOnEntity(pt Point, onEntity bool, tol float64) Point

	// NearestEndpoint returns the endpoint closest to pt and its distance.
	// Entities without endpoints return ([Invalid], [MaxDistance]).
	NearestEndpoint(pt Point) (Point, float64)

	sealed()
}

// Conic is implemented by the entities that have a center: [Circle], [Arc]
// and [Ellipse].
type Conic interface {
	Entity

	// CenterPoint returns the center of the conic.
	CenterPoint() Point

	// TangentPoint returns the points of the conic at which a line through
	// ext is tangent. Tangency is computed for the underlying full curve.
	TangentPoint(ext Point, tol float64) Solutions

	// TangentDirection returns the direction of the tangent at pt, which is
	// assumed to lie on the conic.
	TangentDirection(pt Point) Vec2

	// NearestOrthTan returns the point of the conic whose tangent is
	// orthogonal to normal and which lies on the same side of the center
	// as pt.
	NearestOrthTan(pt Point, normal Segment) Point
}

var (
	_ Entity = Segment{}
	_ Conic  = Circle{}
	_ Conic  = Arc{}
	_ Conic  = Ellipse{}
)

func (Segment) sealed() {}
func (Circle) sealed()  {}
func (Arc) sealed()     {}
func (Ellipse) sealed() {}

// MoveEntity returns e translated by v.
func MoveEntity(e Entity, v Vec2) Entity {
	switch e := e.(type) {
	case Segment:
		return e.Translate(v)
	case Circle:
		return e.Translate(v)
	case Arc:
		return e.Translate(v)
	case Ellipse:
		return e.Translate(v)
	default:
		panic(fmt.Sprintf("unhandled entity %T", e))
	}
}

// RotateEntity returns e rotated by th radians about center.
func RotateEntity(e Entity, center Point, th float64) Entity {
	switch e := e.(type) {
	case Segment:
		return e.Rotate(center, th)
	case Circle:
		return e.Rotate(center, th)
	case Arc:
		return e.Rotate(center, th)
	case Ellipse:
		return e.Rotate(center, th)
	default:
		panic(fmt.Sprintf("unhandled entity %T", e))
	}
}

// ScaleEntity returns e scaled about center. Circles and arcs that are scaled
// non-uniformly become ellipses.
func ScaleEntity(e Entity, center Point, factor Vec2, tol float64) Entity {
	switch e := e.(type) {
	case Segment:
		return e.Scale(center, factor)
	case Circle:
		return e.Scale(center, factor, tol)
	case Arc:
		return e.Scale(center, factor, tol)
	case Ellipse:
		return e.Scale(center, factor, tol)
	default:
		panic(fmt.Sprintf("unhandled entity %T", e))
	}
}

// MirrorEntity returns e reflected across the line through axis0 and axis1.
func MirrorEntity(e Entity, axis0, axis1 Point) Entity {
	switch e := e.(type) {
	case Segment:
		return e.Mirror(axis0, axis1)
	case Circle:
		return e.Mirror(axis0, axis1)
	case Arc:
		return e.Mirror(axis0, axis1)
	case Ellipse:
		return e.Mirror(axis0, axis1)
	default:
		panic(fmt.Sprintf("unhandled entity %T", e))
	}
}

// Solutions is a small ordered set of candidate points produced by a solver.
type Solutions []Point

// AppendUnique appends pt unless the set already holds a point within tol of
// it.
func (s Solutions) AppendUnique(pt Point, tol float64) Solutions {
	if !pt.IsValid() {
		return s
	}
	for _, o := range s {
		if o.DistanceSquared(pt) <= tol*tol {
			return s
		}
	}
	return append(s, pt)
}

// Closest returns the point closest to ref, its index and its distance. An
// empty set returns ([Invalid], -1, [MaxDistance]).
func (s Solutions) Closest(ref Point) (Point, int, float64) {
	best := Invalid
	idx := -1
	dist := math.Inf(1)
	for i, pt := range s {
		if d := pt.DistanceSquared(ref); d < dist {
			best, idx, dist = pt, i, d
		}
	}
	if idx == -1 {
		return Invalid, -1, MaxDistance
	}
	return best, idx, math.Sqrt(dist)
}
