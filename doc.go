// Package draft provides the analytic geometry of a 2D drafting program:
// curve primitives, their metric queries, and the constructions that derive
// new geometry from existing geometry.
//
// # Entities
//
// The four curve primitives are [Segment], [Circle], [Arc] and [Ellipse]. All
// of them implement [Entity], which provides a bounding box, the distance to a
// point, the nearest point on the curve and the nearest endpoint. Circles,
// arcs and ellipses additionally implement [Conic], which adds tangency
// queries. The set of entities is closed, and functions that need to
// distinguish between them use type switches.
//
// Entities are plain values. Transformations such as [Segment.Translate] or
// [Arc.Rotate] return new values, and [MoveEntity], [RotateEntity],
// [ScaleEntity] and [MirrorEntity] apply them to any Entity. Scaling a circle
// or arc by different factors in x and y produces an ellipse.
//
// # Invalid points
//
// Queries that have no geometric answer, such as the point on a circle
// nearest to its center, return [Invalid]. Its coordinates are NaN, so any
// arithmetic involving it stays invalid. Use [Point.IsValid] to check results.
// Constructions that cannot produce anything return false or nil instead.
//
// # Tolerances
//
// Functions that have to decide whether a length, a cross product or a
// discriminant counts as zero take an explicit tolerance argument named tol.
// [DefaultTolerance] is a good default for drawings in ordinary units.
//
// # Equation solvers
//
// Tangency between conics is found by solving polynomials of up to fourth
// degree. [SolveQuartic], [SolveCubic], [SolveQuadratic] and [SolveLinear]
// form a chain: a solver whose leading coefficient is negligible defers to the
// solver of the next lower degree.
//
// # Constructions
//
// Tangents are constructed by [Tangent1], [Tangent2], [LineOrthTan] and
// [Bisector]; offsets by [Parallel], [ParallelThrough] and their per-entity
// variants; regular polygons by [Polygon] and [Polygon2]. All of them are pure
// functions. The drawing package commits their results to a document.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [Ferrari's solution] of the quartic
//   - [Distance from a point to an ellipse]
//
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [Ferrari's solution]: https://en.wikipedia.org/wiki/Quartic_function#Ferrari's_solution
// [Distance from a point to an ellipse]: https://www.iquilezles.org/articles/ellipsedist/
package draft
