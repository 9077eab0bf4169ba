package draft

// AreaAccumulator measures the polygon spanned by a sequence of points, in
// the order they were pushed. The polygon is closed implicitly from the last
// point back to the first.
//
// The zero value is an empty accumulator, ready to use.
type AreaAccumulator struct {
	points []Point
	// The y coordinate of the first point. Trapezoids are measured against
	// this line to keep the summed values small.
	baseY float64

	area      float64
	perimeter float64
	stale     bool
}

// Push appends pt to the contour.
func (acc *AreaAccumulator) Push(pt Point) {
	if len(acc.points) == 0 {
		acc.baseY = pt.Y
	}
	acc.points = append(acc.points, pt)
	acc.stale = true
}

// Pop removes the last point of the contour, if any.
func (acc *AreaAccumulator) Pop() {
	if len(acc.points) == 0 {
		return
	}
	acc.points = acc.points[:len(acc.points)-1]
	acc.stale = true
}

// Reset removes all points.
func (acc *AreaAccumulator) Reset() {
	acc.points = acc.points[:0]
	acc.area = 0
	acc.perimeter = 0
	acc.stale = false
}

func (acc *AreaAccumulator) Len() int {
	return len(acc.points)
}

// Points returns the contour. The slice must not be modified.
func (acc *AreaAccumulator) Points() []Point {
	return acc.points
}

// Duplicated reports whether the contour already contains a point within tol
// of pt.
func (acc *AreaAccumulator) Duplicated(pt Point, tol float64) bool {
	for _, p := range acc.points {
		if p.DistanceSquared(pt) < tol*tol {
			return true
		}
	}
	return false
}

// NeedsCalculation reports whether points were added or removed since the
// last call to Calculate.
func (acc *AreaAccumulator) NeedsCalculation() bool {
	return acc.stale
}

// Calculate computes the area and perimeter of the contour with the
// trapezoid formula. Contours of fewer than three points measure zero.
func (acc *AreaAccumulator) Calculate() {
	acc.area = 0
	acc.perimeter = 0
	acc.stale = false
	n := len(acc.points)
	if n < 3 {
		return
	}
	var sum float64
	p1 := acc.points[0]
	for i := range n {
		p2 := acc.points[(i+1)%n]
		sum += (p2.X - p1.X) * ((p1.Y - acc.baseY) + (p2.Y - acc.baseY))
		acc.perimeter += p1.Distance(p2)
		p1 = p2
	}
	if sum < 0 {
		sum = -sum
	}
	acc.area = 0.5 * sum
}

// Area returns the enclosed area, recalculating it if necessary.
func (acc *AreaAccumulator) Area() float64 {
	if acc.stale {
		acc.Calculate()
	}
	return acc.area
}

// Perimeter returns the length of the closed contour, recalculating it if
// necessary.
func (acc *AreaAccumulator) Perimeter() float64 {
	if acc.stale {
		acc.Calculate()
	}
	return acc.perimeter
}
