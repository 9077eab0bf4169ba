package draft

import (
	"math"
	"slices"
)

// The solvers in this file take coefficients in increasing order of degree,
// so that c0 + c1 x + c2 x² + … = 0. Each solver checks whether its leading
// coefficient is negligible and degrades to the solver of the next lower
// degree instead of dividing by a number that is effectively zero. The chain
// ends with [SolveLinear], which reports no roots for equations that do not
// determine x.

// negligible reports whether the leading coefficient, the last element of
// cs, is effectively zero.
//
// The coefficients are compared at the scale of the lower-degree
// polynomial's roots, bounded by max |c_k/c_j|^(1/(j−k)), where c_j is the
// highest nonzero lower coefficient. At that scale the lead term has to fall
// below tol times some other term. Comparing the raw coefficients instead
// would drop x² = 10¹² as a linear equation.
func negligible(tol float64, cs ...float64) bool {
	n := len(cs) - 1
	lead := cs[n]
	if lead == 0 {
		return true
	}
	j := n - 1
	for j >= 0 && cs[j] == 0 {
		j--
	}
	if j <= 0 {
		// Only lead x^n + c0 remains, which has a well-defined scale.
		return false
	}
	var s float64
	for k := range j {
		s = max(s, math.Pow(math.Abs(cs[k]/cs[j]), 1/float64(j-k)))
	}
	if s == 0 {
		s = 1
	}
	for k, c := range cs[:n] {
		if c != 0 && math.Abs(lead)*math.Pow(s, float64(n-k)) <= tol*math.Abs(c) {
			return true
		}
	}
	return false
}

// SolveLinear finds the root of c0 + c1 x = 0.
//
// If c1 is negligible the equation either has no solution or is satisfied by
// every x; in both cases no root is reported.
func SolveLinear(c0, c1, tol float64) ([1]float64, int) {
	if negligible(tol, c0, c1) {
		return [1]float64{}, 0
	}
	return [1]float64{-c0 / c1}, 1
}

// SolveQuadratic finds real roots of c0 + c1 x + c2 x² = 0.
//
// Roots are sorted in increasing order. A discriminant that is zero within
// tolerance yields a single double root.
func SolveQuadratic(c0, c1, c2, tol float64) ([2]float64, int) {
	if negligible(tol, c0, c1, c2) {
		root, n := SolveLinear(c0, c1, tol)
		return [2]float64{root[0]}, n
	}
	sc0 := c0 / c2
	sc1 := c1 / c2
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if math.Abs(arg) <= tol*max(sc1*sc1, math.Abs(4.0*sc0)) {
			return [2]float64{-0.5 * sc1}, 1
		}
		if arg < 0.0 {
			return [2]float64{}, 0
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// SolveCubic finds real roots of c0 + c1 x + c2 x² + c3 x³ = 0.
//
// See: https://momentsingraphics.de/CubicRoots.html, which is in turn based
// on Jim Blinn's "How to Solve a Cubic Equation".
func SolveCubic(c0, c1, c2, c3, tol float64) ([3]float64, int) {
	if negligible(tol, c0, c1, c2, c3) {
		roots, n := SolveQuadratic(c0, c1, c2, tol)
		return [3]float64{roots[0], roots[1]}, n
	}
	c3Recip := 1.0 / c3
	c2 = c2 * (1.0 / 3.0 * c3Recip)
	c1 = c1 * (1.0 / 3.0 * c3Recip)
	c0 = c0 * c3Recip
	// (d0, d1, d2) is called "Delta" in article
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	// d is called "Discriminant"
	d := 4.0*d0*d2 - d1*d1
	// de is called "Depressed.x", Depressed.y = d0
	de := math.FMA(-2.0*c2, d0, d1)
	switch {
	case d < 0.0:
		sq := math.Sqrt(-0.25 * d)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - c2}, 1
	case d == 0.0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - c2, -2.0*t1 - c2}, 2
	default:
		th := math.Atan2(math.Sqrt(d), -de) * (1.0 / 3.0)
		thSin, thCos := math.Sincos(th)
		r0 := thCos
		ss3 := thSin * math.Sqrt(3.0)
		r1 := 0.5 * (-thCos + ss3)
		r2 := 0.5 * (-thCos - ss3)
		t := 2.0 * math.Sqrt(-d0)
		return [3]float64{
			math.FMA(t, r0, -c2),
			math.FMA(t, r1, -c2),
			math.FMA(t, r2, -c2),
		}, 3
	}
}

// SolveQuartic finds real roots of c0 + c1 x + c2 x² + c3 x³ + c4 x⁴ = 0.
//
// The quartic is depressed and factored into two quadratics using the
// largest root of Ferrari's resolvent cubic. The factorization loses the
// small roots when the roots span several orders of magnitude, so only the
// largest root is kept and the remaining ones are found on the deflated
// cubic. Roots are polished with a few Newton steps on the input polynomial
// and returned in increasing order.
func SolveQuartic(c0, c1, c2, c3, c4, tol float64) ([4]float64, int) {
	if negligible(tol, c0, c1, c2, c3, c4) {
		roots, n := SolveCubic(c0, c1, c2, c3, tol)
		return [4]float64{roots[0], roots[1], roots[2]}, n
	}
	a := c3 / c4
	b := c2 / c4
	c := c1 / c4
	d := c0 / c4

	// x = y - a/4 turns the monic quartic into y⁴ + p y² + q y + r.
	a2 := a * a
	p := b - 3.0/8.0*a2
	q := c - 0.5*a*b + a2*a/8.0
	r := d - 0.25*a*c + a2*b/16.0 - 3.0/256.0*a2*a2

	var ys [4]float64
	var n int
	push := func(roots [2]float64, m int) {
		for _, y := range roots[:m] {
			ys[n] = y
			n++
		}
	}

	scale := max(math.Sqrt(math.Abs(p)), math.Sqrt(math.Sqrt(math.Abs(r))))
	if math.Abs(q) <= tol*scale*scale*scale {
		// Biquadratic: z² + p z + r = 0 with z = y².
		zs, zn := SolveQuadratic(r, p, 1, tol)
		for _, z := range zs[:zn] {
			switch {
			case z > tol*scale*scale:
				s := math.Sqrt(z)
				push([2]float64{-s, s}, 2)
			case z >= -tol*scale*scale:
				push([2]float64{0}, 1)
			}
		}
	} else {
		// Resolvent: m³ + p m² + (p²/4 − r) m − q²/8 = 0. Its value at m = 0 is
		// negative, so it always has a positive root.
		ms, mn := SolveCubic(-q*q/8.0, 0.25*p*p-r, p, 1, tol)
		m := slices.Max(ms[:mn])
		if m <= 0 {
			return [4]float64{}, 0
		}
		s := math.Sqrt(2.0 * m)
		push(SolveQuadratic(0.5*p+m-q/(2.0*s), s, 1, tol))
		push(SolveQuadratic(0.5*p+m+q/(2.0*s), -s, 1, tol))
	}

	if n == 0 {
		return [4]float64{}, 0
	}

	var out [4]float64
	big := polishQuartic(ys[0]-0.25*a, a, b, c, d)
	for _, y := range ys[1:n] {
		if x := polishQuartic(y-0.25*a, a, b, c, d); math.Abs(x) > math.Abs(big) {
			big = x
		}
	}
	// The remaining roots solve x³ + b2 x² + b1 x + b0 = 0. Dividing by
	// (x − big) starting from the constant term is stable for the root of
	// largest magnitude.
	b0, b1, b2 := c, b, a
	if big != 0 {
		b0 = -d / big
		b1 = (b0 - c) / big
		b2 = (b1 - b) / big
	}
	rest, rn := SolveCubic(b0, b1, b2, 1, tol)
	out[0] = big
	for i, x := range rest[:rn] {
		out[i+1] = polishQuartic(x, a, b, c, d)
	}
	n = rn + 1
	slices.Sort(out[:n])
	return out, n
}

// polishQuartic refines a root of the monic quartic x⁴ + a x³ + b x² + c x + d
// with Newton's method, keeping the best estimate.
func polishQuartic(x, a, b, c, d float64) float64 {
	eval := func(x float64) (f, df float64) {
		f = (((x+a)*x+b)*x+c)*x + d
		df = ((4.0*x+3.0*a)*x+2.0*b)*x + c
		return f, df
	}
	f, df := eval(x)
	for range 4 {
		if f == 0 || df == 0 {
			break
		}
		nx := x - f/df
		nf, ndf := eval(nx)
		if math.Abs(nf) >= math.Abs(f) {
			break
		}
		x, f, df = nx, nf, ndf
	}
	return x
}
