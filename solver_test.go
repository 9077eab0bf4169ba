package draft

import (
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-9
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveLinear(t *testing.T) {
	slice := func(roots [1]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveLinear(-6, 3, tol)), []float64{2})
	// Undetermined and contradictory equations have no root.
	checkRoots(t, slice(SolveLinear(0, 0, tol)), []float64{})
	checkRoots(t, slice(SolveLinear(1, 0, tol)), []float64{})
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0, tol)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0, tol)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0, tol)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0, tol)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(6.0, -5.0, 1.0, tol)), []float64{2.0, 3.0})
	// A leading coefficient that is negligible next to the others collapses
	// to the linear case.
	checkRoots(t, slice(SolveQuadratic(-4.0, 2.0, 1e-20, tol)), []float64{2.0})
}

func TestSolveCubic(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveCubic(-5, 0, 0, 1, tol)), []float64{math.Cbrt(5)})
	checkRoots(t, slice(SolveCubic(-5.0, -1.0, 0.0, 1.0, tol)), []float64{1.90416085913492})
	checkRoots(t, slice(SolveCubic(0.0, -1.0, 0.0, 1.0, tol)), []float64{-1.0, 0.0, 1.0})
	checkRoots(t, slice(SolveCubic(-2.0, -3.0, 0.0, 1.0, tol)), []float64{-1.0, 2.0})
	checkRoots(t, slice(SolveCubic(2.0, -3.0, 0.0, 1.0, tol)), []float64{-2.0, 1.0})
	checkRoots(t, slice(SolveCubic(2.0+1e-12, 5.0, 4.0, 1.0, tol)), []float64{-2.0})
	checkRoots(t, slice(SolveCubic(-6, 11, -6, 1, tol)), []float64{1, 2, 3})
	checkRoots(t, slice(SolveCubic(-4, 0, 1, 0, tol)), []float64{-2, 2})
}

func TestSolveQuartic(t *testing.T) {
	slice := func(roots [4]float64, n int) []float64 {
		return roots[:n]
	}
	// vieta returns the ascending coefficients of the monic quartic with the
	// given roots.
	vieta := func(x1, x2, x3, x4 float64) (c0, c1, c2, c3, c4 float64) {
		c3 = -(x1 + x2 + x3 + x4)
		c2 = x1*(x2+x3) + x2*(x3+x4) + x4*(x1+x3)
		c1 = -x1*x2*(x3+x4) - x3*x4*(x1+x2)
		c0 = x1 * x2 * x3 * x4
		return c0, c1, c2, c3, 1
	}
	solve := func(c0, c1, c2, c3, c4 float64) []float64 {
		return slice(SolveQuartic(c0, c1, c2, c3, c4, tol))
	}

	checkRoots(t, solve(vieta(1, 2, 3, 4)), []float64{1, 2, 3, 4})
	checkRoots(t, solve(vieta(-1, 0.5, 2, 3)), []float64{-1, 0.5, 2, 3})
	checkRoots(t, solve(vieta(-3, -1, 1, 3)), []float64{-3, -1, 1, 3})
	checkRoots(t, solve(vieta(-2.5, 0.25, 1.5, 7)), []float64{-2.5, 0.25, 1.5, 7})
	// x⁴ + 1 has no real roots.
	checkRoots(t, solve(1, 0, 0, 0, 1), []float64{})
	// (x² + 1)(x − 1)(x − 2)
	checkRoots(t, solve(2, -3, 3, -3, 1), []float64{1, 2})
	// Degree collapse down to the quadratic and linear cases.
	checkRoots(t, solve(-4, 0, 1, 0, 0), []float64{-2, 2})
	checkRoots(t, solve(2, 1, 0, 0, 0), []float64{-2})
	checkRoots(t, solve(-4, 0, 1, 0, 1e-20), []float64{-2, 2})
	checkRoots(t, solve(0, 0, 0, 0, 0), []float64{})

	if got := solve(vieta(4, 3, 2, 1)); !sort.Float64sAreSorted(got) {
		t.Errorf("roots %v are not sorted", got)
	}
}

func TestSolveLargeRoots(t *testing.T) {
	// Leading coefficients that are small next to the constant term still
	// matter when the roots are large.
	roots, n := SolveQuadratic(-1e12, 0, 1, tol)
	if n != 2 {
		t.Fatalf("got %d roots, expected 2", n)
	}
	assertClose(t, roots[0]/1e6, -1, 1e-12)
	assertClose(t, roots[1]/1e6, 1, 1e-12)

	croots, n := SolveCubic(-1e12, 0, 0, 1, tol)
	if n != 1 {
		t.Fatalf("got %d roots, expected 1", n)
	}
	assertClose(t, croots[0]/1e4, 1, 1e-12)

	qroots, n := SolveQuartic(-1e12, 0, 0, 0, 1, tol)
	checkRoots(t, qroots[:n], []float64{-1e3, 1e3})
}

func TestSolveQuarticSmallLead(t *testing.T) {
	// The depressed form of this quartic has a resolvent cubic whose constant
	// term is many orders of magnitude larger than its leading coefficient.
	c := [5]float64{61.716, -1.5215, -121.787, 1.5215, -0.0093778}
	roots, n := SolveQuartic(c[0], c[1], c[2], c[3], c[4], tol)
	if n != 2 {
		t.Fatalf("got %d roots %v, expected 2", n, roots[:n])
	}
	for _, x := range roots[:n] {
		f := (((c[4]*x+c[3])*x+c[2])*x+c[1])*x + c[0]
		if math.Abs(f) > 1e-9 {
			t.Errorf("residual at %v is %v", x, f)
		}
	}
	assertClose(t, roots[0], -0.7149126417362761, 1e-9)
	assertClose(t, roots[1], 0.7087506745054762, 1e-9)
}

func TestSolveQuarticSpreadRoots(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 2000 {
		var want [4]float64
		for j := range want {
			want[j] = math.Pow(10, -3+6*rng.Float64())
			if rng.IntN(2) == 0 {
				want[j] = -want[j]
			}
		}
		slices.Sort(want[:])
		separated := true
		for j := range 3 {
			if want[j+1]-want[j] < 0.05*max(math.Abs(want[j]), math.Abs(want[j+1])) {
				separated = false
			}
		}
		if !separated {
			continue
		}

		// Monic quartic with the given roots, scaled by a random factor.
		x1, x2, x3, x4 := want[0], want[1], want[2], want[3]
		s := 1 + 9*rng.Float64()
		c3 := -(x1 + x2 + x3 + x4)
		c2 := x1*(x2+x3) + x2*(x3+x4) + x4*(x1+x3)
		c1 := -x1*x2*(x3+x4) - x3*x4*(x1+x2)
		c0 := x1 * x2 * x3 * x4
		got, n := SolveQuartic(s*c0, s*c1, s*c2, s*c3, s, tol)
		if n != 4 {
			t.Fatalf("%d: roots %v: got %v", i, want, got[:n])
		}
		for j := range got {
			if math.Abs(got[j]-want[j]) > 1e-9*math.Abs(want[j]) {
				t.Errorf("%d: roots %v: got %v", i, want, got)
				break
			}
		}
	}
}
