package draft

import "math"

// DefaultTolerance is a default value for arguments named tol. It decides when
// lengths, radii, cross products and discriminants count as zero, and when
// two points count as coincident.
const DefaultTolerance = 1e-10

// AngleTolerance is the smallest angle, in radians, that is distinguished
// from zero.
const AngleTolerance = 1e-8

// MaxDistance is reported as the distance of queries that have no answer, such
// as the nearest endpoint of a full circle.
const MaxDistance = math.MaxFloat64

// CorrectAngle normalizes th into [0, 2π).
func CorrectAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	if th >= 2*math.Pi {
		th = 0
	}
	return th
}

// AngleDifference returns the counter-clockwise angle from a1 to a2, in [0, 2π).
func AngleDifference(a1, a2 float64) float64 {
	return CorrectAngle(a2 - a1)
}

// SignedAngleDifference returns the angle from a1 to a2, normalized into (−π, π].
func SignedAngleDifference(a1, a2 float64) float64 {
	d := AngleDifference(a1, a2)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// IsAngleBetween reports whether th lies on the sweep from a1 to a2. The sweep
// runs counter-clockwise, or clockwise if reversed is true. The end angles
// are included.
func IsAngleBetween(th, a1, a2 float64, reversed bool) bool {
	if reversed {
		a1, a2 = a2, a1
	}
	sweep := AngleDifference(a1, a2)
	if sweep < AngleTolerance {
		sweep = 2 * math.Pi
	}
	d := AngleDifference(a1, th)
	return d <= sweep+AngleTolerance || d >= 2*math.Pi-AngleTolerance
}
