// Package geom provides vector, point, matrix, quaternion, and shape
// primitives for 2D/3D geometry, generic over float32 and float64.
//
// Degenerate numeric inputs (zero-length vectors, singular matrices,
// out-of-domain acos arguments) are routed through the Safe* scalar
// helpers and produce a defined zero result instead of NaN or a panic.
package geom

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for the floating-point algebra kernel.
type Float interface {
	constraints.Float
}

// Epsilon is the default tolerance for approximate comparisons.
const Epsilon = 1e-6

// Sqrt returns the square root of x without the float64 cast noise.
func Sqrt[T Float](x T) T {
	return T(gomath.Sqrt(float64(x)))
}

// SafeSqrt returns sqrt(x), treating negative x (typically floating
// round-off from a squared-magnitude computation) as zero.
func SafeSqrt[T Float](x T) T {
	if x <= 0 {
		return 0
	}
	return Sqrt(x)
}

// SafeInvSqrt returns num / sqrt(x), or 0 when x is not positive.
// Normalizing a zero-length vector through this yields the zero vector.
func SafeInvSqrt[T Float](num, x T) T {
	if x <= 0 {
		return 0
	}
	return num / Sqrt(x)
}

// SafeDiv returns a / b, or 0 when b is zero.
func SafeDiv[T Float](a, b T) T {
	if b == 0 {
		return 0
	}
	return a / b
}

// SafeInv returns 1 / x, or 0 when x is zero. Under this convention the
// inverse of a singular matrix is the zero matrix.
func SafeInv[T Float](x T) T {
	if x == 0 {
		return 0
	}
	return 1 / x
}

// SafeAcos clamps x to [-1, 1] before calling acos. Dot products of unit
// vectors can drift slightly outside the domain and would otherwise
// produce NaN.
func SafeAcos[T Float](x T) T {
	return T(gomath.Acos(float64(Clamp(x, -1, 1))))
}

// SafeAsin clamps x to [-1, 1] before calling asin.
func SafeAsin[T Float](x T) T {
	return T(gomath.Asin(float64(Clamp(x, -1, 1))))
}

// Sin returns sin(x).
func Sin[T Float](x T) T {
	return T(gomath.Sin(float64(x)))
}

// Cos returns cos(x).
func Cos[T Float](x T) T {
	return T(gomath.Cos(float64(x)))
}

// Tan returns tan(x).
func Tan[T Float](x T) T {
	return T(gomath.Tan(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T constraints.Integer | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqr returns x * x.
func Sqr[T constraints.Integer | constraints.Float](x T) T {
	return x * x
}

// Clamp limits x to [low, high].
func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// Clamp01 limits x to [0, 1].
func Clamp01[T Float](x T) T {
	return Clamp(x, 0, 1)
}

// LerpScalar interpolates from a to b by t. t is not clamped here; the
// vector and point Lerp methods clamp before calling.
func LerpScalar[T Float](a, b, t T) T {
	return a + t*(b-a)
}

// AlmostEqual reports whether a and b differ by at most eps.
func AlmostEqual[T Float](a, b, eps T) bool {
	return Abs(a-b) <= eps
}

// Radians converts degrees to radians.
func Radians[T Float](deg T) T {
	return deg / 180 * T(gomath.Pi)
}

// Degrees converts radians to degrees.
func Degrees[T Float](rad T) T {
	return rad * 180 / T(gomath.Pi)
}

// IsFiniteScalar reports whether x is neither NaN nor infinite.
func IsFiniteScalar[T Float](x T) bool {
	f := float64(x)
	return !gomath.IsNaN(f) && !gomath.IsInf(f, 0)
}

// IsNaNScalar reports whether x is NaN.
func IsNaNScalar[T Float](x T) bool {
	return gomath.IsNaN(float64(x))
}

// roundTo rounds x to the given number of decimal digits.
func roundTo[T Float](x T, digits int) T {
	p := gomath.Pow(10, float64(digits))
	return T(gomath.Round(float64(x)*p) / p)
}
