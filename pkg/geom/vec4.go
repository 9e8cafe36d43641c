package geom

import (
	"fmt"
	gomath "math"
)

// Vec4 is a 4D vector.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// V4 constructs a Vec4 from components.
func V4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Splat4 constructs a Vec4 with all components set to s.
func Splat4[T Float](s T) Vec4[T] {
	return Vec4[T]{s, s, s, s}
}

// At returns component i (0 = X .. 3 = W). Panics when i is out of
// range.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("geom: Vec4 index %d out of range [0,4)", i))
}

// SetAt sets component i. Panics when i is out of range.
func (v *Vec4[T]) SetAt(i int, s T) {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	case 3:
		v.W = s
	default:
		panic(fmt.Sprintf("geom: Vec4 index %d out of range [0,4)", i))
	}
}

// Add returns v + other.
func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul returns the component-wise product.
func (v Vec4[T]) Mul(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Div returns the component-wise quotient.
func (v Vec4[T]) Div(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// Scale returns v * s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product.
func (v Vec4[T]) Dot(other Vec4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// AbsDot returns the absolute value of the dot product.
func (v Vec4[T]) AbsDot(other Vec4[T]) T {
	return Abs(v.Dot(other))
}

// LengthSq returns the squared magnitude.
func (v Vec4[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the magnitude.
func (v Vec4[T]) Length() T {
	return SafeSqrt(v.LengthSq())
}

// Normalized returns a unit vector. The zero vector normalizes to the
// zero vector, not NaN.
func (v Vec4[T]) Normalized() Vec4[T] {
	return v.Scale(SafeInvSqrt(1, v.LengthSq()))
}

// Normalize normalizes v in place.
func (v *Vec4[T]) Normalize() {
	*v = v.Normalized()
}

// IsZero reports whether all components are exactly zero.
func (v Vec4[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0
}

// Lerp linearly interpolates toward other by t, clamped to [0, 1].
func (v Vec4[T]) Lerp(other Vec4[T], t T) Vec4[T] {
	t = Clamp01(t)
	return Vec4[T]{
		LerpScalar(v.X, other.X, t),
		LerpScalar(v.Y, other.Y, t),
		LerpScalar(v.Z, other.Z, t),
		LerpScalar(v.W, other.W, t),
	}
}

// Rounded returns v with each component rounded to the given number of
// decimal digits.
func (v Vec4[T]) Rounded(digits int) Vec4[T] {
	return Vec4[T]{
		roundTo(v.X, digits), roundTo(v.Y, digits),
		roundTo(v.Z, digits), roundTo(v.W, digits),
	}
}

// Round rounds v in place.
func (v *Vec4[T]) Round(digits int) {
	*v = v.Rounded(digits)
}

// Floor replaces each component with its floor, in place.
func (v *Vec4[T]) Floor() {
	v.X = T(gomath.Floor(float64(v.X)))
	v.Y = T(gomath.Floor(float64(v.Y)))
	v.Z = T(gomath.Floor(float64(v.Z)))
	v.W = T(gomath.Floor(float64(v.W)))
}

// Ceil replaces each component with its ceiling, in place.
func (v *Vec4[T]) Ceil() {
	v.X = T(gomath.Ceil(float64(v.X)))
	v.Y = T(gomath.Ceil(float64(v.Y)))
	v.Z = T(gomath.Ceil(float64(v.Z)))
	v.W = T(gomath.Ceil(float64(v.W)))
}

// IsFinite reports whether every component is finite.
func (v Vec4[T]) IsFinite() bool {
	return IsFiniteScalar(v.X) && IsFiniteScalar(v.Y) &&
		IsFiniteScalar(v.Z) && IsFiniteScalar(v.W)
}

// IsNaN reports whether any component is NaN.
func (v Vec4[T]) IsNaN() bool {
	return IsNaNScalar(v.X) || IsNaNScalar(v.Y) ||
		IsNaNScalar(v.Z) || IsNaNScalar(v.W)
}

// Finite returns v with any non-finite component replaced by zero.
func (v Vec4[T]) Finite() Vec4[T] {
	return Vec4[T]{
		finiteOrZero(v.X), finiteOrZero(v.Y),
		finiteOrZero(v.Z), finiteOrZero(v.W),
	}
}

// NoNaN returns v with any NaN component replaced by zero.
func (v Vec4[T]) NoNaN() Vec4[T] {
	return Vec4[T]{
		nanToZero(v.X), nanToZero(v.Y),
		nanToZero(v.Z), nanToZero(v.W),
	}
}

// AlmostEqual reports whether each component of v is within eps of the
// corresponding component of other.
func (v Vec4[T]) AlmostEqual(other Vec4[T], eps T) bool {
	return AlmostEqual(v.X, other.X, eps) &&
		AlmostEqual(v.Y, other.Y, eps) &&
		AlmostEqual(v.Z, other.Z, eps) &&
		AlmostEqual(v.W, other.W, eps)
}

// Compare orders vectors lexicographically by X, then Y, then Z, then W.
// Returns -1, 0, or 1, suitable for sorted containers.
func (v Vec4[T]) Compare(other Vec4[T]) int {
	if c := v.Vec3().Compare(other.Vec3()); c != 0 {
		return c
	}
	if v.W != other.W {
		if v.W < other.W {
			return -1
		}
		return 1
	}
	return 0
}

// Vec3 drops the W component.
func (v Vec4[T]) Vec3() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// ToFloat32 converts to a float32 vector.
func (v Vec4[T]) ToFloat32() Vec4[float32] {
	return Vec4[float32]{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// ToFloat64 converts to a float64 vector.
func (v Vec4[T]) ToFloat64() Vec4[float64] {
	return Vec4[float64]{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

// String formats the vector as comma-separated components.
func (v Vec4[T]) String() string {
	return fmt.Sprintf("%v,%v,%v,%v", v.X, v.Y, v.Z, v.W)
}
