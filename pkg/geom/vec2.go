package geom

import (
	"fmt"
	gomath "math"
)

// Vec2 is a 2D vector.
type Vec2[T Float] struct {
	X, Y T
}

// V2 constructs a Vec2 from components.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Splat2 constructs a Vec2 with both components set to s.
func Splat2[T Float](s T) Vec2[T] {
	return Vec2[T]{s, s}
}

// At returns component i (0 = X, 1 = Y). Panics when i is out of range.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("geom: Vec2 index %d out of range [0,2)", i))
}

// SetAt sets component i. Panics when i is out of range.
func (v *Vec2[T]) SetAt(i int, s T) {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	default:
		panic(fmt.Sprintf("geom: Vec2 index %d out of range [0,2)", i))
	}
}

// Add returns v + other.
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - other.X, v.Y - other.Y}
}

// Mul returns the component-wise product.
func (v Vec2[T]) Mul(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X * other.X, v.Y * other.Y}
}

// Div returns the component-wise quotient.
func (v Vec2[T]) Div(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X / other.X, v.Y / other.Y}
}

// Scale returns v * s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v.X * s, v.Y * s}
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

// Dot returns the dot product.
func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar cross product: the Z component of the 3D
// cross product of the two vectors lifted into the XY plane.
func (v Vec2[T]) Cross(other Vec2[T]) T {
	return v.X*other.Y - v.Y*other.X
}

// LengthSq returns the squared magnitude.
func (v Vec2[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v Vec2[T]) Length() T {
	return SafeSqrt(v.LengthSq())
}

// Normalized returns a unit vector. The zero vector normalizes to the
// zero vector, not NaN.
func (v Vec2[T]) Normalized() Vec2[T] {
	return v.Scale(SafeInvSqrt(1, v.LengthSq()))
}

// Normalize normalizes v in place.
func (v *Vec2[T]) Normalize() {
	*v = v.Normalized()
}

// IsZero reports whether all components are exactly zero.
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Project returns the projection of other onto v. No zero-length guard:
// projecting onto the zero vector yields NaN components.
func (v Vec2[T]) Project(other Vec2[T]) Vec2[T] {
	return v.Scale(v.Dot(other) / v.LengthSq())
}

// Reflect returns v reflected about the unit normal n.
func (v Vec2[T]) Reflect(n Vec2[T]) Vec2[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract returns v refracted through the unit normal n with the given
// refraction-index ratio. Returns the zero vector and false on total
// internal reflection.
func (v Vec2[T]) Refract(n Vec2[T], eta T) (Vec2[T], bool) {
	ni := n.Dot(v)
	k := 1 - eta*eta*(1-ni*ni)
	if k < 0 {
		return Vec2[T]{}, false
	}
	return v.Scale(eta).Sub(n.Scale(eta*ni + SafeSqrt(k))), true
}

// Lerp linearly interpolates toward other by t, clamped to [0, 1].
func (v Vec2[T]) Lerp(other Vec2[T], t T) Vec2[T] {
	t = Clamp01(t)
	return Vec2[T]{
		LerpScalar(v.X, other.X, t),
		LerpScalar(v.Y, other.Y, t),
	}
}

// Slerp spherically interpolates from v toward other by t, clamped to
// [0, 1]. If either operand has zero magnitude the zero vector is
// returned.
func (v Vec2[T]) Slerp(other Vec2[T], t T) Vec2[T] {
	t = Clamp01(t)
	if t == 0 || v == other {
		return v
	}
	if t == 1 {
		return other
	}
	lv, lo := v.Length(), other.Length()
	if lv == 0 || lo == 0 {
		return Vec2[T]{}
	}
	omega := SafeAcos(v.Dot(other) / (lv * lo))
	sinOmega := Sin(omega)
	if sinOmega == 0 {
		return v.Lerp(other, t)
	}
	a := Sin((1 - t) * omega) / sinOmega
	b := Sin(t*omega) / sinOmega
	return v.Scale(a).Add(other.Scale(b))
}

// Rounded returns v with each component rounded to the given number of
// decimal digits.
func (v Vec2[T]) Rounded(digits int) Vec2[T] {
	return Vec2[T]{roundTo(v.X, digits), roundTo(v.Y, digits)}
}

// Round rounds v in place.
func (v *Vec2[T]) Round(digits int) {
	*v = v.Rounded(digits)
}

// Floor replaces each component with its floor, in place.
func (v *Vec2[T]) Floor() {
	v.X = T(gomath.Floor(float64(v.X)))
	v.Y = T(gomath.Floor(float64(v.Y)))
}

// Ceil replaces each component with its ceiling, in place.
func (v *Vec2[T]) Ceil() {
	v.X = T(gomath.Ceil(float64(v.X)))
	v.Y = T(gomath.Ceil(float64(v.Y)))
}

// IsFinite reports whether every component is finite.
func (v Vec2[T]) IsFinite() bool {
	return IsFiniteScalar(v.X) && IsFiniteScalar(v.Y)
}

// IsNaN reports whether any component is NaN.
func (v Vec2[T]) IsNaN() bool {
	return IsNaNScalar(v.X) || IsNaNScalar(v.Y)
}

// Finite returns v with any non-finite component replaced by zero.
func (v Vec2[T]) Finite() Vec2[T] {
	return Vec2[T]{finiteOrZero(v.X), finiteOrZero(v.Y)}
}

// NoNaN returns v with any NaN component replaced by zero.
func (v Vec2[T]) NoNaN() Vec2[T] {
	return Vec2[T]{nanToZero(v.X), nanToZero(v.Y)}
}

// AlmostEqual reports whether each component of v is within eps of the
// corresponding component of other.
func (v Vec2[T]) AlmostEqual(other Vec2[T], eps T) bool {
	return AlmostEqual(v.X, other.X, eps) && AlmostEqual(v.Y, other.Y, eps)
}

// Compare orders vectors lexicographically by X, then Y. Returns -1, 0,
// or 1, suitable for sorted containers.
func (v Vec2[T]) Compare(other Vec2[T]) int {
	if v.X != other.X {
		if v.X < other.X {
			return -1
		}
		return 1
	}
	if v.Y != other.Y {
		if v.Y < other.Y {
			return -1
		}
		return 1
	}
	return 0
}

// Point returns the components as a Point2.
func (v Vec2[T]) Point() Point2[T] {
	return Point2[T]{v.X, v.Y}
}

// ToFloat32 converts to a float32 vector.
func (v Vec2[T]) ToFloat32() Vec2[float32] {
	return Vec2[float32]{float32(v.X), float32(v.Y)}
}

// ToFloat64 converts to a float64 vector.
func (v Vec2[T]) ToFloat64() Vec2[float64] {
	return Vec2[float64]{float64(v.X), float64(v.Y)}
}

// Vec3 extends v with a Z component.
func (v Vec2[T]) Vec3(z T) Vec3[T] {
	return Vec3[T]{v.X, v.Y, z}
}

// String formats the vector as comma-separated components.
func (v Vec2[T]) String() string {
	return fmt.Sprintf("%v,%v", v.X, v.Y)
}

// BLerp2 bilinearly interpolates between four corner values: c00 at
// (0,0), c10 at (1,0), c01 at (0,1), c11 at (1,1). ax and ay are clamped
// to [0, 1].
func BLerp2[T Float](c00, c10, c01, c11 Vec2[T], ax, ay T) Vec2[T] {
	ax, ay = Clamp01(ax), Clamp01(ay)
	bottom := c00.Lerp(c10, ax)
	top := c01.Lerp(c11, ax)
	return bottom.Lerp(top, ay)
}

func finiteOrZero[T Float](x T) T {
	if !IsFiniteScalar(x) {
		return 0
	}
	return x
}

func nanToZero[T Float](x T) T {
	if IsNaNScalar(x) {
		return 0
	}
	return x
}
