package geom

import (
	"errors"
	"fmt"
	gomath "math"
)

// ErrParallel is returned by Orthonormal when the two input vectors are
// parallel and no orthonormal basis can be derived from them.
var ErrParallel = errors.New("geom: vectors are parallel")

// Vec3 is a 3D vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 constructs a Vec3 from components.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Splat3 constructs a Vec3 with all components set to s.
func Splat3[T Float](s T) Vec3[T] {
	return Vec3[T]{s, s, s}
}

// At returns component i (0 = X, 1 = Y, 2 = Z). Panics when i is out of
// range.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("geom: Vec3 index %d out of range [0,3)", i))
}

// SetAt sets component i. Panics when i is out of range.
func (v *Vec3[T]) SetAt(i int, s T) {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	default:
		panic(fmt.Sprintf("geom: Vec3 index %d out of range [0,3)", i))
	}
}

// Add returns v + other.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the component-wise product.
func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div returns the component-wise quotient.
func (v Vec3[T]) Div(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// AbsDot returns the absolute value of the dot product.
func (v Vec3[T]) AbsDot(other Vec3[T]) T {
	return Abs(v.Dot(other))
}

// Cross returns the right-handed cross product.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSq returns the squared magnitude.
func (v Vec3[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3[T]) Length() T {
	return SafeSqrt(v.LengthSq())
}

// Normalized returns a unit vector. The zero vector normalizes to the
// zero vector, not NaN.
func (v Vec3[T]) Normalized() Vec3[T] {
	return v.Scale(SafeInvSqrt(1, v.LengthSq()))
}

// Normalize normalizes v in place.
func (v *Vec3[T]) Normalize() {
	*v = v.Normalized()
}

// IsZero reports whether all components are exactly zero.
func (v Vec3[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Project returns the projection of other onto v. No zero-length guard:
// projecting onto the zero vector yields NaN components.
func (v Vec3[T]) Project(other Vec3[T]) Vec3[T] {
	return v.Scale(v.Dot(other) / v.LengthSq())
}

// Reflect returns v reflected about the unit normal n.
func (v Vec3[T]) Reflect(n Vec3[T]) Vec3[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract returns v refracted through the unit normal n with the given
// refraction-index ratio. Returns the zero vector and false on total
// internal reflection.
func (v Vec3[T]) Refract(n Vec3[T], eta T) (Vec3[T], bool) {
	ni := n.Dot(v)
	k := 1 - eta*eta*(1-ni*ni)
	if k < 0 {
		return Vec3[T]{}, false
	}
	return v.Scale(eta).Sub(n.Scale(eta*ni + SafeSqrt(k))), true
}

// Orthonormal derives a right-handed orthonormal basis from a and b:
// x along a, z along a cross b, y completing the triple. Returns
// ErrParallel when a and b are parallel, since no basis exists.
func Orthonormal[T Float](a, b Vec3[T]) (x, y, z Vec3[T], err error) {
	x = a.Normalized()
	c := a.Cross(b)
	if c.LengthSq() <= Epsilon*Epsilon {
		return Vec3[T]{}, Vec3[T]{}, Vec3[T]{}, ErrParallel
	}
	z = c.Normalized()
	y = z.Cross(x)
	return x, y, z, nil
}

// Lerp linearly interpolates toward other by t, clamped to [0, 1].
func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	t = Clamp01(t)
	return Vec3[T]{
		LerpScalar(v.X, other.X, t),
		LerpScalar(v.Y, other.Y, t),
		LerpScalar(v.Z, other.Z, t),
	}
}

// Slerp spherically interpolates from v toward other by t, clamped to
// [0, 1]. If either operand has zero magnitude the zero vector is
// returned.
func (v Vec3[T]) Slerp(other Vec3[T], t T) Vec3[T] {
	t = Clamp01(t)
	if t == 0 || v == other {
		return v
	}
	if t == 1 {
		return other
	}
	lv, lo := v.Length(), other.Length()
	if lv == 0 || lo == 0 {
		return Vec3[T]{}
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
func (v Vec3[T]) Rounded(digits int) Vec3[T] {
	return Vec3[T]{roundTo(v.X, digits), roundTo(v.Y, digits), roundTo(v.Z, digits)}
}

// Round rounds v in place.
func (v *Vec3[T]) Round(digits int) {
	*v = v.Rounded(digits)
}

// Floor replaces each component with its floor, in place.
func (v *Vec3[T]) Floor() {
	v.X = T(gomath.Floor(float64(v.X)))
	v.Y = T(gomath.Floor(float64(v.Y)))
	v.Z = T(gomath.Floor(float64(v.Z)))
}

// Ceil replaces each component with its ceiling, in place.
func (v *Vec3[T]) Ceil() {
	v.X = T(gomath.Ceil(float64(v.X)))
	v.Y = T(gomath.Ceil(float64(v.Y)))
	v.Z = T(gomath.Ceil(float64(v.Z)))
}

// IsFinite reports whether every component is finite.
func (v Vec3[T]) IsFinite() bool {
	return IsFiniteScalar(v.X) && IsFiniteScalar(v.Y) && IsFiniteScalar(v.Z)
}

// IsNaN reports whether any component is NaN.
func (v Vec3[T]) IsNaN() bool {
	return IsNaNScalar(v.X) || IsNaNScalar(v.Y) || IsNaNScalar(v.Z)
}

// Finite returns v with any non-finite component replaced by zero.
func (v Vec3[T]) Finite() Vec3[T] {
	return Vec3[T]{finiteOrZero(v.X), finiteOrZero(v.Y), finiteOrZero(v.Z)}
}

// NoNaN returns v with any NaN component replaced by zero.
func (v Vec3[T]) NoNaN() Vec3[T] {
	return Vec3[T]{nanToZero(v.X), nanToZero(v.Y), nanToZero(v.Z)}
}

// AlmostEqual reports whether each component of v is within eps of the
// corresponding component of other.
func (v Vec3[T]) AlmostEqual(other Vec3[T], eps T) bool {
	return AlmostEqual(v.X, other.X, eps) &&
		AlmostEqual(v.Y, other.Y, eps) &&
		AlmostEqual(v.Z, other.Z, eps)
}

// Compare orders vectors lexicographically by X, then Y, then Z.
// Returns -1, 0, or 1, suitable for sorted containers.
func (v Vec3[T]) Compare(other Vec3[T]) int {
	if c := (Vec2[T]{v.X, v.Y}).Compare(Vec2[T]{other.X, other.Y}); c != 0 {
		return c
	}
	if v.Z != other.Z {
		if v.Z < other.Z {
			return -1
		}
		return 1
	}
	return 0
}

// Point returns the components as a Point3.
func (v Vec3[T]) Point() Point3[T] {
	return Point3[T]{v.X, v.Y, v.Z}
}

// ToFloat32 converts to a float32 vector.
func (v Vec3[T]) ToFloat32() Vec3[float32] {
	return Vec3[float32]{float32(v.X), float32(v.Y), float32(v.Z)}
}

// ToFloat64 converts to a float64 vector.
func (v Vec3[T]) ToFloat64() Vec3[float64] {
	return Vec3[float64]{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vec2 drops the Z component.
func (v Vec3[T]) Vec2() Vec2[T] {
	return Vec2[T]{v.X, v.Y}
}

// Vec4 extends v with a W component.
func (v Vec3[T]) Vec4(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// String formats the vector as comma-separated components.
func (v Vec3[T]) String() string {
	return fmt.Sprintf("%v,%v,%v", v.X, v.Y, v.Z)
}

// BLerp3 bilinearly interpolates between four corner values: c00 at
// (0,0), c10 at (1,0), c01 at (0,1), c11 at (1,1). ax and ay are clamped
// to [0, 1].
func BLerp3[T Float](c00, c10, c01, c11 Vec3[T], ax, ay T) Vec3[T] {
	ax, ay = Clamp01(ax), Clamp01(ay)
	bottom := c00.Lerp(c10, ax)
	top := c01.Lerp(c11, ax)
	return bottom.Lerp(top, ay)
}
