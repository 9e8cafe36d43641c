package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vec2i is a 2D integer vector. The integer family carries only the
// arithmetic operations; magnitude and normalization live on the float
// types.
type Vec2i[T constraints.Signed] struct {
	X, Y T
}

// Add returns v + other.
func (v Vec2i[T]) Add(other Vec2i[T]) Vec2i[T] {
	return Vec2i[T]{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2i[T]) Sub(other Vec2i[T]) Vec2i[T] {
	return Vec2i[T]{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2i[T]) Scale(s T) Vec2i[T] {
	return Vec2i[T]{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2i[T]) Dot(other Vec2i[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar cross product.
func (v Vec2i[T]) Cross(other Vec2i[T]) T {
	return v.X*other.Y - v.Y*other.X
}

// Compare orders vectors lexicographically by X, then Y.
func (v Vec2i[T]) Compare(other Vec2i[T]) int {
	return v.ToFloat64().Compare(other.ToFloat64())
}

// ToFloat32 converts to a float32 vector.
func (v Vec2i[T]) ToFloat32() Vec2[float32] {
	return Vec2[float32]{float32(v.X), float32(v.Y)}
}

// ToFloat64 converts to a float64 vector.
func (v Vec2i[T]) ToFloat64() Vec2[float64] {
	return Vec2[float64]{float64(v.X), float64(v.Y)}
}

// String formats the vector as comma-separated components.
func (v Vec2i[T]) String() string {
	return fmt.Sprintf("%d,%d", v.X, v.Y)
}

// Vec3i is a 3D integer vector.
type Vec3i[T constraints.Signed] struct {
	X, Y, Z T
}

// Add returns v + other.
func (v Vec3i[T]) Add(other Vec3i[T]) Vec3i[T] {
	return Vec3i[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3i[T]) Sub(other Vec3i[T]) Vec3i[T] {
	return Vec3i[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3i[T]) Scale(s T) Vec3i[T] {
	return Vec3i[T]{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3i[T]) Dot(other Vec3i[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product.
func (v Vec3i[T]) Cross(other Vec3i[T]) Vec3i[T] {
	return Vec3i[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Compare orders vectors lexicographically by X, then Y, then Z.
func (v Vec3i[T]) Compare(other Vec3i[T]) int {
	return v.ToFloat64().Compare(other.ToFloat64())
}

// ToFloat32 converts to a float32 vector.
func (v Vec3i[T]) ToFloat32() Vec3[float32] {
	return Vec3[float32]{float32(v.X), float32(v.Y), float32(v.Z)}
}

// ToFloat64 converts to a float64 vector.
func (v Vec3i[T]) ToFloat64() Vec3[float64] {
	return Vec3[float64]{float64(v.X), float64(v.Y), float64(v.Z)}
}

// String formats the vector as comma-separated components.
func (v Vec3i[T]) String() string {
	return fmt.Sprintf("%d,%d,%d", v.X, v.Y, v.Z)
}
