package geom

import "fmt"

// Mat2 is a 2x2 matrix stored flat in column-major order:
// index = row + col*2.
type Mat2[T Float] [4]T

// Identity2 returns an identity matrix.
func Identity2[T Float]() Mat2[T] {
	return Mat2[T]{
		1, 0,
		0, 1,
	}
}

// At returns the element at (row, col). Panics when either index is out
// of range.
func (m Mat2[T]) At(row, col int) T {
	if row < 0 || row >= 2 || col < 0 || col >= 2 {
		panic(fmt.Sprintf("geom: Mat2 index (%d,%d) out of range", row, col))
	}
	return m[row+col*2]
}

// Set sets the element at (row, col). Panics when either index is out
// of range.
func (m *Mat2[T]) Set(row, col int, v T) {
	if row < 0 || row >= 2 || col < 0 || col >= 2 {
		panic(fmt.Sprintf("geom: Mat2 index (%d,%d) out of range", row, col))
	}
	m[row+col*2] = v
}

// Transpose returns the transposed matrix.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{
		m[0], m[2],
		m[1], m[3],
	}
}

// Determinant returns the determinant.
func (m Mat2[T]) Determinant() T {
	return m[0]*m[3] - m[1]*m[2]
}

// Adjoint returns the adjugate matrix.
func (m Mat2[T]) Adjoint() Mat2[T] {
	return Mat2[T]{
		m[3], -m[1],
		-m[2], m[0],
	}
}

// Inverse returns the inverse. A singular matrix yields the zero
// matrix.
func (m Mat2[T]) Inverse() Mat2[T] {
	return m.Adjoint().Scale(SafeInv(m.Determinant()))
}

// TryInverse returns the inverse and true, or the zero matrix and false
// when the determinant is zero within Epsilon.
func (m Mat2[T]) TryInverse() (Mat2[T], bool) {
	det := m.Determinant()
	if Abs(det) <= Epsilon {
		return Mat2[T]{}, false
	}
	return m.Adjoint().Scale(1 / det), true
}

// Scale returns the matrix with every element multiplied by s.
func (m Mat2[T]) Scale(s T) Mat2[T] {
	return Mat2[T]{m[0] * s, m[1] * s, m[2] * s, m[3] * s}
}

// Mul returns the matrix product m * other.
func (m Mat2[T]) Mul(other Mat2[T]) Mat2[T] {
	var result Mat2[T]
	for col := 0; col < 2; col++ {
		for row := 0; row < 2; row++ {
			result[col*2+row] =
				m[0*2+row]*other[col*2+0] +
					m[1*2+row]*other[col*2+1]
		}
	}
	return result
}

// MulVec2 returns the matrix-vector product.
func (m Mat2[T]) MulVec2(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m[0]*v.X + m[2]*v.Y,
		m[1]*v.X + m[3]*v.Y,
	}
}

// Rotation2 returns a counter-clockwise rotation matrix. angle is in
// radians.
func Rotation2[T Float](angle T) Mat2[T] {
	c, s := Cos(angle), Sin(angle)
	return Mat2[T]{
		c, s,
		-s, c,
	}
}

// AlmostEqual reports whether each element of m is within eps of the
// corresponding element of other.
func (m Mat2[T]) AlmostEqual(other Mat2[T], eps T) bool {
	for i := range m {
		if !AlmostEqual(m[i], other[i], eps) {
			return false
		}
	}
	return true
}
