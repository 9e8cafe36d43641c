package geom

import "fmt"

// Mat3 is a 3x3 matrix stored flat in column-major order:
// index = row + col*3. It doubles as the homogeneous transform for 2D
// points and vectors.
type Mat3[T Float] [9]T

// Identity3 returns an identity matrix.
func Identity3[T Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element at (row, col). Panics when either index is out
// of range.
func (m Mat3[T]) At(row, col int) T {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		panic(fmt.Sprintf("geom: Mat3 index (%d,%d) out of range", row, col))
	}
	return m[row+col*3]
}

// Set sets the element at (row, col). Panics when either index is out
// of range.
func (m *Mat3[T]) Set(row, col int, v T) {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		panic(fmt.Sprintf("geom: Mat3 index (%d,%d) out of range", row, col))
	}
	m[row+col*3] = v
}

// Transpose returns the transposed matrix.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Minor returns the determinant of the 2x2 submatrix obtained by
// removing the given row and column.
func (m Mat3[T]) Minor(row, col int) T {
	var sub [4]T
	i := 0
	for c := 0; c < 3; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 3; r++ {
			if r == row {
				continue
			}
			sub[i] = m.At(r, c)
			i++
		}
	}
	return sub[0]*sub[3] - sub[1]*sub[2]
}

// Cofactor returns the signed minor at (row, col).
func (m Mat3[T]) Cofactor(row, col int) T {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant via cofactor expansion along the
// first row.
func (m Mat3[T]) Determinant() T {
	return m.At(0, 0)*m.Cofactor(0, 0) +
		m.At(0, 1)*m.Cofactor(0, 1) +
		m.At(0, 2)*m.Cofactor(0, 2)
}

// Adjoint returns the adjugate matrix (transpose of the cofactor
// matrix).
func (m Mat3[T]) Adjoint() Mat3[T] {
	var adj Mat3[T]
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			adj.Set(row, col, m.Cofactor(col, row))
		}
	}
	return adj
}

// Inverse returns the inverse. A singular matrix yields the zero
// matrix.
func (m Mat3[T]) Inverse() Mat3[T] {
	return m.Adjoint().Scale(SafeInv(m.Determinant()))
}

// TryInverse returns the inverse and true, or the zero matrix and false
// when the determinant is zero within Epsilon.
func (m Mat3[T]) TryInverse() (Mat3[T], bool) {
	det := m.Determinant()
	if Abs(det) <= Epsilon {
		return Mat3[T]{}, false
	}
	return m.Adjoint().Scale(1 / det), true
}

// Scale returns the matrix with every element multiplied by s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	var result Mat3[T]
	for i := range m {
		result[i] = m[i] * s
	}
	return result
}

// Mul returns the matrix product m * other.
func (m Mat3[T]) Mul(other Mat3[T]) Mat3[T] {
	var result Mat3[T]
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			result[col*3+row] =
				m[0*3+row]*other[col*3+0] +
					m[1*3+row]*other[col*3+1] +
					m[2*3+row]*other[col*3+2]
		}
	}
	return result
}

// MulVec3 returns the matrix-vector product.
func (m Mat3[T]) MulVec3(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// MulVec2 transforms a 2D direction: the missing component is
// zero-extended, so the translation column is ignored.
func (m Mat3[T]) MulVec2(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m[0]*v.X + m[3]*v.Y,
		m[1]*v.X + m[4]*v.Y,
	}
}

// MulPoint2 transforms a 2D point: the missing component is extended
// with w=1, so the translation column applies.
func (m Mat3[T]) MulPoint2(p Point2[T]) Point2[T] {
	return Point2[T]{
		m[0]*p.X + m[3]*p.Y + m[6],
		m[1]*p.X + m[4]*p.Y + m[7],
	}
}

// Translate2 returns a 2D homogeneous translation matrix.
func Translate2[T Float](x, y T) Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

// Scale2 returns a 2D homogeneous scale matrix.
func Scale2[T Float](x, y T) Mat3[T] {
	return Mat3[T]{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Rotate2 returns a 2D homogeneous counter-clockwise rotation matrix.
// angle is in radians.
func Rotate2[T Float](angle T) Mat3[T] {
	c, s := Cos(angle), Sin(angle)
	return Mat3[T]{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// AlmostEqual reports whether each element of m is within eps of the
// corresponding element of other.
func (m Mat3[T]) AlmostEqual(other Mat3[T], eps T) bool {
	for i := range m {
		if !AlmostEqual(m[i], other[i], eps) {
			return false
		}
	}
	return true
}
