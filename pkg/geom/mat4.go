package geom

import "fmt"

// Mat4 is a 4x4 matrix stored flat in column-major order:
// index = row + col*4 (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4[T Float] [16]T

// Identity4 returns an identity matrix.
func Identity4[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at (row, col). Panics when either index is out
// of range.
func (m Mat4[T]) At(row, col int) T {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		panic(fmt.Sprintf("geom: Mat4 index (%d,%d) out of range", row, col))
	}
	return m[row+col*4]
}

// Set sets the element at (row, col). Panics when either index is out
// of range.
func (m *Mat4[T]) Set(row, col int, v T) {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		panic(fmt.Sprintf("geom: Mat4 index (%d,%d) out of range", row, col))
	}
	m[row+col*4] = v
}

// Transpose returns the transposed matrix.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Minor returns the determinant of the 3x3 submatrix obtained by
// removing the given row and column.
func (m Mat4[T]) Minor(row, col int) T {
	var sub Mat3[T]
	i := 0
	for c := 0; c < 4; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 4; r++ {
			if r == row {
				continue
			}
			sub[i] = m.At(r, c)
			i++
		}
	}
	return sub.Determinant()
}

// Cofactor returns the signed minor at (row, col).
func (m Mat4[T]) Cofactor(row, col int) T {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant via cofactor expansion along the
// first row using 3x3 minors.
func (m Mat4[T]) Determinant() T {
	return m.At(0, 0)*m.Cofactor(0, 0) +
		m.At(0, 1)*m.Cofactor(0, 1) +
		m.At(0, 2)*m.Cofactor(0, 2) +
		m.At(0, 3)*m.Cofactor(0, 3)
}

// Adjoint returns the adjugate matrix (transpose of the cofactor
// matrix).
func (m Mat4[T]) Adjoint() Mat4[T] {
	var adj Mat4[T]
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			adj.Set(row, col, m.Cofactor(col, row))
		}
	}
	return adj
}

// Inverse returns the inverse. A singular matrix yields the zero
// matrix.
func (m Mat4[T]) Inverse() Mat4[T] {
	return m.Adjoint().Scale(SafeInv(m.Determinant()))
}

// TryInverse returns the inverse and true, or the zero matrix and false
// when the determinant is zero within Epsilon.
func (m Mat4[T]) TryInverse() (Mat4[T], bool) {
	det := m.Determinant()
	if Abs(det) <= Epsilon {
		return Mat4[T]{}, false
	}
	return m.Adjoint().Scale(1 / det), true
}

// Scale returns the matrix with every element multiplied by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	var result Mat4[T]
	for i := range m {
		result[i] = m[i] * s
	}
	return result
}

// Mul returns the matrix product m * other.
func (m Mat4[T]) Mul(other Mat4[T]) Mat4[T] {
	var result Mat4[T]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// MulVec4 returns the matrix-vector product.
func (m Mat4[T]) MulVec4(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulVec3 transforms a 3D direction: the missing component is
// zero-extended (w=0), so the translation column is ignored.
func (m Mat4[T]) MulVec3(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// MulPoint3 transforms a 3D point: the missing component is extended
// with w=1, so the translation column applies. The result's w is
// dropped without a perspective divide; use MulHomo for projective
// transforms.
func (m Mat4[T]) MulPoint3(p Point3[T]) Point3[T] {
	return Point3[T]{
		m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// MulHomo transforms a homogeneous point, carrying the weight through.
func (m Mat4[T]) MulHomo(h HomoPoint3[T]) HomoPoint3[T] {
	v := m.MulVec4(h.Vec4())
	return HomoPoint3[T]{v.X, v.Y, v.Z, v.W}
}

// ProjectPoint3 transforms a point through a projective matrix and
// performs the homogeneous divide (with the w=0 fallback of
// HomoPoint3.Cartesian).
func (m Mat4[T]) ProjectPoint3(p Point3[T]) Point3[T] {
	return m.MulHomo(p.Homo(1)).Cartesian()
}

// Mat3 returns the upper-left 3x3 portion of the matrix.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Mat4FromMat3 embeds a 3x3 matrix into the upper-left of an identity
// Mat4.
func Mat4FromMat3[T Float](m3 Mat3[T]) Mat4[T] {
	return Mat4[T]{
		m3[0], m3[1], m3[2], 0,
		m3[3], m3[4], m3[5], 0,
		m3[6], m3[7], m3[8], 0,
		0, 0, 0, 1,
	}
}

// HasScale reports whether the transform changes the squared length of
// any unit basis vector by more than Epsilon.
func (m Mat4[T]) HasScale() bool {
	for i := 0; i < 3; i++ {
		var axis Vec3[T]
		axis.SetAt(i, 1)
		if Abs(m.MulVec3(axis).LengthSq()-1) > Epsilon {
			return true
		}
	}
	return false
}

// AlmostEqual reports whether each element of m is within eps of the
// corresponding element of other.
func (m Mat4[T]) AlmostEqual(other Mat4[T], eps T) bool {
	for i := range m {
		if !AlmostEqual(m[i], other[i], eps) {
			return false
		}
	}
	return true
}

// Translate returns a translation matrix.
func Translate[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// ScaleXYZ returns a scale matrix.
func ScaleXYZ[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// ScaleUniform returns a uniform scale matrix.
func ScaleUniform[T Float](s T) Mat4[T] {
	return ScaleXYZ(s, s, s)
}

// RotateX returns a rotation matrix around the X axis. angle is in
// radians.
func RotateX[T Float](angle T) Mat4[T] {
	c, s := Cos(angle), Sin(angle)
	return Mat4[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis. angle is in
// radians.
func RotateY[T Float](angle T) Mat4[T] {
	c, s := Cos(angle), Sin(angle)
	return Mat4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis. angle is in
// radians.
func RotateZ[T Float](angle T) Mat4[T] {
	c, s := Cos(angle), Sin(angle)
	return Mat4[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis returns a rotation matrix around an arbitrary axis via
// Rodrigues' formula. axis should be normalized, angle is in radians.
func RotateAxis[T Float](axis Vec3[T], angle T) Mat4[T] {
	c, s := Cos(angle), Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4[T]{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection matrix. fovY is in
// radians, aspect is width/height.
func Perspective[T Float](fovY, aspect, near, far T) Mat4[T] {
	f := 1 / Tan(fovY/2)
	nf := 1 / (near - far)

	return Mat4[T]{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Ortho returns an orthographic projection matrix. left, right, bottom,
// top define the view frustum boundaries; near and far the depth range.
func Ortho[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Mat4[T]{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// LookAt returns a right-handed view matrix looking from eye toward
// target: zaxis = normalize(eye - target), xaxis = normalize(up x
// zaxis), yaxis = zaxis x xaxis.
func LookAt[T Float](eye, target Point3[T], up Vec3[T]) Mat4[T] {
	zaxis := eye.Sub(target).Normalized()
	xaxis := up.Cross(zaxis).Normalized()
	yaxis := zaxis.Cross(xaxis)
	eyeVec := eye.Vec()

	return Mat4[T]{
		xaxis.X, yaxis.X, zaxis.X, 0,
		xaxis.Y, yaxis.Y, zaxis.Y, 0,
		xaxis.Z, yaxis.Z, zaxis.Z, 0,
		-xaxis.Dot(eyeVec), -yaxis.Dot(eyeVec), -zaxis.Dot(eyeVec), 1,
	}
}
