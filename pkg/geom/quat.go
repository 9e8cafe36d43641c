package geom

import "fmt"

// Quat is a quaternion for 3D rotations. Components are stored as
// X, Y, Z, W where W is the scalar part. Rotation operations expect a
// unit quaternion but do not enforce it; use Normalized on demand.
type Quat[T Float] struct {
	X, Y, Z, W T
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity[T Float]() Quat[T] {
	return Quat[T]{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	half := angle / 2
	s := Sin(half)
	return Quat[T]{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: Cos(half),
	}
}

// QuatFromEuler creates a quaternion from Euler angles in radians:
// heading about Y, attitude about Z, bank about X, applied in that
// fixed order.
func QuatFromEuler[T Float](heading, attitude, bank T) Quat[T] {
	c1, s1 := Cos(heading/2), Sin(heading/2)
	c2, s2 := Cos(attitude/2), Sin(attitude/2)
	c3, s3 := Cos(bank/2), Sin(bank/2)

	return Quat[T]{
		X: s1*s2*c3 + c1*c2*s3,
		Y: s1*c2*c3 + c1*s2*s3,
		Z: c1*s2*c3 - s1*c2*s3,
		W: c1*c2*c3 - s1*s2*s3,
	}
}

// LengthSq returns the squared magnitude.
func (q Quat[T]) LengthSq() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Dot returns the dot product of two quaternions.
func (q Quat[T]) Dot(other Quat[T]) T {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Conjugate returns the conjugate (-x, -y, -z, w).
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse. The zero quaternion
// inverts to the zero quaternion.
func (q Quat[T]) Inverse() Quat[T] {
	s := SafeInv(q.LengthSq())
	c := q.Conjugate()
	return Quat[T]{X: c.X * s, Y: c.Y * s, Z: c.Z * s, W: c.W * s}
}

// Normalized returns a unit quaternion. A near-zero quaternion
// normalizes to the identity.
func (q Quat[T]) Normalized() Quat[T] {
	inv := SafeInvSqrt(1, q.LengthSq())
	if inv == 0 {
		return QuatIdentity[T]()
	}
	return Quat[T]{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Neg returns the componentwise negation, which represents the same
// rotation.
func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Mul combines two rotations: the receiver's rotation is applied
// first, the argument's second.
func (q Quat[T]) Mul(other Quat[T]) Quat[T] {
	return Quat[T]{
		X: other.W*q.X + other.X*q.W + other.Y*q.Z - other.Z*q.Y,
		Y: other.W*q.Y + other.Y*q.W + other.Z*q.X - other.X*q.Z,
		Z: other.W*q.Z + other.Z*q.W + other.X*q.Y - other.Y*q.X,
		W: other.W*q.W - other.X*q.X - other.Y*q.Y - other.Z*q.Z,
	}
}

// Rotate rotates v by the quaternion using the double-cross-product
// form: v + w*t + xyz x t, where t = 2 * (xyz x v).
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	xyz := Vec3[T]{q.X, q.Y, q.Z}
	t := xyz.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(xyz.Cross(t))
}

// Slerp spherically interpolates from q toward other by t, clamped to
// [0, 1], always along the shorter arc. Near-parallel quaternions fall
// back to a linear blend. The result is renormalized.
func (q Quat[T]) Slerp(other Quat[T], t T) Quat[T] {
	t = Clamp01(t)

	cosom := q.Dot(other)
	absCosom := Abs(cosom)

	var s0, s1 T
	if 1-absCosom > Epsilon {
		omega := SafeAcos(absCosom)
		sinom := Sin(omega)
		s0 = Sin((1-t)*omega) / sinom
		s1 = Sin(t*omega) / sinom
	} else {
		// Nearly parallel; sin(omega) is unstable.
		s0 = 1 - t
		s1 = t
	}
	if cosom < 0 {
		s1 = -s1
	}

	return Quat[T]{
		X: s0*q.X + s1*other.X,
		Y: s0*q.Y + s1*other.Y,
		Z: s0*q.Z + s1*other.Z,
		W: s0*q.W + s1*other.W,
	}.Normalized()
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat[T]) ToMat4() Mat4[T] {
	q = q.Normalized()

	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return Mat4[T]{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// QuatFromMat4 extracts a rotation quaternion from the rotation part of
// m using Shepperd's method: when the trace is positive the scalar part
// is derived first; otherwise the largest diagonal element picks which
// axis component to derive first, avoiding cancellation near 180
// degree rotations.
func QuatFromMat4[T Float](m Mat4[T]) Quat[T] {
	m00, m11, m22 := m.At(0, 0), m.At(1, 1), m.At(2, 2)
	trace := m00 + m11 + m22

	var q Quat[T]
	switch {
	case trace > 0:
		s := SafeSqrt(trace+1) * 2 // 4w
		q.W = s / 4
		q.X = (m.At(2, 1) - m.At(1, 2)) / s
		q.Y = (m.At(0, 2) - m.At(2, 0)) / s
		q.Z = (m.At(1, 0) - m.At(0, 1)) / s
	case m00 > m11 && m00 > m22:
		s := SafeSqrt(1+m00-m11-m22) * 2 // 4x
		q.W = (m.At(2, 1) - m.At(1, 2)) / s
		q.X = s / 4
		q.Y = (m.At(0, 1) + m.At(1, 0)) / s
		q.Z = (m.At(0, 2) + m.At(2, 0)) / s
	case m11 > m22:
		s := SafeSqrt(1+m11-m00-m22) * 2 // 4y
		q.W = (m.At(0, 2) - m.At(2, 0)) / s
		q.X = (m.At(0, 1) + m.At(1, 0)) / s
		q.Y = s / 4
		q.Z = (m.At(1, 2) + m.At(2, 1)) / s
	default:
		s := SafeSqrt(1+m22-m00-m11) * 2 // 4z
		q.W = (m.At(1, 0) - m.At(0, 1)) / s
		q.X = (m.At(0, 2) + m.At(2, 0)) / s
		q.Y = (m.At(1, 2) + m.At(2, 1)) / s
		q.Z = s / 4
	}
	return q
}

// AlmostEqual reports whether each component of q is within eps of the
// corresponding component of other.
func (q Quat[T]) AlmostEqual(other Quat[T], eps T) bool {
	return AlmostEqual(q.X, other.X, eps) &&
		AlmostEqual(q.Y, other.Y, eps) &&
		AlmostEqual(q.Z, other.Z, eps) &&
		AlmostEqual(q.W, other.W, eps)
}

// String formats the quaternion as comma-separated components.
func (q Quat[T]) String() string {
	return fmt.Sprintf("%v,%v,%v,%v", q.X, q.Y, q.Z, q.W)
}
