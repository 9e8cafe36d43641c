package geom

import "fmt"

// Point2 is a 2D point. Points and vectors are distinct types: points
// translate under affine transforms, vectors do not.
type Point2[T Float] struct {
	X, Y T
}

// Pt2 constructs a Point2 from components.
func Pt2[T Float](x, y T) Point2[T] {
	return Point2[T]{x, y}
}

// At returns component i. Panics when i is out of range.
func (p Point2[T]) At(i int) T {
	return p.Vec().At(i)
}

// SetAt sets component i. Panics when i is out of range.
func (p *Point2[T]) SetAt(i int, s T) {
	v := p.Vec()
	v.SetAt(i, s)
	*p = v.Point()
}

// Add returns the point translated by v.
func (p Point2[T]) Add(v Vec2[T]) Point2[T] {
	return Point2[T]{p.X + v.X, p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Point2[T]) Sub(other Point2[T]) Vec2[T] {
	return Vec2[T]{p.X - other.X, p.Y - other.Y}
}

// DistanceSqTo returns the squared distance to other.
func (p Point2[T]) DistanceSqTo(other Point2[T]) T {
	return p.Sub(other).LengthSq()
}

// DistanceTo returns the distance to other.
func (p Point2[T]) DistanceTo(other Point2[T]) T {
	return p.Sub(other).Length()
}

// Lerp interpolates toward other by t, clamped to [0, 1].
func (p Point2[T]) Lerp(other Point2[T], t T) Point2[T] {
	return p.Vec().Lerp(other.Vec(), t).Point()
}

// Midpoint returns the point halfway between p and other.
func (p Point2[T]) Midpoint(other Point2[T]) Point2[T] {
	return p.Lerp(other, 0.5)
}

// Rounded returns p with each component rounded to the given number of
// decimal digits.
func (p Point2[T]) Rounded(digits int) Point2[T] {
	return p.Vec().Rounded(digits).Point()
}

// Round rounds p in place.
func (p *Point2[T]) Round(digits int) {
	*p = p.Rounded(digits)
}

// Floor replaces each component with its floor, in place.
func (p *Point2[T]) Floor() {
	v := p.Vec()
	v.Floor()
	*p = v.Point()
}

// Ceil replaces each component with its ceiling, in place.
func (p *Point2[T]) Ceil() {
	v := p.Vec()
	v.Ceil()
	*p = v.Point()
}

// IsFinite reports whether every component is finite.
func (p Point2[T]) IsFinite() bool { return p.Vec().IsFinite() }

// IsNaN reports whether any component is NaN.
func (p Point2[T]) IsNaN() bool { return p.Vec().IsNaN() }

// Finite returns p with any non-finite component replaced by zero.
func (p Point2[T]) Finite() Point2[T] { return p.Vec().Finite().Point() }

// NoNaN returns p with any NaN component replaced by zero.
func (p Point2[T]) NoNaN() Point2[T] { return p.Vec().NoNaN().Point() }

// AlmostEqual reports whether each component of p is within eps of the
// corresponding component of other.
func (p Point2[T]) AlmostEqual(other Point2[T], eps T) bool {
	return p.Vec().AlmostEqual(other.Vec(), eps)
}

// Compare orders points lexicographically by X, then Y.
func (p Point2[T]) Compare(other Point2[T]) int {
	return p.Vec().Compare(other.Vec())
}

// Vec returns the components as a Vec2.
func (p Point2[T]) Vec() Vec2[T] {
	return Vec2[T]{p.X, p.Y}
}

// ToFloat32 converts to a float32 point.
func (p Point2[T]) ToFloat32() Point2[float32] {
	return Point2[float32]{float32(p.X), float32(p.Y)}
}

// ToFloat64 converts to a float64 point.
func (p Point2[T]) ToFloat64() Point2[float64] {
	return Point2[float64]{float64(p.X), float64(p.Y)}
}

// Point3 extends p with a Z component.
func (p Point2[T]) Point3(z T) Point3[T] {
	return Point3[T]{p.X, p.Y, z}
}

// String formats the point as comma-separated components.
func (p Point2[T]) String() string {
	return fmt.Sprintf("%v,%v", p.X, p.Y)
}

// Point3 is a 3D point.
type Point3[T Float] struct {
	X, Y, Z T
}

// Pt3 constructs a Point3 from components.
func Pt3[T Float](x, y, z T) Point3[T] {
	return Point3[T]{x, y, z}
}

// At returns component i. Panics when i is out of range.
func (p Point3[T]) At(i int) T {
	return p.Vec().At(i)
}

// SetAt sets component i. Panics when i is out of range.
func (p *Point3[T]) SetAt(i int, s T) {
	v := p.Vec()
	v.SetAt(i, s)
	*p = v.Point()
}

// Add returns the point translated by v.
func (p Point3[T]) Add(v Vec3[T]) Point3[T] {
	return Point3[T]{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from other to p.
func (p Point3[T]) Sub(other Point3[T]) Vec3[T] {
	return Vec3[T]{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// DistanceSqTo returns the squared distance to other.
func (p Point3[T]) DistanceSqTo(other Point3[T]) T {
	return p.Sub(other).LengthSq()
}

// DistanceTo returns the distance to other.
func (p Point3[T]) DistanceTo(other Point3[T]) T {
	return p.Sub(other).Length()
}

// Lerp interpolates toward other by t, clamped to [0, 1].
func (p Point3[T]) Lerp(other Point3[T], t T) Point3[T] {
	return p.Vec().Lerp(other.Vec(), t).Point()
}

// Midpoint returns the point halfway between p and other.
func (p Point3[T]) Midpoint(other Point3[T]) Point3[T] {
	return p.Lerp(other, 0.5)
}

// Rounded returns p with each component rounded to the given number of
// decimal digits.
func (p Point3[T]) Rounded(digits int) Point3[T] {
	return p.Vec().Rounded(digits).Point()
}

// Round rounds p in place.
func (p *Point3[T]) Round(digits int) {
	*p = p.Rounded(digits)
}

// Floor replaces each component with its floor, in place.
func (p *Point3[T]) Floor() {
	v := p.Vec()
	v.Floor()
	*p = v.Point()
}

// Ceil replaces each component with its ceiling, in place.
func (p *Point3[T]) Ceil() {
	v := p.Vec()
	v.Ceil()
	*p = v.Point()
}

// IsFinite reports whether every component is finite.
func (p Point3[T]) IsFinite() bool { return p.Vec().IsFinite() }

// IsNaN reports whether any component is NaN.
func (p Point3[T]) IsNaN() bool { return p.Vec().IsNaN() }

// Finite returns p with any non-finite component replaced by zero.
func (p Point3[T]) Finite() Point3[T] { return p.Vec().Finite().Point() }

// NoNaN returns p with any NaN component replaced by zero.
func (p Point3[T]) NoNaN() Point3[T] { return p.Vec().NoNaN().Point() }

// AlmostEqual reports whether each component of p is within eps of the
// corresponding component of other.
func (p Point3[T]) AlmostEqual(other Point3[T], eps T) bool {
	return p.Vec().AlmostEqual(other.Vec(), eps)
}

// Compare orders points lexicographically by X, then Y, then Z.
func (p Point3[T]) Compare(other Point3[T]) int {
	return p.Vec().Compare(other.Vec())
}

// Vec returns the components as a Vec3.
func (p Point3[T]) Vec() Vec3[T] {
	return Vec3[T]{p.X, p.Y, p.Z}
}

// ToFloat32 converts to a float32 point.
func (p Point3[T]) ToFloat32() Point3[float32] {
	return Point3[float32]{float32(p.X), float32(p.Y), float32(p.Z)}
}

// ToFloat64 converts to a float64 point.
func (p Point3[T]) ToFloat64() Point3[float64] {
	return Point3[float64]{float64(p.X), float64(p.Y), float64(p.Z)}
}

// Point2 drops the Z component.
func (p Point3[T]) Point2() Point2[T] {
	return Point2[T]{p.X, p.Y}
}

// Homo lifts p to a homogeneous point with the given weight.
func (p Point3[T]) Homo(w T) HomoPoint3[T] {
	return HomoPoint3[T]{p.X, p.Y, p.Z, w}
}

// String formats the point as comma-separated components.
func (p Point3[T]) String() string {
	return fmt.Sprintf("%v,%v,%v", p.X, p.Y, p.Z)
}

// HomoPoint3 is a 3D point in homogeneous coordinates.
type HomoPoint3[T Float] struct {
	X, Y, Z, W T
}

// Cartesian projects the homogeneous point to Cartesian space by
// dividing by W. When W is zero the raw coordinates are returned
// unchanged; this is a documented fallback, not an error.
func (h HomoPoint3[T]) Cartesian() Point3[T] {
	if h.W == 0 {
		return Point3[T]{h.X, h.Y, h.Z}
	}
	return Point3[T]{h.X / h.W, h.Y / h.W, h.Z / h.W}
}

// Vec4 returns the raw homogeneous components.
func (h HomoPoint3[T]) Vec4() Vec4[T] {
	return Vec4[T]{h.X, h.Y, h.Z, h.W}
}

// String formats the point as comma-separated components.
func (h HomoPoint3[T]) String() string {
	return fmt.Sprintf("%v,%v,%v,%v", h.X, h.Y, h.Z, h.W)
}
