package geom

import gomath "math"

// Ray2 is a 2D ray with an origin and a normalized direction.
type Ray2[T Float] struct {
	Origin Point2[T]
	Dir    Vec2[T]
}

// NewRay2 constructs a ray, normalizing the direction. A zero direction
// stays zero and marks the ray degenerate.
func NewRay2[T Float](origin Point2[T], dir Vec2[T]) Ray2[T] {
	return Ray2[T]{Origin: origin, Dir: dir.Normalized()}
}

// IsDegenerate reports whether the direction is zero or any component
// is non-finite.
func (r Ray2[T]) IsDegenerate() bool {
	return r.Dir.IsZero() || !r.Dir.IsFinite()
}

// At returns the point at parametric distance t along the ray.
func (r Ray2[T]) At(t T) Point2[T] {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectBox intersects the ray with a box using the slab method and
// returns the entry and exit distances. Division by a zero direction
// component produces IEEE infinities, which propagate correctly through
// the interval comparisons.
func (r Ray2[T]) IntersectBox(b Box2[T]) (t0, t1 T, hit bool) {
	t0, t1 = T(gomath.Inf(-1)), T(gomath.Inf(1))
	for i := 0; i < 2; i++ {
		inv := 1 / r.Dir.At(i)
		tn := (b.Min.At(i) - r.Origin.At(i)) * inv
		tf := (b.Max.At(i) - r.Origin.At(i)) * inv
		if tn > tf {
			tn, tf = tf, tn
		}
		if tn > t0 {
			t0 = tn
		}
		if tf < t1 {
			t1 = tf
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}

// Ray3 is a 3D ray with an origin and a normalized direction.
type Ray3[T Float] struct {
	Origin Point3[T]
	Dir    Vec3[T]
}

// NewRay3 constructs a ray, normalizing the direction. A zero direction
// stays zero and marks the ray degenerate.
func NewRay3[T Float](origin Point3[T], dir Vec3[T]) Ray3[T] {
	return Ray3[T]{Origin: origin, Dir: dir.Normalized()}
}

// IsDegenerate reports whether the direction is zero or any component
// is non-finite.
func (r Ray3[T]) IsDegenerate() bool {
	return r.Dir.IsZero() || !r.Dir.IsFinite()
}

// At returns the point at parametric distance t along the ray.
func (r Ray3[T]) At(t T) Point3[T] {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectBox intersects the ray with a box using the slab method and
// returns the entry and exit distances. Division by a zero direction
// component produces IEEE infinities, which propagate correctly through
// the interval comparisons.
func (r Ray3[T]) IntersectBox(b Box3[T]) (t0, t1 T, hit bool) {
	t0, t1 = T(gomath.Inf(-1)), T(gomath.Inf(1))
	for i := 0; i < 3; i++ {
		inv := 1 / r.Dir.At(i)
		tn := (b.Min.At(i) - r.Origin.At(i)) * inv
		tf := (b.Max.At(i) - r.Origin.At(i)) * inv
		if tn > tf {
			tn, tf = tf, tn
		}
		if tn > t0 {
			t0 = tn
		}
		if tf < t1 {
			t1 = tf
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}

// IntersectPlaneY intersects the ray with the horizontal plane at the
// given Y level. Returns false when the ray is parallel to the plane or
// the intersection lies behind the origin.
func (r Ray3[T]) IntersectPlaneY(planeY T) (Point3[T], bool) {
	if Abs(r.Dir.Y) < Epsilon {
		return Point3[T]{}, false
	}
	t := (planeY - r.Origin.Y) / r.Dir.Y
	if t < 0 {
		return Point3[T]{}, false
	}
	return r.At(t), true
}
