package geom

// Box2 is a 2D axis-aligned box. Constructors canonicalize so that
// Min <= Max per axis; boxes built by hand must maintain that
// themselves.
type Box2[T Float] struct {
	Min, Max Point2[T]
}

// NewBox2 builds a box from two corners, swapping per axis so Min <=
// Max.
func NewBox2[T Float](a, b Point2[T]) Box2[T] {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return Box2[T]{Min: a, Max: b}
}

// Box2FromPoints returns the bounding box of the given points.
func Box2FromPoints[T Float](pts ...Point2[T]) Box2[T] {
	if len(pts) == 0 {
		return Box2[T]{}
	}
	b := Box2[T]{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Enlarge(p)
	}
	return b
}

// Enlarge returns the box grown to contain p.
func (b Box2[T]) Enlarge(p Point2[T]) Box2[T] {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	return b
}

// Center returns the box center.
func (b Box2[T]) Center() Point2[T] {
	return b.Min.Midpoint(b.Max)
}

// Size returns the box extents per axis.
func (b Box2[T]) Size() Vec2[T] {
	return b.Max.Sub(b.Min)
}

// HalfSize returns half the box extents per axis.
func (b Box2[T]) HalfSize() Vec2[T] {
	return b.Size().Scale(0.5)
}

// Contains reports whether p lies inside the box (boundary inclusive).
func (b Box2[T]) Contains(p Point2[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects reports whether the two boxes overlap.
func (b Box2[T]) Intersects(other Box2[T]) bool {
	return b.Max.X >= other.Min.X && b.Min.X <= other.Max.X &&
		b.Max.Y >= other.Min.Y && b.Min.Y <= other.Max.Y
}

// ClosestPoint returns the point inside the box closest to p. If p is
// inside, p itself is returned.
func (b Box2[T]) ClosestPoint(p Point2[T]) Point2[T] {
	return Point2[T]{
		Clamp(p.X, b.Min.X, b.Max.X),
		Clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// SignedDistance returns the exact signed distance from p to the box
// surface: positive outside, negative inside.
func (b Box2[T]) SignedDistance(p Point2[T]) T {
	half := b.HalfSize()
	d := p.Sub(b.Center())
	d.X = Abs(d.X) - half.X
	d.Y = Abs(d.Y) - half.Y
	outside := Vec2[T]{max(d.X, 0), max(d.Y, 0)}.Length()
	inside := min(max(d.X, d.Y), 0)
	return outside + inside
}

// Box3 is a 3D axis-aligned box.
type Box3[T Float] struct {
	Min, Max Point3[T]
}

// NewBox3 builds a box from two corners, swapping per axis so Min <=
// Max.
func NewBox3[T Float](a, b Point3[T]) Box3[T] {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	if a.Z > b.Z {
		a.Z, b.Z = b.Z, a.Z
	}
	return Box3[T]{Min: a, Max: b}
}

// Box3FromPoints returns the bounding box of the given points.
func Box3FromPoints[T Float](pts ...Point3[T]) Box3[T] {
	if len(pts) == 0 {
		return Box3[T]{}
	}
	b := Box3[T]{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Enlarge(p)
	}
	return b
}

// Enlarge returns the box grown to contain p.
func (b Box3[T]) Enlarge(p Point3[T]) Box3[T] {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
	return b
}

// Union returns the smallest box containing both boxes.
func (b Box3[T]) Union(other Box3[T]) Box3[T] {
	return b.Enlarge(other.Min).Enlarge(other.Max)
}

// Center returns the box center.
func (b Box3[T]) Center() Point3[T] {
	return b.Min.Midpoint(b.Max)
}

// Size returns the box extents per axis.
func (b Box3[T]) Size() Vec3[T] {
	return b.Max.Sub(b.Min)
}

// HalfSize returns half the box extents per axis.
func (b Box3[T]) HalfSize() Vec3[T] {
	return b.Size().Scale(0.5)
}

// Contains reports whether p lies inside the box (boundary inclusive).
func (b Box3[T]) Contains(p Point3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether the two boxes overlap.
func (b Box3[T]) Intersects(other Box3[T]) bool {
	return b.Max.X >= other.Min.X && b.Min.X <= other.Max.X &&
		b.Max.Y >= other.Min.Y && b.Min.Y <= other.Max.Y &&
		b.Max.Z >= other.Min.Z && b.Min.Z <= other.Max.Z
}

// ClosestPoint returns the point inside the box closest to p. If p is
// inside, p itself is returned.
func (b Box3[T]) ClosestPoint(p Point3[T]) Point3[T] {
	return Point3[T]{
		Clamp(p.X, b.Min.X, b.Max.X),
		Clamp(p.Y, b.Min.Y, b.Max.Y),
		Clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

// SignedDistance returns the exact signed distance from p to the box
// surface: positive outside, negative inside.
func (b Box3[T]) SignedDistance(p Point3[T]) T {
	half := b.HalfSize()
	d := p.Sub(b.Center())
	d.X = Abs(d.X) - half.X
	d.Y = Abs(d.Y) - half.Y
	d.Z = Abs(d.Z) - half.Z
	outside := Vec3[T]{max(d.X, 0), max(d.Y, 0), max(d.Z, 0)}.Length()
	inside := min(max(d.X, max(d.Y, d.Z)), 0)
	return outside + inside
}
