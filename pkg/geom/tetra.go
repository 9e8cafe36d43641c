package geom

// Tetrahedron3 is a tetrahedron defined by four vertices. No winding or
// non-degeneracy invariant is enforced.
type Tetrahedron3[T Float] struct {
	A, B, C, D Point3[T]
}

// SignedVolume returns the signed volume: one sixth of the scalar
// triple product of the edges from A. The sign encodes the vertex
// winding.
func (t Tetrahedron3[T]) SignedVolume() T {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	ad := t.D.Sub(t.A)
	return ab.Dot(ac.Cross(ad)) / 6
}

// Volume returns the absolute volume.
func (t Tetrahedron3[T]) Volume() T {
	return Abs(t.SignedVolume())
}

// Centroid returns the vertex average.
func (t Tetrahedron3[T]) Centroid() Point3[T] {
	v := t.A.Vec().Add(t.B.Vec()).Add(t.C.Vec()).Add(t.D.Vec())
	return v.Scale(0.25).Point()
}

// Contains reports whether p lies inside the tetrahedron (boundary
// inclusive), by checking that p is on the same side of each face as
// the opposite vertex.
func (t Tetrahedron3[T]) Contains(p Point3[T]) bool {
	return sameSide(t.A, t.B, t.C, t.D, p) &&
		sameSide(t.B, t.C, t.D, t.A, p) &&
		sameSide(t.C, t.D, t.A, t.B, p) &&
		sameSide(t.D, t.A, t.B, t.C, p)
}

// Bounds returns the bounding box of the vertices.
func (t Tetrahedron3[T]) Bounds() Box3[T] {
	return Box3FromPoints(t.A, t.B, t.C, t.D)
}

// sameSide reports whether ref and p are on the same side of the plane
// through a, b, c (plane inclusive for p).
func sameSide[T Float](a, b, c, ref, p Point3[T]) bool {
	n := b.Sub(a).Cross(c.Sub(a))
	dRef := n.Dot(ref.Sub(a))
	dP := n.Dot(p.Sub(a))
	return dRef*dP >= 0
}
