package geom

// Circle2 is a 2D circle.
type Circle2[T Float] struct {
	Center Point2[T]
	Radius T
}

// Contains reports whether p lies inside the circle (boundary
// inclusive).
func (c Circle2[T]) Contains(p Point2[T]) bool {
	return c.Center.DistanceSqTo(p) <= c.Radius*c.Radius
}

// CircumCircle returns the circle through the three points. Returns
// false for collinear input, where no finite circumcircle exists.
// The solve is carried out in float64: the bisector determinant is a
// difference of similar-sized products and loses too much in float32.
func CircumCircle[T Float](a, b, c Point2[T]) (Circle2[T], bool) {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if Abs(d) <= Epsilon {
		return Circle2[T]{}, false
	}

	asq := ax*ax + ay*ay
	bsq := bx*bx + by*by
	csq := cx*cx + cy*cy
	ux := (asq*(by-cy) + bsq*(cy-ay) + csq*(ay-by)) / d
	uy := (asq*(cx-bx) + bsq*(ax-cx) + csq*(bx-ax)) / d

	center := Point2[T]{T(ux), T(uy)}
	return Circle2[T]{Center: center, Radius: center.DistanceTo(a)}, true
}

// Sphere3 is a 3D sphere.
type Sphere3[T Float] struct {
	Center Point3[T]
	Radius T
}

// Contains reports whether p lies inside the sphere (boundary
// inclusive).
func (s Sphere3[T]) Contains(p Point3[T]) bool {
	return s.Center.DistanceSqTo(p) <= s.Radius*s.Radius
}

// CircumSphere returns the sphere through the tetrahedron's four
// vertices. Returns false for a degenerate (flat) tetrahedron. The
// center x solves the linear system 2(B-A)·x = |B|² - |A|² (and
// likewise for C and D), expressed through the Mat3 inverse.
func CircumSphere[T Float](t Tetrahedron3[T]) (Sphere3[T], bool) {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	ad := t.D.Sub(t.A)

	// Rows of the system matrix; Mat3 is column-major, so transpose.
	m := Mat3[T]{
		2 * ab.X, 2 * ac.X, 2 * ad.X,
		2 * ab.Y, 2 * ac.Y, 2 * ad.Y,
		2 * ab.Z, 2 * ac.Z, 2 * ad.Z,
	}
	inv, ok := m.TryInverse()
	if !ok {
		return Sphere3[T]{}, false
	}

	la := t.A.Vec().LengthSq()
	rhs := Vec3[T]{
		t.B.Vec().LengthSq() - la,
		t.C.Vec().LengthSq() - la,
		t.D.Vec().LengthSq() - la,
	}
	center := inv.MulVec3(rhs).Point()
	return Sphere3[T]{Center: center, Radius: center.DistanceTo(t.A)}, true
}
