package geom

// Segment2 is a 2D line segment between points A and B. A segment may
// degenerate to a single point (A == B); the closest-point methods
// guard that case explicitly.
type Segment2[T Float] struct {
	A, B Point2[T]
}

// Length returns the segment length.
func (s Segment2[T]) Length() T {
	return s.A.DistanceTo(s.B)
}

// IsDegenerate reports whether the segment collapses to a point.
func (s Segment2[T]) IsDegenerate() bool {
	return s.B.Sub(s.A).IsZero()
}

// Closest returns the point on the segment closest to p.
func (s Segment2[T]) Closest(p Point2[T]) Point2[T] {
	d := s.B.Sub(s.A)
	if d.IsZero() {
		return s.A
	}
	t := Clamp01(d.Dot(p.Sub(s.A)) / d.LengthSq())
	return s.A.Add(d.Scale(t))
}

// Segment3 is a 3D line segment between points A and B.
type Segment3[T Float] struct {
	A, B Point3[T]
}

// Length returns the segment length.
func (s Segment3[T]) Length() T {
	return s.A.DistanceTo(s.B)
}

// IsDegenerate reports whether the segment collapses to a point.
func (s Segment3[T]) IsDegenerate() bool {
	return s.B.Sub(s.A).IsZero()
}

// Closest returns the point on the segment closest to p.
func (s Segment3[T]) Closest(p Point3[T]) Point3[T] {
	d := s.B.Sub(s.A)
	if d.IsZero() {
		return s.A
	}
	t := Clamp01(d.Dot(p.Sub(s.A)) / d.LengthSq())
	return s.A.Add(d.Scale(t))
}

// ClosestSegment returns the closest pair of points between the two
// segments and their clamped parameters in [0, 1]. Degenerate segments
// (either or both collapsed to a point) and near-parallel segments are
// handled by explicit branches; the general case clamps one parameter,
// re-solves the other, and re-clamps.
func (s Segment3[T]) ClosestSegment(other Segment3[T]) (p1, p2 Point3[T], sp, tp T) {
	d1 := s.B.Sub(s.A)
	d2 := other.B.Sub(other.A)
	r := s.A.Sub(other.A)
	a := d1.LengthSq()
	e := d2.LengthSq()
	f := d2.Dot(r)

	switch {
	case a <= Epsilon && e <= Epsilon:
		// Both segments are points.
		return s.A, other.A, 0, 0
	case a <= Epsilon:
		// First segment is a point.
		tp = Clamp01(f / e)
	case e <= Epsilon:
		// Second segment is a point.
		sp = Clamp01(-d1.Dot(r) / a)
	default:
		c := d1.Dot(r)
		b := d1.Dot(d2)
		denom := a*e - b*b
		if denom > Epsilon {
			sp = Clamp01((b*f - c*e) / denom)
		}
		// Parallel segments keep sp = 0 and pick t from it.
		tp = (b*sp + f) / e
		if tp < 0 {
			tp = 0
			sp = Clamp01(-c / a)
		} else if tp > 1 {
			tp = 1
			sp = Clamp01((b - c) / a)
		}
	}

	p1 = s.A.Add(d1.Scale(sp))
	p2 = other.A.Add(d2.Scale(tp))
	return p1, p2, sp, tp
}

// DistanceTo returns the minimum distance between the two segments.
func (s Segment3[T]) DistanceTo(other Segment3[T]) T {
	p1, p2, _, _ := s.ClosestSegment(other)
	return p1.DistanceTo(p2)
}
