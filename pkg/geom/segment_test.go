package geom

import "testing"

func TestSegment3ClosestSegmentParallel(t *testing.T) {
	a := Segment3d{A: Point3d{0, 0, 0}, B: Point3d{1, 0, 0}}
	b := Segment3d{A: Point3d{0, 1, 0}, B: Point3d{1, 1, 0}}

	p1, p2, sp, tp := a.ClosestSegment(b)
	if sp != 0 || tp != 0 {
		t.Errorf("parallel branch params = %v, %v, want 0, 0", sp, tp)
	}
	if p1 != (Point3d{0, 0, 0}) || p2 != (Point3d{0, 1, 0}) {
		t.Errorf("closest pair = %v / %v, want 0,0,0 / 0,1,0", p1, p2)
	}
	if d := p1.DistanceTo(p2); Abs(d-1) > 1e-12 {
		t.Errorf("distance = %v, want 1", d)
	}
}

func TestSegment3ClosestSegmentCrossing(t *testing.T) {
	a := Segment3d{A: Point3d{-1, 0, 0}, B: Point3d{1, 0, 0}}
	b := Segment3d{A: Point3d{0, -1, 1}, B: Point3d{0, 1, 1}}

	p1, p2, sp, tp := a.ClosestSegment(b)
	if Abs(sp-0.5) > 1e-12 || Abs(tp-0.5) > 1e-12 {
		t.Errorf("params = %v, %v, want 0.5, 0.5", sp, tp)
	}
	if !p1.AlmostEqual(Point3d{0, 0, 0}, 1e-12) || !p2.AlmostEqual(Point3d{0, 0, 1}, 1e-12) {
		t.Errorf("closest pair = %v / %v", p1, p2)
	}
	if d := a.DistanceTo(b); Abs(d-1) > 1e-12 {
		t.Errorf("distance = %v, want 1", d)
	}
}

func TestSegment3ClosestSegmentDegenerate(t *testing.T) {
	pt := Segment3d{A: Point3d{0, 2, 0}, B: Point3d{0, 2, 0}}
	seg := Segment3d{A: Point3d{-1, 0, 0}, B: Point3d{1, 0, 0}}

	// Both degenerate.
	p1, p2, sp, tp := pt.ClosestSegment(pt)
	if sp != 0 || tp != 0 || p1 != pt.A || p2 != pt.A {
		t.Errorf("both-degenerate branch: %v %v %v %v", p1, p2, sp, tp)
	}

	// First degenerate: closest point on seg is its midpoint.
	p1, p2, sp, tp = pt.ClosestSegment(seg)
	if p1 != pt.A {
		t.Errorf("first-degenerate p1 = %v, want %v", p1, pt.A)
	}
	if Abs(tp-0.5) > 1e-12 || !p2.AlmostEqual(Point3d{0, 0, 0}, 1e-12) {
		t.Errorf("first-degenerate p2 = %v (t=%v), want 0,0,0 (t=0.5)", p2, tp)
	}
	_ = sp

	// Second degenerate mirrors it.
	p1, p2, sp, tp = seg.ClosestSegment(pt)
	if Abs(sp-0.5) > 1e-12 || !p1.AlmostEqual(Point3d{0, 0, 0}, 1e-12) {
		t.Errorf("second-degenerate p1 = %v (s=%v), want 0,0,0 (s=0.5)", p1, sp)
	}
	if p2 != pt.A || tp != 0 {
		t.Errorf("second-degenerate p2 = %v (t=%v), want %v (t=0)", p2, tp, pt.A)
	}
}

func TestSegment3ClosestSegmentClampReproject(t *testing.T) {
	// The unclamped solution for t falls outside [0,1]; the second pass
	// clamps and re-solves s.
	a := Segment3d{A: Point3d{0, 0, 0}, B: Point3d{4, 0, 0}}
	b := Segment3d{A: Point3d{6, 1, 0}, B: Point3d{8, 3, 0}}

	p1, p2, sp, tp := a.ClosestSegment(b)
	if sp != 1 || tp != 0 {
		t.Errorf("params = %v, %v, want 1, 0", sp, tp)
	}
	if p1 != (Point3d{4, 0, 0}) || p2 != (Point3d{6, 1, 0}) {
		t.Errorf("closest pair = %v / %v", p1, p2)
	}
}

func TestSegment3ClosestPoint(t *testing.T) {
	s := Segment3d{A: Point3d{0, 0, 0}, B: Point3d{2, 0, 0}}

	if got := s.Closest(Point3d{1, 5, 0}); got != (Point3d{1, 0, 0}) {
		t.Errorf("Closest interior = %v, want 1,0,0", got)
	}
	// Beyond the ends the result clamps to the endpoints.
	if got := s.Closest(Point3d{-3, 1, 0}); got != s.A {
		t.Errorf("Closest before A = %v, want %v", got, s.A)
	}
	if got := s.Closest(Point3d{9, -2, 0}); got != s.B {
		t.Errorf("Closest past B = %v, want %v", got, s.B)
	}

	// Degenerate segment returns its single point.
	d := Segment3d{A: Point3d{1, 1, 1}, B: Point3d{1, 1, 1}}
	if !d.IsDegenerate() {
		t.Error("point segment should be degenerate")
	}
	if got := d.Closest(Point3d{5, 5, 5}); got != d.A {
		t.Errorf("degenerate Closest = %v, want %v", got, d.A)
	}
}

func TestSegment2Closest(t *testing.T) {
	s := Segment2d{A: Point2d{0, 0}, B: Point2d{0, 4}}
	if got := s.Closest(Point2d{3, 2}); got != (Point2d{0, 2}) {
		t.Errorf("Closest = %v, want 0,2", got)
	}
	if l := s.Length(); l != 4 {
		t.Errorf("Length = %v, want 4", l)
	}
}
