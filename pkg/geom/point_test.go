package geom

import (
	gomath "math"
	"testing"
)

func TestPointVectorAlgebra(t *testing.T) {
	p := Point3d{1, 2, 3}
	q := Point3d{4, 6, 3}

	// Point minus point is a vector.
	if v := q.Sub(p); v != (Vec3d{3, 4, 0}) {
		t.Errorf("q - p = %v, want 3,4,0", v)
	}
	// Point plus vector is a point.
	if got := p.Add(Vec3d{3, 4, 0}); got != q {
		t.Errorf("p + v = %v, want %v", got, q)
	}
	if d := p.DistanceTo(q); d != 5 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
	if d := p.DistanceSqTo(q); d != 25 {
		t.Errorf("DistanceSqTo = %v, want 25", d)
	}
}

func TestPointLerpMidpoint(t *testing.T) {
	p := Point3d{0, 0, 0}
	q := Point3d{4, 8, -2}

	if got := p.Lerp(q, 0.25); got != (Point3d{1, 2, -0.5}) {
		t.Errorf("Lerp = %v, want 1,2,-0.5", got)
	}
	// Out-of-range t clamps.
	if got := p.Lerp(q, 3); got != q {
		t.Errorf("Lerp past 1 = %v, want %v", got, q)
	}
	if got := p.Midpoint(q); got != (Point3d{2, 4, -1}) {
		t.Errorf("Midpoint = %v, want 2,4,-1", got)
	}
}

func TestPointRounding(t *testing.T) {
	p := Point2d{1.2345, -2.718}
	if got := p.Rounded(2); got != (Point2d{1.23, -2.72}) {
		t.Errorf("Rounded = %v", got)
	}
	f := Point2d{1.7, -0.2}
	f.Floor()
	if f != (Point2d{1, -1}) {
		t.Errorf("Floor = %v, want 1,-1", f)
	}
	c := Point2d{1.2, -0.7}
	c.Ceil()
	if c != (Point2d{2, 0}) {
		t.Errorf("Ceil = %v, want 2,0", c)
	}
}

func TestPointCompare(t *testing.T) {
	a := Point3d{1, 2, 3}
	b := Point3d{1, 2, 4}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare ordering wrong")
	}
}

func TestPointConversions(t *testing.T) {
	p := Point2d{1, 2}
	if got := p.Point3(5); got != (Point3d{1, 2, 5}) {
		t.Errorf("Point3 = %v", got)
	}
	if got := (Point3d{1, 2, 5}).Point2(); got != p {
		t.Errorf("Point2 = %v", got)
	}
	if got := p.ToFloat32(); got != (Point2f{1, 2}) {
		t.Errorf("ToFloat32 = %v", got)
	}
	if s := (Point3d{1, 2.5, -3}).String(); s != "1,2.5,-3" {
		t.Errorf("String = %q", s)
	}
}

func TestPointFiniteNoNaN(t *testing.T) {
	p := Point3d{1, gomath.Inf(1), gomath.NaN()}
	if p.IsFinite() || !p.IsNaN() {
		t.Error("finite/NaN classification wrong")
	}
	if got := p.Finite(); got != (Point3d{1, 0, 0}) {
		t.Errorf("Finite = %v, want 1,0,0", got)
	}
	// NoNaN keeps infinities.
	got := p.NoNaN()
	if got.X != 1 || !gomath.IsInf(got.Y, 1) || got.Z != 0 {
		t.Errorf("NoNaN = %v, want 1,+Inf,0", got)
	}
}

func TestHomoPointCartesian(t *testing.T) {
	h := HomoPoint3d{2, 4, 6, 2}
	if got := h.Cartesian(); got != (Point3d{1, 2, 3}) {
		t.Errorf("Cartesian = %v, want 1,2,3", got)
	}

	// W of zero falls back to the raw coordinates.
	dir := HomoPoint3d{2, 4, 6, 0}
	if got := dir.Cartesian(); got != (Point3d{2, 4, 6}) {
		t.Errorf("Cartesian with w=0 = %v, want raw 2,4,6", got)
	}

	if got := (Point3d{1, 2, 3}).Homo(1); got != (HomoPoint3d{1, 2, 3, 1}) {
		t.Errorf("Homo = %v", got)
	}
	if got := h.Vec4(); got != (Vec4d{2, 4, 6, 2}) {
		t.Errorf("Vec4 = %v", got)
	}
}

func TestPointAtSetAt(t *testing.T) {
	p := Point3d{1, 2, 3}
	if p.At(0) != 1 || p.At(2) != 3 {
		t.Error("At wrong")
	}
	p.SetAt(1, 9)
	if p != (Point3d{1, 9, 3}) {
		t.Errorf("SetAt = %v", p)
	}
}
