package geom

import (
	gomath "math"
	"testing"
)

func TestMat4IndexViews(t *testing.T) {
	var m Mat4d
	for i := range m {
		m[i] = float64(i)
	}
	// Flat index i and (row, col) are two views of the same storage:
	// i = row + col*4.
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if m.At(row, col) != m[row+col*4] {
				t.Errorf("At(%d,%d) = %v, want %v", row, col, m.At(row, col), m[row+col*4])
			}
		}
	}
	m.Set(2, 3, -1)
	if m[2+3*4] != -1 {
		t.Error("Set(2,3) did not write flat index 14")
	}
}

func TestMat4AtPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Mat4.At(4,0) did not panic")
		}
	}()
	var m Mat4d
	_ = m.At(4, 0)
}

func TestMat4Transpose(t *testing.T) {
	m := Translate[float64](1, 2, 3)
	tr := m.Transpose()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if tr.At(row, col) != m.At(col, row) {
				t.Errorf("Transpose mismatch at (%d,%d)", row, col)
			}
		}
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Translate[float64](1, 2, 3).
		Mul(RotateY[float64](0.7)).
		Mul(ScaleXYZ[float64](2, 3, 4))

	inv := m.Inverse()
	if got := m.Mul(inv); !got.AlmostEqual(Identity4[float64](), 1e-9) {
		t.Errorf("M * Inverse(M) = %v, want identity", got)
	}

	inv2, ok := m.TryInverse()
	if !ok {
		t.Fatal("TryInverse failed for invertible matrix")
	}
	if !inv2.AlmostEqual(inv, 1e-9) {
		t.Error("TryInverse and Inverse disagree")
	}
}

func TestMat4SingularInverse(t *testing.T) {
	var singular Mat4d // all zeros
	if got := singular.Inverse(); got != (Mat4d{}) {
		t.Errorf("Inverse of singular matrix = %v, want zero matrix", got)
	}
	if _, ok := singular.TryInverse(); ok {
		t.Error("TryInverse succeeded on singular matrix")
	}

	// Rank-deficient but nonzero.
	flat := ScaleXYZ[float64](1, 1, 0)
	if got := flat.Inverse(); got != (Mat4d{}) {
		t.Errorf("Inverse of flat scale = %v, want zero matrix", got)
	}
}

func TestMat4Determinant(t *testing.T) {
	if d := Identity4[float64]().Determinant(); d != 1 {
		t.Errorf("det(I) = %v, want 1", d)
	}
	if d := ScaleXYZ[float64](2, 3, 4).Determinant(); Abs(d-24) > 1e-12 {
		t.Errorf("det(scale 2,3,4) = %v, want 24", d)
	}
	if d := RotateZ[float64](1.1).Determinant(); Abs(d-1) > 1e-12 {
		t.Errorf("det(rotation) = %v, want 1", d)
	}
}

func TestAffineConvention(t *testing.T) {
	tr := Translate[float64](1, 2, 3)

	// Points pick up translation.
	p := Point3d{0, 0, 0}
	if got := tr.MulPoint3(p); got != (Point3d{1, 2, 3}) {
		t.Errorf("T * point = %v, want 1,2,3", got)
	}

	// Vectors ignore translation.
	var v Vec3d
	if got := tr.MulVec3(v); got != (Vec3d{}) {
		t.Errorf("T * vector = %v, want zero vector", got)
	}
	d := Vec3d{1, 0, 0}
	if got := tr.MulVec3(d); got != d {
		t.Errorf("T * direction = %v, want %v unchanged", got, d)
	}
}

func TestMat4MulVec4(t *testing.T) {
	tr := Translate[float64](1, 2, 3)
	// w=1 applies translation, w=0 does not, matching the point/vector
	// split.
	if got := tr.MulVec4(Vec4d{0, 0, 0, 1}); got != (Vec4d{1, 2, 3, 1}) {
		t.Errorf("T * (0,0,0,1) = %v", got)
	}
	if got := tr.MulVec4(Vec4d{0, 0, 0, 0}); got != (Vec4d{}) {
		t.Errorf("T * (0,0,0,0) = %v", got)
	}
}

func TestRotateAxisMatchesRotateZ(t *testing.T) {
	angle := 0.8
	a := RotateAxis(Vec3d{0, 0, 1}, angle)
	b := RotateZ[float64](angle)
	if !a.AlmostEqual(b, 1e-12) {
		t.Errorf("RotateAxis(z) = %v, want %v", a, b)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	m := RotateZ[float64](gomath.Pi / 2)
	got := m.MulVec3(Vec3d{1, 0, 0})
	want := Vec3d{0, 1, 0}
	if !got.AlmostEqual(want, 1e-12) {
		t.Errorf("RotateZ(90) * x = %v, want %v", got, want)
	}
}

func TestLookAt(t *testing.T) {
	eye := Point3d{0, 0, 5}
	target := Point3d{0, 0, 0}
	up := Vec3d{0, 1, 0}
	view := LookAt(eye, target, up)

	// The eye maps to the view-space origin.
	if got := view.MulPoint3(eye); !got.AlmostEqual(Point3d{0, 0, 0}, 1e-12) {
		t.Errorf("view * eye = %v, want origin", got)
	}
	// The target sits on the negative view-space Z axis.
	if got := view.MulPoint3(target); !got.AlmostEqual(Point3d{0, 0, -5}, 1e-12) {
		t.Errorf("view * target = %v, want 0,0,-5", got)
	}
	if view.HasScale() {
		t.Error("LookAt view matrix reports scale")
	}
}

func TestHasScale(t *testing.T) {
	if RotateY[float64](0.4).HasScale() {
		t.Error("pure rotation reports scale")
	}
	if Translate[float64](5, 6, 7).HasScale() {
		t.Error("pure translation reports scale")
	}
	if !ScaleXYZ[float64](2, 1, 1).HasScale() {
		t.Error("scale matrix does not report scale")
	}
}

func TestPerspectiveProjection(t *testing.T) {
	proj := Perspective[float64](gomath.Pi/2, 1, 1, 100)
	// A point on the near plane, straight ahead, projects to z = -1 in
	// NDC after the homogeneous divide.
	got := proj.ProjectPoint3(Point3d{0, 0, -1})
	if !got.AlmostEqual(Point3d{0, 0, -1}, 1e-9) {
		t.Errorf("near-plane point projects to %v, want 0,0,-1", got)
	}
}

func TestOrthoProjection(t *testing.T) {
	proj := Ortho[float64](-2, 2, -1, 1, 0, 10)
	got := proj.MulPoint3(Point3d{2, 1, 0})
	if !got.AlmostEqual(Point3d{1, 1, -1}, 1e-12) {
		t.Errorf("ortho corner maps to %v, want 1,1,-1", got)
	}
}

func TestMat3Inverse(t *testing.T) {
	m := Rotate2[float64](0.6).Mul(Scale2[float64](2, 5))
	inv, ok := m.TryInverse()
	if !ok {
		t.Fatal("TryInverse failed for invertible Mat3")
	}
	if got := m.Mul(inv); !got.AlmostEqual(Identity3[float64](), 1e-12) {
		t.Errorf("M * Inverse(M) = %v, want identity", got)
	}

	var singular Mat3d
	if got := singular.Inverse(); got != (Mat3d{}) {
		t.Errorf("Inverse of singular Mat3 = %v, want zero matrix", got)
	}
	if _, ok := singular.TryInverse(); ok {
		t.Error("TryInverse succeeded on singular Mat3")
	}
}

func TestMat3AffineConvention(t *testing.T) {
	tr := Translate2[float64](3, 4)
	if got := tr.MulPoint2(Point2d{0, 0}); got != (Point2d{3, 4}) {
		t.Errorf("T * point = %v, want 3,4", got)
	}
	if got := tr.MulVec2(Vec2d{1, 0}); got != (Vec2d{1, 0}) {
		t.Errorf("T * vector = %v, want 1,0 unchanged", got)
	}
}

func TestMat3Minor(t *testing.T) {
	m := Mat3d{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	// Minor(0,0) removes row 0 and col 0: det of [[5,8],[6,10]] in
	// column-major terms.
	want := m.At(1, 1)*m.At(2, 2) - m.At(2, 1)*m.At(1, 2)
	if got := m.Minor(0, 0); got != want {
		t.Errorf("Minor(0,0) = %v, want %v", got, want)
	}
}

func TestMat2Inverse(t *testing.T) {
	m := Mat2d{3, 1, 2, 4} // columns (3,1), (2,4); det = 10
	if d := m.Determinant(); d != 10 {
		t.Errorf("det = %v, want 10", d)
	}
	inv, ok := m.TryInverse()
	if !ok {
		t.Fatal("TryInverse failed")
	}
	if got := m.Mul(inv); !got.AlmostEqual(Identity2[float64](), 1e-12) {
		t.Errorf("M * Inverse(M) = %v, want identity", got)
	}

	var singular Mat2d
	if got := singular.Inverse(); got != (Mat2d{}) {
		t.Errorf("Inverse of singular Mat2 = %v, want zero matrix", got)
	}
}

func TestRotation2(t *testing.T) {
	m := Rotation2[float64](gomath.Pi / 2)
	got := m.MulVec2(Vec2d{1, 0})
	if !got.AlmostEqual(Vec2d{0, 1}, 1e-12) {
		t.Errorf("Rotation2(90) * x = %v, want 0,1", got)
	}
}

func TestMat3RoundTripThroughMat4(t *testing.T) {
	m3 := Rotate2[float64](0.3)
	m4 := Mat4FromMat3(m3)
	if got := m4.Mat3(); got != m3 {
		t.Errorf("Mat3 round trip = %v, want %v", got, m3)
	}
}
