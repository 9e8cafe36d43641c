package geom

import "testing"

func TestTetrahedronVolume(t *testing.T) {
	// Unit corner tetrahedron: volume 1/6.
	tet := Tetrahedron3d{
		A: Point3d{0, 0, 0},
		B: Point3d{1, 0, 0},
		C: Point3d{0, 1, 0},
		D: Point3d{0, 0, 1},
	}
	if v := tet.SignedVolume(); Abs(v-1.0/6) > 1e-12 {
		t.Errorf("SignedVolume = %v, want 1/6", v)
	}

	// Swapping two vertices flips the sign but not the magnitude.
	flipped := Tetrahedron3d{A: tet.A, B: tet.C, C: tet.B, D: tet.D}
	if v := flipped.SignedVolume(); Abs(v+1.0/6) > 1e-12 {
		t.Errorf("flipped SignedVolume = %v, want -1/6", v)
	}
	if v := flipped.Volume(); Abs(v-1.0/6) > 1e-12 {
		t.Errorf("Volume = %v, want 1/6", v)
	}

	// Coplanar vertices give zero volume.
	flat := Tetrahedron3d{
		A: Point3d{0, 0, 0},
		B: Point3d{1, 0, 0},
		C: Point3d{0, 1, 0},
		D: Point3d{1, 1, 0},
	}
	if v := flat.Volume(); v != 0 {
		t.Errorf("flat Volume = %v, want 0", v)
	}
}

func TestTetrahedronCentroid(t *testing.T) {
	tet := Tetrahedron3d{
		A: Point3d{0, 0, 0},
		B: Point3d{4, 0, 0},
		C: Point3d{0, 4, 0},
		D: Point3d{0, 0, 4},
	}
	if got := tet.Centroid(); !got.AlmostEqual(Point3d{1, 1, 1}, 1e-12) {
		t.Errorf("Centroid = %v, want 1,1,1", got)
	}
}

func TestTetrahedronContains(t *testing.T) {
	tet := Tetrahedron3d{
		A: Point3d{0, 0, 0},
		B: Point3d{1, 0, 0},
		C: Point3d{0, 1, 0},
		D: Point3d{0, 0, 1},
	}
	if !tet.Contains(tet.Centroid()) {
		t.Error("centroid not contained")
	}
	// Vertices and face points are boundary inclusive.
	if !tet.Contains(tet.A) || !tet.Contains(Point3d{0.25, 0.25, 0}) {
		t.Error("boundary points not contained")
	}
	if tet.Contains(Point3d{1, 1, 1}) || tet.Contains(Point3d{-0.1, 0.1, 0.1}) {
		t.Error("outside point contained")
	}
}

func TestTetrahedronBounds(t *testing.T) {
	tet := Tetrahedron3d{
		A: Point3d{1, -2, 0},
		B: Point3d{-1, 0, 3},
		C: Point3d{0, 4, -1},
		D: Point3d{2, 1, 1},
	}
	b := tet.Bounds()
	if b.Min != (Point3d{-1, -2, -1}) || b.Max != (Point3d{2, 4, 3}) {
		t.Errorf("Bounds = %v/%v", b.Min, b.Max)
	}
}
