package geom

// Named instantiations of the generic kernel: the f suffix is float32,
// the d suffix float64.
type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]

	Point2f = Point2[float32]
	Point2d = Point2[float64]
	Point3f = Point3[float32]
	Point3d = Point3[float64]

	HomoPoint3f = HomoPoint3[float32]
	HomoPoint3d = HomoPoint3[float64]

	Mat2f = Mat2[float32]
	Mat2d = Mat2[float64]
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]

	Quatf = Quat[float32]
	Quatd = Quat[float64]

	Ray2f = Ray2[float32]
	Ray2d = Ray2[float64]
	Ray3f = Ray3[float32]
	Ray3d = Ray3[float64]

	Segment2f = Segment2[float32]
	Segment2d = Segment2[float64]
	Segment3f = Segment3[float32]
	Segment3d = Segment3[float64]

	Box2f = Box2[float32]
	Box2d = Box2[float64]
	Box3f = Box3[float32]
	Box3d = Box3[float64]

	Circle2f = Circle2[float32]
	Circle2d = Circle2[float64]
	Sphere3f = Sphere3[float32]
	Sphere3d = Sphere3[float64]

	Tetrahedron3f = Tetrahedron3[float32]
	Tetrahedron3d = Tetrahedron3[float64]

	Vec2int = Vec2i[int]
	Vec3int = Vec3i[int]
)
