package geom

import "math/rand"

// RandomPoints2 generates n points uniformly distributed inside the
// box. The sequence is deterministic for a given seed; bit-exact
// reproduction across runtimes with different PRNGs is out of scope.
func RandomPoints2[T Float](seed int64, n int, box Box2[T]) []Point2[T] {
	rng := rand.New(rand.NewSource(seed))
	size := box.Size()
	pts := make([]Point2[T], n)
	for i := range pts {
		pts[i] = box.Min.Add(Vec2[T]{
			T(rng.Float64()) * size.X,
			T(rng.Float64()) * size.Y,
		})
	}
	return pts
}

// RandomPoints3 generates n points uniformly distributed inside the
// box. The sequence is deterministic for a given seed.
func RandomPoints3[T Float](seed int64, n int, box Box3[T]) []Point3[T] {
	rng := rand.New(rand.NewSource(seed))
	size := box.Size()
	pts := make([]Point3[T], n)
	for i := range pts {
		pts[i] = box.Min.Add(Vec3[T]{
			T(rng.Float64()) * size.X,
			T(rng.Float64()) * size.Y,
			T(rng.Float64()) * size.Z,
		})
	}
	return pts
}

// RandomDirs3 generates n unit vectors uniformly distributed on the
// sphere, via normalized Gaussian samples. The sequence is
// deterministic for a given seed. Degenerate all-zero samples map to
// the zero vector under the normalization convention.
func RandomDirs3[T Float](seed int64, n int) []Vec3[T] {
	rng := rand.New(rand.NewSource(seed))
	dirs := make([]Vec3[T], n)
	for i := range dirs {
		v := Vec3[T]{
			T(rng.NormFloat64()),
			T(rng.NormFloat64()),
			T(rng.NormFloat64()),
		}
		dirs[i] = v.Normalized()
	}
	return dirs
}
