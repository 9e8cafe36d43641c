// geombench is a CLI utility for generating point scenes and running
// geometry query workloads over them.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/geomath/internal/config"
	"github.com/Faultbox/geomath/internal/logger"
	"github.com/Faultbox/geomath/pkg/geom"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	// Shift the subcommand out so the shared flag set sees only its
	// options.
	os.Args = append(os.Args[:1], os.Args[2:]...)
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch command {
	case "gen":
		cmdGen(cfg)
	case "raycast", "rc":
		cmdRaycast(cfg)
	case "bench":
		cmdBench(cfg)
	case "config-init":
		cmdConfigInit(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`geombench - point scene generator and geometry query workload runner

Usage:
  geombench <command> [options]

Commands:
  gen          Generate scene points and print them
  raycast      Cast random rays against per-point probe boxes
  bench        Time the ray and segment query workloads
  config-init  Write the default config to the user config directory

Options (all commands):
  -config path   Config file (default: geombench.yaml if present)
  -seed N        Scene PRNG seed
  -points N      Number of scene points
  -rays N        Number of ray queries
  -out path      Result output path (default: stdout)
  -debug         Enable debug logging

Examples:
  geombench gen -points 100 -seed 7
  geombench raycast -rays 500 -out hits.txt
  geombench bench -points 100000`)
}

// sceneBounds converts the configured min/max corners into a box. The
// constructor swaps any inverted axis.
func sceneBounds(cfg *config.Config) geom.Box3d {
	lo := cfg.Scene.Bounds.Min
	hi := cfg.Scene.Bounds.Max
	return geom.NewBox3(
		geom.Point3d{X: lo[0], Y: lo[1], Z: lo[2]},
		geom.Point3d{X: hi[0], Y: hi[1], Z: hi[2]},
	)
}

// output opens the configured result sink, defaulting to stdout.
func output(cfg *config.Config) (io.WriteCloser, error) {
	if cfg.Output.Path == "" {
		return os.Stdout, nil
	}
	return os.Create(cfg.Output.Path)
}

func cmdGen(cfg *config.Config) {
	box := sceneBounds(cfg)
	pts := geom.RandomPoints3(cfg.Scene.Seed, cfg.Scene.Points, box)
	logger.Info("generated scene",
		zap.Int64("seed", cfg.Scene.Seed),
		zap.Int("points", len(pts)),
	)

	w, err := output(cfg)
	if err != nil {
		logger.Fatal("opening output", zap.Error(err))
	}
	if w != os.Stdout {
		defer w.Close()
	}

	for _, p := range pts {
		fmt.Fprintln(w, p.Rounded(cfg.Output.Digits))
	}
}

// probeBoxes builds an axis-aligned box of the configured half-extent
// around every scene point.
func probeBoxes(pts []geom.Point3d, half float64) []geom.Box3d {
	h := geom.Vec3d{X: half, Y: half, Z: half}
	boxes := make([]geom.Box3d, len(pts))
	for i, p := range pts {
		boxes[i] = geom.Box3d{Min: p.Add(h.Neg()), Max: p.Add(h)}
	}
	return boxes
}

// sceneRays builds the ray workload: origins sampled in the scene
// volume, directions on the unit sphere. Derived seeds keep the rays
// decorrelated from the scene points.
func sceneRays(cfg *config.Config, box geom.Box3d) []geom.Ray3d {
	origins := geom.RandomPoints3(cfg.Scene.Seed+1, cfg.Queries.Rays, box)
	dirs := geom.RandomDirs3[float64](cfg.Scene.Seed+2, cfg.Queries.Rays)
	rays := make([]geom.Ray3d, len(origins))
	for i := range rays {
		rays[i] = geom.Ray3d{Origin: origins[i], Dir: dirs[i]}
	}
	return rays
}

func cmdRaycast(cfg *config.Config) {
	box := sceneBounds(cfg)
	pts := geom.RandomPoints3(cfg.Scene.Seed, cfg.Scene.Points, box)
	boxes := probeBoxes(pts, cfg.Queries.BoxHalf)
	rays := sceneRays(cfg, box)

	w, err := output(cfg)
	if err != nil {
		logger.Fatal("opening output", zap.Error(err))
	}
	if w != os.Stdout {
		defer w.Close()
	}

	hits := 0
	for ri, r := range rays {
		nearest := -1
		nearestT := 0.0
		for bi, b := range boxes {
			t0, _, ok := r.IntersectBox(b)
			if !ok || t0 < 0 {
				continue
			}
			if nearest < 0 || t0 < nearestT {
				nearest, nearestT = bi, t0
			}
		}
		if nearest < 0 {
			fmt.Fprintf(w, "ray %d: miss\n", ri)
			continue
		}
		hits++
		entry := r.At(nearestT).Rounded(cfg.Output.Digits)
		fmt.Fprintf(w, "ray %d: point %d t=%.*f at %v\n",
			ri, nearest, cfg.Output.Digits, nearestT, entry)
	}

	logger.Info("raycast done",
		zap.Int("rays", len(rays)),
		zap.Int("hits", hits),
		zap.Int("boxes", len(boxes)),
	)
}

// sceneSegments pairs up random points into a segment workload.
func sceneSegments(cfg *config.Config, box geom.Box3d) []geom.Segment3d {
	ends := geom.RandomPoints3(cfg.Scene.Seed+3, cfg.Queries.Segments*2, box)
	segs := make([]geom.Segment3d, cfg.Queries.Segments)
	for i := range segs {
		segs[i] = geom.Segment3d{A: ends[2*i], B: ends[2*i+1]}
	}
	return segs
}

func cmdBench(cfg *config.Config) {
	box := sceneBounds(cfg)
	pts := geom.RandomPoints3(cfg.Scene.Seed, cfg.Scene.Points, box)
	boxes := probeBoxes(pts, cfg.Queries.BoxHalf)
	rays := sceneRays(cfg, box)
	segs := sceneSegments(cfg, box)

	iters := cfg.Queries.Iterations
	if iters < 1 {
		iters = 1
	}

	var rayHits int
	start := time.Now()
	for it := 0; it < iters; it++ {
		rayHits = 0
		for _, r := range rays {
			for _, b := range boxes {
				if t0, _, ok := r.IntersectBox(b); ok && t0 >= 0 {
					rayHits++
				}
			}
		}
	}
	rayDur := time.Since(start)

	var minDist float64
	start = time.Now()
	for it := 0; it < iters; it++ {
		minDist = 0
		first := true
		for i, s := range segs {
			for _, o := range segs[i+1:] {
				d := s.DistanceTo(o)
				if first || d < minDist {
					minDist, first = d, false
				}
			}
		}
	}
	segDur := time.Since(start)

	logger.Info("bench done",
		zap.Int("iterations", iters),
		zap.Int("ray_tests", iters*len(rays)*len(boxes)),
		zap.Int("ray_hits", rayHits),
		zap.Duration("ray_time", rayDur),
		zap.Int("segment_pairs", iters*len(segs)*(len(segs)-1)/2),
		zap.Float64("min_segment_distance", minDist),
		zap.Duration("segment_time", segDur),
	)

	fmt.Printf("rays:     %d tests, %d hits, %v\n", iters*len(rays)*len(boxes), rayHits, rayDur)
	fmt.Printf("segments: %d pairs, min distance %.*f, %v\n",
		iters*len(segs)*(len(segs)-1)/2, cfg.Output.Digits, minDist, segDur)
}

func cmdConfigInit(cfg *config.Config) {
	if err := cfg.Save(); err != nil {
		logger.Fatal("saving config", zap.Error(err))
	}
	fmt.Printf("Config written to %s\n", config.ConfigDir())
}
