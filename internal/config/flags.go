package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSeed   = flag.Int64("seed", 0, "Scene PRNG seed")
	flagPoints = flag.Int("points", 0, "Number of scene points")
	flagRays   = flag.Int("rays", 0, "Number of ray queries")
	flagOut    = flag.String("out", "", "Result output path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagPoints > 0 {
		cfg.Scene.Points = *flagPoints
	}
	if *flagRays > 0 {
		cfg.Queries.Rays = *flagRays
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
}
