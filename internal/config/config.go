// Package config handles tool configuration loading and management.
package config

// Config holds all geombench settings.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Queries QueryConfig   `yaml:"queries"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SceneConfig describes the generated point scene.
type SceneConfig struct {
	Seed   int64  `yaml:"seed"`
	Points int    `yaml:"points"`
	Bounds Bounds `yaml:"bounds"`
}

// Bounds is the axis-aligned scene volume as min/max corners.
type Bounds struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

// QueryConfig holds the query workload settings.
type QueryConfig struct {
	Rays       int     `yaml:"rays"`
	Segments   int     `yaml:"segments"`
	BoxHalf    float64 `yaml:"box_half"` // half-extent of the per-point probe box
	Iterations int     `yaml:"iterations"`
}

// OutputConfig holds result output settings.
type OutputConfig struct {
	Path   string `yaml:"path"`   // empty means stdout
	Digits int    `yaml:"digits"` // decimal digits for reported coordinates
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Seed:   1,
			Points: 1000,
			Bounds: Bounds{
				Min: [3]float64{-100, -100, -100},
				Max: [3]float64{100, 100, 100},
			},
		},
		Queries: QueryConfig{
			Rays:       100,
			Segments:   100,
			BoxHalf:    1,
			Iterations: 1,
		},
		Output: OutputConfig{
			Path:   "",
			Digits: 4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
