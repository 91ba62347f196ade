package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/medax/gridgraph"
	"github.com/katalvlaran/medax/prim_kruskal"
	"github.com/katalvlaran/medax/ridge"
	"github.com/katalvlaran/medax/skeleton"
	"github.com/katalvlaran/medax/sphere"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// SphereConfig is a sphere in TOML form.
type SphereConfig struct {
	Center [3]float64 `toml:"center"`
	Radius float64    `toml:"radius"`
}

// Sphere converts c to a sphere.Sphere.
func (c SphereConfig) Sphere() sphere.Sphere {
	return sphere.Sphere{
		Center: r3.Vector{X: c.Center[0], Y: c.Center[1], Z: c.Center[2]},
		Radius: math.Abs(c.Radius),
	}
}

// Config holds every parameter of a run.
type Config struct {
	// Scale is the grid resolution s; Diameter the reference particle diameter d.
	Scale    float64 `toml:"scale"`
	Diameter float64 `toml:"diameter"`

	// Ridge detection.
	LaplaceThreshold   float64 `toml:"laplace_threshold"`
	MinComponentFactor float64 `toml:"min_component_factor"`
	// Connectivity is 6, 18 or 26.
	Connectivity int `toml:"connectivity"`

	// Projection: δ = s·d / ProjectorDivisor.
	ProjectorDivisor float64 `toml:"projector_divisor"`
	MinFitPoints     int     `toml:"min_fit_points"`
	MinProjectPoints int     `toml:"min_project_points"`
	// FitDomainSphere fits one sphere to all domain voxels and projects
	// every component onto it; otherwise each component is fitted alone.
	FitDomainSphere bool `toml:"fit_domain_sphere"`
	// Sphere, when set, overrides any fit.
	Sphere *SphereConfig `toml:"sphere"`
	// Seed is returned by degenerate fits.
	Seed SphereConfig `toml:"seed"`

	// Graph: bin width = d / GraphDivisor (RealUnits) or s·d / GraphDivisor.
	GraphDivisor float64 `toml:"graph_divisor"`
	Tolerance    float64 `toml:"tolerance"`
	MSTMethod    string  `toml:"mst_method"`
	// RealUnits divides projected positions and radii by s before building.
	RealUnits bool `toml:"real_units"`

	// MaxPasses caps pruning per component; 0 means the node count.
	MaxPasses int `toml:"max_passes"`

	// Workers bounds concurrent components; 0 means unbounded.
	Workers int `toml:"workers"`

	Logging LogConfig `toml:"logging"`
}

// DefaultConfig returns s = d = 1 and the stock constants.
func DefaultConfig() Config {
	seed := sphere.Seed
	return Config{
		Scale:              1,
		Diameter:           1,
		LaplaceThreshold:   ridge.DefaultLaplaceThreshold,
		MinComponentFactor: ridge.DefaultMinComponentFactor,
		Connectivity:       26,
		ProjectorDivisor:   sphere.DefaultBinDivisor,
		MinFitPoints:       sphere.MinFitPoints,
		MinProjectPoints:   sphere.MinProjectPoints,
		FitDomainSphere:    true,
		Seed: SphereConfig{
			Center: [3]float64{seed.Center.X, seed.Center.Y, seed.Center.Z},
			Radius: seed.Radius,
		},
		GraphDivisor: skeleton.DefaultBinDivisor,
		Tolerance:    skeleton.DefaultTolerance,
		MSTMethod:    prim_kruskal.MethodKruskal,
		RealUnits:    true,
		Workers:      4,
		Logging:      LogConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
// Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, fmt.Errorf("%w: no TOML configuration file provided", ErrInvalidConfig)
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("pipeline: could not decode TOML config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"scale", c.Scale},
		{"diameter", c.Diameter},
		{"projector_divisor", c.ProjectorDivisor},
		{"graph_divisor", c.GraphDivisor},
	} {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if !(c.Tolerance > -1) {
		return fmt.Errorf("%w: tolerance must be greater than -1, got %v", ErrInvalidConfig, c.Tolerance)
	}
	if !(c.MinComponentFactor >= 0) {
		return fmt.Errorf("%w: min_component_factor must be non-negative", ErrInvalidConfig)
	}
	if _, err := c.connectivity(); err != nil {
		return err
	}
	if c.MSTMethod != prim_kruskal.MethodKruskal && c.MSTMethod != prim_kruskal.MethodPrim {
		return fmt.Errorf("%w: unknown mst_method %q", ErrInvalidConfig, c.MSTMethod)
	}
	if c.MinFitPoints < 4 {
		return fmt.Errorf("%w: min_fit_points must be at least 4", ErrInvalidConfig)
	}
	if c.MinProjectPoints < 0 || c.MaxPasses < 0 || c.Workers < 0 {
		return fmt.Errorf("%w: counts must be non-negative", ErrInvalidConfig)
	}
	if c.Sphere != nil && c.Sphere.Radius == 0 {
		return fmt.Errorf("%w: sphere radius must be non-zero", ErrInvalidConfig)
	}
	if _, err := c.Logging.level(); err != nil {
		return err
	}

	return nil
}

func (c Config) connectivity() (gridgraph.Connectivity, error) {
	switch c.Connectivity {
	case 6:
		return gridgraph.Conn6, nil
	case 18:
		return gridgraph.Conn18, nil
	case 26:
		return gridgraph.Conn26, nil
	default:
		return 0, fmt.Errorf("%w: connectivity must be 6, 18 or 26, got %d", ErrInvalidConfig, c.Connectivity)
	}
}

// ridgeOptions maps c onto ridge options. c must be valid.
func (c Config) ridgeOptions() []ridge.Option {
	conn, _ := c.connectivity()
	return []ridge.Option{
		ridge.WithScale(c.Scale),
		ridge.WithDiameter(c.Diameter),
		ridge.WithLaplaceThreshold(c.LaplaceThreshold),
		ridge.WithMinComponentFactor(c.MinComponentFactor),
		ridge.WithConnectivity(conn),
	}
}

func (c Config) fitOptions() []sphere.FitOption {
	return []sphere.FitOption{
		sphere.WithSeed(c.Seed.Sphere()),
		sphere.WithMinFitPoints(c.MinFitPoints),
	}
}

// graphBinWidth returns δ' in the units the graph is built in.
func (c Config) graphBinWidth() float64 {
	if c.RealUnits {
		return c.Diameter / c.GraphDivisor
	}

	return c.Scale * c.Diameter / c.GraphDivisor
}
