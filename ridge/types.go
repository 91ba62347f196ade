package ridge

import (
	"errors"

	"github.com/katalvlaran/medax/gridgraph"
)

var (
	// ErrFieldNil is returned when Detect receives a nil field.
	ErrFieldNil = errors.New("ridge: field is nil")

	// ErrRidgeNil is returned when Split receives a nil ridge.
	ErrRidgeNil = errors.New("ridge: ridge is nil")

	// ErrBadScale indicates a non-positive resolution scale or diameter.
	ErrBadScale = errors.New("ridge: scale and diameter must be positive")

	// ErrBadFactor indicates a negative component-size factor.
	ErrBadFactor = errors.New("ridge: component factor must be non-negative")
)

// Default parameters.
const (
	// DefaultLaplaceThreshold keeps voxels whose Laplacian is at or below it.
	DefaultLaplaceThreshold = -0.8

	// DefaultMinComponentFactor scales d·s into the minimum component size.
	DefaultMinComponentFactor = 18.0
)

// Options configures Detect and Split.
type Options struct {
	// Scale is the grid resolution s (voxels per length unit).
	Scale float64

	// Diameter is the reference particle diameter d.
	Diameter float64

	// LaplaceThreshold: Laplacian values above it are discarded.
	LaplaceThreshold float64

	// MinComponentFactor: components need more than factor·d·s voxels.
	MinComponentFactor float64

	// Conn is the structuring element for dilation, labeling and erosion.
	Conn gridgraph.Connectivity
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns s = d = 1, threshold −0.8, factor 18 and
// 26-connectivity.
func DefaultOptions() Options {
	return Options{
		Scale:              1,
		Diameter:           1,
		LaplaceThreshold:   DefaultLaplaceThreshold,
		MinComponentFactor: DefaultMinComponentFactor,
		Conn:               gridgraph.Conn26,
	}
}

// WithScale sets the resolution scale s.
func WithScale(s float64) Option { return func(o *Options) { o.Scale = s } }

// WithDiameter sets the reference diameter d.
func WithDiameter(d float64) Option { return func(o *Options) { o.Diameter = d } }

// WithLaplaceThreshold sets the curvature cutoff.
func WithLaplaceThreshold(t float64) Option { return func(o *Options) { o.LaplaceThreshold = t } }

// WithMinComponentFactor sets the component-size factor. Split keeps a
// component only when its voxel count is strictly greater than
// factor·d·s; a component of exactly that size is discarded.
func WithMinComponentFactor(f float64) Option {
	return func(o *Options) { o.MinComponentFactor = f }
}

// WithConnectivity sets the structuring element.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// Ridge is the output of Detect.
type Ridge struct {
	// Mask is the dilated candidate set, or only Fallback when
	// UsedFallback is set.
	Mask *gridgraph.VoxelSet

	// Fallback is the voxel of minimum filtered Laplacian over the whole
	// grid (first in row-major order on ties). When the filtered Laplacian
	// is zero everywhere this is voxel (0,0,0), which may lie outside the
	// domain.
	Fallback gridgraph.Voxel

	// UsedFallback is true when no candidate voxel survived filtering.
	UsedFallback bool
}
