package sphere

import (
	"errors"

	"github.com/golang/geo/r3"
)

var (
	// ErrLengthMismatch indicates points and wall distances of different lengths.
	ErrLengthMismatch = errors.New("sphere: points and distances differ in length")

	// ErrBadBinWidth indicates a non-positive or non-finite angular bin width.
	ErrBadBinWidth = errors.New("sphere: bin width must be positive")
)

// Default parameters.
const (
	// MinFitPoints is the smallest cloud Fit will solve for.
	MinFitPoints = 4

	// MinProjectPoints is the smallest candidate set Project will bin.
	MinProjectPoints = 6

	// DefaultBinDivisor divides s·d into the projector bin width δ.
	DefaultBinDivisor = 2.1
)

// Sphere is a center and a non-negative radius.
type Sphere struct {
	Center r3.Vector
	Radius float64
}

// Seed is the starting sphere returned when a fit cannot be made.
var Seed = Sphere{Radius: 10}

// Contains reports whether p lies within tol of the sphere surface.
func (s Sphere) Contains(p r3.Vector, tol float64) bool {
	d := p.Sub(s.Center).Norm() - s.Radius
	if d < 0 {
		d = -d
	}

	return d <= tol
}

// FitOptions configures Fit.
type FitOptions struct {
	// Seed is returned for degenerate input.
	Seed Sphere

	// MinPoints is the smallest cloud that is fitted. Default MinFitPoints.
	MinPoints int
}

// FitOption mutates FitOptions.
type FitOption func(*FitOptions)

// DefaultFitOptions returns the package Seed and MinFitPoints.
func DefaultFitOptions() FitOptions {
	return FitOptions{Seed: Seed, MinPoints: MinFitPoints}
}

// WithSeed replaces the fallback sphere.
func WithSeed(s Sphere) FitOption {
	return func(o *FitOptions) { o.Seed = s }
}

// WithMinFitPoints sets the minimum cloud size for fitting.
func WithMinFitPoints(n int) FitOption {
	return func(o *FitOptions) { o.MinPoints = n }
}

// ProjectOptions configures Project.
type ProjectOptions struct {
	// BinWidth is δ, the angular cell size expressed as arc length on the
	// sphere. Default 1/DefaultBinDivisor (s = d = 1).
	//
	// δ is the full width of a cell: a point joins the cell of p when
	// |Δθ| < δ/(2R) and |Δφ| < δ/(2R·sinθ_p). These half-widths are half of
	// δ/R and δ/(R·sinθ_p); pass 2δ to bin with those as half-widths.
	BinWidth float64

	// Sphere, if non-nil, is used instead of fitting the candidates.
	Sphere *Sphere

	// MinPoints is the smallest set that is binned; smaller sets are
	// returned unchanged. Default MinProjectPoints.
	MinPoints int

	// Fit configures the fallback fit when Sphere is nil.
	Fit []FitOption
}

// ProjectOption mutates ProjectOptions.
type ProjectOption func(*ProjectOptions)

// DefaultProjectOptions returns δ = 1/2.1, no precomputed sphere and
// MinProjectPoints.
func DefaultProjectOptions() ProjectOptions {
	return ProjectOptions{
		BinWidth:  1 / DefaultBinDivisor,
		MinPoints: MinProjectPoints,
	}
}

// WithBinWidth sets δ.
func WithBinWidth(delta float64) ProjectOption {
	return func(o *ProjectOptions) { o.BinWidth = delta }
}

// WithSphere projects onto s instead of fitting the candidates.
func WithSphere(s Sphere) ProjectOption {
	return func(o *ProjectOptions) { o.Sphere = &s }
}

// WithMinProjectPoints sets the binning threshold.
func WithMinProjectPoints(n int) ProjectOption {
	return func(o *ProjectOptions) { o.MinPoints = n }
}

// WithFitOptions passes options to the fallback fit.
func WithFitOptions(opts ...FitOption) ProjectOption {
	return func(o *ProjectOptions) { o.Fit = append(o.Fit, opts...) }
}
