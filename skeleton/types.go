package skeleton

import (
	"context"
	"errors"

	"github.com/katalvlaran/medax/core"
	"github.com/katalvlaran/medax/prim_kruskal"
)

var (
	// ErrBadTolerance indicates a tolerance that makes the link cutoff non-positive.
	ErrBadTolerance = errors.New("skeleton: tolerance must be greater than -1")

	// ErrBadBinWidth indicates a non-positive or non-finite bin width.
	ErrBadBinWidth = errors.New("skeleton: bin width must be positive")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("skeleton: graph is nil")

	// ErrBadPasses indicates a negative pruning budget.
	ErrBadPasses = errors.New("skeleton: max passes must be non-negative")
)

// Default parameters.
const (
	DefaultTolerance = 0.5
	// DefaultBinDivisor divides the reference diameter into the graph bin width.
	DefaultBinDivisor = 1.8
)

// BuildOptions configures Build.
type BuildOptions struct {
	// Tolerance widens the link cutoff to (1+Tolerance)·BinWidth.
	Tolerance float64

	// BinWidth is the expected sample spacing. Default: 1/DefaultBinDivisor
	// (a unit reference diameter in real units).
	BinWidth float64

	// Method selects the MST algorithm: prim_kruskal.MethodKruskal or MethodPrim.
	Method string
}

// BuildOption mutates BuildOptions.
type BuildOption func(*BuildOptions)

// DefaultBuildOptions returns tolerance 0.5, bin width 1/1.8 and Kruskal.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Tolerance: DefaultTolerance,
		BinWidth:  1 / DefaultBinDivisor,
		Method:    prim_kruskal.MethodKruskal,
	}
}

// WithTolerance sets the link tolerance.
func WithTolerance(tol float64) BuildOption {
	return func(o *BuildOptions) { o.Tolerance = tol }
}

// WithBinWidth sets the bin width directly.
func WithBinWidth(w float64) BuildOption {
	return func(o *BuildOptions) { o.BinWidth = w }
}

// WithMethod selects the MST algorithm.
func WithMethod(m string) BuildOption {
	return func(o *BuildOptions) { o.Method = m }
}

// ExtractOptions configures Extract.
type ExtractOptions struct {
	// Ctx bounds the pruning loop; defaults to context.Background().
	Ctx context.Context

	// MaxPasses caps the number of prune passes. 0 means the node count
	// of the input tree, which is always enough for a tree.
	MaxPasses int
}

// ExtractOption mutates ExtractOptions.
type ExtractOption func(*ExtractOptions)

// DefaultExtractOptions returns a background context and an automatic budget.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{Ctx: context.Background()}
}

// WithContext sets the pruning context. A nil context is ignored.
func WithContext(ctx context.Context) ExtractOption {
	return func(o *ExtractOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPasses caps the number of prune passes.
func WithMaxPasses(n int) ExtractOption {
	return func(o *ExtractOptions) { o.MaxPasses = n }
}

// Branch is a removable side chain: Path runs from Endpoint up to but
// excluding Junction, and Length is the summed edge weight from Endpoint
// to Junction.
type Branch struct {
	Endpoint int
	Junction int
	Length   float64
	Path     []int
}

// Backbone is the result of Extract.
type Backbone struct {
	// Graph is the pruned copy of the input tree.
	Graph *core.Graph

	// Simple is true when Graph is a connected simple path of at least two
	// nodes: exactly two leaves, no junctions and no cycles.
	Simple bool

	// Passes counts successful prune passes.
	Passes int

	// Sizes holds the node count before the first pass and after each pass.
	Sizes []int
}
