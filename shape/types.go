package shape

import (
	"errors"

	"github.com/golang/geo/r3"
)

var (
	// ErrGraphNil is returned for a nil graph or backbone.
	ErrGraphNil = errors.New("shape: graph is nil")

	// ErrPointMissing indicates a node ID with no matching sample.
	ErrPointMissing = errors.New("shape: node has no sample position")
)

// Diameters are inscribed-circle diameters along the backbone.
type Diameters struct {
	// Max is twice the largest radius.
	Max float64
	// Mean is twice the mean radius.
	Mean float64
	// Weighted is twice the mean radius weighted by radius² (cross-section area).
	Weighted float64
}

// Metrics collects every descriptor of one backbone.
type Metrics struct {
	// Reliable is false when the backbone is not a simple path.
	Reliable bool

	// Endpoints is the number of degree-1 nodes.
	Endpoints int

	// Length is the summed edge weight.
	Length float64

	// Order is the walk used for tangents, starting at the lowest endpoint.
	Order []int

	Tangents       []r3.Vector
	SegmentLengths []float64
	Angles         []float64
	Correlation    []float64

	Diameters Diameters

	// Aspect ratios: Length over each diameter; 0 when the diameter is 0.
	AspectMax      float64
	AspectMean     float64
	AspectWeighted float64
}
