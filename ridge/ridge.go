package ridge

import (
	"fmt"
	"math"

	"github.com/katalvlaran/medax"
	"github.com/katalvlaran/medax/gridgraph"
)

func (o Options) validate() error {
	if !(o.Scale > 0) || !(o.Diameter > 0) || math.IsInf(o.Scale, 0) || math.IsInf(o.Diameter, 0) {
		return fmt.Errorf("%w: s=%v d=%v", ErrBadScale, o.Scale, o.Diameter)
	}
	if !(o.MinComponentFactor >= 0) {
		return fmt.Errorf("%w: %v", ErrBadFactor, o.MinComponentFactor)
	}

	return nil
}

// Detect marks ridge candidates of field.
//
// Steps:
//  1. Laplacian of the EDT (border value repeated).
//  2. Zero it where EDT < s·d and where it exceeds LaplaceThreshold.
//  3. Candidates: negative filtered Laplacian inside the domain mask.
//  4. Dilate once with Conn.
//  5. No candidates: return the argmin voxel of the filtered Laplacian.
//
// Complexity: O(N·|Conn|).
func Detect(field *gridgraph.ScalarField, opts ...Option) (*Ridge, error) {
	if field == nil {
		return nil, ErrFieldNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	// 1-2. Filtered Laplacian.
	shape := field.Shape()
	lap := field.Laplacian()
	depth := o.Scale * o.Diameter
	for i := range lap {
		if field.EDTAt(i) < depth || lap[i] > o.LaplaceThreshold {
			lap[i] = 0
		}
	}

	// 3. Candidates; track the argmin as we go.
	cand := gridgraph.NewVoxelSet(shape)
	argmin := 0
	for i, v := range lap {
		if v < lap[argmin] {
			argmin = i
		}
		if v < 0 && field.Inside(i) {
			cand.AddIndex(i)
		}
	}
	r := &Ridge{Fallback: shape.Voxel(argmin)}

	// 5. Fallback.
	if cand.Len() == 0 {
		medax.Logger().Warn("ridge: no candidate voxels, using fallback", "voxel", r.Fallback)
		r.Mask = gridgraph.SingleVoxel(shape, r.Fallback)
		r.UsedFallback = true
		return r, nil
	}

	// 4. Bridge one-voxel gaps.
	r.Mask = cand.Dilate(o.Conn)
	medax.Logger().Debug("ridge: candidates", "raw", cand.Len(), "dilated", r.Mask.Len())

	return r, nil
}

// Split labels the ridge mask and returns the thinned, large-enough
// components ordered by their lowest voxel index. The result is never empty.
//
// Steps:
//  1. Label Conn-connected components of r.Mask.
//  2. Keep components with more than MinComponentFactor·d·s voxels.
//  3. Erode each kept component once; components that vanish are dropped.
//  4. Nothing kept: return the fallback voxel alone.
func Split(r *Ridge, opts ...Option) ([]*gridgraph.VoxelSet, error) {
	if r == nil || r.Mask == nil {
		return nil, ErrRidgeNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	shape := r.Mask.Shape()
	minSize := o.MinComponentFactor * o.Diameter * o.Scale
	var out []*gridgraph.VoxelSet
	if !r.UsedFallback {
		for _, comp := range r.Mask.ConnectedComponents(o.Conn) {
			if float64(len(comp)) <= minSize {
				continue
			}
			thin := r.Mask.Subset(comp).Erode(o.Conn)
			if thin.Len() == 0 {
				continue
			}
			out = append(out, thin)
		}
	}
	if len(out) == 0 {
		if !r.UsedFallback {
			medax.Logger().Warn("ridge: no component large enough, using fallback",
				"voxel", r.Fallback, "min_size", minSize)
		}
		return []*gridgraph.VoxelSet{gridgraph.SingleVoxel(shape, r.Fallback)}, nil
	}
	medax.Logger().Debug("ridge: components", "kept", len(out))

	return out, nil
}
