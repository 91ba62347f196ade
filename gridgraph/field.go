package gridgraph

import (
	"fmt"
	"math"
)

// ScalarField is an EDT grid plus a same-shaped domain mask.
// It deep-copies its inputs and is immutable once built.
type ScalarField struct {
	shape Shape
	edt   []float64
	mask  []bool
}

// NewScalarField validates and copies edt and mask (non-zero = inside domain).
// Returns ErrEmptyGrid, ErrShapeMismatch or ErrNegativeEDT for invalid input.
// Complexity: O(N) time and memory.
func NewScalarField(shape Shape, edt []float64, mask []uint8) (*ScalarField, error) {
	if !shape.Valid() {
		return nil, ErrEmptyGrid
	}
	n := shape.Len()
	if len(edt) != n {
		return nil, fmt.Errorf("%w: edt has %d values, want %d", ErrShapeMismatch, len(edt), n)
	}
	if len(mask) != n {
		return nil, fmt.Errorf("%w: mask has %d values, want %d", ErrShapeMismatch, len(mask), n)
	}
	f := &ScalarField{
		shape: shape,
		edt:   make([]float64, n),
		mask:  make([]bool, n),
	}
	for i, v := range edt {
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: value %v at index %d", ErrNegativeEDT, v, i)
		}
		f.edt[i] = v
		f.mask[i] = mask[i] != 0
	}

	return f, nil
}

// Shape returns the grid dimensions.
func (f *ScalarField) Shape() Shape { return f.shape }

// EDT returns the distance value at v. v must be in bounds.
func (f *ScalarField) EDT(v Voxel) float64 { return f.edt[f.shape.Index(v)] }

// EDTAt returns the distance value at a row-major index.
func (f *ScalarField) EDTAt(idx int) float64 { return f.edt[idx] }

// Inside reports whether the voxel at idx belongs to the domain.
func (f *ScalarField) Inside(idx int) bool { return f.mask[idx] }

// DomainVoxels lists all voxels inside the domain in row-major order.
// Complexity: O(N).
func (f *ScalarField) DomainVoxels() []Voxel {
	var out []Voxel
	for i, in := range f.mask {
		if in {
			out = append(out, f.shape.Voxel(i))
		}
	}

	return out
}

// Laplacian returns the discrete Laplacian of the EDT: for each axis the
// second difference f[i-1] + f[i+1] - 2·f[i], summed over the three axes.
// Outside the grid the border value is repeated (reflecting boundary), so
// a constant field has a zero Laplacian everywhere.
// Complexity: O(N) time and memory.
func (f *ScalarField) Laplacian() []float64 {
	s := f.shape
	out := make([]float64, s.Len())
	for x := 0; x < s.NX; x++ {
		for y := 0; y < s.NY; y++ {
			for z := 0; z < s.NZ; z++ {
				v := Voxel{X: x, Y: y, Z: z}
				c := f.edt[s.Index(v)]
				var sum float64
				sum += f.at(clamp(x-1, s.NX), y, z) + f.at(clamp(x+1, s.NX), y, z) - 2*c
				sum += f.at(x, clamp(y-1, s.NY), z) + f.at(x, clamp(y+1, s.NY), z) - 2*c
				sum += f.at(x, y, clamp(z-1, s.NZ)) + f.at(x, y, clamp(z+1, s.NZ)) - 2*c
				out[s.Index(v)] = sum
			}
		}
	}

	return out
}

func (f *ScalarField) at(x, y, z int) float64 {
	return f.edt[(x*f.shape.NY+y)*f.shape.NZ+z]
}

// clamp reflects an out-of-range coordinate back onto the border voxel.
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
