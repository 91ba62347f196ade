package gridgraph

import (
	"errors"

	"github.com/golang/geo/r3"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a non-positive grid dimension.
	ErrEmptyGrid = errors.New("gridgraph: grid dimensions must be positive")
	// ErrShapeMismatch indicates that a value slice does not match the grid volume.
	ErrShapeMismatch = errors.New("gridgraph: data length does not match grid shape")
	// ErrNegativeEDT indicates an EDT value below zero (or NaN).
	ErrNegativeEDT = errors.New("gridgraph: EDT values must be non-negative")
)

// Connectivity selects the voxel neighborhood.
type Connectivity int

const (
	// Conn6 uses face neighbors only.
	Conn6 Connectivity = iota
	// Conn18 adds edge neighbors.
	Conn18
	// Conn26 adds corner neighbors (full 3×3×3 cube).
	Conn26
)

// Shape holds grid dimensions.
type Shape struct {
	NX, NY, NZ int
}

// Voxel is an integer grid coordinate.
type Voxel struct {
	X, Y, Z int
}

// Vector converts the voxel coordinate to a real 3-vector.
func (v Voxel) Vector() r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Add returns v shifted by d.
func (v Voxel) Add(d Voxel) Voxel {
	return Voxel{X: v.X + d.X, Y: v.Y + d.Y, Z: v.Z + d.Z}
}

// Valid reports whether every dimension is positive.
func (s Shape) Valid() bool {
	return s.NX > 0 && s.NY > 0 && s.NZ > 0
}

// Len returns the number of voxels in the grid.
func (s Shape) Len() int {
	return s.NX * s.NY * s.NZ
}

// InBounds reports whether v lies inside the grid.
// Complexity: O(1).
func (s Shape) InBounds(v Voxel) bool {
	return v.X >= 0 && v.X < s.NX && v.Y >= 0 && v.Y < s.NY && v.Z >= 0 && v.Z < s.NZ
}

// Index maps v to its row-major index.
// Complexity: O(1).
func (s Shape) Index(v Voxel) int {
	return (v.X*s.NY+v.Y)*s.NZ + v.Z
}

// Voxel converts a row-major index back to a coordinate.
// Complexity: O(1).
func (s Shape) Voxel(idx int) Voxel {
	z := idx % s.NZ
	idx /= s.NZ
	return Voxel{X: idx / s.NY, Y: idx % s.NY, Z: z}
}

// Offsets returns the neighbor offsets for c, excluding the center voxel.
// Offsets are ordered lexicographically by (X, Y, Z).
func (c Connectivity) Offsets() []Voxel {
	out := make([]Voxel, 0, 26)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				nonzero := abs(dx) + abs(dy) + abs(dz)
				if nonzero == 0 {
					continue
				}
				switch c {
				case Conn6:
					if nonzero > 1 {
						continue
					}
				case Conn18:
					if nonzero > 2 {
						continue
					}
				}
				out = append(out, Voxel{X: dx, Y: dy, Z: dz})
			}
		}
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
