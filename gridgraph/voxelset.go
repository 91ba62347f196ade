package gridgraph

// VoxelSet is a boolean grid: the set of "on" voxels of a Shape.
// Methods returning a VoxelSet always allocate a new one.
type VoxelSet struct {
	shape Shape
	on    []bool
	count int
}

// NewVoxelSet returns an empty set over shape.
// Complexity: O(N).
func NewVoxelSet(shape Shape) *VoxelSet {
	return &VoxelSet{shape: shape, on: make([]bool, shape.Len())}
}

// SingleVoxel returns a set holding exactly v.
func SingleVoxel(shape Shape, v Voxel) *VoxelSet {
	s := NewVoxelSet(shape)
	s.Add(v)
	return s
}

// Shape returns the grid dimensions.
func (s *VoxelSet) Shape() Shape { return s.shape }

// Len returns the number of voxels in the set.
func (s *VoxelSet) Len() int { return s.count }

// Add inserts v. Out-of-bounds voxels are ignored.
func (s *VoxelSet) Add(v Voxel) {
	if !s.shape.InBounds(v) {
		return
	}
	s.AddIndex(s.shape.Index(v))
}

// AddIndex inserts the voxel at a row-major index.
func (s *VoxelSet) AddIndex(idx int) {
	if !s.on[idx] {
		s.on[idx] = true
		s.count++
	}
}

// Has reports membership of v; out-of-bounds voxels are never members.
func (s *VoxelSet) Has(v Voxel) bool {
	return s.shape.InBounds(v) && s.on[s.shape.Index(v)]
}

// HasIndex reports membership of a row-major index.
func (s *VoxelSet) HasIndex(idx int) bool { return s.on[idx] }

// Indices returns member indices in ascending order.
// Complexity: O(N).
func (s *VoxelSet) Indices() []int {
	out := make([]int, 0, s.count)
	for i, on := range s.on {
		if on {
			out = append(out, i)
		}
	}

	return out
}

// Voxels returns member coordinates in row-major order.
func (s *VoxelSet) Voxels() []Voxel {
	out := make([]Voxel, 0, s.count)
	for i, on := range s.on {
		if on {
			out = append(out, s.shape.Voxel(i))
		}
	}

	return out
}

// Clone returns an independent copy.
func (s *VoxelSet) Clone() *VoxelSet {
	c := &VoxelSet{shape: s.shape, on: make([]bool, len(s.on)), count: s.count}
	copy(c.on, s.on)
	return c
}

// Subset returns the set holding only the given indices.
func (s *VoxelSet) Subset(indices []int) *VoxelSet {
	out := NewVoxelSet(s.shape)
	for _, i := range indices {
		out.AddIndex(i)
	}

	return out
}
