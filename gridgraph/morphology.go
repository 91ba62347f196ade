package gridgraph

// Dilate returns the binary dilation of s: a voxel is on if it or any of
// its conn-neighbors is on.
// Complexity: O(N·d).
func (s *VoxelSet) Dilate(conn Connectivity) *VoxelSet {
	out := NewVoxelSet(s.shape)
	offsets := conn.Offsets()
	for i, on := range s.on {
		if !on {
			continue
		}
		v := s.shape.Voxel(i)
		out.AddIndex(i)
		for _, d := range offsets {
			out.Add(v.Add(d))
		}
	}

	return out
}

// Erode returns the binary erosion of s: a voxel stays on only if it and
// all of its conn-neighbors are on. Neighbors outside the grid count as
// off, so voxels touching the grid border are always removed.
// Complexity: O(N·d).
func (s *VoxelSet) Erode(conn Connectivity) *VoxelSet {
	out := NewVoxelSet(s.shape)
	offsets := conn.Offsets()
	for i, on := range s.on {
		if !on {
			continue
		}
		v := s.shape.Voxel(i)
		keep := true
		for _, d := range offsets {
			if !s.Has(v.Add(d)) {
				keep = false
				break
			}
		}
		if keep {
			out.AddIndex(i)
		}
	}

	return out
}
