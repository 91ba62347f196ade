package gridgraph

// ConnectedComponents finds all contiguous regions of s under conn.
// Returns one slice of row-major indices per component. Components are
// ordered by their lowest index and each slice is in BFS discovery order.
//
// Time:   O(N·d), where d = 6, 18 or 26.
// Memory: O(N) for visited flags and output.
func (s *VoxelSet) ConnectedComponents(conn Connectivity) [][]int {
	seen := make([]bool, len(s.on))
	offsets := conn.Offsets()
	var comps [][]int

	for i0, on := range s.on {
		if !on || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := s.shape.Voxel(queue[qi])
			for _, d := range offsets {
				v := u.Add(d)
				if !s.Has(v) {
					continue
				}
				vi := s.shape.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
