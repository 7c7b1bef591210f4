package voxel

// Stats summarizes the non-zero cells of a grid. When NonZeroCount is 0 the
// other fields are zero and carry no meaning.
type Stats struct {
	Min          uint32
	Max          uint32
	Mean         float64
	NonZeroCount int
}

// Stats computes min, max and mean over non-zero cells.
func (g *Grid) Stats() Stats {
	var s Stats
	var sum uint64
	for _, c := range g.Cells {
		if c == 0 {
			continue
		}
		if s.NonZeroCount == 0 || c < s.Min {
			s.Min = c
		}
		s.Max = max(s.Max, c)
		sum += uint64(c)
		s.NonZeroCount++
	}
	if s.NonZeroCount > 0 {
		s.Mean = float64(sum) / float64(s.NonZeroCount)
	}
	return s
}
