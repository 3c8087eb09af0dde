package grid

// Regions labels every traversable cell with the id of its four-connected
// region and every obstacle with -1. Ids are assigned in row-major order of
// each region's first cell. The returned slice is indexed y*Width + x.
//
// Time:   O(W·H).
// Memory: O(W·H) for labels and the queue.
func (g *Grid) Regions() (labels []int, count int) {
	labels = make([]int, len(g.terrain))
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, len(g.terrain))

	for i0, t := range g.terrain {
		if t == Obstacle || labels[i0] >= 0 {
			continue
		}
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range [4]Cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				v := Cell{X: u.X + d.X, Y: u.Y + d.Y}
				if !g.Traversable(v) {
					continue
				}
				vi := g.index(v.X, v.Y)
				if labels[vi] < 0 {
					labels[vi] = count
					queue = append(queue, vi)
				}
			}
		}
		count++
	}

	return labels, count
}

// Isolated returns the index of the first landmark that lies outside the
// origin's region. ok is false when all landmarks share one region.
func (g *Grid) Isolated() (idx int, ok bool) {
	labels, _ := g.Regions()
	home := labels[g.index(g.landmarks[OriginIndex].X, g.landmarks[OriginIndex].Y)]
	for i, c := range g.landmarks {
		if labels[g.index(c.X, c.Y)] != home {
			return i, true
		}
	}

	return 0, false
}
