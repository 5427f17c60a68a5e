package shape

import "github.com/katalvlaran/labyrinth/grid"

// Components splits the active cells into 4-connected regions, ignoring walls.
// Each region lists its cells in BFS discovery order; regions are ordered by
// their first cell in row-major order.
//
// Time:   O(active×4).
// Memory: O(active).
func (m *Mask) Components() [][]grid.Coord {
	seen := make(map[grid.Coord]bool, m.Size())
	var comps [][]grid.Coord

	for _, c0 := range m.Coords() {
		if seen[c0] {
			continue
		}
		queue := []grid.Coord{c0}
		seen[c0] = true
		var comp []grid.Coord

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, d := range grid.Directions {
				v := u.Step(d)
				if !m.cells.Has(v) || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether the active cells form a single 4-connected region.
// An empty mask is not connected.
func (m *Mask) Connected() bool {
	return len(m.Components()) == 1
}
