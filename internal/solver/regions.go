package solver

import "github.com/glowgrid/akari/internal/board"

// Region is one connected component of blank cells under 4-directional
// grid adjacency. Walls bound every visibility ray, so lighting, bulb
// conflicts, and numbered-wall adjacency never cross a region boundary;
// each region is solved independently.
type Region struct {
	Cells []board.Coordinate // discovery order, seeded row-major
}

// Regions flood-fills the blanks in row-major discovery order. The
// visit order is deterministic so region cell ordering (and with it the
// backtracking order and memo keys) is reproducible.
func Regions(b *board.Board) []Region {
	seen := make([][]bool, b.Rows)
	for r := range seen {
		seen[r] = make([]bool, b.Cols)
	}
	regions := []Region{}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if seen[r][c] || b.Grid[r][c].Kind != board.Blank {
				continue
			}
			reg := Region{}
			queue := []board.Coordinate{{Row: r, Col: c}}
			seen[r][c] = true
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				reg.Cells = append(reg.Cells, cur)
				for _, d := range board.Directions {
					nr, nc := cur.Row+d.Row, cur.Col+d.Col
					if !b.InBounds(nr, nc) || seen[nr][nc] {
						continue
					}
					if b.Grid[nr][nc].Kind != board.Blank {
						continue
					}
					seen[nr][nc] = true
					queue = append(queue, board.Coordinate{Row: nr, Col: nc})
				}
			}
			regions = append(regions, reg)
		}
	}
	return regions
}
