package solver

import "github.com/glowgrid/akari/internal/board"

// Per-region exhaustive search. Cells are decided bulb/no-bulb in the
// region's discovery order; branches are memoized on (position index,
// region bulb bitstring) so equivalent partial assignments reached along
// different paths are not re-explored.

type memoKey struct {
	idx  int
	mask uint64
}

type regionSolver struct {
	b     *board.Board
	cells []board.Coordinate
	walls []board.Coordinate // numbered walls adjacent to the region
	memo  map[memoKey]bool   // records failed states
}

func newRegionSolver(b *board.Board, reg Region) *regionSolver {
	rs := &regionSolver{
		b:     b,
		cells: reg.Cells,
		memo:  make(map[memoKey]bool),
	}
	seen := make(map[board.Coordinate]bool)
	for _, cell := range reg.Cells {
		for _, d := range board.Directions {
			nr, nc := cell.Row+d.Row, cell.Col+d.Col
			if !b.InBounds(nr, nc) || b.Grid[nr][nc].Kind != board.NumberedWall {
				continue
			}
			w := board.Coordinate{Row: nr, Col: nc}
			if !seen[w] {
				seen[w] = true
				rs.walls = append(rs.walls, w)
			}
		}
	}
	return rs
}

func (rs *regionSolver) bulbMask() uint64 {
	var mask uint64
	for i, c := range rs.cells {
		if rs.b.Get(c).Bulb {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// solve places bulbs on rs.b until the region is satisfied, leaving the
// winning assignment in place. Returns false if no assignment exists.
func (rs *regionSolver) solve() bool {
	return rs.solveFrom(0)
}

func (rs *regionSolver) solveFrom(idx int) bool {
	if idx == len(rs.cells) {
		return rs.satisfied()
	}
	memoize := len(rs.cells) <= 64
	var key memoKey
	if memoize {
		key = memoKey{idx, rs.bulbMask()}
		if rs.memo[key] {
			return false
		}
	}
	c := rs.cells[idx]
	cell := rs.b.Get(c)
	if cell.Bulb {
		// pre-existing or deduced bulb; not ours to retract
		if rs.solveFrom(idx + 1) {
			return true
		}
	} else {
		if !cell.Mark && rs.b.CanPlaceBulb(c.Row, c.Col) {
			cell.Bulb = true
			rs.b.RecomputeLighting()
			if rs.solveFrom(idx + 1) {
				return true
			}
			cell.Bulb = false
			rs.b.RecomputeLighting()
		}
		if cell.Lit || len(rs.b.LightSources(c.Row, c.Col)) > 0 {
			if rs.solveFrom(idx + 1) {
				return true
			}
		}
	}
	if memoize {
		rs.memo[key] = true
	}
	return false
}

func (rs *regionSolver) satisfied() bool {
	for _, c := range rs.cells {
		cell := rs.b.Get(c)
		if !cell.Lit {
			return false
		}
		if cell.Bulb && rs.b.IsViolatingBulb(c.Row, c.Col) {
			return false
		}
	}
	for _, w := range rs.walls {
		if rs.b.AdjacentBulbs(w.Row, w.Col) != rs.b.Grid[w.Row][w.Col].Number {
			return false
		}
	}
	return true
}
