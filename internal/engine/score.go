package engine

import (
	"math"

	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/graph"
	"github.com/glowgrid/akari/internal/solver"
)

type candidate struct {
	cell   board.Coordinate
	score  int
	solves bool
}

// scoredPlacement simulates every legal candidate, scores it, and
// commits the best-scoring one that the feasibility oracle accepts.
// Centrality is recomputed every turn; the puzzles are small enough
// that this costs nothing, and it keeps the turn contract
// self-contained. Every simulation is fully undone before the next
// candidate is examined.
func (e *Engine) scoredPlacement() (Move, bool) {
	rk := e.g.RankNodes()

	cands := []candidate{}
	for r := 0; r < e.b.Rows; r++ {
		for c := 0; c < e.b.Cols; c++ {
			if e.b.Grid[r][c].Kind != board.Blank || !e.b.CanPlaceBulb(r, c) {
				continue
			}
			if cand, ok := e.evaluate(r, c, rk); ok {
				cands = append(cands, cand)
			}
		}
	}
	if len(cands) == 0 {
		return Move{}, false
	}
	e.sortCandidates(cands, rk)

	for _, cand := range cands {
		if cand.solves {
			e.commitBulb(cand.cell)
			return Move{Kind: PlaceBulb, Cell: cand.cell, Reason: "winning placement"}, true
		}
		e.commitBulb(cand.cell)
		if solver.Feasible(e.b) {
			return Move{Kind: PlaceBulb, Cell: cand.cell, Reason: "best scoring placement"}, true
		}
		e.b.Get(cand.cell).Bulb = false
		e.b.RecomputeLighting()
	}
	return Move{}, false
}

// evaluate simulates a bulb at (r, c) and scores it:
//
//	2*unlitGain + 20*wallDeficit - 10*mismatchAfter - unlitAfter
//	+ 5 if the cell was previously unlit
//	+ degree + round(0.1*centrality) - futurePlacementLimits
//
// wallDeficit is measured with the candidate in place: it steers the
// engine toward walls still needing bulbs, and contributes nothing for
// a wall the candidate exactly completes. A candidate that would itself
// be violating is rejected outright. The simulation is undone before
// returning.
func (e *Engine) evaluate(r int, c int, rk *graph.Ranking) (candidate, bool) {
	cell := &e.b.Grid[r][c]
	target := board.Coordinate{Row: r, Col: c}

	unlitGain := e.unlitLightGain(r, c)
	futureLimits := e.futurePlacementLimits(r, c)
	prevLit := cell.Lit

	cell.Bulb = true
	e.b.RecomputeLighting()

	if e.b.IsViolatingBulb(r, c) {
		cell.Bulb = false
		e.b.RecomputeLighting()
		return candidate{}, false
	}

	solved, _ := e.b.IsSolved()
	wallDeficit := e.numberedWallDeficit(r, c)
	mismatchAfter := e.b.NumberedMismatch()
	unlitAfter := e.b.UnlitBlanks()

	cell.Bulb = false
	e.b.RecomputeLighting()

	score := unlitGain*2 + wallDeficit*20 - mismatchAfter*10 - unlitAfter
	if !prevLit {
		score += 5
	}
	if id := e.g.NodeAt(r, c); id >= 0 {
		score += e.g.Nodes[id].Degree
		score += int(math.Round(rk.Scores[id] * 0.1))
	}
	score -= futureLimits

	return candidate{cell: target, score: score, solves: solved}, true
}

// unlitLightGain counts the cells a bulb at (r, c) would newly light:
// the cell itself if unlit, plus every unlit cell along the four rays.
func (e *Engine) unlitLightGain(r int, c int) int {
	gain := 0
	if !e.b.Grid[r][c].Lit {
		gain++
	}
	for _, d := range board.Directions {
		nr, nc := r+d.Row, c+d.Col
		for e.b.InBounds(nr, nc) {
			if e.b.Grid[nr][nc].IsWall() {
				break
			}
			if !e.b.Grid[nr][nc].Lit {
				gain++
			}
			nr += d.Row
			nc += d.Col
		}
	}
	return gain
}

// numberedWallDeficit sums the remaining bulb deficit of the adjacent
// numbered walls, counted with the candidate bulb already on the board.
func (e *Engine) numberedWallDeficit(r int, c int) int {
	deficit := 0
	for _, d := range board.Directions {
		nr, nc := r+d.Row, c+d.Col
		if !e.b.InBounds(nr, nc) || e.b.Grid[nr][nc].Kind != board.NumberedWall {
			continue
		}
		if rem := e.b.Grid[nr][nc].Number - e.b.AdjacentBulbs(nr, nc); rem > 0 {
			deficit += rem
		}
	}
	return deficit
}

// futurePlacementLimits counts the free blanks along the four rays whose
// own placement options this bulb would remove.
func (e *Engine) futurePlacementLimits(r int, c int) int {
	limits := 0
	for _, d := range board.Directions {
		nr, nc := r+d.Row, c+d.Col
		for e.b.InBounds(nr, nc) {
			cell := &e.b.Grid[nr][nc]
			if cell.IsWall() {
				break
			}
			if cell.Kind == board.Blank && !cell.Bulb && !cell.Mark {
				limits++
			}
			nr += d.Row
			nc += d.Col
		}
	}
	return limits
}
