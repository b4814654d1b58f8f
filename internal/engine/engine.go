// Package engine picks the single move an engine turn is allowed to
// make: repair one violation, or place one forced bulb, or place the
// best-scoring safe bulb, or mark one risky cell. Exactly one cell's
// bulb/mark flag changes per turn, never two.
package engine

import (
	"fmt"
	"sort"

	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/graph"
	"github.com/glowgrid/akari/internal/solver"
)

// State is the turn-based play state shared with the game facade.
type State int

const (
	WaitingForHuman State = iota
	EngineThinking
	Solved
)

func (s State) String() string {
	switch s {
	case WaitingForHuman:
		return "waiting for human"
	case EngineThinking:
		return "engine thinking"
	case Solved:
		return "solved"
	}
	return "unknown"
}

type MoveKind int

const (
	NoMove MoveKind = iota
	RemoveBulb
	PlaceBulb
	PlaceMark
)

type Move struct {
	Kind   MoveKind
	Cell   board.Coordinate
	Reason string
}

func (m Move) String() string {
	switch m.Kind {
	case RemoveBulb:
		return fmt.Sprintf("removed bulb at %v (%s)", m.Cell, m.Reason)
	case PlaceBulb:
		return fmt.Sprintf("placed bulb at %v (%s)", m.Cell, m.Reason)
	case PlaceMark:
		return fmt.Sprintf("marked %v (%s)", m.Cell, m.Reason)
	}
	return "no safe move"
}

type Engine struct {
	b *board.Board
	g *graph.Graph
}

func New(b *board.Board, g *graph.Graph) *Engine {
	return &Engine{b: b, g: g}
}

// TakeTurn applies exactly one mutation to the board and reports it, or
// reports NoMove and leaves the board untouched. Priority order:
// violation repair, forced placement, scored placement, fallback mark.
func (e *Engine) TakeTurn() Move {
	if m, ok := e.repairViolation(); ok {
		return m
	}
	if m, ok := e.forcedNumberedPlacement(); ok {
		return m
	}
	if m, ok := e.forcedLightSourcePlacement(); ok {
		return m
	}
	if m, ok := e.scoredPlacement(); ok {
		return m
	}
	if m, ok := e.fallbackMark(); ok {
		return m
	}
	return Move{Kind: NoMove, Reason: "no safe move found"}
}

// repairViolation removes the first violating bulb, row-major, whose
// removal leaves the board still solvable. A removal failing the oracle
// check is rolled back and the scan continues; it is never committed.
func (e *Engine) repairViolation() (Move, bool) {
	for _, v := range e.b.ViolatingBulbs() {
		cell := e.b.Get(v)
		cell.Bulb = false
		e.b.RecomputeLighting()
		if solver.Feasible(e.b) {
			return Move{Kind: RemoveBulb, Cell: v, Reason: "violating bulb"}, true
		}
		cell.Bulb = true
		e.b.RecomputeLighting()
	}
	return Move{}, false
}

// forcedNumberedPlacement finds a numbered wall needing exactly one more
// bulb with exactly one free adjacent blank to take it.
func (e *Engine) forcedNumberedPlacement() (Move, bool) {
	for r := 0; r < e.b.Rows; r++ {
		for c := 0; c < e.b.Cols; c++ {
			if e.b.Grid[r][c].Kind != board.NumberedWall {
				continue
			}
			placed := e.b.AdjacentBulbs(r, c)
			free := e.b.FreeAdjacentBlanks(r, c)
			if e.b.Grid[r][c].Number-placed != 1 || len(free) != 1 {
				continue
			}
			target := free[0]
			if !e.b.CanPlaceBulb(target.Row, target.Col) {
				continue
			}
			e.commitBulb(target)
			return Move{Kind: PlaceBulb, Cell: target, Reason: "forced by numbered wall"}, true
		}
	}
	return Move{}, false
}

// forcedLightSourcePlacement finds an unlit blank that only one legal
// placement can still light, and places there.
func (e *Engine) forcedLightSourcePlacement() (Move, bool) {
	for r := 0; r < e.b.Rows; r++ {
		for c := 0; c < e.b.Cols; c++ {
			cell := &e.b.Grid[r][c]
			if cell.Kind != board.Blank || cell.Lit {
				continue
			}
			sources := e.b.LightSources(r, c)
			if len(sources) != 1 {
				continue
			}
			e.commitBulb(sources[0])
			return Move{Kind: PlaceBulb, Cell: sources[0], Reason: "single light source"}, true
		}
	}
	return Move{}, false
}

// fallbackMark marks one blank reachable by legal bulb placement from
// more than one direction, reducing future branching when no placement
// is safe.
func (e *Engine) fallbackMark() (Move, bool) {
	for r := 0; r < e.b.Rows; r++ {
		for c := 0; c < e.b.Cols; c++ {
			cell := &e.b.Grid[r][c]
			if cell.Kind != board.Blank || cell.Bulb || cell.Mark {
				continue
			}
			spots := 0
			for _, d := range board.Directions {
				nr, nc := r+d.Row, c+d.Col
				for e.b.InBounds(nr, nc) {
					if e.b.Grid[nr][nc].IsWall() {
						break
					}
					if e.b.Grid[nr][nc].Kind == board.Blank && e.b.CanPlaceBulb(nr, nc) {
						spots++
						break
					}
					nr += d.Row
					nc += d.Col
				}
			}
			if spots > 1 {
				target := board.Coordinate{Row: r, Col: c}
				cell.Mark = true
				cell.Bulb = false
				return Move{Kind: PlaceMark, Cell: target, Reason: "risky cell"}, true
			}
		}
	}
	return Move{}, false
}

func (e *Engine) commitBulb(c board.Coordinate) {
	cell := e.b.Get(c)
	cell.Bulb = true
	cell.Mark = false
	e.b.RecomputeLighting()
}

// sortCandidates orders best-first: solving placements before anything
// else, then higher score, then lower centrality rank, then higher raw
// centrality, then higher degree, then row-major.
func (e *Engine) sortCandidates(cands []candidate, rk *graph.Ranking) {
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.solves != b.solves {
			return a.solves
		}
		if a.score != b.score {
			return a.score > b.score
		}
		ra, rb := e.rankOf(a.cell, rk), e.rankOf(b.cell, rk)
		if ra != rb {
			return ra < rb
		}
		ca, cb := e.centralityOf(a.cell, rk), e.centralityOf(b.cell, rk)
		if ca != cb {
			return ca > cb
		}
		da, db := e.degreeOf(a.cell), e.degreeOf(b.cell)
		if da != db {
			return da > db
		}
		if a.cell.Row != b.cell.Row {
			return a.cell.Row < b.cell.Row
		}
		return a.cell.Col < b.cell.Col
	})
}

func (e *Engine) rankOf(c board.Coordinate, rk *graph.Ranking) int {
	id := e.g.NodeAt(c.Row, c.Col)
	if id < 0 {
		return int(^uint(0) >> 1)
	}
	return rk.Rank[id]
}

func (e *Engine) centralityOf(c board.Coordinate, rk *graph.Ranking) float64 {
	id := e.g.NodeAt(c.Row, c.Col)
	if id < 0 {
		return 0
	}
	return rk.Scores[id]
}

func (e *Engine) degreeOf(c board.Coordinate) int {
	id := e.g.NodeAt(c.Row, c.Col)
	if id < 0 {
		return 0
	}
	return e.g.Nodes[id].Degree
}
