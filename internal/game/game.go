// Package game is the turn-based facade the host drives: human toggles,
// the engine's reply, solve requests, puzzle lifecycle, and exact
// undo/redo over the interleaved move sequence.
package game

import (
	"math/rand"

	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/engine"
	"github.com/glowgrid/akari/internal/generator"
	"github.com/glowgrid/akari/internal/graph"
	"github.com/glowgrid/akari/internal/solver"
)

// Status is the outcome taxonomy for facade operations. These are
// return values, never panics; the host maps them to user-facing text.
type Status int

const (
	StatusOK Status = iota
	StatusIllegalMove
	StatusNoSolution
	StatusNoSafeMove
	StatusSolved
	StatusNothingToUndo
	StatusNothingToRedo
	StatusGenerationExhausted
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusIllegalMove:
		return "illegal move"
	case StatusNoSolution:
		return "no solution found"
	case StatusNoSafeMove:
		return "no safe move"
	case StatusSolved:
		return "puzzle solved"
	case StatusNothingToUndo:
		return "nothing to undo"
	case StatusNothingToRedo:
		return "nothing to redo"
	case StatusGenerationExhausted:
		return "puzzle generation exhausted"
	}
	return "unknown"
}

type Game struct {
	b       *board.Board
	initial *board.Board // wall layout only, for Restart
	g       *graph.Graph
	cfg     generator.Config
	rng     *rand.Rand

	state             engine.State
	humanContributed  bool
	engineContributed bool
	lastEngine        board.Coordinate

	undo []*Snapshot
	redo []*Snapshot
}

// New generates a fresh puzzle from cfg. The seed makes generation
// reproducible.
func New(cfg generator.Config, seed int64) (*Game, error) {
	g := &Game{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
	b, err := generator.Generate(cfg, g.rng)
	if err != nil {
		return nil, err
	}
	g.adopt(b)
	return g, nil
}

// NewFromBoard wraps an existing board (fixtures, files). Any bulbs or
// marks already on it become part of the baseline snapshot.
func NewFromBoard(b *board.Board) *Game {
	g := &Game{
		cfg: generator.DefaultConfig(),
		rng: rand.New(rand.NewSource(1)),
	}
	g.adopt(b)
	return g
}

func (g *Game) adopt(b *board.Board) {
	g.b = b
	g.initial = wallsOnly(b)
	g.b.RecomputeLighting()
	g.g = graph.Build(b)
	g.state = engine.WaitingForHuman
	g.humanContributed = false
	g.engineContributed = false
	g.lastEngine = board.NilCoordinate()
	g.resetHistory()
}

func wallsOnly(b *board.Board) *board.Board {
	nb := b.Clone()
	nb.ClearAssignment()
	return nb
}

// Board exposes the live board for rendering. Callers must treat it as
// read-only; all mutation goes through the facade.
func (g *Game) Board() *board.Board {
	return g.b
}

func (g *Game) Graph() *graph.Graph {
	return g.g
}

func (g *Game) State() engine.State {
	return g.state
}

// TeamEffort reports whether both the human and the engine have
// committed at least one move since the last reset.
func (g *Game) TeamEffort() bool {
	return g.humanContributed && g.engineContributed
}

// LastEngineMove returns the engine's most recent move target, if any.
func (g *Game) LastEngineMove() (board.Coordinate, bool) {
	return g.lastEngine, !g.lastEngine.IsNil()
}

// ToggleBulb is the human intent to place or remove a bulb. Placement
// is rejected by the legality check before any lighting recompute;
// removal is always allowed. Non-blank targets are silent no-ops.
func (g *Game) ToggleBulb(r int, c int) Status {
	if g.state != engine.WaitingForHuman {
		return StatusIllegalMove
	}
	if !g.b.InBounds(r, c) || g.b.Grid[r][c].Kind != board.Blank {
		return StatusIllegalMove
	}
	cell := &g.b.Grid[r][c]
	if cell.Bulb {
		cell.Bulb = false
	} else {
		if !g.b.CanPlaceBulb(r, c) {
			return StatusIllegalMove
		}
		cell.Bulb = true
		cell.Mark = false
	}
	g.b.RecomputeLighting()
	g.humanContributed = true
	return g.afterHumanMove()
}

// ToggleMark flips the "no bulb here" annotation; setting it clears any
// bulb so the two stay mutually exclusive.
func (g *Game) ToggleMark(r int, c int) Status {
	if g.state != engine.WaitingForHuman {
		return StatusIllegalMove
	}
	if !g.b.InBounds(r, c) || g.b.Grid[r][c].Kind != board.Blank {
		return StatusIllegalMove
	}
	cell := &g.b.Grid[r][c]
	cell.Mark = !cell.Mark
	if cell.Mark {
		cell.Bulb = false
	}
	g.b.RecomputeLighting()
	g.humanContributed = true
	return g.afterHumanMove()
}

func (g *Game) afterHumanMove() Status {
	if ok, _ := g.b.IsSolved(); ok {
		// no engine turn follows a human-caused solve
		g.state = engine.Solved
		g.commit()
		return StatusSolved
	}
	g.state = engine.EngineThinking
	g.commit()
	return StatusOK
}

// EngineMove performs the engine's single reply. It is only valid while
// the machine is in EngineThinking; a turn that finds no safe move
// passes back to the human without a history entry.
func (g *Game) EngineMove() (engine.Move, Status) {
	if g.state != engine.EngineThinking {
		return engine.Move{}, StatusIllegalMove
	}
	mv := engine.New(g.b, g.g).TakeTurn()
	if mv.Kind == engine.NoMove {
		g.state = engine.WaitingForHuman
		return mv, StatusNoSafeMove
	}
	g.engineContributed = true
	g.lastEngine = mv.Cell
	if ok, _ := g.b.IsSolved(); ok {
		g.state = engine.Solved
		g.commit()
		return mv, StatusSolved
	}
	g.state = engine.WaitingForHuman
	g.commit()
	return mv, StatusOK
}

// RequestSolve runs the solver on the live board and commits the result
// if one exists. On failure the board is left bit-for-bit unchanged.
func (g *Game) RequestSolve() Status {
	if g.state == engine.Solved {
		return StatusIllegalMove
	}
	prior := g.snapshot()
	if !solver.New(g.b).Solve() {
		g.restore(prior)
		return StatusNoSolution
	}
	g.state = engine.Solved
	g.commit()
	return StatusSolved
}

// NewPuzzle regenerates walls from the stored config. A non-zero seed
// reseeds the generator for reproducibility.
func (g *Game) NewPuzzle(seed int64) Status {
	if seed != 0 {
		g.rng = rand.New(rand.NewSource(seed))
	}
	b, err := generator.Generate(g.cfg, g.rng)
	if err != nil {
		return StatusGenerationExhausted
	}
	g.adopt(b)
	return StatusOK
}

// Restart resets to the initial wall layout with history reduced to a
// single baseline snapshot.
func (g *Game) Restart() Status {
	g.adopt(g.initial.Clone())
	return StatusOK
}
