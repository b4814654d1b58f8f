package game

import (
	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/engine"
)

// Snapshot is an immutable deep copy of everything that changes during
// play: the bulb/mark grids plus the turn-state scalars. History entries
// never share memory with the live board.
type Snapshot struct {
	Bulbs             [][]bool
	Marks             [][]bool
	State             engine.State
	HumanContributed  bool
	EngineContributed bool
	LastEngine        board.Coordinate
}

func (g *Game) snapshot() *Snapshot {
	s := &Snapshot{
		Bulbs:             make([][]bool, g.b.Rows),
		Marks:             make([][]bool, g.b.Rows),
		State:             g.state,
		HumanContributed:  g.humanContributed,
		EngineContributed: g.engineContributed,
		LastEngine:        g.lastEngine,
	}
	for r := 0; r < g.b.Rows; r++ {
		s.Bulbs[r] = make([]bool, g.b.Cols)
		s.Marks[r] = make([]bool, g.b.Cols)
		for c := 0; c < g.b.Cols; c++ {
			s.Bulbs[r][c] = g.b.Grid[r][c].Bulb
			s.Marks[r][c] = g.b.Grid[r][c].Mark
		}
	}
	return s
}

func (g *Game) restore(s *Snapshot) {
	for r := 0; r < g.b.Rows; r++ {
		for c := 0; c < g.b.Cols; c++ {
			g.b.Grid[r][c].Bulb = s.Bulbs[r][c]
			g.b.Grid[r][c].Mark = s.Marks[r][c]
		}
	}
	g.state = s.State
	g.humanContributed = s.HumanContributed
	g.engineContributed = s.EngineContributed
	g.lastEngine = s.LastEngine
	g.b.RecomputeLighting()
}

// commit records the state just reached as the new top of the undo
// stack and invalidates the redo stack. The undo stack's top always
// mirrors the live state; its bottom entry is the baseline captured
// right after puzzle generation or restart and is never popped.
func (g *Game) commit() {
	g.undo = append(g.undo, g.snapshot())
	g.redo = nil
}

func (g *Game) resetHistory() {
	g.undo = []*Snapshot{g.snapshot()}
	g.redo = nil
}

// Undo steps back one committed action. The baseline snapshot is never
// undone past.
func (g *Game) Undo() Status {
	if len(g.undo) <= 1 {
		return StatusNothingToUndo
	}
	cur := g.undo[len(g.undo)-1]
	g.undo = g.undo[:len(g.undo)-1]
	g.redo = append(g.redo, cur)
	g.restore(g.undo[len(g.undo)-1])
	g.handTurnToHuman()
	return StatusOK
}

// Redo reapplies the most recently undone action, if any.
func (g *Game) Redo() Status {
	if len(g.redo) == 0 {
		return StatusNothingToRedo
	}
	next := g.redo[len(g.redo)-1]
	g.redo = g.redo[:len(g.redo)-1]
	g.undo = append(g.undo, next)
	g.restore(next)
	g.handTurnToHuman()
	return StatusOK
}

// handTurnToHuman normalizes a restored mid-exchange state: history
// navigation always lands on a position the human can act from, so a
// snapshot taken while the engine's reply was pending hands the turn
// back instead of locking the board.
func (g *Game) handTurnToHuman() {
	if g.state == engine.EngineThinking {
		g.state = engine.WaitingForHuman
	}
}

// MoveCount is the number of committed actions since the baseline.
func (g *Game) MoveCount() int {
	return len(g.undo) - 1
}
