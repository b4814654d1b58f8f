// Package solver proves or derives full legal assignments from partial
// Akari board states: deduction rules to fixpoint, then independent
// memoized backtracking per region. The same solver doubles as the
// feasibility oracle behind the move engine and the puzzle generator.
package solver

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/stopwatch"
)

type ProgressUpdate struct {
	CurrentAction string
	LitBlanks     int
	TotalBlanks   int
}

type Solver struct {
	b      *board.Board
	Action string
	// Progress is optional; sends never block, so a slow or absent
	// reader only drops updates.
	Progress chan ProgressUpdate
	Watch    *stopwatch.Stopwatch
	// Solution caches the discovered assignment after a successful
	// Solve.
	Solution *board.Assignment
}

func New(b *board.Board) *Solver {
	return &Solver{b: b, Watch: stopwatch.New()}
}

func (s *Solver) UpdateAction(a string) {
	s.Action = a
	s.SendProgress()
}

func (s *Solver) SendProgress() {
	if s.Progress == nil {
		return
	}
	lit, total := 0, 0
	for r := 0; r < s.b.Rows; r++ {
		for c := 0; c < s.b.Cols; c++ {
			if s.b.Grid[r][c].Kind != board.Blank {
				continue
			}
			total++
			if s.b.Grid[r][c].Lit {
				lit++
			}
		}
	}
	select {
	case s.Progress <- ProgressUpdate{s.Action, lit, total}:
	default:
	}
}

// Solve derives a full legal assignment from the current partial state,
// mutating the board. On success the board holds the assignment,
// lighting is fresh, and Solution caches the result. On failure the
// board is left in whatever intermediate state the search reached;
// callers needing restoration use Feasible or save/restore around this
// call themselves.
func (s *Solver) Solve() bool {
	s.Watch.Start("Solve")
	defer s.Watch.Stop("Solve")

	s.b.RecomputeLighting()
	s.Deduce()

	regions := Regions(s.b)
	s.UpdateAction(fmt.Sprintf("Searching %d regions", len(regions)))

	s.Watch.Start("Regions")
	type regionBulbs []bool
	results := make([]regionBulbs, len(regions))
	var g errgroup.Group
	for i, reg := range regions {
		i, reg := i, reg
		g.Go(func() error {
			clone := s.b.Clone()
			rs := newRegionSolver(clone, reg)
			if !rs.solve() {
				return fmt.Errorf("region %d has no legal assignment", i)
			}
			bulbs := make(regionBulbs, len(reg.Cells))
			for j, c := range reg.Cells {
				bulbs[j] = clone.Get(c).Bulb
			}
			results[i] = bulbs
			return nil
		})
	}
	err := g.Wait()
	s.Watch.Stop("Regions")
	if err != nil {
		return false
	}

	for i, reg := range regions {
		for j, c := range reg.Cells {
			s.b.Get(c).Bulb = results[i][j]
		}
	}
	s.b.RecomputeLighting()
	s.SendProgress()

	if ok, _ := s.b.IsSolved(); !ok {
		return false
	}
	soln := s.b.SaveAssignment()
	s.Solution = &soln
	return true
}

// Feasible is the transactional oracle: save the bulb/mark state, run
// Solve, restore the state regardless of outcome, report the boolean.
func (s *Solver) Feasible() bool {
	saved := s.b.SaveAssignment()
	ok := s.Solve()
	s.b.RestoreAssignment(saved)
	return ok
}

// Feasible answers whether the board's current partial state can still
// be completed, leaving the board bit-for-bit unchanged.
func Feasible(b *board.Board) bool {
	return New(b).Feasible()
}
