package solver

import "github.com/glowgrid/akari/internal/board"

// Local deduction rules, run to fixpoint before any backtracking. Each
// rule scans row-major and recomputes lighting after every firing so the
// next rule sees fresh state.

// ForceNumberedWalls applies the two saturation rules: a numbered wall
// whose free adjacent blanks exactly cover its remaining requirement
// forces bulbs into all of them; a wall already at its requirement
// forces marks onto all its free adjacent blanks.
func (s *Solver) ForceNumberedWalls() bool {
	s.UpdateAction("Forcing numbered walls")
	s.Watch.Start("FNW")
	defer s.Watch.Stop("FNW")
	didChange := false
	for r := 0; r < s.b.Rows; r++ {
		for c := 0; c < s.b.Cols; c++ {
			if s.b.Grid[r][c].Kind != board.NumberedWall {
				continue
			}
			placed := s.b.AdjacentBulbs(r, c)
			free := s.b.FreeAdjacentBlanks(r, c)
			if len(free) == 0 {
				continue
			}
			if placed == s.b.Grid[r][c].Number {
				for _, f := range free {
					didChange = s.placeMark(f.Row, f.Col) || didChange
				}
			} else if placed+len(free) == s.b.Grid[r][c].Number {
				for _, f := range free {
					didChange = s.placeBulb(f.Row, f.Col) || didChange
				}
			}
		}
	}
	return didChange
}

// ForceSingleLightSources places a bulb wherever an unlit blank has
// exactly one remaining legal placement that could light it (possibly
// the cell itself).
func (s *Solver) ForceSingleLightSources() bool {
	s.UpdateAction("Forcing single light sources")
	s.Watch.Start("FLS")
	defer s.Watch.Stop("FLS")
	didChange := false
	for r := 0; r < s.b.Rows; r++ {
		for c := 0; c < s.b.Cols; c++ {
			cell := &s.b.Grid[r][c]
			if cell.Kind != board.Blank || cell.Lit {
				continue
			}
			sources := s.b.LightSources(r, c)
			if len(sources) == 1 {
				didChange = s.placeBulb(sources[0].Row, sources[0].Col) || didChange
			}
		}
	}
	return didChange
}

// MarkDeadCells marks every free blank where no legal bulb placement
// remains, pruning it from the search.
func (s *Solver) MarkDeadCells() bool {
	s.UpdateAction("Marking dead cells")
	s.Watch.Start("MDC")
	defer s.Watch.Stop("MDC")
	didChange := false
	for r := 0; r < s.b.Rows; r++ {
		for c := 0; c < s.b.Cols; c++ {
			cell := &s.b.Grid[r][c]
			if cell.Kind != board.Blank || cell.Bulb || cell.Mark {
				continue
			}
			if !s.b.CanPlaceBulb(r, c) {
				didChange = s.placeMark(r, c) || didChange
			}
		}
	}
	return didChange
}

// Deduce runs the rules until none of them fires.
func (s *Solver) Deduce() bool {
	didChange := false
	changed := true
	for changed {
		changed = false
		changed = s.ForceNumberedWalls() || changed
		changed = s.ForceSingleLightSources() || changed
		changed = s.MarkDeadCells() || changed
		didChange = didChange || changed
	}
	return didChange
}

func (s *Solver) placeBulb(r int, c int) bool {
	cell := &s.b.Grid[r][c]
	if cell.Bulb {
		return false
	}
	cell.Bulb = true
	cell.Mark = false
	s.b.RecomputeLighting()
	s.SendProgress()
	return true
}

func (s *Solver) placeMark(r int, c int) bool {
	cell := &s.b.Grid[r][c]
	if cell.Mark || cell.Bulb {
		return false
	}
	cell.Mark = true
	s.SendProgress()
	return true
}
