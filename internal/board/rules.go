package board

// CanPlaceBulb is the pre-placement legality check: (r, c) must be a
// blank carrying neither bulb nor mark, no bulb may be visible from it,
// and no adjacent numbered wall may be pushed past its required count by
// the candidate.
func (b *Board) CanPlaceBulb(r int, c int) bool {
	cell := &b.Grid[r][c]
	if cell.Kind != Blank || cell.Bulb || cell.Mark {
		return false
	}
	if b.SeesBulb(r, c) {
		return false
	}
	for _, d := range Directions {
		nr, nc := r+d.Row, c+d.Col
		if !b.InBounds(nr, nc) || b.Grid[nr][nc].Kind != NumberedWall {
			continue
		}
		if b.AdjacentBulbs(nr, nc)+1 > b.Grid[nr][nc].Number {
			return false
		}
	}
	return true
}

// IsViolatingBulb reports whether the bulb at (r, c) currently breaks a
// rule: it sees another bulb, or an adjacent numbered wall's bulb count
// exceeds its requirement. Post-placement check, as opposed to
// CanPlaceBulb.
func (b *Board) IsViolatingBulb(r int, c int) bool {
	if !b.Grid[r][c].Bulb {
		return false
	}
	if b.SeesBulb(r, c) {
		return true
	}
	for _, d := range Directions {
		nr, nc := r+d.Row, c+d.Col
		if !b.InBounds(nr, nc) || b.Grid[nr][nc].Kind != NumberedWall {
			continue
		}
		if b.AdjacentBulbs(nr, nc) > b.Grid[nr][nc].Number {
			return true
		}
	}
	return false
}

// ViolatingBulbs lists all violating bulbs in row-major order.
func (b *Board) ViolatingBulbs() []Coordinate {
	out := []Coordinate{}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Grid[r][c].Bulb && b.IsViolatingBulb(r, c) {
				out = append(out, Coordinate{r, c})
			}
		}
	}
	return out
}

// WouldLight reports whether a bulb at from would light target: same row
// or column with no wall strictly between them. A cell lights itself.
func (b *Board) WouldLight(from Coordinate, target Coordinate) bool {
	if from == target {
		return true
	}
	if from.Row == target.Row {
		lo, hi := from.Col, target.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		for c := lo + 1; c < hi; c++ {
			if b.Grid[from.Row][c].IsWall() {
				return false
			}
		}
		return true
	}
	if from.Col == target.Col {
		lo, hi := from.Row, target.Row
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo + 1; r < hi; r++ {
			if b.Grid[r][from.Col].IsWall() {
				return false
			}
		}
		return true
	}
	return false
}

// LightSources returns every cell where a bulb could legally be placed
// that would light (r, c), including (r, c) itself, in row-then-column
// scan order.
func (b *Board) LightSources(r int, c int) []Coordinate {
	target := Coordinate{r, c}
	out := []Coordinate{}
	if b.CanPlaceBulb(r, c) {
		out = append(out, target)
	}
	for cc := 0; cc < b.Cols; cc++ {
		if cc == c {
			continue
		}
		from := Coordinate{r, cc}
		if b.Grid[r][cc].Kind == Blank && b.CanPlaceBulb(r, cc) && b.WouldLight(from, target) {
			out = append(out, from)
		}
	}
	for rr := 0; rr < b.Rows; rr++ {
		if rr == r {
			continue
		}
		from := Coordinate{rr, c}
		if b.Grid[rr][c].Kind == Blank && b.CanPlaceBulb(rr, c) && b.WouldLight(from, target) {
			out = append(out, from)
		}
	}
	return out
}

// NumberedMismatch sums |adjacent bulbs - required| over all numbered
// walls.
func (b *Board) NumberedMismatch() int {
	mismatch := 0
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Grid[r][c].Kind != NumberedWall {
				continue
			}
			diff := b.AdjacentBulbs(r, c) - b.Grid[r][c].Number
			if diff < 0 {
				diff = -diff
			}
			mismatch += diff
		}
	}
	return mismatch
}

// UnlitBlanks counts blank cells not currently lit.
func (b *Board) UnlitBlanks() int {
	unlit := 0
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Grid[r][c].Kind == Blank && !b.Grid[r][c].Lit {
				unlit++
			}
		}
	}
	return unlit
}
