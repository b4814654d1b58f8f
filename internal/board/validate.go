package board

import "fmt"

// IsSolved checks the three completion rules in a fixed order so callers
// can assert exact failure reasons: unlit blanks first, then mutual bulb
// visibility, then numbered wall mismatches, each scanned row-major.
// A nil error means the board is solved.
func (b *Board) IsSolved() (bool, error) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Grid[r][c].Kind == Blank && !b.Grid[r][c].Lit {
				return false, fmt.Errorf("cell %v is unlit", Coordinate{r, c})
			}
		}
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if !b.Grid[r][c].Bulb {
				continue
			}
			if other, ok := b.firstVisibleBulb(r, c); ok {
				return false, fmt.Errorf("bulbs %v and %v see each other", Coordinate{r, c}, other)
			}
		}
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Grid[r][c].Kind != NumberedWall {
				continue
			}
			ct := b.AdjacentBulbs(r, c)
			if ct != b.Grid[r][c].Number {
				return false, fmt.Errorf("numbered wall %v has %d adjacent bulbs (should be %d)", Coordinate{r, c}, ct, b.Grid[r][c].Number)
			}
		}
	}
	return true, nil
}

func (b *Board) firstVisibleBulb(r int, c int) (Coordinate, bool) {
	for _, d := range Directions {
		nr, nc := r+d.Row, c+d.Col
		for b.InBounds(nr, nc) {
			if b.Grid[nr][nc].IsWall() {
				break
			}
			if b.Grid[nr][nc].Bulb {
				return Coordinate{nr, nc}, true
			}
			nr += d.Row
			nc += d.Col
		}
	}
	return NilCoordinate(), false
}
