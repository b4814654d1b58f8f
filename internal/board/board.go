// Package board holds the Akari grid model: cell kinds, bulb and mark
// flags, lighting propagation, and the legality predicates everything
// else is built on.
package board

import "fmt"

type CellKind int

const (
	Blank CellKind = iota
	Wall
	NumberedWall
)

type Coordinate struct {
	Row int
	Col int
}

func NilCoordinate() Coordinate {
	return Coordinate{-1, -1}
}

func (c Coordinate) IsNil() bool {
	return c.Row == -1 && c.Col == -1
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row, c.Col)
}

func (c Coordinate) Translate(dr int, dc int) Coordinate {
	return Coordinate{c.Row + dr, c.Col + dc}
}

// Directions is the four orthogonal unit steps in row-major scan order.
var Directions = [4]Coordinate{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

type Cell struct {
	Kind   CellKind
	Number int // required adjacent bulbs; valid only when Kind == NumberedWall
	Bulb   bool
	Mark   bool
	Lit    bool // derived; refreshed by RecomputeLighting
}

func (c *Cell) IsWall() bool {
	return c.Kind != Blank
}

type Board struct {
	Rows int
	Cols int
	Grid [][]Cell
}

func New(rows int, cols int) *Board {
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}
	return &Board{rows, cols, grid}
}

func (b *Board) InBounds(r int, c int) bool {
	return r >= 0 && c >= 0 && r < b.Rows && c < b.Cols
}

func (b *Board) At(r int, c int) *Cell {
	return &b.Grid[r][c]
}

func (b *Board) Get(c Coordinate) *Cell {
	return &b.Grid[c.Row][c.Col]
}

func (b *Board) Clone() *Board {
	nb := New(b.Rows, b.Cols)
	for r := range b.Grid {
		copy(nb.Grid[r], b.Grid[r])
	}
	return nb
}

// SetWall turns (r, c) into a plain wall, clearing any bulb or mark.
func (b *Board) SetWall(r int, c int) {
	b.Grid[r][c] = Cell{Kind: Wall}
}

// SetNumberedWall turns (r, c) into a numbered wall requiring exactly n
// adjacent bulbs.
func (b *Board) SetNumberedWall(r int, c int, n int) {
	b.Grid[r][c] = Cell{Kind: NumberedWall, Number: n}
}

// RecomputeLighting clears all Lit flags and casts light from every bulb
// in the four orthogonal directions until a wall is met. The bulb's own
// cell is lit. Must run after any bulb mutation before legality or
// display reads.
func (b *Board) RecomputeLighting() {
	for r := range b.Grid {
		for c := range b.Grid[r] {
			b.Grid[r][c].Lit = false
		}
	}
	for r := range b.Grid {
		for c := range b.Grid[r] {
			if !b.Grid[r][c].Bulb {
				continue
			}
			b.Grid[r][c].Lit = true
			for _, d := range Directions {
				nr, nc := r+d.Row, c+d.Col
				for b.InBounds(nr, nc) {
					if b.Grid[nr][nc].IsWall() {
						break
					}
					b.Grid[nr][nc].Lit = true
					nr += d.Row
					nc += d.Col
				}
			}
		}
	}
}

// AdjacentBulbs counts bulbs in the four cells orthogonally adjacent to
// (r, c).
func (b *Board) AdjacentBulbs(r int, c int) int {
	ct := 0
	for _, d := range Directions {
		nr, nc := r+d.Row, c+d.Col
		if b.InBounds(nr, nc) && b.Grid[nr][nc].Bulb {
			ct++
		}
	}
	return ct
}

// AdjacentBlanks counts blank cells orthogonally adjacent to (r, c).
func (b *Board) AdjacentBlanks(r int, c int) int {
	ct := 0
	for _, d := range Directions {
		nr, nc := r+d.Row, c+d.Col
		if b.InBounds(nr, nc) && b.Grid[nr][nc].Kind == Blank {
			ct++
		}
	}
	return ct
}

// FreeAdjacentBlanks returns the adjacent blank cells carrying neither a
// bulb nor a mark, in direction scan order.
func (b *Board) FreeAdjacentBlanks(r int, c int) []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, d := range Directions {
		nr, nc := r+d.Row, c+d.Col
		if !b.InBounds(nr, nc) {
			continue
		}
		cell := &b.Grid[nr][nc]
		if cell.Kind == Blank && !cell.Bulb && !cell.Mark {
			out = append(out, Coordinate{nr, nc})
		}
	}
	return out
}

// SeesBulb reports whether a bulb is visible from (r, c) along any of
// the four rays, stopping at walls. The cell itself is not examined.
func (b *Board) SeesBulb(r int, c int) bool {
	for _, d := range Directions {
		nr, nc := r+d.Row, c+d.Col
		for b.InBounds(nr, nc) {
			if b.Grid[nr][nc].IsWall() {
				break
			}
			if b.Grid[nr][nc].Bulb {
				return true
			}
			nr += d.Row
			nc += d.Col
		}
	}
	return false
}

// Assignment is a flat copy of the mutable bulb/mark flags, used by
// oracle callers to save and restore the board around a solve.
type Assignment struct {
	Bulbs []bool
	Marks []bool
}

func (b *Board) SaveAssignment() Assignment {
	a := Assignment{
		Bulbs: make([]bool, b.Rows*b.Cols),
		Marks: make([]bool, b.Rows*b.Cols),
	}
	for r := range b.Grid {
		for c := range b.Grid[r] {
			a.Bulbs[r*b.Cols+c] = b.Grid[r][c].Bulb
			a.Marks[r*b.Cols+c] = b.Grid[r][c].Mark
		}
	}
	return a
}

func (b *Board) RestoreAssignment(a Assignment) {
	for r := range b.Grid {
		for c := range b.Grid[r] {
			b.Grid[r][c].Bulb = a.Bulbs[r*b.Cols+c]
			b.Grid[r][c].Mark = a.Marks[r*b.Cols+c]
		}
	}
	b.RecomputeLighting()
}

// ClearAssignment removes every bulb and mark and recomputes lighting.
func (b *Board) ClearAssignment() {
	for r := range b.Grid {
		for c := range b.Grid[r] {
			b.Grid[r][c].Bulb = false
			b.Grid[r][c].Mark = false
		}
	}
	b.RecomputeLighting()
}
