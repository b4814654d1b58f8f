package board

import (
	"fmt"
	"os"
	"strings"
)

// Text format, one rune per cell:
//
//	_  blank
//	X  plain wall
//	0-4  numbered wall
//	*  blank with a bulb
//	.  blank with a mark
//
// Lighting is derived, so lit state never appears in the format.

func (b *Board) CharAt(r int, c int) string {
	cell := &b.Grid[r][c]
	switch cell.Kind {
	case Wall:
		return "X"
	case NumberedWall:
		return fmt.Sprintf("%d", cell.Number)
	case Blank:
		if cell.Bulb {
			return "*"
		}
		if cell.Mark {
			return "."
		}
		return "_"
	}
	return "?"
}

func (b *Board) String() string {
	s := ""
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			s += b.CharAt(r, c)
		}
		s += "\n"
	}
	return s
}

// FromString parses the text format above. Every line must have the same
// width; blank lines are skipped.
func FromString(input string) (*Board, error) {
	lines := make([]string, 0)
	for _, txt := range strings.Split(input, "\n") {
		txt = strings.Trim(txt, "\r\n\t ")
		if len(txt) > 0 {
			lines = append(lines, txt)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty board text")
	}
	b := New(len(lines), len(lines[0]))
	for ri, row := range lines {
		if len(row) != b.Cols {
			return nil, fmt.Errorf("row %d has width %d (expected %d)", ri, len(row), b.Cols)
		}
		for ci, ch := range row {
			switch {
			case ch == '_':
			case ch == 'X':
				b.SetWall(ri, ci)
			case ch >= '0' && ch <= '4':
				b.SetNumberedWall(ri, ci, int(ch-'0'))
			case ch == '*':
				b.Grid[ri][ci].Bulb = true
			case ch == '.':
				b.Grid[ri][ci].Mark = true
			default:
				return nil, fmt.Errorf("unexpected character %q at %v", ch, Coordinate{ri, ci})
			}
		}
	}
	b.RecomputeLighting()
	return b, nil
}

// MustFromString is FromString for fixture literals; it panics on a
// malformed board.
func MustFromString(input string) *Board {
	b, err := FromString(input)
	if err != nil {
		panic(err)
	}
	return b
}

func FromFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	return FromString(string(data))
}
