// Package generator produces random solvable Akari layouts, using the
// solver as a feasibility oracle.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/solver"
)

// ErrExhausted means no solvable layout was found within the retry cap.
// Callers should treat it as retryable with widened parameters or a
// raised cap.
var ErrExhausted = errors.New("puzzle generation exhausted retry budget")

// Generate builds a random wall layout and keeps retrying until the
// oracle reports it solvable, up to cfg.MaxAttempts. Walls are spaced so
// that no two fall within king-move adjacency; numbered walls get a
// requirement in [0, min(4, adjacent blanks)].
func Generate(cfg Config, rng *rand.Rand) (*board.Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		b := layout(cfg, rng)
		if solver.Feasible(b) {
			logrus.WithFields(logrus.Fields{
				"rows":    cfg.Rows,
				"cols":    cfg.Cols,
				"attempt": attempt + 1,
			}).Debug("generated solvable puzzle")
			return b, nil
		}
		logrus.WithFields(logrus.Fields{
			"attempt": attempt + 1,
		}).Debug("layout not solvable, retrying")
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrExhausted, cfg.MaxAttempts)
}

func layout(cfg Config, rng *rand.Rand) *board.Board {
	b := board.New(cfg.Rows, cfg.Cols)

	wallTarget := cfg.MinWalls + rng.Intn(cfg.MaxWalls-cfg.MinWalls+1)
	walls := []board.Coordinate{}
	for tries := 0; len(walls) < wallTarget && tries < 200; tries++ {
		r, c := rng.Intn(cfg.Rows), rng.Intn(cfg.Cols)
		if b.Grid[r][c].Kind != board.Blank || hasKingAdjacentWall(b, r, c) {
			continue
		}
		b.SetWall(r, c)
		walls = append(walls, board.Coordinate{Row: r, Col: c})
	}

	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})
	numberedTarget := cfg.MinNumbered + rng.Intn(cfg.MaxNumbered-cfg.MinNumbered+1)
	numbered := 0
	for _, w := range walls {
		if numbered >= numberedTarget {
			break
		}
		blanks := b.AdjacentBlanks(w.Row, w.Col)
		if blanks == 0 {
			continue
		}
		limit := blanks + 1
		if limit > 5 {
			limit = 5
		}
		b.SetNumberedWall(w.Row, w.Col, rng.Intn(limit))
		numbered++
	}
	return b
}

func hasKingAdjacentWall(b *board.Board, r int, c int) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if b.InBounds(nr, nc) && b.Grid[nr][nc].IsWall() {
				return true
			}
		}
	}
	return false
}
