package generator

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/solver"
)

func TestGenerateDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	a, err := Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateProperties(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 5; seed++ {
		b, err := Generate(cfg, rand.New(rand.NewSource(seed)))
		require.NoError(t, err, "seed %d", seed)

		walls, numbered := 0, 0
		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				cell := b.Grid[r][c]
				if cell.Kind == board.Blank {
					assert.False(t, cell.Bulb, "generated boards carry no bulbs")
					assert.False(t, cell.Mark)
					continue
				}
				walls++
				if cell.Kind == board.NumberedWall {
					numbered++
					assert.GreaterOrEqual(t, cell.Number, 0)
					assert.LessOrEqual(t, cell.Number, 4)
					assert.LessOrEqual(t, cell.Number, b.AdjacentBlanks(r, c),
						"requirement cannot exceed available neighbors")
				}
				assertNoKingAdjacentWall(t, b, r, c)
			}
		}
		assert.LessOrEqual(t, walls, cfg.MaxWalls)
		assert.LessOrEqual(t, numbered, cfg.MaxNumbered)
		assert.Greater(t, walls, 0)

		assert.True(t, solver.Feasible(b), "seed %d produced an unsolvable board", seed)
	}
}

func assertNoKingAdjacentWall(t *testing.T, b *board.Board, r int, c int) {
	t.Helper()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if b.InBounds(nr, nc) {
				assert.Equal(t, board.Blank, b.Grid[nr][nc].Kind,
					"walls at %v and %v touch", board.Coordinate{Row: r, Col: c}, board.Coordinate{Row: nr, Col: nc})
			}
		}
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWalls = cfg.MinWalls - 1
	_, err := Generate(cfg, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.Rows = 0
	assert.ErrorContains(t, bad.Validate(), "board size")

	bad = DefaultConfig()
	bad.MinNumbered = 6
	assert.ErrorContains(t, bad.Validate(), "numbered range")

	bad = DefaultConfig()
	bad.MaxAttempts = 0
	assert.ErrorContains(t, bad.Validate(), "max_attempts")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 9\ncols: 9\nmax_attempts: 80\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Rows)
	assert.Equal(t, 9, cfg.Cols)
	assert.Equal(t, 80, cfg.MaxAttempts)
	assert.Equal(t, DefaultConfig().MinWalls, cfg.MinWalls, "absent keys keep defaults")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
