package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/engine"
	"github.com/glowgrid/akari/internal/generator"
)

func TestToggleBulbSolvesImmediately(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n"))
	st := g.ToggleBulb(0, 1)
	assert.Equal(t, StatusSolved, st)
	assert.Equal(t, engine.Solved, g.State())
	assert.Equal(t, 1, g.MoveCount())
}

func TestToggleBulbRejectedBeforeAnyStateChange(t *testing.T) {
	g := NewFromBoard(board.MustFromString("*__\n___\n___\n"))
	before := g.Board().String()

	st := g.ToggleBulb(0, 2)
	assert.Equal(t, StatusIllegalMove, st, "the new bulb would see the existing one")
	assert.Equal(t, before, g.Board().String())
	assert.Empty(t, g.Board().ViolatingBulbs(), "the illegal bulb never lands on the board")
	assert.Equal(t, 0, g.MoveCount(), "rejected moves leave no history entry")
	assert.Equal(t, engine.WaitingForHuman, g.State())
}

func TestToggleBulbOutOfTurn(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))
	require.Equal(t, StatusOK, g.ToggleBulb(0, 0))
	require.Equal(t, engine.EngineThinking, g.State())
	assert.Equal(t, StatusIllegalMove, g.ToggleBulb(2, 2), "human cannot move during the engine's turn")
}

func TestToggleBulbNonBlankTargets(t *testing.T) {
	g := NewFromBoard(board.MustFromString("_X1\n___\n"))
	assert.Equal(t, StatusIllegalMove, g.ToggleBulb(0, 1))
	assert.Equal(t, StatusIllegalMove, g.ToggleBulb(0, 2))
	assert.Equal(t, StatusIllegalMove, g.ToggleBulb(-1, 0))
	assert.Equal(t, StatusIllegalMove, g.ToggleBulb(5, 5))
	assert.Equal(t, 0, g.MoveCount())
}

func TestToggleBulbRemoval(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))
	require.Equal(t, StatusOK, g.ToggleBulb(1, 1))
	_, st := g.EngineMove()
	require.NotEqual(t, StatusIllegalMove, st)
	require.Equal(t, engine.WaitingForHuman, g.State())

	assert.Equal(t, StatusOK, g.ToggleBulb(1, 1), "removal is always legal")
	assert.False(t, g.Board().Grid[1][1].Bulb)
}

func TestToggleMarkClearsBulb(t *testing.T) {
	g := NewFromBoard(board.MustFromString("*__\n___\n___\n"))
	st := g.ToggleMark(0, 0)
	assert.Equal(t, StatusOK, st)
	assert.True(t, g.Board().Grid[0][0].Mark)
	assert.False(t, g.Board().Grid[0][0].Bulb)
}

func TestEngineMoveAlternation(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))

	_, st := g.EngineMove()
	assert.Equal(t, StatusIllegalMove, st, "the engine only moves after the human")

	require.Equal(t, StatusOK, g.ToggleBulb(0, 0))
	mv, st := g.EngineMove()
	require.Contains(t, []Status{StatusOK, StatusSolved}, st)
	assert.NotEqual(t, engine.NoMove, mv.Kind)
	assert.Equal(t, 2, g.MoveCount())

	last, ok := g.LastEngineMove()
	require.True(t, ok)
	assert.Equal(t, mv.Cell, last)
	assert.True(t, g.TeamEffort())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))
	require.Equal(t, StatusOK, g.ToggleBulb(0, 0))
	_, st := g.EngineMove()
	require.NotEqual(t, StatusIllegalMove, st)

	after := g.Board().String()
	afterState := g.State()
	afterCount := g.MoveCount()

	require.Equal(t, StatusOK, g.Undo())
	require.Equal(t, StatusOK, g.Undo())
	assert.Equal(t, 0, g.MoveCount())
	assert.Equal(t, engine.WaitingForHuman, g.State())
	assert.False(t, g.Board().Grid[0][0].Bulb)
	assert.False(t, g.TeamEffort(), "contribution flags roll back with the board")
	_, ok := g.LastEngineMove()
	assert.False(t, ok)

	require.Equal(t, StatusOK, g.Redo())
	require.Equal(t, StatusOK, g.Redo())
	assert.Equal(t, after, g.Board().String())
	assert.Equal(t, afterState, g.State())
	assert.Equal(t, afterCount, g.MoveCount())
	assert.True(t, g.TeamEffort())
}

func TestUndoAfterEngineReplyLeavesHumanTurn(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))
	require.Equal(t, StatusOK, g.ToggleBulb(0, 0))
	_, st := g.EngineMove()
	require.NotEqual(t, StatusIllegalMove, st)

	require.Equal(t, StatusOK, g.Undo())
	assert.Equal(t, engine.WaitingForHuman, g.State(),
		"a single undo must land on a state the human can act from")
	assert.Equal(t, StatusOK, g.ToggleBulb(2, 2))
}

func TestRedoLandsOnPlayableState(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))
	require.Equal(t, StatusOK, g.ToggleBulb(0, 0))
	require.Equal(t, StatusOK, g.Undo())
	require.Equal(t, StatusOK, g.Redo())

	assert.Equal(t, engine.WaitingForHuman, g.State())
	assert.Equal(t, StatusOK, g.ToggleBulb(2, 2))
}

func TestUndoAtBaselineAndRedoWithoutUndo(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n"))
	assert.Equal(t, StatusNothingToUndo, g.Undo())
	assert.Equal(t, StatusNothingToRedo, g.Redo())
}

func TestNewMoveInvalidatesRedo(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))
	require.Equal(t, StatusOK, g.ToggleBulb(0, 0))
	require.Equal(t, StatusOK, g.Undo())
	require.Equal(t, StatusOK, g.ToggleBulb(2, 2))
	assert.Equal(t, StatusNothingToRedo, g.Redo())
}

func TestRequestSolveSuccess(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))
	st := g.RequestSolve()
	assert.Equal(t, StatusSolved, st)
	assert.Equal(t, engine.Solved, g.State())
	ok, err := g.Board().IsSolved()
	assert.True(t, ok, "%v", err)
	assert.Equal(t, 1, g.MoveCount())
}

func TestRequestSolveFailureLeavesBoardUnchanged(t *testing.T) {
	g := NewFromBoard(board.MustFromString("_2_\n___\n"))
	before := g.Board().String()
	st := g.RequestSolve()
	assert.Equal(t, StatusNoSolution, st)
	assert.Equal(t, before, g.Board().String())
	assert.Equal(t, engine.WaitingForHuman, g.State())
	assert.Equal(t, 0, g.MoveCount())
}

func TestRequestSolveUndoable(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))
	before := g.Board().String()
	require.Equal(t, StatusSolved, g.RequestSolve())
	require.Equal(t, StatusOK, g.Undo())
	assert.Equal(t, before, g.Board().String())
	assert.Equal(t, engine.WaitingForHuman, g.State())
}

func TestRestartClearsEverything(t *testing.T) {
	g := NewFromBoard(board.MustFromString("___\n___\n___\n"))
	require.Equal(t, StatusOK, g.ToggleBulb(0, 0))
	require.Equal(t, StatusOK, g.Restart())

	assert.Equal(t, 0, g.MoveCount())
	assert.Equal(t, engine.WaitingForHuman, g.State())
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.False(t, g.Board().Grid[r][c].Bulb)
			assert.False(t, g.Board().Grid[r][c].Mark)
		}
	}
}

func TestNewGeneratesSolvablePuzzle(t *testing.T) {
	g, err := New(generator.DefaultConfig(), 7)
	require.NoError(t, err)
	assert.Equal(t, engine.WaitingForHuman, g.State())
	assert.Equal(t, 0, g.MoveCount())
	assert.Equal(t, 7, g.Board().Rows)

	st := g.RequestSolve()
	assert.Equal(t, StatusSolved, st, "generated puzzles are solvable")
}

func TestNewPuzzleReplacesBoard(t *testing.T) {
	g, err := New(generator.DefaultConfig(), 7)
	require.NoError(t, err)
	require.Equal(t, StatusSolved, g.RequestSolve())

	require.Equal(t, StatusOK, g.NewPuzzle(11))
	assert.Equal(t, engine.WaitingForHuman, g.State())
	assert.Equal(t, 0, g.MoveCount())
	ok, _ := g.Board().IsSolved()
	assert.False(t, ok, "fresh puzzles start unsolved")
}
