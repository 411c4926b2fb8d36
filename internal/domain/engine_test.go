package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEngine(t *testing.T, rows, columns int) *Engine {
	t.Helper()
	e, err := NewEngine(rows, columns)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e
}

func playMoves(t *testing.T, e *Engine, columns ...int) {
	t.Helper()
	for _, col := range columns {
		require.NoError(t, e.MakeMove(col))
	}
}

func countOccupied(grid [][]Player) int {
	n := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell != Empty {
				n++
			}
		}
	}
	return n
}

func TestNewEngine(t *testing.T) {
	for _, size := range [][2]int{{4, 4}, {6, 7}, {10, 12}} {
		e := mustEngine(t, size[0], size[1])

		assert.Equal(t, size[0], e.Rows())
		assert.Equal(t, size[1], e.Columns())
		assert.Equal(t, Red, e.Turn())
		assert.Equal(t, Empty, e.Winner())
		assert.False(t, e.IsGameOver())
		assert.Zero(t, countOccupied(e.BoardState()))
	}
}

func TestNewEngine_BoardTooSmall(t *testing.T) {
	for _, size := range [][2]int{{3, 7}, {6, 3}, {0, 0}, {-1, 8}, {4, 3}} {
		e, err := NewEngine(size[0], size[1])

		require.Nil(t, e)
		require.ErrorIs(t, err, ErrBoardTooSmall)

		// construction failures must be distinguishable from move
		// failures by type, not by message
		var cfgErr ConfigError
		require.ErrorAs(t, err, &cfgErr)
		var moveErr MoveError
		require.False(t, errors.As(err, &moveErr))
	}
}

func TestMakeMove_DiscsStackBottomUp(t *testing.T) {
	e := mustEngine(t, 6, 7)

	playMoves(t, e, 3, 3, 3)

	grid := e.BoardState()
	assert.Equal(t, Red, grid[5][3])
	assert.Equal(t, Yellow, grid[4][3])
	assert.Equal(t, Red, grid[3][3])
	assert.Equal(t, Empty, grid[2][3])
}

func TestMakeMove_TurnAlternates(t *testing.T) {
	e := mustEngine(t, 6, 7)

	assert.Equal(t, Red, e.Turn())
	playMoves(t, e, 0)
	assert.Equal(t, Yellow, e.Turn())
	playMoves(t, e, 1)
	assert.Equal(t, Red, e.Turn())
}

func TestMakeMove_OccupiedCellsMatchMoveCount(t *testing.T) {
	e := mustEngine(t, 6, 7)

	moves := []int{0, 1, 0, 2, 6, 6, 3, 0, 1}
	playMoves(t, e, moves...)

	assert.Equal(t, len(moves), countOccupied(e.BoardState()))
}

func TestMakeMove_ColumnOutOfBounds(t *testing.T) {
	e := mustEngine(t, 6, 7)
	playMoves(t, e, 2)
	before := e.String()

	for _, col := range []int{-1, 7, 100} {
		err := e.MakeMove(col)

		require.ErrorIs(t, err, ErrColumnOutOfBounds)
		assert.Equal(t, before, e.String())
		assert.Equal(t, Yellow, e.Turn())
	}
}

func TestMakeMove_ColumnFull(t *testing.T) {
	e := mustEngine(t, 4, 4)
	// fill column 0 without making a run: alternate into column 0
	playMoves(t, e, 0, 0, 0, 0)
	before := e.String()
	turn := e.Turn()

	err := e.MakeMove(0)

	require.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, before, e.String())
	assert.Equal(t, turn, e.Turn())
}

func TestVerticalWin(t *testing.T) {
	e := mustEngine(t, 6, 7)

	// Red stacks column 1 (rows 5, 4, 3, 2), Yellow answers in column 2
	playMoves(t, e, 1, 2, 1, 2, 1, 2)
	require.False(t, e.IsGameOver())

	playMoves(t, e, 1)

	assert.True(t, e.IsGameOver())
	assert.Equal(t, Red, e.Winner())
	assert.Equal(t, Empty, e.Turn())
}

func TestHorizontalWin(t *testing.T) {
	e := mustEngine(t, 6, 7)

	playMoves(t, e, 0, 0, 1, 1, 2, 2, 3)

	assert.Equal(t, Red, e.Winner())
	assert.Equal(t, Empty, e.Turn())
}

func TestHorizontalWin_AnchorInsideRun(t *testing.T) {
	e := mustEngine(t, 6, 7)

	// Red holds columns 0, 1, 3 on the bottom row; the winning disc
	// lands in the gap, so the run extends on both sides of the anchor
	playMoves(t, e, 0, 0, 1, 1, 3, 3, 2)

	assert.Equal(t, Red, e.Winner())
}

func TestDiagonalWin_DownLeft(t *testing.T) {
	e := mustEngine(t, 6, 7)

	// Red builds (5,0) (4,1) (3,2) (2,3)
	playMoves(t, e, 0, 1, 1, 2, 3, 2, 2, 3, 6, 3)
	require.False(t, e.IsGameOver())

	playMoves(t, e, 3)

	assert.Equal(t, Red, e.Winner())
}

func TestDiagonalWin_DownRight(t *testing.T) {
	e := mustEngine(t, 6, 7)

	// Red builds (5,3) (4,2) (3,1) (2,0)
	playMoves(t, e, 3, 2, 2, 1, 0, 1, 1, 0, 6, 0)
	require.False(t, e.IsGameOver())

	playMoves(t, e, 0)

	assert.Equal(t, Red, e.Winner())
}

func TestWinnerIsFrozen(t *testing.T) {
	e := mustEngine(t, 6, 7)
	playMoves(t, e, 1, 2, 1, 2, 1, 2, 1)
	require.Equal(t, Red, e.Winner())
	before := e.String()

	err := e.MakeMove(4)

	require.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, before, e.String())
	assert.Equal(t, Red, e.Winner())
	assert.Equal(t, Empty, e.Turn())
}

func TestDraw(t *testing.T) {
	e := mustEngine(t, 4, 4)

	playMoves(t, e, 0, 1, 0, 1, 2, 3, 2, 3, 1, 0, 1, 0, 3, 2, 3, 2)

	assert.Equal(t, "YRYR\nYRYR\nRYRY\nRYRY\n", e.String())
	assert.True(t, e.IsGameOver())
	assert.Equal(t, Empty, e.Winner())
	assert.Equal(t, Empty, e.Turn())

	// a full board leaves no playable column
	require.ErrorIs(t, e.MakeMove(0), ErrGameOver)
}

func TestResetBoard(t *testing.T) {
	e := mustEngine(t, 5, 8)
	playMoves(t, e, 1, 2, 1, 2, 1, 2, 1)
	require.True(t, e.IsGameOver())

	e.ResetBoard()

	assert.Equal(t, 5, e.Rows())
	assert.Equal(t, 8, e.Columns())
	assert.Equal(t, Red, e.Turn())
	assert.Equal(t, Empty, e.Winner())
	assert.False(t, e.IsGameOver())
	assert.Zero(t, countOccupied(e.BoardState()))
}

func TestBoardState_DefensiveCopy(t *testing.T) {
	e := mustEngine(t, 6, 7)
	playMoves(t, e, 0)

	grid := e.BoardState()
	grid[5][0] = Yellow
	grid[0][6] = Red

	fresh := e.BoardState()
	assert.Equal(t, Red, fresh[5][0])
	assert.Equal(t, Empty, fresh[0][6])
}

func TestString_EmptyBoard(t *testing.T) {
	e := mustEngine(t, 4, 5)

	assert.Equal(t, ".....\n.....\n.....\n.....\n", e.String())
}
