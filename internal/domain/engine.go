package domain

import "strings"

// Engine owns the board, turn, and winner state for one game of
// Connect Four. It provides no internal synchronization: confine an
// instance to a single goroutine or serialize access externally.
type Engine struct {
	board   *board
	current Player
	winner  Player
}

// NewEngine creates an engine with an empty rows x columns board,
// the first player's turn, and no winner. Both dimensions must be at
// least 4.
func NewEngine(rows, columns int) (*Engine, error) {
	if rows < MinRows || columns < MinColumns {
		return nil, ErrBoardTooSmall
	}
	e := &Engine{board: newBoard(rows, columns)}
	e.InitializeBoard()
	return e, nil
}

// InitializeBoard clears every cell, hands the turn to the first
// player, and clears the winner. Dimensions are untouched.
func (e *Engine) InitializeBoard() {
	e.board.clear()
	e.current = FirstPlayer
	e.winner = Empty
}

// ResetBoard returns the engine to its initial state. The board keeps
// its dimensions; only contents, turn, and winner reset.
func (e *Engine) ResetBoard() {
	e.InitializeBoard()
}

// MakeMove drops the current player's disc into the zero-based column.
// On success the disc settles in the lowest empty row, win detection
// runs anchored at that cell, and either the winner is set or the turn
// passes to the opponent. A MoveError leaves the engine unchanged.
func (e *Engine) MakeMove(column int) error {
	if e.IsGameOver() {
		return ErrGameOver
	}
	if column < 0 || column >= e.board.columns {
		return ErrColumnOutOfBounds
	}

	row, err := e.board.dropDisc(column, e.current)
	if err != nil {
		return err
	}

	if e.board.connectsFour(row, column, e.current) {
		e.winner = e.current
		return nil
	}

	e.current = e.current.Opponent()
	return nil
}

// Turn returns the player to move, or Empty once the game is over.
// The over check is recomputed live, never cached.
func (e *Engine) Turn() Player {
	if e.IsGameOver() {
		return Empty
	}
	return e.current
}

// Winner returns the winning player, or Empty if the game is still in
// progress or ended in a draw.
func (e *Engine) Winner() Player {
	return e.winner
}

// IsGameOver reports whether a winner is set or the board is full.
func (e *Engine) IsGameOver() bool {
	return e.winner != Empty || e.board.isFull()
}

// Rows returns the board's row count.
func (e *Engine) Rows() int {
	return e.board.rows
}

// Columns returns the board's column count.
func (e *Engine) Columns() int {
	return e.board.columns
}

// BoardState returns a defensive copy of the grid, [row][col] with
// row 0 at the top.
func (e *Engine) BoardState() [][]Player {
	return e.board.snapshot()
}

// String renders the board as text, one line per row from top to
// bottom, '.' for empty cells and each player's token otherwise.
func (e *Engine) String() string {
	var sb strings.Builder
	sb.Grow((e.board.columns + 1) * e.board.rows)
	for row := 0; row < e.board.rows; row++ {
		for col := 0; col < e.board.columns; col++ {
			sb.WriteByte(e.board.at(row, col).Token())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
