package domain

// board stores cell occupancy in one contiguous buffer indexed by
// row*columns+col. Row 0 is the top of the visual stack, so dropped
// discs settle at the highest row index with an empty cell.
type board struct {
	rows    int
	columns int
	cells   []Player
}

func newBoard(rows, columns int) *board {
	return &board{
		rows:    rows,
		columns: columns,
		cells:   make([]Player, rows*columns),
	}
}

func (b *board) at(row, col int) Player {
	return b.cells[row*b.columns+col]
}

func (b *board) set(row, col int, p Player) {
	b.cells[row*b.columns+col] = p
}

func (b *board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

func (b *board) clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// dropDisc places p in the lowest empty cell of the column, scanning
// from the bottom row upward, and returns the row it settled in.
func (b *board) dropDisc(col int, p Player) (int, error) {
	for row := b.rows - 1; row >= 0; row-- {
		if b.at(row, col) == Empty {
			b.set(row, col, p)
			return row, nil
		}
	}
	return -1, ErrColumnFull
}

func (b *board) isFull() bool {
	// a column fills top cell last, so checking row 0 is enough
	for col := 0; col < b.columns; col++ {
		if b.at(0, col) == Empty {
			return false
		}
	}
	return true
}

// snapshot returns a deep copy of the grid in row-major [row][col]
// order. Mutating the copy never affects the board.
func (b *board) snapshot() [][]Player {
	grid := make([][]Player, b.rows)
	for row := range grid {
		grid[row] = make([]Player, b.columns)
		copy(grid[row], b.cells[row*b.columns:(row+1)*b.columns])
	}
	return grid
}
