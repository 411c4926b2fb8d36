package domain

// The four axis pairs a run can lie on: horizontal, vertical, and the
// two diagonals. Each is checked in both the listed direction and its
// mirror.
var runAxes = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// connectsFour reports whether the disc just placed at (row, col)
// completes a run of ToWin or more for player p. Only lines through
// the anchor cell are inspected; no win can predate the current move,
// so a full-board rescan is never needed.
func (b *board) connectsFour(row, col int, p Player) bool {
	for _, axis := range runAxes {
		count := 1
		count += b.countRun(row, col, axis[0], axis[1], p)
		count += b.countRun(row, col, -axis[0], -axis[1], p)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// countRun counts consecutive discs of p starting one step away from
// (row, col) in the (deltaRow, deltaCol) direction, stopping at the
// board edge or the first foreign cell.
func (b *board) countRun(row, col, deltaRow, deltaCol int, p Player) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for b.inBounds(r, c) && b.at(r, c) == p {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
