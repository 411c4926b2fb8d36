package domain

// Player marks a cell occupant and identifies whose turn it is.
// Empty doubles as the "absent" value for Turn and Winner.
type Player int

const (
	Empty  Player = 0
	Red    Player = 1
	Yellow Player = 2
)

// Red moves first in every game.
const FirstPlayer = Red

const (
	MinRows    = 4
	MinColumns = 4
	ToWin      = 4
)

func (p Player) String() string {
	switch p {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	}
	return ""
}

// Token returns the single-character board notation for the player:
// the first letter of its name, or '.' for an empty cell.
func (p Player) Token() byte {
	switch p {
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	}
	return '.'
}

// Opponent returns the other player. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

// ConfigError reports an invalid board configuration. It is returned
// from construction only and is not recoverable.
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

// MoveError reports a rejected move. The engine state is left
// unchanged, so the caller can surface the message and re-prompt.
type MoveError string

func (e MoveError) Error() string {
	return string(e)
}

const (
	ErrBoardTooSmall ConfigError = "board must be at least 4x4"

	ErrColumnOutOfBounds MoveError = "column out of bounds"
	ErrColumnFull        MoveError = "column is full"
	ErrGameOver          MoveError = "game is over"
)
