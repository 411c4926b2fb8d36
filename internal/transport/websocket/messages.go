package websocket

import "github.com/dropfour/connect-four/internal/domain"

// ClientMessage is a single command from the browser page.
type ClientMessage struct {
	Type   string `json:"type"`
	Column int    `json:"column"`
}

// StateMessage mirrors the full game state. One is pushed after the
// connection opens and after every accepted command, so the page can
// re-render without tracking moves itself.
type StateMessage struct {
	Type     string            `json:"type"`
	Board    [][]domain.Player `json:"board"`
	Turn     string            `json:"turn"`
	Winner   string            `json:"winner"`
	GameOver bool              `json:"gameOver"`
	Rows     int               `json:"rows"`
	Columns  int               `json:"columns"`
}

// ErrorMessage carries a rejected-command notice. The game state is
// unchanged when one of these arrives.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func stateMessage(engine *domain.Engine) StateMessage {
	return StateMessage{
		Type:     "state",
		Board:    engine.BoardState(),
		Turn:     engine.Turn().String(),
		Winner:   engine.Winner().String(),
		GameOver: engine.IsGameOver(),
		Rows:     engine.Rows(),
		Columns:  engine.Columns(),
	}
}
