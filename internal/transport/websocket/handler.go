package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dropfour/connect-four/internal/domain"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler upgrades browser connections and drives one hot-seat game
// per connection. The engine lives in the connection's read loop, so
// it needs no locking of its own.
type Handler struct {
	rows     int
	columns  int
	upgrader websocket.Upgrader
}

// NewHandler creates a handler whose games use the given board size.
// Origins are checked against the allowed list; requests without an
// Origin header (same-origin, curl) are let through.
func NewHandler(rows, columns int, allowedOrigins []string) *Handler {
	return &Handler{
		rows:    rows,
		columns: columns,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == origin {
						return true
					}
				}
				log.Printf("[WS] Origin '%s' not in allowed list", origin)
				return false
			},
		},
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(newClient(conn))
}

// handleConnection manages the lifecycle of a single connection: a
// fresh engine, an initial state push, then the command loop.
func (h *Handler) handleConnection(c *client) {
	defer c.close()

	engine, err := domain.NewEngine(h.rows, h.columns)
	if err != nil {
		// dimensions are validated at startup, so this is a bug
		log.Printf("[WS] Engine construction failed: %v", err)
		return
	}

	// Read deadline plus keep-alive pings to detect stale connections
	c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := c.ping(); err != nil {
					return
				}
			}
		}
	}()

	if err := c.writeJSON(stateMessage(engine)); err != nil {
		log.Printf("[WS] Initial state write failed: %v", err)
		return
	}

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			continue
		}

		if err := h.processMessage(c, engine, msg); err != nil {
			return
		}
	}
}

// processMessage routes a single command. A move error goes back as a
// notice with the engine untouched; anything else gets the new state.
func (h *Handler) processMessage(c *client, engine *domain.Engine, msg ClientMessage) error {
	switch msg.Type {
	case "make_move":
		if err := engine.MakeMove(msg.Column); err != nil {
			var moveErr domain.MoveError
			if errors.As(err, &moveErr) {
				return c.writeJSON(ErrorMessage{Type: "error", Message: err.Error()})
			}
			return err
		}
		return c.writeJSON(stateMessage(engine))

	case "reset":
		engine.ResetBoard()
		return c.writeJSON(stateMessage(engine))

	default:
		return c.writeJSON(ErrorMessage{Type: "error", Message: "unknown message type"})
	}
}
