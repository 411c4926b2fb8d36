package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dropfour/connect-four/internal/config"
	"github.com/dropfour/connect-four/internal/domain"
	"github.com/dropfour/connect-four/internal/transport/http/middleware"
	"github.com/dropfour/connect-four/internal/transport/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	// Fail fast on unplayable dimensions instead of erroring per
	// connection later
	if _, err := domain.NewEngine(cfg.BoardRows, cfg.BoardColumns); err != nil {
		log.Fatalf("Invalid board configuration %dx%d: %v", cfg.BoardRows, cfg.BoardColumns, err)
	}

	wsHandler := websocket.NewHandler(cfg.BoardRows, cfg.BoardColumns, cfg.AllowedOrigins)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.HandleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// No server-level read/write timeouts: /ws connections are
	// long-lived, and the socket layer manages its own deadlines
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.CORS(cfg.AllowedOrigins, mux),
	}

	go func() {
		log.Printf("Server listening on port %s (board %dx%d)", cfg.Port, cfg.BoardRows, cfg.BoardColumns)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
