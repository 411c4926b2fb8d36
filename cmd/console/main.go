package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dropfour/connect-four/internal/config"
	"github.com/dropfour/connect-four/internal/console"
	"github.com/dropfour/connect-four/internal/domain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	engine, err := domain.NewEngine(cfg.BoardRows, cfg.BoardColumns)
	if err != nil {
		log.Fatalf("Invalid board configuration %dx%d: %v", cfg.BoardRows, cfg.BoardColumns, err)
	}

	ctrl := console.NewController(os.Stdin, os.Stdout)
	if err := ctrl.PlayGame(engine); err != nil {
		log.Fatalf("Game session error: %v", err)
	}
}
