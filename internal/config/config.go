package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	BoardRows      int
	BoardColumns   int
	AllowedOrigins []string
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Board dimensions; the engine rejects anything below 4x4
	boardRows := GetEnvAsInt("BOARD_ROWS", 6)
	boardColumns := GetEnvAsInt("BOARD_COLUMNS", 7)

	// Build allowed origins list (localhost dev origins + CSV values)
	allowedOrigins := []string{
		"http://localhost:5173", // Local development
		"http://localhost:8080",
	}
	if extrasStr := GetEnv("ALLOWED_ORIGINS", ""); extrasStr != "" {
		for _, origin := range strings.Split(extrasStr, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	AppConfig = &Config{
		Port:           port,
		BoardRows:      boardRows,
		BoardColumns:   boardColumns,
		AllowedOrigins: allowedOrigins,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
