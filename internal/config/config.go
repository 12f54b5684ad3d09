package config

import (
	"errors"
	"os"
)

// ServerConfig holds the configuration for the question service.
type ServerConfig struct {
	Port           string
	DatabaseDriver string
	DatabaseDSN    string
}

// BotConfig holds the configuration for the Telegram bot.
type BotConfig struct {
	BackendURL string
	BotToken   string
	Debug      bool
}

// LoadServer loads the question service configuration from environment variables.
func LoadServer() (*ServerConfig, error) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN environment variable is required")
	}

	driver := os.Getenv("DATABASE_DRIVER")
	if driver == "" {
		driver = "postgres"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	return &ServerConfig{
		Port:           port,
		DatabaseDriver: driver,
		DatabaseDSN:    dsn,
	}, nil
}

// LoadBot loads the bot configuration from environment variables. The bot
// token may be empty here; main falls back to an interactive prompt.
func LoadBot() (*BotConfig, error) {
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8000/question"
	}

	return &BotConfig{
		BackendURL: backendURL,
		BotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		Debug:      os.Getenv("DEBUG") == "true",
	}, nil
}
