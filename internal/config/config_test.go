package config_test

import (
	"testing"

	"github.com/krugerlabs/kruger-trivia/internal/config"
)

func TestLoadServer(t *testing.T) {
	t.Run("MissingDSN", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "")

		if _, err := config.LoadServer(); err == nil {
			t.Error("LoadServer should fail when DATABASE_DSN is unset")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "file:test.db")
		t.Setenv("DATABASE_DRIVER", "")
		t.Setenv("PORT", "")

		cfg, err := config.LoadServer()
		if err != nil {
			t.Fatalf("LoadServer failed: %v", err)
		}
		if cfg.DatabaseDriver != "postgres" {
			t.Errorf("default driver = %q, want postgres", cfg.DatabaseDriver)
		}
		if cfg.Port != "8000" {
			t.Errorf("default port = %q, want 8000", cfg.Port)
		}
	})

	t.Run("Explicit", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "host=db user=oso")
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("PORT", "9000")

		cfg, err := config.LoadServer()
		if err != nil {
			t.Fatalf("LoadServer failed: %v", err)
		}
		if cfg.DatabaseDSN != "host=db user=oso" || cfg.DatabaseDriver != "sqlite" || cfg.Port != "9000" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})
}

func TestLoadBot(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "")
		t.Setenv("TELEGRAM_BOT_TOKEN", "")
		t.Setenv("DEBUG", "")

		cfg, err := config.LoadBot()
		if err != nil {
			t.Fatalf("LoadBot failed: %v", err)
		}
		if cfg.BackendURL != "http://localhost:8000/question" {
			t.Errorf("default backend URL = %q", cfg.BackendURL)
		}
		if cfg.BotToken != "" {
			t.Errorf("token should be empty, got %q", cfg.BotToken)
		}
		if cfg.Debug {
			t.Error("debug should default to false")
		}
	})

	t.Run("Explicit", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "https://trivia.example.com/question")
		t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
		t.Setenv("DEBUG", "true")

		cfg, err := config.LoadBot()
		if err != nil {
			t.Fatalf("LoadBot failed: %v", err)
		}
		if cfg.BackendURL != "https://trivia.example.com/question" || cfg.BotToken != "123:abc" || !cfg.Debug {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})
}
