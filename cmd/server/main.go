package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"github.com/krugerlabs/kruger-trivia/internal/config"
	"github.com/krugerlabs/kruger-trivia/internal/container"
	"github.com/krugerlabs/kruger-trivia/internal/router"
)

func main() {
	_ = godotenv.Load()
	config.Init()
	log := config.Logger()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the data source: %v", err)
	}

	r := router.New(router.RouterConfig{
		TriviaHandler: c.TriviaContainer.Handler,
	})

	addr := ":" + cfg.Port
	log.Infof("Question service listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
