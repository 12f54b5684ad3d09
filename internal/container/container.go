package container

import (
	"context"

	"github.com/krugerlabs/kruger-trivia/internal/config"
	"github.com/krugerlabs/kruger-trivia/internal/trivia"
)

type Container struct {
	TriviaContainer *trivia.TriviaContainer
}

func New(cfg *config.ServerConfig) (*Container, error) {
	if err := config.Connect(context.Background(), cfg.DatabaseDriver, cfg.DatabaseDSN); err != nil {
		return nil, err
	}

	return &Container{
		TriviaContainer: trivia.NewTriviaContainer(config.DB),
	}, nil
}
