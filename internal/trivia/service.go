package trivia

import (
	"context"
	"errors"

	"github.com/krugerlabs/kruger-trivia/internal/config"
)

type Service interface {
	GetQuestion(ctx context.Context) (*Question, error)
}

type service struct {
	generator *Generator
}

func NewService(g *Generator) Service {
	return &service{generator: g}
}

func (s *service) GetQuestion(ctx context.Context) (*Question, error) {
	log := config.WithContext(ctx)

	q := s.generator.Generate(ctx)
	if !q.Valid() {
		log.WithField("question", q).Error("Generator produced an invalid question")
		return nil, errors.New("not enough data to generate question")
	}

	return &q, nil
}
