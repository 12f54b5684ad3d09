package trivia

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/krugerlabs/kruger-trivia/internal/datasource"
)

type TriviaContainer struct {
	Handler *Handler
}

func NewTriviaContainer(db *gorm.DB) *TriviaContainer {
	repo := datasource.NewRepository(db)
	generator := NewGenerator(repo, rand.New(rand.NewSource(time.Now().UnixNano())))
	service := NewService(generator)
	handler := NewHandler(service)

	return &TriviaContainer{
		Handler: handler,
	}
}
