package trivia

import (
	"net/http"

	"github.com/krugerlabs/kruger-trivia/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	question, err := h.service.GetQuestion(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to generate trivia question")
		config.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	config.JSON(w, http.StatusOK, question)
}
