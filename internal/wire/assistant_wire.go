package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAssistant(r chi.Router, assistantHandler *adaptor.AssistantHandler) {
	// POST /api/movies/{id}/insights - Free-text question about a movie
	r.Post("/api/movies/{id}/insights", assistantHandler.AskAboutMovie)
}
