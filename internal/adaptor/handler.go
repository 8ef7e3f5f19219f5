package adaptor

import (
	"movie-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie     *MovieHandler
	Booking   *BookingHandler
	Assistant *AssistantHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:     NewMovieHandler(service.Catalog, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Assistant: NewAssistantHandler(service.Assistant, log),
	}
}
