package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/internal/gemini"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog   CatalogService
	Booking   BookingService
	Assistant AssistantService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	insights := gemini.NewClient(config.Assistant, log)

	return &Service{
		Catalog:   NewCatalogService(repo, log),
		Booking:   NewBookingService(repo, log),
		Assistant: NewAssistantService(repo, insights, log),
	}
}
