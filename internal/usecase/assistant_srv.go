package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// MovieInsights answers free-text questions about a movie. An
// unavailable backend yields a fixed fallback message, never an error.
type MovieInsights interface {
	Ask(ctx context.Context, movieTitle, question string) string
}

type AssistantService interface {
	AskAboutMovie(ctx context.Context, movieID string, req *request.MovieInsightsRequest) (*response.MovieInsightsResponse, error)
}

type assistantService struct {
	repo     *repository.Repository
	insights MovieInsights
	log      *zap.Logger
}

func NewAssistantService(repo *repository.Repository, insights MovieInsights, log *zap.Logger) AssistantService {
	return &assistantService{
		repo:     repo,
		insights: insights,
		log:      log.With(zap.String("service", "assistant")),
	}
}

// AskAboutMovie fails only when the movie does not exist or the request
// is malformed; assistant unavailability is answered with the fallback
// text so it can never break the booking flow.
func (s *assistantService) AskAboutMovie(ctx context.Context, movieID string, req *request.MovieInsightsRequest) (*response.MovieInsightsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Insights validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	answer := s.insights.Ask(ctx, movie.Title, req.Question)

	s.log.Info("Insights answered",
		zap.String("movie_id", movieID),
		zap.Int("answer_len", len(answer)),
	)

	return &response.MovieInsightsResponse{
		MovieTitle: movie.Title,
		Answer:     answer,
	}, nil
}
