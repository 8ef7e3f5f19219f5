package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetShowtimes(ctx context.Context, movieID string) ([]response.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
	GetTheater(ctx context.Context, theaterID string) (*response.TheaterResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.log.Info("Movies listed", zap.Int("count", len(movies)))

	return movieResponses, nil
}

func (s *catalogService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// GetShowtimes returns the movie's showtimes ascending by start time,
// enriched with theater name and location.
func (s *catalogService) GetShowtimes(ctx context.Context, movieID string) ([]response.ShowtimeResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	showtimes, err := s.repo.Showtime.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get showtimes",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get showtimes: %w", err)
	}

	showtimeResponses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		theater, _ := s.repo.Theater.FindByID(ctx, showtime.TheaterID)
		showtimeResponses[i] = response.ShowtimeToResponse(showtime, theater)
	}

	s.log.Info("Showtimes retrieved",
		zap.String("movie_id", movieID),
		zap.Int("count", len(showtimes)),
	)

	return showtimeResponses, nil
}

func (s *catalogService) GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil || showtime == nil {
		return nil, fmt.Errorf("showtime %s not found", showtimeID)
	}

	theater, _ := s.repo.Theater.FindByID(ctx, showtime.TheaterID)

	showtimeResp := response.ShowtimeToResponse(showtime, theater)
	return &showtimeResp, nil
}

func (s *catalogService) GetTheater(ctx context.Context, theaterID string) (*response.TheaterResponse, error) {
	theater, err := s.repo.Theater.FindByID(ctx, theaterID)
	if err != nil || theater == nil {
		return nil, fmt.Errorf("theater %s not found", theaterID)
	}

	theaterResp := response.TheaterToResponse(theater)
	return &theaterResp, nil
}
