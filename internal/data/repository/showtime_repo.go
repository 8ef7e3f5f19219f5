package repository

import (
	"context"
	"sort"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	FindByMovieID(ctx context.Context, movieID string) ([]*entity.Showtime, error)
	FindByID(ctx context.Context, id string) (*entity.Showtime, error)
}

type showtimeRepository struct {
	store *database.Store
	log   *zap.Logger
}

func NewShowtimeRepository(store *database.Store, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		store: store,
		log:   log.With(zap.String("repository", "showtime")),
	}
}

// FindByMovieID returns the movie's showtimes sorted ascending by start
// time. Empty slice when the movie has none (or does not exist).
func (r *showtimeRepository) FindByMovieID(ctx context.Context, movieID string) ([]*entity.Showtime, error) {
	var showtimes []*entity.Showtime
	for _, showtime := range r.store.Showtimes {
		if showtime.MovieID == movieID {
			showtimes = append(showtimes, showtime)
		}
	}

	sort.SliceStable(showtimes, func(i, j int) bool {
		return showtimes[i].StartTime.Before(showtimes[j].StartTime)
	})

	r.log.Debug("Showtimes found",
		zap.String("movie_id", movieID),
		zap.Int("count", len(showtimes)),
	)

	return showtimes, nil
}

// FindByID returns nil when no showtime matches.
func (r *showtimeRepository) FindByID(ctx context.Context, id string) (*entity.Showtime, error) {
	for _, showtime := range r.store.Showtimes {
		if showtime.ID == id {
			return showtime, nil
		}
	}
	return nil, nil
}
