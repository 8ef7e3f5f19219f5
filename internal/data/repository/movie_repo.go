package repository

import (
	"context"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
}

type movieRepository struct {
	store *database.Store
	log   *zap.Logger
}

func NewMovieRepository(store *database.Store, log *zap.Logger) MovieRepository {
	return &movieRepository{
		store: store,
		log:   log.With(zap.String("repository", "movie")),
	}
}

// FindAll returns all seeded movies in seed order.
func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	movies := make([]*entity.Movie, len(r.store.Movies))
	copy(movies, r.store.Movies)

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

// FindByID returns nil when no movie matches.
func (r *movieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	for _, movie := range r.store.Movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, nil
}
