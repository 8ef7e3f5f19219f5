package repository

import (
	"context"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type TheaterRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Theater, error)
}

type theaterRepository struct {
	store *database.Store
	log   *zap.Logger
}

func NewTheaterRepository(store *database.Store, log *zap.Logger) TheaterRepository {
	return &theaterRepository{
		store: store,
		log:   log.With(zap.String("repository", "theater")),
	}
}

// FindByID returns nil when no theater matches.
func (r *theaterRepository) FindByID(ctx context.Context, id string) (*entity.Theater, error) {
	for _, theater := range r.store.Theaters {
		if theater.ID == id {
			return theater, nil
		}
	}
	return nil, nil
}
