package repository

import (
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie    MovieRepository
	Theater  TheaterRepository
	Showtime ShowtimeRepository
	Booking  BookingRepository
}

func NewRepository(store *database.Store, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(store, log),
		Theater:  NewTheaterRepository(store, log),
		Showtime: NewShowtimeRepository(store, log),
		Booking:  NewBookingRepository(store, log),
	}
}
