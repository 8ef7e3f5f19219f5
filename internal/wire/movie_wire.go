package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - List all movies
	r.Get("/api/movies", movieHandler.ListMovies)

	// GET /api/movies/{id} - Movie detail
	r.Get("/api/movies/{id}", movieHandler.GetMovie)

	// GET /api/movies/{id}/showtimes - Showtimes for a movie, sorted by start time
	r.Get("/api/movies/{id}/showtimes", movieHandler.GetShowtimes)

	// GET /api/showtimes/{id} - Showtime detail
	r.Get("/api/showtimes/{id}", movieHandler.GetShowtime)

	// GET /api/theaters/{id} - Theater detail
	r.Get("/api/theaters/{id}", movieHandler.GetTheater)
}
