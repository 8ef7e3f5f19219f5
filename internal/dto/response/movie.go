package response

import "movie-booking/internal/data/entity"

type MovieResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres"`
	Duration    int      `json:"duration"`
	Rating      float64  `json:"rating"`
	PosterURL   string   `json:"poster_url"`
	Description string   `json:"description"`
	Director    string   `json:"director"`
	ReleaseDate string   `json:"release_date"`
}

// Helper converter
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Genres:      movie.Genres,
		Duration:    movie.Duration,
		Rating:      movie.Rating,
		PosterURL:   movie.PosterURL,
		Description: movie.Description,
		Director:    movie.Director,
		ReleaseDate: movie.ReleaseDate,
	}
}
