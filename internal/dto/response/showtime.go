package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type ShowtimeResponse struct {
	ID              string    `json:"id"`
	MovieID         string    `json:"movie_id"`
	TheaterID       string    `json:"theater_id"`
	TheaterName     string    `json:"theater_name,omitempty"`
	TheaterLocation string    `json:"theater_location,omitempty"`
	StartTime       time.Time `json:"start_time"`
	Price           float64   `json:"price"`
	Screen          string    `json:"screen"`
}

type TheaterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Helper converters
func ShowtimeToResponse(showtime *entity.Showtime, theater *entity.Theater) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:        showtime.ID,
		MovieID:   showtime.MovieID,
		TheaterID: showtime.TheaterID,
		StartTime: showtime.StartTime,
		Price:     showtime.Price,
		Screen:    showtime.Screen,
	}

	if theater != nil {
		resp.TheaterName = theater.Name
		resp.TheaterLocation = theater.Location
	}

	return resp
}

func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:       theater.ID,
		Name:     theater.Name,
		Location: theater.Location,
	}
}
