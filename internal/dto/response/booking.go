package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	ShowtimeID   string    `json:"showtime_id"`
	MovieTitle   string    `json:"movie_title,omitempty"`
	TheaterName  string    `json:"theater_name,omitempty"`
	Screen       string    `json:"screen,omitempty"`
	ShowDate     string    `json:"show_date,omitempty"`
	ShowTime     string    `json:"show_time,omitempty"`
	SeatNumbers  []string  `json:"seat_numbers"`
	TotalPrice   float64   `json:"total_price"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Helper converter; movie, theater and showtime enrich the ticket view
// and may be nil when unknown.
func BookingToResponse(booking *entity.Booking, showtime *entity.Showtime, movie *entity.Movie, theater *entity.Theater) BookingResponse {
	resp := BookingResponse{
		ID:           booking.ID.String(),
		ShowtimeID:   booking.ShowtimeID,
		SeatNumbers:  booking.SeatNumbers,
		TotalPrice:   booking.TotalPrice,
		CustomerName: booking.CustomerName,
		CreatedAt:    booking.CreatedAt,
	}

	if showtime != nil {
		resp.Screen = showtime.Screen
		resp.ShowDate = showtime.StartTime.Format("2006-01-02")
		resp.ShowTime = showtime.StartTime.Format("15:04")
	}
	if movie != nil {
		resp.MovieTitle = movie.Title
	}
	if theater != nil {
		resp.TheaterName = theater.Name
	}

	return resp
}
