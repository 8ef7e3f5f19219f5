package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// GET /api/showtimes/{id}/seats - 64-seat grid with occupancy
	r.Get("/api/showtimes/{id}/seats", bookingHandler.GetSeatMap)

	// POST /api/bookings - Commit a new booking (409 on seat conflict)
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings/{id} - Confirmation / ticket view
	r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
}
