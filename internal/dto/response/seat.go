package response

import "movie-booking/internal/seatmap"

type SeatResponse struct {
	Label  string `json:"label"`
	Row    string `json:"row"`
	Col    int    `json:"col"`
	Status string `json:"status"`
}

type SeatMapResponse struct {
	ShowtimeID   string         `json:"showtime_id"`
	PricePerSeat float64        `json:"price_per_seat"`
	Seats        []SeatResponse `json:"seats"`
}

// Helper converter
func SeatsToResponse(seats []seatmap.Seat) []SeatResponse {
	responses := make([]SeatResponse, len(seats))
	for i, seat := range seats {
		responses[i] = SeatResponse{
			Label:  seat.Label,
			Row:    seat.Row,
			Col:    seat.Col,
			Status: string(seat.Status),
		}
	}
	return responses
}
