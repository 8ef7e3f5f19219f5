package request

type CreateBookingRequest struct {
	ShowtimeID   string   `json:"showtime_id" validate:"required"`
	Seats        []string `json:"seats" validate:"required,min=1,unique,dive,seatlabel"`
	CustomerName string   `json:"customer_name" validate:"max=100"`
}
