package entity

import "time"

// Showtime is a scheduled screening of a movie at a theater's screen.
// MovieID and TheaterID must resolve to seeded entries; the seed
// validates this at startup.
type Showtime struct {
	ID        string
	MovieID   string
	TheaterID string
	StartTime time.Time
	Price     float64 // per seat
	Screen    string
}
