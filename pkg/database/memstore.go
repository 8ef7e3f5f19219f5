// Package database provides the in-memory store backing the
// repositories. There is no persistence: all tables are seeded at
// startup and live for the life of the process.
package database

import (
	"sync"

	"movie-booking/internal/data/entity"
)

// Store holds all tables. Movies, Theaters and Showtimes are immutable
// after seeding and safe for concurrent reads. Bookings are append-only
// and guarded by BookingsMu; hold the mutex for any read or write of
// Bookings so a commit's conflict check and append stay one critical
// section even with concurrent HTTP handlers.
type Store struct {
	Movies    []*entity.Movie
	Theaters  []*entity.Theater
	Showtimes []*entity.Showtime

	BookingsMu sync.Mutex
	Bookings   []*entity.Booking
}

// NewStore builds a store seeded with the demo catalog and a couple of
// pre-occupied seats.
func NewStore() (*Store, error) {
	s := &Store{}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) MovieCount() int    { return len(s.Movies) }
func (s *Store) TheaterCount() int  { return len(s.Theaters) }
func (s *Store) ShowtimeCount() int { return len(s.Showtimes) }

func (s *Store) BookingCount() int {
	s.BookingsMu.Lock()
	defer s.BookingsMu.Unlock()
	return len(s.Bookings)
}
