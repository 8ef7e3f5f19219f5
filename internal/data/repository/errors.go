// Package repository implements the read queries and the booking
// ledger on top of the seeded in-memory store. Lookups that find
// nothing return (nil, nil); the only sentinel error is the seat
// conflict raised by a booking commit.
package repository

import "errors"

// ErrSeatConflict is returned when a booking commit requests at least
// one seat already occupied for the showtime. The commit is atomic:
// nothing is recorded on conflict. Handlers should translate this into
// an HTTP 409 response.
var ErrSeatConflict = errors.New("one or more selected seats are already booked")
