package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is created only through the ledger's commit and never
// mutated or deleted afterwards. SeatNumbers are unique within a
// booking and kept in selection order.
type Booking struct {
	ID           uuid.UUID
	ShowtimeID   string
	SeatNumbers  []string
	TotalPrice   float64
	CustomerName string
	CreatedAt    time.Time
}
