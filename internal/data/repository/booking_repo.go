package repository

import (
	"context"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// OccupiedSeats returns the union of seat labels across all
	// bookings for the showtime, without duplicates. Empty when none.
	OccupiedSeats(ctx context.Context, showtimeID string) ([]string, error)

	// Create commits the booking, assigning its identity and creation
	// time. It re-validates the requested seats against the current
	// ledger state and fails whole with ErrSeatConflict on any overlap.
	Create(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
}

type bookingRepository struct {
	store *database.Store
	log   *zap.Logger
}

func NewBookingRepository(store *database.Store, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		store: store,
		log:   log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) OccupiedSeats(ctx context.Context, showtimeID string) ([]string, error) {
	r.store.BookingsMu.Lock()
	defer r.store.BookingsMu.Unlock()

	return r.occupiedSeatsLocked(showtimeID), nil
}

// occupiedSeatsLocked requires BookingsMu to be held.
func (r *bookingRepository) occupiedSeatsLocked(showtimeID string) []string {
	seen := make(map[string]bool)
	occupied := []string{}

	for _, booking := range r.store.Bookings {
		if booking.ShowtimeID != showtimeID {
			continue
		}
		for _, label := range booking.SeatNumbers {
			if !seen[label] {
				seen[label] = true
				occupied = append(occupied, label)
			}
		}
	}

	return occupied
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()

	// The conflict check and the append must stay one critical section,
	// otherwise two concurrent commits could both pass the check and
	// double-book overlapping seats.
	r.store.BookingsMu.Lock()
	defer r.store.BookingsMu.Unlock()

	occupied := r.occupiedSeatsLocked(booking.ShowtimeID)
	for _, label := range booking.SeatNumbers {
		for _, taken := range occupied {
			if label == taken {
				r.log.Warn("Booking rejected, seat already taken",
					zap.String("showtime_id", booking.ShowtimeID),
					zap.String("seat", label),
				)
				return ErrSeatConflict
			}
		}
	}

	r.store.Bookings = append(r.store.Bookings, booking)

	r.log.Info("Booking recorded",
		zap.String("booking_id", booking.ID.String()),
		zap.String("showtime_id", booking.ShowtimeID),
		zap.Int("seat_count", len(booking.SeatNumbers)),
		zap.Float64("total_price", booking.TotalPrice),
	)

	return nil
}

// FindByID returns nil when no booking matches.
func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.store.BookingsMu.Lock()
	defer r.store.BookingsMu.Unlock()

	for _, booking := range r.store.Bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return nil, nil
}
