package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/seatmap"

	"go.uber.org/zap"
)

// SessionState tracks a single user-visible booking attempt.
type SessionState string

const (
	StateBrowsing       SessionState = "browsing"
	StateShowtimeChosen SessionState = "showtime_chosen"
	StateSeatsSelecting SessionState = "seats_selecting"
	StateCommitting     SessionState = "committing"
	StateConfirmed      SessionState = "confirmed"
	StateConflictRetry  SessionState = "conflict_retry"
)

// BookingSession is the client-local state machine driving one booking
// attempt: pick a showtime, toggle seats, confirm. It keeps its own
// occupancy snapshot for display, but the commit always re-validates
// against the live ledger; on a conflict the selection is discarded and
// the snapshot refreshed so the user sees current occupancy.
//
// A session belongs to one caller and is not safe for concurrent use.
type BookingSession struct {
	repo *repository.Repository
	log  *zap.Logger

	state    SessionState
	showtime *entity.Showtime
	occupied []string
	selected []string
	booking  *entity.Booking
}

func NewBookingSession(repo *repository.Repository, log *zap.Logger) *BookingSession {
	return &BookingSession{
		repo:  repo,
		log:   log.With(zap.String("service", "session")),
		state: StateBrowsing,
	}
}

// ChooseShowtime loads the showtime and a fresh occupancy snapshot,
// then readies the session for seat selection.
func (s *BookingSession) ChooseShowtime(ctx context.Context, showtimeID string) error {
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil || showtime == nil {
		return fmt.Errorf("showtime %s not found", showtimeID)
	}

	occupied, err := s.repo.Booking.OccupiedSeats(ctx, showtimeID)
	if err != nil {
		return fmt.Errorf("get occupied seats: %w", err)
	}

	s.showtime = showtime
	s.occupied = occupied
	s.selected = nil
	s.booking = nil
	s.state = StateShowtimeChosen

	return nil
}

// ToggleSeat adds or removes a seat from the local selection. Occupied
// or invalid labels are ignored silently, matching the disabled seats
// in the UI.
func (s *BookingSession) ToggleSeat(label string) {
	if s.state != StateShowtimeChosen && s.state != StateSeatsSelecting {
		return
	}
	if !seatmap.ValidLabel(label) {
		return
	}
	for _, taken := range s.occupied {
		if label == taken {
			return
		}
	}

	s.state = StateSeatsSelecting

	for i, selected := range s.selected {
		if label == selected {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
	s.selected = append(s.selected, label)
}

// Confirm commits the current selection to the ledger. On success the
// session holds the confirmed booking and retains the selection for
// display. On a seat conflict the selection is discarded, occupancy is
// refreshed and the session returns to seat selection; the conflict is
// reported to the caller so the UI can show a notice.
func (s *BookingSession) Confirm(ctx context.Context, customerName string) error {
	if s.state != StateSeatsSelecting || len(s.selected) == 0 {
		return fmt.Errorf("no seats selected")
	}

	if customerName == "" {
		customerName = DefaultCustomerName
	}

	s.state = StateCommitting

	booking := &entity.Booking{
		ShowtimeID:   s.showtime.ID,
		SeatNumbers:  append([]string(nil), s.selected...),
		TotalPrice:   s.showtime.Price * float64(len(s.selected)),
		CustomerName: customerName,
	}

	err := s.repo.Booking.Create(ctx, booking)
	if errors.Is(err, repository.ErrSeatConflict) {
		s.state = StateConflictRetry

		s.log.Warn("Seat conflict on confirm, refreshing occupancy",
			zap.String("showtime_id", s.showtime.ID),
			zap.Strings("seats", s.selected),
		)

		s.selected = nil
		if occupied, refreshErr := s.repo.Booking.OccupiedSeats(ctx, s.showtime.ID); refreshErr == nil {
			s.occupied = occupied
		}
		s.state = StateSeatsSelecting

		return fmt.Errorf("confirm booking: %w", err)
	}
	if err != nil {
		s.state = StateSeatsSelecting
		return fmt.Errorf("confirm booking: %w", err)
	}

	s.booking = booking
	s.state = StateConfirmed

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("showtime_id", s.showtime.ID),
		zap.Int("seat_count", len(booking.SeatNumbers)),
	)

	return nil
}

// Reset discards the session, as when the user navigates away.
func (s *BookingSession) Reset() {
	s.state = StateBrowsing
	s.showtime = nil
	s.occupied = nil
	s.selected = nil
	s.booking = nil
}

// SeatGrid projects the current occupancy snapshot and selection onto
// the fixed grid.
func (s *BookingSession) SeatGrid() []seatmap.Seat {
	return seatmap.BuildGrid(s.occupied, s.selected)
}

func (s *BookingSession) State() SessionState { return s.state }

func (s *BookingSession) Showtime() *entity.Showtime { return s.showtime }

func (s *BookingSession) Booking() *entity.Booking { return s.booking }

func (s *BookingSession) SelectedSeats() []string {
	return append([]string(nil), s.selected...)
}

// TotalPrice is the running total for the current selection.
func (s *BookingSession) TotalPrice() float64 {
	if s.showtime == nil {
		return 0
	}
	return s.showtime.Price * float64(len(s.selected))
}
