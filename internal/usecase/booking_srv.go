package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/seatmap"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCustomerName is used when a booking request carries no name.
const DefaultCustomerName = "Guest User"

type BookingService interface {
	GetSeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// GetSeatMap derives the full 64-seat grid for a showtime from the
// current ledger state. Selection is client-local, so server-side every
// non-occupied seat is available.
func (s *bookingService) GetSeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil || showtime == nil {
		return nil, fmt.Errorf("showtime %s not found", showtimeID)
	}

	occupied, err := s.repo.Booking.OccupiedSeats(ctx, showtimeID)
	if err != nil {
		s.log.Error("Failed to get occupied seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("get occupied seats: %w", err)
	}

	grid := seatmap.BuildGrid(occupied, nil)

	return &response.SeatMapResponse{
		ShowtimeID:   showtime.ID,
		PricePerSeat: showtime.Price,
		Seats:        response.SeatsToResponse(grid),
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Validate showtime exists
	showtime, err := s.repo.Showtime.FindByID(ctx, req.ShowtimeID)
	if err != nil || showtime == nil {
		return nil, fmt.Errorf("showtime %s not found", req.ShowtimeID)
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = DefaultCustomerName
	}

	// Total is always computed server-side from the showtime price
	totalPrice := showtime.Price * float64(len(req.Seats))

	booking := &entity.Booking{
		ShowtimeID:   showtime.ID,
		SeatNumbers:  req.Seats,
		TotalPrice:   totalPrice,
		CustomerName: customerName,
	}

	// The ledger re-validates the seats against its current state and
	// rejects the whole booking on any overlap
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Warn("Failed to create booking",
			zap.Error(err),
			zap.String("showtime_id", req.ShowtimeID),
			zap.Strings("seats", req.Seats),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("showtime_id", showtime.ID),
		zap.Int("seat_count", len(booking.SeatNumbers)),
		zap.Float64("total_price", totalPrice),
	)

	return s.buildBookingResponse(ctx, booking, showtime), nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	showtime, _ := s.repo.Showtime.FindByID(ctx, booking.ShowtimeID)

	return s.buildBookingResponse(ctx, booking, showtime), nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking, showtime *entity.Showtime) *response.BookingResponse {
	var movie *entity.Movie
	var theater *entity.Theater

	if showtime != nil {
		movie, _ = s.repo.Movie.FindByID(ctx, showtime.MovieID)
		theater, _ = s.repo.Theater.FindByID(ctx, showtime.TheaterID)
	}

	resp := response.BookingToResponse(booking, showtime, movie, theater)
	return &resp
}
