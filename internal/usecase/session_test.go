package usecase

import (
	"context"
	"testing"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/seatmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionChooseShowtime(t *testing.T) {
	repo := newTestRepo()
	session := NewBookingSession(repo, zap.NewNop())
	ctx := context.Background()

	require.Error(t, session.ChooseShowtime(ctx, "nope"))
	assert.Equal(t, StateBrowsing, session.State())

	require.NoError(t, session.ChooseShowtime(ctx, "s1"))
	assert.Equal(t, StateShowtimeChosen, session.State())
	assert.Equal(t, "s1", session.Showtime().ID)
}

func TestSessionToggleSeat(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	// Occupy A1 before the session looks at the showtime
	require.NoError(t, repo.Booking.Create(ctx, &entity.Booking{
		ShowtimeID:  "s1",
		SeatNumbers: []string{"A1"},
	}))

	session := NewBookingSession(repo, zap.NewNop())
	require.NoError(t, session.ChooseShowtime(ctx, "s1"))

	// Toggling an occupied seat is a silent no-op
	session.ToggleSeat("A1")
	assert.Empty(t, session.SelectedSeats())

	// Invalid labels are ignored too
	session.ToggleSeat("Z9")
	assert.Empty(t, session.SelectedSeats())

	// Select, then deselect
	session.ToggleSeat("B2")
	assert.Equal(t, StateSeatsSelecting, session.State())
	assert.Equal(t, []string{"B2"}, session.SelectedSeats())

	session.ToggleSeat("B3")
	assert.Equal(t, []string{"B2", "B3"}, session.SelectedSeats())
	assert.Equal(t, 24.0, session.TotalPrice())

	session.ToggleSeat("B2")
	assert.Equal(t, []string{"B3"}, session.SelectedSeats())
}

func TestSessionSeatGrid(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	require.NoError(t, repo.Booking.Create(ctx, &entity.Booking{
		ShowtimeID:  "s1",
		SeatNumbers: []string{"C3"},
	}))

	session := NewBookingSession(repo, zap.NewNop())
	require.NoError(t, session.ChooseShowtime(ctx, "s1"))
	session.ToggleSeat("A1")

	grid := session.SeatGrid()
	require.Len(t, grid, 64)

	statuses := make(map[string]seatmap.SeatStatus)
	for _, seat := range grid {
		statuses[seat.Label] = seat.Status
	}
	assert.Equal(t, seatmap.StatusOccupied, statuses["C3"])
	assert.Equal(t, seatmap.StatusSelected, statuses["A1"])
	assert.Equal(t, seatmap.StatusAvailable, statuses["H8"])
}

func TestSessionConfirm(t *testing.T) {
	repo := newTestRepo()
	session := NewBookingSession(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, session.ChooseShowtime(ctx, "s1"))
	session.ToggleSeat("A1")
	session.ToggleSeat("A2")

	require.NoError(t, session.Confirm(ctx, "Alice"))

	assert.Equal(t, StateConfirmed, session.State())
	require.NotNil(t, session.Booking())
	assert.Equal(t, 24.0, session.Booking().TotalPrice)
	assert.Equal(t, "Alice", session.Booking().CustomerName)

	// Selection is retained for the confirmation display
	assert.Equal(t, []string{"A1", "A2"}, session.SelectedSeats())

	occupied, err := repo.Booking.OccupiedSeats(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, occupied)
}

func TestSessionConfirmWithoutSelection(t *testing.T) {
	session := NewBookingSession(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, session.ChooseShowtime(ctx, "s1"))

	require.Error(t, session.Confirm(ctx, "Alice"))
}

func TestSessionConflictRetry(t *testing.T) {
	repo := newTestRepo()
	session := NewBookingSession(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, session.ChooseShowtime(ctx, "s1"))
	session.ToggleSeat("A1")
	session.ToggleSeat("A2")

	// Someone else takes A2 between snapshot and confirm
	require.NoError(t, repo.Booking.Create(ctx, &entity.Booking{
		ShowtimeID:  "s1",
		SeatNumbers: []string{"A2"},
	}))

	err := session.Confirm(ctx, "Alice")
	require.ErrorIs(t, err, repository.ErrSeatConflict)

	// Selection discarded, occupancy refreshed, back to selecting
	assert.Equal(t, StateSeatsSelecting, session.State())
	assert.Empty(t, session.SelectedSeats())
	assert.Nil(t, session.Booking())

	// The refreshed snapshot makes A2 un-selectable now
	session.ToggleSeat("A2")
	assert.Empty(t, session.SelectedSeats())

	// Retrying with free seats succeeds
	session.ToggleSeat("B1")
	require.NoError(t, session.Confirm(ctx, "Alice"))
	assert.Equal(t, StateConfirmed, session.State())
}

func TestSessionReset(t *testing.T) {
	session := NewBookingSession(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, session.ChooseShowtime(ctx, "s1"))
	session.ToggleSeat("A1")

	session.Reset()

	assert.Equal(t, StateBrowsing, session.State())
	assert.Nil(t, session.Showtime())
	assert.Empty(t, session.SelectedSeats())
	assert.Equal(t, 0.0, session.TotalPrice())
}
