package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/database"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingRouter(t *testing.T) *chi.Mux {
	t.Helper()

	start := time.Date(2026, 8, 30, 14, 0, 0, 0, time.Local)
	store := &database.Store{
		Movies: []*entity.Movie{
			{ID: "m1", Title: "Inception"},
		},
		Theaters: []*entity.Theater{
			{ID: "t1", Name: "Grand Cinema Hall", Location: "Downtown"},
		},
		Showtimes: []*entity.Showtime{
			{ID: "s1", MovieID: "m1", TheaterID: "t1", StartTime: start, Price: 12, Screen: "Screen 1"},
		},
	}

	repo := repository.NewRepository(store, zap.NewNop())
	handler := NewBookingHandler(usecase.NewBookingService(repo, zap.NewNop()), zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/showtimes/{id}/seats", handler.GetSeatMap)
	r.Post("/api/bookings", handler.CreateBooking)
	r.Get("/api/bookings/{id}", handler.GetBooking)

	return r
}

func doRequest(t *testing.T, router *chi.Mux, method, path, body string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return rec, resp
}

func TestCreateBookingEndpoint(t *testing.T) {
	router := newBookingRouter(t)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/bookings",
		`{"showtime_id":"s1","seats":["A1","A2"],"customer_name":"Alice"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 24.0, data["total_price"])
	assert.Equal(t, "Alice", data["customer_name"])
}

func TestCreateBookingEndpointConflict(t *testing.T) {
	router := newBookingRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/bookings",
		`{"showtime_id":"s1","seats":["A1","A2"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/bookings",
		`{"showtime_id":"s1","seats":["A2","A3"]}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, resp.Status)
}

func TestCreateBookingEndpointBadRequests(t *testing.T) {
	router := newBookingRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"no seats", `{"showtime_id":"s1","seats":[]}`},
		{"bad seat label", `{"showtime_id":"s1","seats":["Z9"]}`},
		{"missing showtime", `{"seats":["A1"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, router, http.MethodPost, "/api/bookings", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Status)
		})
	}
}

func TestCreateBookingEndpointUnknownShowtime(t *testing.T) {
	router := newBookingRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/bookings",
		`{"showtime_id":"nope","seats":["A1"]}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSeatMapEndpoint(t *testing.T) {
	router := newBookingRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/bookings",
		`{"showtime_id":"s1","seats":["C3","C4"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/showtimes/s1/seats", "")

	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	seats, ok := data["seats"].([]any)
	require.True(t, ok)
	assert.Len(t, seats, 64)

	occupied := 0
	for _, raw := range seats {
		seat := raw.(map[string]any)
		if seat["status"] == "occupied" {
			occupied++
		}
	}
	assert.Equal(t, 2, occupied)
}

func TestGetSeatMapEndpointNotFound(t *testing.T) {
	router := newBookingRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/showtimes/nope/seats", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBookingEndpoint(t *testing.T) {
	router := newBookingRouter(t)

	rec, created := doRequest(t, router, http.MethodPost, "/api/bookings",
		`{"showtime_id":"s1","seats":["D4"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	id := created.Data.(map[string]any)["id"].(string)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/bookings/"+id, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Inception", data["movie_title"])

	rec, _ = doRequest(t, router, http.MethodGet, "/api/bookings/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
