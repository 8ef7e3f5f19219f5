package wire

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-booking/internal/data/repository"
	"movie-booking/pkg/database"
	"movie-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	store, err := database.NewStore()
	require.NoError(t, err)

	repo := repository.NewRepository(store, zap.NewNop())

	return Wiring(repo, &utils.Config{}, zap.NewNop())
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestBrowseAndBookFlow(t *testing.T) {
	app := newTestApp(t)

	get := func(path string) (*httptest.ResponseRecorder, utils.Response) {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		var resp utils.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return rec, resp
	}

	// Browse movies
	rec, resp := get("/api/movies")
	require.Equal(t, http.StatusOK, rec.Code)
	movies := resp.Data.([]any)
	require.Len(t, movies, 4)

	movieID := movies[0].(map[string]any)["id"].(string)

	// Pick a showtime
	rec, resp = get("/api/movies/" + movieID + "/showtimes")
	require.Equal(t, http.StatusOK, rec.Code)
	showtimes := resp.Data.([]any)
	require.NotEmpty(t, showtimes)

	showtimeID := showtimes[0].(map[string]any)["id"].(string)

	// Seat map is a full grid
	rec, resp = get("/api/showtimes/" + showtimeID + "/seats")
	require.Equal(t, http.StatusOK, rec.Code)
	seats := resp.Data.(map[string]any)["seats"].([]any)
	require.Len(t, seats, 64)

	// Commit a booking on free seats
	body := fmt.Sprintf(`{"showtime_id":%q,"seats":["E5","E6"],"customer_name":"Alice"}`, showtimeID)
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	bookingID := created.Data.(map[string]any)["id"].(string)

	// Confirmation view
	rec, resp = get("/api/bookings/" + bookingID)
	require.Equal(t, http.StatusOK, rec.Code)
	ticket := resp.Data.(map[string]any)
	assert.Equal(t, "Alice", ticket["customer_name"])
	assert.NotEmpty(t, ticket["movie_title"])
}

func TestUnknownMovieIs404(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
