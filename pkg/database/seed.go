package database

import (
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/seatmap"

	"github.com/google/uuid"
)

// seed fills the catalog tables and one existing booking so the first
// showtime starts with a couple of occupied seats.
func (s *Store) seed() error {
	s.Movies = []*entity.Movie{
		{
			ID:          "m1",
			Title:       "Inception",
			Genres:      []string{"Sci-Fi", "Action"},
			Duration:    148,
			Rating:      8.8,
			PosterURL:   "https://picsum.photos/300/450?random=1",
			Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			Director:    "Christopher Nolan",
			ReleaseDate: "2010-07-16",
		},
		{
			ID:          "m2",
			Title:       "The Dark Knight",
			Genres:      []string{"Action", "Crime"},
			Duration:    152,
			Rating:      9.0,
			PosterURL:   "https://picsum.photos/300/450?random=2",
			Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
			Director:    "Christopher Nolan",
			ReleaseDate: "2008-07-18",
		},
		{
			ID:          "m3",
			Title:       "Interstellar",
			Genres:      []string{"Sci-Fi", "Adventure"},
			Duration:    169,
			Rating:      8.6,
			PosterURL:   "https://picsum.photos/300/450?random=3",
			Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			Director:    "Christopher Nolan",
			ReleaseDate: "2014-11-07",
		},
		{
			ID:          "m4",
			Title:       "Parasite",
			Genres:      []string{"Thriller", "Drama"},
			Duration:    132,
			Rating:      8.5,
			PosterURL:   "https://picsum.photos/300/450?random=4",
			Description: "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
			Director:    "Bong Joon Ho",
			ReleaseDate: "2019-05-30",
		},
	}

	s.Theaters = []*entity.Theater{
		{ID: "t1", Name: "Grand Cinema Hall", Location: "Downtown"},
		{ID: "t2", Name: "Starlight Multiplex", Location: "West End"},
	}

	// Two showtimes per movie per theater for today, with staggered
	// start hours and variable pricing
	now := time.Now()
	for i, movie := range s.Movies {
		for j, theater := range s.Theaters {
			for k := 0; k < 2; k++ {
				start := time.Date(now.Year(), now.Month(), now.Day(), 14+k*4+i, 0, 0, 0, time.Local)

				s.Showtimes = append(s.Showtimes, &entity.Showtime{
					ID:        fmt.Sprintf("s_%s_%s_%d", movie.ID, theater.ID, k),
					MovieID:   movie.ID,
					TheaterID: theater.ID,
					StartTime: start,
					Price:     float64(12 + j*2 + k),
					Screen:    fmt.Sprintf("Screen %d", k+1),
				})
			}
		}
	}

	// One pre-existing booking so the seat map is not empty on first run
	s.Bookings = []*entity.Booking{
		{
			ID:           uuid.New(),
			ShowtimeID:   s.Showtimes[0].ID,
			SeatNumbers:  []string{"C3", "C4"},
			TotalPrice:   24,
			CustomerName: "John Doe",
			CreatedAt:    now,
		},
	}

	return s.validate()
}

// validate checks referential integrity of the seeded data.
func (s *Store) validate() error {
	movies := make(map[string]bool, len(s.Movies))
	for _, m := range s.Movies {
		movies[m.ID] = true
	}

	theaters := make(map[string]bool, len(s.Theaters))
	for _, t := range s.Theaters {
		theaters[t.ID] = true
	}

	showtimes := make(map[string]bool, len(s.Showtimes))
	for _, st := range s.Showtimes {
		if !movies[st.MovieID] {
			return fmt.Errorf("showtime %s references unknown movie %s", st.ID, st.MovieID)
		}
		if !theaters[st.TheaterID] {
			return fmt.Errorf("showtime %s references unknown theater %s", st.ID, st.TheaterID)
		}
		showtimes[st.ID] = true
	}

	for _, b := range s.Bookings {
		if !showtimes[b.ShowtimeID] {
			return fmt.Errorf("booking %s references unknown showtime %s", b.ID, b.ShowtimeID)
		}
		for _, label := range b.SeatNumbers {
			if !seatmap.ValidLabel(label) {
				return fmt.Errorf("booking %s has invalid seat label %s", b.ID, label)
			}
		}
	}

	return nil
}
