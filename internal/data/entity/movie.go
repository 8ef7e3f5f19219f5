package entity

// Movie is seeded at startup and immutable afterwards.
type Movie struct {
	ID          string
	Title       string
	Genres      []string
	Duration    int     // minutes
	Rating      float64 // 0-10
	PosterURL   string
	Description string
	Director    string
	ReleaseDate string
}
