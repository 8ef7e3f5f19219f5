package entity

// Theater is seeded at startup and immutable afterwards.
type Theater struct {
	ID       string
	Name     string
	Location string
}
