// Package seatmap derives seat grids for a showtime. Seat status is a
// pure projection over the current bookings and the user's local
// selection; it is recomputed on every read and never stored.
package seatmap

import "fmt"

type SeatStatus string

const (
	StatusAvailable SeatStatus = "available"
	StatusOccupied  SeatStatus = "occupied"
	StatusSelected  SeatStatus = "selected"
)

// Every showtime shares the same fixed 8x8 grid, rows A-H, columns 1-8.
const (
	Rows = 8
	Cols = 8
)

var rowLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

type Seat struct {
	Label  string
	Row    string
	Col    int
	Status SeatStatus
}

// BuildGrid produces all 64 seats in row-major order, A1..A8 through
// H1..H8. A label present in occupied is occupied even if it also
// appears in selected; otherwise selected wins over available.
func BuildGrid(occupied, selected []string) []Seat {
	occupiedSet := toSet(occupied)
	selectedSet := toSet(selected)

	grid := make([]Seat, 0, Rows*Cols)
	for _, row := range rowLetters {
		for col := 1; col <= Cols; col++ {
			label := fmt.Sprintf("%s%d", row, col)

			status := StatusAvailable
			if occupiedSet[label] {
				status = StatusOccupied
			} else if selectedSet[label] {
				status = StatusSelected
			}

			grid = append(grid, Seat{
				Label:  label,
				Row:    row,
				Col:    col,
				Status: status,
			})
		}
	}

	return grid
}

// ValidLabel reports whether label names a seat on the grid.
func ValidLabel(label string) bool {
	if len(label) != 2 {
		return false
	}
	row := label[0]
	col := label[1]
	return row >= 'A' && row <= 'H' && col >= '1' && col <= '8'
}

func toSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, label := range labels {
		set[label] = true
	}
	return set
}
