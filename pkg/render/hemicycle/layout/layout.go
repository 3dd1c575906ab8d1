package layout

import (
	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/party"
)

// Layout is a complete hemicycle: the row count, the seat dot radius, and
// every seat assigned to a party.
//
// Seats holds all seats in allocation order; the Blocks' seat slices are
// consecutive, non-overlapping windows onto it, one per party in input
// order.
type Layout struct {
	Rows       int
	Radius     float64
	TotalSeats int
	Seats      []Seat
	Blocks     []Block
}

// Build lays out the given parties. It plans the row count from the total
// number of seats, positions every seat and allocates them to the parties.
//
// Build fails with INVALID_SEAT_COUNT when there are no seats and with
// CAPACITY_EXCEEDED when there are more than [MaxSeats]. A party with a
// negative seat count is rejected with INVALID_SEAT_COUNT.
func Build(parties []party.Party) (Layout, error) {
	for _, p := range parties {
		if p.Seats < 0 {
			return Layout{}, errors.New(errors.ErrCodeInvalidSeatCount,
				"party %q has negative number of seats: %d", p.Name, p.Seats)
		}
	}
	total := party.TotalSeats(parties)
	rows, err := PlanRows(total)
	if err != nil {
		return Layout{}, err
	}

	seats := PositionSeats(rows, total)
	if len(seats) != total {
		return Layout{}, errors.New(errors.ErrCodeInternal,
			"positioned %d seats for a parliament of %d", len(seats), total)
	}

	return Layout{
		Rows:       rows,
		Radius:     Radius(rows),
		TotalSeats: total,
		Seats:      seats,
		Blocks:     Allocate(seats, parties),
	}, nil
}
