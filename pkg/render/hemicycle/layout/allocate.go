package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/hemicycle/pkg/party"
)

// Block is the contiguous run of seats assigned to one party.
type Block struct {
	Party party.Party
	Seats []Seat
}

// SortSeats orders seats by angle, descending, keeping computation order
// among equal angles. Consecutive seats then sweep the hemicycle from left
// to right so that each party's run forms a wedge.
func SortSeats(seats []Seat) {
	slices.SortStableFunc(seats, func(a, b Seat) int {
		return cmp.Compare(b.Angle, a.Angle)
	})
}

// Allocate sorts seats with [SortSeats] and hands out consecutive runs of
// them to parties in input order. The sum of the parties' seats must equal
// len(seats); the returned blocks share seats' backing array.
func Allocate(seats []Seat, parties []party.Party) []Block {
	SortSeats(seats)

	blocks := make([]Block, len(parties))
	next := 0
	for i, p := range parties {
		blocks[i] = Block{Party: p, Seats: seats[next : next+p.Seats : next+p.Seats]}
		next += p.Seats
	}
	return blocks
}
