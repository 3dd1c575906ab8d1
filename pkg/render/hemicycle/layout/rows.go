package layout

import (
	"sort"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

// PlanRows returns the smallest number of rows whose capacity covers total.
//
// It fails with INVALID_SEAT_COUNT when total is below one and with
// CAPACITY_EXCEEDED when total is larger than [MaxSeats].
func PlanRows(total int) (int, error) {
	if total < 1 {
		return 0, errors.New(errors.ErrCodeInvalidSeatCount,
			"must have at least one seat in the legislature, got %d", total)
	}
	if total > MaxSeats {
		return 0, errors.New(errors.ErrCodeCapacityExceeded,
			"maximum of %d seats currently supported, your parliament contains %d seats", MaxSeats, total)
	}
	return sort.SearchInts(capacities[:], total) + 1, nil
}

// Radius returns the seat dot radius, in layout units, for a layout with
// the given number of rows. Rows are 0.5/rows apart; the gap keeps
// neighbouring dots from touching.
func Radius(rows int) float64 {
	return 0.4 / float64(rows)
}
