package layout

// capacities[n-1] is the largest number of seats that fit in a hemicycle of
// n concentric rows. Each entry equals the sum over rows i = 1..n of
// floor(π / (2·asin(2 / (3n + 4i − 2)))).
var capacities = [...]int{
	3, 15, 33, 61, 95, 138, 189, 247, 313, 388,
	469, 559, 657, 762, 876, 997, 1126, 1263, 1408, 1560,
	1722, 1889, 2066, 2250, 2442, 2641, 2850, 3064, 3289, 3519,
	3759, 4005, 4261, 4522, 4794, 5071, 5358, 5652, 5953, 6263,
	6581, 6906, 7239, 7581, 7929, 8287, 8650, 9024, 9404,
}

const (
	// MaxRows is the largest number of rows a layout can have.
	MaxRows = len(capacities)

	// MaxSeats is the largest parliament that can be laid out.
	MaxSeats = 9404
)

// CapacityFor returns the maximum number of seats a layout with the given
// number of rows can hold, or 0 if rows is outside 1..MaxRows.
func CapacityFor(rows int) int {
	if rows < 1 || rows > MaxRows {
		return 0
	}
	return capacities[rows-1]
}
