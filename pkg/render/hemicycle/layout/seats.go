package layout

import "math"

// CenterX is the x coordinate of the hemicycle's center in layout units.
// The layout space is 3.5 units wide and 1.75 units high.
const CenterX = 1.75

// Seat is the center of one seat in layout units. Angle is measured
// counter-clockwise from the positive x axis, so 0 is the right end of an
// arc and π the left end.
type Seat struct {
	Angle float64
	X, Y  float64
}

// PositionSeats computes the centers of total seats laid out in the given
// number of rows, in computation order: inner rows first, each from right
// to left, then the outer row.
//
// Inner rows take a share of their full capacity proportional to how full
// the whole hemicycle is; the outer row absorbs whatever remains so the
// result always has exactly total seats.
//
// The explicit float64 conversions below stop the compiler from fusing
// multiply-adds, which keeps coordinates identical on every architecture.
func PositionSeats(rows, total int) []Seat {
	radius := Radius(rows)
	n := float64(rows)
	fill := float64(total) / float64(CapacityFor(rows))

	seats := make([]Seat, 0, total)
	for i := 1; i < rows; i++ {
		k := float64(3*n) + float64(4*float64(i)) - 2
		count := int(fill * math.Pi / (2 * math.Asin(2/k)))
		seats = placeArc(seats, count, k/(4*n), radius)
	}

	outer := total - len(seats)
	return placeArc(seats, outer, (float64(7*n)-2)/(4*n), radius)
}

// placeArc appends count seats spread evenly over the arc of radius r.
// Seat centers are inset by asin(radius/r) from both ends so the dots stay
// inside the half-disc. A lone seat sits at the apex.
func placeArc(seats []Seat, count int, r, radius float64) []Seat {
	switch {
	case count <= 0:
		return seats
	case count == 1:
		return append(seats, Seat{Angle: math.Pi / 2, X: CenterX * r, Y: r})
	}

	inset := math.Asin(radius / r)
	for j := 0; j < count; j++ {
		angle := float64(float64(j)*(math.Pi-2*inset))/float64(count-1) + inset
		seats = append(seats, Seat{
			Angle: angle,
			X:     float64(r*math.Cos(angle)) + CenterX,
			Y:     r * math.Sin(angle),
		})
	}
	return seats
}
