// Package layout computes hemicycle seat layouts.
//
// # Overview
//
// A hemicycle places one dot per seat on concentric half-circle arcs, with
// each party occupying a contiguous wedge. Layout happens in four steps:
//
//  1. Capacity: [CapacityFor] gives the largest parliament that fits in a
//     given number of rows.
//  2. Rows: [PlanRows] picks the smallest row count that fits the total.
//  3. Seats: [PositionSeats] spreads the seats over the rows.
//  4. Allocation: [Allocate] sorts the seats from left to right and hands
//     out consecutive runs to the parties in order.
//
// [Build] runs all four.
//
// # Coordinates
//
// Seats live in a layout space 3.5 units wide and 1.75 units high with the
// hemicycle centered at ([CenterX], 0) and y pointing up. The outer row has
// radius (7n − 2)/(4n) for n rows, so every dot stays inside the frame.
// Sinks scale this space to pixels.
//
// # Example
//
//	l, err := layout.Build([]party.Party{
//	    {Name: "Left", Seats: 120, Color: "#cc0000"},
//	    {Name: "Right", Seats: 80, Color: "#0000cc"},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(l.Rows, l.Radius)
package layout
