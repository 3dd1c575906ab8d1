package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/party"
)

func TestBuildSingleSeat(t *testing.T) {
	l, err := Build([]party.Party{{Name: "A", Seats: 1, Color: "#ff0000"}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if l.Rows != 1 {
		t.Errorf("Rows = %d, want 1", l.Rows)
	}
	if l.Radius != 0.4 {
		t.Errorf("Radius = %v, want 0.4", l.Radius)
	}
	if l.TotalSeats != 1 || len(l.Seats) != 1 {
		t.Errorf("TotalSeats = %d, len(Seats) = %d, want 1", l.TotalSeats, len(l.Seats))
	}
	if len(l.Blocks) != 1 || len(l.Blocks[0].Seats) != 1 {
		t.Fatalf("Blocks = %+v, want one block with one seat", l.Blocks)
	}
}

func TestBuildTwoParties(t *testing.T) {
	l, err := Build([]party.Party{
		{Name: "A", Seats: 2, Color: "#ff0000"},
		{Name: "B", Seats: 1, Color: "#00ff00"},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if l.Rows != 1 {
		t.Errorf("Rows = %d, want 1", l.Rows)
	}
	if len(l.Seats) != 3 {
		t.Fatalf("len(Seats) = %d, want 3", len(l.Seats))
	}

	// A takes the left end and the apex, B the right end.
	a, b := l.Blocks[0].Seats, l.Blocks[1].Seats
	if len(a) != 2 || len(b) != 1 {
		t.Fatalf("block sizes = %d, %d, want 2, 1", len(a), len(b))
	}
	if a[0] != l.Seats[0] || a[1] != l.Seats[1] || b[0] != l.Seats[2] {
		t.Error("blocks should be consecutive windows onto Seats")
	}
	if a[1].Angle != math.Pi/2 {
		t.Errorf("A's second seat angle = %v, want π/2", a[1].Angle)
	}
	if !(a[0].X < a[1].X && a[1].X < b[0].X) {
		t.Errorf("seats should sweep left to right: %v %v %v", a[0].X, a[1].X, b[0].X)
	}
}

func TestBuildInvariants(t *testing.T) {
	for _, total := range []int{1, 2, 5, 15, 16, 99, 435, 650, 5000, MaxSeats} {
		parties := []party.Party{
			{Name: "A", Seats: total / 3, Color: "#ff0000"},
			{Name: "B", Seats: total - total/3, Color: "#0000ff"},
		}
		l, err := Build(parties)
		if err != nil {
			t.Fatalf("Build(total %d) error = %v", total, err)
		}
		if l.TotalSeats != total || len(l.Seats) != total {
			t.Errorf("total %d: TotalSeats = %d, len(Seats) = %d", total, l.TotalSeats, len(l.Seats))
		}
		if l.Radius != 0.4/float64(l.Rows) {
			t.Errorf("total %d: Radius = %v, want 0.4/%d", total, l.Radius, l.Rows)
		}
		sum := 0
		for _, b := range l.Blocks {
			sum += len(b.Seats)
		}
		if sum != total {
			t.Errorf("total %d: blocks hold %d seats", total, sum)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		parties []party.Party
		code    errors.Code
	}{
		{"no parties", nil, errors.ErrCodeInvalidSeatCount},
		{"zero seats", []party.Party{{Name: "A", Seats: 0, Color: "#ff0000"}}, errors.ErrCodeInvalidSeatCount},
		{
			"over capacity",
			[]party.Party{
				{Name: "A", Seats: MaxSeats, Color: "#ff0000"},
				{Name: "B", Seats: 1, Color: "#00ff00"},
			},
			errors.ErrCodeCapacityExceeded,
		},
		{
			"overflowing total",
			[]party.Party{
				{Name: "A", Seats: math.MaxInt, Color: "#ff0000"},
				{Name: "B", Seats: math.MaxInt, Color: "#00ff00"},
				{Name: "C", Seats: 5, Color: "#0000ff"},
			},
			errors.ErrCodeCapacityExceeded,
		},
		{
			"negative seats",
			[]party.Party{
				{Name: "A", Seats: 4, Color: "#ff0000"},
				{Name: "B", Seats: -1, Color: "#00ff00"},
			},
			errors.ErrCodeInvalidSeatCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.parties); !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want %s", err, tt.code)
			}
		})
	}
}
