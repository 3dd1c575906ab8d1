package party

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

// Party is a validated party: a name, a non-negative seat count and a
// #RRGGBB fill color. Parties are plain values and compare with ==.
type Party struct {
	Name  string
	Seats int
	Color string
}

// Record is a raw party record of 2 or 3 fields: name, seat count and an
// optional color. Front ends (text parser, party files, HTTP requests)
// produce records; [Normalize] turns them into parties.
type Record []string

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether c has the form #RRGGBB.
func ValidColor(c string) bool {
	return colorRe.MatchString(c)
}

// Normalize validates rec and returns the corresponding Party.
//
// The record must have 2 or 3 fields. The seat count is trimmed and must be
// a non-negative base-10 integer. A supplied color must match #RRGGBB and is
// kept as written; when the color is omitted, p.Next is called exactly once.
func Normalize(rec Record, p Palette) (Party, error) {
	if len(rec) != 2 && len(rec) != 3 {
		return Party{}, errors.New(errors.ErrCodeMalformedRecord,
			"record should contain 2 or 3 fields: %q", []string(rec))
	}
	name := rec[0]

	seats, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return Party{}, errors.Wrap(errors.ErrCodeInvalidSeatCount, err,
			"party %q has a non-integer number of seats: %q", name, rec[1])
	}
	if seats < 0 {
		return Party{}, errors.New(errors.ErrCodeInvalidSeatCount,
			"party %q has negative number of seats: %d", name, seats)
	}

	var color string
	if len(rec) == 3 {
		color = rec[2]
		if !ValidColor(color) {
			return Party{}, errors.New(errors.ErrCodeInvalidColor, "bogus RGB colour: %q", color)
		}
	} else {
		color = p.Next()
	}

	return Party{Name: name, Seats: seats, Color: color}, nil
}

// NormalizeAll normalizes every record in order and stops at the first
// error. The palette is consulted once per record without a color, in
// record order, so a seeded palette reproduces the same colors.
func NormalizeAll(recs []Record, p Palette) ([]Party, error) {
	parties := make([]Party, 0, len(recs))
	for _, rec := range recs {
		pt, err := Normalize(rec, p)
		if err != nil {
			return nil, err
		}
		parties = append(parties, pt)
	}
	return parties, nil
}

// TotalSeats returns the sum of all parties' seats. The sum saturates at
// math.MaxInt instead of wrapping, so an oversized list still reads as too
// many seats.
func TotalSeats(parties []Party) int {
	total := 0
	for _, p := range parties {
		if p.Seats > 0 && total > math.MaxInt-p.Seats {
			return math.MaxInt
		}
		total += p.Seats
	}
	return total
}

// Records converts parties back to fully specified 3-field records.
func Records(parties []Party) []Record {
	recs := make([]Record, len(parties))
	for i, p := range parties {
		recs[i] = Record{p.Name, strconv.Itoa(p.Seats), p.Color}
	}
	return recs
}
