package sink

import (
	"encoding/json"

	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	palette string
	seed    uint64
}

// WithJSONPalette records the palette used for colorless parties.
func WithJSONPalette(name string) JSONOption { return func(r *jsonRenderer) { r.palette = name } }

// WithJSONSeed records the palette seed, so generated colors can be
// reproduced.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

type jsonOutput struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Rows       int         `json:"rows"`
	Radius     float64     `json:"radius"`
	TotalSeats int         `json:"total_seats"`
	Palette    string      `json:"palette,omitempty"`
	Seed       uint64      `json:"seed,omitempty"`
	Parties    []jsonParty `json:"parties"`
}

type jsonParty struct {
	Name  string     `json:"name"`
	Color string     `json:"color"`
	Seats int        `json:"seats"`
	Spots []jsonSeat `json:"positions"`
}

type jsonSeat struct {
	Angle float64 `json:"angle"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
}

// RenderJSON exports the layout as a pretty-printed JSON document: the
// canvas size, row count, seat radius and, per party in input order, its
// seats in both layout and pixel coordinates.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      Width,
		Height:     Height,
		Rows:       l.Rows,
		Radius:     l.Radius,
		TotalSeats: l.TotalSeats,
		Palette:    r.palette,
		Seed:       r.seed,
		Parties:    make([]jsonParty, 0, len(l.Blocks)),
	}
	for _, b := range l.Blocks {
		p := jsonParty{
			Name:  b.Party.Name,
			Color: b.Party.Color,
			Seats: b.Party.Seats,
			Spots: make([]jsonSeat, 0, len(b.Seats)),
		}
		for _, s := range b.Seats {
			p.Spots = append(p.Spots, jsonSeat{
				Angle: s.Angle,
				X:     s.X,
				Y:     s.Y,
				CX:    PixelX(s.X),
				CY:    PixelY(s.Y),
			})
		}
		out.Parties = append(out.Parties, p)
	}

	return json.MarshalIndent(out, "", "  ")
}
