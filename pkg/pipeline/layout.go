package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/hemicycle/pkg/observability"
	"github.com/matzehuels/hemicycle/pkg/party"
	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout"
)

// Normalize validates records and resolves missing colors from p.
func Normalize(ctx context.Context, records []party.Record, p party.Palette) ([]party.Party, error) {
	start := time.Now()
	parties, err := party.NormalizeAll(records, p)
	observability.Pipeline().OnNormalizeComplete(ctx, len(records), time.Since(start), err)
	return parties, err
}

// GenerateLayout lays out the parties' seats.
func GenerateLayout(ctx context.Context, parties []party.Party) (layout.Layout, error) {
	observability.Pipeline().OnLayoutStart(ctx, party.TotalSeats(parties))
	start := time.Now()
	l, err := layout.Build(parties)
	observability.Pipeline().OnLayoutComplete(ctx, l.Rows, time.Since(start), err)
	return l, err
}
