package pipeline

import (
	"github.com/matzehuels/hemicycle/pkg/party"
	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout"
	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/sink"
)

// RenderDiagram validates records, lays out the hemicycle and returns the
// SVG document. Parties without a color take one from p, in record order.
//
// On any error no output is produced. The error carries one of the codes
// MALFORMED_RECORD, INVALID_SEAT_COUNT, INVALID_COLOR or CAPACITY_EXCEEDED.
func RenderDiagram(records []party.Record, p party.Palette) (string, error) {
	parties, err := party.NormalizeAll(records, p)
	if err != nil {
		return "", err
	}
	l, err := layout.Build(parties)
	if err != nil {
		return "", err
	}
	return string(sink.RenderSVG(l)), nil
}
