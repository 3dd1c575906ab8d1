package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout"
	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, l, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, l layout.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l), nil
	case FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONPalette(opts.Palette), sink.WithJSONSeed(opts.Seed))
	case FormatPNG:
		return sink.RenderPNG(ctx, l, sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(ctx, l)
	default:
		return nil, ValidateFormat(format)
	}
}
