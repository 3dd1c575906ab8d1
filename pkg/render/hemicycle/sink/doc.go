// Package sink provides output format renderers for hemicycle layouts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: the parliament diagram itself
//   - JSON: seat positions for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] draws a 360×185 px canvas: one circle per seat, grouped by
// party, with the total seat count printed under the arc. Layout space is
// scaled by 100 with a 5 px border and the y axis is flipped, see [PixelX]
// and [PixelY]. The format is fixed and byte-for-byte deterministic.
//
// # JSON Output
//
// [RenderJSON] writes the row count, radius and every party's seats. The
// palette name and seed can be recorded with [WithJSONPalette] and
// [WithJSONSeed].
//
// # PNG and PDF
//
//	png, err := sink.RenderPNG(ctx, l, sink.WithScale(3))
//	pdf, err := sink.RenderPDF(ctx, l)
package sink
