// Package render provides the rendering layer for hemicycle diagrams.
//
// # Overview
//
// Rendering is split in two steps:
//
//   - Geometry: [hemicycle/layout] plans the rows, positions every seat and
//     hands out contiguous runs of seats to parties
//   - Output: [hemicycle/sink] turns a layout into SVG, JSON, PNG or PDF
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The PNG and PDF sinks are
// thin wrappers around them.
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [hemicycle/layout]: github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout
// [hemicycle/sink]: github.com/matzehuels/hemicycle/pkg/render/hemicycle/sink
package render
