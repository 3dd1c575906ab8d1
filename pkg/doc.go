// Package pkg provides the core libraries for hemicycle parliament diagrams.
//
// # Overview
//
// Hemicycle turns a list of parties and their seat counts into a seating
// diagram: the seats are placed on concentric half-circle rows and colored
// by party, left to right. The pkg directory is organized into:
//
//  1. [party] - Party records, validation and color palettes
//  2. [render/hemicycle/layout] - Row planning and seat positions
//  3. [render/hemicycle/sink] - SVG, JSON, PNG and PDF output
//  4. [io] - JSON and TOML party files
//  5. [cache] - Artifact caching (file, Redis, null)
//  6. [pipeline] - Orchestration (normalize → layout → render)
//
// # Architecture
//
// The typical data flow through hemicycle:
//
//	Party list / party file
//	         ↓
//	    [party] package (records → validated parties)
//	         ↓
//	    [render/hemicycle/layout] package (rows, seats, blocks)
//	         ↓
//	    [render/hemicycle/sink] package
//	         ↓
//	    SVG/JSON/PNG/PDF output
//
// # Quick Start
//
//	recs := party.ParseList("Party A, 33; Party B, 22, #99FF99")
//	parties, err := party.NormalizeAll(recs, party.NewSpacedPalette(0))
//	if err != nil {
//	    return err
//	}
//	l, err := layout.Build(parties)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l)
//
// Or let the pipeline do all of it, with caching:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, err := runner.Execute(ctx, recs, pipeline.Options{Formats: []string{"svg"}})
package pkg
