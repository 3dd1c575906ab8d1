// Package pipeline provides the rendering pipeline for hemicycle diagrams.
//
// This package implements the complete normalize → layout → render pipeline
// used by both the CLI and the HTTP server, so both entry points validate,
// lay out and cache diagrams the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Normalize: Validate raw party records and fill in missing colors
//  2. Layout: Plan rows, position seats and allocate them to parties
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// # Usage
//
// The simplest entry point renders an SVG directly:
//
//	svg, err := pipeline.RenderDiagram(party.ParseList("A, 33; B, 22"), palette)
//
// Create a Runner for caching and multiple formats:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, records, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	    Palette: "spaced",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/party"
	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultPalette colors parties that do not name a color.
	DefaultPalette = party.PaletteRandom
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidPalettes is the set of supported palettes.
var ValidPalettes = map[string]bool{
	party.PaletteRandom: true,
	party.PaletteSpaced: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Palette string   `json:"palette,omitempty"`
	Seed    uint64   `json:"seed,omitempty"` // 0 picks a fresh random seed
	Scale   float64  `json:"scale,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // bypass cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Parties are the normalized parties, colors filled in.
	Parties []party.Party

	// PartiesHash is the content hash of Parties.
	PartiesHash string

	// Layout is the computed seat layout.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PartyCount    int
	TotalSeats    int
	Rows          int
	NormalizeTime time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePalette checks that a palette name is valid.
func ValidatePalette(name string) error {
	if !ValidPalettes[name] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid palette: %q (must be one of: random, spaced)", name)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidatePalette(o.Palette); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	o.validated = true
	return nil
}

// NewPalette returns the palette selected by the options.
func (o *Options) NewPalette() (party.Palette, error) {
	return party.NewPalette(o.Palette, o.Seed)
}

// ArtifactKeyOpts returns cache key options for artifact rendering. Only
// the settings that change a format's bytes are included.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		opts.Scale = o.Scale
	case FormatJSON:
		opts.Palette = o.Palette
		opts.Seed = o.Seed
	}
	return opts
}
