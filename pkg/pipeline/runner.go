package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/observability"
	"github.com/matzehuels/hemicycle/pkg/party"
	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Execute runs the complete normalize → layout → render pipeline with caching.
//
// Validation and layout errors are returned wrapped, with their codes
// intact; see the errors package.
func (r *Runner) Execute(ctx context.Context, records []party.Record, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	palette, err := opts.NewPalette()
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Normalize
	start := time.Now()
	parties, err := Normalize(ctx, records, palette)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	result.Parties = parties
	result.Stats.NormalizeTime = time.Since(start)
	result.Stats.PartyCount = len(parties)
	result.Stats.TotalSeats = party.TotalSeats(parties)

	if result.PartiesHash, err = cache.HashJSON(parties); err != nil {
		return nil, fmt.Errorf("hash parties: %w", err)
	}

	opts.Logger.Debug("normalized parties",
		"parties", len(parties),
		"seats", result.Stats.TotalSeats)

	// Stage 2: Layout
	start = time.Now()
	l, err := GenerateLayout(ctx, parties)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.Rows = l.Rows
	result.Stats.LayoutTime = time.Since(start)

	opts.Logger.Info("computed layout",
		"seats", l.TotalSeats,
		"rows", l.Rows,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	start = time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, l, result.PartiesHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = hit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns whether
// every format came from the cache. partiesHash identifies the layout.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, partiesHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string

	for _, format := range opts.Formats {
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(partiesHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "error", err)
		}
		if err == nil && hit {
			observability.Cache().OnCacheHit(ctx, format)
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing

	observability.Pipeline().OnRenderStart(ctx, missing)
	start := time.Now()
	rendered, err := Render(ctx, l, renderOpts)
	observability.Pipeline().OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(partiesHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}

	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
