package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/pipeline"
)

// defaultBase names the output files when the parties come from a list
// rather than a file.
const defaultBase = "parliament"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (several)
	formats []string // output formats: "svg", "json", "png", "pdf"
	palette string   // palette for parties without a color
	seed    uint64   // palette seed; 0 picks a fresh one
	scale   float64  // PNG scale factor
	noCache bool     // skip the diagram cache entirely
	refresh bool     // re-render and overwrite cached diagrams
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		palette: pipeline.DefaultPalette,
		scale:   pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render <parties|file>",
		Short: "Render a parliament diagram",
		Long: `Render a parliament diagram from a party list or a party file.

The parties are given either inline, separated by semicolons with the fields
separated by commas, or as a .json or .toml party file.

Examples:
  hemicycle render "Party A, 33; Party B, 22, #99FF99"
  hemicycle render parties.toml -f svg,png
  hemicycle render "Left, 120; Right, 95" --palette spaced --seed 7 -o senate.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.palette, "palette", opts.palette, "palette for parties without a color: random, spaced")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "palette seed for reproducible colors (0 = random)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the diagram cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

// runRender loads the parties, runs the pipeline and writes one file per
// requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	recs, fromFile, err := pipeline.LoadRecords(input)
	if err != nil {
		return err
	}
	if fromFile {
		logger.Infof("Loaded %d parties from %s", len(recs), input)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Formats: opts.formats,
		Palette: opts.palette,
		Seed:    opts.seed,
		Scale:   opts.scale,
		Refresh: opts.refresh,
		Logger:  logger,
	}

	var spinner *Spinner
	if needsConverter(opts.formats) {
		spinner = newSpinner(ctx, os.Stderr, "Converting with rsvg-convert...")
		spinner.Start()
	}
	prog := newProgress(logger)
	res, err := runner.Execute(ctx, recs, popts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Rendering failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d seats in %d rows", res.Stats.TotalSeats, res.Stats.Rows))

	base := basePath(opts.output, input, fromFile)
	paths := outputPaths(opts.output, base, opts.formats)
	for _, format := range opts.formats {
		if err := os.WriteFile(paths[format], res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[format], err)
		}
		logger.Debugf("Wrote %s: %d bytes", paths[format], len(res.Artifacts[format]))
	}

	printSuccess("Rendered %d parties", res.Stats.PartyCount)
	printStats(res.Stats.TotalSeats, res.Stats.Rows, res.CacheInfo.RenderHit)
	for _, format := range opts.formats {
		printFile(paths[format])
	}
	return nil
}

// needsConverter reports whether any format is produced through rsvg-convert.
func needsConverter(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			return true
		}
	}
	return false
}

// basePath derives the base output path, without extension.
// An explicit output loses a known format extension; a party file gives its
// own name; an inline list falls back to "parliament".
func basePath(output, input string, fromFile bool) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if fromFile {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	return defaultBase
}

// outputPaths maps each format to its output file. A single format with an
// explicit output path is written exactly there.
func outputPaths(output, base string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
