package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/io"
	"github.com/matzehuels/hemicycle/pkg/party"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output  string // .json or .toml party file (stdout JSON if empty)
	palette string
	seed    uint64
}

// parseCommand creates the parse command, which validates a party list and
// saves it as a party file with every color filled in.
func (c *CLI) parseCommand() *cobra.Command {
	opts := parseOpts{palette: pipeline.DefaultPalette}

	cmd := &cobra.Command{
		Use:   "parse <parties|file>",
		Short: "Validate parties and write them as a party file",
		Long: `Validate a party list and write it as a JSON or TOML party file.

Parties without a color are assigned one from the palette, so the saved file
renders with the same colors every time.

Examples:
  hemicycle parse "Party A, 33; Party B, 22, #99FF99"
  hemicycle parse "Greens, 12; Reds, 30" --palette spaced -o parties.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .json or .toml (stdout if empty)")
	cmd.Flags().StringVar(&opts.palette, "palette", opts.palette, "palette for parties without a color: random, spaced")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "palette seed for reproducible colors (0 = random)")

	return cmd
}

func runParse(ctx context.Context, input string, opts *parseOpts) error {
	logger := loggerFromContext(ctx)

	if err := pipeline.ValidatePalette(opts.palette); err != nil {
		return err
	}
	if opts.output != "" {
		if _, err := io.FormatFromPath(opts.output); err != nil {
			return err
		}
	}

	recs, _, err := pipeline.LoadRecords(input)
	if err != nil {
		return err
	}
	p, err := party.NewPalette(opts.palette, opts.seed)
	if err != nil {
		return err
	}
	parties, err := pipeline.Normalize(ctx, recs, p)
	if err != nil {
		return err
	}
	logger.Debugf("Normalized %d parties, %d seats", len(parties), party.TotalSeats(parties))

	if opts.output == "" {
		return io.WriteJSON(parties, os.Stdout)
	}
	if err := io.ExportParties(parties, opts.output); err != nil {
		return err
	}

	printSuccess("Saved %d parties", len(parties))
	printFile(opts.output)
	printNextStep("Render it", "hemicycle render "+opts.output)
	return nil
}
