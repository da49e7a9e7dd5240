// Package commands implements the variations CLI subcommands.
package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/variations/internal/config"
	"github.com/katalvlaran/variations/internal/logger"
	"github.com/katalvlaran/variations/internal/render"
)

// NewRootCmd builds the full command tree. Each call returns fresh commands
// and flag sets.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "variations",
		Short: "Inspect fixed-length sequence spaces and their translation classes",
		Long: `variations indexes every fixed-length sequence over an ordered alphabet,
groups sequences that differ only by a uniform shift, and pairs items under a norm.

Available commands:
  count   - Exact number of sequences in a space
  index   - Decode an index into a sequence, or encode a sequence
  shapes  - List prime fret shapes or their translations
  canon   - Reduce a fret shape to its prime form
  pairs   - Interval-class histogram over pitch-class pairs

Examples:
  variations count --size 12 --length 30
  variations index 34 --size 6 --length 2
  variations shapes --span 4 --strings 4 --limit 20
  variations canon 2 3 4
  variations pairs --only C,E,G --format yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			jsonLogs, _ := cmd.Flags().GetBool("log-json")
			if err := logger.Initialize(verbosity, jsonLogs); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a TOML config file")
	pf.String("format", config.FormatTable, "Output format: table or yaml")
	pf.Int("limit", 0, "Maximum rows to list (0 = all)")
	pf.Int64("max-space", 1_000_000, "Refuse to build equivalence tables over larger spaces")
	pf.CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	pf.Bool("log-json", false, "Emit logs as JSON")

	root.AddCommand(
		newCountCmd(),
		newIndexCmd(),
		newShapesCmd(),
		newCanonCmd(),
		newPairsCmd(),
	)

	return root
}

// loadConfig resolves the configuration for cmd from its --config file,
// the environment and its flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger.Logger.Debugw("Configuration loaded",
		logger.FieldCommand, cmd.Name(),
		logger.FieldConfig, path)

	return cfg, nil
}

// output renders v to the command's stdout in the configured format.
func output(cmd *cobra.Command, cfg *config.Config, v render.View) error {
	r, err := render.New(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return r.Render(v)
}

// limited returns how many of n rows to list under limit (0 = all).
func limited(n, limit int) int {
	if limit > 0 && limit < n {
		return limit
	}
	return n
}

// parseInts converts positional arguments to ints.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(err, "argument %d (%q) is not an integer", i+1, a),
				"pass values as separate integer arguments, e.g. 0 3 2")
		}
		out[i] = v
	}

	return out, nil
}

// intsOf renders any Valued slice as plain ints for YAML output.
func intsOf[T interface{ Value() int }](seq []T) []int {
	out := make([]int, len(seq))
	for i, s := range seq {
		out[i] = s.Value()
	}

	return out
}

// joinValues renders a sequence as "a b c" for table cells.
func joinValues[T any](seq []T) string {
	s := ""
	for i, v := range seq {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprint(v)
	}

	return s
}
