package commands

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/variations/alphabet"
	"github.com/katalvlaran/variations/internal/config"
	"github.com/katalvlaran/variations/internal/logger"
	"github.com/katalvlaran/variations/internal/render"
	"github.com/katalvlaran/variations/variation"
)

type countDoc struct {
	Size   int    `yaml:"size"`
	Length int    `yaml:"length"`
	Count  string `yaml:"count"`
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the exact number of sequences of a given length",
		Long: `Print size^length, the number of sequences of --length symbols drawn from an
alphabet of --size integers (0..size-1). The count is exact beyond 64 bits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			space, err := intSpace(cfg)
			if err != nil {
				return err
			}
			count := space.Count()
			logger.Logger.Infow("Counted space",
				logger.FieldCommand, cmd.Name(),
				logger.FieldCount, count.String())

			return output(cmd, cfg, render.View{
				Header: []string{"size", "length", "count"},
				Rows:   [][]string{{strconv.Itoa(cfg.Size), strconv.Itoa(cfg.Length), count.String()}},
				Doc:    countDoc{Size: cfg.Size, Length: cfg.Length, Count: count.String()},
			})
		},
	}
	addSpaceFlags(cmd)

	return cmd
}

// addSpaceFlags registers --size and --length.
func addSpaceFlags(cmd *cobra.Command) {
	cmd.Flags().Int("size", 6, "Alphabet size; symbols are 0..size-1")
	cmd.Flags().Int("length", 2, "Sequence length")
}

// intSpace builds the integer space described by cfg.Size and cfg.Length.
func intSpace(cfg *config.Config) (*variation.Space[alphabet.Int], error) {
	if cfg.Size <= 0 {
		return nil, errors.WithHint(
			errors.Newf("alphabet size must be > 0, got %d", cfg.Size),
			"set --size to the number of symbols")
	}
	a, err := alphabet.New(alphabet.Ints(0, cfg.Size-1)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build alphabet")
	}
	space, err := variation.New(a, cfg.Length)
	if err != nil {
		return nil, errors.WithHint(errors.Wrap(err, "failed to build space"),
			"--length must be at least 1")
	}

	return space, nil
}
